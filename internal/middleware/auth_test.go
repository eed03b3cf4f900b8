package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"event-registration-platform/internal/models"

	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUserGetter struct {
	users map[int]*models.User
}

func (s *stubUserGetter) GetUser(id int) (*models.User, error) {
	user, exists := s.users[id]
	if !exists {
		return nil, models.ErrUserNotFound
	}
	return user, nil
}

func newTestAuthMiddleware(users ...*models.User) *AuthMiddleware {
	getter := &stubUserGetter{users: make(map[int]*models.User)}
	for _, user := range users {
		getter.users[user.ID] = user
	}
	store := sessions.NewCookieStore([]byte("test-secret-key"))
	return NewAuthMiddleware(getter, store)
}

func TestLoadUser_ValidSession(t *testing.T) {
	user := &models.User{ID: 1, Name: "John", Email: "john@example.com", Role: models.RoleUser}
	auth := newTestAuthMiddleware(user)

	// Log in to obtain a session cookie
	loginRec := httptest.NewRecorder()
	loginReq := httptest.NewRequest("POST", "/auth/login", nil)
	require.NoError(t, auth.Login(loginRec, loginReq, user))

	cookies := loginRec.Result().Cookies()
	require.NotEmpty(t, cookies)

	var loaded *models.User
	handler := auth.LoadUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		loaded = GetUserFromContext(r.Context())
	}))

	req := httptest.NewRequest("GET", "/auth/me", nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	handler.ServeHTTP(httptest.NewRecorder(), req)

	require.NotNil(t, loaded)
	assert.Equal(t, user.ID, loaded.ID)
	assert.Equal(t, user.Email, loaded.Email)
}

func TestLoadUser_NoSession(t *testing.T) {
	auth := newTestAuthMiddleware()

	var loaded *models.User
	handler := auth.LoadUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		loaded = GetUserFromContext(r.Context())
	}))

	req := httptest.NewRequest("GET", "/event/1", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	// Anonymous requests continue without a user
	assert.Nil(t, loaded)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLoadUser_UnknownUserID(t *testing.T) {
	deleted := &models.User{ID: 42, Name: "Gone", Email: "gone@example.com"}
	auth := newTestAuthMiddleware() // getter has no users

	loginRec := httptest.NewRecorder()
	loginReq := httptest.NewRequest("POST", "/auth/login", nil)
	require.NoError(t, auth.Login(loginRec, loginReq, deleted))

	var loaded *models.User
	handler := auth.LoadUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		loaded = GetUserFromContext(r.Context())
	}))

	req := httptest.NewRequest("GET", "/auth/me", nil)
	for _, cookie := range loginRec.Result().Cookies() {
		req.AddCookie(cookie)
	}
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.Nil(t, loaded)
}

func TestRequireAuth_Anonymous(t *testing.T) {
	auth := newTestAuthMiddleware()

	handler := auth.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not run for anonymous requests")
	}))

	req := httptest.NewRequest("POST", "/attendee/register", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "UNAUTHORIZED")
}

func TestRequireAuth_Authenticated(t *testing.T) {
	auth := newTestAuthMiddleware()
	user := &models.User{ID: 1, Role: models.RoleUser}

	called := false
	handler := auth.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	req := httptest.NewRequest("POST", "/attendee/register", nil)
	req = req.WithContext(SetUserInContext(req.Context(), user))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLogout_ClearsSession(t *testing.T) {
	user := &models.User{ID: 1, Name: "John", Email: "john@example.com"}
	auth := newTestAuthMiddleware(user)

	loginRec := httptest.NewRecorder()
	loginReq := httptest.NewRequest("POST", "/auth/login", nil)
	require.NoError(t, auth.Login(loginRec, loginReq, user))

	logoutRec := httptest.NewRecorder()
	logoutReq := httptest.NewRequest("POST", "/auth/logout", nil)
	for _, cookie := range loginRec.Result().Cookies() {
		logoutReq.AddCookie(cookie)
	}
	require.NoError(t, auth.Logout(logoutRec, logoutReq))

	// The logout response must expire the cookie
	cookies := logoutRec.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Less(t, cookies[0].MaxAge, 0)
}
