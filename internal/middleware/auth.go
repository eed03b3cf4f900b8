package middleware

import (
	"context"
	"net/http"
	"strconv"

	"event-registration-platform/internal/models"

	"github.com/gorilla/sessions"
)

type contextKey string

const (
	UserContextKey contextKey = "user"

	sessionName = "session"
)

// UserGetter resolves a user ID from the session into a user
type UserGetter interface {
	GetUser(id int) (*models.User, error)
}

// AuthMiddleware provides session-based authentication
type AuthMiddleware struct {
	users UserGetter
	store sessions.Store
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(users UserGetter, store sessions.Store) *AuthMiddleware {
	return &AuthMiddleware{
		users: users,
		store: store,
	}
}

// LoadUser loads the current user from the session and adds it to the request
// context. Requests without a valid session continue anonymously.
func (m *AuthMiddleware) LoadUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := m.store.Get(r, sessionName)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		userID, ok := session.Values["user_id"].(int)
		if !ok || userID == 0 {
			// Session storage may have converted the type
			if raw, exists := session.Values["user_id"]; exists {
				switch v := raw.(type) {
				case float64:
					userID = int(v)
					ok = userID != 0
				case string:
					if parsed, err := strconv.Atoi(v); err == nil {
						userID = parsed
						ok = userID != 0
					}
				}
			}
		}

		if !ok || userID == 0 {
			next.ServeHTTP(w, r)
			return
		}

		user, err := m.users.GetUser(userID)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), UserContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAuth rejects requests without an authenticated user
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if GetUserFromContext(r.Context()) == nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"ok":false,"code":"UNAUTHORIZED","message":"Authentication required"}`))
			return
		}

		next.ServeHTTP(w, r)
	})
}

// Login stores the user ID in the session
func (m *AuthMiddleware) Login(w http.ResponseWriter, r *http.Request, user *models.User) error {
	session, err := m.store.Get(r, sessionName)
	if err != nil {
		// A stale cookie still yields a usable new session
		session, _ = m.store.New(r, sessionName)
	}

	session.Values["user_id"] = user.ID
	return session.Save(r, w)
}

// Logout clears the session
func (m *AuthMiddleware) Logout(w http.ResponseWriter, r *http.Request) error {
	session, err := m.store.Get(r, sessionName)
	if err != nil {
		return nil
	}

	delete(session.Values, "user_id")
	session.Options.MaxAge = -1
	return session.Save(r, w)
}

// GetUserFromContext retrieves the user from request context
func GetUserFromContext(ctx context.Context) *models.User {
	user, ok := ctx.Value(UserContextKey).(*models.User)
	if !ok {
		return nil
	}
	return user
}

// SetUserInContext adds a user to the context (used by tests)
func SetUserInContext(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, UserContextKey, user)
}
