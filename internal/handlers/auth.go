package handlers

import (
	"net/http"

	"event-registration-platform/internal/middleware"
	"event-registration-platform/internal/models"
	"event-registration-platform/internal/services"
)

// AuthHandler handles signup, login and logout
type AuthHandler struct {
	authService services.AuthServiceInterface
	sessions    *middleware.AuthMiddleware
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService services.AuthServiceInterface, sessions *middleware.AuthMiddleware) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		sessions:    sessions,
	}
}

// Signup creates a new account and logs the user in
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req models.UserCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeInvalid(w, "Invalid request body")
		return
	}

	// Role escalation is not self-service; organizer accounts are the only
	// role a signup may pick.
	if req.Role == models.RoleAdmin {
		req.Role = models.RoleUser
	}

	user, err := h.authService.Signup(&req)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.sessions.Login(w, r, user); err != nil {
		writeError(w, err)
		return
	}

	writeData(w, user)
}

// Login verifies credentials and starts a session
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeInvalid(w, "Invalid request body")
		return
	}

	user, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.sessions.Login(w, r, user); err != nil {
		writeError(w, err)
		return
	}

	writeData(w, user)
}

// Logout ends the session
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Logout(w, r); err != nil {
		writeError(w, err)
		return
	}

	writeOK(w)
}

// Me returns the currently authenticated user
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	if user == nil {
		writeError(w, models.ErrUnauthorized)
		return
	}

	writeData(w, user)
}
