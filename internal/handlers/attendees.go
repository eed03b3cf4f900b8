package handlers

import (
	"net/http"
	"strconv"

	"event-registration-platform/internal/middleware"
	"event-registration-platform/internal/models"
	"event-registration-platform/internal/services"

	"github.com/go-chi/chi/v5"
)

// AttendeeHandler handles registration endpoints
type AttendeeHandler struct {
	registrationService services.RegistrationServiceInterface
}

// NewAttendeeHandler creates a new attendee handler
func NewAttendeeHandler(registrationService services.RegistrationServiceInterface) *AttendeeHandler {
	return &AttendeeHandler{registrationService: registrationService}
}

// Register handles POST /attendee/register
func (h *AttendeeHandler) Register(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	var req struct {
		EventID int `json:"event_id"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeInvalid(w, "Invalid request body")
		return
	}
	if req.EventID <= 0 {
		writeInvalid(w, "event_id is required")
		return
	}

	attendee, err := h.registrationService.Register(req.EventID, user)
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, attendee)
}

// Cancel handles DELETE /attendee/{id}. The registration record survives as
// history; only its status moves to cancelled.
func (h *AttendeeHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		writeInvalid(w, "Invalid registration id")
		return
	}

	if err := h.registrationService.Cancel(id, user.ID); err != nil {
		writeError(w, err)
		return
	}

	writeOK(w)
}

// CheckIn handles PUT /attendee/{id}/check-in (organizer only)
func (h *AttendeeHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		writeInvalid(w, "Invalid registration id")
		return
	}

	attendee, err := h.registrationService.CheckIn(id, user)
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, attendee)
}

// MyRegistrations handles POST /attendee/my-registrations/search
func (h *AttendeeHandler) MyRegistrations(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	var req struct {
		PerPage int `json:"per_page"`
		Page    int `json:"page"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeInvalid(w, "Invalid request body")
		return
	}

	attendees, total, err := h.registrationService.ListForUser(user.ID, req.PerPage, req.Page)
	if err != nil {
		writeError(w, err)
		return
	}

	writeList(w, attendees, total)
}

// ListForEvent handles POST /attendee/event/{eventId} (organizer only)
func (h *AttendeeHandler) ListForEvent(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	eventID, err := strconv.Atoi(chi.URLParam(r, "eventId"))
	if err != nil || eventID <= 0 {
		writeInvalid(w, "Invalid event id")
		return
	}

	var req struct {
		Search  string                `json:"search"`
		Status  models.AttendeeStatus `json:"status"`
		PerPage int                   `json:"per_page"`
		Page    int                   `json:"page"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeInvalid(w, "Invalid request body")
		return
	}

	attendees, total, err := h.registrationService.ListForEvent(eventID, user, req.Search, req.Status, req.PerPage, req.Page)
	if err != nil {
		writeError(w, err)
		return
	}

	writeList(w, attendees, total)
}
