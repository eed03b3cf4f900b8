package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"event-registration-platform/internal/models"
)

// Response is the JSON envelope returned by every endpoint
type Response struct {
	Ok      bool        `json:"ok"`
	Data    interface{} `json:"data,omitempty"`
	Total   *int        `json:"total,omitempty"`
	Code    string      `json:"code,omitempty"`
	Message string      `json:"message,omitempty"`
}

// writeData writes a successful response with a single payload
func writeData(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, Response{Ok: true, Data: data})
}

// writeList writes a successful response with a paginated payload
func writeList(w http.ResponseWriter, data interface{}, total int) {
	writeJSON(w, http.StatusOK, Response{Ok: true, Data: data, Total: &total})
}

// writeOK writes a successful response with no payload
func writeOK(w http.ResponseWriter) {
	writeJSON(w, http.StatusOK, Response{Ok: true})
}

// writeError maps domain errors onto stable API codes. Anything not in the
// taxonomy is surfaced as SERVER_ERROR so clients never mistake a store
// failure for a business condition.
func writeError(w http.ResponseWriter, err error) {
	status, code, message := classifyError(err)
	if status == http.StatusInternalServerError {
		log.Printf("ERROR: %v", err)
	}
	writeJSON(w, status, Response{Ok: false, Code: code, Message: message})
}

// writeInvalid writes an INVALID_INPUT response with a specific message
func writeInvalid(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, Response{Ok: false, Code: "INVALID_INPUT", Message: message})
}

func classifyError(err error) (int, string, string) {
	switch {
	case errors.Is(err, models.ErrEventNotFound),
		errors.Is(err, models.ErrRegistrationNotFound),
		errors.Is(err, models.ErrUserNotFound):
		return http.StatusNotFound, "NOT_FOUND", "Resource not found"
	case errors.Is(err, models.ErrForbidden):
		return http.StatusForbidden, "FORBIDDEN", "You do not have permission to do that"
	case errors.Is(err, models.ErrUnauthorized):
		return http.StatusUnauthorized, "UNAUTHORIZED", "Invalid credentials"
	case errors.Is(err, models.ErrAlreadyRegistered):
		return http.StatusConflict, "ALREADY_REGISTERED", "You are already registered for this event"
	case errors.Is(err, models.ErrEventFull):
		return http.StatusConflict, "EVENT_FULL", "This event has no available spots"
	case errors.Is(err, models.ErrEventNotAvailable):
		return http.StatusBadRequest, "EVENT_NOT_AVAILABLE", "This event is not open for registration"
	case errors.Is(err, models.ErrRegistrationClosed):
		return http.StatusBadRequest, "REGISTRATION_CLOSED", "The registration deadline has passed"
	case errors.Is(err, models.ErrInvalidInput),
		errors.Is(err, models.ErrDuplicateEntry):
		return http.StatusBadRequest, "INVALID_INPUT", err.Error()
	default:
		return http.StatusInternalServerError, "SERVER_ERROR", "Something went wrong. Please try again."
	}
}

func writeJSON(w http.ResponseWriter, status int, body Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

// decodeJSON decodes a request body into dst
func decodeJSON(r *http.Request, dst interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}
