package handlers

import (
	"net/http"
	"strconv"

	"event-registration-platform/internal/middleware"
	"event-registration-platform/internal/models"
	"event-registration-platform/internal/services"

	"github.com/go-chi/chi/v5"
)

// EventHandler handles event endpoints
type EventHandler struct {
	eventService services.EventServiceInterface
}

// NewEventHandler creates a new event handler
func NewEventHandler(eventService services.EventServiceInterface) *EventHandler {
	return &EventHandler{eventService: eventService}
}

// Search handles POST /event/search. The request mirrors the frontend's
// search body: free text, category, city, a {field: ±1} sort map and
// pagination.
func (h *EventHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Search   string         `json:"search"`
		Category string         `json:"category"`
		City     string         `json:"city"`
		Sort     map[string]int `json:"sort"`
		PerPage  int            `json:"per_page"`
		Page     int            `json:"page"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeInvalid(w, "Invalid request body")
		return
	}

	events, total, err := h.eventService.SearchPublished(services.EventSearchParams{
		Search:   req.Search,
		Category: req.Category,
		City:     req.City,
		Sort:     req.Sort,
		PerPage:  req.PerPage,
		Page:     req.Page,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeList(w, events, total)
}

// Get handles GET /event/{id}
func (h *EventHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		writeInvalid(w, "Invalid event id")
		return
	}

	event, err := h.eventService.GetByID(id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, event)
}

// Create handles POST /event (organizer only)
func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	var req models.EventCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeInvalid(w, "Invalid request body")
		return
	}

	event, err := h.eventService.Create(&req, user)
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, event)
}

// Update handles PUT /event/{id}
func (h *EventHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		writeInvalid(w, "Invalid event id")
		return
	}

	var req models.EventUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeInvalid(w, "Invalid request body")
		return
	}

	event, err := h.eventService.Update(id, &req, user)
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, event)
}

// Publish handles PUT /event/{id}/publish
func (h *EventHandler) Publish(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		writeInvalid(w, "Invalid event id")
		return
	}

	event, err := h.eventService.Publish(id, user)
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, event)
}

// ListMine handles POST /event/mine/search, the organizer dashboard listing
func (h *EventHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	var req struct {
		PerPage int `json:"per_page"`
		Page    int `json:"page"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeInvalid(w, "Invalid request body")
		return
	}

	events, total, err := h.eventService.ListForOrganizer(user.ID, req.PerPage, req.Page)
	if err != nil {
		writeError(w, err)
		return
	}

	writeList(w, events, total)
}
