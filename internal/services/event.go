package services

import (
	"event-registration-platform/internal/models"
	"event-registration-platform/internal/repositories"
)

// EventService handles event-related business logic
type EventService struct {
	eventRepo EventRepository
}

// NewEventService creates a new event service
func NewEventService(eventRepo EventRepository) *EventService {
	return &EventService{eventRepo: eventRepo}
}

// EventSearchParams represents a public event search request
type EventSearchParams struct {
	Search   string
	Category string
	City     string
	Sort     map[string]int
	PerPage  int
	Page     int
}

// SearchPublished searches published events only. Drafts and cancelled events
// never appear in public listings.
func (s *EventService) SearchPublished(params EventSearchParams) ([]*models.Event, int, error) {
	limit, offset := pageToLimitOffset(params.PerPage, params.Page)

	return s.eventRepo.Search(repositories.EventSearchFilters{
		Search:   params.Search,
		Category: params.Category,
		City:     params.City,
		Status:   models.StatusPublished,
		Sort:     params.Sort,
		Limit:    limit,
		Offset:   offset,
	})
}

// GetByID retrieves an event by ID
func (s *EventService) GetByID(id int) (*models.Event, error) {
	return s.eventRepo.GetByID(id)
}

// Create creates a new draft event for an organizer
func (s *EventService) Create(req *models.EventCreateRequest, organizer *models.User) (*models.Event, error) {
	if !organizer.IsOrganizer() {
		return nil, models.ErrForbidden
	}

	return s.eventRepo.Create(req, organizer)
}

// Update updates an event owned by the requesting user
func (s *EventService) Update(id int, req *models.EventUpdateRequest, requestingUser *models.User) (*models.Event, error) {
	event, err := s.eventRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if event.OrganizerID != requestingUser.ID && !requestingUser.IsAdmin() {
		return nil, models.ErrForbidden
	}

	return s.eventRepo.Update(id, req)
}

// Publish moves an event from draft to published
func (s *EventService) Publish(id int, requestingUser *models.User) (*models.Event, error) {
	event, err := s.eventRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if event.OrganizerID != requestingUser.ID && !requestingUser.IsAdmin() {
		return nil, models.ErrForbidden
	}

	if err := s.eventRepo.UpdateStatus(id, models.StatusPublished); err != nil {
		return nil, err
	}

	return s.eventRepo.GetByID(id)
}

// ListForOrganizer retrieves events owned by the requesting organizer,
// regardless of status
func (s *EventService) ListForOrganizer(organizerID int, perPage, page int) ([]*models.Event, int, error) {
	limit, offset := pageToLimitOffset(perPage, page)

	return s.eventRepo.Search(repositories.EventSearchFilters{
		OrganizerID: organizerID,
		Limit:       limit,
		Offset:      offset,
	})
}
