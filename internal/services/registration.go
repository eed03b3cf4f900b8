package services

import (
	"fmt"

	"event-registration-platform/internal/models"
	"event-registration-platform/internal/repositories"

	"github.com/google/uuid"
)

// RegistrationService handles attendee registration business logic
type RegistrationService struct {
	attendeeRepo AttendeeRepository
	eventRepo    EventRepository
}

// AttendeeRepository interface for registration data operations
type AttendeeRepository interface {
	Register(attendee *models.Attendee, enforceCapacity bool) (*models.Attendee, error)
	GetByID(id int) (*models.Attendee, error)
	HasActiveRegistration(eventID, userID int) (bool, error)
	Cancel(id int, refund bool) error
	CheckIn(id int) (*models.Attendee, error)
	Search(filters repositories.AttendeeSearchFilters) ([]*models.Attendee, int, error)
}

// EventRepository interface for event data operations
type EventRepository interface {
	Create(req *models.EventCreateRequest, organizer *models.User) (*models.Event, error)
	GetByID(id int) (*models.Event, error)
	Update(id int, req *models.EventUpdateRequest) (*models.Event, error)
	UpdateStatus(id int, status models.EventStatus) error
	Search(filters repositories.EventSearchFilters) ([]*models.Event, int, error)
}

// NewRegistrationService creates a new registration service
func NewRegistrationService(attendeeRepo AttendeeRepository, eventRepo EventRepository) *RegistrationService {
	return &RegistrationService{
		attendeeRepo: attendeeRepo,
		eventRepo:    eventRepo,
	}
}

// Register registers a user for an event. Availability checks run in order:
// the event must exist, be published, not have started, still be inside its
// registration deadline, the user must not already hold an active
// registration, and a spot must remain. The insert and the capacity decrement
// are one atomic unit at the store, so the pre-checks here are advisory: the
// store settles races on the last spot and on duplicate registrations.
func (s *RegistrationService) Register(eventID int, user *models.User) (*models.Attendee, error) {
	event, err := s.eventRepo.GetByID(eventID)
	if err != nil {
		return nil, err
	}

	if !event.IsPublished() {
		return nil, models.ErrEventNotAvailable
	}

	if event.HasStarted() {
		return nil, models.ErrEventNotAvailable
	}

	if event.DeadlinePassed() {
		return nil, models.ErrRegistrationClosed
	}

	registered, err := s.attendeeRepo.HasActiveRegistration(eventID, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing registration: %w", err)
	}
	if registered {
		return nil, models.ErrAlreadyRegistered
	}

	if event.IsFull() {
		return nil, models.ErrEventFull
	}

	attendee := &models.Attendee{
		EventID: event.ID,
		UserID:  user.ID,
		Name:    user.Name,
		Email:   user.Email,

		// Snapshot of the event as it is right now; later event edits must
		// not rewrite registration history.
		EventTitle:     event.Title,
		EventStartDate: event.StartDate,
		EventEndDate:   event.EndDate,
		EventCity:      event.City,
		EventCountry:   event.Country,
		EventVenue:     event.Venue,
		EventImageURL:  event.ImageURL,

		Status:        models.AttendeeConfirmed,
		TicketNumber:  models.GenerateTicketNumber(event.ID),
		QRCode:        uuid.NewString(),
		PaymentStatus: models.PaymentStatusForPrice(event.Price),
		PaymentAmount: event.Price,
	}

	return s.attendeeRepo.Register(attendee, !event.IsUnlimited())
}

// Cancel cancels a registration owned by the requesting user. Cancelling an
// already-cancelled registration succeeds without further effect.
func (s *RegistrationService) Cancel(registrationID int, requestingUserID int) error {
	attendee, err := s.attendeeRepo.GetByID(registrationID)
	if err != nil {
		return err
	}

	if attendee.UserID != requestingUserID {
		return models.ErrForbidden
	}

	if attendee.IsCancelled() {
		return nil
	}

	if !attendee.CanBeCancelled() {
		return fmt.Errorf("registration cannot be cancelled in current status %s: %w",
			attendee.Status, models.ErrInvalidInput)
	}

	refund := attendee.PaymentStatus == models.PaymentPaid
	return s.attendeeRepo.Cancel(registrationID, refund)
}

// CheckIn marks a confirmed registration as checked in. Only the event's
// organizer (or an admin) may check attendees in.
func (s *RegistrationService) CheckIn(registrationID int, requestingUser *models.User) (*models.Attendee, error) {
	attendee, err := s.attendeeRepo.GetByID(registrationID)
	if err != nil {
		return nil, err
	}

	event, err := s.eventRepo.GetByID(attendee.EventID)
	if err != nil {
		return nil, err
	}

	if event.OrganizerID != requestingUser.ID && !requestingUser.IsAdmin() {
		return nil, models.ErrForbidden
	}

	if !attendee.CanBeCheckedIn() {
		return nil, fmt.Errorf("registration cannot be checked in from status %s: %w",
			attendee.Status, models.ErrInvalidInput)
	}

	return s.attendeeRepo.CheckIn(registrationID)
}

// ListForUser retrieves the requesting user's own registrations, newest first
func (s *RegistrationService) ListForUser(userID int, perPage, page int) ([]*models.Attendee, int, error) {
	limit, offset := pageToLimitOffset(perPage, page)

	return s.attendeeRepo.Search(repositories.AttendeeSearchFilters{
		UserID: userID,
		Limit:  limit,
		Offset: offset,
	})
}

// ListForEvent retrieves registrations for an event. Only the event's
// organizer (or an admin) may see the attendee list.
func (s *RegistrationService) ListForEvent(eventID int, requestingUser *models.User, search string, status models.AttendeeStatus, perPage, page int) ([]*models.Attendee, int, error) {
	event, err := s.eventRepo.GetByID(eventID)
	if err != nil {
		return nil, 0, err
	}

	if event.OrganizerID != requestingUser.ID && !requestingUser.IsAdmin() {
		return nil, 0, models.ErrForbidden
	}

	limit, offset := pageToLimitOffset(perPage, page)

	return s.attendeeRepo.Search(repositories.AttendeeSearchFilters{
		EventID: eventID,
		Search:  search,
		Status:  status,
		Limit:   limit,
		Offset:  offset,
	})
}

// pageToLimitOffset converts 1-based page parameters into limit/offset
func pageToLimitOffset(perPage, page int) (int, int) {
	if perPage <= 0 {
		perPage = 20
	}
	if perPage > 100 {
		perPage = 100
	}
	if page < 1 {
		page = 1
	}
	return perPage, (page - 1) * perPage
}
