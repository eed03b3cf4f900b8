package services

import (
	"event-registration-platform/internal/models"
)

// EventServiceInterface defines the event operations used by handlers
type EventServiceInterface interface {
	SearchPublished(params EventSearchParams) ([]*models.Event, int, error)
	GetByID(id int) (*models.Event, error)
	Create(req *models.EventCreateRequest, organizer *models.User) (*models.Event, error)
	Update(id int, req *models.EventUpdateRequest, requestingUser *models.User) (*models.Event, error)
	Publish(id int, requestingUser *models.User) (*models.Event, error)
	ListForOrganizer(organizerID int, perPage, page int) ([]*models.Event, int, error)
}

// RegistrationServiceInterface defines the registration operations used by handlers
type RegistrationServiceInterface interface {
	Register(eventID int, user *models.User) (*models.Attendee, error)
	Cancel(registrationID int, requestingUserID int) error
	CheckIn(registrationID int, requestingUser *models.User) (*models.Attendee, error)
	ListForUser(userID int, perPage, page int) ([]*models.Attendee, int, error)
	ListForEvent(eventID int, requestingUser *models.User, search string, status models.AttendeeStatus, perPage, page int) ([]*models.Attendee, int, error)
}

// AuthServiceInterface defines the auth operations used by handlers
type AuthServiceInterface interface {
	Signup(req *models.UserCreateRequest) (*models.User, error)
	Login(email, password string) (*models.User, error)
	GetUser(id int) (*models.User, error)
}

// Compile-time interface checks
var (
	_ EventServiceInterface        = (*EventService)(nil)
	_ RegistrationServiceInterface = (*RegistrationService)(nil)
	_ AuthServiceInterface         = (*AuthService)(nil)
)
