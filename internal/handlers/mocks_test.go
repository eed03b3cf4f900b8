package handlers

import (
	"event-registration-platform/internal/models"
	"event-registration-platform/internal/services"
)

// Mock services for handler tests. Each func field defaults to nil; tests set
// only the operations they exercise.

type mockRegistrationService struct {
	registerFunc     func(eventID int, user *models.User) (*models.Attendee, error)
	cancelFunc       func(registrationID int, requestingUserID int) error
	checkInFunc      func(registrationID int, requestingUser *models.User) (*models.Attendee, error)
	listForUserFunc  func(userID int, perPage, page int) ([]*models.Attendee, int, error)
	listForEventFunc func(eventID int, requestingUser *models.User, search string, status models.AttendeeStatus, perPage, page int) ([]*models.Attendee, int, error)
}

func (m *mockRegistrationService) Register(eventID int, user *models.User) (*models.Attendee, error) {
	return m.registerFunc(eventID, user)
}

func (m *mockRegistrationService) Cancel(registrationID int, requestingUserID int) error {
	return m.cancelFunc(registrationID, requestingUserID)
}

func (m *mockRegistrationService) CheckIn(registrationID int, requestingUser *models.User) (*models.Attendee, error) {
	return m.checkInFunc(registrationID, requestingUser)
}

func (m *mockRegistrationService) ListForUser(userID int, perPage, page int) ([]*models.Attendee, int, error) {
	return m.listForUserFunc(userID, perPage, page)
}

func (m *mockRegistrationService) ListForEvent(eventID int, requestingUser *models.User, search string, status models.AttendeeStatus, perPage, page int) ([]*models.Attendee, int, error) {
	return m.listForEventFunc(eventID, requestingUser, search, status, perPage, page)
}

type mockEventService struct {
	searchPublishedFunc  func(params services.EventSearchParams) ([]*models.Event, int, error)
	getByIDFunc          func(id int) (*models.Event, error)
	createFunc           func(req *models.EventCreateRequest, organizer *models.User) (*models.Event, error)
	updateFunc           func(id int, req *models.EventUpdateRequest, requestingUser *models.User) (*models.Event, error)
	publishFunc          func(id int, requestingUser *models.User) (*models.Event, error)
	listForOrganizerFunc func(organizerID int, perPage, page int) ([]*models.Event, int, error)
}

func (m *mockEventService) SearchPublished(params services.EventSearchParams) ([]*models.Event, int, error) {
	return m.searchPublishedFunc(params)
}

func (m *mockEventService) GetByID(id int) (*models.Event, error) {
	return m.getByIDFunc(id)
}

func (m *mockEventService) Create(req *models.EventCreateRequest, organizer *models.User) (*models.Event, error) {
	return m.createFunc(req, organizer)
}

func (m *mockEventService) Update(id int, req *models.EventUpdateRequest, requestingUser *models.User) (*models.Event, error) {
	return m.updateFunc(id, req, requestingUser)
}

func (m *mockEventService) Publish(id int, requestingUser *models.User) (*models.Event, error) {
	return m.publishFunc(id, requestingUser)
}

func (m *mockEventService) ListForOrganizer(organizerID int, perPage, page int) ([]*models.Event, int, error) {
	return m.listForOrganizerFunc(organizerID, perPage, page)
}

type mockAuthService struct {
	signupFunc  func(req *models.UserCreateRequest) (*models.User, error)
	loginFunc   func(email, password string) (*models.User, error)
	getUserFunc func(id int) (*models.User, error)
}

func (m *mockAuthService) Signup(req *models.UserCreateRequest) (*models.User, error) {
	return m.signupFunc(req)
}

func (m *mockAuthService) Login(email, password string) (*models.User, error) {
	return m.loginFunc(email, password)
}

func (m *mockAuthService) GetUser(id int) (*models.User, error) {
	return m.getUserFunc(id)
}

// Interface checks
var (
	_ services.RegistrationServiceInterface = (*mockRegistrationService)(nil)
	_ services.EventServiceInterface        = (*mockEventService)(nil)
	_ services.AuthServiceInterface         = (*mockAuthService)(nil)
)
