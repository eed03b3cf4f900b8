package models

import (
	"errors"
	"strings"
	"time"
)

// EventStatus represents the status of an event
type EventStatus string

const (
	StatusDraft     EventStatus = "draft"
	StatusPublished EventStatus = "published"
	StatusCancelled EventStatus = "cancelled"
	StatusCompleted EventStatus = "completed"
)

// Event represents an event in the system
type Event struct {
	ID                   int         `json:"id" db:"id"`
	Title                string      `json:"title" db:"title"`
	Description          string      `json:"description" db:"description"`
	StartDate            time.Time   `json:"start_date" db:"start_date"`
	EndDate              *time.Time  `json:"end_date" db:"end_date"`
	Venue                string      `json:"venue" db:"venue"`
	Address              string      `json:"address" db:"address"`
	City                 string      `json:"city" db:"city"`
	Country              string      `json:"country" db:"country"`
	Capacity             int         `json:"capacity" db:"capacity"`
	AvailableSpots       int         `json:"available_spots" db:"available_spots"`
	Price                int         `json:"price" db:"price"` // Price in minor currency units
	Currency             string      `json:"currency" db:"currency"`
	Status               EventStatus `json:"status" db:"status"`
	Category             string      `json:"category" db:"category"`
	ImageURL             string      `json:"image_url" db:"image_url"`
	OrganizerID          int         `json:"organizer_id" db:"organizer_id"`
	OrganizerName        string      `json:"organizer_name" db:"organizer_name"`
	OrganizerEmail       string      `json:"organizer_email" db:"organizer_email"`
	RegistrationDeadline *time.Time  `json:"registration_deadline" db:"registration_deadline"`
	CreatedAt            time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt            time.Time   `json:"updated_at" db:"updated_at"`
}

// EventCreateRequest represents the data needed to create a new event
type EventCreateRequest struct {
	Title                string     `json:"title"`
	Description          string     `json:"description"`
	StartDate            time.Time  `json:"start_date"`
	EndDate              *time.Time `json:"end_date"`
	Venue                string     `json:"venue"`
	Address              string     `json:"address"`
	City                 string     `json:"city"`
	Country              string     `json:"country"`
	Capacity             int        `json:"capacity"`
	Price                int        `json:"price"`
	Currency             string     `json:"currency"`
	Category             string     `json:"category"`
	ImageURL             string     `json:"image_url"`
	RegistrationDeadline *time.Time `json:"registration_deadline"`
}

// EventUpdateRequest represents the data that can be updated for an event
type EventUpdateRequest struct {
	Title                string     `json:"title"`
	Description          string     `json:"description"`
	StartDate            time.Time  `json:"start_date"`
	EndDate              *time.Time `json:"end_date"`
	Venue                string     `json:"venue"`
	Address              string     `json:"address"`
	City                 string     `json:"city"`
	Country              string     `json:"country"`
	Capacity             int        `json:"capacity"`
	Price                int        `json:"price"`
	Currency             string     `json:"currency"`
	Category             string     `json:"category"`
	ImageURL             string     `json:"image_url"`
	RegistrationDeadline *time.Time `json:"registration_deadline"`
}

// Validate validates event creation data
func (req *EventCreateRequest) Validate() error {
	if err := validateEventTitle(req.Title); err != nil {
		return err
	}

	if err := validateEventDates(req.StartDate, req.EndDate); err != nil {
		return err
	}

	if err := validateEventCapacity(req.Capacity); err != nil {
		return err
	}

	if err := validateEventPrice(req.Price); err != nil {
		return err
	}

	if err := validateEventDeadline(req.StartDate, req.RegistrationDeadline); err != nil {
		return err
	}

	return nil
}

// Validate validates event update data
func (req *EventUpdateRequest) Validate() error {
	if err := validateEventTitle(req.Title); err != nil {
		return err
	}

	if err := validateEventDates(req.StartDate, req.EndDate); err != nil {
		return err
	}

	if err := validateEventCapacity(req.Capacity); err != nil {
		return err
	}

	if err := validateEventPrice(req.Price); err != nil {
		return err
	}

	if err := validateEventDeadline(req.StartDate, req.RegistrationDeadline); err != nil {
		return err
	}

	return nil
}

// validateEventTitle validates an event title
func validateEventTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return errors.New("event title is required")
	}

	if len(title) > 200 {
		return errors.New("event title must be less than 200 characters")
	}

	return nil
}

// validateEventDates validates an event date range
func validateEventDates(startDate time.Time, endDate *time.Time) error {
	if startDate.IsZero() {
		return errors.New("start date is required")
	}

	if endDate != nil && endDate.Before(startDate) {
		return errors.New("end date must be after start date")
	}

	return nil
}

// validateEventCapacity validates an event capacity (0 means unlimited)
func validateEventCapacity(capacity int) error {
	if capacity < 0 {
		return errors.New("capacity cannot be negative")
	}

	if capacity > 1000000 {
		return errors.New("capacity cannot exceed 1,000,000")
	}

	return nil
}

// validateEventPrice validates an event price
func validateEventPrice(price int) error {
	if price < 0 {
		return errors.New("price cannot be negative")
	}

	return nil
}

// validateEventDeadline validates a registration deadline against the start date
func validateEventDeadline(startDate time.Time, deadline *time.Time) error {
	if deadline != nil && deadline.After(startDate) {
		return errors.New("registration deadline must be before the event start date")
	}

	return nil
}

// IsPublished returns true if the event is visible to attendees
func (e *Event) IsPublished() bool {
	return e.Status == StatusPublished
}

// HasStarted returns true if the event start date has passed
func (e *Event) HasStarted() bool {
	return !e.StartDate.After(time.Now())
}

// IsUnlimited returns true if the event has no capacity constraint
func (e *Event) IsUnlimited() bool {
	return e.Capacity == 0
}

// IsFull returns true if the event has no spots left
func (e *Event) IsFull() bool {
	return e.Capacity > 0 && e.AvailableSpots <= 0
}

// DeadlinePassed returns true if the registration deadline is set and has passed
func (e *Event) DeadlinePassed() bool {
	return e.RegistrationDeadline != nil && e.RegistrationDeadline.Before(time.Now())
}

// IsFree returns true if registration requires no payment
func (e *Event) IsFree() bool {
	return e.Price == 0
}

// PriceInCurrency returns the price in the main currency unit as a float
func (e *Event) PriceInCurrency() float64 {
	return float64(e.Price) / 100.0
}
