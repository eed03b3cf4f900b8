package models

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"
)

// AttendeeStatus represents the status of a registration
type AttendeeStatus string

const (
	AttendeePending   AttendeeStatus = "pending"
	AttendeeConfirmed AttendeeStatus = "confirmed"
	AttendeeCancelled AttendeeStatus = "cancelled"
	AttendeeCheckedIn AttendeeStatus = "checked_in"
)

// PaymentStatus represents the payment state of a registration
type PaymentStatus string

const (
	PaymentFree     PaymentStatus = "free"
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

// Attendee represents a user's registration for an event. The event_* fields
// are a snapshot of the event at registration time, not a live join: later
// edits to the event do not change what the attendee signed up for.
type Attendee struct {
	ID      int    `json:"id" db:"id"`
	EventID int    `json:"event_id" db:"event_id"`
	UserID  int    `json:"user_id" db:"user_id"`
	Name    string `json:"name" db:"name"`
	Email   string `json:"email" db:"email"`

	EventTitle     string     `json:"event_title" db:"event_title"`
	EventStartDate time.Time  `json:"event_start_date" db:"event_start_date"`
	EventEndDate   *time.Time `json:"event_end_date" db:"event_end_date"`
	EventCity      string     `json:"event_city" db:"event_city"`
	EventCountry   string     `json:"event_country" db:"event_country"`
	EventVenue     string     `json:"event_venue" db:"event_venue"`
	EventImageURL  string     `json:"event_image_url" db:"event_image_url"`

	Status       AttendeeStatus `json:"status" db:"status"`
	TicketNumber string         `json:"ticket_number" db:"ticket_number"`
	QRCode       string         `json:"qr_code" db:"qr_code"`

	PaymentStatus PaymentStatus `json:"payment_status" db:"payment_status"`
	PaymentAmount int           `json:"payment_amount" db:"payment_amount"`
	PaymentID     *string       `json:"payment_id" db:"payment_id"`

	CheckedInAt *time.Time `json:"checked_in_at" db:"checked_in_at"`
	Notes       string     `json:"notes" db:"notes"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}

// Validate validates the attendee data
func (a *Attendee) Validate() error {
	if a.EventID <= 0 {
		return errors.New("event id is required")
	}

	if a.UserID <= 0 {
		return errors.New("user id is required")
	}

	if strings.TrimSpace(a.Name) == "" {
		return errors.New("attendee name is required")
	}

	if err := validateEmail(a.Email); err != nil {
		return err
	}

	if a.EventTitle == "" {
		return errors.New("event title snapshot is required")
	}

	if a.EventStartDate.IsZero() {
		return errors.New("event start date snapshot is required")
	}

	if err := a.validateStatus(); err != nil {
		return err
	}

	if err := a.validatePaymentStatus(); err != nil {
		return err
	}

	return nil
}

// validateStatus validates the registration status
func (a *Attendee) validateStatus() error {
	switch a.Status {
	case AttendeePending, AttendeeConfirmed, AttendeeCancelled, AttendeeCheckedIn:
		return nil
	default:
		return errors.New("invalid registration status")
	}
}

// validatePaymentStatus validates the payment status
func (a *Attendee) validatePaymentStatus() error {
	switch a.PaymentStatus {
	case PaymentFree, PaymentPending, PaymentPaid, PaymentRefunded:
		return nil
	default:
		return errors.New("invalid payment status")
	}
}

// IsActive returns true if the registration counts against event capacity
func (a *Attendee) IsActive() bool {
	return a.Status != AttendeeCancelled
}

// IsCancelled returns true if the registration has been cancelled
func (a *Attendee) IsCancelled() bool {
	return a.Status == AttendeeCancelled
}

// CanBeCancelled returns true if the registration can still be cancelled
func (a *Attendee) CanBeCancelled() bool {
	return a.Status == AttendeePending || a.Status == AttendeeConfirmed
}

// CanBeCheckedIn returns true if the attendee can be checked in at the venue
func (a *Attendee) CanBeCheckedIn() bool {
	return a.Status == AttendeeConfirmed
}

// CanTransitionTo reports whether moving to the given status is a legal
// lifecycle transition. Cancelled is terminal.
func (a *Attendee) CanTransitionTo(next AttendeeStatus) bool {
	switch a.Status {
	case AttendeePending:
		return next == AttendeeConfirmed || next == AttendeeCancelled
	case AttendeeConfirmed:
		return next == AttendeeCheckedIn || next == AttendeeCancelled
	default:
		return false
	}
}

// PaymentStatusForPrice returns the initial payment status for a registration
// based on the event price
func PaymentStatusForPrice(price int) PaymentStatus {
	if price == 0 {
		return PaymentFree
	}
	return PaymentPending
}

// GenerateTicketNumber generates a ticket number for a registration. The
// format is TKT-<event fragment>-<random suffix>, all uppercase. The random
// suffix makes collisions unlikely but uniqueness is guaranteed only by the
// unique constraint on ticket_number; callers must regenerate on conflict.
func GenerateTicketNumber(eventID int) string {
	fragment := fmt.Sprintf("%06d", eventID)
	if len(fragment) > 6 {
		fragment = fragment[len(fragment)-6:]
	}

	suffix := make([]byte, 4)
	if _, err := rand.Read(suffix); err != nil {
		// Fallback to timestamp-based suffix if crypto/rand fails
		return strings.ToUpper(fmt.Sprintf("TKT-%s-%08X", fragment, time.Now().UnixNano()&0xFFFFFFFF))
	}

	return strings.ToUpper(fmt.Sprintf("TKT-%s-%s", fragment, hex.EncodeToString(suffix)))
}
