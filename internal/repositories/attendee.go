package repositories

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"event-registration-platform/internal/models"
)

// AttendeeRepository handles registration data operations
type AttendeeRepository struct {
	db *sql.DB
}

// NewAttendeeRepository creates a new attendee repository
func NewAttendeeRepository(db *sql.DB) *AttendeeRepository {
	return &AttendeeRepository{db: db}
}

// AttendeeSearchFilters represents filters for registration search
type AttendeeSearchFilters struct {
	EventID  int                   // Filter by event
	UserID   int                   // Filter by user
	Search   string                // Free-text search over name, email, ticket number
	Status   models.AttendeeStatus // Filter by status (empty = any)
	Limit    int
	Offset   int
}

const attendeeColumns = `id, event_id, user_id, name, email,
		event_title, event_start_date, event_end_date, event_city, event_country, event_venue, event_image_url,
		status, ticket_number, qr_code, payment_status, payment_amount, payment_id,
		checked_in_at, notes, created_at, updated_at`

func scanAttendee(row interface {
	Scan(dest ...interface{}) error
}) (*models.Attendee, error) {
	a := &models.Attendee{}
	err := row.Scan(
		&a.ID,
		&a.EventID,
		&a.UserID,
		&a.Name,
		&a.Email,
		&a.EventTitle,
		&a.EventStartDate,
		&a.EventEndDate,
		&a.EventCity,
		&a.EventCountry,
		&a.EventVenue,
		&a.EventImageURL,
		&a.Status,
		&a.TicketNumber,
		&a.QRCode,
		&a.PaymentStatus,
		&a.PaymentAmount,
		&a.PaymentID,
		&a.CheckedInAt,
		&a.Notes,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// Register inserts a registration and, when the event is capacity-constrained,
// decrements available_spots in the same transaction. The decrement is
// conditional on a spot remaining at the moment of the update, so two
// concurrent registrations cannot both take the last spot: the loser sees zero
// rows affected, the transaction rolls back and ErrEventFull is returned.
// A duplicate active (event, user) pair surfaces as ErrAlreadyRegistered via
// the partial unique index; a ticket number collision is retried with a fresh
// number.
func (r *AttendeeRepository) Register(attendee *models.Attendee, enforceCapacity bool) (*models.Attendee, error) {
	if err := attendee.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	tx, err := r.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := fmt.Sprintf(`
		INSERT INTO attendees (event_id, user_id, name, email,
			event_title, event_start_date, event_end_date, event_city, event_country, event_venue, event_image_url,
			status, ticket_number, qr_code, payment_status, payment_amount, payment_id,
			notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
		RETURNING %s`, attendeeColumns)

	now := time.Now()

	// Ensure the ticket number is unique before inserting (regenerate on
	// collision). The unique constraint still backs this up for races.
	ticketNumber := attendee.TicketNumber
	for i := 0; i < 5; i++ {
		var exists bool
		err = tx.QueryRow("SELECT EXISTS(SELECT 1 FROM attendees WHERE ticket_number = $1)", ticketNumber).Scan(&exists)
		if err != nil {
			return nil, fmt.Errorf("failed to check ticket number uniqueness: %w", err)
		}
		if !exists {
			break
		}
		ticketNumber = models.GenerateTicketNumber(attendee.EventID)
	}

	created, err := scanAttendee(tx.QueryRow(
		query,
		attendee.EventID,
		attendee.UserID,
		attendee.Name,
		attendee.Email,
		attendee.EventTitle,
		attendee.EventStartDate,
		attendee.EventEndDate,
		attendee.EventCity,
		attendee.EventCountry,
		attendee.EventVenue,
		attendee.EventImageURL,
		attendee.Status,
		ticketNumber,
		attendee.QRCode,
		attendee.PaymentStatus,
		attendee.PaymentAmount,
		attendee.PaymentID,
		attendee.Notes,
		now,
		now,
	))
	if err != nil {
		if strings.Contains(err.Error(), "attendees_event_user_active") {
			return nil, models.ErrAlreadyRegistered
		}
		return nil, fmt.Errorf("failed to create registration: %w", err)
	}

	if enforceCapacity {
		result, err := tx.Exec(`
			UPDATE events
			SET available_spots = available_spots - 1, updated_at = $2
			WHERE id = $1 AND available_spots > 0`,
			attendee.EventID, now)
		if err != nil {
			return nil, fmt.Errorf("failed to decrement available spots: %w", err)
		}

		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return nil, fmt.Errorf("failed to get rows affected: %w", err)
		}

		if rowsAffected == 0 {
			return nil, models.ErrEventFull
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit registration: %w", err)
	}

	return created, nil
}

// GetByID retrieves a registration by ID
func (r *AttendeeRepository) GetByID(id int) (*models.Attendee, error) {
	query := fmt.Sprintf(`SELECT %s FROM attendees WHERE id = $1`, attendeeColumns)

	attendee, err := scanAttendee(r.db.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("failed to get registration: %w", err)
	}

	return attendee, nil
}

// HasActiveRegistration reports whether a non-cancelled registration exists
// for the given (event, user) pair
func (r *AttendeeRepository) HasActiveRegistration(eventID, userID int) (bool, error) {
	var exists bool
	err := r.db.QueryRow(`
		SELECT EXISTS(
			SELECT 1 FROM attendees
			WHERE event_id = $1 AND user_id = $2 AND status <> $3
		)`, eventID, userID, models.AttendeeCancelled).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check existing registration: %w", err)
	}
	return exists, nil
}

// Cancel marks a registration as cancelled and restores the event spot in the
// same transaction. The restore is conditional so available_spots never
// exceeds capacity, and unconstrained events (capacity 0) are left alone.
// Cancelling an already-cancelled registration is a no-op.
func (r *AttendeeRepository) Cancel(id int, refund bool) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now()

	paymentUpdate := ""
	if refund {
		paymentUpdate = ", payment_status = 'refunded'"
	}

	var eventID int
	err = tx.QueryRow(fmt.Sprintf(`
		UPDATE attendees
		SET status = $2, updated_at = $3%s
		WHERE id = $1 AND status <> $2
		RETURNING event_id`, paymentUpdate),
		id, models.AttendeeCancelled, now).Scan(&eventID)

	if err != nil {
		if err == sql.ErrNoRows {
			// Already cancelled; nothing to do
			return nil
		}
		return fmt.Errorf("failed to cancel registration: %w", err)
	}

	_, err = tx.Exec(`
		UPDATE events
		SET available_spots = available_spots + 1, updated_at = $2
		WHERE id = $1 AND capacity > 0 AND available_spots < capacity`,
		eventID, now)
	if err != nil {
		return fmt.Errorf("failed to restore available spot: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit cancellation: %w", err)
	}

	return nil
}

// CheckIn marks a confirmed registration as checked in and stamps the time
func (r *AttendeeRepository) CheckIn(id int) (*models.Attendee, error) {
	now := time.Now()

	query := fmt.Sprintf(`
		UPDATE attendees
		SET status = $2, checked_in_at = $3, updated_at = $3
		WHERE id = $1 AND status = $4
		RETURNING %s`, attendeeColumns)

	attendee, err := scanAttendee(r.db.QueryRow(query, id, models.AttendeeCheckedIn, now, models.AttendeeConfirmed))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("registration cannot be checked in: %w", models.ErrInvalidInput)
		}
		return nil, fmt.Errorf("failed to check in registration: %w", err)
	}

	return attendee, nil
}

// Search searches registrations with filters and pagination, returning the
// matching page and the total count
func (r *AttendeeRepository) Search(filters AttendeeSearchFilters) ([]*models.Attendee, int, error) {
	var conditions []string
	var args []interface{}
	argIndex := 1

	if filters.EventID > 0 {
		conditions = append(conditions, fmt.Sprintf("event_id = $%d", argIndex))
		args = append(args, filters.EventID)
		argIndex++
	}

	if filters.UserID > 0 {
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", argIndex))
		args = append(args, filters.UserID)
		argIndex++
	}

	if filters.Search != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(name ILIKE $%d OR email ILIKE $%d OR ticket_number ILIKE $%d)", argIndex, argIndex, argIndex))
		args = append(args, "%"+filters.Search+"%")
		argIndex++
	}

	if filters.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIndex))
		args = append(args, filters.Status)
		argIndex++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	if filters.Limit <= 0 {
		filters.Limit = 20
	}
	if filters.Offset < 0 {
		filters.Offset = 0
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM attendees %s", whereClause)
	var total int
	if err := r.db.QueryRow(countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to get registration count: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM attendees
		%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d`,
		attendeeColumns, whereClause, argIndex, argIndex+1)

	args = append(args, filters.Limit, filters.Offset)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search registrations: %w", err)
	}
	defer rows.Close()

	var attendees []*models.Attendee
	for rows.Next() {
		attendee, err := scanAttendee(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan registration: %w", err)
		}
		attendees = append(attendees, attendee)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating registrations: %w", err)
	}

	return attendees, total, nil
}
