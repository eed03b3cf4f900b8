package repositories

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"event-registration-platform/internal/models"
)

// EventRepository handles event data operations
type EventRepository struct {
	db *sql.DB
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *sql.DB) *EventRepository {
	return &EventRepository{db: db}
}

// EventSearchFilters represents filters for event search
type EventSearchFilters struct {
	Search      string             // Free-text search over title and description
	Category    string             // Filter by category
	City        string             // Filter by city
	Status      models.EventStatus // Filter by status (empty = any)
	OrganizerID int                // Filter by organizer
	Sort        map[string]int     // Field -> 1 (asc) / -1 (desc)
	Limit       int
	Offset      int
}

const eventColumns = `id, title, description, start_date, end_date, venue, address, city, country,
		capacity, available_spots, price, currency, status, category, image_url,
		organizer_id, organizer_name, organizer_email, registration_deadline, created_at, updated_at`

func scanEvent(row interface {
	Scan(dest ...interface{}) error
}) (*models.Event, error) {
	event := &models.Event{}
	err := row.Scan(
		&event.ID,
		&event.Title,
		&event.Description,
		&event.StartDate,
		&event.EndDate,
		&event.Venue,
		&event.Address,
		&event.City,
		&event.Country,
		&event.Capacity,
		&event.AvailableSpots,
		&event.Price,
		&event.Currency,
		&event.Status,
		&event.Category,
		&event.ImageURL,
		&event.OrganizerID,
		&event.OrganizerName,
		&event.OrganizerEmail,
		&event.RegistrationDeadline,
		&event.CreatedAt,
		&event.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return event, nil
}

// Create creates a new event. Available spots start equal to capacity and the
// organizer's name and email are copied onto the row.
func (r *EventRepository) Create(req *models.EventCreateRequest, organizer *models.User) (*models.Event, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	currency := req.Currency
	if currency == "" {
		currency = "EUR"
	}
	category := req.Category
	if category == "" {
		category = "other"
	}

	query := fmt.Sprintf(`
		INSERT INTO events (title, description, start_date, end_date, venue, address, city, country,
			capacity, available_spots, price, currency, status, category, image_url,
			organizer_id, organizer_name, organizer_email, registration_deadline, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
		RETURNING %s`, eventColumns)

	now := time.Now()
	event, err := scanEvent(r.db.QueryRow(
		query,
		req.Title,
		req.Description,
		req.StartDate,
		req.EndDate,
		req.Venue,
		req.Address,
		req.City,
		req.Country,
		req.Capacity,
		req.Capacity, // available_spots starts at capacity
		req.Price,
		currency,
		models.StatusDraft,
		category,
		req.ImageURL,
		organizer.ID,
		organizer.Name,
		organizer.Email,
		req.RegistrationDeadline,
		now,
		now,
	))

	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	return event, nil
}

// GetByID retrieves an event by ID
func (r *EventRepository) GetByID(id int) (*models.Event, error) {
	query := fmt.Sprintf(`SELECT %s FROM events WHERE id = $1`, eventColumns)

	event, err := scanEvent(r.db.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	return event, nil
}

// Update updates an event. When capacity changes, available_spots is adjusted
// by the same delta and floored at zero so existing registrations are kept.
func (r *EventRepository) Update(id int, req *models.EventUpdateRequest) (*models.Event, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	query := fmt.Sprintf(`
		UPDATE events
		SET title = $2, description = $3, start_date = $4, end_date = $5, venue = $6,
			address = $7, city = $8, country = $9,
			available_spots = GREATEST(available_spots + ($10 - capacity), 0),
			capacity = $10, price = $11, currency = $12, category = $13, image_url = $14,
			registration_deadline = $15, updated_at = $16
		WHERE id = $1
		RETURNING %s`, eventColumns)

	event, err := scanEvent(r.db.QueryRow(
		query,
		id,
		req.Title,
		req.Description,
		req.StartDate,
		req.EndDate,
		req.Venue,
		req.Address,
		req.City,
		req.Country,
		req.Capacity,
		req.Price,
		req.Currency,
		req.Category,
		req.ImageURL,
		req.RegistrationDeadline,
		time.Now(),
	))

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to update event: %w", err)
	}

	return event, nil
}

// UpdateStatus updates an event's status
func (r *EventRepository) UpdateStatus(id int, status models.EventStatus) error {
	query := `UPDATE events SET status = $2, updated_at = $3 WHERE id = $1`

	result, err := r.db.Exec(query, id, status, time.Now())
	if err != nil {
		return fmt.Errorf("failed to update event status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return models.ErrEventNotFound
	}

	return nil
}

// Search searches for events with filters and pagination, returning the
// matching page and the total count
func (r *EventRepository) Search(filters EventSearchFilters) ([]*models.Event, int, error) {
	var conditions []string
	var args []interface{}
	argIndex := 1

	if filters.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(title ILIKE $%d OR description ILIKE $%d)", argIndex, argIndex))
		args = append(args, "%"+filters.Search+"%")
		argIndex++
	}

	if filters.Category != "" {
		conditions = append(conditions, fmt.Sprintf("category = $%d", argIndex))
		args = append(args, filters.Category)
		argIndex++
	}

	if filters.City != "" {
		conditions = append(conditions, fmt.Sprintf("city ILIKE $%d", argIndex))
		args = append(args, filters.City)
		argIndex++
	}

	if filters.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIndex))
		args = append(args, filters.Status)
		argIndex++
	}

	if filters.OrganizerID > 0 {
		conditions = append(conditions, fmt.Sprintf("organizer_id = $%d", argIndex))
		args = append(args, filters.OrganizerID)
		argIndex++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	orderBy := buildEventOrderBy(filters.Sort)

	if filters.Limit <= 0 {
		filters.Limit = 20
	}
	if filters.Offset < 0 {
		filters.Offset = 0
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM events %s", whereClause)
	var total int
	if err := r.db.QueryRow(countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to get event count: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM events
		%s
		%s
		LIMIT $%d OFFSET $%d`,
		eventColumns, whereClause, orderBy, argIndex, argIndex+1)

	args = append(args, filters.Limit, filters.Offset)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search events: %w", err)
	}
	defer rows.Close()

	var events []*models.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating events: %w", err)
	}

	return events, total, nil
}

// buildEventOrderBy translates a {field: ±1} sort map into an ORDER BY clause.
// Only whitelisted columns are accepted; everything else falls back to the
// default ordering by start date.
func buildEventOrderBy(sort map[string]int) string {
	allowed := map[string]bool{
		"start_date": true,
		"created_at": true,
		"title":      true,
		"price":      true,
		"city":       true,
	}

	for field, direction := range sort {
		if !allowed[field] {
			continue
		}
		dir := "ASC"
		if direction < 0 {
			dir = "DESC"
		}
		return fmt.Sprintf("ORDER BY %s %s", field, dir)
	}

	return "ORDER BY start_date ASC"
}
