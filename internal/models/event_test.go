package models

import (
	"testing"
	"time"
)

func validEventCreateRequest() *EventCreateRequest {
	return &EventCreateRequest{
		Title:     "Tech Conference 2026",
		StartDate: time.Now().Add(30 * 24 * time.Hour),
		Venue:     "Convention Center",
		City:      "San Francisco",
		Country:   "USA",
		Capacity:  500,
		Price:     0,
		Currency:  "USD",
		Category:  "conference",
	}
}

func TestEventCreateRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(req *EventCreateRequest)
		wantErr bool
	}{
		{
			name:    "valid request",
			mutate:  func(req *EventCreateRequest) {},
			wantErr: false,
		},
		{
			name:    "blank title",
			mutate:  func(req *EventCreateRequest) { req.Title = "  " },
			wantErr: true,
		},
		{
			name: "title too long",
			mutate: func(req *EventCreateRequest) {
				title := make([]byte, 201)
				for i := range title {
					title[i] = 'a'
				}
				req.Title = string(title)
			},
			wantErr: true,
		},
		{
			name:    "missing start date",
			mutate:  func(req *EventCreateRequest) { req.StartDate = time.Time{} },
			wantErr: true,
		},
		{
			name: "end date before start date",
			mutate: func(req *EventCreateRequest) {
				end := req.StartDate.Add(-time.Hour)
				req.EndDate = &end
			},
			wantErr: true,
		},
		{
			name:    "negative capacity",
			mutate:  func(req *EventCreateRequest) { req.Capacity = -1 },
			wantErr: true,
		},
		{
			name:    "zero capacity means unlimited",
			mutate:  func(req *EventCreateRequest) { req.Capacity = 0 },
			wantErr: false,
		},
		{
			name:    "capacity too large",
			mutate:  func(req *EventCreateRequest) { req.Capacity = 1000001 },
			wantErr: true,
		},
		{
			name:    "negative price",
			mutate:  func(req *EventCreateRequest) { req.Price = -100 },
			wantErr: true,
		},
		{
			name: "deadline after start date",
			mutate: func(req *EventCreateRequest) {
				deadline := req.StartDate.Add(time.Hour)
				req.RegistrationDeadline = &deadline
			},
			wantErr: true,
		},
		{
			name: "deadline before start date",
			mutate: func(req *EventCreateRequest) {
				deadline := req.StartDate.Add(-24 * time.Hour)
				req.RegistrationDeadline = &deadline
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validEventCreateRequest()
			tt.mutate(req)

			err := req.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestEventAvailability(t *testing.T) {
	future := time.Now().Add(24 * time.Hour)
	past := time.Now().Add(-24 * time.Hour)

	t.Run("published future event is available", func(t *testing.T) {
		event := &Event{Status: StatusPublished, StartDate: future}
		if !event.IsPublished() {
			t.Error("IsPublished() = false, want true")
		}
		if event.HasStarted() {
			t.Error("HasStarted() = true, want false")
		}
	})

	t.Run("draft event is not published", func(t *testing.T) {
		event := &Event{Status: StatusDraft, StartDate: future}
		if event.IsPublished() {
			t.Error("IsPublished() = true, want false")
		}
	})

	t.Run("past event has started", func(t *testing.T) {
		event := &Event{Status: StatusPublished, StartDate: past}
		if !event.HasStarted() {
			t.Error("HasStarted() = false, want true")
		}
	})
}

func TestEventCapacity(t *testing.T) {
	tests := []struct {
		name      string
		capacity  int
		spots     int
		unlimited bool
		full      bool
	}{
		{"spots remaining", 100, 37, false, false},
		{"no spots left", 100, 0, false, true},
		{"unlimited never full", 0, 0, true, false},
		{"one spot left", 2, 1, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := &Event{Capacity: tt.capacity, AvailableSpots: tt.spots}
			if got := event.IsUnlimited(); got != tt.unlimited {
				t.Errorf("IsUnlimited() = %v, want %v", got, tt.unlimited)
			}
			if got := event.IsFull(); got != tt.full {
				t.Errorf("IsFull() = %v, want %v", got, tt.full)
			}
		})
	}
}

func TestEventDeadline(t *testing.T) {
	past := time.Now().Add(-time.Hour)
	future := time.Now().Add(time.Hour)

	t.Run("no deadline set", func(t *testing.T) {
		event := &Event{}
		if event.DeadlinePassed() {
			t.Error("DeadlinePassed() = true, want false")
		}
	})

	t.Run("deadline in the future", func(t *testing.T) {
		event := &Event{RegistrationDeadline: &future}
		if event.DeadlinePassed() {
			t.Error("DeadlinePassed() = true, want false")
		}
	})

	t.Run("deadline in the past", func(t *testing.T) {
		event := &Event{RegistrationDeadline: &past}
		if !event.DeadlinePassed() {
			t.Error("DeadlinePassed() = false, want true")
		}
	})
}

func TestEventPrice(t *testing.T) {
	free := &Event{Price: 0}
	if !free.IsFree() {
		t.Error("IsFree() = false for zero price, want true")
	}

	paid := &Event{Price: 4999}
	if paid.IsFree() {
		t.Error("IsFree() = true for priced event, want false")
	}
	if got := paid.PriceInCurrency(); got != 49.99 {
		t.Errorf("PriceInCurrency() = %v, want 49.99", got)
	}
}
