package main

import (
	"log"
	"time"

	"event-registration-platform/internal/config"
	"event-registration-platform/internal/database"
	"event-registration-platform/internal/models"
	"event-registration-platform/internal/repositories"
	"event-registration-platform/internal/utils"

	"github.com/google/uuid"
)

func main() {
	log.Println("Starting database seed...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.NewConnection(database.Config{
		URL:      cfg.Database.URL,
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.RunMigrations(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Clear existing data
	if _, err := db.Exec("TRUNCATE attendees, events, users RESTART IDENTITY"); err != nil {
		log.Fatalf("Failed to clear existing data: %v", err)
	}
	log.Println("Cleared existing data")

	userRepo := repositories.NewUserRepository(db.DB)
	eventRepo := repositories.NewEventRepository(db.DB)
	attendeeRepo := repositories.NewAttendeeRepository(db.DB)

	// Create test users
	userFixtures := []struct {
		name  string
		email string
		role  models.UserRole
	}{
		{"John Doe", "john@example.com", models.RoleOrganizer},
		{"Jane Smith", "jane@example.com", models.RoleOrganizer},
		{"Bob Johnson", "bob@example.com", models.RoleOrganizer},
		{"Admin User", "admin@example.com", models.RoleAdmin},
	}

	var users []*models.User
	for _, f := range userFixtures {
		password := "password123"
		if f.role == models.RoleAdmin {
			password = "admin123"
		}
		hash, err := utils.HashPassword(password)
		if err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}
		user, err := userRepo.Create(&models.UserCreateRequest{
			Email: f.email,
			// Password only participates in validation here; the hash is
			// what gets stored.
			Password: password,
			Name:     f.name,
			Role:     f.role,
		}, hash)
		if err != nil {
			log.Fatalf("Failed to create user %s: %v", f.email, err)
		}
		users = append(users, user)
	}
	log.Printf("Created %d users", len(users))

	// Create sample events
	eventFixtures := []struct {
		req       models.EventCreateRequest
		organizer *models.User
		publish   bool
	}{
		{
			req: models.EventCreateRequest{
				Title:                "Tech Conference 2026",
				Description:          "Annual technology conference featuring the latest innovations in AI, Web3, and Cloud Computing.",
				StartDate:            mustTime("2026-03-15T09:00:00"),
				EndDate:              timePtr(mustTime("2026-03-15T18:00:00")),
				Venue:                "Convention Center",
				Address:              "123 Main Street",
				City:                 "Paris",
				Country:              "France",
				Capacity:             500,
				Price:                0,
				Currency:             "EUR",
				Category:             "conference",
				RegistrationDeadline: timePtr(mustTime("2026-03-10T23:59:59")),
			},
			organizer: users[0],
			publish:   true,
		},
		{
			req: models.EventCreateRequest{
				Title:       "JavaScript Workshop",
				Description: "Hands-on workshop covering modern JavaScript frameworks including React, Vue, and Next.js.",
				StartDate:   mustTime("2026-02-20T14:00:00"),
				EndDate:     timePtr(mustTime("2026-02-20T17:00:00")),
				Venue:       "Tech Hub",
				Address:     "456 Innovation Ave",
				City:        "Lyon",
				Country:     "France",
				Capacity:    30,
				Price:       4999, // 49.99 EUR
				Currency:    "EUR",
				Category:    "workshop",
			},
			organizer: users[1],
			publish:   true,
		},
		{
			req: models.EventCreateRequest{
				Title:       "Startup Networking Night",
				Description: "Meet fellow entrepreneurs, investors, and startup enthusiasts in a casual networking environment.",
				StartDate:   mustTime("2026-02-01T19:00:00"),
				EndDate:     timePtr(mustTime("2026-02-01T22:00:00")),
				Venue:       "Tech Hub Lyon",
				Address:     "789 Startup Lane",
				City:        "Lyon",
				Country:     "France",
				Capacity:    100,
				Price:       0,
				Currency:    "EUR",
				Category:    "networking",
			},
			organizer: users[0],
			publish:   true,
		},
		{
			req: models.EventCreateRequest{
				Title:                "AI & Machine Learning Seminar",
				Description:          "Expert-led seminar on the latest developments in artificial intelligence and machine learning.",
				StartDate:            mustTime("2026-04-10T10:00:00"),
				EndDate:              timePtr(mustTime("2026-04-10T16:00:00")),
				Venue:                "University Auditorium",
				Address:              "321 Academic Way",
				City:                 "Toulouse",
				Country:              "France",
				Capacity:             200,
				Price:                2999, // 29.99 EUR
				Currency:             "EUR",
				Category:             "seminar",
				RegistrationDeadline: timePtr(mustTime("2026-04-05T23:59:59")),
			},
			organizer: users[2],
			publish:   true,
		},
		{
			req: models.EventCreateRequest{
				Title:       "Draft Event - Not Published",
				Description: "This event is still in draft mode and won't appear in public listings.",
				StartDate:   mustTime("2026-05-01T10:00:00"),
				Venue:       "TBD",
				City:        "Paris",
				Country:     "France",
				Capacity:    50,
				Price:       0,
				Currency:    "EUR",
				Category:    "other",
			},
			organizer: users[1],
			publish:   false,
		},
	}

	var events []*models.Event
	for _, f := range eventFixtures {
		event, err := eventRepo.Create(&f.req, f.organizer)
		if err != nil {
			log.Fatalf("Failed to create event %q: %v", f.req.Title, err)
		}
		if f.publish {
			if err := eventRepo.UpdateStatus(event.ID, models.StatusPublished); err != nil {
				log.Fatalf("Failed to publish event %q: %v", f.req.Title, err)
			}
		}
		events = append(events, event)
	}
	log.Printf("Created %d events", len(events))

	// Create sample registrations with denormalized event snapshots
	registrations := []struct {
		event *models.Event
		user  *models.User
	}{
		{events[1], users[0]}, // John -> JavaScript Workshop
		{events[0], users[1]}, // Jane -> Tech Conference
		{events[2], users[2]}, // Bob -> Startup Networking Night
		{events[2], users[0]}, // John -> Startup Networking Night
	}

	for _, reg := range registrations {
		attendee := &models.Attendee{
			EventID:        reg.event.ID,
			UserID:         reg.user.ID,
			Name:           reg.user.Name,
			Email:          reg.user.Email,
			EventTitle:     reg.event.Title,
			EventStartDate: reg.event.StartDate,
			EventEndDate:   reg.event.EndDate,
			EventCity:      reg.event.City,
			EventCountry:   reg.event.Country,
			EventVenue:     reg.event.Venue,
			EventImageURL:  reg.event.ImageURL,
			Status:         models.AttendeeConfirmed,
			TicketNumber:   models.GenerateTicketNumber(reg.event.ID),
			QRCode:         uuid.NewString(),
			PaymentStatus:  models.PaymentStatusForPrice(reg.event.Price),
			PaymentAmount:  reg.event.Price,
		}

		if _, err := attendeeRepo.Register(attendee, reg.event.Capacity > 0); err != nil {
			log.Fatalf("Failed to register %s for %q: %v", reg.user.Email, reg.event.Title, err)
		}
	}
	log.Printf("Created %d registrations", len(registrations))

	log.Println("Seed completed successfully")
}

func mustTime(value string) time.Time {
	t, err := time.Parse("2006-01-02T15:04:05", value)
	if err != nil {
		log.Fatalf("Invalid time %q: %v", value, err)
	}
	return t
}

func timePtr(t time.Time) *time.Time {
	return &t
}
