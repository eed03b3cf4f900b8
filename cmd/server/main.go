package main

import (
	"fmt"
	"log"
	"net/http"

	"event-registration-platform/internal/config"
	"event-registration-platform/internal/database"
	"event-registration-platform/internal/handlers"
	"event-registration-platform/internal/middleware"
	"event-registration-platform/internal/repositories"
	"event-registration-platform/internal/services"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/sessions"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Initialize database connection
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
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()
	log.Println("Database connection established successfully")

	if err := db.RunMigrations(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Create session store
	sessionStore := sessions.NewCookieStore([]byte(cfg.Session.Secret))
	sessionStore.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 30, // 30 days
		HttpOnly: true,
		Secure:   cfg.Server.Env == "production",
		SameSite: http.SameSiteLaxMode,
	}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db.DB)
	eventRepo := repositories.NewEventRepository(db.DB)
	attendeeRepo := repositories.NewAttendeeRepository(db.DB)

	// Initialize services
	authService := services.NewAuthService(userRepo)
	eventService := services.NewEventService(eventRepo)
	registrationService := services.NewRegistrationService(attendeeRepo, eventRepo)

	// Initialize middleware and handlers
	authMiddleware := middleware.NewAuthMiddleware(authService, sessionStore)
	authHandler := handlers.NewAuthHandler(authService, authMiddleware)
	eventHandler := handlers.NewEventHandler(eventService)
	attendeeHandler := handlers.NewAttendeeHandler(registrationService)

	// Set up routes
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(middleware.ErrorHandlingMiddleware)
	r.Use(middleware.LoggingMiddleware)
	r.Use(middleware.CORSMiddleware(middleware.DefaultCORSConfig()))
	r.Use(authMiddleware.LoadUser)

	r.NotFound(middleware.NotFoundHandler().ServeHTTP)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/signup", authHandler.Signup)
		r.Post("/login", authHandler.Login)
		r.Post("/logout", authHandler.Logout)
		r.Get("/me", authHandler.Me)
	})

	r.Route("/event", func(r chi.Router) {
		r.Post("/search", eventHandler.Search)
		r.Get("/{id}", eventHandler.Get)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.RequireAuth)
			r.Post("/", eventHandler.Create)
			r.Put("/{id}", eventHandler.Update)
			r.Put("/{id}/publish", eventHandler.Publish)
			r.Post("/mine/search", eventHandler.ListMine)
		})
	})

	r.Route("/attendee", func(r chi.Router) {
		r.Use(authMiddleware.RequireAuth)
		r.Post("/register", attendeeHandler.Register)
		r.Delete("/{id}", attendeeHandler.Cancel)
		r.Put("/{id}/check-in", attendeeHandler.CheckIn)
		r.Post("/my-registrations/search", attendeeHandler.MyRegistrations)
		r.Post("/event/{eventId}", attendeeHandler.ListForEvent)
	})

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	log.Printf("Server starting on http://%s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal("Server failed:", err)
	}
}
