// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/skillsharehq/skillshare-hub/internal/auth"
	"github.com/skillsharehq/skillshare-hub/internal/config"
	"github.com/skillsharehq/skillshare-hub/internal/email"
	"github.com/skillsharehq/skillshare-hub/internal/email/mailer"
	"github.com/skillsharehq/skillshare-hub/internal/event"
	"github.com/skillsharehq/skillshare-hub/internal/handler"
	"github.com/skillsharehq/skillshare-hub/internal/middleware"
	"github.com/skillsharehq/skillshare-hub/internal/model"
	"github.com/skillsharehq/skillshare-hub/internal/repository"
	"github.com/skillsharehq/skillshare-hub/internal/scheduler"
	"github.com/skillsharehq/skillshare-hub/internal/service"
	"github.com/skillsharehq/skillshare-hub/internal/ws"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "startup error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Initialize structured logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{
					Key:   a.Key,
					Value: slog.StringValue(a.Value.Time().Format(time.RFC3339)),
				}
			}
			return a
		},
	}))
	slog.SetDefault(log)

	// Load configuration; .env is optional
	_ = godotenv.Load()
	cfg := config.Load()

	// Initialize database
	db, err := setupDatabase(cfg)
	if err != nil {
		return fmt.Errorf("setting up database: %w", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	workshopRepo := repository.NewWorkshopRepository(db)
	enrollmentRepo := repository.NewEnrollmentRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	chatRepo := repository.NewChatRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	// Initialize auth primitives
	passwordHasher := auth.NewPasswordHasher()
	tokenManager := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.ExpiryPeriod)

	// Initialize email service
	emailService, err := email.NewEmailService(cfg, email.ProviderSendgrid)
	if err != nil {
		return fmt.Errorf("initializing email service: %w", err)
	}

	// Initialize cache service
	cacheService := service.NewCacheService(service.CacheConfig{
		TTL:         5 * time.Minute,
		CleanupFreq: 1 * time.Minute,
	})

	// In-process event bus feeding the websocket gateways
	bus := event.NewBus(4)
	defer bus.Shutdown()

	// Initialize services
	notificationService := service.NewNotificationService(
		notificationRepo, userRepo, mailer.NewSender(emailService), bus)
	userService := service.NewUserService(
		userRepo, passwordHasher, tokenManager, emailService, cfg.BaseURL)
	workshopService := service.NewWorkshopService(
		workshopRepo, enrollmentRepo, notificationService)
	enrollmentService := service.NewEnrollmentService(
		enrollmentRepo, workshopRepo, notificationService, cacheService)
	processor := service.NewMockProcessor(
		cfg.Payments.SuccessRate, cfg.Payments.ProcessingDelay, time.Now().UnixNano())
	paymentService := service.NewPaymentService(
		paymentRepo, workshopRepo, enrollmentRepo, processor, notificationService)
	chatService := service.NewChatService(
		chatRepo, workshopRepo, enrollmentRepo, notificationService)
	reviewService := service.NewReviewService(
		reviewRepo, workshopRepo, enrollmentRepo, notificationService)
	analyticsService := service.NewAnalyticsService(
		userRepo, workshopRepo, enrollmentRepo, paymentRepo, reviewRepo)

	// Websocket gateways; the registry is process-local, single instance only
	registry := ws.NewRegistry()
	chatGateway := ws.NewChatGateway(chatService, tokenManager, registry)
	notificationGateway := ws.NewNotificationGateway(tokenManager, registry, bus)

	// Periodic jobs
	jobs := scheduler.New(workshopRepo, notificationService)
	if err := jobs.Start(); err != nil {
		return fmt.Errorf("starting scheduler: %w", err)
	}
	defer jobs.Stop()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(userService)
	workshopHandler := handler.NewWorkshopHandler(workshopService)
	enrollmentHandler := handler.NewEnrollmentHandler(enrollmentService)
	paymentHandler := handler.NewPaymentHandler(paymentService)
	notificationHandler := handler.NewNotificationHandler(notificationService)
	chatHandler := handler.NewChatHandler(chatService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService)

	// Create router
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(loggingMiddleware(log))
	r.Use(recoveryMiddleware(log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	// Websocket endpoints keep their own auth; no request timeout here
	r.Get("/ws/chat/{workshopID}", chatGateway.ServeHTTP)
	r.Get("/ws/notifications", notificationGateway.ServeHTTP)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Use(chimw.Timeout(30 * time.Second))

		// Public routes
		r.Group(func(r chi.Router) {
			r.Post("/auth/signup", authHandler.SignupHandler)
			r.Post("/auth/login", authHandler.LoginHandler)

			r.Get("/workshops", workshopHandler.ListHandler)
			r.Get("/workshops/{workshopID}", workshopHandler.GetHandler)
			r.Get("/workshops/{workshopID}/reviews", reviewHandler.WorkshopReviewsHandler)
			r.Get("/enrollments/stats/{workshopID}", enrollmentHandler.StatsHandler)
			r.Get("/analytics/platform", analyticsHandler.PlatformHandler)
		})

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthMiddleware(tokenManager))

			r.Get("/users/me", authHandler.MeHandler)
			r.Patch("/users/me", authHandler.UpdateProfileHandler)

			r.Post("/workshops", workshopHandler.CreateHandler)
			r.Put("/workshops/{workshopID}", workshopHandler.UpdateHandler)
			r.Delete("/workshops/{workshopID}", workshopHandler.DeleteHandler)
			r.Post("/workshops/{workshopID}/reviews", reviewHandler.CreateHandler)

			r.Post("/enrollments/{workshopID}", enrollmentHandler.EnrollHandler)
			r.Delete("/enrollments/{workshopID}", enrollmentHandler.UnenrollHandler)
			r.Get("/enrollments/my", enrollmentHandler.MyEnrollmentsHandler)
			r.Get("/enrollments/check/{workshopID}", enrollmentHandler.CheckHandler)

			r.Post("/payments", paymentHandler.CreateHandler)
			r.Post("/payments/{paymentID}/process", paymentHandler.ProcessHandler)
			r.Post("/payments/{paymentID}/refund", paymentHandler.RefundHandler)
			r.Get("/payments", paymentHandler.ListHandler)
			r.Get("/payments/stats", paymentHandler.StatsHandler)
			r.Get("/payments/methods/available", paymentHandler.MethodsHandler)

			r.Get("/notifications", notificationHandler.ListHandler)
			r.Patch("/notifications/{notificationID}", notificationHandler.MarkReadHandler)
			r.Post("/notifications/mark-all-read", notificationHandler.MarkAllReadHandler)
			r.Get("/notifications/unread-count", notificationHandler.UnreadCountHandler)
			r.Delete("/notifications/{notificationID}", notificationHandler.DeleteHandler)
			r.Get("/notifications/preferences", notificationHandler.PreferencesHandler)
			r.Put("/notifications/preferences", notificationHandler.UpdatePreferencesHandler)

			r.Post("/chat/messages", chatHandler.CreateMessageHandler)
			r.Get("/chat/workshops/{workshopID}/messages", chatHandler.WorkshopMessagesHandler)
			r.Put("/chat/messages/{messageID}", chatHandler.EditMessageHandler)
			r.Delete("/chat/messages/{messageID}", chatHandler.DeleteMessageHandler)
			r.Get("/chat/active", chatHandler.ActiveChatsHandler)

			r.Get("/analytics/instructor", analyticsHandler.InstructorHandler)
		})
	})

	// Create server
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Server error channel
	serverErrors := make(chan error, 1)

	// Start server
	go func() {
		log.Info("server starting", "port", cfg.Server.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	// Shutdown channel
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Wait for shutdown or error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		log.Info("shutdown started", "signal", sig)

		// Give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// Gracefully shutdown the server
		if err := srv.Shutdown(ctx); err != nil {
			srv.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

func setupDatabase(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		cfg.Database.SSLMode,
		cfg.Database.SearchPath,
	)

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
		// Surfaces unique violations as gorm.ErrDuplicatedKey, which the
		// repositories map to domain conflicts.
		TranslateError: true,
	}

	db, err := gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting database instance: %w", err)
	}

	// Configure connection pool
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	if err := migrate(db); err != nil {
		return nil, fmt.Errorf("migrating schema: %w", err)
	}

	return db, nil
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Workshop{},
		&model.Enrollment{},
		&model.Payment{},
		&model.Notification{},
		&model.NotificationPreferences{},
		&model.ChatMessage{},
		&model.ChatRead{},
		&model.Review{},
	)
}

func loggingMiddleware(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				log.Info("request completed",
					"method", r.Method,
					"path", r.URL.Path,
					"duration", time.Since(start),
					"status", ww.Status(),
					"size", ww.BytesWritten(),
					"requestID", chimw.GetReqID(r.Context()),
				)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

func recoveryMiddleware(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					err := errors.New("panic recovered")
					log.Error("panic recovered",
						"error", err,
						"panic", rvr,
						"stack", string(debug.Stack()),
						"requestID", chimw.GetReqID(r.Context()),
					)

					w.WriteHeader(http.StatusInternalServerError)
					w.Write([]byte(`{"error":"internal server error"}`))
					return
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
