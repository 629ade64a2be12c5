package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"

	_ "github.com/lib/pq"

	api "communityhub-backend/internal/api/http"
	"communityhub-backend/internal/config"
	"communityhub-backend/internal/logger"
	"communityhub-backend/internal/repository/postgres"
	"communityhub-backend/internal/security"
	"communityhub-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting CommunityHub Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	// Initialize Services
	emailSvc := service.NewEmailService(cfg.Email.APIKey, cfg.Email.From, cfg.Email.FromName)
	roster, err := service.NewBoardRoster(store.UserRepository, store.OrganizationRepository, cfg.Approval.DefaultBoardPolicy)
	if err != nil {
		log.Fatalf("Failed to initialize board roster: %v", err)
	}
	registry := service.NewMemberRegistry(store.MemberRepository)
	approvalSvc := service.NewApprovalService(
		store.MembershipRequestRepository,
		store.VoteRepository,
		store.AuditRepository,
		store.UserRepository,
		store.OrganizationRepository,
		store.NotificationRepository,
		roster,
		registry,
		emailSvc,
	)
	authSvc := service.NewAuthService(store.UserRepository, tokenManager)
	noteSvc := service.NewNotificationService(store.NotificationRepository)

	// Initialize Handlers
	authHandler := api.NewAuthHandler(authSvc)
	requestHandler := api.NewMembershipRequestHandler(approvalSvc)
	memberHandler := api.NewMemberHandler(registry)
	notificationHandler := api.NewNotificationHandler(noteSvc)

	router := api.NewRouter(tokenManager, authHandler, requestHandler, memberHandler, notificationHandler)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
