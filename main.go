package main

import (
	"os"

	api "leadscout-backend/cmd/api"
	businessdomain "leadscout-backend/internal/business/domain"
	businessRepo "leadscout-backend/internal/business/repository"
	businessUsecase "leadscout-backend/internal/business/usecase"
	leaddomain "leadscout-backend/internal/lead/domain"
	leadRepo "leadscout-backend/internal/lead/repository"
	leadUsecase "leadscout-backend/internal/lead/usecase"
	"leadscout-backend/pkg/config"
	"leadscout-backend/pkg/database"
	"leadscout-backend/pkg/gmail"
	"leadscout-backend/pkg/imap"
	"leadscout-backend/pkg/logging"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		logging.Log.Fatal("Failed to connect to database: ", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(
		&businessdomain.Business{},
		&businessdomain.KeywordSet{},
		&leaddomain.ContentRecord{},
		&leaddomain.ProcessedEmail{},
		&leaddomain.GmailConnection{},
	); err != nil {
		logging.Log.Fatal("Failed to migrate database: ", err)
	}

	// Initialize repositories (dependency injection)
	contentRepository := leadRepo.NewContentRepository(db)
	processedEmailRepository := leadRepo.NewProcessedEmailRepository(db)
	gmailConnectionRepository := leadRepo.NewGmailConnectionRepository(db)
	businessRepository := businessRepo.NewGormBusinessRepository(db)

	// Initialize mail providers
	gmailService := gmail.NewService(cfg.GoogleClientID, cfg.GoogleClientSecret)
	imapService := imap.NewService(cfg.IMAPHost, cfg.IMAPPort, cfg.IMAPUsername, cfg.IMAPPassword, cfg.IMAPMailbox)

	// Initialize use cases (dependency injection)
	leadUsecaseInstance := leadUsecase.NewLeadUsecase(
		contentRepository,
		processedEmailRepository,
		gmailConnectionRepository,
		businessRepository,
		gmailService,
		imapService,
		cfg,
	)
	businessUsecaseInstance := businessUsecase.NewBusinessUsecase(businessRepository)

	// Initialize HTTP handler
	handler := api.NewHandler(leadUsecaseInstance, businessUsecaseInstance, cfg)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}

	logging.Log.Infof("Server starting on port %s", port)
	if err := handler.Start(":" + port); err != nil {
		logging.Log.Fatal("Failed to start server: ", err)
	}
}
