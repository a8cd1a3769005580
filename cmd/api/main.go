package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"github.com/01moynul/bizdirectory-golang/internal/auth"
	"github.com/01moynul/bizdirectory-golang/internal/config"
	"github.com/01moynul/bizdirectory-golang/internal/contact"
	"github.com/01moynul/bizdirectory-golang/internal/database"
	"github.com/01moynul/bizdirectory-golang/internal/directory"
	"github.com/01moynul/bizdirectory-golang/internal/email"
	"github.com/01moynul/bizdirectory-golang/internal/handlers"
	"github.com/01moynul/bizdirectory-golang/internal/logging"
	"github.com/01moynul/bizdirectory-golang/internal/metrics"
	"github.com/01moynul/bizdirectory-golang/internal/routes"
	"github.com/01moynul/bizdirectory-golang/internal/seo"
	"github.com/01moynul/bizdirectory-golang/internal/storage"
	"github.com/01moynul/bizdirectory-golang/internal/store"
)

func main() {
	// 0. --- Load Environment Variables (.env) ---
	if err := config.LoadDotEnv(); err != nil {
		log.Fatalf("Failed to load .env file: %v", err)
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger, err := logging.New(cfg.IsDevelopment())
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	if err := cfg.Validate(); err != nil {
		logger.Fatal("Invalid configuration", zap.Error(err))
	}

	ctx := context.Background()

	// 1. --- Database Connection ---
	db, err := database.OpenDB(ctx, cfg.DatabaseDSN, database.DefaultPool, logger)
	if err != nil {
		logger.Fatal("Failed to connect to primary database", zap.Error(err))
	}
	defer db.Close()
	directoryStore := store.New(db)

	// 2. --- Admin Sessions ---
	var sessions auth.SessionStore = auth.NewMemoryStore()
	if cfg.RedisAddr != "" {
		client, err := auth.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			logger.Fatal("Failed to connect to Redis", zap.String("addr", cfg.RedisAddr), zap.Error(err))
		}
		defer client.Close()
		sessions = auth.NewRedisStore(client)
		logger.Info("Session revocations stored in Redis", zap.String("addr", cfg.RedisAddr))
	}

	credentials, err := auth.NewCredentials(cfg.AdminEmail, cfg.AdminPassword)
	if err != nil {
		logger.Fatal("Failed to prepare admin credentials", zap.Error(err))
	}
	authenticator := auth.NewAuthenticator(credentials, auth.NewTokenIssuer(cfg.SessionSecret, cfg.SessionTTL), sessions)

	// 3. --- Email ---
	var sender email.Sender
	if cfg.ResendAPIKey != "" {
		sender = email.NewResendSender(cfg.ResendAPIKey)
	} else {
		logger.Warn("RESEND_API_KEY is not set; emails will only be logged")
		sender = email.NewLogSender(logger)
	}
	notifier := email.NewNotifier(sender, cfg.EmailFrom, cfg.SiteName, email.RecipientPolicy{
		AdminAddress:  cfg.AdminNotifyEmail,
		AlwaysCCAdmin: cfg.AlwaysCCAdmin,
	})

	// --- Application Setup ---
	appMetrics := metrics.New()
	app := &handlers.Handlers{
		Directory: directory.NewService(directoryStore, logger),
		Contact:   contact.NewService(directoryStore, notifier, logger),
		Admin:     directoryStore,
		Sessions:  authenticator,
		Uploader:  storage.NewLocalStore(cfg.UploadDir, cfg.BaseURL),
		SEO:       seo.NewGenerator(cfg.SiteName, cfg.SiteURL),
		Metrics:   appMetrics,
		Logger:    logger,
		BaseURL:   cfg.SiteURL,
	}

	// --- Router Setup ---
	router := routes.SetupRouter(app, routes.Options{
		AllowedOrigin: cfg.CORSAllowOrigin,
		UploadDir:     cfg.UploadDir,
		Sessions:      authenticator,
		Metrics:       appMetrics,
		Logger:        logger,
	})

	// --- Start Server ---
	logger.Info("Starting directory API server", zap.String("port", cfg.Port), zap.String("env", cfg.AppEnv))
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}
