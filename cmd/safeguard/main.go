package main

import (
	"encoding/hex"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	appModeration "github.com/care-collective/safeguard/pkg/app/moderation"
	appPrivacy "github.com/care-collective/safeguard/pkg/app/privacy"
	appRestriction "github.com/care-collective/safeguard/pkg/app/restriction"
	"github.com/care-collective/safeguard/pkg/common"
	"github.com/care-collective/safeguard/pkg/config"
	handlers "github.com/care-collective/safeguard/pkg/handlers/http"
	"github.com/care-collective/safeguard/pkg/infra/auditlogs"
	infraCache "github.com/care-collective/safeguard/pkg/infra/cache"
	"github.com/care-collective/safeguard/pkg/infra/crypto"
	"github.com/care-collective/safeguard/pkg/infra/database"
	"github.com/care-collective/safeguard/pkg/infra/jwt"
	infraLogger "github.com/care-collective/safeguard/pkg/infra/logger"
	"github.com/care-collective/safeguard/pkg/infra/repository"
	"github.com/care-collective/safeguard/pkg/middleware"
	"github.com/care-collective/safeguard/pkg/moderation/rules"
	"github.com/care-collective/safeguard/pkg/server"
	"github.com/joho/godotenv"
)

func main() {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	logger := infraLogger.NewLogger()

	if err := config.Load("./config"); err != nil {
		logger.WithError(err).Warn("config file not loaded, relying on environment")
	}
	cfg := config.GetConfig()

	db, err := database.NewDB(logger, &database.Config{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		logger.Fatalf("failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		logger.Fatalf("failed to run migrations: %v", err)
	}

	cacheClient, err := infraCache.NewClient(infraCache.Config{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		logger.WithError(err).Warn("redis unavailable, trust scores will not be cached")
		cacheClient = nil
	} else {
		defer cacheClient.Close()
	}

	encryptionKey, err := hex.DecodeString(cfg.Privacy.EncryptionKey)
	if err != nil {
		logger.Fatalf("privacy encryption key is not valid hex: %v", err)
	}
	sealer, err := crypto.NewAESSealer(encryptionKey)
	if err != nil {
		logger.Fatalf("failed to initialize contact sealer: %v", err)
	}

	jwtManager := jwt.NewJwtManager(cfg.Server.SecretKey)

	// repositories
	reportRepository := repository.NewReportRepository(db.DB)
	messageRepository := repository.NewMessageRepository(db.DB)
	restrictionRepository := repository.NewRestrictionRepository(db.DB)
	settingsRepository := repository.NewPrivacySettingsRepository(db.DB)
	exchangeRepository := repository.NewContactExchangeRepository(db.DB)
	historyRepository := repository.NewSharingHistoryRepository(db.DB)
	exportRepository := repository.NewExportRequestRepository(db.DB)
	auditRepository := repository.NewAuditRepository(db.DB)

	auditRecorder := auditlogs.NewRecorder(logger, auditRepository)

	// moderation
	engine := rules.NewEngine(logger, rules.Config{
		LowTrustThreshold: cfg.Moderation.LowTrustThreshold,
		LenienceThreshold: cfg.Moderation.LenienceThreshold,
		BlockConfidence:   cfg.Moderation.BlockConfidence,
	})
	scoreTTL := common.TrustScoreCacheTTL
	if cfg.Moderation.ScoreCacheTTLSeconds > 0 {
		scoreTTL = time.Duration(cfg.Moderation.ScoreCacheTTLSeconds) * time.Second
	}
	scoreFinder := appModeration.NewTrustTracker(logger, reportRepository, cacheClient, scoreTTL)
	moderator := appModeration.NewContentModerator(logger, engine, scoreFinder)

	// restriction
	applier := appRestriction.NewApplier(logger, restrictionRepository, auditRecorder)
	checker := appRestriction.NewChecker(logger, restrictionRepository)
	queue := appModeration.NewQueue(logger, reportRepository, messageRepository, applier, auditRecorder)

	// privacy
	settingsManager := appPrivacy.NewSettingsManager(logger, settingsRepository, auditRecorder)
	preferenceResolver := appPrivacy.NewPreferenceResolver(logger, settingsRepository)
	exchangeRecorder := appPrivacy.NewExchangeRecorder(logger, exchangeRepository, historyRepository, sealer, auditRecorder)
	revoker := appPrivacy.NewRevoker(logger, exchangeRepository, historyRepository, auditRecorder)
	historyViewer := appPrivacy.NewHistoryViewer(historyRepository)
	eraser := appPrivacy.NewAccountEraser(logger, exchangeRepository, historyRepository, settingsRepository, auditRecorder)
	exporter := appPrivacy.NewExporter(logger, exportRepository, auditRecorder)

	middlewareTransport := middleware.Transport{
		AuthMiddleware:      middleware.NewAuthMiddleware(logger, jwtManager),
		AdminAuthMiddleware: middleware.NewAdminAuthMiddleware(logger),
		MetricsMiddleware:   middleware.NewMetricsMiddleware(logger),
	}

	handlerTransport := handlers.HandlerTransport{
		ModerateMessageHandler:       handlers.NewModerateMessageHandler(logger, moderator),
		GetTrustScoreHandler:         handlers.NewGetTrustScoreHandler(logger, scoreFinder),
		CheckRestrictionsHandler:     handlers.NewCheckRestrictionsHandler(logger, checker),
		ApplyActionHandler:           handlers.NewApplyActionHandler(logger, applier),
		LiftRestrictionHandler:       handlers.NewLiftRestrictionHandler(logger, applier),
		ListQueueHandler:             handlers.NewListQueueHandler(logger, queue),
		ProcessReportHandler:         handlers.NewProcessReportHandler(logger, queue),
		GetPrivacySettingsHandler:    handlers.NewGetPrivacySettingsHandler(logger, settingsManager),
		UpdatePrivacySettingsHandler: handlers.NewUpdatePrivacySettingsHandler(logger, settingsManager),
		UpdateConsentHandler:         handlers.NewUpdateConsentHandler(logger, settingsManager),
		SharingPreferencesHandler:    handlers.NewSharingPreferencesHandler(logger, preferenceResolver),
		ListSharingHistoryHandler:    handlers.NewListSharingHistoryHandler(logger, historyViewer),
		RecordExchangeHandler:        handlers.NewRecordExchangeHandler(logger, exchangeRecorder),
		RevokeExchangeHandler:        handlers.NewRevokeExchangeHandler(logger, revoker),
		DeleteAccountHandler:         handlers.NewDeleteAccountHandler(logger, eraser),
		CreateExportHandler:          handlers.NewCreateExportHandler(logger, exporter),
		ListExportsHandler:           handlers.NewListExportsHandler(logger, exporter),
	}

	srv := server.NewSafeguardServer(server.SafeguardServerDI{
		MiddlewareTransport: middlewareTransport,
		HandlerTransport:    handlerTransport,
		Config:              cfg,
		Logger:              logger,
	})

	go func() {
		if err := srv.Run(); err != nil {
			logger.Fatalf("server exited: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	if err := srv.Shutdown(); err != nil {
		logger.WithError(err).Error("graceful shutdown failed")
	}
}
