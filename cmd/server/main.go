// Career Advisor API server.
//
// Wires the configured account store, advice provider, and contact relay
// into the HTTP router and serves until interrupted.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/genai"

	_ "github.com/careerpilot/advisor-api/docs"
	"github.com/careerpilot/advisor-api/internal/api"
	"github.com/careerpilot/advisor-api/internal/core/ports"
	"github.com/careerpilot/advisor-api/internal/core/service"
	adviceinfra "github.com/careerpilot/advisor-api/internal/infrastructure/advice"
	"github.com/careerpilot/advisor-api/internal/infrastructure/db/memory"
	mongodb "github.com/careerpilot/advisor-api/internal/infrastructure/db/mongo"
	redisdb "github.com/careerpilot/advisor-api/internal/infrastructure/db/redis"
	"github.com/careerpilot/advisor-api/internal/infrastructure/extract"
	"github.com/careerpilot/advisor-api/internal/infrastructure/mail"
	"github.com/careerpilot/advisor-api/internal/pkg/config"
	"github.com/careerpilot/advisor-api/pkg/logger"
)

const tokenTTL = 30 * 24 * time.Hour

// @title        Career Advisor API
// @version      1.0
// @description  Authentication, profile, resume ingestion, and AI career advice endpoints.
// @BasePath     /api
//
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	ctx := context.Background()

	// --- Account store ---
	var userRepo ports.UserRepository
	switch cfg.Store {
	case "mongo":
		client, db, err := mongodb.Connect(ctx, mongodb.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("mongo connection failed")
		}
		defer func() {
			if err := client.Disconnect(ctx); err != nil {
				log.Warn().Err(err).Msg("mongo disconnect failed")
			}
		}()

		repo := mongodb.NewUserRepository(db)
		if err := repo.EnsureIndexes(ctx); err != nil {
			log.Fatal().Err(err).Msg("mongo index creation failed")
		}
		userRepo = repo
		log.Info().Str("database", cfg.Mongo.Database).Msg("using mongo account store")
	default:
		userRepo = memory.NewUserRepository()
		log.Info().Msg("using in-memory account store (accounts reset on restart)")
	}

	// --- Gemini client, shared by the advice provider and the OCR client ---
	var genaiClient *genai.Client
	if cfg.Gemini.APIKey != "" {
		var err error
		genaiClient, err = genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  cfg.Gemini.APIKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("gemini client init failed")
		}
	}

	// --- Advice provider ---
	var provider ports.AdviceProvider
	switch cfg.AdviceProvider {
	case "gemini":
		provider = adviceinfra.NewGeminiProvider(genaiClient, cfg.Gemini.Model)
		log.Info().Str("model", cfg.Gemini.Model).Msg("using gemini advice provider")
	default:
		provider = adviceinfra.NewMockProvider()
		log.Info().Msg("using mock advice provider")
	}

	// --- Resume ingestion ---
	var ocr ports.OCRClient
	if genaiClient != nil {
		ocr = extract.NewGeminiOCR(genaiClient, cfg.Gemini.Model)
	} else {
		log.Warn().Msg("no GEMINI_API_KEY set, image resume uploads will be rejected")
	}
	ingestionService := service.NewIngestionService(extract.NewPDFExtractor(), ocr)

	// --- Contact relay ---
	var deduper ports.ContactDeduper
	if cfg.Redis.Addr != "" {
		rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Fatal().Err(err).Msg("redis connection failed")
		}
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Warn().Err(err).Msg("redis close failed")
			}
		}()
		deduper = redisdb.NewContactDeduper(rdb)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("contact deduplication enabled")
	}

	mailer := mail.NewSMTPMailer(mail.Config{
		Host:      cfg.SMTP.Host,
		Port:      cfg.SMTP.Port,
		Username:  cfg.SMTP.Username,
		Password:  cfg.SMTP.Password,
		Recipient: cfg.SMTP.Recipient,
	})

	// --- Services ---
	tokens := service.NewTokenIssuer(cfg.JWTSecret, tokenTTL)

	e := api.NewRouter(api.Dependencies{
		AuthService:      service.NewAuthService(userRepo, tokens),
		ProfileService:   service.NewProfileService(userRepo, tokens),
		AdviceService:    service.NewAdviceService(provider),
		IngestionService: ingestionService,
		ContactService:   service.NewContactService(mailer, deduper, log),
		JWTSecret:        cfg.JWTSecret,
		Provider:         cfg.AdviceProvider,
		Log:              log,
	})

	// --- Serve with graceful shutdown ---
	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server start failed")
		}
	}()
	log.Info().Str("port", cfg.Port).Msg("career advisor api listening")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
	log.Info().Msg("server stopped")
}
