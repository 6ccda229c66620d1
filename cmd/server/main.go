package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ArrayPowerPlay/machine-translation-en2vi/internal/config"
	"github.com/ArrayPowerPlay/machine-translation-en2vi/internal/httpapi"
	"github.com/ArrayPowerPlay/machine-translation-en2vi/internal/providers"
	"github.com/ArrayPowerPlay/machine-translation-en2vi/internal/repository"
	"github.com/ArrayPowerPlay/machine-translation-en2vi/internal/server"
	"github.com/ArrayPowerPlay/machine-translation-en2vi/internal/service"
	"github.com/ArrayPowerPlay/machine-translation-en2vi/internal/storage"
)

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	ctx := context.Background()

	db, err := storage.NewSQLite(cfg.Database)
	if err != nil {
		logger.Error("failed to open database", slog.Any("error", err))
		os.Exit(1)
	}
	defer db.Close()

	if err := storage.RunMigrations(ctx, db); err != nil {
		logger.Error("failed to run migrations", slog.Any("error", err))
		os.Exit(1)
	}

	userRepo := repository.NewUserRepository(db)
	historyRepo := repository.NewHistoryRepository(db)
	savedRepo := repository.NewSavedRepository(db)
	ratingRepo := repository.NewRatingRepository(db)
	contributionRepo := repository.NewContributionRepository(db)

	registry := providers.NewRegistry(translatorFactory(cfg, logger))

	tokens := service.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	authService := service.NewAuthService(userRepo, tokens)
	translationService := service.NewTranslationService(registry, historyRepo, logger)
	historyService := service.NewHistoryService(historyRepo, savedRepo, ratingRepo, contributionRepo)
	savedService := service.NewSavedService(savedRepo)
	feedbackService := service.NewFeedbackService(contributionRepo, ratingRepo)

	handler := httpapi.NewRouter(authService, translationService, historyService, savedService, feedbackService, logger)
	srv := server.New(cfg, handler, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		logger.Error("server stopped with error", slog.Any("error", err))
		os.Exit(1)
	}
}

func translatorFactory(cfg config.Config, logger *slog.Logger) providers.Factory {
	return func(direction providers.Direction) (providers.Translator, error) {
		model := cfg.Translation.ModelEn2Vi
		if direction == providers.DirectionVi2En {
			model = cfg.Translation.ModelVi2En
		}
		client, err := providers.NewOpenAITranslator(cfg.Translation.APIKey, cfg.Translation.BaseURL, model, direction, cfg.Translation.RequestTimeout)
		if err != nil {
			return nil, err
		}
		name := fmt.Sprintf("translator-%s", direction)
		return providers.NewBreakerTranslator(name, client, logger), nil
	}
}
