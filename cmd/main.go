package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Dosada05/tournament-engine/brackets"
	"github.com/Dosada05/tournament-engine/config"
	"github.com/Dosada05/tournament-engine/handlers"
	"github.com/Dosada05/tournament-engine/models"
	"github.com/Dosada05/tournament-engine/repositories"
	api "github.com/Dosada05/tournament-engine/routes"
	"github.com/Dosada05/tournament-engine/services"
	"github.com/Dosada05/tournament-engine/storage"
	"github.com/Dosada05/tournament-engine/utils"
	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 15 * time.Second

// Streams of the shared seed: one for the draw, one for the simulator.
const (
	drawStream       = 1
	simulationStream = 2
)

// @title Tournament Engine API
// @version 1.0
// @description Seven-competitor league with 1v4 / 2v3 playoffs.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		return err
	}

	// Настройка логгера
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)
	logger.Info("configuration loaded",
		slog.Int("port", cfg.ServerPort),
		slog.Duration("phase_transition_delay", cfg.PhaseTransitionDelay),
		slog.Bool("report_publishing", cfg.R2.Enabled()))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Инициализация загрузчика отчётов (Cloudflare R2), если настроен
	var uploader storage.FileUploader
	if cfg.R2.Enabled() {
		uploader, err = storage.NewCloudflareR2Uploader(ctx, storage.CloudflareR2UploaderConfig{
			AccountID:       cfg.R2.AccountID,
			AccessKeyID:     cfg.R2.AccessKeyID,
			SecretAccessKey: cfg.R2.SecretAccessKey,
			BucketName:      cfg.R2.BucketName,
			PublicBaseURL:   cfg.R2.PublicBaseURL,
		})
		if err != nil {
			logger.Error("failed to initialize Cloudflare R2 uploader", slog.Any("error", err))
			return err
		}
		logger.Info("Cloudflare R2 uploader initialized")
	}

	seed, err := drawSeed(cfg)
	if err != nil {
		logger.Error("failed to obtain random seed", slog.Any("error", err))
		return err
	}
	logger.Info("random source ready", slog.Bool("fixed_seed", cfg.DrawSeed != nil))

	wsHub := brackets.NewHub()
	notifier := services.NewEventNotifier(wsHub, cfg.PhaseTransitionDelay, logger)
	defer notifier.Stop()

	// Инициализация репозиториев
	competitorRepo := repositories.NewMemoryCompetitorRepository(models.DefaultRoster())
	matchRepo := repositories.NewMemoryMatchRepository()

	// Инициализация сервисов
	tournamentService := services.NewTournamentService(
		competitorRepo,
		matchRepo,
		notifier,
		utils.NewRand(seed, drawStream),
		logger,
	)
	simulationService := services.NewSimulationService(tournamentService, utils.NewRand(seed, simulationStream))
	reportService := services.NewReportService(tournamentService, uploader)
	authService := services.NewAuthService(cfg.OrganizerPasswordHash)
	if cfg.OrganizerPasswordHash == "" {
		logger.Warn("ORGANIZER_PASSWORD_HASH is empty, organizer logins are disabled")
	}
	logger.Info("tournament initialized", slog.String("tournament_id", tournamentService.ID()))

	// Инициализация обработчиков HTTP
	authHandler := handlers.NewAuthHandler(authService, cfg.JWTSecretKey)
	tournamentHandler := handlers.NewTournamentHandler(tournamentService, simulationService, reportService)
	webSocketHandler := handlers.NewWebSocketHandler(wsHub)

	router := chi.NewRouter()
	api.SetupRoutes(
		router,
		api.Options{JWTSecret: cfg.JWTSecretKey, CORSAllowedOrigins: cfg.CORSAllowedOrigins},
		authHandler,
		tournamentHandler,
		webSocketHandler,
	)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("WebSocket Hub started")
		return wsHub.Run(gctx)
	})

	g.Go(func() error {
		logger.Info("starting server", slog.String("address", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			return err
		}
		logger.Info("server shutdown complete")
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("application stopped with error", slog.Any("error", err))
		return err
	}
	logger.Info("application exited")
	return nil
}

func drawSeed(cfg *config.Config) (int64, error) {
	if cfg.DrawSeed != nil {
		return *cfg.DrawSeed, nil
	}
	return utils.NewSeed()
}
