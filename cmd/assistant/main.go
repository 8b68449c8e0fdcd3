package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/example/event-assistant/internal/application"
	"github.com/example/event-assistant/internal/bot"
	"github.com/example/event-assistant/internal/broadcast"
	"github.com/example/event-assistant/internal/config"
	"github.com/example/event-assistant/internal/logging"
	"github.com/example/event-assistant/internal/persistence/sqlite"
	"github.com/example/event-assistant/internal/session"
	"github.com/example/event-assistant/internal/transport/telegram"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	storage, err := sqlite.Open(cfg.SQLiteDSN)
	if err != nil {
		logger.Error("failed to open storage", "error", err)
		os.Exit(1)
	}
	defer func() {
		if cerr := storage.Close(); cerr != nil {
			logger.Error("failed to close storage", "error", cerr)
		}
	}()

	if err := storage.Migrate(context.Background()); err != nil {
		logger.Error("failed to apply migrations", "error", err)
		os.Exit(1)
	}

	profileService := application.NewProfileService(storage, cfg.DefaultLanguage)
	meetingService := application.NewMeetingService(storage, storage)
	agendaService := application.NewAgendaService(storage)
	engagementService := application.NewEngagementService(storage, storage, storage, storage)
	authService := application.NewAuthService(storage, cfg.AdminPasswordHash, nil, logger)
	dispatcher := broadcast.NewDispatcher(cfg.BroadcastTimeout, logger)

	transport, err := telegram.New(cfg.BotToken, logger)
	if err != nil {
		logger.Error("failed to connect to telegram", "error", err)
		os.Exit(1)
	}

	engine := bot.NewEngine(
		transport,
		session.NewMemoryStore(),
		profileService,
		meetingService,
		agendaService,
		engagementService,
		authService,
		dispatcher,
		logger,
	)

	logger.Info("assistant started", "bot", transport.Username())

	transport.Run(ctx, func(ctx context.Context, update bot.Update) {
		engine.HandleUpdate(logging.ContextWithLogger(ctx, logger), update)
	})

	logger.Info("assistant stopped")
}
