package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/diegoclair/birthday-bot/internal/commands"
	"github.com/diegoclair/birthday-bot/internal/config"
	"github.com/diegoclair/birthday-bot/internal/database"
	"github.com/diegoclair/birthday-bot/internal/domain/command"
	"github.com/diegoclair/birthday-bot/internal/domain/service"
	"github.com/diegoclair/birthday-bot/internal/handlers"
	"github.com/diegoclair/birthday-bot/internal/logger"
	"github.com/diegoclair/birthday-bot/internal/metrics"
	"github.com/diegoclair/birthday-bot/internal/scheduler"
	"github.com/diegoclair/birthday-bot/migrator"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
	"github.com/slack-go/slack"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logger.Log.Info("No .env file found, using environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Log.WithError(err).Fatal("Invalid configuration")
	}
	logger.Init(cfg.LogLevel, cfg.Environment)

	db, err := database.New(cfg.DatabaseDriver, cfg.DatabaseURL)
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to initialize database")
	}
	defer db.Close()

	logger.Log.Info("Running migrations...")
	if err := migrator.Migrate(db.DB(), db.Driver()); err != nil {
		logger.Log.WithError(err).Fatal("Failed to run migrations")
	}
	logger.Log.Info("Migrations completed successfully")

	slackClient := slack.New(cfg.SlackBotToken)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	auth, err := slackClient.AuthTestContext(ctx)
	cancel()
	if err != nil {
		logger.Log.WithError(err).Fatal("Slack authentication failed")
	}
	logger.Log.WithFields(logrus.Fields{
		"bot_user_id": auth.UserID,
		"team_id":     auth.TeamID,
	}).Info("Connected to Slack")

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	recorder := metrics.NewCollector(registry)

	services := service.NewInstance(database.NewInstance(db), slackClient, cfg.Timezone, cfg.AnnouncementChannelID, recorder)

	commandRegistry := command.NewRegistry()
	if err := commands.RegisterAll(commandRegistry, commands.Handlers(services, slackClient)...); err != nil {
		logger.Log.WithError(err).Fatal("Failed to register commands")
	}
	for _, decl := range commandRegistry.Declarations() {
		logger.Log.WithField("command", "/"+decl.Name).Info("Registered command")
	}
	dispatcher := command.NewDispatcher(commandRegistry, recorder)

	var sched *scheduler.Scheduler
	if cfg.AnnouncementsEnabled() {
		sched = scheduler.New(services.Announcement, cfg.Timezone, recorder)
		if err := sched.Start(); err != nil {
			logger.Log.WithError(err).Fatal("Failed to start scheduler")
		}
	} else {
		logger.Log.Warn("BIRTHDAY_ANNOUNCEMENT_CHANNEL_ID is not set, scheduled announcements are disabled")
	}

	handler := handlers.New(dispatcher, commandRegistry, slackClient, cfg.SlackSigningSecret, cfg.SlackTeamID)
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handlers.NewRouter(handler, registry),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Log.WithField("port", cfg.Port).Info("Server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.WithError(err).Fatal("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	logger.Log.WithField("signal", sig.String()).Info("Shutting down")

	if sched != nil {
		sched.Stop()
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Log.WithError(err).Error("Server shutdown failed")
	}
	logger.Log.Info("Bye")
}
