package main

import (
	"context"
	"fmt"

	"github.com/diegoclair/attendance-reminder-bot/internal/config"
	"github.com/diegoclair/attendance-reminder-bot/internal/database"
	"github.com/diegoclair/attendance-reminder-bot/internal/domain/contract"
	"github.com/diegoclair/attendance-reminder-bot/internal/domain/service"
	"github.com/diegoclair/attendance-reminder-bot/internal/holiday"
	"github.com/diegoclair/attendance-reminder-bot/internal/logger"
	"github.com/diegoclair/attendance-reminder-bot/migrator/sqlite"
	"github.com/joho/godotenv"
	"github.com/slack-go/slack"
	"go.uber.org/zap"
)

// app holds what every subcommand needs: configuration, logger and a
// migrated database.
type app struct {
	cfg *config.Config
	log *zap.Logger
	db  *database.DB
	dm  contract.DataManager
}

func newApp() (*app, error) {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	if envErr != nil {
		log.Warn(".env file not found, using the process environment")
	}

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	log.Info("running migrations", zap.String("path", cfg.DatabasePath))
	if err := sqlite.Migrate(db.DB()); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &app{
		cfg: cfg,
		log: log,
		db:  db,
		dm:  database.NewInstance(db),
	}, nil
}

func (a *app) services() *service.Instance {
	slackClient := slack.New(a.cfg.SlackBotToken)
	return service.NewInstance(a.dm, slackClient, a.cfg, a.log)
}

func (a *app) importHolidays(ctx context.Context, path string) (int, error) {
	holidays, err := holiday.LoadFile(path)
	if err != nil {
		return 0, err
	}

	n, err := holiday.Import(ctx, a.dm, holidays)
	if err != nil {
		return n, err
	}

	a.log.Info("holidays imported", zap.String("file", path), zap.Int("count", n))
	return n, nil
}

func (a *app) close() {
	if err := a.db.Close(); err != nil {
		a.log.Warn("failed to close database", zap.Error(err))
	}
	_ = a.log.Sync()
}
