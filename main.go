package main

import (
	"errors"
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"fitflow/internal/coach"
	"fitflow/internal/config"
	"fitflow/internal/logging"
	"fitflow/internal/service"
	"fitflow/internal/store"
	"fitflow/internal/tui"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Load configuration. A missing file is fine: write an example and
	// carry on with the defaults.
	cfg, err := config.Load()
	if errors.Is(err, config.ErrNoConfig) {
		if err := config.CreateExample(); err != nil {
			return fmt.Errorf("creating example config: %w", err)
		}
	} else if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Validate config
	if err := cfg.Validate(); err != nil {
		configDir, _ := config.GetConfigDir()
		fmt.Printf("Config validation failed: %v\n\n", err)
		fmt.Printf("Please edit the config file at:\n  %s/config.json\n", configDir)
		return nil
	}

	logPath, err := cfg.LogPath()
	if err != nil {
		return fmt.Errorf("resolving log path: %w", err)
	}
	logger, err := logging.Setup(logging.Params{
		File:       logPath,
		Level:      cfg.Log.Level,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
	})
	if err != nil {
		return fmt.Errorf("setting up logging: %w", err)
	}

	// Open the session journal
	db, err := store.Open()
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	// Create services
	client := coach.NewClient(coach.Config{
		APIKey:  cfg.Coach.APIKey,
		Model:   cfg.Coach.Model,
		BaseURL: cfg.Coach.BaseURL,
		Timeout: cfg.Coach.Timeout(),
	}, logger)
	if !client.Configured() {
		logger.Warn("no API key configured; the coach will not answer questions")
	}

	tracker := service.NewTracker(db, logger, cfg.Profile.DefaultHeightCm)
	querySvc := service.NewQueryService(db)

	logger.WithField("model", cfg.Coach.Model).Info("starting fitflow")

	// Launch TUI
	app := tui.NewApp(tracker, querySvc, client, logger)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}

	return nil
}
