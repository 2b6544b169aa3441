package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"pixels/internal/config"
	"pixels/internal/download"
	"pixels/internal/eventbus"
	"pixels/internal/imageapi"
	"pixels/internal/logging"
	"pixels/internal/ui"
)

func main() {
	// Parse command line arguments
	var configPath, envFile string
	flag.StringVar(&configPath, "config", "", "Path to the config file (default: user config dir)")
	flag.StringVar(&configPath, "c", "", "Path to the config file (shorthand)")
	flag.StringVar(&envFile, "env", ".env", "Path to a .env file with API_URL / API_KEY")
	flag.Parse()

	// Log to the default file until the config says otherwise
	defaults := config.DefaultConfig().Log
	logCloser := setupLogging(nil, defaults)
	log := logging.Component("main")

	// Create event bus
	bus := eventbus.New()
	defer bus.Close()
	logSearchEvents(bus)

	// Events for the UI are buffered until the program is running
	eventChan := make(chan eventbus.DomainEvent, 100)
	forward := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.Warn("event channel full, dropping event")
		}
	}
	for _, t := range []eventbus.EventType{
		eventbus.EventDownloadCompleted,
		eventbus.EventDownloadFailed,
		eventbus.EventError,
	} {
		bus.Subscribe(t, forward)
	}

	// Load configuration
	configSvc := config.NewConfigServiceWithBus(bus, configPath)
	cfg := loadOrCreateConfig(configSvc, bus)
	config.ApplyEnv(cfg, envFile)

	if cfg.Log != defaults {
		logCloser = setupLogging(logCloser, cfg.Log)
	}
	if logCloser != nil {
		defer logCloser.Close()
	}
	log.WithFields(logrus.Fields{
		"config":   configSvc.Path(),
		"endpoint": cfg.API.BaseURL,
	}).Info("starting")
	for _, w := range cfg.Warnings() {
		log.Warn(w)
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize services
	download.NewServiceWithBus(bus, cfg.Download.Dir)
	client := imageapi.NewFromConfig(cfg.API)

	// Create UI model
	uiModel := ui.NewModel(bus, cfg, client)

	// Create Bubble Tea program
	p := tea.NewProgram(uiModel, tea.WithAltScreen(), tea.WithContext(ctx))
	uiModel.SetProgram(p)

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Forward events to the UI
	go func() {
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	// Run the UI
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		log.WithError(err).Error("program exited with error")
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Info("exited normally")
}

// setupLogging points the logger at settings.File. On failure the previous
// output is kept and prev is returned.
func setupLogging(prev io.Closer, settings config.LogSettings) io.Closer {
	closer, err := logging.Setup(settings.File, settings.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not open log file: %v\n", err)
		logging.SetLevel(settings.Level)
		return prev
	}
	return closer
}

// loadOrCreateConfig loads the config file, writing the defaults on first run.
// A broken file is reported on the bus and the defaults are used.
func loadOrCreateConfig(configSvc config.ConfigService, bus eventbus.EventBus) *config.Config {
	log := logging.Component("main")

	if _, err := os.Stat(configSvc.Path()); errors.Is(err, os.ErrNotExist) {
		cfg := config.DefaultConfig()
		if err := configSvc.Save(cfg); err != nil {
			log.WithError(err).Warn("failed to save default config")
		}
		return cfg
	}

	cfg, err := configSvc.Load()
	if err != nil {
		log.WithError(err).Warn("error loading config, using defaults")
		if bus != nil {
			bus.Publish(eventbus.ErrorEvent{
				Message: "Config not loaded, using defaults: " + err.Error(),
				Err:     err,
			})
		}
		return config.DefaultConfig()
	}
	return cfg
}

// logSearchEvents records the search lifecycle in the log file
func logSearchEvents(bus eventbus.EventBus) {
	log := logging.Component("search")

	bus.Subscribe(eventbus.EventSearchRequested, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SearchRequestedEvent); ok {
			log.WithFields(logrus.Fields{
				"seq":    event.Seq,
				"mode":   event.Mode.String(),
				"params": event.Params.Values(),
			}).Info("search requested")
		}
	})
	bus.Subscribe(eventbus.EventSearchCompleted, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SearchCompletedEvent); ok {
			log.WithFields(logrus.Fields{
				"seq":     event.Seq,
				"count":   event.Count,
				"total":   event.TotalHits,
				"applied": event.Applied,
			}).Info("search completed")
		}
	})
	bus.Subscribe(eventbus.EventSearchFailed, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SearchFailedEvent); ok {
			log.WithFields(logrus.Fields{
				"seq":    event.Seq,
				"params": event.Params.Values(),
			}).Warn("search failed: " + event.Message)
		}
	})
}
