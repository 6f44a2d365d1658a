package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"weathergrip/internal/config"
	"weathergrip/internal/eventbus"
	"weathergrip/internal/search"
	"weathergrip/internal/ui"
	"weathergrip/internal/weatherapi"
)

func main() {
	// Parse command line arguments
	var configPath, query, units string
	flag.StringVar(&configPath, "config", "", "Path to the config file (default: user config dir)")
	flag.StringVar(&configPath, "c", "", "Path to the config file (shorthand)")
	flag.StringVar(&query, "query", "", "Location to search for on start")
	flag.StringVar(&query, "q", "", "Location to search for on start (shorthand)")
	flag.StringVar(&units, "units", "", "Temperature units: metric or imperial")
	flag.Parse()

	// Remaining args form the initial query
	if query == "" && flag.NArg() > 0 {
		query = strings.Join(flag.Args(), " ")
	}

	// .env is read before the config so its variables can override file values
	config.LoadEnv()

	// Create event bus
	bus := eventbus.New()
	defer bus.Close()

	configSvc := config.NewConfigServiceWithBus(configPath, bus)
	cfg, created, loadErr := loadOrCreateConfig(configSvc)
	config.ApplyEnv(cfg)
	if units != "" {
		cfg.UISettings.Units = strings.ToLower(units)
	}

	// Set up logging
	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	switch {
	case loadErr != nil:
		log.Printf("Failed to load config from %s, using defaults: %v", configSvc.Path(), loadErr)
	case created:
		log.Printf("Created config at %s", configSvc.Path())
	default:
		log.Printf("Loaded config from %s", configSvc.Path())
	}

	if err := cfg.Validate(); err != nil {
		log.Printf("Invalid configuration: %v", err)
		fmt.Fprintf(os.Stderr, "weathergrip: %v (config: %s)\n", err, configSvc.Path())
		os.Exit(1)
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	tally := search.NewTally(bus)

	opts := []weatherapi.Option{weatherapi.WithTimeout(cfg.API.TimeoutDuration())}
	if cfg.Breaker.Enabled {
		opts = append(opts, weatherapi.WithBreaker(weatherapi.BreakerSettings{
			MaxFailures: cfg.Breaker.MaxFailures,
			OpenTimeout: cfg.Breaker.OpenTimeoutDuration(),
		}))
	}
	client := weatherapi.New(cfg.API.BaseURL, cfg.API.APIKey, opts...)
	controller := search.NewController(client, bus)

	log.Printf("Creating UI model...")
	uiModel := ui.NewModel(ctx, cfg, controller)
	if query != "" {
		uiModel.SetInitialQuery(query)
	}

	p := tea.NewProgram(uiModel, tea.WithAltScreen(), tea.WithContext(ctx))
	uiModel.SetProgram(p)

	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Printf("UI exited normally")

	tally.Stop()
	log.Printf("Session: %s", tally)
}

// loadOrCreateConfig loads the config file, writing the defaults on first run
func loadOrCreateConfig(configSvc config.ConfigService) (*config.Config, bool, error) {
	if _, err := os.Stat(configSvc.Path()); errors.Is(err, os.ErrNotExist) {
		cfg := config.DefaultConfig()
		if err := configSvc.Save(cfg); err != nil {
			return cfg, false, err
		}
		return cfg, true, nil
	}

	cfg, err := configSvc.Load()
	if err != nil {
		return config.DefaultConfig(), false, err
	}
	return cfg, false, nil
}
