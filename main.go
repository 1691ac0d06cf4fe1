package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"ghsearch/internal/config"
	"ghsearch/internal/eventbus"
	"ghsearch/internal/github"
	"ghsearch/internal/lookup"
	"ghsearch/internal/ui"
)

func main() {
	var (
		configPath string
		apiURL     string
		logPath    string
	)
	flag.StringVar(&configPath, "config", "", "Path to config file (default: user config dir)")
	flag.StringVar(&apiURL, "api", "", "Base URL of the GitHub-compatible REST API")
	flag.StringVar(&logPath, "log", "ghsearch.log", "Log file path")
	flag.Parse()

	// Set up logging
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}
	if apiURL != "" {
		cfg.API.BaseURL = apiURL
	}
	if err := cfg.Validate(); err != nil {
		fmt.Printf("Invalid config: %v\n", err)
		os.Exit(1)
	}
	log.Printf("Searching %s (debounce %s, min length %d)", cfg.API.BaseURL, cfg.Search.Debounce(), cfg.Search.MinQueryLength)

	bus := eventbus.New()

	client := github.NewClient(cfg.API.BaseURL, github.WithUserAgent(cfg.API.UserAgent))
	lookupSvc := lookup.NewService(ctx, bus, client)

	uiModel := ui.NewModel(bus, cfg)
	p := tea.NewProgram(uiModel, tea.WithAltScreen())
	uiModel.SetProgram(p)

	// Forward lookup outcomes to the UI
	eventChan := make(chan eventbus.DomainEvent, 100)
	forwardEvent := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.Println("Event channel full, dropping event")
		}
	}
	bus.Subscribe(eventbus.EventLookupSucceeded, forwardEvent)
	bus.Subscribe(eventbus.EventLookupFailed, forwardEvent)

	go func() {
		for {
			select {
			case event := <-eventChan:
				p.Send(ui.EventMsg{Event: event})
			case <-ctx.Done():
				p.Quit()
				return
			}
		}
	}()

	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Printf("UI exited normally")

	// Cleanup
	uiModel.Close()
	lookupSvc.Close()
	cancel()
	bus.Close()
}

// loadConfig reads the config file, writing defaults on first run
func loadConfig(path string) (*config.Config, error) {
	var svc config.ConfigService
	if path != "" {
		svc = config.NewConfigServiceAt(path)
	} else {
		svc = config.NewConfigService()
	}

	cfg, err := svc.Load()
	if err != nil {
		return nil, err
	}

	if _, statErr := os.Stat(svc.Path()); os.IsNotExist(statErr) {
		if err := svc.Save(config.DefaultConfig()); err != nil {
			log.Printf("Failed to save config: %v", err)
		} else {
			log.Printf("Config saved to %s", svc.Path())
		}
	}
	return cfg, nil
}
