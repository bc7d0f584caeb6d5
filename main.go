package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"assetpick/internal/config"
	"assetpick/internal/discovery"
	"assetpick/internal/domain"
	"assetpick/internal/eventbus"
	"assetpick/internal/library"
	"assetpick/internal/picker"
	"assetpick/internal/ui"
)

func main() {
	// Parse command line arguments
	var targetDir string
	var limit int
	flag.StringVar(&targetDir, "dir", "", "Directory to scan for albums")
	flag.StringVar(&targetDir, "d", "", "Directory to scan for albums (shorthand)")
	flag.IntVar(&limit, "limit", 0, "Maximum number of assets to pick (0 = unlimited)")
	flag.Parse()

	// If no directory specified, check for remaining args
	if targetDir == "" && flag.NArg() > 0 {
		targetDir = flag.Arg(0)
	}

	// If still no directory, use current directory
	if targetDir == "" {
		var err error
		targetDir, err = os.Getwd()
		if err != nil {
			fmt.Printf("Error getting current directory: %v\n", err)
			os.Exit(1)
		}
	}

	absDir, err := filepath.Abs(targetDir)
	if err != nil {
		fmt.Printf("Error resolving path: %v\n", err)
		os.Exit(1)
	}

	// Set up logging
	logFile, err := os.OpenFile("assetpick.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
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

	// Create event bus
	bus := eventbus.New()

	// Load configuration from the scanned directory, falling back to defaults
	configSvc := config.NewServiceWithBus(bus)
	cfg := loadOrCreateConfig(configSvc, absDir)
	cfg.Roots = []string{absDir}
	if limit > 0 {
		cfg.UISettings.SelectionLimit = limit
	}

	// Album store and discovery
	store := library.NewStore()
	discoverySvc := discovery.NewService(bus, store)

	// Build the picking session. The delegate is the host side of the
	// picker: it receives the result and enforces the selection limit.
	var engine *picker.Engine
	var picked []domain.Asset
	cancelled := false

	delegate := &picker.Delegate{
		DidFinishPicking: func(assets []domain.Asset) { picked = assets },
		DidCancel:        func() { cancelled = true },
	}
	if max := cfg.UISettings.SelectionLimit; max > 0 {
		delegate.ShouldSelectAsset = func(domain.Asset) bool {
			return engine.SelectedCount() < max
		}
	}

	engine, err = picker.NewEngine(bus, delegate, picker.Options{})
	if err != nil {
		fmt.Printf("Error creating picker: %v\n", err)
		os.Exit(1)
	}

	// Create UI model and program
	uiModel := ui.NewModel(bus, engine, store, delegate, cfg)
	p := tea.NewProgram(uiModel, tea.WithAltScreen())
	uiModel.SetProgram(p)

	// Forward library events to the UI
	eventChan := make(chan eventbus.DomainEvent, 100)
	forward := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.Println("Event channel full, dropping event")
		}
	}
	unsubs := []func(){
		bus.Subscribe(eventbus.EventScanStarted, forward),
		bus.Subscribe(eventbus.EventScanCompleted, forward),
		bus.Subscribe(eventbus.EventAlbumDiscovered, forward),
		bus.Subscribe(eventbus.EventError, forward),
	}

	go func() {
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	// Start initial scan
	go discoverySvc.StartScan(ctx, cfg.Roots)

	// Run the UI
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}

	// Cleanup. A scan may still be running; its deferred completion event
	// must stop reaching eventChan before the channel closes, so detach the
	// forwarders and wait for the scan first.
	for _, unsub := range unsubs {
		unsub()
	}
	discoverySvc.StopScan()
	close(eventChan)
	cancel()

	// Hand the result to the caller: one picked path per line
	if cancelled {
		return
	}
	for _, asset := range picked {
		if la, ok := asset.(*library.Asset); ok {
			fmt.Println(la.Path())
		} else {
			fmt.Println(asset.Name())
		}
	}
}

// loadOrCreateConfig reads .assetpick.toml from the scanned directory,
// falling back to the user-level config and then to defaults
func loadOrCreateConfig(svc config.Service, dir string) *config.Config {
	localPath := filepath.Join(dir, ".assetpick.toml")
	if cfg, err := svc.LoadFromPath(localPath); err == nil {
		log.Printf("Loaded config from %s", localPath)
		return cfg
	}

	cfg, err := svc.Load()
	if err != nil {
		log.Printf("Error loading config: %v", err)
		cfg = config.DefaultConfig()
	}
	return cfg
}
