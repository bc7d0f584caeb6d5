package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
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

	// Load user-level configuration
	configSvc := config.NewServiceWithBus(bus)
	cfg, err := configSvc.Load()
	if err != nil {
		log.Printf("Error loading config: %v", err)
		cfg = config.DefaultConfig()
	}

	// Album store and discovery
	store := library.NewStore()
	discoverySvc := discovery.NewService(bus, store)

	var engine *picker.Engine
	var picked []domain.Asset

	delegate := &picker.Delegate{
		DidFinishPicking: func(assets []domain.Asset) { picked = assets },
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

	// Start initial scan over the configured roots
	if len(cfg.Roots) > 0 {
		go discoverySvc.StartScan(ctx, cfg.Roots)
	}

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

	for _, asset := range picked {
		if la, ok := asset.(*library.Asset); ok {
			fmt.Println(la.Path())
		} else {
			fmt.Println(asset.Name())
		}
	}
}
