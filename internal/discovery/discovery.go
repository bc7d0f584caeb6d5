package discovery

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"assetpick/internal/domain"
	"assetpick/internal/eventbus"
	"assetpick/internal/library"
)

// Service finds albums in the filesystem: every directory under the roots
// that directly contains media files becomes one album.
type Service interface {
	StartScan(ctx context.Context, roots []string) error
	StopScan()
}

// service is the concrete implementation
type service struct {
	bus        eventbus.EventBus
	store      *library.Store
	mu         sync.Mutex
	isScanning bool
	cancelFunc context.CancelFunc
	wg         sync.WaitGroup
}

// NewService creates a new discovery service writing into the given store
func NewService(bus eventbus.EventBus, store *library.Store) Service {
	ds := &service{
		bus:   bus,
		store: store,
	}

	// Subscribe to scan requests
	bus.Subscribe(eventbus.EventScanRequested, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ScanRequestedEvent); ok {
			go ds.StartScan(context.Background(), event.Roots)
		}
	})

	return ds
}

// StartScan starts scanning for albums
func (ds *service) StartScan(ctx context.Context, roots []string) error {
	ds.mu.Lock()
	if ds.isScanning {
		ds.mu.Unlock()
		return fmt.Errorf("scan already in progress")
	}
	ds.isScanning = true

	scanCtx, cancel := context.WithCancel(ctx)
	ds.cancelFunc = cancel
	ds.mu.Unlock()

	ds.bus.Publish(eventbus.ScanStartedEvent{Roots: roots})

	albumsFound := 0
	assetsFound := 0

	// Scan in background
	ds.wg.Add(1)
	go func() {
		defer ds.wg.Done()
		defer func() {
			ds.mu.Lock()
			ds.isScanning = false
			ds.cancelFunc = nil
			ds.mu.Unlock()

			ds.bus.Publish(eventbus.ScanCompletedEvent{
				AlbumsFound: albumsFound,
				AssetsFound: assetsFound,
			})
		}()

		for _, root := range roots {
			select {
			case <-scanCtx.Done():
				return
			default:
				albums, assets := ds.scanDirectory(scanCtx, root)
				albumsFound += albums
				assetsFound += assets
			}
		}
	}()

	return nil
}

// StopScan stops any ongoing scan
func (ds *service) StopScan() {
	ds.mu.Lock()
	if ds.cancelFunc != nil {
		ds.cancelFunc()
	}
	ds.mu.Unlock()

	ds.wg.Wait()
}

// scanDirectory walks a root and turns each directory holding media files
// into an album
func (ds *service) scanDirectory(ctx context.Context, root string) (int, int) {
	albumsFound := 0
	assetsFound := 0
	maxDepth := 5 // Maximum depth to scan

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err != nil {
			log.Printf("Error walking path %s: %v", path, err)
			return nil // Continue walking
		}

		if !d.IsDir() {
			return nil
		}

		// Check depth limit
		relPath, _ := filepath.Rel(root, path)
		depth := strings.Count(relPath, string(filepath.Separator))
		if depth > maxDepth {
			return filepath.SkipDir
		}

		// Skip hidden directories
		if strings.HasPrefix(d.Name(), ".") && d.Name() != "." && relPath != "." {
			return fs.SkipDir
		}

		album, err := buildAlbum(path)
		if err != nil {
			log.Printf("Error reading directory %s: %v", path, err)
			return nil
		}
		if album == nil {
			return nil // No media here
		}

		ds.store.Add(album)
		ds.bus.Publish(eventbus.AlbumDiscoveredEvent{
			Name:   album.Name(),
			Path:   album.Path(),
			Assets: album.Count(),
		})
		albumsFound++
		assetsFound += album.Count()
		return nil
	})

	if err != nil && err != context.Canceled {
		log.Printf("Error scanning directory %s: %v", root, err)
		ds.bus.Publish(eventbus.ErrorEvent{
			Message: fmt.Sprintf("Failed to scan %s", root),
			Err:     err,
		})
	}

	return albumsFound, assetsFound
}

// buildAlbum reads one directory and returns an album of the media files
// directly inside it, or nil when it contains none
func buildAlbum(dir string) (*library.Album, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var assets []domain.Asset
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if library.MediaTypeForPath(entry.Name()) == domain.MediaTypeUnknown {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			log.Printf("Error reading file info for %s: %v", entry.Name(), err)
			continue
		}
		assets = append(assets, library.NewAsset(filepath.Join(dir, entry.Name()), info.Size(), info.ModTime()))
	}

	if len(assets) == 0 {
		return nil, nil
	}

	sort.Slice(assets, func(i, j int) bool {
		return assets[i].Name() < assets[j].Name()
	})

	return library.NewAlbum(filepath.Base(dir), dir, assets), nil
}
