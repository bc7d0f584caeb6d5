package discovery

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assetpick/internal/domain"
	"assetpick/internal/eventbus"
	"assetpick/internal/library"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
}

func waitForScan(t *testing.T, done <-chan eventbus.ScanCompletedEvent) eventbus.ScanCompletedEvent {
	t.Helper()
	select {
	case e := <-done:
		return e
	case <-time.After(5 * time.Second):
		t.Fatal("scan did not complete")
		return eventbus.ScanCompletedEvent{}
	}
}

func TestScanFindsAlbums(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "holiday", "beach.jpg"))
	writeFile(t, filepath.Join(root, "holiday", "sunset.mp4"))
	writeFile(t, filepath.Join(root, "pets", "cat.png"))
	writeFile(t, filepath.Join(root, "pets", "notes.txt")) // not media
	writeFile(t, filepath.Join(root, "docs", "report.pdf"))

	bus := eventbus.New()
	store := library.NewStore()
	svc := NewService(bus, store)

	done := make(chan eventbus.ScanCompletedEvent, 1)
	bus.Subscribe(eventbus.EventScanCompleted, func(e eventbus.DomainEvent) {
		done <- e.(eventbus.ScanCompletedEvent)
	})

	require.NoError(t, svc.StartScan(context.Background(), []string{root}))
	completed := waitForScan(t, done)

	assert.Equal(t, 2, completed.AlbumsFound)
	assert.Equal(t, 3, completed.AssetsFound)

	holiday := store.Get("holiday")
	require.NotNil(t, holiday)
	assert.Equal(t, 2, holiday.Count())
	// Assets are ordered by name within an album
	assert.Equal(t, "beach.jpg", holiday.AssetAt(0).Name())
	assert.Equal(t, domain.MediaTypeVideo, holiday.AssetAt(1).MediaType())

	pets := store.Get("pets")
	require.NotNil(t, pets)
	assert.Equal(t, 1, pets.Count())

	assert.Nil(t, store.Get("docs"), "directories without media do not become albums")
}

func TestScanSkipsHiddenDirectories(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".thumbnails", "tiny.jpg"))
	writeFile(t, filepath.Join(root, "visible", "pic.jpg"))

	bus := eventbus.New()
	store := library.NewStore()
	svc := NewService(bus, store)

	done := make(chan eventbus.ScanCompletedEvent, 1)
	bus.Subscribe(eventbus.EventScanCompleted, func(e eventbus.DomainEvent) {
		done <- e.(eventbus.ScanCompletedEvent)
	})

	require.NoError(t, svc.StartScan(context.Background(), []string{root}))
	waitForScan(t, done)

	assert.Nil(t, store.Get(".thumbnails"))
	assert.NotNil(t, store.Get("visible"))
}

func TestScanPublishesAlbumEvents(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "one", "a.jpg"))

	bus := eventbus.New()
	store := library.NewStore()
	svc := NewService(bus, store)

	var discovered []eventbus.AlbumDiscoveredEvent
	bus.Subscribe(eventbus.EventAlbumDiscovered, func(e eventbus.DomainEvent) {
		discovered = append(discovered, e.(eventbus.AlbumDiscoveredEvent))
	})
	done := make(chan eventbus.ScanCompletedEvent, 1)
	bus.Subscribe(eventbus.EventScanCompleted, func(e eventbus.DomainEvent) {
		done <- e.(eventbus.ScanCompletedEvent)
	})

	require.NoError(t, svc.StartScan(context.Background(), []string{root}))
	waitForScan(t, done)

	require.Len(t, discovered, 1)
	assert.Equal(t, "one", discovered[0].Name)
	assert.Equal(t, 1, discovered[0].Assets)
}

func TestScanShutdownOrdering(t *testing.T) {
	// Mirrors the entry points' teardown: forwarders feeding a channel must
	// be unsubscribed and the scan waited out before the channel closes,
	// or the scan goroutine's deferred completion publish sends on a
	// closed channel and panics.
	root := t.TempDir()
	for i := 0; i < 20; i++ {
		writeFile(t, filepath.Join(root, fmt.Sprintf("album-%02d", i), "a.jpg"))
	}

	bus := eventbus.New()
	svc := NewService(bus, library.NewStore())

	eventChan := make(chan eventbus.DomainEvent, 100)
	forward := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
		}
	}
	unsubs := []func(){
		bus.Subscribe(eventbus.EventScanStarted, forward),
		bus.Subscribe(eventbus.EventScanCompleted, forward),
		bus.Subscribe(eventbus.EventAlbumDiscovered, forward),
		bus.Subscribe(eventbus.EventError, forward),
	}

	require.NoError(t, svc.StartScan(context.Background(), []string{root}))

	// Tear down while the scan may still be in flight. StopScan blocks
	// until the scan goroutine (including its deferred publish) is done;
	// with the forwarders detached first, the late events go nowhere and
	// closing the channel is safe.
	for _, unsub := range unsubs {
		unsub()
	}
	svc.StopScan()
	close(eventChan)
}

func TestScanRejectsConcurrentScan(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "one", "a.jpg"))

	bus := eventbus.New()
	svc := NewService(bus, library.NewStore()).(*service)

	svc.mu.Lock()
	svc.isScanning = true
	svc.mu.Unlock()

	err := svc.StartScan(context.Background(), []string{root})
	assert.Error(t, err)
}
