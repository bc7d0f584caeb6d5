package library

import (
	"sync"

	"assetpick/internal/domain"
)

// Store is an in-memory registry of discovered albums. Discovery writes from
// a background goroutine while the UI reads, so access is mutex-guarded and
// readers get copies.
type Store struct {
	mu     sync.RWMutex
	albums map[string]*Album
	order  []string // album names in discovery order
}

// NewStore creates an empty album store
func NewStore() *Store {
	return &Store{
		albums: make(map[string]*Album),
	}
}

// Add registers an album, replacing any album with the same name
func (s *Store) Add(album *Album) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.albums[album.Name()]; !ok {
		s.order = append(s.order, album.Name())
	}
	s.albums[album.Name()] = album
}

// Get returns the named album, or nil
func (s *Store) Get(name string) *Album {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.albums[name]
}

// Remove drops the named album
func (s *Store) Remove(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.albums[name]; !ok {
		return
	}
	delete(s.albums, name)
	for i, n := range s.order {
		if n == name {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Albums returns the albums in discovery order. The slice is a copy.
func (s *Store) Albums() []*Album {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*Album, 0, len(s.order))
	for _, name := range s.order {
		result = append(result, s.albums[name])
	}
	return result
}

// Len returns the number of albums
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.albums)
}

// TotalAssets returns the number of assets across all albums
func (s *Store) TotalAssets() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0
	for _, album := range s.albums {
		total += album.Count()
	}
	return total
}

// FindAsset looks an asset up by ID across all albums, or nil
func (s *Store) FindAsset(id string) domain.Asset {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, name := range s.order {
		album := s.albums[name]
		for i := 0; i < album.Count(); i++ {
			if asset := album.AssetAt(i); asset != nil && asset.ID() == id {
				return asset
			}
		}
	}
	return nil
}
