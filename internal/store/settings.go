package store

import "sync"

// RestaurantInfo is the restaurant's display identity. Logo is nil when no
// logo has been configured and the caller should fall back to a default.
type RestaurantInfo struct {
	Name string  `json:"name"`
	Logo *string `json:"logo"`
}

// Settings holds restaurant-level configuration, mutated wholesale.
type Settings struct {
	mu   sync.RWMutex
	info RestaurantInfo
}

// NewSettings creates a settings store with the given initial info.
func NewSettings(info RestaurantInfo) *Settings {
	return &Settings{info: info}
}

// Info returns the current restaurant info.
func (s *Settings) Info() RestaurantInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.info
}

// SetInfo replaces the restaurant info.
func (s *Settings) SetInfo(info RestaurantInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.info = info
}
