package data

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"

	"commodity-forecast/internal/simulate"
)

// storeEntry holds one completed simulation until it expires.
type storeEntry struct {
	Result    *simulate.Result
	ExpiresAt time.Time
}

// ResultStore keeps completed simulation results in memory so the API
// can serve timeline retrieval by id without re-running the engine.
// Entries expire after a TTL; a background sweep reclaims them.
// Results are immutable once stored, so readers share them safely.
type ResultStore struct {
	mu    sync.RWMutex
	store map[string]*storeEntry
	ttl   time.Duration
}

const DefaultResultTTL = 1 * time.Hour

func NewResultStore(ttl time.Duration) *ResultStore {
	if ttl <= 0 {
		ttl = DefaultResultTTL
	}
	s := &ResultStore{
		store: make(map[string]*storeEntry),
		ttl:   ttl,
	}
	go s.cleanup()
	return s
}

// Put stores a result and returns its generated id.
func (s *ResultStore) Put(result *simulate.Result) string {
	id := newID()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.store[id] = &storeEntry{
		Result:    result,
		ExpiresAt: time.Now().Add(s.ttl),
	}
	return id
}

// Get retrieves a stored result if present and not expired.
func (s *ResultStore) Get(id string) (*simulate.Result, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, exists := s.store[id]
	if !exists {
		return nil, false
	}
	if time.Now().After(entry.ExpiresAt) {
		return nil, false
	}
	return entry.Result, true
}

// Clear removes all entries.
func (s *ResultStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store = make(map[string]*storeEntry)
}

// cleanup periodically removes expired entries.
func (s *ResultStore) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		s.mu.Lock()
		now := time.Now()
		for id, entry := range s.store {
			if now.After(entry.ExpiresAt) {
				delete(s.store, id)
			}
		}
		s.mu.Unlock()
	}
}

func newID() string {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		// rand.Read never fails on supported platforms; fall back to
		// a time-derived id rather than panicking the host.
		return hex.EncodeToString([]byte(time.Now().Format("20060102150405.000000000")))
	}
	return hex.EncodeToString(b[:])
}
