package session

import (
	"context"
	"maps"
	"sync"

	"github.com/desertthunder/festify/internal/models"
	"github.com/desertthunder/festify/internal/shared"
)

// MemoryStore is an in-process [Store] used in tests and local development
// when no redis instance is available.
type MemoryStore struct {
	mu     sync.RWMutex
	hashes map[string]map[string]string
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{hashes: make(map[string]map[string]string)}
}

// Load implements [Store].
func (s *MemoryStore) Load(ctx context.Context, sessionID string) (*models.SessionData, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	fields, ok := s.hashes[sessionID]
	if !ok || len(fields) == 0 {
		return nil, shared.ErrNoSession
	}
	return decode(maps.Clone(fields)), nil
}

// Reset implements [Store].
func (s *MemoryStore) Reset(ctx context.Context, sessionID string, data *models.SessionData) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	fields := s.hashes[sessionID]
	if fields == nil {
		fields = make(map[string]string)
		s.hashes[sessionID] = fields
	}
	for _, field := range staleFields {
		delete(fields, field)
	}
	maps.Copy(fields, minimalRecord(data))
	return nil
}

// Merge implements [Store].
func (s *MemoryStore) Merge(ctx context.Context, sessionID string, fields map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing := s.hashes[sessionID]
	if existing == nil {
		existing = make(map[string]string)
		s.hashes[sessionID] = existing
	}
	maps.Copy(existing, fields)
	return nil
}

// Fields returns a copy of the raw hash for a session, for test assertions.
func (s *MemoryStore) Fields(sessionID string) map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.hashes[sessionID])
}
