// Package repo contains the storage layer for the Travel Planner API.
// The trip store is a generic keyed object store: it assigns sequential ids
// and hands back independent copies, but does not understand the trip schema.
// No business logic lives here — only storage and copying.
package repo

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/akarrer/travel-planner/internal/domain"
)

// TripStore defines the persistence operations for trip records.
// Handlers depend on this interface, not the concrete in-memory
// implementation, which allows them to be unit-tested with a mock.
type TripStore interface {
	// Create assigns the next sequential id to data and stores a copy.
	// It returns the stored record including its id.
	// Empty data is rejected with domain.ErrValidation.
	Create(ctx context.Context, data map[string]any) (map[string]any, error)

	// Get retrieves a single record by id.
	// Returns domain.ErrNotFound if no record with that id exists.
	Get(ctx context.Context, id string) (map[string]any, error)

	// List returns all records in insertion order.
	List(ctx context.Context) ([]map[string]any, error)
}

// MemoryTripStore is an in-memory TripStore, safe for concurrent use.
// Ids start at 0, are rendered as decimal strings, and are never reused for
// the lifetime of the process: id assignment and insertion happen under one
// lock, so two concurrent creates can never receive the same id.
type MemoryTripStore struct {
	mu    sync.RWMutex
	next  int
	byID  map[string]map[string]any
	order []string
}

// NewMemoryTripStore constructs an empty MemoryTripStore.
func NewMemoryTripStore() *MemoryTripStore {
	return &MemoryTripStore{byID: make(map[string]map[string]any)}
}

// Create stores a copy of data under the next sequential id.
func (s *MemoryTripStore) Create(ctx context.Context, data map[string]any) (map[string]any, error) {
	_ = ctx
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: No trip data provided!", domain.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := strconv.Itoa(s.next)
	record := copyObject(data)
	record["id"] = id
	s.byID[id] = record
	s.order = append(s.order, id)
	s.next++

	return copyObject(record), nil
}

// Get returns a copy of the record stored under id.
func (s *MemoryTripStore) Get(ctx context.Context, id string) (map[string]any, error) {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.byID[id]
	if !ok {
		return nil, fmt.Errorf("repo.MemoryTripStore.Get: %w", domain.ErrNotFound)
	}
	return copyObject(record), nil
}

// List returns copies of all records in insertion order.
// The result is never nil, so callers can safely range over and serialize it.
func (s *MemoryTripStore) List(ctx context.Context) ([]map[string]any, error) {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]map[string]any, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, copyObject(s.byID[id]))
	}
	return out, nil
}

// Reset drops all records and restarts the id sequence at 0.
// This exists for test harnesses only; nothing mounts it as an endpoint and
// no production caller should use it.
func (s *MemoryTripStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next = 0
	s.byID = make(map[string]map[string]any)
	s.order = nil
}

// copyObject deep-copies a JSON-shaped value tree (maps, slices, scalars).
// The store owns its records; callers only ever see copies.
func copyObject(obj map[string]any) map[string]any {
	out := make(map[string]any, len(obj))
	for k, v := range obj {
		out[k] = copyValue(v)
	}
	return out
}

func copyValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return copyObject(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = copyValue(item)
		}
		return out
	default:
		// Scalars (string, float64, bool, nil) are immutable.
		return val
	}
}
