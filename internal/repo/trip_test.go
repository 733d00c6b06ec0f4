package repo_test

import (
	"context"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akarrer/travel-planner/internal/domain"
	"github.com/akarrer/travel-planner/internal/repo"
)

// compile-time check: the memory store must satisfy the TripStore interface.
var _ repo.TripStore = (*repo.MemoryTripStore)(nil)

func TestMemoryTripStore_Create_AssignsSequentialIDs(t *testing.T) {
	store := repo.NewMemoryTripStore()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		record, err := store.Create(ctx, map[string]any{"data": "test" + strconv.Itoa(i)})
		require.NoError(t, err)
		assert.Equal(t, strconv.Itoa(i), record["id"])
		assert.Equal(t, "test"+strconv.Itoa(i), record["data"])
	}
}

func TestMemoryTripStore_Create_RejectsEmptyData(t *testing.T) {
	store := repo.NewMemoryTripStore()
	ctx := context.Background()

	_, err := store.Create(ctx, map[string]any{})
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.ErrorContains(t, err, "No trip data provided!")

	_, err = store.Create(ctx, nil)
	assert.ErrorIs(t, err, domain.ErrValidation)

	// A rejected create must not burn an id.
	record, err := store.Create(ctx, map[string]any{"data": "test"})
	require.NoError(t, err)
	assert.Equal(t, "0", record["id"])
}

func TestMemoryTripStore_Get(t *testing.T) {
	store := repo.NewMemoryTripStore()
	ctx := context.Background()

	_, err := store.Create(ctx, map[string]any{"data": "test0"})
	require.NoError(t, err)
	_, err = store.Create(ctx, map[string]any{"data": "test1"})
	require.NoError(t, err)

	record, err := store.Get(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"id": "1", "data": "test1"}, record)

	_, err = store.Get(ctx, "unknown")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMemoryTripStore_List_InsertionOrder(t *testing.T) {
	store := repo.NewMemoryTripStore()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := store.Create(ctx, map[string]any{"data": "test" + strconv.Itoa(i)})
		require.NoError(t, err)
	}

	records, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, map[string]any{"id": "0", "data": "test0"}, records[0])
	assert.Equal(t, map[string]any{"id": "1", "data": "test1"}, records[1])
	assert.Equal(t, map[string]any{"id": "2", "data": "test2"}, records[2])
}

func TestMemoryTripStore_List_Empty(t *testing.T) {
	store := repo.NewMemoryTripStore()

	records, err := store.List(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

// TestMemoryTripStore_CallersGetCopies verifies that mutating a record a
// caller received never leaks into the store's own state, in either
// direction.
func TestMemoryTripStore_CallersGetCopies(t *testing.T) {
	store := repo.NewMemoryTripStore()
	ctx := context.Background()

	input := map[string]any{"data": "test", "nested": map[string]any{"key": "value"}}
	created, err := store.Create(ctx, input)
	require.NoError(t, err)

	// Mutate everything we can reach from the outside.
	input["data"] = "changed"
	created["data"] = "changed"
	created["nested"].(map[string]any)["key"] = "changed"

	stored, err := store.Get(ctx, "0")
	require.NoError(t, err)
	assert.Equal(t, "test", stored["data"])
	assert.Equal(t, "value", stored["nested"].(map[string]any)["key"])
}

func TestMemoryTripStore_Reset(t *testing.T) {
	store := repo.NewMemoryTripStore()
	ctx := context.Background()

	_, err := store.Create(ctx, map[string]any{"data": "test"})
	require.NoError(t, err)

	store.Reset()

	records, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)

	// The id sequence restarts with the store.
	record, err := store.Create(ctx, map[string]any{"data": "fresh"})
	require.NoError(t, err)
	assert.Equal(t, "0", record["id"])
}

// TestMemoryTripStore_ConcurrentCreates hammers Create from many goroutines
// and verifies that every record got a distinct id.
func TestMemoryTripStore_ConcurrentCreates(t *testing.T) {
	store := repo.NewMemoryTripStore()
	ctx := context.Background()

	const n = 50
	var wg sync.WaitGroup
	ids := make(chan string, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			record, err := store.Create(ctx, map[string]any{"data": "test"})
			assert.NoError(t, err)
			ids <- record["id"].(string)
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[string]bool)
	for id := range ids {
		assert.False(t, seen[id], "id %s assigned twice", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)
}
