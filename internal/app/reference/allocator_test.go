package reference

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryCounterStore reproduit la sémantique compare-and-swap du stockage
type memoryCounterStore struct {
	mu       sync.Mutex
	counters map[int]int
	// failures force des échecs de CAS pour simuler la contention
	failures int
}

func newMemoryCounterStore() *memoryCounterStore {
	return &memoryCounterStore{counters: make(map[int]int)}
}

func (s *memoryCounterStore) CurrentSequence(ctx context.Context, year int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counters[year], nil
}

func (s *memoryCounterStore) CompareAndSwap(ctx context.Context, year, old, next int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failures > 0 {
		s.failures--
		return false, nil
	}
	if s.counters[year] != old {
		return false, nil
	}
	s.counters[year] = next
	return true, nil
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "REQ-2025-001", Format(2025, 1))
	assert.Equal(t, "REQ-2025-042", Format(2025, 42))
	assert.Equal(t, "REQ-2025-100", Format(2025, 100))
	assert.Equal(t, "REQ-2025-1234", Format(2025, 1234))
}

func TestAllocateSequential(t *testing.T) {
	store := newMemoryCounterStore()
	allocator := NewAllocator(store)
	ctx := context.Background()

	ref, err := allocator.Allocate(ctx, 2025)
	require.NoError(t, err)
	assert.Equal(t, "REQ-2025-001", ref)

	ref, err = allocator.Allocate(ctx, 2025)
	require.NoError(t, err)
	assert.Equal(t, "REQ-2025-002", ref)

	// Le compteur est propre à chaque année
	ref, err = allocator.Allocate(ctx, 2026)
	require.NoError(t, err)
	assert.Equal(t, "REQ-2026-001", ref)
}

func TestAllocateRetriesOnContention(t *testing.T) {
	store := newMemoryCounterStore()
	store.failures = 2
	allocator := NewAllocator(store)

	ref, err := allocator.Allocate(context.Background(), 2025)
	require.NoError(t, err)
	assert.Equal(t, "REQ-2025-001", ref)
}

func TestAllocateExhaustsAttempts(t *testing.T) {
	store := newMemoryCounterStore()
	store.failures = 100
	allocator := NewAllocator(store)
	allocator.backoff = 0

	_, err := allocator.Allocate(context.Background(), 2025)
	assert.ErrorIs(t, err, ErrAllocationFailed)
}

func TestAllocateConcurrentDistinct(t *testing.T) {
	store := newMemoryCounterStore()
	allocator := NewAllocator(store)
	// Beaucoup de goroutines pour maximiser la contention du CAS
	allocator.maxAttempts = 100
	allocator.backoff = 0

	const workers = 50
	refs := make(chan string, workers)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ref, err := allocator.Allocate(context.Background(), 2025)
			assert.NoError(t, err)
			refs <- ref
		}()
	}
	wg.Wait()
	close(refs)

	seen := make(map[string]bool)
	for ref := range refs {
		assert.Falsef(t, seen[ref], "référence attribuée deux fois: %s", ref)
		seen[ref] = true
	}
	assert.Len(t, seen, workers)
	assert.True(t, seen["REQ-2025-001"])
	assert.True(t, seen[Format(2025, workers)])
}

func TestAllocateCancelledContext(t *testing.T) {
	store := newMemoryCounterStore()
	store.failures = 100
	allocator := NewAllocator(store)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := allocator.Allocate(ctx, 2025)
	assert.ErrorIs(t, err, context.Canceled)
}
