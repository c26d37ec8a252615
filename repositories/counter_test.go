package repositories

import (
	"log/slog"
	"sync"
	"testing"

	"counter-lab/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *badger.DB {
	t.Helper()
	// Reduced to 16 Mo for testing (avoid 2 Go of preallocated storage)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).
		WithLoggingLevel(badger.ERROR).
		WithValueLogFileSize(16 << 20))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func newTestRepository(t *testing.T) *CounterRepository {
	t.Helper()
	log := logs.GetLoggerFromLevel(slog.LevelError)
	return NewCounterRepository(openTestDB(t), log)
}

func TestCounterRepository_CreateAndGet(t *testing.T) {
	req := require.New(t)
	repo := newTestRepository(t)

	// When a counter is created
	created, err := repo.CreateCounter("owner-1", "coffee runs", 1)
	req.NoError(err)
	req.NotEmpty(created.ID)
	req.Zero(created.Value)

	// Then it can be read back unchanged
	got, err := repo.GetCounter(created.ID)
	req.NoError(err)
	req.Equal(created.ID, got.ID)
	req.Equal("owner-1", got.Owner)
	req.Equal("coffee runs", got.Name)
	req.Equal(int64(0), got.Value)
}

func TestCounterRepository_Increment_ReturnsConsecutiveValues(t *testing.T) {
	req := require.New(t)
	repo := newTestRepository(t)

	created, err := repo.CreateCounter("owner-1", "visits", 1)
	req.NoError(err)

	for want := int64(1); want <= 5; want++ {
		value, err := repo.IncrementCounter(created.ID)
		req.NoError(err)
		req.Equal(want, value)
	}

	got, err := repo.GetCounter(created.ID)
	req.NoError(err)
	req.Equal(int64(5), got.Value)
}

func TestCounterRepository_Increment_UnknownID(t *testing.T) {
	req := require.New(t)
	repo := newTestRepository(t)

	// An increment must never create a counter
	_, err := repo.IncrementCounter(uuid.NewString())
	req.ErrorIs(err, errors.ErrCounterNotFound)
}

// TestCounterRepository_Increment_Concurrent exercises the central atomicity
// property: N concurrent increments end at exactly initial+N and the returned
// values are a permutation of 1..N.
func TestCounterRepository_Increment_Concurrent(t *testing.T) {
	req := require.New(t)
	repo := newTestRepository(t)

	created, err := repo.CreateCounter("owner-1", "stress", 1)
	req.NoError(err)

	const n = 50
	values := make(chan int64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			value, err := repo.IncrementCounter(created.ID)
			require.NoError(t, err)
			values <- value
		}()
	}
	wg.Wait()
	close(values)

	// Then every value 1..n is observed exactly once
	seen := make(map[int64]bool)
	for v := range values {
		req.False(seen[v], "value %d returned twice", v)
		seen[v] = true
	}
	req.Len(seen, n)

	got, err := repo.GetCounter(created.ID)
	req.NoError(err)
	req.Equal(int64(n), got.Value)
}

func TestCounterRepository_Rename(t *testing.T) {
	req := require.New(t)
	repo := newTestRepository(t)

	created, err := repo.CreateCounter("owner-1", "old name", 2)
	req.NoError(err)
	_, err = repo.IncrementCounter(created.ID)
	req.NoError(err)

	// When the counter is renamed
	renamed, err := repo.RenameCounter(created.ID, "new name")
	req.NoError(err)

	// Then the label changed and the value survived
	req.Equal("new name", renamed.Name)
	req.Equal(int64(1), renamed.Value)
}

func TestCounterRepository_ListByOwner(t *testing.T) {
	req := require.New(t)
	repo := newTestRepository(t)

	_, err := repo.CreateCounter("alice", "first", 1)
	req.NoError(err)
	_, err = repo.CreateCounter("alice", "second", 2)
	req.NoError(err)
	_, err = repo.CreateCounter("bob", "other", 1)
	req.NoError(err)

	counters, err := repo.ListCountersByOwner("alice")
	req.NoError(err)
	req.Len(counters, 2)
	for _, c := range counters {
		req.Equal("alice", c.Owner)
	}

	empty, err := repo.ListCountersByOwner("nobody")
	req.NoError(err)
	req.Empty(empty)
}
