//go:generate go run go.uber.org/mock/mockgen -source=counter.go -destination=../mocks/mock_counter_repository.go -package=mocks
package repositories

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"counter-lab/domain"
	"counter-lab/errors"
	pb "counter-lab/proto/storage"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"google.golang.org/protobuf/proto"
)

type ICounterRepository interface {
	CreateCounter(owner, name string, number int) (domain.Counter, error)
	GetCounter(id string) (domain.Counter, error)
	IncrementCounter(id string) (int64, error)
	RenameCounter(id, name string) (domain.Counter, error)
	ListCountersByOwner(owner string) ([]domain.Counter, error)
}

// CounterRepository persists counters in BadgerDB.
// Keys: "counter:{id}" holds the protobuf-encoded record, "owner:{user}:{id}"
// is a secondary index for the listing query (value is the counter id).
type CounterRepository struct {
	db  *badger.DB
	log *slog.Logger

	// locks serializes read-modify-write cycles per counter id, so two
	// concurrent increments on the same counter never race while increments
	// on distinct counters proceed independently.
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewCounterRepository(db *badger.DB, log *slog.Logger) *CounterRepository {
	return &CounterRepository{db: db, log: log, locks: make(map[string]*sync.Mutex)}
}

func (r *CounterRepository) lockFor(id string) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.locks[id]
	if !ok {
		l = &sync.Mutex{}
		r.locks[id] = l
	}
	return l
}

func counterKey(id string) []byte {
	return []byte("counter:" + id)
}

func ownerKey(owner, id string) []byte {
	return []byte(fmt.Sprintf("owner:%s:%s", owner, id))
}

// CreateCounter persists a new counter starting at value 0 and indexes it
// under its owner. The id is generated here.
func (r *CounterRepository) CreateCounter(owner, name string, number int) (domain.Counter, error) {
	counter := domain.Counter{
		ID:        uuid.NewString(),
		Owner:     owner,
		Name:      name,
		Number:    number,
		Value:     0,
		CreatedAt: time.Now().UTC(),
	}

	data, err := proto.Marshal(fromCounter(counter))
	if err != nil {
		return domain.Counter{}, fmt.Errorf("marshal failed: %w", err)
	}

	err = r.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(counterKey(counter.ID), data); err != nil {
			return err
		}
		return txn.Set(ownerKey(owner, counter.ID), []byte(counter.ID))
	})
	if err != nil {
		return domain.Counter{}, fmt.Errorf("%w: %v", errors.ErrStorageUnavailable, err)
	}
	return counter, nil
}

// GetCounter retrieves one counter record by id.
func (r *CounterRepository) GetCounter(id string) (domain.Counter, error) {
	var counterPb pb.Counter
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(counterKey(id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return proto.Unmarshal(val, &counterPb)
		})
	})
	if err != nil {
		return domain.Counter{}, mapBadgerError(err)
	}
	return toCounter(&counterPb), nil
}

// IncrementCounter atomically adds 1 to the stored value and returns the new
// value. The per-id lock plus the transaction guarantee that N concurrent
// calls produce exactly the values initial+1..initial+N, no repeats, no lost
// updates. The id must already exist; an increment never creates a counter.
func (r *CounterRepository) IncrementCounter(id string) (int64, error) {
	l := r.lockFor(id)
	l.Lock()
	defer l.Unlock()

	var newValue int64
	err := r.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(counterKey(id))
		if err != nil {
			return err
		}

		var counterPb pb.Counter
		if err = item.Value(func(val []byte) error {
			return proto.Unmarshal(val, &counterPb)
		}); err != nil {
			return err
		}

		counterPb.Value++
		newValue = counterPb.Value

		data, err := proto.Marshal(&counterPb)
		if err != nil {
			return err
		}
		return txn.Set(counterKey(id), data)
	})
	if err != nil {
		if !stderrors.Is(err, badger.ErrKeyNotFound) {
			r.log.Error("increment failed against storage", "counter_id", id, "error", err)
		}
		return 0, mapBadgerError(err)
	}
	return newValue, nil
}

// RenameCounter replaces the display label, leaving the value untouched.
func (r *CounterRepository) RenameCounter(id, name string) (domain.Counter, error) {
	l := r.lockFor(id)
	l.Lock()
	defer l.Unlock()

	var counterPb pb.Counter
	err := r.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(counterKey(id))
		if err != nil {
			return err
		}
		if err = item.Value(func(val []byte) error {
			return proto.Unmarshal(val, &counterPb)
		}); err != nil {
			return err
		}

		counterPb.Name = name
		data, err := proto.Marshal(&counterPb)
		if err != nil {
			return err
		}
		return txn.Set(counterKey(id), data)
	})
	if err != nil {
		return domain.Counter{}, mapBadgerError(err)
	}
	return toCounter(&counterPb), nil
}

// ListCountersByOwner resolves the owner index with a prefix scan, then loads
// each record.
func (r *CounterRepository) ListCountersByOwner(owner string) ([]domain.Counter, error) {
	var counters []domain.Counter
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte(fmt.Sprintf("owner:%s:", owner))
		options := badger.DefaultIteratorOptions
		it := txn.NewIterator(options)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var id string
			if err := it.Item().Value(func(val []byte) error {
				id = string(val)
				return nil
			}); err != nil {
				return err
			}

			item, err := txn.Get(counterKey(id))
			if err != nil {
				// Index entry without a record, skip it
				r.log.Warn("dangling owner index entry", "counter_id", id)
				continue
			}
			var counterPb pb.Counter
			if err = item.Value(func(val []byte) error {
				return proto.Unmarshal(val, &counterPb)
			}); err != nil {
				return err
			}
			counters = append(counters, toCounter(&counterPb))
		}
		return nil
	})
	if err != nil {
		return nil, mapBadgerError(err)
	}
	return counters, nil
}

// mapBadgerError keeps the storage taxonomy to two cases: a missing key is
// ErrCounterNotFound, everything else is ErrStorageUnavailable.
func mapBadgerError(err error) error {
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return errors.ErrCounterNotFound
	}
	return fmt.Errorf("%w: %v", errors.ErrStorageUnavailable, err)
}

func fromCounter(c domain.Counter) *pb.Counter {
	return &pb.Counter{
		Id:        c.ID,
		Owner:     c.Owner,
		Name:      c.Name,
		Number:    int32(c.Number),
		Value:     c.Value,
		CreatedAt: c.CreatedAt.UnixNano(),
	}
}

func toCounter(counterPb *pb.Counter) domain.Counter {
	return domain.Counter{
		ID:        counterPb.Id,
		Owner:     counterPb.Owner,
		Name:      counterPb.Name,
		Number:    int(counterPb.Number),
		Value:     counterPb.Value,
		CreatedAt: time.Unix(0, counterPb.CreatedAt).UTC(),
	}
}
