// Package memory keeps orders and stores in process memory. It offers the
// same conditional status write as the PostgreSQL adapter and is used by
// scenario tests and local experiments.
package memory

import (
	"slices"
	"sync"
	"time"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/store"
	"marketplace/internal/pkg/errs"

	"github.com/google/uuid"
)

type storeRecord struct {
	id          uuid.UUID
	name        string
	ownerChatID *int64
	createdAt   time.Time
}

// Storage is shared by every unit of work created from the same factory.
type Storage struct {
	mu     sync.RWMutex
	orders map[uuid.UUID]order.Snapshot
	stores map[uuid.UUID]storeRecord
}

func NewStorage() *Storage {
	return &Storage{
		orders: make(map[uuid.UUID]order.Snapshot),
		stores: make(map[uuid.UUID]storeRecord),
	}
}

// op is a pending write. check runs under the write lock right before apply.
type op struct {
	check func(s *Storage) error
	apply func(s *Storage)
}

// commit validates every pending write and applies all of them, or none.
func (s *Storage) commit(ops []op) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, o := range ops {
		if err := o.check(s); err != nil {
			return err
		}
	}
	for _, o := range ops {
		o.apply(s)
	}
	return nil
}

func (s *Storage) order(id uuid.UUID) (order.Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap, ok := s.orders[id]
	return copySnapshot(snap), ok
}

func (s *Storage) ordersInStatus(status order.Status, olderThan time.Time) []order.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []order.Snapshot
	for _, snap := range s.orders {
		if snap.Status == status && snap.UpdatedAt.Before(olderThan) {
			result = append(result, copySnapshot(snap))
		}
	}
	slices.SortFunc(result, func(a, b order.Snapshot) int {
		return a.UpdatedAt.Compare(b.UpdatedAt)
	})
	return result
}

func (s *Storage) store(id uuid.UUID) (storeRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.stores[id]
	return rec, ok
}

// checkStatus is the conditional write: the stored row must still be at
// the status and version the caller read.
func checkStatus(s *Storage, snap order.Snapshot, change order.Change) error {
	id := snap.ID.Bytes()
	stored, ok := s.orders[id]
	if !ok {
		return errs.NewObjectNotFoundError("order", id)
	}
	if stored.Status != change.From || stored.Version != change.Version-1 {
		return errs.NewConflictError("order", id, order.ConflictReason(change.To))
	}
	return nil
}

func copySnapshot(s order.Snapshot) order.Snapshot {
	s.Items = slices.Clone(s.Items)
	if s.RiderID != nil {
		rider := *s.RiderID
		s.RiderID = &rider
	}
	return s
}

func toStoreRecord(s *store.Store) storeRecord {
	rec := storeRecord{
		id:        s.ID().Bytes(),
		name:      s.Name(),
		createdAt: s.CreatedAt(),
	}
	if chatID, ok := s.OwnerChatID(); ok {
		rec.ownerChatID = &chatID
	}
	return rec
}
