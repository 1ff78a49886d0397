package service

import (
	"sync"

	"nucleav-frontend/internal/logger"
	"nucleav-frontend/internal/models"
)

// Record is the constraint shared by all association records held in a Store
type Record interface {
	AssociationID() int64
	EntityID() int64
	Kind() models.AssociationKind
	Renderable() bool
}

// Store is the server-confirmed list of one project's associations of one kind.
// Reads are open to any consumer; writes are unexported and only the
// coordinator performs them, after the server acknowledged the change.
type Store[A Record] struct {
	mu          sync.RWMutex
	parentID    int64
	records     []A
	closed      bool
	subscribers map[int]func([]A)
	nextSub     int

	// gen counts confirmed writes; journal keeps the ones made while a reload is in flight.
	gen     uint64
	loads   int
	journal []change[A]

	pubMu     sync.Mutex
	published uint64
}

type change[A Record] struct {
	gen     uint64
	record  A
	removed int64
}

// NewStore creates an empty store for parentID
func NewStore[A Record](parentID int64) *Store[A] {
	return &Store[A]{
		parentID:    parentID,
		subscribers: make(map[int]func([]A)),
	}
}

// ParentID returns the owning project id
func (s *Store[A]) ParentID() int64 {
	return s.parentID
}

// Snapshot returns a copy of every record, including unresolved ones
func (s *Store[A]) Snapshot() []A {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// Renderable returns the records whose nested entity is available
func (s *Store[A]) Renderable() []A {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]A, 0, len(s.records))
	for _, r := range s.records {
		if r.Renderable() {
			out = append(out, r)
		}
	}
	return out
}

// Len returns the number of records
func (s *Store[A]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// EntityIDs returns the set of associated entity ids
func (s *Store[A]) EntityIDs() map[int64]struct{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make(map[int64]struct{}, len(s.records))
	for _, r := range s.records {
		ids[r.EntityID()] = struct{}{}
	}
	return ids
}

// Find looks a record up by association id
func (s *Store[A]) Find(associationID int64) (A, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.records {
		if r.AssociationID() == associationID {
			return r, true
		}
	}
	var zero A
	return zero, false
}

// ContainsEntity reports whether entityID is already associated
func (s *Store[A]) ContainsEntity(entityID int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.records {
		if r.EntityID() == entityID {
			return true
		}
	}
	return false
}

// Closed reports whether the owning view was torn down
func (s *Store[A]) Closed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.closed
}

// Subscribe registers fn to receive a snapshot after every change.
// The returned function removes the subscription.
func (s *Store[A]) Subscribe(fn func([]A)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++
	s.subscribers[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subscribers, id)
	}
}

// beginLoad marks a reload in progress and returns the generation its list
// response will be merged against. Every beginLoad needs a matching endLoad.
func (s *Store[A]) beginLoad() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loads++
	return s.gen
}

func (s *Store[A]) endLoad() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loads > 0 {
		s.loads--
	}
	if s.loads == 0 {
		s.journal = nil
	}
}

// replace swaps in a list fetched at generation since. Changes confirmed after
// since are reapplied on top, so a slow reload never undoes them.
// Returns false if the store is closed.
func (s *Store[A]) replace(records []A, since uint64) bool {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return false
	}
	merged := append([]A(nil), records...)
	for _, ch := range s.journal {
		if ch.gen <= since {
			continue
		}
		if ch.removed != 0 {
			merged = without(merged, ch.removed)
		} else {
			merged = upsert(merged, ch.record)
		}
	}
	s.records = merged
	s.gen++
	seq, snap, subs := s.gen, s.snapshotLocked(), s.subscribersLocked()
	s.mu.Unlock()

	s.publish(seq, subs, snap)
	return true
}

// add stores a confirmed record, replacing any record with the same association id
func (s *Store[A]) add(record A) bool {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return false
	}
	s.records = upsert(s.records, record)
	s.gen++
	if s.loads > 0 {
		s.journal = append(s.journal, change[A]{gen: s.gen, record: record})
	}
	seq, snap, subs := s.gen, s.snapshotLocked(), s.subscribersLocked()
	s.mu.Unlock()

	s.publish(seq, subs, snap)
	return true
}

// remove drops a confirmed-deleted record. Returns false if the store is closed
// or did not hold the record; the delete is still remembered for reloads in progress.
func (s *Store[A]) remove(associationID int64) bool {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return false
	}
	s.gen++
	if s.loads > 0 {
		s.journal = append(s.journal, change[A]{gen: s.gen, removed: associationID})
	}
	n := len(s.records)
	s.records = without(s.records, associationID)
	if len(s.records) == n {
		s.mu.Unlock()
		return false
	}
	seq, snap, subs := s.gen, s.snapshotLocked(), s.subscribersLocked()
	s.mu.Unlock()

	s.publish(seq, subs, snap)
	return true
}

// close rejects all later writes and drops subscribers
func (s *Store[A]) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.journal = nil
	s.subscribers = make(map[int]func([]A))
}

func upsert[A Record](records []A, record A) []A {
	for i, r := range records {
		if r.AssociationID() == record.AssociationID() {
			records[i] = record
			return records
		}
	}
	return append(records, record)
}

func without[A Record](records []A, associationID int64) []A {
	for i, r := range records {
		if r.AssociationID() == associationID {
			return append(records[:i:i], records[i+1:]...)
		}
	}
	return records
}

func (s *Store[A]) snapshotLocked() []A {
	out := make([]A, len(s.records))
	copy(out, s.records)
	return out
}

func (s *Store[A]) subscribersLocked() []func([]A) {
	out := make([]func([]A), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		out = append(out, fn)
	}
	return out
}

// publish runs outside the write lock so subscribers may read the store.
// Snapshots older than one already delivered are dropped.
func (s *Store[A]) publish(seq uint64, subs []func([]A), snap []A) {
	s.pubMu.Lock()
	defer s.pubMu.Unlock()
	if seq <= s.published {
		return
	}
	s.published = seq
	for _, fn := range subs {
		func() {
			defer func() {
				if r := recover(); r != nil {
					logger.New().WithField("project_id", s.parentID).Errorf("Store subscriber panicked: %v", r)
				}
			}()
			fn(snap)
		}()
	}
}
