package memory

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hearthside/yearbook/logging"
)

// StoreOptions configure a Store. Clock and NewID are injectable so tests
// can pin timestamps and ids.
type StoreOptions struct {
	Logger logging.Logger
	Clock  func() time.Time
	NewID  func() string
}

// Store owns the ordered memory collection. Every mutation rewrites the
// backing Slot with the full serialized sequence; there is no delta
// persistence. Records are only ever appended or cleared wholesale, never
// edited in place.
type Store struct {
	mu      sync.Mutex
	slot    Slot
	logger  logging.Logger
	clock   func() time.Time
	newID   func() string
	records []Record
}

// NewStore creates a Store over the given slot. The store starts empty;
// call Load to hydrate it from the slot.
func NewStore(slot Slot, optFns ...func(o *StoreOptions)) *Store {
	opts := StoreOptions{
		Logger: logging.NoOpLogger{},
		Clock:  time.Now,
		NewID:  uuid.NewString,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Store{
		slot:   slot,
		logger: opts.Logger,
		clock:  opts.Clock,
		newID:  opts.NewID,
	}
}

// Load hydrates the store from the slot and returns the loaded records. A
// missing slot or unparsable contents leave the store empty; the parse
// failure is logged and swallowed, never raised. Load replaces any records
// already held in memory.
func (s *Store) Load() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = nil
	data, ok, err := s.slot.Read()
	if err != nil {
		s.logger.Warn("failed to read memory slot, starting empty", "error", err)
		return nil
	}
	if !ok {
		return nil
	}
	var loaded []Record
	if err := json.Unmarshal(data, &loaded); err != nil {
		s.logger.Warn("failed to parse memory slot, starting empty", "error", err)
		return nil
	}
	s.records = loaded
	return s.copyLocked()
}

// Append completes the draft with a fresh id and the current wall-clock
// timestamp, adds it to the end of the sequence and persists the full
// collection synchronously. Draft validation is the caller's precondition
// (see Draft.Validate); Append does not re-check it.
//
// The completed record stays in the in-memory sequence even when
// persistence fails, matching the write-through mirror semantics: the next
// successful mutation rewrites the slot in full anyway.
func (s *Store) Append(d Draft) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := Record{
		ID:        s.newID(),
		Category:  d.Category,
		Content:   d.Content,
		Author:    d.Author,
		Timestamp: s.clock().UnixMilli(),
		ImageURL:  d.ImageURL,
	}
	s.records = append(s.records, rec)
	if err := s.persistLocked(); err != nil {
		return rec, err
	}
	s.logger.Debug("memory appended", "id", rec.ID, "category", string(rec.Category), "count", len(s.records))
	return rec, nil
}

// Clear empties the collection and removes the persistent slot entirely.
// Irreversible; callers are expected to gate it behind explicit user
// confirmation.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = nil
	if err := s.slot.Delete(); err != nil {
		return err
	}
	s.logger.Info("memory store cleared")
	return nil
}

// Records returns a copy of the collection in insertion order.
func (s *Store) Records() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyLocked()
}

// Len returns the number of stored records.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// persistLocked serializes the full sequence and overwrites the slot.
// Caller must hold the mutex.
func (s *Store) persistLocked() error {
	data, err := json.Marshal(s.records)
	if err != nil {
		return fmt.Errorf("encode memories: %w", err)
	}
	if err := s.slot.Write(data); err != nil {
		return fmt.Errorf("persist memories: %w", err)
	}
	return nil
}

func (s *Store) copyLocked() []Record {
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}
