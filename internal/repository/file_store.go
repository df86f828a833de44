package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/skalette/reservations/internal/model"
)

// reservationsDoc and availabilityDoc mirror the two JSON documents the
// file backend keeps on disk: data/reservations.json and
// data/availability.json.
type reservationsDoc struct {
	Reservations []model.Reservation `json:"reservations"`
}

type availabilityDoc struct {
	BlockedSlots []model.BlockedSlot `json:"blockedSlots"`
}

// FileStore persists both collections as pretty-printed JSON documents
// under a data directory. It keeps the collections in memory and
// rewrites the affected document on every mutation, which is plenty for
// a single restaurant's volume. A mutex serializes access so the store
// is safe to share across request handlers.
type FileStore struct {
	mu           sync.RWMutex
	dir          string
	reservations []model.Reservation
	slots        []model.BlockedSlot
}

// NewFileStore opens (or creates) the data directory and loads both
// documents. Missing files initialize to empty collections and are
// materialized on first write.
func NewFileStore(dir string) (*FileStore, error) {
	s := &FileStore{
		dir:          dir,
		reservations: make([]model.Reservation, 0),
		slots:        make([]model.BlockedSlot, 0),
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	var rdoc reservationsDoc
	if ok, err := s.load("reservations.json", &rdoc); err != nil {
		return nil, err
	} else if ok {
		s.reservations = rdoc.Reservations
	}
	var adoc availabilityDoc
	if ok, err := s.load("availability.json", &adoc); err != nil {
		return nil, err
	} else if ok {
		s.slots = adoc.BlockedSlots
	}
	return s, nil
}

// load reads one document if it exists. The boolean reports whether the
// file was present.
func (s *FileStore) load(name string, v any) (bool, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read %s: %w", name, err)
	}
	if len(data) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("decode %s: %w", name, err)
	}
	return true, nil
}

func (s *FileStore) save(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

func (s *FileStore) saveReservations() error {
	return s.save("reservations.json", reservationsDoc{Reservations: s.reservations})
}

func (s *FileStore) saveSlots() error {
	return s.save("availability.json", availabilityDoc{BlockedSlots: s.slots})
}

// ReadReservations returns a copy of all reservation records.
func (s *FileStore) ReadReservations(ctx context.Context) ([]model.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Reservation, len(s.reservations))
	copy(out, s.reservations)
	return out, nil
}

// AddReservation appends the record and rewrites the document.
func (s *FileStore) AddReservation(ctx context.Context, r model.Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reservations = append(s.reservations, r)
	return s.saveReservations()
}

// UpdateReservation replaces the record with the same id.
func (s *FileStore) UpdateReservation(ctx context.Context, r model.Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.reservations {
		if s.reservations[i].ID == r.ID {
			s.reservations[i] = r
			return s.saveReservations()
		}
	}
	return ErrReservationNotFound
}

// ReadBlockedSlots returns a copy of the blocked-slot set.
func (s *FileStore) ReadBlockedSlots(ctx context.Context) ([]model.BlockedSlot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.BlockedSlot, len(s.slots))
	copy(out, s.slots)
	return out, nil
}

// ReplaceBlockedSlots swaps the whole set, dropping duplicate triples.
func (s *FileStore) ReplaceBlockedSlots(ctx context.Context, slots []model.BlockedSlot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	seen := make(map[model.SlotKey]struct{}, len(slots))
	deduped := make([]model.BlockedSlot, 0, len(slots))
	for _, sl := range slots {
		if _, ok := seen[sl.Key()]; ok {
			continue
		}
		seen[sl.Key()] = struct{}{}
		deduped = append(deduped, sl)
	}
	s.slots = deduped
	return s.saveSlots()
}

// AddBlockedSlot inserts the slot unless its triple is already present.
func (s *FileStore) AddBlockedSlot(ctx context.Context, slot model.BlockedSlot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.slots {
		if existing.Key() == slot.Key() {
			return nil
		}
	}
	s.slots = append(s.slots, slot)
	return s.saveSlots()
}

// RemoveBlockedSlot deletes the slot with the given triple, if present.
func (s *FileStore) RemoveBlockedSlot(ctx context.Context, key model.SlotKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.slots {
		if existing.Key() == key {
			s.slots = append(s.slots[:i], s.slots[i+1:]...)
			return s.saveSlots()
		}
	}
	return nil
}

// RemoveBlockedSlotsByReservation drops every slot tagged with the id.
// An empty id matches nothing; manual blocks carry no tag and must not
// be swept up.
func (s *FileStore) RemoveBlockedSlotsByReservation(ctx context.Context, reservationID string) error {
	if reservationID == "" {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.slots[:0]
	removed := false
	for _, existing := range s.slots {
		if existing.ReservationID == reservationID {
			removed = true
			continue
		}
		kept = append(kept, existing)
	}
	s.slots = kept
	if !removed {
		return nil
	}
	return s.saveSlots()
}

// Close is a no-op for the file backend.
func (s *FileStore) Close() error { return nil }
