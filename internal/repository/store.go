package repository

import (
	"context"

	"github.com/skalette/reservations/internal/model"
)

// Store is the uniform read/write contract over the two persisted
// collections. All backends guarantee read-after-write visibility
// within a single process and initialize to empty collections when the
// underlying storage does not exist yet.
//
// Slot mutations are idempotent: adding an already-blocked triple and
// removing an absent one are silent no-ops.
type Store interface {
	// ReadReservations returns every reservation across all statuses,
	// in storage order. Callers needing chronological order sort
	// explicitly.
	ReadReservations(ctx context.Context) ([]model.Reservation, error)
	// AddReservation appends a new reservation record.
	AddReservation(ctx context.Context, r model.Reservation) error
	// UpdateReservation replaces the stored record with the same id.
	// Returns ErrReservationNotFound when the id is absent.
	UpdateReservation(ctx context.Context, r model.Reservation) error

	// ReadBlockedSlots returns the full blocked-slot set.
	ReadBlockedSlots(ctx context.Context) ([]model.BlockedSlot, error)
	// ReplaceBlockedSlots atomically swaps the whole slot set for the
	// given one, deduplicating on the (date, time, tableId) triple.
	ReplaceBlockedSlots(ctx context.Context, slots []model.BlockedSlot) error
	// AddBlockedSlot inserts one slot, keeping the triple unique.
	AddBlockedSlot(ctx context.Context, s model.BlockedSlot) error
	// RemoveBlockedSlot deletes the slot with the given triple.
	RemoveBlockedSlot(ctx context.Context, key model.SlotKey) error
	// RemoveBlockedSlotsByReservation deletes every slot tagged with
	// the given reservation id.
	RemoveBlockedSlotsByReservation(ctx context.Context, reservationID string) error

	// Close releases the backend handle. Safe to call once at shutdown.
	Close() error
}
