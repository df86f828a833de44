package booking

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/skalette/reservations/internal/model"
	"github.com/skalette/reservations/internal/repository"
)

// Availability exposes the blocked-slot set to the booking form and the
// admin grid. Manual blocks created here carry no reservation tag; the
// tagged slots written on confirm flow through the same store and are
// indistinguishable to IsBlocked.
type Availability struct {
	store repository.Store
	log   zerolog.Logger
}

// NewAvailability binds the availability store to its backend.
func NewAvailability(store repository.Store, log zerolog.Logger) *Availability {
	return &Availability{
		store: store,
		log:   log.With().Str("component", "availability").Logger(),
	}
}

// Block marks one slot as unavailable. Blocking an already-blocked
// triple is a no-op.
func (a *Availability) Block(ctx context.Context, date, timeOfDay, tableID string) error {
	if _, err := model.ParseClock(timeOfDay); err != nil {
		return &ValidationError{Fields: []string{"time"}}
	}
	return a.store.AddBlockedSlot(ctx, model.BlockedSlot{Date: date, Time: timeOfDay, TableID: tableID})
}

// Unblock frees one slot. Unblocking an already-free triple is a no-op.
func (a *Availability) Unblock(ctx context.Context, date, timeOfDay, tableID string) error {
	return a.store.RemoveBlockedSlot(ctx, model.SlotKey{Date: date, Time: timeOfDay, TableID: tableID})
}

// IsBlocked reports whether the triple is currently blocked.
func (a *Availability) IsBlocked(ctx context.Context, date, timeOfDay, tableID string) (bool, error) {
	slots, err := a.store.ReadBlockedSlots(ctx)
	if err != nil {
		return false, err
	}
	key := model.SlotKey{Date: date, Time: timeOfDay, TableID: tableID}
	for _, s := range slots {
		if s.Key() == key {
			return true, nil
		}
	}
	return false, nil
}

// ListAll returns the full blocked-slot set.
func (a *Availability) ListAll(ctx context.Context) ([]model.BlockedSlot, error) {
	return a.store.ReadBlockedSlots(ctx)
}

// ListForDate returns the slots blocked on one calendar date.
func (a *Availability) ListForDate(ctx context.Context, date string) ([]model.BlockedSlot, error) {
	slots, err := a.store.ReadBlockedSlots(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.BlockedSlot, 0)
	for _, s := range slots {
		if s.Date == date {
			out = append(out, s)
		}
	}
	return out, nil
}

// Replace swaps the whole slot set in one operation, as submitted by
// whole-grid admin edits. After the call IsBlocked reflects exactly the
// submitted set.
func (a *Availability) Replace(ctx context.Context, slots []model.BlockedSlot) error {
	if err := a.store.ReplaceBlockedSlots(ctx, slots); err != nil {
		return err
	}
	a.log.Info().Int("slots", len(slots)).Msg("availability grid replaced")
	return nil
}
