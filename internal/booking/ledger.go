package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/skalette/reservations/internal/model"
	"github.com/skalette/reservations/internal/repository"
)

// Ledger owns the reservation records and drives their lifecycle. It is
// the only writer of reservation rows; the blocked-slot side effects of
// a status transition are applied here too, keeping the two collections
// in sync.
type Ledger struct {
	store repository.Store
	log   zerolog.Logger

	// now and newID are swappable for tests.
	now   func() time.Time
	newID func() string
}

// NewLedger binds a ledger to its store.
func NewLedger(store repository.Store, log zerolog.Logger) *Ledger {
	return &Ledger{
		store: store,
		log:   log.With().Str("component", "ledger").Logger(),
		now:   time.Now,
		newID: func() string { return "RES-" + uuid.NewString() },
	}
}

// CreateInput carries a guest-submitted booking request. Override
// acknowledges a previously reported conflict and asks for the
// reservation to be created anyway.
type CreateInput struct {
	Date        string `json:"date"`
	Time        string `json:"time"`
	TableID     string `json:"tableId"`
	Guests      int    `json:"guests"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Phone       string `json:"phone"`
	ServiceType string `json:"serviceType"`
	Notes       string `json:"notes"`
	Override    bool   `json:"confirmOverlap"`
}

// missingFields returns the names of required fields that are absent.
func (in CreateInput) missingFields() []string {
	var missing []string
	require := func(name, v string) {
		if v == "" {
			missing = append(missing, name)
		}
	}
	require("date", in.Date)
	require("time", in.Time)
	require("tableId", in.TableID)
	if in.Guests <= 0 {
		missing = append(missing, "guests")
	}
	require("firstName", in.FirstName)
	require("lastName", in.LastName)
	require("phone", in.Phone)
	require("serviceType", in.ServiceType)
	return missing
}

// Create validates the input, runs the overlap detector against the
// active reservations and, when the slot is free or the guest has
// explicitly overridden the warning, persists a new pending record.
//
// The three outcomes are disjoint: a *ValidationError (or backend
// error), a non-nil *Conflict with no reservation, or the stored
// reservation. Conflicts never hard-block a booking; staff keep final
// authority through confirm/reject.
func (l *Ledger) Create(ctx context.Context, in CreateInput) (*model.Reservation, *Conflict, error) {
	if missing := in.missingFields(); len(missing) > 0 {
		return nil, nil, &ValidationError{Fields: missing}
	}

	duration := model.ServiceType(in.ServiceType).Duration()

	existing, err := l.store.ReadReservations(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("read reservations: %w", err)
	}
	conflict, err := CheckOverlap(in.Date, in.Time, duration, in.TableID, existing)
	if err != nil {
		return nil, nil, &ValidationError{Fields: []string{"time"}}
	}
	if conflict != nil && !in.Override {
		l.log.Info().
			Str("table", in.TableID).
			Str("date", in.Date).
			Str("time", in.Time).
			Str("available_until", conflict.AvailableUntil).
			Msg("booking conflict reported to guest")
		return nil, conflict, nil
	}

	r := model.Reservation{
		ID:          l.newID(),
		Date:        in.Date,
		Time:        in.Time,
		TableID:     in.TableID,
		Guests:      in.Guests,
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Phone:       in.Phone,
		ServiceType: model.ServiceType(in.ServiceType),
		Duration:    duration,
		Notes:       in.Notes,
		Status:      model.StatusPending,
		Timestamp:   l.now().UTC().Format(time.RFC3339),
	}
	if err := l.store.AddReservation(ctx, r); err != nil {
		return nil, nil, fmt.Errorf("persist reservation: %w", err)
	}
	if conflict != nil {
		l.log.Warn().
			Str("id", r.ID).
			Str("table", r.TableID).
			Msg("reservation created despite overlap override")
	}
	return &r, nil, nil
}

// ListAll returns every reservation across all statuses in storage
// order.
func (l *Ledger) ListAll(ctx context.Context) ([]model.Reservation, error) {
	return l.store.ReadReservations(ctx)
}

// FindByID returns the reservation with the given id or
// repository.ErrReservationNotFound.
func (l *Ledger) FindByID(ctx context.Context, id string) (*model.Reservation, error) {
	all, err := l.store.ReadReservations(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].ID == id {
			return &all[i], nil
		}
	}
	return nil, repository.ErrReservationNotFound
}

// Apply executes a status-transition command and its availability side
// effects, then persists the mutated record.
//
// Side effects by command:
//
//	confirm  – one blocked slot per 30-minute step over the reservation
//	           window, tagged with the reservation id. Insertion is
//	           idempotent at the store level.
//	reject   – none; a pending reservation never held a block.
//	cancel   – retract every slot tagged with the reservation id.
//	complete – identical retraction; only the recorded terminal status
//	           differs.
//
// Illegal transitions fail with a *StateError before any mutation.
func (l *Ledger) Apply(ctx context.Context, id string, cmd Command) (*model.Reservation, error) {
	r, err := l.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	next, err := cmd.next(r.ID, r.Status)
	if err != nil {
		return nil, err
	}

	switch cmd {
	case CommandConfirm:
		for _, slotTime := range r.SlotTimes() {
			slot := model.BlockedSlot{
				Date:          r.Date,
				Time:          slotTime,
				TableID:       r.TableID,
				ReservationID: r.ID,
			}
			if err := l.store.AddBlockedSlot(ctx, slot); err != nil {
				return nil, fmt.Errorf("block slot %s: %w", slotTime, err)
			}
		}
	case CommandCancel, CommandComplete:
		if err := l.store.RemoveBlockedSlotsByReservation(ctx, r.ID); err != nil {
			return nil, fmt.Errorf("unblock slots: %w", err)
		}
	}

	r.Status = next
	if err := l.store.UpdateReservation(ctx, *r); err != nil {
		return nil, fmt.Errorf("persist status: %w", err)
	}
	l.log.Info().
		Str("id", r.ID).
		Str("command", string(cmd)).
		Str("status", string(next)).
		Msg("reservation transitioned")
	return r, nil
}
