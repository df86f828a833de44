package booking

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skalette/reservations/internal/model"
	"github.com/skalette/reservations/internal/repository"
)

func newTestAvailability(t *testing.T) *Availability {
	t.Helper()
	store, err := repository.NewFileStore(t.TempDir())
	require.NoError(t, err)
	return NewAvailability(store, zerolog.Nop())
}

func TestAvailabilityBlockUnblock(t *testing.T) {
	a := newTestAvailability(t)
	ctx := context.Background()

	require.NoError(t, a.Block(ctx, "2026-09-12", "20:00", "S1"))

	blocked, err := a.IsBlocked(ctx, "2026-09-12", "20:00", "S1")
	require.NoError(t, err)
	assert.True(t, blocked)

	// Blocking again is a no-op, not a duplicate.
	require.NoError(t, a.Block(ctx, "2026-09-12", "20:00", "S1"))
	all, err := a.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, a.Unblock(ctx, "2026-09-12", "20:00", "S1"))
	blocked, err = a.IsBlocked(ctx, "2026-09-12", "20:00", "S1")
	require.NoError(t, err)
	assert.False(t, blocked)

	// Unblocking a free slot is equally a no-op.
	require.NoError(t, a.Unblock(ctx, "2026-09-12", "20:00", "S1"))
}

func TestAvailabilityBlockRejectsBadTime(t *testing.T) {
	a := newTestAvailability(t)
	err := a.Block(context.Background(), "2026-09-12", "25:00", "S1")
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestAvailabilityListForDate(t *testing.T) {
	a := newTestAvailability(t)
	ctx := context.Background()

	require.NoError(t, a.Block(ctx, "2026-09-12", "20:00", "S1"))
	require.NoError(t, a.Block(ctx, "2026-09-12", "20:30", "S1"))
	require.NoError(t, a.Block(ctx, "2026-09-13", "20:00", "S1"))

	day, err := a.ListForDate(ctx, "2026-09-12")
	require.NoError(t, err)
	assert.Len(t, day, 2)

	empty, err := a.ListForDate(ctx, "2026-09-14")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestAvailabilityReplace(t *testing.T) {
	a := newTestAvailability(t)
	ctx := context.Background()

	require.NoError(t, a.Block(ctx, "2026-09-12", "20:00", "S1"))

	next := []model.BlockedSlot{
		{Date: "2026-09-13", Time: "12:00", TableID: "B1"},
		{Date: "2026-09-13", Time: "12:30", TableID: "B1"},
	}
	require.NoError(t, a.Replace(ctx, next))

	all, err := a.ListAll(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, next, all)

	old, err := a.IsBlocked(ctx, "2026-09-12", "20:00", "S1")
	require.NoError(t, err)
	assert.False(t, old, "replace drops slots not in the submitted grid")
}
