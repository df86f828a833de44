package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skalette/reservations/internal/model"
)

func TestParseCommand(t *testing.T) {
	for _, action := range []string{"confirm", "reject", "cancel", "complete"} {
		cmd, err := ParseCommand(action)
		require.NoError(t, err)
		assert.Equal(t, Command(action), cmd)
	}
	_, err := ParseCommand("approve")
	assert.Error(t, err)
	_, err = ParseCommand("")
	assert.Error(t, err)
}

func TestCommandForStatus(t *testing.T) {
	tests := []struct {
		status model.Status
		want   Command
	}{
		{model.StatusConfirmed, CommandConfirm},
		{model.StatusRejected, CommandReject},
		{model.StatusCancelled, CommandCancel},
		{model.StatusCompleted, CommandComplete},
	}
	for _, tt := range tests {
		cmd, err := CommandForStatus(tt.status)
		require.NoError(t, err)
		assert.Equal(t, tt.want, cmd)
	}
	// Pending is the creation state, nothing transitions into it.
	_, err := CommandForStatus(model.StatusPending)
	assert.Error(t, err)
}

func TestCommandNext(t *testing.T) {
	tests := []struct {
		name string
		from model.Status
		cmd  Command
		want model.Status
		ok   bool
	}{
		{"confirmPending", model.StatusPending, CommandConfirm, model.StatusConfirmed, true},
		{"rejectPending", model.StatusPending, CommandReject, model.StatusRejected, true},
		{"cancelConfirmed", model.StatusConfirmed, CommandCancel, model.StatusCancelled, true},
		{"completeConfirmed", model.StatusConfirmed, CommandComplete, model.StatusCompleted, true},
		{"cancelPending", model.StatusPending, CommandCancel, "", false},
		{"confirmConfirmed", model.StatusConfirmed, CommandConfirm, "", false},
		{"confirmCancelled", model.StatusCancelled, CommandConfirm, "", false},
		{"completeRejected", model.StatusRejected, CommandComplete, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.cmd.next("RES-1", tt.from)
			if !tt.ok {
				var serr *StateError
				require.ErrorAs(t, err, &serr)
				assert.Equal(t, tt.from, serr.From)
				assert.Equal(t, tt.cmd, serr.Command)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
