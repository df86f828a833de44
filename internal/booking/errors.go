// Package booking implements the reservation core: the ledger of booking
// requests, the overlap detector, the status state machine and the
// availability store of blocked slots. It is backend-agnostic and talks
// to persistence only through repository.Store.
package booking

import (
	"fmt"
	"strings"

	"github.com/skalette/reservations/internal/model"
)

// ValidationError reports required fields that were missing or empty on
// a create request. Handlers translate it into an HTTP 400 with the
// field list.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Fields, ", "))
}

// StateError reports a transition command that is not legal from the
// reservation's current status. Handlers translate it into an HTTP 409.
type StateError struct {
	ID      string
	From    model.Status
	Command Command
}

func (e *StateError) Error() string {
	return fmt.Sprintf("reservation %s: cannot %s from status %s", e.ID, e.Command, e.From)
}
