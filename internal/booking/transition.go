package booking

import (
	"fmt"

	"github.com/skalette/reservations/internal/model"
)

// Command is a tagged status-transition request. Admin and guest
// actions all funnel through the same four commands, dispatched by
// Ledger.Apply.
type Command string

const (
	CommandConfirm  Command = "confirm"
	CommandReject   Command = "reject"
	CommandCancel   Command = "cancel"
	CommandComplete Command = "complete"
)

// ParseCommand maps an action string from the wire onto a Command.
func ParseCommand(action string) (Command, error) {
	switch Command(action) {
	case CommandConfirm, CommandReject, CommandCancel, CommandComplete:
		return Command(action), nil
	}
	return "", fmt.Errorf("unknown action %q", action)
}

// CommandForStatus maps a target status onto the command that produces
// it, supporting clients that send {"status": "confirmed"} instead of
// {"action": "confirm"}.
func CommandForStatus(s model.Status) (Command, error) {
	switch s {
	case model.StatusConfirmed:
		return CommandConfirm, nil
	case model.StatusRejected:
		return CommandReject, nil
	case model.StatusCancelled:
		return CommandCancel, nil
	case model.StatusCompleted:
		return CommandComplete, nil
	}
	return "", fmt.Errorf("no transition produces status %q", s)
}

// next returns the status this command leads to when applied from the
// given one, or a StateError when the edge does not exist. Pending
// reservations can be confirmed or rejected; confirmed ones cancelled
// or completed.
func (c Command) next(id string, from model.Status) (model.Status, error) {
	var to model.Status
	switch c {
	case CommandConfirm:
		to = model.StatusConfirmed
	case CommandReject:
		to = model.StatusRejected
	case CommandCancel:
		to = model.StatusCancelled
	case CommandComplete:
		to = model.StatusCompleted
	default:
		return "", fmt.Errorf("unknown command %q", string(c))
	}
	legal := (from == model.StatusPending && (c == CommandConfirm || c == CommandReject)) ||
		(from == model.StatusConfirmed && (c == CommandCancel || c == CommandComplete))
	if !legal {
		return "", &StateError{ID: id, From: from, Command: c}
	}
	return to, nil
}
