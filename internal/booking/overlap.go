package booking

import (
	"fmt"

	"github.com/skalette/reservations/internal/model"
)

// Conflict is the soft signal returned when a candidate booking
// intersects an existing active reservation. It is not an error: the
// caller surfaces it as a warning and may resubmit with an override.
// AvailableUntil is the start time of the blocking reservation, shown
// to the guest as "table free until HH:MM".
type Conflict struct {
	AvailableUntil string
}

// CheckOverlap scans the given reservations for one that occupies the
// candidate's table on the candidate's date during the half-open window
// [start, start+duration). Touching endpoints do not conflict, so
// back-to-back bookings pass. The first conflict found is returned;
// the booking form only needs one actionable data point.
//
// Reservations in a terminal status never conflict. Rows whose start
// time cannot be parsed are skipped rather than failing the whole scan.
func CheckOverlap(date, startTime string, durationHours float64, tableID string, existing []model.Reservation) (*Conflict, error) {
	start, err := model.ParseClock(startTime)
	if err != nil {
		return nil, fmt.Errorf("candidate time: %w", err)
	}
	end := start.Add(int(durationHours * 60))

	for _, res := range existing {
		if !res.Status.Active() {
			continue
		}
		if res.TableID != tableID || res.Date != date {
			continue
		}
		resStart, err := model.ParseClock(res.Time)
		if err != nil {
			continue
		}
		resEnd := resStart.Add(int(res.Duration * 60))
		if start < resEnd && end > resStart {
			return &Conflict{AvailableUntil: res.Time}, nil
		}
	}
	return nil, nil
}
