package model

// Status is the lifecycle state of a reservation. Only pending and
// confirmed reservations participate in overlap detection; the three
// terminal states are inert for scheduling purposes.
//
// Legal transitions:
//
//	pending   -> confirmed | rejected
//	confirmed -> cancelled | completed
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// Active reports whether a reservation in this status still occupies
// its table for scheduling purposes.
func (s Status) Active() bool {
	return s == StatusPending || s == StatusConfirmed
}

// Terminal reports whether no further transition is possible.
func (s Status) Terminal() bool {
	return s == StatusRejected || s == StatusCancelled || s == StatusCompleted
}

// ServiceType identifies the seating a guest books. The duration of the
// reservation is derived from it, not chosen by the guest.
type ServiceType string

const (
	ServicePranzo    ServiceType = "pranzo"
	ServiceAperitivo ServiceType = "aperitivo"
	ServiceCena      ServiceType = "cena"
)

// Duration returns the length of the service in hours. Unknown service
// types fall back to two hours.
func (s ServiceType) Duration() float64 {
	switch s {
	case ServicePranzo, ServiceCena:
		return 2
	case ServiceAperitivo:
		return 1.5
	default:
		return 2
	}
}

// Reservation is a guest's booking request for one table. The JSON tags
// match the documents the file backend stores and the payloads the admin
// panel consumes.
//
// Fields:
//
//	ID          – opaque identifier, assigned at creation.
//	Date        – calendar date, "YYYY-MM-DD".
//	Time        – start time of day, "HH:MM" on a 30-minute boundary.
//	TableID     – table being booked (see Tables).
//	Guests      – party size, positive.
//	ServiceType – pranzo, aperitivo or cena.
//	Duration    – hours, derived from ServiceType.
//	Status      – lifecycle state, pending at creation.
//	Timestamp   – RFC3339 creation instant.
type Reservation struct {
	ID          string      `json:"id"`
	Date        string      `json:"date"`
	Time        string      `json:"time"`
	TableID     string      `json:"tableId"`
	Guests      int         `json:"guests"`
	FirstName   string      `json:"firstName"`
	LastName    string      `json:"lastName"`
	Phone       string      `json:"phone"`
	ServiceType ServiceType `json:"serviceType"`
	Duration    float64     `json:"duration"`
	Notes       string      `json:"notes,omitempty"`
	Status      Status      `json:"status"`
	Timestamp   string      `json:"timestamp"`
}

// SlotTimes lists the "HH:MM" labels of the 30-minute slots this
// reservation occupies, or nil when the start time cannot be parsed.
func (r Reservation) SlotTimes() []string {
	start, err := ParseClock(r.Time)
	if err != nil {
		return nil
	}
	return start.SlotTimes(r.Duration)
}
