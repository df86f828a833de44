// Package queue defines message payloads exchanged over the message
// broker and the background consumer that records them.
package queue

// ReservationConfirmedEvent is published when staff confirm a booking.
// It carries enough information for downstream consumers to log or
// notify without querying the primary store.
type ReservationConfirmedEvent struct {
	ReservationID string  `json:"reservation_id"`
	Date          string  `json:"date"`
	Time          string  `json:"time"`
	TableID       string  `json:"table_id"`
	TableName     string  `json:"table_name,omitempty"`
	Guests        int     `json:"guests"`
	GuestName     string  `json:"guest_name"`
	Phone         string  `json:"phone"`
	ServiceType   string  `json:"service_type"`
	DurationHours float64 `json:"duration_hours"`
	ConfirmedAt   string  `json:"confirmed_at"`
}
