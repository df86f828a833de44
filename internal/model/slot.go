package model

// BlockedSlot marks one (date, 30-minute time, table) unit of capacity
// as unavailable for new public bookings. The triple is unique: a slot
// is either blocked or not, never blocked twice.
//
// ReservationID records why the slot is blocked. It carries the id of
// the confirmed reservation that produced the block, or is empty for a
// manual admin block (walk-ins, phone bookings). Retraction on
// cancel/complete removes slots by this tag.
type BlockedSlot struct {
	Date          string `json:"date"`
	Time          string `json:"time"`
	TableID       string `json:"tableId"`
	ReservationID string `json:"reservationId,omitempty"`
}

// Key identifies the slot by its unique triple, ignoring the source tag.
type SlotKey struct {
	Date    string
	Time    string
	TableID string
}

// Key returns the uniqueness key of the slot.
func (s BlockedSlot) Key() SlotKey {
	return SlotKey{Date: s.Date, Time: s.Time, TableID: s.TableID}
}
