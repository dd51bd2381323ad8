package model

// Bill charges one pricing entry for one room of a reservation.  There is
// no quantity column: a stay of N nights produces N nightly-rate bills per
// room.  Pricing is attached on read and is nil when the referenced entry
// no longer resolves.
type Bill struct {
	ID             uint64        `db:"id" json:"id"`
	RoomID         uint64        `db:"room_id" json:"room_id"`
	PricingEntryID uint64        `db:"pricing_entry_id" json:"pricing_entry_id"`
	ReservationID  uint64        `db:"reservation_id" json:"reservation_id"`
	Pricing        *PricingEntry `db:"-" json:"pricing_entry,omitempty"`
}

// ReservationCost sums the prices of all bills attached to the
// reservation.  Bills whose pricing entry does not resolve add nothing.
func ReservationCost(r *Reservation) int64 {
	if r == nil {
		return 0
	}
	var total int64
	for _, b := range r.Bills {
		if b.Pricing != nil {
			total += b.Pricing.PriceCents
		}
	}
	return total
}
