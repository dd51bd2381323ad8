package model

import "time"

// Reservation books one or more rooms for a guest over a half-open date
// range.  Guest, ReservedRooms and Bills are derived from other tables and
// are populated when the reservation is hydrated by the service layer.
//
// Fields:
//  ID             – primary key identifier.
//  GuestID        – guest who holds the reservation.
//  StartDate      – first night of the stay.
//  EndDate        – departure day; exclusive, always after StartDate.
//  NumberOfGuests – head count for the stay.
type Reservation struct {
	ID             uint64    `db:"id" json:"id"`                             // reservations.id
	GuestID        uint64    `db:"guest_id" json:"guest_id"`                 // reservations.guest_id
	StartDate      time.Time `db:"start_date" json:"start_date"`             // reservations.start_date
	EndDate        time.Time `db:"end_date" json:"end_date"`                 // reservations.end_date
	NumberOfGuests int       `db:"number_of_guests" json:"number_of_guests"` // reservations.number_of_guests

	Guest         *Guest `db:"-" json:"guest,omitempty"`
	ReservedRooms []Room `db:"-" json:"reserved_rooms"`
	Bills         []Bill `db:"-" json:"bills"`
}

// Range returns the reservation interval.
func (r Reservation) Range() DateRange { return NewDateRange(r.StartDate, r.EndDate) }

// Duration is the length of the stay in nights.
func (r Reservation) Duration() int { return r.Range().Nights() }

// RoomIDs returns the ids of the reserved rooms.
func (r Reservation) RoomIDs() []uint64 {
	ids := make([]uint64, 0, len(r.ReservedRooms))
	for _, room := range r.ReservedRooms {
		ids = append(ids, room.ID)
	}
	return ids
}

// RoomReservationLink assigns one room to one reservation.  It mirrors
// the `reservation_rooms` join table.
type RoomReservationLink struct {
	ReservationID uint64 `db:"reservation_id" json:"reservation_id"` // reservation_rooms.reservation_id
	RoomID        uint64 `db:"room_id" json:"room_id"`               // reservation_rooms.room_id
}
