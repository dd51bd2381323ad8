// Package queue defines the reservation lifecycle events exchanged over
// RabbitMQ together with their publisher and the background consumer.
package queue

import (
	"time"

	"github.com/google/uuid"

	"github.com/iliyamo/hotel-reservation/internal/model"
)

// Event types published on the reservation queue.
const (
	ReservationCreated = "reservation.created"
	ReservationUpdated = "reservation.updated"
	ReservationDeleted = "reservation.deleted"
)

// ReservationEvent is published after a reservation change commits.  It
// carries enough for downstream consumers to log or notify without
// querying the database.
type ReservationEvent struct {
	EventID        string   `json:"event_id"`
	Type           string   `json:"type"`
	ReservationID  uint64   `json:"reservation_id"`
	GuestID        uint64   `json:"guest_id"`
	StartDate      string   `json:"start_date"`
	EndDate        string   `json:"end_date"`
	Nights         int      `json:"nights"`
	NumberOfGuests int      `json:"number_of_guests"`
	RoomIDs        []uint64 `json:"room_ids"`
	TotalCents     int64    `json:"total_cents"`
	OccurredAt     string   `json:"occurred_at"`
}

// NewReservationEvent snapshots res into an event of the given type.
func NewReservationEvent(eventType string, res *model.Reservation, at time.Time) ReservationEvent {
	return ReservationEvent{
		EventID:        uuid.NewString(),
		Type:           eventType,
		ReservationID:  res.ID,
		GuestID:        res.GuestID,
		StartDate:      res.StartDate.Format(model.DateLayout),
		EndDate:        res.EndDate.Format(model.DateLayout),
		Nights:         res.Duration(),
		NumberOfGuests: res.NumberOfGuests,
		RoomIDs:        res.RoomIDs(),
		TotalCents:     model.ReservationCost(res),
		OccurredAt:     at.UTC().Format(time.RFC3339),
	}
}
