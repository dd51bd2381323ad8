package service

import (
	"context"

	"github.com/iliyamo/hotel-reservation/internal/apperrors"
	"github.com/iliyamo/hotel-reservation/internal/model"
)

// AvailabilityService computes which rooms are free over a date range.
type AvailabilityService struct {
	rooms        RoomDirectory
	reservations ReservationStore
	links        RoomLinkStore
}

// NewAvailabilityService wires the calculator to its stores.
func NewAvailabilityService(rooms RoomDirectory, reservations ReservationStore, links RoomLinkStore) *AvailabilityService {
	return &AvailabilityService{rooms: rooms, reservations: reservations, links: links}
}

// FreeRooms returns every room not linked to a reservation overlapping
// rng, in room directory order.  It has no side effects.
func (s *AvailabilityService) FreeRooms(ctx context.Context, rng model.DateRange) ([]model.Room, error) {
	if !rng.Valid() {
		return nil, apperrors.InvalidRange("end date must be after start date")
	}
	overlapping, err := s.reservations.ListOverlapping(ctx, rng)
	if err != nil {
		return nil, err
	}
	ids := make([]uint64, 0, len(overlapping))
	for _, r := range overlapping {
		ids = append(ids, r.ID)
	}
	links, err := s.links.ListByReservations(ctx, ids)
	if err != nil {
		return nil, err
	}
	taken := make(map[uint64]struct{}, len(links))
	for _, l := range links {
		taken[l.RoomID] = struct{}{}
	}

	rooms, err := s.rooms.List(ctx)
	if err != nil {
		return nil, err
	}
	free := make([]model.Room, 0, len(rooms))
	for _, room := range rooms {
		if _, ok := taken[room.ID]; !ok {
			free = append(free, room)
		}
	}
	return free, nil
}
