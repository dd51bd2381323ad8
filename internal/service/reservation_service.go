package service

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/iliyamo/hotel-reservation/internal/apperrors"
	"github.com/iliyamo/hotel-reservation/internal/logging"
	"github.com/iliyamo/hotel-reservation/internal/model"
	"github.com/iliyamo/hotel-reservation/internal/queue"
)

const publishTimeout = 5 * time.Second

// BestReservationRequest asks the service to choose rooms for a guest.
type BestReservationRequest struct {
	GuestID         uint64
	Range           model.DateRange
	NumberOfGuests  int
	RoomCount       int
	ExtraFeatureIDs []uint64
}

// ReservationRequest books an explicit list of rooms.
type ReservationRequest struct {
	GuestID        uint64
	Range          model.DateRange
	NumberOfGuests int
	RoomIDs        []uint64
}

// ReservationUpdate replaces the stored fields of a reservation.  A nil
// RoomIDs keeps the currently assigned rooms.
type ReservationUpdate struct {
	GuestID        uint64
	Range          model.DateRange
	NumberOfGuests int
	RoomIDs        []uint64
}

// ReservationDeps bundles the collaborators of ReservationService.
type ReservationDeps struct {
	DB           Transactor
	Rooms        RoomDirectory
	Guests       GuestDirectory
	Features     FeatureCatalog
	Pricing      PricingCatalog
	Reservations ReservationStore
	Links        RoomLinkStore
	Bills        BillStore
	Events       EventPublisher
}

// ReservationService owns the reservation workflow.  Every write runs in
// a single transaction: room rows are locked, overlap is re-checked under
// the lock, and the reservation, its room links and its nightly bills are
// committed together or not at all.
type ReservationService struct {
	db           Transactor
	rooms        RoomDirectory
	guests       GuestDirectory
	features     FeatureCatalog
	pricing      PricingCatalog
	reservations ReservationStore
	links        RoomLinkStore
	bills        BillStore
	events       EventPublisher
	availability *AvailabilityService
	nightlyRate  string
	now          func() time.Time
}

// NewReservationService builds the service.  nightlyRate is the name of
// the pricing entry billed once per room per night.
func NewReservationService(deps ReservationDeps, nightlyRate string) *ReservationService {
	return &ReservationService{
		db:           deps.DB,
		rooms:        deps.Rooms,
		guests:       deps.Guests,
		features:     deps.Features,
		pricing:      deps.Pricing,
		reservations: deps.Reservations,
		links:        deps.Links,
		bills:        deps.Bills,
		events:       deps.Events,
		availability: NewAvailabilityService(deps.Rooms, deps.Reservations, deps.Links),
		nightlyRate:  nightlyRate,
		now:          time.Now,
	}
}

// FreeRooms returns the rooms free over rng.
func (s *ReservationService) FreeRooms(ctx context.Context, rng model.DateRange) ([]model.Room, error) {
	return s.availability.FreeRooms(ctx, rng)
}

// CreateBestReservation picks the RoomCount free rooms that best match the
// guest's stored features plus the requested extras and books them.  It
// fails before any write when the guest or a feature is unknown or when
// too few rooms are free.
func (s *ReservationService) CreateBestReservation(ctx context.Context, req BestReservationRequest) (*model.Reservation, error) {
	if !req.Range.Valid() {
		return nil, apperrors.InvalidRange("end date must be after start date")
	}
	if req.RoomCount < 1 {
		return nil, apperrors.Validation("room_count must be at least 1", nil)
	}
	guest, err := s.guests.GetByID(ctx, req.GuestID)
	if err != nil {
		return nil, err
	}
	extras, err := s.resolveFeatures(ctx, req.ExtraFeatureIDs)
	if err != nil {
		return nil, err
	}

	free, err := s.availability.FreeRooms(ctx, req.Range)
	if err != nil {
		return nil, err
	}
	if req.RoomCount > len(free) {
		return nil, apperrors.Conflict(fmt.Sprintf("requested %d rooms but only %d are free", req.RoomCount, len(free)))
	}

	ranked := RankRooms(free, model.MergeFeatures(guest.Features, extras))
	chosen := make([]uint64, 0, req.RoomCount)
	for _, room := range ranked[:req.RoomCount] {
		chosen = append(chosen, room.ID)
	}

	return s.CreateReservation(ctx, ReservationRequest{
		GuestID:        req.GuestID,
		Range:          req.Range,
		NumberOfGuests: req.NumberOfGuests,
		RoomIDs:        chosen,
	})
}

// CreateReservation books the given rooms for the guest and bills one
// nightly rate per room per night.
func (s *ReservationService) CreateReservation(ctx context.Context, req ReservationRequest) (*model.Reservation, error) {
	if !req.Range.Valid() {
		return nil, apperrors.InvalidRange("end date must be after start date")
	}
	if _, err := s.guests.GetByID(ctx, req.GuestID); err != nil {
		return nil, err
	}
	roomIDs := uniqueIDs(req.RoomIDs)
	if len(roomIDs) == 0 {
		return nil, apperrors.Validation("at least one room is required", nil)
	}

	res := &model.Reservation{
		GuestID:        req.GuestID,
		StartDate:      req.Range.Start,
		EndDate:        req.Range.End,
		NumberOfGuests: req.NumberOfGuests,
	}
	err := s.inTx(ctx, func(tx *sqlx.Tx) error {
		if err := s.claimRooms(ctx, tx, roomIDs, req.Range, 0); err != nil {
			return err
		}
		if err := s.reservations.CreateTx(ctx, tx, res); err != nil {
			return err
		}
		return s.assignRooms(ctx, tx, res, roomIDs)
	})
	if err != nil {
		return nil, err
	}

	out, err := s.GetReservation(ctx, res.ID)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, queue.ReservationCreated, out)
	logging.FromContext(ctx).Info().
		Uint64("reservation_id", out.ID).
		Uint64("guest_id", out.GuestID).
		Int("rooms", len(roomIDs)).
		Int("nights", out.Duration()).
		Msg("reservation created")
	return out, nil
}

// UpdateReservation replaces guest, dates, head count and optionally the
// rooms of a reservation.  Availability is re-validated against every
// other reservation and the nightly bills are regenerated.
func (s *ReservationService) UpdateReservation(ctx context.Context, id uint64, req ReservationUpdate) (*model.Reservation, error) {
	if !req.Range.Valid() {
		return nil, apperrors.InvalidRange("end date must be after start date")
	}
	if _, err := s.guests.GetByID(ctx, req.GuestID); err != nil {
		return nil, err
	}

	err := s.inTx(ctx, func(tx *sqlx.Tx) error {
		res, err := s.reservations.GetByIDForUpdateTx(ctx, tx, id)
		if err != nil {
			return err
		}
		roomIDs := uniqueIDs(req.RoomIDs)
		if req.RoomIDs == nil {
			current, err := s.links.ListByReservationTx(ctx, tx, id)
			if err != nil {
				return err
			}
			for _, l := range current {
				roomIDs = append(roomIDs, l.RoomID)
			}
		}
		if len(roomIDs) == 0 {
			return apperrors.Validation("at least one room is required", nil)
		}
		if err := s.claimRooms(ctx, tx, roomIDs, req.Range, id); err != nil {
			return err
		}

		res.GuestID = req.GuestID
		res.StartDate = req.Range.Start
		res.EndDate = req.Range.End
		res.NumberOfGuests = req.NumberOfGuests
		if err := s.reservations.UpdateTx(ctx, tx, res); err != nil {
			return err
		}
		if _, err := s.bills.DeleteByReservationTx(ctx, tx, id); err != nil {
			return err
		}
		if _, err := s.links.DeleteByReservationTx(ctx, tx, id); err != nil {
			return err
		}
		return s.assignRooms(ctx, tx, res, roomIDs)
	})
	if err != nil {
		return nil, err
	}

	out, err := s.GetReservation(ctx, id)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, queue.ReservationUpdated, out)
	return out, nil
}

// DeleteReservation removes a reservation with its bills and room links,
// in that order, inside one transaction.
func (s *ReservationService) DeleteReservation(ctx context.Context, id uint64) error {
	snapshot, err := s.GetReservation(ctx, id)
	if err != nil {
		return err
	}
	err = s.inTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := s.reservations.GetByIDForUpdateTx(ctx, tx, id); err != nil {
			return err
		}
		if _, err := s.bills.DeleteByReservationTx(ctx, tx, id); err != nil {
			return err
		}
		if _, err := s.links.DeleteByReservationTx(ctx, tx, id); err != nil {
			return err
		}
		return s.reservations.DeleteTx(ctx, tx, id)
	})
	if err != nil {
		return err
	}
	s.publish(ctx, queue.ReservationDeleted, snapshot)
	logging.FromContext(ctx).Info().Uint64("reservation_id", id).Msg("reservation deleted")
	return nil
}

// GetReservation returns a fully hydrated reservation or NotFound.
func (s *ReservationService) GetReservation(ctx context.Context, id uint64) (*model.Reservation, error) {
	res, err := s.reservations.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	list := []model.Reservation{*res}
	if err := s.hydrate(ctx, list); err != nil {
		return nil, err
	}
	return &list[0], nil
}

// GetReservationCost returns the summed price of a reservation's bills.
func (s *ReservationService) GetReservationCost(ctx context.Context, id uint64) (int64, error) {
	res, err := s.GetReservation(ctx, id)
	if err != nil {
		return 0, err
	}
	return model.ReservationCost(res), nil
}

// ListReservations returns every reservation, hydrated.
func (s *ReservationService) ListReservations(ctx context.Context) ([]model.Reservation, error) {
	list, err := s.reservations.List(ctx)
	if err != nil {
		return nil, err
	}
	return list, s.hydrate(ctx, list)
}

// ListByGuest returns the hydrated reservations of one guest.
func (s *ReservationService) ListByGuest(ctx context.Context, guestID uint64) ([]model.Reservation, error) {
	list, err := s.reservations.ListByGuest(ctx, guestID)
	if err != nil {
		return nil, err
	}
	return list, s.hydrate(ctx, list)
}

// ListOverlapping returns hydrated reservations intersecting rng.
func (s *ReservationService) ListOverlapping(ctx context.Context, rng model.DateRange) ([]model.Reservation, error) {
	list, err := s.reservations.ListOverlapping(ctx, rng)
	if err != nil {
		return nil, err
	}
	return list, s.hydrate(ctx, list)
}

// ListStartingIn returns hydrated reservations starting inside rng.
func (s *ReservationService) ListStartingIn(ctx context.Context, rng model.DateRange) ([]model.Reservation, error) {
	list, err := s.reservations.ListStartingIn(ctx, rng)
	if err != nil {
		return nil, err
	}
	return list, s.hydrate(ctx, list)
}

// claimRooms locks the rooms and verifies none of them is taken by an
// overlapping reservation other than excludeID.
func (s *ReservationService) claimRooms(ctx context.Context, tx *sqlx.Tx, roomIDs []uint64, rng model.DateRange, excludeID uint64) error {
	locked, err := s.rooms.LockTx(ctx, tx, roomIDs)
	if err != nil {
		return err
	}
	exists := make(map[uint64]struct{}, len(locked))
	for _, id := range locked {
		exists[id] = struct{}{}
	}
	for _, id := range roomIDs {
		if _, ok := exists[id]; !ok {
			return apperrors.NotFound("room", id)
		}
	}
	taken, err := s.links.ConflictingRoomIDsTx(ctx, tx, roomIDs, rng, excludeID)
	if err != nil {
		return err
	}
	if len(taken) > 0 {
		return apperrors.Conflict(fmt.Sprintf("room %d is already reserved for an overlapping stay", taken[0]))
	}
	return nil
}

// assignRooms links the rooms to res and bills the nightly rate.
func (s *ReservationService) assignRooms(ctx context.Context, tx *sqlx.Tx, res *model.Reservation, roomIDs []uint64) error {
	links := make([]model.RoomReservationLink, 0, len(roomIDs))
	for _, id := range roomIDs {
		links = append(links, model.RoomReservationLink{ReservationID: res.ID, RoomID: id})
	}
	if err := s.links.CreateBulkTx(ctx, tx, links); err != nil {
		return err
	}
	rate, err := s.pricing.GetByNameTx(ctx, tx, s.nightlyRate)
	if err != nil {
		return err
	}
	return s.bills.CreateBulkTx(ctx, tx, NightlyBills(res.ID, roomIDs, res.Duration(), rate.ID))
}

// NightlyBills returns one bill per room per night for the given pricing
// entry, grouped by night.
func NightlyBills(reservationID uint64, roomIDs []uint64, nights int, pricingID uint64) []model.Bill {
	bills := make([]model.Bill, 0, nights*len(roomIDs))
	for night := 0; night < nights; night++ {
		for _, roomID := range roomIDs {
			bills = append(bills, model.Bill{RoomID: roomID, PricingEntryID: pricingID, ReservationID: reservationID})
		}
	}
	return bills
}

// hydrate attaches guest, rooms and bills to each reservation in place.
func (s *ReservationService) hydrate(ctx context.Context, list []model.Reservation) error {
	if len(list) == 0 {
		return nil
	}
	resIDs := make([]uint64, 0, len(list))
	guestIDs := make([]uint64, 0, len(list))
	for _, r := range list {
		resIDs = append(resIDs, r.ID)
		guestIDs = append(guestIDs, r.GuestID)
	}

	links, err := s.links.ListByReservations(ctx, resIDs)
	if err != nil {
		return err
	}
	roomIDs := make([]uint64, 0, len(links))
	for _, l := range links {
		roomIDs = append(roomIDs, l.RoomID)
	}
	rooms, err := s.rooms.GetByIDs(ctx, uniqueIDs(roomIDs))
	if err != nil {
		return err
	}
	roomByID := make(map[uint64]model.Room, len(rooms))
	for _, room := range rooms {
		roomByID[room.ID] = room
	}
	bills, err := s.bills.ListByReservations(ctx, resIDs)
	if err != nil {
		return err
	}
	guests, err := s.guests.GetByIDs(ctx, uniqueIDs(guestIDs))
	if err != nil {
		return err
	}

	index := make(map[uint64]int, len(list))
	for i := range list {
		index[list[i].ID] = i
		list[i].Guest = guests[list[i].GuestID]
		list[i].ReservedRooms = []model.Room{}
		list[i].Bills = []model.Bill{}
	}
	for _, l := range links {
		if room, ok := roomByID[l.RoomID]; ok {
			r := &list[index[l.ReservationID]]
			r.ReservedRooms = append(r.ReservedRooms, room)
		}
	}
	for _, b := range bills {
		r := &list[index[b.ReservationID]]
		r.Bills = append(r.Bills, b)
	}
	return nil
}

// resolveFeatures loads the requested features, failing NotFound on the
// first unknown id.
func (s *ReservationService) resolveFeatures(ctx context.Context, ids []uint64) ([]model.AccessibilityFeature, error) {
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return nil, nil
	}
	found, err := s.features.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint64]model.AccessibilityFeature, len(found))
	for _, f := range found {
		byID[f.ID] = f
	}
	out := make([]model.AccessibilityFeature, 0, len(ids))
	for _, id := range ids {
		f, ok := byID[id]
		if !ok {
			return nil, apperrors.NotFound("accessibility feature", id)
		}
		out = append(out, f)
	}
	return out, nil
}

func (s *ReservationService) inTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()
	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	committed = true
	return nil
}

// publish sends a lifecycle event once the change is committed.  Broker
// failures are logged and never fail the request.
func (s *ReservationService) publish(ctx context.Context, eventType string, res *model.Reservation) {
	if s.events == nil {
		return
	}
	pctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()
	if err := s.events.Publish(pctx, queue.NewReservationEvent(eventType, res, s.now())); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Uint64("reservation_id", res.ID).Str("event_type", eventType).Msg("reservation event not delivered")
	}
}

func uniqueIDs(ids []uint64) []uint64 {
	seen := make(map[uint64]struct{}, len(ids))
	out := make([]uint64, 0, len(ids))
	for _, id := range ids {
		if id == 0 {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
