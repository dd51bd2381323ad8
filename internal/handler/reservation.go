package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-reservation/internal/apperrors"
	"github.com/iliyamo/hotel-reservation/internal/model"
	"github.com/iliyamo/hotel-reservation/internal/service"
)

// Reservations is the reservation workflow consumed by ReservationHandler.
// *service.ReservationService satisfies it.
type Reservations interface {
	FreeRooms(ctx context.Context, rng model.DateRange) ([]model.Room, error)
	CreateBestReservation(ctx context.Context, req service.BestReservationRequest) (*model.Reservation, error)
	CreateReservation(ctx context.Context, req service.ReservationRequest) (*model.Reservation, error)
	UpdateReservation(ctx context.Context, id uint64, req service.ReservationUpdate) (*model.Reservation, error)
	DeleteReservation(ctx context.Context, id uint64) error
	GetReservation(ctx context.Context, id uint64) (*model.Reservation, error)
	GetReservationCost(ctx context.Context, id uint64) (int64, error)
	ListReservations(ctx context.Context) ([]model.Reservation, error)
	ListByGuest(ctx context.Context, guestID uint64) ([]model.Reservation, error)
	ListOverlapping(ctx context.Context, rng model.DateRange) ([]model.Reservation, error)
	ListStartingIn(ctx context.Context, rng model.DateRange) ([]model.Reservation, error)
}

// ReservationHandler serves the /v1/reservations routes.
type ReservationHandler struct {
	svc Reservations
}

// NewReservationHandler panics when svc is nil.
func NewReservationHandler(svc Reservations) *ReservationHandler {
	if svc == nil {
		panic("nil reservation service passed to NewReservationHandler")
	}
	return &ReservationHandler{svc: svc}
}

type bestReservationBody struct {
	GuestID         uint64   `json:"guest_id" validate:"required"`
	StartDate       string   `json:"start_date" validate:"required"`
	EndDate         string   `json:"end_date" validate:"required"`
	NumberOfGuests  int      `json:"number_of_guests" validate:"gt=0"`
	RoomCount       int      `json:"room_count" validate:"gt=0"`
	ExtraFeatureIDs []uint64 `json:"extra_feature_ids"`
}

type reservationBody struct {
	GuestID        uint64   `json:"guest_id" validate:"required"`
	StartDate      string   `json:"start_date" validate:"required"`
	EndDate        string   `json:"end_date" validate:"required"`
	NumberOfGuests int      `json:"number_of_guests" validate:"gt=0"`
	RoomIDs        []uint64 `json:"room_ids" validate:"required,min=1,dive,gt=0"`
}

// room_ids is optional on update; omitting it keeps the current rooms.
type reservationUpdateBody struct {
	GuestID        uint64   `json:"guest_id" validate:"required"`
	StartDate      string   `json:"start_date" validate:"required"`
	EndDate        string   `json:"end_date" validate:"required"`
	NumberOfGuests int      `json:"number_of_guests" validate:"gt=0"`
	RoomIDs        []uint64 `json:"room_ids" validate:"omitempty,min=1,dive,gt=0"`
}

// CreateBest handles POST /v1/reservations/best.  The service picks the
// free rooms that best match the guest's accessibility needs.
func (h *ReservationHandler) CreateBest(c echo.Context) error {
	var body bestReservationBody
	if err := bind(c, &body); err != nil {
		return respondError(c, err)
	}
	rng, err := parseRange(body.StartDate, body.EndDate)
	if err != nil {
		return respondError(c, err)
	}
	res, err := h.svc.CreateBestReservation(c.Request().Context(), service.BestReservationRequest{
		GuestID:         body.GuestID,
		Range:           rng,
		NumberOfGuests:  body.NumberOfGuests,
		RoomCount:       body.RoomCount,
		ExtraFeatureIDs: body.ExtraFeatureIDs,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, res)
}

// Create handles POST /v1/reservations for an explicit list of rooms.
func (h *ReservationHandler) Create(c echo.Context) error {
	var body reservationBody
	if err := bind(c, &body); err != nil {
		return respondError(c, err)
	}
	rng, err := parseRange(body.StartDate, body.EndDate)
	if err != nil {
		return respondError(c, err)
	}
	res, err := h.svc.CreateReservation(c.Request().Context(), service.ReservationRequest{
		GuestID:        body.GuestID,
		Range:          rng,
		NumberOfGuests: body.NumberOfGuests,
		RoomIDs:        body.RoomIDs,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, res)
}

// Update handles PUT /v1/reservations/:id.
func (h *ReservationHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var body reservationUpdateBody
	if err := bind(c, &body); err != nil {
		return respondError(c, err)
	}
	rng, err := parseRange(body.StartDate, body.EndDate)
	if err != nil {
		return respondError(c, err)
	}
	res, err := h.svc.UpdateReservation(c.Request().Context(), id, service.ReservationUpdate{
		GuestID:        body.GuestID,
		Range:          rng,
		NumberOfGuests: body.NumberOfGuests,
		RoomIDs:        body.RoomIDs,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

// Delete handles DELETE /v1/reservations/:id.
func (h *ReservationHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.svc.DeleteReservation(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Get handles GET /v1/reservations/:id.
func (h *ReservationHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	res, err := h.svc.GetReservation(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

// Cost handles GET /v1/reservations/:id/cost.
func (h *ReservationHandler) Cost(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	total, err := h.svc.GetReservationCost(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"reservation_id": id, "total_cost_cents": total})
}

// FreeRooms handles GET /v1/reservations/free-rooms?start_date=&end_date=.
func (h *ReservationHandler) FreeRooms(c echo.Context) error {
	rng, err := parseRange(c.QueryParam("start_date"), c.QueryParam("end_date"))
	if err != nil {
		return respondError(c, err)
	}
	rooms, err := h.svc.FreeRooms(c.Request().Context(), rng)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": rooms})
}

// List handles GET /v1/reservations.  Exactly one filter applies, checked
// in this order: guest_id, start_date+end_date (overlapping), year with
// optional month (starting in the period).  Without filters every
// reservation is returned.
func (h *ReservationHandler) List(c echo.Context) error {
	ctx := c.Request().Context()
	var (
		items []model.Reservation
		err   error
	)
	switch {
	case c.QueryParam("guest_id") != "":
		guestID, perr := strconv.ParseUint(c.QueryParam("guest_id"), 10, 64)
		if perr != nil || guestID == 0 {
			return respondError(c, apperrors.Validation("invalid guest_id", perr))
		}
		items, err = h.svc.ListByGuest(ctx, guestID)
	case c.QueryParam("start_date") != "" || c.QueryParam("end_date") != "":
		rng, perr := parseRange(c.QueryParam("start_date"), c.QueryParam("end_date"))
		if perr != nil {
			return respondError(c, perr)
		}
		items, err = h.svc.ListOverlapping(ctx, rng)
	case c.QueryParam("year") != "":
		rng, perr := periodFromQuery(c.QueryParam("year"), c.QueryParam("month"))
		if perr != nil {
			return respondError(c, perr)
		}
		items, err = h.svc.ListStartingIn(ctx, rng)
	default:
		items, err = h.svc.ListReservations(ctx)
	}
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// periodFromQuery turns ?year=&month= into the covering date range.
func periodFromQuery(year, month string) (model.DateRange, error) {
	y, err := strconv.Atoi(year)
	if err != nil {
		return model.DateRange{}, apperrors.Validation("invalid year", err)
	}
	if month == "" {
		return model.Year(y), nil
	}
	m, err := strconv.Atoi(month)
	if err != nil || m < 1 || m > 12 {
		return model.DateRange{}, apperrors.Validation("month must be between 1 and 12", err)
	}
	return model.Month(y, time.Month(m)), nil
}
