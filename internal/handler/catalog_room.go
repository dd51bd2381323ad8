package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-reservation/internal/model"
)

type roomBody struct {
	Alias string `json:"alias" validate:"required,max=64"`
}

// ListRooms handles GET /v1/rooms.
func (h *CatalogHandler) ListRooms(c echo.Context) error {
	items, err := h.Rooms.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// GetRoom handles GET /v1/rooms/:id.
func (h *CatalogHandler) GetRoom(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	room, err := h.Rooms.GetByID(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, room)
}

// CreateRoom handles POST /v1/rooms.  A duplicate alias is a 409.
func (h *CatalogHandler) CreateRoom(c echo.Context) error {
	var body roomBody
	if err := bind(c, &body); err != nil {
		return respondError(c, err)
	}
	room := &model.Room{Alias: strings.TrimSpace(body.Alias), Features: []model.AccessibilityFeature{}}
	if err := h.Rooms.Create(c.Request().Context(), room); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, room)
}

// UpdateRoom handles PUT /v1/rooms/:id.
func (h *CatalogHandler) UpdateRoom(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var body roomBody
	if err := bind(c, &body); err != nil {
		return respondError(c, err)
	}
	ctx := c.Request().Context()
	if err := h.Rooms.Update(ctx, &model.Room{ID: id, Alias: strings.TrimSpace(body.Alias)}); err != nil {
		return respondError(c, err)
	}
	room, err := h.Rooms.GetByID(ctx, id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, room)
}

// DeleteRoom handles DELETE /v1/rooms/:id.
func (h *CatalogHandler) DeleteRoom(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.Rooms.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// AddRoomFeature handles POST /v1/rooms/:id/features/:feature_id.  Both
// records must exist; assigning an already assigned feature is a no-op.
func (h *CatalogHandler) AddRoomFeature(c echo.Context) error {
	roomID, featureID, err := h.roomFeatureParams(c)
	if err != nil {
		return respondError(c, err)
	}
	ctx := c.Request().Context()
	if err := h.Rooms.AddFeature(ctx, roomID, featureID); err != nil {
		return respondError(c, err)
	}
	room, err := h.Rooms.GetByID(ctx, roomID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, room)
}

// RemoveRoomFeature handles DELETE /v1/rooms/:id/features/:feature_id.
func (h *CatalogHandler) RemoveRoomFeature(c echo.Context) error {
	roomID, featureID, err := h.roomFeatureParams(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.Rooms.RemoveFeature(c.Request().Context(), roomID, featureID); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// roomFeatureParams parses both ids and checks that both records exist.
func (h *CatalogHandler) roomFeatureParams(c echo.Context) (uint64, uint64, error) {
	roomID, err := pathID(c, "id")
	if err != nil {
		return 0, 0, err
	}
	featureID, err := pathID(c, "feature_id")
	if err != nil {
		return 0, 0, err
	}
	ctx := c.Request().Context()
	if _, err := h.Rooms.GetByID(ctx, roomID); err != nil {
		return 0, 0, err
	}
	if _, err := h.Features.GetByID(ctx, featureID); err != nil {
		return 0, 0, err
	}
	return roomID, featureID, nil
}

// RoomReservations handles GET /v1/rooms/:id/reservations and returns the
// reservation links that occupy the room.
func (h *CatalogHandler) RoomReservations(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	ctx := c.Request().Context()
	if _, err := h.Rooms.GetByID(ctx, id); err != nil {
		return respondError(c, err)
	}
	items, err := h.Links.ListByRoom(ctx, id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// RoomBills handles GET /v1/rooms/:id/bills.
func (h *CatalogHandler) RoomBills(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	ctx := c.Request().Context()
	if _, err := h.Rooms.GetByID(ctx, id); err != nil {
		return respondError(c, err)
	}
	items, err := h.Bills.ListByRoom(ctx, id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}
