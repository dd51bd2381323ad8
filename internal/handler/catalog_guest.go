package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-reservation/internal/model"
)

type guestBody struct {
	FirstName   string `json:"first_name" validate:"required,max=100"`
	LastName    string `json:"last_name" validate:"required,max=100"`
	Address     string `json:"address" validate:"max=255"`
	City        string `json:"city" validate:"max=100"`
	Country     string `json:"country" validate:"max=100"`
	ZipCode     string `json:"zip_code" validate:"max=20"`
	PhoneNumber string `json:"phone_number" validate:"max=40"`
	Email       string `json:"email" validate:"omitempty,email,max=255"`
}

func (b guestBody) toModel(id uint64) *model.Guest {
	return &model.Guest{
		ID:          id,
		FirstName:   b.FirstName,
		LastName:    b.LastName,
		Address:     b.Address,
		City:        b.City,
		Country:     b.Country,
		ZipCode:     b.ZipCode,
		PhoneNumber: b.PhoneNumber,
		Email:       b.Email,
		Features:    []model.AccessibilityFeature{},
	}
}

// ListGuests handles GET /v1/guests.
func (h *CatalogHandler) ListGuests(c echo.Context) error {
	items, err := h.Guests.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// GetGuest handles GET /v1/guests/:id.
func (h *CatalogHandler) GetGuest(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	g, err := h.Guests.GetByID(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, g)
}

// CreateGuest handles POST /v1/guests.
func (h *CatalogHandler) CreateGuest(c echo.Context) error {
	var body guestBody
	if err := bind(c, &body); err != nil {
		return respondError(c, err)
	}
	g := body.toModel(0)
	if err := h.Guests.Create(c.Request().Context(), g); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, g)
}

// UpdateGuest handles PUT /v1/guests/:id.  Features are managed through
// the feature assignment routes and are left untouched.
func (h *CatalogHandler) UpdateGuest(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var body guestBody
	if err := bind(c, &body); err != nil {
		return respondError(c, err)
	}
	ctx := c.Request().Context()
	if err := h.Guests.Update(ctx, body.toModel(id)); err != nil {
		return respondError(c, err)
	}
	g, err := h.Guests.GetByID(ctx, id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, g)
}

// DeleteGuest handles DELETE /v1/guests/:id.  Guests holding
// reservations cannot be removed.
func (h *CatalogHandler) DeleteGuest(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.Guests.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// AddGuestFeature handles POST /v1/guests/:id/features/:feature_id.
func (h *CatalogHandler) AddGuestFeature(c echo.Context) error {
	guestID, featureID, err := h.guestFeatureParams(c)
	if err != nil {
		return respondError(c, err)
	}
	ctx := c.Request().Context()
	if err := h.Guests.AddFeature(ctx, guestID, featureID); err != nil {
		return respondError(c, err)
	}
	g, err := h.Guests.GetByID(ctx, guestID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, g)
}

// RemoveGuestFeature handles DELETE /v1/guests/:id/features/:feature_id.
func (h *CatalogHandler) RemoveGuestFeature(c echo.Context) error {
	guestID, featureID, err := h.guestFeatureParams(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.Guests.RemoveFeature(c.Request().Context(), guestID, featureID); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *CatalogHandler) guestFeatureParams(c echo.Context) (uint64, uint64, error) {
	guestID, err := pathID(c, "id")
	if err != nil {
		return 0, 0, err
	}
	featureID, err := pathID(c, "feature_id")
	if err != nil {
		return 0, 0, err
	}
	ctx := c.Request().Context()
	if _, err := h.Guests.GetByID(ctx, guestID); err != nil {
		return 0, 0, err
	}
	if _, err := h.Features.GetByID(ctx, featureID); err != nil {
		return 0, 0, err
	}
	return guestID, featureID, nil
}
