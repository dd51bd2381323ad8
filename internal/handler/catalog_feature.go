package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-reservation/internal/model"
)

type featureBody struct {
	Name string `json:"name" validate:"required,max=120"`
}

type pricingBody struct {
	Name       string `json:"name" validate:"required,max=120"`
	PriceCents int64  `json:"price_cents" validate:"gte=0"`
}

// ListFeatures handles GET /v1/accessibility-features.
func (h *CatalogHandler) ListFeatures(c echo.Context) error {
	items, err := h.Features.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// GetFeature handles GET /v1/accessibility-features/:id.
func (h *CatalogHandler) GetFeature(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	f, err := h.Features.GetByID(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, f)
}

// CreateFeature handles POST /v1/accessibility-features.
func (h *CatalogHandler) CreateFeature(c echo.Context) error {
	var body featureBody
	if err := bind(c, &body); err != nil {
		return respondError(c, err)
	}
	f := &model.AccessibilityFeature{Name: strings.TrimSpace(body.Name)}
	if err := h.Features.Create(c.Request().Context(), f); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, f)
}

// UpdateFeature handles PUT /v1/accessibility-features/:id.
func (h *CatalogHandler) UpdateFeature(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var body featureBody
	if err := bind(c, &body); err != nil {
		return respondError(c, err)
	}
	f := &model.AccessibilityFeature{ID: id, Name: strings.TrimSpace(body.Name)}
	if err := h.Features.Update(c.Request().Context(), f); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, f)
}

// DeleteFeature handles DELETE /v1/accessibility-features/:id.  A feature
// still assigned to a room or guest is a 409.
func (h *CatalogHandler) DeleteFeature(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.Features.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ListPricing handles GET /v1/pricing.
func (h *CatalogHandler) ListPricing(c echo.Context) error {
	items, err := h.Pricing.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// GetPricing handles GET /v1/pricing/:id.
func (h *CatalogHandler) GetPricing(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	p, err := h.Pricing.GetByID(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

// CreatePricing handles POST /v1/pricing.
func (h *CatalogHandler) CreatePricing(c echo.Context) error {
	var body pricingBody
	if err := bind(c, &body); err != nil {
		return respondError(c, err)
	}
	p := &model.PricingEntry{Name: strings.TrimSpace(body.Name), PriceCents: body.PriceCents}
	if err := h.Pricing.Create(c.Request().Context(), p); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, p)
}

// UpdatePricing handles PUT /v1/pricing/:id.  Existing bills follow the
// new price because costs are derived on read.
func (h *CatalogHandler) UpdatePricing(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var body pricingBody
	if err := bind(c, &body); err != nil {
		return respondError(c, err)
	}
	p := &model.PricingEntry{ID: id, Name: strings.TrimSpace(body.Name), PriceCents: body.PriceCents}
	if err := h.Pricing.Update(c.Request().Context(), p); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

// DeletePricing handles DELETE /v1/pricing/:id.
func (h *CatalogHandler) DeletePricing(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.Pricing.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// PricingBills handles GET /v1/pricing/:id/bills.
func (h *CatalogHandler) PricingBills(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	ctx := c.Request().Context()
	if _, err := h.Pricing.GetByID(ctx, id); err != nil {
		return respondError(c, err)
	}
	items, err := h.Bills.ListByPricing(ctx, id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}
