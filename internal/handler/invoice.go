package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-reservation/internal/model"
)

// Invoices is the invoice aggregator used by InvoiceHandler.
type Invoices interface {
	Create(ctx context.Context, inv *model.Invoice) (*model.Invoice, error)
	Get(ctx context.Context, id uint64) (*model.Invoice, error)
	List(ctx context.Context) ([]model.Invoice, error)
	Update(ctx context.Context, inv *model.Invoice) (*model.Invoice, error)
	Delete(ctx context.Context, id uint64) error
}

// InvoiceHandler serves /v1/invoices.
type InvoiceHandler struct {
	svc Invoices
}

func NewInvoiceHandler(svc Invoices) *InvoiceHandler {
	if svc == nil {
		panic("nil invoice service passed to NewInvoiceHandler")
	}
	return &InvoiceHandler{svc: svc}
}

type invoiceBody struct {
	DateOfIssue   string `json:"date_of_issue" validate:"required"`
	FirstName     string `json:"first_name" validate:"required,max=100"`
	LastName      string `json:"last_name" validate:"required,max=100"`
	Address       string `json:"address" validate:"required,max=255"`
	TaxID         string `json:"nip" validate:"max=20"`
	ReservationID uint64 `json:"reservation_id" validate:"required"`
}

func (b invoiceBody) toModel(id uint64) (*model.Invoice, error) {
	issued, err := parseDate(b.DateOfIssue, "date_of_issue")
	if err != nil {
		return nil, err
	}
	return &model.Invoice{
		ID:            id,
		DateOfIssue:   issued,
		FirstName:     b.FirstName,
		LastName:      b.LastName,
		Address:       b.Address,
		TaxID:         b.TaxID,
		ReservationID: b.ReservationID,
	}, nil
}

// Create handles POST /v1/invoices.
func (h *InvoiceHandler) Create(c echo.Context) error {
	var body invoiceBody
	if err := bind(c, &body); err != nil {
		return respondError(c, err)
	}
	inv, err := body.toModel(0)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.svc.Create(c.Request().Context(), inv)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

// Get handles GET /v1/invoices/:id.
func (h *InvoiceHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	inv, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, inv)
}

// List handles GET /v1/invoices.
func (h *InvoiceHandler) List(c echo.Context) error {
	items, err := h.svc.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// Update handles PUT /v1/invoices/:id.
func (h *InvoiceHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var body invoiceBody
	if err := bind(c, &body); err != nil {
		return respondError(c, err)
	}
	inv, err := body.toModel(id)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.svc.Update(c.Request().Context(), inv)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// Delete handles DELETE /v1/invoices/:id.
func (h *InvoiceHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
