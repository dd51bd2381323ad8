package service

import (
	"context"

	"github.com/iliyamo/hotel-reservation/internal/model"
)

// ReservationGetter resolves a hydrated reservation.
type ReservationGetter interface {
	GetReservation(ctx context.Context, id uint64) (*model.Reservation, error)
}

// InvoiceService stores invoices and derives their totals from the
// invoiced reservation on every read.
type InvoiceService struct {
	invoices     InvoiceStore
	reservations ReservationGetter
	issuer       model.Issuer
}

// NewInvoiceService wires the invoice aggregator.  issuer is printed on
// every invoice.
func NewInvoiceService(invoices InvoiceStore, reservations ReservationGetter, issuer model.Issuer) *InvoiceService {
	return &InvoiceService{invoices: invoices, reservations: reservations, issuer: issuer}
}

// Create stores inv after checking that its reservation exists and
// returns it with the derived fields filled in.
func (s *InvoiceService) Create(ctx context.Context, inv *model.Invoice) (*model.Invoice, error) {
	if _, err := s.reservations.GetReservation(ctx, inv.ReservationID); err != nil {
		return nil, err
	}
	inv.DateOfIssue = model.Day(inv.DateOfIssue)
	if err := s.invoices.Create(ctx, inv); err != nil {
		return nil, err
	}
	return s.Get(ctx, inv.ID)
}

// Get returns one invoice with total and reservation attached.
func (s *InvoiceService) Get(ctx context.Context, id uint64) (*model.Invoice, error) {
	inv, err := s.invoices.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.build(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

// List returns every invoice with derived fields.
func (s *InvoiceService) List(ctx context.Context) ([]model.Invoice, error) {
	list, err := s.invoices.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if err := s.build(ctx, &list[i]); err != nil {
			return nil, err
		}
	}
	return list, nil
}

// Update overwrites the stored fields of an invoice.
func (s *InvoiceService) Update(ctx context.Context, inv *model.Invoice) (*model.Invoice, error) {
	if _, err := s.reservations.GetReservation(ctx, inv.ReservationID); err != nil {
		return nil, err
	}
	inv.DateOfIssue = model.Day(inv.DateOfIssue)
	if err := s.invoices.Update(ctx, inv); err != nil {
		return nil, err
	}
	return s.Get(ctx, inv.ID)
}

// Delete removes an invoice.
func (s *InvoiceService) Delete(ctx context.Context, id uint64) error {
	return s.invoices.Delete(ctx, id)
}

// build computes the invoice total from the reservation's bills.
func (s *InvoiceService) build(ctx context.Context, inv *model.Invoice) error {
	res, err := s.reservations.GetReservation(ctx, inv.ReservationID)
	if err != nil {
		return err
	}
	inv.Reservation = res
	inv.TotalSumCents = model.ReservationCost(res)
	inv.Issuer = s.issuer
	return nil
}
