package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/iliyamo/hotel-reservation/internal/model"
)

const invoiceColumns = `id, date_of_issue, first_name, last_name, address, nip, reservation_id`

// InvoiceRepo persists the stored fields of invoices.  Totals are not
// stored; the service recomputes them from bills on every read.
type InvoiceRepo struct {
	db *sqlx.DB
}

// NewInvoiceRepo returns an InvoiceRepo bound to db.
func NewInvoiceRepo(db *sqlx.DB) *InvoiceRepo { return &InvoiceRepo{db: db} }

// List returns all invoices ordered by id.
func (r *InvoiceRepo) List(ctx context.Context) ([]model.Invoice, error) {
	out := []model.Invoice{}
	if err := r.db.SelectContext(ctx, &out, `SELECT `+invoiceColumns+` FROM invoices ORDER BY id`); err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	return out, nil
}

// GetByID returns one invoice or NotFound.
func (r *InvoiceRepo) GetByID(ctx context.Context, id uint64) (*model.Invoice, error) {
	var inv model.Invoice
	if err := r.db.GetContext(ctx, &inv, `SELECT `+invoiceColumns+` FROM invoices WHERE id = ?`, id); err != nil {
		return nil, translate(err, "invoice", id)
	}
	return &inv, nil
}

// Create inserts an invoice and sets its id.
func (r *InvoiceRepo) Create(ctx context.Context, inv *model.Invoice) error {
	const q = `INSERT INTO invoices (date_of_issue, first_name, last_name, address, nip, reservation_id)
	           VALUES (:date_of_issue, :first_name, :last_name, :address, :nip, :reservation_id)`
	res, err := r.db.NamedExecContext(ctx, q, inv)
	if err != nil {
		return translate(err, "invoice", 0)
	}
	inv.ID, err = lastInsertID(res)
	return err
}

// Update overwrites the stored invoice fields.
func (r *InvoiceRepo) Update(ctx context.Context, inv *model.Invoice) error {
	const q = `UPDATE invoices SET date_of_issue = :date_of_issue, first_name = :first_name, last_name = :last_name,
	           address = :address, nip = :nip, reservation_id = :reservation_id WHERE id = :id`
	res, err := r.db.NamedExecContext(ctx, q, inv)
	if err != nil {
		return translate(err, "invoice", inv.ID)
	}
	return requireAffected(res, "invoice", inv.ID)
}

// Delete removes an invoice.
func (r *InvoiceRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM invoices WHERE id = ?`, id)
	if err != nil {
		return translate(err, "invoice", id)
	}
	return requireAffected(res, "invoice", id)
}
