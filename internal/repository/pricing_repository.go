package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/iliyamo/hotel-reservation/internal/apperrors"
	"github.com/iliyamo/hotel-reservation/internal/model"
)

// PricingRepo manages named price entries.  Names are unique and the
// nightly rate is looked up by name when bills are generated.
type PricingRepo struct {
	db *sqlx.DB
}

// NewPricingRepo returns a PricingRepo bound to db.
func NewPricingRepo(db *sqlx.DB) *PricingRepo { return &PricingRepo{db: db} }

// List returns all price entries ordered by id.
func (r *PricingRepo) List(ctx context.Context) ([]model.PricingEntry, error) {
	out := []model.PricingEntry{}
	if err := r.db.SelectContext(ctx, &out, `SELECT id, name, price_cents FROM pricing_entries ORDER BY id`); err != nil {
		return nil, fmt.Errorf("list pricing: %w", err)
	}
	return out, nil
}

// GetByID returns one entry or NotFound.
func (r *PricingRepo) GetByID(ctx context.Context, id uint64) (*model.PricingEntry, error) {
	var p model.PricingEntry
	if err := r.db.GetContext(ctx, &p, `SELECT id, name, price_cents FROM pricing_entries WHERE id = ?`, id); err != nil {
		return nil, translate(err, "pricing entry", id)
	}
	return &p, nil
}

// GetByNameTx looks an entry up by its unique name inside tx.
func (r *PricingRepo) GetByNameTx(ctx context.Context, tx *sqlx.Tx, name string) (*model.PricingEntry, error) {
	var p model.PricingEntry
	err := tx.GetContext(ctx, &p, `SELECT id, name, price_cents FROM pricing_entries WHERE name = ?`, name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFoundf("pricing entry", "pricing entry %q not found", name)
	}
	if err != nil {
		return nil, fmt.Errorf("pricing entry %q: %w", name, err)
	}
	return &p, nil
}

// Create inserts an entry and sets its id.  Duplicate names yield Conflict.
func (r *PricingRepo) Create(ctx context.Context, p *model.PricingEntry) error {
	res, err := r.db.NamedExecContext(ctx, `INSERT INTO pricing_entries (name, price_cents) VALUES (:name, :price_cents)`, p)
	if err != nil {
		return translate(err, "pricing entry", 0)
	}
	p.ID, err = lastInsertID(res)
	return err
}

// EnsureByName inserts an entry unless one with the same name exists.
func (r *PricingRepo) EnsureByName(ctx context.Context, name string, priceCents int64) error {
	const q = `INSERT INTO pricing_entries (name, price_cents) VALUES (?, ?)
	           ON DUPLICATE KEY UPDATE name = name`
	if _, err := r.db.ExecContext(ctx, q, name, priceCents); err != nil {
		return fmt.Errorf("ensure pricing %q: %w", name, err)
	}
	return nil
}

// Update overwrites name and price.
func (r *PricingRepo) Update(ctx context.Context, p *model.PricingEntry) error {
	res, err := r.db.NamedExecContext(ctx, `UPDATE pricing_entries SET name = :name, price_cents = :price_cents WHERE id = :id`, p)
	if err != nil {
		return translate(err, "pricing entry", p.ID)
	}
	return requireAffected(res, "pricing entry", p.ID)
}

// Delete removes an entry.  Entries referenced by bills yield Conflict.
func (r *PricingRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM pricing_entries WHERE id = ?`, id)
	if err != nil {
		return translate(err, "pricing entry", id)
	}
	return requireAffected(res, "pricing entry", id)
}
