package repository

import (
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/jmoiron/sqlx"

	"github.com/iliyamo/hotel-reservation/internal/model"
)

const guestColumns = `id, first_name, last_name, address, city, country, zip_code, phone_number, email`

// GuestRepo provides access to guests and their stored accessibility
// preferences.
type GuestRepo struct {
	db *sqlx.DB
}

// NewGuestRepo returns a GuestRepo bound to db.
func NewGuestRepo(db *sqlx.DB) *GuestRepo { return &GuestRepo{db: db} }

// List returns all guests ordered by id.
func (r *GuestRepo) List(ctx context.Context) ([]model.Guest, error) {
	guests := []model.Guest{}
	if err := r.db.SelectContext(ctx, &guests, `SELECT `+guestColumns+` FROM guests ORDER BY id`); err != nil {
		return nil, fmt.Errorf("list guests: %w", err)
	}
	return guests, r.attachFeatures(ctx, guests)
}

// GetByID returns the guest with its features or NotFound.
func (r *GuestRepo) GetByID(ctx context.Context, id uint64) (*model.Guest, error) {
	var g model.Guest
	if err := r.db.GetContext(ctx, &g, `SELECT `+guestColumns+` FROM guests WHERE id = ?`, id); err != nil {
		return nil, translate(err, "guest", id)
	}
	guests := []model.Guest{g}
	if err := r.attachFeatures(ctx, guests); err != nil {
		return nil, err
	}
	return &guests[0], nil
}

// GetByIDs returns the guests that exist among ids keyed by id.
func (r *GuestRepo) GetByIDs(ctx context.Context, ids []uint64) (map[uint64]*model.Guest, error) {
	out := make(map[uint64]*model.Guest, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	q, args, err := toSQL(dialect.From("guests").
		Select("id", "first_name", "last_name", "address", "city", "country", "zip_code", "phone_number", "email").
		Where(goqu.Ex{"id": ids}).
		Prepared(true))
	if err != nil {
		return nil, err
	}
	var guests []model.Guest
	if err := r.db.SelectContext(ctx, &guests, q, args...); err != nil {
		return nil, fmt.Errorf("get guests: %w", err)
	}
	if err := r.attachFeatures(ctx, guests); err != nil {
		return nil, err
	}
	for i := range guests {
		out[guests[i].ID] = &guests[i]
	}
	return out, nil
}

// Create inserts a guest and sets its id.
func (r *GuestRepo) Create(ctx context.Context, g *model.Guest) error {
	const q = `INSERT INTO guests (first_name, last_name, address, city, country, zip_code, phone_number, email)
	           VALUES (:first_name, :last_name, :address, :city, :country, :zip_code, :phone_number, :email)`
	res, err := r.db.NamedExecContext(ctx, q, g)
	if err != nil {
		return translate(err, "guest", 0)
	}
	g.ID, err = lastInsertID(res)
	return err
}

// Update overwrites the guest's contact fields.
func (r *GuestRepo) Update(ctx context.Context, g *model.Guest) error {
	const q = `UPDATE guests SET first_name = :first_name, last_name = :last_name, address = :address,
	           city = :city, country = :country, zip_code = :zip_code, phone_number = :phone_number, email = :email
	           WHERE id = :id`
	res, err := r.db.NamedExecContext(ctx, q, g)
	if err != nil {
		return translate(err, "guest", g.ID)
	}
	return requireAffected(res, "guest", g.ID)
}

// Delete removes a guest and their feature assignments.  Guests holding
// reservations yield Conflict.
func (r *GuestRepo) Delete(ctx context.Context, id uint64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()
	if _, err := tx.ExecContext(ctx, `DELETE FROM guest_accessibility_features WHERE guest_id = ?`, id); err != nil {
		return translate(err, "guest", id)
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM guests WHERE id = ?`, id)
	if err != nil {
		return translate(err, "guest", id)
	}
	if err := requireAffected(res, "guest", id); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

// AddFeature stores an accessibility preference for a guest.
func (r *GuestRepo) AddFeature(ctx context.Context, guestID, featureID uint64) error {
	return linkFeature(ctx, r.db, "guest_accessibility_features", "guest_id", "guest", guestID, featureID)
}

// RemoveFeature drops an accessibility preference from a guest.
func (r *GuestRepo) RemoveFeature(ctx context.Context, guestID, featureID uint64) error {
	return unlinkFeature(ctx, r.db, "guest_accessibility_features", "guest_id", "guest", guestID, featureID)
}

func (r *GuestRepo) attachFeatures(ctx context.Context, guests []model.Guest) error {
	ids := make([]uint64, len(guests))
	for i := range guests {
		ids[i] = guests[i].ID
	}
	byGuest, err := featuresByOwner(ctx, r.db, "guest_accessibility_features", "guest_id", ids)
	if err != nil {
		return err
	}
	for i := range guests {
		guests[i].Features = byGuest[guests[i].ID]
		if guests[i].Features == nil {
			guests[i].Features = []model.AccessibilityFeature{}
		}
	}
	return nil
}
