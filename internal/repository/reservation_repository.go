package repository

import (
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/jmoiron/sqlx"

	"github.com/iliyamo/hotel-reservation/internal/model"
)

// ReservationRepo persists reservation rows.  Rooms and bills live in
// their own tables and are handled by RoomLinkRepo and BillRepo; callers
// combine them inside one transaction.
//
// Dates are stored as DATE columns and read back as midnight UTC.
type ReservationRepo struct {
	db *sqlx.DB
}

// NewReservationRepo returns a ReservationRepo bound to db.
func NewReservationRepo(db *sqlx.DB) *ReservationRepo { return &ReservationRepo{db: db} }

var reservationColumns = []interface{}{"id", "guest_id", "start_date", "end_date", "number_of_guests"}

// CreateTx inserts res within tx and sets its generated id.
func (r *ReservationRepo) CreateTx(ctx context.Context, tx *sqlx.Tx, res *model.Reservation) error {
	const q = `INSERT INTO reservations (guest_id, start_date, end_date, number_of_guests) VALUES (?, ?, ?, ?)`
	result, err := tx.ExecContext(ctx, q, res.GuestID, res.StartDate, res.EndDate, res.NumberOfGuests)
	if err != nil {
		return translate(err, "reservation", 0)
	}
	res.ID, err = lastInsertID(result)
	return err
}

// GetByID returns the stored reservation fields or NotFound.
func (r *ReservationRepo) GetByID(ctx context.Context, id uint64) (*model.Reservation, error) {
	const q = `SELECT id, guest_id, start_date, end_date, number_of_guests FROM reservations WHERE id = ?`
	var res model.Reservation
	if err := r.db.GetContext(ctx, &res, q, id); err != nil {
		return nil, translate(err, "reservation", id)
	}
	normalize(&res)
	return &res, nil
}

// GetByIDForUpdateTx reads and row-locks the reservation inside tx.
func (r *ReservationRepo) GetByIDForUpdateTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.Reservation, error) {
	const q = `SELECT id, guest_id, start_date, end_date, number_of_guests FROM reservations WHERE id = ? FOR UPDATE`
	var res model.Reservation
	if err := tx.GetContext(ctx, &res, q, id); err != nil {
		return nil, translate(err, "reservation", id)
	}
	normalize(&res)
	return &res, nil
}

// UpdateTx overwrites the stored fields of res within tx.
func (r *ReservationRepo) UpdateTx(ctx context.Context, tx *sqlx.Tx, res *model.Reservation) error {
	const q = `UPDATE reservations SET guest_id = ?, start_date = ?, end_date = ?, number_of_guests = ? WHERE id = ?`
	result, err := tx.ExecContext(ctx, q, res.GuestID, res.StartDate, res.EndDate, res.NumberOfGuests, res.ID)
	if err != nil {
		return translate(err, "reservation", res.ID)
	}
	return requireAffected(result, "reservation", res.ID)
}

// DeleteTx removes the reservation row.  Bills and room links must be
// deleted first.
func (r *ReservationRepo) DeleteTx(ctx context.Context, tx *sqlx.Tx, id uint64) error {
	result, err := tx.ExecContext(ctx, `DELETE FROM reservations WHERE id = ?`, id)
	if err != nil {
		return translate(err, "reservation", id)
	}
	return requireAffected(result, "reservation", id)
}

// List returns every reservation ordered by start date.
func (r *ReservationRepo) List(ctx context.Context) ([]model.Reservation, error) {
	return r.list(ctx)
}

// ListByGuest returns the reservations held by a guest.
func (r *ReservationRepo) ListByGuest(ctx context.Context, guestID uint64) ([]model.Reservation, error) {
	return r.list(ctx, goqu.C("guest_id").Eq(guestID))
}

// ListOverlapping returns reservations whose interval intersects rng
// under the half-open rule start < rng.End && rng.Start < end.
func (r *ReservationRepo) ListOverlapping(ctx context.Context, rng model.DateRange) ([]model.Reservation, error) {
	return r.list(ctx, goqu.C("start_date").Lt(rng.End), goqu.C("end_date").Gt(rng.Start))
}

// ListStartingIn returns reservations whose start date falls in rng.
func (r *ReservationRepo) ListStartingIn(ctx context.Context, rng model.DateRange) ([]model.Reservation, error) {
	return r.list(ctx, goqu.C("start_date").Gte(rng.Start), goqu.C("start_date").Lt(rng.End))
}

func (r *ReservationRepo) list(ctx context.Context, where ...exp.Expression) ([]model.Reservation, error) {
	ds := dialect.From("reservations").
		Select(reservationColumns...).
		Order(goqu.C("start_date").Asc(), goqu.C("id").Asc()).
		Prepared(true)
	if len(where) > 0 {
		ds = ds.Where(where...)
	}
	q, args, err := toSQL(ds)
	if err != nil {
		return nil, err
	}
	out := []model.Reservation{}
	if err := r.db.SelectContext(ctx, &out, q, args...); err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	for i := range out {
		normalize(&out[i])
	}
	return out, nil
}

func normalize(res *model.Reservation) {
	res.StartDate = model.Day(res.StartDate)
	res.EndDate = model.Day(res.EndDate)
}
