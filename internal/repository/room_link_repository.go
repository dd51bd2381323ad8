package repository

import (
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/jmoiron/sqlx"

	"github.com/iliyamo/hotel-reservation/internal/model"
)

// RoomLinkRepo manages the reservation_rooms join table that assigns rooms
// to reservations.
type RoomLinkRepo struct {
	db *sqlx.DB
}

// NewRoomLinkRepo returns a RoomLinkRepo bound to db.
func NewRoomLinkRepo(db *sqlx.DB) *RoomLinkRepo { return &RoomLinkRepo{db: db} }

// CreateBulkTx inserts all links in a single statement.  An empty slice
// is a no-op.
func (r *RoomLinkRepo) CreateBulkTx(ctx context.Context, tx *sqlx.Tx, links []model.RoomReservationLink) error {
	if len(links) == 0 {
		return nil
	}
	rows := make([]interface{}, 0, len(links))
	for _, l := range links {
		rows = append(rows, goqu.Record{"reservation_id": l.ReservationID, "room_id": l.RoomID})
	}
	q, args, err := toSQL(dialect.Insert("reservation_rooms").Rows(rows...).Prepared(true))
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, q, args...); err != nil {
		return translate(err, "reservation room", links[0].ReservationID)
	}
	return nil
}

// ListByReservations returns the links of the given reservations.
func (r *RoomLinkRepo) ListByReservations(ctx context.Context, reservationIDs []uint64) ([]model.RoomReservationLink, error) {
	out := []model.RoomReservationLink{}
	if len(reservationIDs) == 0 {
		return out, nil
	}
	q, args, err := toSQL(dialect.From("reservation_rooms").
		Select("reservation_id", "room_id").
		Where(goqu.Ex{"reservation_id": reservationIDs}).
		Order(goqu.C("reservation_id").Asc(), goqu.C("room_id").Asc()).
		Prepared(true))
	if err != nil {
		return nil, err
	}
	if err := r.db.SelectContext(ctx, &out, q, args...); err != nil {
		return nil, fmt.Errorf("list reservation rooms: %w", err)
	}
	return out, nil
}

// ListByRoom returns every link that references roomID.
func (r *RoomLinkRepo) ListByRoom(ctx context.Context, roomID uint64) ([]model.RoomReservationLink, error) {
	out := []model.RoomReservationLink{}
	const q = `SELECT reservation_id, room_id FROM reservation_rooms WHERE room_id = ? ORDER BY reservation_id`
	if err := r.db.SelectContext(ctx, &out, q, roomID); err != nil {
		return nil, fmt.Errorf("list links of room %d: %w", roomID, err)
	}
	return out, nil
}

// ListByReservationTx returns the links of one reservation inside tx.
func (r *RoomLinkRepo) ListByReservationTx(ctx context.Context, tx *sqlx.Tx, reservationID uint64) ([]model.RoomReservationLink, error) {
	out := []model.RoomReservationLink{}
	const q = `SELECT reservation_id, room_id FROM reservation_rooms WHERE reservation_id = ? ORDER BY room_id`
	if err := tx.SelectContext(ctx, &out, q, reservationID); err != nil {
		return nil, fmt.Errorf("list rooms of reservation %d: %w", reservationID, err)
	}
	return out, nil
}

// DeleteByReservationTx removes all links of a reservation and returns
// how many rows were deleted.
func (r *RoomLinkRepo) DeleteByReservationTx(ctx context.Context, tx *sqlx.Tx, reservationID uint64) (int64, error) {
	res, err := tx.ExecContext(ctx, `DELETE FROM reservation_rooms WHERE reservation_id = ?`, reservationID)
	if err != nil {
		return 0, translate(err, "reservation room", reservationID)
	}
	return res.RowsAffected()
}

// ConflictingRoomIDsTx returns the subset of roomIDs already linked to a
// reservation, other than excludeID, whose interval overlaps rng.  It is a
// locking read so it sees links committed after the transaction's snapshot.
// Callers hold row locks on the rooms so the answer stays valid until commit.
func (r *RoomLinkRepo) ConflictingRoomIDsTx(ctx context.Context, tx *sqlx.Tx, roomIDs []uint64, rng model.DateRange, excludeID uint64) ([]uint64, error) {
	out := []uint64{}
	if len(roomIDs) == 0 {
		return out, nil
	}
	q, args, err := toSQL(dialect.From(goqu.T("reservation_rooms").As("rr")).
		Join(goqu.T("reservations").As("r"), goqu.On(goqu.I("r.id").Eq(goqu.I("rr.reservation_id")))).
		Select(goqu.I("rr.room_id")).
		Distinct().
		Where(
			goqu.Ex{"rr.room_id": roomIDs},
			goqu.I("r.start_date").Lt(rng.End),
			goqu.I("r.end_date").Gt(rng.Start),
			goqu.I("r.id").Neq(excludeID),
		).
		Order(goqu.I("rr.room_id").Asc()).
		ForShare(exp.Wait).
		Prepared(true))
	if err != nil {
		return nil, err
	}
	if err := tx.SelectContext(ctx, &out, q, args...); err != nil {
		return nil, fmt.Errorf("check room conflicts: %w", err)
	}
	return out, nil
}
