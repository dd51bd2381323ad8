package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/jmoiron/sqlx"

	"github.com/iliyamo/hotel-reservation/internal/model"
)

// BillRepo persists bills.  Reads join the pricing entry so that each
// returned Bill carries its price; a bill whose entry is gone comes back
// with a nil Pricing.
type BillRepo struct {
	db *sqlx.DB
}

// NewBillRepo returns a BillRepo bound to db.
func NewBillRepo(db *sqlx.DB) *BillRepo { return &BillRepo{db: db} }

// billRow is the flattened result of bills LEFT JOIN pricing_entries.
type billRow struct {
	ID             uint64         `db:"id"`
	RoomID         uint64         `db:"room_id"`
	PricingEntryID uint64         `db:"pricing_entry_id"`
	ReservationID  uint64         `db:"reservation_id"`
	PricingName    sql.NullString `db:"pricing_name"`
	PriceCents     sql.NullInt64  `db:"price_cents"`
}

func (b billRow) toModel() model.Bill {
	bill := model.Bill{
		ID:             b.ID,
		RoomID:         b.RoomID,
		PricingEntryID: b.PricingEntryID,
		ReservationID:  b.ReservationID,
	}
	if b.PricingName.Valid {
		bill.Pricing = &model.PricingEntry{ID: b.PricingEntryID, Name: b.PricingName.String, PriceCents: b.PriceCents.Int64}
	}
	return bill
}

// CreateBulkTx inserts all bills in one statement.  Generated ids are not
// read back; reload the bills after commit to see them.
func (r *BillRepo) CreateBulkTx(ctx context.Context, tx *sqlx.Tx, bills []model.Bill) error {
	if len(bills) == 0 {
		return nil
	}
	rows := make([]interface{}, 0, len(bills))
	for _, b := range bills {
		rows = append(rows, goqu.Record{
			"room_id":          b.RoomID,
			"pricing_entry_id": b.PricingEntryID,
			"reservation_id":   b.ReservationID,
		})
	}
	q, args, err := toSQL(dialect.Insert("bills").Rows(rows...).Prepared(true))
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, q, args...); err != nil {
		return translate(err, "bill", bills[0].ReservationID)
	}
	return nil
}

// ListByReservations returns the bills of the given reservations.
func (r *BillRepo) ListByReservations(ctx context.Context, reservationIDs []uint64) ([]model.Bill, error) {
	if len(reservationIDs) == 0 {
		return []model.Bill{}, nil
	}
	return r.list(ctx, goqu.Ex{"b.reservation_id": reservationIDs})
}

// ListByRoom returns every bill charged to a room.
func (r *BillRepo) ListByRoom(ctx context.Context, roomID uint64) ([]model.Bill, error) {
	return r.list(ctx, goqu.Ex{"b.room_id": roomID})
}

// ListByPricing returns every bill that references a pricing entry.
func (r *BillRepo) ListByPricing(ctx context.Context, pricingID uint64) ([]model.Bill, error) {
	return r.list(ctx, goqu.Ex{"b.pricing_entry_id": pricingID})
}

// DeleteByReservationTx removes the bills of a reservation and returns
// how many rows were deleted.
func (r *BillRepo) DeleteByReservationTx(ctx context.Context, tx *sqlx.Tx, reservationID uint64) (int64, error) {
	res, err := tx.ExecContext(ctx, `DELETE FROM bills WHERE reservation_id = ?`, reservationID)
	if err != nil {
		return 0, translate(err, "bill", reservationID)
	}
	return res.RowsAffected()
}

func (r *BillRepo) list(ctx context.Context, where exp.Expression) ([]model.Bill, error) {
	q, args, err := toSQL(dialect.From(goqu.T("bills").As("b")).
		LeftJoin(goqu.T("pricing_entries").As("p"), goqu.On(goqu.I("p.id").Eq(goqu.I("b.pricing_entry_id")))).
		Select(
			goqu.I("b.id"), goqu.I("b.room_id"), goqu.I("b.pricing_entry_id"), goqu.I("b.reservation_id"),
			goqu.I("p.name").As("pricing_name"), goqu.I("p.price_cents"),
		).
		Where(where).
		Order(goqu.I("b.id").Asc()).
		Prepared(true))
	if err != nil {
		return nil, err
	}
	var rows []billRow
	if err := r.db.SelectContext(ctx, &rows, q, args...); err != nil {
		return nil, fmt.Errorf("list bills: %w", err)
	}
	out := make([]model.Bill, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toModel())
	}
	return out, nil
}
