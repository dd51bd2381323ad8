// Package service implements the reservation allocation and occupancy
// engine: room availability, room ranking, the transactional reservation
// workflow, cost aggregation, reports and invoices.
//
// Collaborators are declared here as small interfaces and are satisfied
// by the repository package.
package service

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/iliyamo/hotel-reservation/internal/model"
	"github.com/iliyamo/hotel-reservation/internal/queue"
)

// Transactor opens database transactions.  *sqlx.DB satisfies it.
type Transactor interface {
	BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error)
}

// RoomDirectory answers which rooms exist and what features they have.
type RoomDirectory interface {
	List(ctx context.Context) ([]model.Room, error)
	Count(ctx context.Context) (int, error)
	GetByIDs(ctx context.Context, ids []uint64) ([]model.Room, error)
	LockTx(ctx context.Context, tx *sqlx.Tx, ids []uint64) ([]uint64, error)
}

// GuestDirectory resolves guests with their stored features.
type GuestDirectory interface {
	GetByID(ctx context.Context, id uint64) (*model.Guest, error)
	GetByIDs(ctx context.Context, ids []uint64) (map[uint64]*model.Guest, error)
}

// FeatureCatalog resolves accessibility features.
type FeatureCatalog interface {
	GetByIDs(ctx context.Context, ids []uint64) ([]model.AccessibilityFeature, error)
}

// PricingCatalog resolves price entries by their unique name.
type PricingCatalog interface {
	GetByNameTx(ctx context.Context, tx *sqlx.Tx, name string) (*model.PricingEntry, error)
}

// ReservationStore persists reservation rows.
type ReservationStore interface {
	CreateTx(ctx context.Context, tx *sqlx.Tx, res *model.Reservation) error
	GetByID(ctx context.Context, id uint64) (*model.Reservation, error)
	GetByIDForUpdateTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.Reservation, error)
	UpdateTx(ctx context.Context, tx *sqlx.Tx, res *model.Reservation) error
	DeleteTx(ctx context.Context, tx *sqlx.Tx, id uint64) error
	List(ctx context.Context) ([]model.Reservation, error)
	ListByGuest(ctx context.Context, guestID uint64) ([]model.Reservation, error)
	ListOverlapping(ctx context.Context, rng model.DateRange) ([]model.Reservation, error)
	ListStartingIn(ctx context.Context, rng model.DateRange) ([]model.Reservation, error)
}

// RoomLinkStore persists reservation to room assignments.
type RoomLinkStore interface {
	CreateBulkTx(ctx context.Context, tx *sqlx.Tx, links []model.RoomReservationLink) error
	ListByReservations(ctx context.Context, reservationIDs []uint64) ([]model.RoomReservationLink, error)
	ListByReservationTx(ctx context.Context, tx *sqlx.Tx, reservationID uint64) ([]model.RoomReservationLink, error)
	DeleteByReservationTx(ctx context.Context, tx *sqlx.Tx, reservationID uint64) (int64, error)
	ConflictingRoomIDsTx(ctx context.Context, tx *sqlx.Tx, roomIDs []uint64, rng model.DateRange, excludeID uint64) ([]uint64, error)
}

// BillStore persists bills.
type BillStore interface {
	CreateBulkTx(ctx context.Context, tx *sqlx.Tx, bills []model.Bill) error
	ListByReservations(ctx context.Context, reservationIDs []uint64) ([]model.Bill, error)
	DeleteByReservationTx(ctx context.Context, tx *sqlx.Tx, reservationID uint64) (int64, error)
}

// InvoiceStore persists stored invoice fields.
type InvoiceStore interface {
	List(ctx context.Context) ([]model.Invoice, error)
	GetByID(ctx context.Context, id uint64) (*model.Invoice, error)
	Create(ctx context.Context, inv *model.Invoice) error
	Update(ctx context.Context, inv *model.Invoice) error
	Delete(ctx context.Context, id uint64) error
}

// EventPublisher delivers reservation lifecycle events.
type EventPublisher interface {
	Publish(ctx context.Context, ev queue.ReservationEvent) error
}
