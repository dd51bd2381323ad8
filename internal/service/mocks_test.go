package service

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/mock"

	"github.com/iliyamo/hotel-reservation/internal/model"
	"github.com/iliyamo/hotel-reservation/internal/queue"
)

type mockRooms struct{ mock.Mock }

func (m *mockRooms) List(ctx context.Context) ([]model.Room, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Room), args.Error(1)
}

func (m *mockRooms) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *mockRooms) GetByIDs(ctx context.Context, ids []uint64) ([]model.Room, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]model.Room), args.Error(1)
}

func (m *mockRooms) LockTx(ctx context.Context, tx *sqlx.Tx, ids []uint64) ([]uint64, error) {
	args := m.Called(ctx, tx, ids)
	return args.Get(0).([]uint64), args.Error(1)
}

type mockGuests struct{ mock.Mock }

func (m *mockGuests) GetByID(ctx context.Context, id uint64) (*model.Guest, error) {
	args := m.Called(ctx, id)
	g, _ := args.Get(0).(*model.Guest)
	return g, args.Error(1)
}

func (m *mockGuests) GetByIDs(ctx context.Context, ids []uint64) (map[uint64]*model.Guest, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(map[uint64]*model.Guest), args.Error(1)
}

type mockFeatures struct{ mock.Mock }

func (m *mockFeatures) GetByIDs(ctx context.Context, ids []uint64) ([]model.AccessibilityFeature, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]model.AccessibilityFeature), args.Error(1)
}

type mockPricing struct{ mock.Mock }

func (m *mockPricing) GetByNameTx(ctx context.Context, tx *sqlx.Tx, name string) (*model.PricingEntry, error) {
	args := m.Called(ctx, tx, name)
	p, _ := args.Get(0).(*model.PricingEntry)
	return p, args.Error(1)
}

type mockReservations struct{ mock.Mock }

func (m *mockReservations) CreateTx(ctx context.Context, tx *sqlx.Tx, res *model.Reservation) error {
	return m.Called(ctx, tx, res).Error(0)
}

func (m *mockReservations) GetByID(ctx context.Context, id uint64) (*model.Reservation, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*model.Reservation)
	return r, args.Error(1)
}

func (m *mockReservations) GetByIDForUpdateTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.Reservation, error) {
	args := m.Called(ctx, tx, id)
	r, _ := args.Get(0).(*model.Reservation)
	return r, args.Error(1)
}

func (m *mockReservations) UpdateTx(ctx context.Context, tx *sqlx.Tx, res *model.Reservation) error {
	return m.Called(ctx, tx, res).Error(0)
}

func (m *mockReservations) DeleteTx(ctx context.Context, tx *sqlx.Tx, id uint64) error {
	return m.Called(ctx, tx, id).Error(0)
}

func (m *mockReservations) List(ctx context.Context) ([]model.Reservation, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Reservation), args.Error(1)
}

func (m *mockReservations) ListByGuest(ctx context.Context, guestID uint64) ([]model.Reservation, error) {
	args := m.Called(ctx, guestID)
	return args.Get(0).([]model.Reservation), args.Error(1)
}

func (m *mockReservations) ListOverlapping(ctx context.Context, rng model.DateRange) ([]model.Reservation, error) {
	args := m.Called(ctx, rng)
	return args.Get(0).([]model.Reservation), args.Error(1)
}

func (m *mockReservations) ListStartingIn(ctx context.Context, rng model.DateRange) ([]model.Reservation, error) {
	args := m.Called(ctx, rng)
	return args.Get(0).([]model.Reservation), args.Error(1)
}

type mockLinks struct{ mock.Mock }

func (m *mockLinks) CreateBulkTx(ctx context.Context, tx *sqlx.Tx, links []model.RoomReservationLink) error {
	return m.Called(ctx, tx, links).Error(0)
}

func (m *mockLinks) ListByReservations(ctx context.Context, ids []uint64) ([]model.RoomReservationLink, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]model.RoomReservationLink), args.Error(1)
}

func (m *mockLinks) ListByReservationTx(ctx context.Context, tx *sqlx.Tx, id uint64) ([]model.RoomReservationLink, error) {
	args := m.Called(ctx, tx, id)
	return args.Get(0).([]model.RoomReservationLink), args.Error(1)
}

func (m *mockLinks) DeleteByReservationTx(ctx context.Context, tx *sqlx.Tx, id uint64) (int64, error) {
	args := m.Called(ctx, tx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockLinks) ConflictingRoomIDsTx(ctx context.Context, tx *sqlx.Tx, roomIDs []uint64, rng model.DateRange, excludeID uint64) ([]uint64, error) {
	args := m.Called(ctx, tx, roomIDs, rng, excludeID)
	return args.Get(0).([]uint64), args.Error(1)
}

type mockBills struct{ mock.Mock }

func (m *mockBills) CreateBulkTx(ctx context.Context, tx *sqlx.Tx, bills []model.Bill) error {
	return m.Called(ctx, tx, bills).Error(0)
}

func (m *mockBills) ListByReservations(ctx context.Context, ids []uint64) ([]model.Bill, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]model.Bill), args.Error(1)
}

func (m *mockBills) DeleteByReservationTx(ctx context.Context, tx *sqlx.Tx, id uint64) (int64, error) {
	args := m.Called(ctx, tx, id)
	return args.Get(0).(int64), args.Error(1)
}

type mockInvoices struct{ mock.Mock }

func (m *mockInvoices) List(ctx context.Context) ([]model.Invoice, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Invoice), args.Error(1)
}

func (m *mockInvoices) GetByID(ctx context.Context, id uint64) (*model.Invoice, error) {
	args := m.Called(ctx, id)
	inv, _ := args.Get(0).(*model.Invoice)
	return inv, args.Error(1)
}

func (m *mockInvoices) Create(ctx context.Context, inv *model.Invoice) error {
	return m.Called(ctx, inv).Error(0)
}

func (m *mockInvoices) Update(ctx context.Context, inv *model.Invoice) error {
	return m.Called(ctx, inv).Error(0)
}

func (m *mockInvoices) Delete(ctx context.Context, id uint64) error {
	return m.Called(ctx, id).Error(0)
}

type mockPublisher struct{ mock.Mock }

func (m *mockPublisher) Publish(ctx context.Context, ev queue.ReservationEvent) error {
	return m.Called(ctx, ev).Error(0)
}
