package handler

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/iliyamo/hotel-reservation/internal/model"
	"github.com/iliyamo/hotel-reservation/internal/service"
)

type mockReservations struct{ mock.Mock }

func (m *mockReservations) FreeRooms(ctx context.Context, rng model.DateRange) ([]model.Room, error) {
	args := m.Called(ctx, rng)
	rooms, _ := args.Get(0).([]model.Room)
	return rooms, args.Error(1)
}

func (m *mockReservations) CreateBestReservation(ctx context.Context, req service.BestReservationRequest) (*model.Reservation, error) {
	args := m.Called(ctx, req)
	res, _ := args.Get(0).(*model.Reservation)
	return res, args.Error(1)
}

func (m *mockReservations) CreateReservation(ctx context.Context, req service.ReservationRequest) (*model.Reservation, error) {
	args := m.Called(ctx, req)
	res, _ := args.Get(0).(*model.Reservation)
	return res, args.Error(1)
}

func (m *mockReservations) UpdateReservation(ctx context.Context, id uint64, req service.ReservationUpdate) (*model.Reservation, error) {
	args := m.Called(ctx, id, req)
	res, _ := args.Get(0).(*model.Reservation)
	return res, args.Error(1)
}

func (m *mockReservations) DeleteReservation(ctx context.Context, id uint64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockReservations) GetReservation(ctx context.Context, id uint64) (*model.Reservation, error) {
	args := m.Called(ctx, id)
	res, _ := args.Get(0).(*model.Reservation)
	return res, args.Error(1)
}

func (m *mockReservations) GetReservationCost(ctx context.Context, id uint64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockReservations) ListReservations(ctx context.Context) ([]model.Reservation, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]model.Reservation)
	return list, args.Error(1)
}

func (m *mockReservations) ListByGuest(ctx context.Context, guestID uint64) ([]model.Reservation, error) {
	args := m.Called(ctx, guestID)
	list, _ := args.Get(0).([]model.Reservation)
	return list, args.Error(1)
}

func (m *mockReservations) ListOverlapping(ctx context.Context, rng model.DateRange) ([]model.Reservation, error) {
	args := m.Called(ctx, rng)
	list, _ := args.Get(0).([]model.Reservation)
	return list, args.Error(1)
}

func (m *mockReservations) ListStartingIn(ctx context.Context, rng model.DateRange) ([]model.Reservation, error) {
	args := m.Called(ctx, rng)
	list, _ := args.Get(0).([]model.Reservation)
	return list, args.Error(1)
}

type mockReports struct{ mock.Mock }

func (m *mockReports) ForDate(ctx context.Context, day time.Time) (model.Report, error) {
	args := m.Called(ctx, day)
	return args.Get(0).(model.Report), args.Error(1)
}

func (m *mockReports) ForRange(ctx context.Context, first, last time.Time) (model.Report, error) {
	args := m.Called(ctx, first, last)
	return args.Get(0).(model.Report), args.Error(1)
}

func (m *mockReports) ForToday(ctx context.Context) (model.Report, error) {
	args := m.Called(ctx)
	return args.Get(0).(model.Report), args.Error(1)
}

func (m *mockReports) ForMonth(ctx context.Context, year, month int) (model.Report, error) {
	args := m.Called(ctx, year, month)
	return args.Get(0).(model.Report), args.Error(1)
}

func (m *mockReports) ForYear(ctx context.Context, year int) (model.Report, error) {
	args := m.Called(ctx, year)
	return args.Get(0).(model.Report), args.Error(1)
}

func (m *mockReports) YearByMonth(ctx context.Context, year int) ([]model.MonthlyReport, error) {
	args := m.Called(ctx, year)
	list, _ := args.Get(0).([]model.MonthlyReport)
	return list, args.Error(1)
}

type mockInvoices struct{ mock.Mock }

func (m *mockInvoices) Create(ctx context.Context, inv *model.Invoice) (*model.Invoice, error) {
	args := m.Called(ctx, inv)
	out, _ := args.Get(0).(*model.Invoice)
	return out, args.Error(1)
}

func (m *mockInvoices) Get(ctx context.Context, id uint64) (*model.Invoice, error) {
	args := m.Called(ctx, id)
	out, _ := args.Get(0).(*model.Invoice)
	return out, args.Error(1)
}

func (m *mockInvoices) List(ctx context.Context) ([]model.Invoice, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]model.Invoice)
	return out, args.Error(1)
}

func (m *mockInvoices) Update(ctx context.Context, inv *model.Invoice) (*model.Invoice, error) {
	args := m.Called(ctx, inv)
	out, _ := args.Get(0).(*model.Invoice)
	return out, args.Error(1)
}

func (m *mockInvoices) Delete(ctx context.Context, id uint64) error {
	return m.Called(ctx, id).Error(0)
}

type mockRooms struct{ mock.Mock }

func (m *mockRooms) List(ctx context.Context) ([]model.Room, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]model.Room)
	return out, args.Error(1)
}

func (m *mockRooms) GetByID(ctx context.Context, id uint64) (*model.Room, error) {
	args := m.Called(ctx, id)
	out, _ := args.Get(0).(*model.Room)
	return out, args.Error(1)
}

func (m *mockRooms) Create(ctx context.Context, room *model.Room) error {
	return m.Called(ctx, room).Error(0)
}

func (m *mockRooms) Update(ctx context.Context, room *model.Room) error {
	return m.Called(ctx, room).Error(0)
}

func (m *mockRooms) Delete(ctx context.Context, id uint64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockRooms) AddFeature(ctx context.Context, roomID, featureID uint64) error {
	return m.Called(ctx, roomID, featureID).Error(0)
}

func (m *mockRooms) RemoveFeature(ctx context.Context, roomID, featureID uint64) error {
	return m.Called(ctx, roomID, featureID).Error(0)
}

type mockGuests struct{ mock.Mock }

func (m *mockGuests) List(ctx context.Context) ([]model.Guest, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]model.Guest)
	return out, args.Error(1)
}

func (m *mockGuests) GetByID(ctx context.Context, id uint64) (*model.Guest, error) {
	args := m.Called(ctx, id)
	out, _ := args.Get(0).(*model.Guest)
	return out, args.Error(1)
}

func (m *mockGuests) Create(ctx context.Context, g *model.Guest) error {
	return m.Called(ctx, g).Error(0)
}

func (m *mockGuests) Update(ctx context.Context, g *model.Guest) error {
	return m.Called(ctx, g).Error(0)
}

func (m *mockGuests) Delete(ctx context.Context, id uint64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockGuests) AddFeature(ctx context.Context, guestID, featureID uint64) error {
	return m.Called(ctx, guestID, featureID).Error(0)
}

func (m *mockGuests) RemoveFeature(ctx context.Context, guestID, featureID uint64) error {
	return m.Called(ctx, guestID, featureID).Error(0)
}

type mockFeatures struct{ mock.Mock }

func (m *mockFeatures) List(ctx context.Context) ([]model.AccessibilityFeature, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]model.AccessibilityFeature)
	return out, args.Error(1)
}

func (m *mockFeatures) GetByID(ctx context.Context, id uint64) (*model.AccessibilityFeature, error) {
	args := m.Called(ctx, id)
	out, _ := args.Get(0).(*model.AccessibilityFeature)
	return out, args.Error(1)
}

func (m *mockFeatures) Create(ctx context.Context, f *model.AccessibilityFeature) error {
	return m.Called(ctx, f).Error(0)
}

func (m *mockFeatures) Update(ctx context.Context, f *model.AccessibilityFeature) error {
	return m.Called(ctx, f).Error(0)
}

func (m *mockFeatures) Delete(ctx context.Context, id uint64) error {
	return m.Called(ctx, id).Error(0)
}

type mockPricing struct{ mock.Mock }

func (m *mockPricing) List(ctx context.Context) ([]model.PricingEntry, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]model.PricingEntry)
	return out, args.Error(1)
}

func (m *mockPricing) GetByID(ctx context.Context, id uint64) (*model.PricingEntry, error) {
	args := m.Called(ctx, id)
	out, _ := args.Get(0).(*model.PricingEntry)
	return out, args.Error(1)
}

func (m *mockPricing) Create(ctx context.Context, p *model.PricingEntry) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockPricing) Update(ctx context.Context, p *model.PricingEntry) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockPricing) Delete(ctx context.Context, id uint64) error {
	return m.Called(ctx, id).Error(0)
}

type mockLinks struct{ mock.Mock }

func (m *mockLinks) ListByRoom(ctx context.Context, roomID uint64) ([]model.RoomReservationLink, error) {
	args := m.Called(ctx, roomID)
	out, _ := args.Get(0).([]model.RoomReservationLink)
	return out, args.Error(1)
}

type mockBills struct{ mock.Mock }

func (m *mockBills) ListByRoom(ctx context.Context, roomID uint64) ([]model.Bill, error) {
	args := m.Called(ctx, roomID)
	out, _ := args.Get(0).([]model.Bill)
	return out, args.Error(1)
}

func (m *mockBills) ListByPricing(ctx context.Context, pricingID uint64) ([]model.Bill, error) {
	args := m.Called(ctx, pricingID)
	out, _ := args.Get(0).([]model.Bill)
	return out, args.Error(1)
}
