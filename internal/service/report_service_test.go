package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/hotel-reservation/internal/apperrors"
	"github.com/iliyamo/hotel-reservation/internal/model"
)

func billed(nights int, roomIDs ...uint64) []model.Bill {
	bills := NightlyBills(0, roomIDs, nights, nightly.ID)
	for i := range bills {
		bills[i].Pricing = nightly
	}
	return bills
}

func TestSummarizeEmpty(t *testing.T) {
	rep := Summarize(nil, 12)

	assert.Equal(t, model.Report{FreeRoomsCount: 12}, rep)
}

func TestSummarize(t *testing.T) {
	withNeeds := &model.Guest{ID: 1, Features: []model.AccessibilityFeature{firstFloor}}
	withoutNeeds := &model.Guest{ID: 2}
	reservations := []model.Reservation{
		{ID: 1, NumberOfGuests: 2, Guest: withNeeds, ReservedRooms: []model.Room{{ID: 1}, {ID: 2}}, Bills: billed(2, 1, 2)},
		{ID: 2, NumberOfGuests: 1, Guest: withoutNeeds, ReservedRooms: []model.Room{{ID: 2}}, Bills: billed(1, 2)},
		{ID: 3, NumberOfGuests: 3, Guest: withNeeds, ReservedRooms: []model.Room{{ID: 3}}, Bills: []model.Bill{{RoomID: 3}}},
	}

	rep := Summarize(reservations, 4)

	assert.Equal(t, 3, rep.ReservedRoomsCount)
	assert.Equal(t, 1, rep.FreeRoomsCount)
	assert.Equal(t, int64(5*12000), rep.TotalIncomeCents)
	assert.Equal(t, 6, rep.TotalGuestsCount)
	assert.Equal(t, 2, rep.GuestsWithAccessibilityCount)
}

func TestSummarizeNeverNegative(t *testing.T) {
	rep := Summarize([]model.Reservation{{ReservedRooms: []model.Room{{ID: 1}, {ID: 2}}}}, 1)

	assert.Equal(t, 0, rep.FreeRoomsCount)
}

func TestReportForRangeIsInclusive(t *testing.T) {
	reader, rooms := &mockReservations{}, &mockRooms{}
	svc := NewReportService(reader, rooms)
	want := model.NewDateRange(day(2024, 6, 1), day(2024, 6, 4))
	reader.On("ListOverlapping", mock.Anything, want).Return([]model.Reservation{}, nil).Once()
	rooms.On("Count", mock.Anything).Return(10, nil).Once()

	rep, err := svc.ForRange(context.Background(), day(2024, 6, 1), day(2024, 6, 3))

	require.NoError(t, err)
	assert.Equal(t, 10, rep.FreeRoomsCount)
	mock.AssertExpectationsForObjects(t, reader, rooms)
}

func TestReportForRangeRejectsInvertedPeriod(t *testing.T) {
	svc := NewReportService(&mockReservations{}, &mockRooms{})

	_, err := svc.ForRange(context.Background(), day(2024, 6, 3), day(2024, 6, 1))

	assert.ErrorIs(t, err, apperrors.ErrInvalidRange)
}

func TestReportForToday(t *testing.T) {
	reader, rooms := &mockReservations{}, &mockRooms{}
	svc := NewReportService(reader, rooms)
	svc.now = func() time.Time { return time.Date(2024, 7, 14, 18, 30, 0, 0, time.UTC) }
	reader.On("ListOverlapping", mock.Anything, model.NewDateRange(day(2024, 7, 14), day(2024, 7, 15))).
		Return([]model.Reservation{{ID: 1, NumberOfGuests: 2, ReservedRooms: []model.Room{{ID: 1}}}}, nil).Once()
	rooms.On("Count", mock.Anything).Return(3, nil).Once()

	rep, err := svc.ForToday(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, rep.ReservedRoomsCount)
	assert.Equal(t, 2, rep.FreeRoomsCount)
	assert.Equal(t, 2, rep.TotalGuestsCount)
}

func TestReportForMonthValidatesMonth(t *testing.T) {
	svc := NewReportService(&mockReservations{}, &mockRooms{})

	_, err := svc.ForMonth(context.Background(), 2024, 13)

	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestReportYearByMonth(t *testing.T) {
	reader, rooms := &mockReservations{}, &mockRooms{}
	svc := NewReportService(reader, rooms)
	reader.On("ListStartingIn", mock.Anything, model.Year(2024)).Return([]model.Reservation{
		{ID: 1, StartDate: day(2024, 2, 10), NumberOfGuests: 2, ReservedRooms: []model.Room{{ID: 1}}, Bills: billed(1, 1)},
		{ID: 2, StartDate: day(2024, 2, 20), NumberOfGuests: 1, ReservedRooms: []model.Room{{ID: 2}}, Bills: billed(2, 2)},
		{ID: 3, StartDate: day(2024, 11, 1), NumberOfGuests: 4, ReservedRooms: []model.Room{{ID: 1}}},
	}, nil).Once()
	rooms.On("Count", mock.Anything).Return(5, nil).Once()

	months, err := svc.YearByMonth(context.Background(), 2024)

	require.NoError(t, err)
	require.Len(t, months, 12)
	assert.Equal(t, 1, months[0].Month)
	assert.Equal(t, model.Report{FreeRoomsCount: 5}, months[0].Report)
	assert.Equal(t, 2, months[1].ReservedRoomsCount)
	assert.Equal(t, int64(36000), months[1].TotalIncomeCents)
	assert.Equal(t, 4, months[10].TotalGuestsCount)
}
