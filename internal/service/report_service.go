package service

import (
	"context"
	"time"

	"github.com/iliyamo/hotel-reservation/internal/apperrors"
	"github.com/iliyamo/hotel-reservation/internal/model"
)

// ReservationReader returns hydrated reservations for a period.
type ReservationReader interface {
	ListOverlapping(ctx context.Context, rng model.DateRange) ([]model.Reservation, error)
	ListStartingIn(ctx context.Context, rng model.DateRange) ([]model.Reservation, error)
}

// RoomCounter reports the size of the hotel.
type RoomCounter interface {
	Count(ctx context.Context) (int, error)
}

// ReportService builds occupancy and income reports.  Day and range
// reports cover reservations occupying any night of the period; month and
// year reports cover reservations starting in the period.
type ReportService struct {
	reservations ReservationReader
	rooms        RoomCounter
	now          func() time.Time
}

// NewReportService wires the report builder.
func NewReportService(reservations ReservationReader, rooms RoomCounter) *ReportService {
	return &ReportService{reservations: reservations, rooms: rooms, now: time.Now}
}

// Summarize folds reservations into a report.  Reserved rooms are counted
// once per distinct room; free rooms never go below zero.
func Summarize(reservations []model.Reservation, allRooms int) model.Report {
	var rep model.Report
	rooms := make(map[uint64]struct{})
	for i := range reservations {
		r := &reservations[i]
		for _, room := range r.ReservedRooms {
			rooms[room.ID] = struct{}{}
		}
		rep.TotalIncomeCents += model.ReservationCost(r)
		rep.TotalGuestsCount += r.NumberOfGuests
		if r.Guest.HasAccessibilityNeeds() {
			rep.GuestsWithAccessibilityCount++
		}
	}
	rep.ReservedRoomsCount = len(rooms)
	rep.FreeRoomsCount = allRooms - rep.ReservedRoomsCount
	if rep.FreeRoomsCount < 0 {
		rep.FreeRoomsCount = 0
	}
	return rep
}

// ForDate reports on the single night starting at day.
func (s *ReportService) ForDate(ctx context.Context, day time.Time) (model.Report, error) {
	return s.overlapping(ctx, model.InclusiveDays(day, day))
}

// ForRange reports on the closed period [first, last].
func (s *ReportService) ForRange(ctx context.Context, first, last time.Time) (model.Report, error) {
	if model.Day(last).Before(model.Day(first)) {
		return model.Report{}, apperrors.InvalidRange("end date must not be before start date")
	}
	return s.overlapping(ctx, model.InclusiveDays(first, last))
}

// ForToday reports on the current UTC day.
func (s *ReportService) ForToday(ctx context.Context) (model.Report, error) {
	return s.ForDate(ctx, s.now().UTC())
}

// ForMonth reports on reservations starting in the given month.
func (s *ReportService) ForMonth(ctx context.Context, year, month int) (model.Report, error) {
	if month < 1 || month > 12 {
		return model.Report{}, apperrors.Validation("month must be between 1 and 12", nil)
	}
	return s.starting(ctx, model.Month(year, time.Month(month)))
}

// ForYear reports on reservations starting in the given year.
func (s *ReportService) ForYear(ctx context.Context, year int) (model.Report, error) {
	return s.starting(ctx, model.Year(year))
}

// YearByMonth returns twelve monthly reports for the year.
func (s *ReportService) YearByMonth(ctx context.Context, year int) ([]model.MonthlyReport, error) {
	list, err := s.reservations.ListStartingIn(ctx, model.Year(year))
	if err != nil {
		return nil, err
	}
	total, err := s.rooms.Count(ctx)
	if err != nil {
		return nil, err
	}
	byMonth := make(map[time.Month][]model.Reservation, 12)
	for _, r := range list {
		byMonth[r.StartDate.Month()] = append(byMonth[r.StartDate.Month()], r)
	}
	out := make([]model.MonthlyReport, 0, 12)
	for m := time.January; m <= time.December; m++ {
		out = append(out, model.MonthlyReport{Year: year, Month: int(m), Report: Summarize(byMonth[m], total)})
	}
	return out, nil
}

func (s *ReportService) overlapping(ctx context.Context, rng model.DateRange) (model.Report, error) {
	list, err := s.reservations.ListOverlapping(ctx, rng)
	if err != nil {
		return model.Report{}, err
	}
	return s.summarize(ctx, list)
}

func (s *ReportService) starting(ctx context.Context, rng model.DateRange) (model.Report, error) {
	list, err := s.reservations.ListStartingIn(ctx, rng)
	if err != nil {
		return model.Report{}, err
	}
	return s.summarize(ctx, list)
}

func (s *ReportService) summarize(ctx context.Context, list []model.Reservation) (model.Report, error) {
	total, err := s.rooms.Count(ctx)
	if err != nil {
		return model.Report{}, err
	}
	return Summarize(list, total), nil
}
