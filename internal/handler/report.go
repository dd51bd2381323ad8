package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-reservation/internal/model"
)

// Reports produces occupancy and income reports.
type Reports interface {
	ForDate(ctx context.Context, day time.Time) (model.Report, error)
	ForRange(ctx context.Context, first, last time.Time) (model.Report, error)
	ForToday(ctx context.Context) (model.Report, error)
	ForMonth(ctx context.Context, year, month int) (model.Report, error)
	ForYear(ctx context.Context, year int) (model.Report, error)
	YearByMonth(ctx context.Context, year int) ([]model.MonthlyReport, error)
}

// ReportHandler serves /v1/reports.  Every route is a read and is
// eligible for the response cache.
type ReportHandler struct {
	svc Reports
}

func NewReportHandler(svc Reports) *ReportHandler {
	if svc == nil {
		panic("nil report service passed to NewReportHandler")
	}
	return &ReportHandler{svc: svc}
}

// ForDate handles GET /v1/reports/date/:date.
func (h *ReportHandler) ForDate(c echo.Context) error {
	day, err := parseDate(c.Param("date"), "date")
	if err != nil {
		return respondError(c, err)
	}
	rep, err := h.svc.ForDate(c.Request().Context(), day)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, rep)
}

// ForRange handles GET /v1/reports/range/:start/:end; both days count.
func (h *ReportHandler) ForRange(c echo.Context) error {
	first, err := parseDate(c.Param("start"), "start")
	if err != nil {
		return respondError(c, err)
	}
	last, err := parseDate(c.Param("end"), "end")
	if err != nil {
		return respondError(c, err)
	}
	rep, err := h.svc.ForRange(c.Request().Context(), first, last)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, rep)
}

// ForToday handles GET /v1/reports/today.
func (h *ReportHandler) ForToday(c echo.Context) error {
	rep, err := h.svc.ForToday(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, rep)
}

// ForMonth handles GET /v1/reports/year/:year/month/:month.
func (h *ReportHandler) ForMonth(c echo.Context) error {
	year, err := pathInt(c, "year")
	if err != nil {
		return respondError(c, err)
	}
	month, err := pathInt(c, "month")
	if err != nil {
		return respondError(c, err)
	}
	rep, err := h.svc.ForMonth(c.Request().Context(), year, month)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, rep)
}

// ForYear handles GET /v1/reports/year/:year/summary.
func (h *ReportHandler) ForYear(c echo.Context) error {
	year, err := pathInt(c, "year")
	if err != nil {
		return respondError(c, err)
	}
	rep, err := h.svc.ForYear(c.Request().Context(), year)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, rep)
}

// YearByMonth handles GET /v1/reports/year/:year.  The body maps month
// numbers 1..12 to that month's report.
func (h *ReportHandler) YearByMonth(c echo.Context) error {
	year, err := pathInt(c, "year")
	if err != nil {
		return respondError(c, err)
	}
	months, err := h.svc.YearByMonth(c.Request().Context(), year)
	if err != nil {
		return respondError(c, err)
	}
	out := make(map[int]model.Report, len(months))
	for _, m := range months {
		out[m.Month] = m.Report
	}
	return c.JSON(http.StatusOK, out)
}
