package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/hotel-reservation/internal/apperrors"
	"github.com/iliyamo/hotel-reservation/internal/model"
	"github.com/iliyamo/hotel-reservation/internal/service"
)

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func do(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func date(s string) time.Time {
	d, _ := time.Parse(model.DateLayout, s)
	return d
}

func reservationEcho(svc Reservations) *echo.Echo {
	e := newEcho()
	h := NewReservationHandler(svc)
	e.POST("/v1/reservations/best", h.CreateBest)
	e.POST("/v1/reservations", h.Create)
	e.GET("/v1/reservations", h.List)
	e.GET("/v1/reservations/free-rooms", h.FreeRooms)
	e.GET("/v1/reservations/:id", h.Get)
	e.GET("/v1/reservations/:id/cost", h.Cost)
	e.PUT("/v1/reservations/:id", h.Update)
	e.DELETE("/v1/reservations/:id", h.Delete)
	return e
}

func TestCreateBestReservation(t *testing.T) {
	svc := new(mockReservations)
	want := service.BestReservationRequest{
		GuestID:         7,
		Range:           model.NewDateRange(date("2024-01-01"), date("2024-01-03")),
		NumberOfGuests:  2,
		RoomCount:       1,
		ExtraFeatureIDs: []uint64{3},
	}
	svc.On("CreateBestReservation", mock.Anything, want).
		Return(&model.Reservation{ID: 11, GuestID: 7}, nil)

	rec := do(reservationEcho(svc), http.MethodPost, "/v1/reservations/best",
		`{"guest_id":7,"start_date":"2024-01-01","end_date":"2024-01-03","number_of_guests":2,"room_count":1,"extra_feature_ids":[3]}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, float64(11), decode(t, rec)["id"])
	svc.AssertExpectations(t)
}

func TestCreateBestReservationErrors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		err    error
		status int
	}{
		{
			name:   "missing room count",
			body:   `{"guest_id":7,"start_date":"2024-01-01","end_date":"2024-01-03","number_of_guests":2}`,
			status: http.StatusBadRequest,
		},
		{
			name:   "malformed date",
			body:   `{"guest_id":7,"start_date":"01/01/2024","end_date":"2024-01-03","number_of_guests":2,"room_count":1}`,
			status: http.StatusBadRequest,
		},
		{
			name:   "inverted range",
			body:   `{"guest_id":7,"start_date":"2024-01-03","end_date":"2024-01-01","number_of_guests":2,"room_count":1}`,
			err:    apperrors.InvalidRange("end date must be after start date"),
			status: http.StatusUnprocessableEntity,
		},
		{
			name:   "not enough rooms",
			body:   `{"guest_id":7,"start_date":"2024-01-01","end_date":"2024-01-03","number_of_guests":2,"room_count":3}`,
			err:    apperrors.Conflict("requested 3 rooms but only 1 are free"),
			status: http.StatusConflict,
		},
		{
			name:   "unknown guest",
			body:   `{"guest_id":7,"start_date":"2024-01-01","end_date":"2024-01-03","number_of_guests":2,"room_count":1}`,
			err:    apperrors.NotFound("guest", 7),
			status: http.StatusNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockReservations)
			if tt.err != nil {
				svc.On("CreateBestReservation", mock.Anything, mock.Anything).Return(nil, tt.err)
			}

			rec := do(reservationEcho(svc), http.MethodPost, "/v1/reservations/best", tt.body)

			assert.Equal(t, tt.status, rec.Code)
			assert.NotEmpty(t, decode(t, rec)["error"])
			svc.AssertExpectations(t)
		})
	}
}

func TestNotFoundBodyNamesEntity(t *testing.T) {
	svc := new(mockReservations)
	svc.On("GetReservation", mock.Anything, uint64(9)).Return(nil, apperrors.NotFound("reservation", 9))

	rec := do(reservationEcho(svc), http.MethodGet, "/v1/reservations/9", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "reservation", body["entity"])
	assert.Equal(t, float64(9), body["id"])
	assert.Equal(t, "reservation 9 not found", body["error"])
}

func TestStorageErrorIsInternal(t *testing.T) {
	svc := new(mockReservations)
	svc.On("ListReservations", mock.Anything).Return(nil, errors.New("dial tcp: connection refused"))

	rec := do(reservationEcho(svc), http.MethodGet, "/v1/reservations", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal error", decode(t, rec)["error"])
}

func TestCreateReservationRequiresRooms(t *testing.T) {
	svc := new(mockReservations)

	rec := do(reservationEcho(svc), http.MethodPost, "/v1/reservations",
		`{"guest_id":1,"start_date":"2024-01-01","end_date":"2024-01-02","number_of_guests":1,"room_ids":[]}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode(t, rec)["error"], "room_ids")
	svc.AssertNotCalled(t, "CreateReservation", mock.Anything, mock.Anything)
}

func TestUpdateReservationKeepsRoomsWhenOmitted(t *testing.T) {
	svc := new(mockReservations)
	svc.On("UpdateReservation", mock.Anything, uint64(4), mock.MatchedBy(func(u service.ReservationUpdate) bool {
		return u.RoomIDs == nil && u.GuestID == 2 && u.Range.Nights() == 3
	})).Return(&model.Reservation{ID: 4}, nil)

	rec := do(reservationEcho(svc), http.MethodPut, "/v1/reservations/4",
		`{"guest_id":2,"start_date":"2024-02-01","end_date":"2024-02-04","number_of_guests":2}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestDeleteReservation(t *testing.T) {
	svc := new(mockReservations)
	svc.On("DeleteReservation", mock.Anything, uint64(5)).Return(nil)

	rec := do(reservationEcho(svc), http.MethodDelete, "/v1/reservations/5", "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	svc.AssertExpectations(t)
}

func TestInvalidPathID(t *testing.T) {
	svc := new(mockReservations)

	rec := do(reservationEcho(svc), http.MethodDelete, "/v1/reservations/abc", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReservationCost(t *testing.T) {
	svc := new(mockReservations)
	svc.On("GetReservationCost", mock.Anything, uint64(3)).Return(int64(100000), nil)

	rec := do(reservationEcho(svc), http.MethodGet, "/v1/reservations/3/cost", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(100000), decode(t, rec)["total_cost_cents"])
}

func TestFreeRooms(t *testing.T) {
	svc := new(mockReservations)
	rng := model.NewDateRange(date("2024-03-01"), date("2024-03-05"))
	svc.On("FreeRooms", mock.Anything, rng).Return([]model.Room{{ID: 1, Alias: "101"}}, nil)

	rec := do(reservationEcho(svc), http.MethodGet, "/v1/reservations/free-rooms?start_date=2024-03-01&end_date=2024-03-05", "")

	require.Equal(t, http.StatusOK, rec.Code)
	items := decode(t, rec)["items"].([]any)
	assert.Len(t, items, 1)
}

func TestListReservationFilters(t *testing.T) {
	tests := []struct {
		name  string
		query string
		setup func(m *mockReservations)
	}{
		{
			name:  "by guest",
			query: "?guest_id=8",
			setup: func(m *mockReservations) {
				m.On("ListByGuest", mock.Anything, uint64(8)).Return([]model.Reservation{{ID: 1}}, nil)
			},
		},
		{
			name:  "between dates",
			query: "?start_date=2024-01-01&end_date=2024-02-01",
			setup: func(m *mockReservations) {
				rng := model.NewDateRange(date("2024-01-01"), date("2024-02-01"))
				m.On("ListOverlapping", mock.Anything, rng).Return([]model.Reservation{{ID: 1}}, nil)
			},
		},
		{
			name:  "by month",
			query: "?year=2024&month=2",
			setup: func(m *mockReservations) {
				m.On("ListStartingIn", mock.Anything, model.Month(2024, time.February)).Return([]model.Reservation{{ID: 1}}, nil)
			},
		},
		{
			name:  "by year",
			query: "?year=2024",
			setup: func(m *mockReservations) {
				m.On("ListStartingIn", mock.Anything, model.Year(2024)).Return([]model.Reservation{{ID: 1}}, nil)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockReservations)
			tt.setup(svc)

			rec := do(reservationEcho(svc), http.MethodGet, "/v1/reservations"+tt.query, "")

			assert.Equal(t, http.StatusOK, rec.Code)
			svc.AssertExpectations(t)
		})
	}
}

func TestListReservationsRejectsBadMonth(t *testing.T) {
	rec := do(reservationEcho(new(mockReservations)), http.MethodGet, "/v1/reservations?year=2024&month=13", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func reportEcho(svc Reports) *echo.Echo {
	e := newEcho()
	h := NewReportHandler(svc)
	e.GET("/v1/reports/date/:date", h.ForDate)
	e.GET("/v1/reports/range/:start/:end", h.ForRange)
	e.GET("/v1/reports/today", h.ForToday)
	e.GET("/v1/reports/year/:year", h.YearByMonth)
	e.GET("/v1/reports/year/:year/summary", h.ForYear)
	e.GET("/v1/reports/year/:year/month/:month", h.ForMonth)
	return e
}

func TestReportForDate(t *testing.T) {
	svc := new(mockReports)
	svc.On("ForDate", mock.Anything, date("2024-01-02")).
		Return(model.Report{ReservedRoomsCount: 2, FreeRoomsCount: 8}, nil)

	rec := do(reportEcho(svc), http.MethodGet, "/v1/reports/date/2024-01-02", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, float64(2), body["reserved_rooms_count"])
	assert.Equal(t, float64(8), body["free_rooms_count"])
}

func TestReportForRangeInverted(t *testing.T) {
	svc := new(mockReports)
	svc.On("ForRange", mock.Anything, date("2024-01-05"), date("2024-01-01")).
		Return(model.Report{}, apperrors.InvalidRange("end date must not be before start date"))

	rec := do(reportEcho(svc), http.MethodGet, "/v1/reports/range/2024-01-05/2024-01-01", "")

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestReportYearByMonth(t *testing.T) {
	svc := new(mockReports)
	months := make([]model.MonthlyReport, 0, 12)
	for m := 1; m <= 12; m++ {
		months = append(months, model.MonthlyReport{Year: 2024, Month: m, Report: model.Report{FreeRoomsCount: 10}})
	}
	months[1].ReservedRoomsCount = 3
	svc.On("YearByMonth", mock.Anything, 2024).Return(months, nil)

	rec := do(reportEcho(svc), http.MethodGet, "/v1/reports/year/2024", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Len(t, body, 12)
	feb := body["2"].(map[string]any)
	assert.Equal(t, float64(3), feb["reserved_rooms_count"])
}

func TestReportForMonthValidation(t *testing.T) {
	svc := new(mockReports)
	svc.On("ForMonth", mock.Anything, 2024, 0).
		Return(model.Report{}, apperrors.Validation("month must be between 1 and 12", nil))

	rec := do(reportEcho(svc), http.MethodGet, "/v1/reports/year/2024/month/0", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func invoiceEcho(svc Invoices) *echo.Echo {
	e := newEcho()
	h := NewInvoiceHandler(svc)
	e.POST("/v1/invoices", h.Create)
	e.GET("/v1/invoices/:id", h.Get)
	e.PUT("/v1/invoices/:id", h.Update)
	return e
}

func TestCreateInvoice(t *testing.T) {
	svc := new(mockInvoices)
	svc.On("Create", mock.Anything, mock.MatchedBy(func(inv *model.Invoice) bool {
		return inv.ReservationID == 3 && inv.DateOfIssue.Equal(date("2024-01-10")) && inv.TaxID == "111"
	})).Return(&model.Invoice{ID: 1, ReservationID: 3, TotalSumCents: 50000}, nil)

	rec := do(invoiceEcho(svc), http.MethodPost, "/v1/invoices",
		`{"date_of_issue":"2024-01-10","first_name":"Jan","last_name":"Nowak","address":"Main 1","nip":"111","reservation_id":3}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, float64(50000), decode(t, rec)["total_sum_cents"])
	svc.AssertExpectations(t)
}

func TestCreateInvoiceBadDate(t *testing.T) {
	svc := new(mockInvoices)

	rec := do(invoiceEcho(svc), http.MethodPost, "/v1/invoices",
		`{"date_of_issue":"yesterday","first_name":"Jan","last_name":"Nowak","address":"Main 1","reservation_id":3}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

type catalogMocks struct {
	rooms    *mockRooms
	guests   *mockGuests
	features *mockFeatures
	pricing  *mockPricing
	links    *mockLinks
	bills    *mockBills
}

func catalogEcho() (*echo.Echo, catalogMocks) {
	m := catalogMocks{
		rooms: new(mockRooms), guests: new(mockGuests), features: new(mockFeatures),
		pricing: new(mockPricing), links: new(mockLinks), bills: new(mockBills),
	}
	e := newEcho()
	h := NewCatalogHandler(m.rooms, m.guests, m.features, m.pricing, m.links, m.bills)
	e.POST("/v1/rooms", h.CreateRoom)
	e.PUT("/v1/rooms/:id", h.UpdateRoom)
	e.POST("/v1/rooms/:id/features/:feature_id", h.AddRoomFeature)
	e.DELETE("/v1/guests/:id/features/:feature_id", h.RemoveGuestFeature)
	e.POST("/v1/guests", h.CreateGuest)
	e.DELETE("/v1/accessibility-features/:id", h.DeleteFeature)
	e.POST("/v1/pricing", h.CreatePricing)
	e.GET("/v1/rooms/:id/reservations", h.RoomReservations)
	e.GET("/v1/pricing/:id/bills", h.PricingBills)
	return e, m
}

func TestCreateRoomDuplicateAlias(t *testing.T) {
	e, m := catalogEcho()
	m.rooms.On("Create", mock.Anything, mock.Anything).Return(apperrors.Conflict("room already exists"))

	rec := do(e, http.MethodPost, "/v1/rooms", `{"alias":"101"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestUpdateRoomReturnsStoredRoom(t *testing.T) {
	e, m := catalogEcho()
	m.rooms.On("Update", mock.Anything, &model.Room{ID: 2, Alias: "202"}).Return(nil)
	m.rooms.On("GetByID", mock.Anything, uint64(2)).
		Return(&model.Room{ID: 2, Alias: "202", Features: []model.AccessibilityFeature{{ID: 1, Name: "first floor"}}}, nil)

	rec := do(e, http.MethodPut, "/v1/rooms/2", `{"alias":" 202 "}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode(t, rec)["accessibility_features"], 1)
	m.rooms.AssertExpectations(t)
}

func TestAddRoomFeatureChecksFeatureExists(t *testing.T) {
	e, m := catalogEcho()
	m.rooms.On("GetByID", mock.Anything, uint64(1)).Return(&model.Room{ID: 1}, nil)
	m.features.On("GetByID", mock.Anything, uint64(99)).Return(nil, apperrors.NotFound("accessibility feature", 99))

	rec := do(e, http.MethodPost, "/v1/rooms/1/features/99", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	m.rooms.AssertNotCalled(t, "AddFeature", mock.Anything, mock.Anything, mock.Anything)
}

func TestAddRoomFeature(t *testing.T) {
	e, m := catalogEcho()
	m.rooms.On("GetByID", mock.Anything, uint64(1)).Return(&model.Room{ID: 1, Alias: "101"}, nil)
	m.features.On("GetByID", mock.Anything, uint64(4)).Return(&model.AccessibilityFeature{ID: 4}, nil)
	m.rooms.On("AddFeature", mock.Anything, uint64(1), uint64(4)).Return(nil)

	rec := do(e, http.MethodPost, "/v1/rooms/1/features/4", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	m.rooms.AssertExpectations(t)
}

func TestRemoveGuestFeature(t *testing.T) {
	e, m := catalogEcho()
	m.guests.On("GetByID", mock.Anything, uint64(3)).Return(&model.Guest{ID: 3}, nil)
	m.features.On("GetByID", mock.Anything, uint64(4)).Return(&model.AccessibilityFeature{ID: 4}, nil)
	m.guests.On("RemoveFeature", mock.Anything, uint64(3), uint64(4)).Return(nil)

	rec := do(e, http.MethodDelete, "/v1/guests/3/features/4", "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	m.guests.AssertExpectations(t)
}

func TestCreateGuestRejectsBadEmail(t *testing.T) {
	e, m := catalogEcho()

	rec := do(e, http.MethodPost, "/v1/guests", `{"first_name":"Ann","last_name":"Lee","email":"not-an-email"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode(t, rec)["error"], "email")
	m.guests.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestDeleteReferencedFeatureConflicts(t *testing.T) {
	e, m := catalogEcho()
	m.features.On("Delete", mock.Anything, uint64(1)).
		Return(apperrors.Conflict("accessibility feature 1 is still referenced"))

	rec := do(e, http.MethodDelete, "/v1/accessibility-features/1", "")

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCreatePricingRejectsNegativePrice(t *testing.T) {
	e, m := catalogEcho()

	rec := do(e, http.MethodPost, "/v1/pricing", `{"name":"breakfast","price_cents":-1}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	m.pricing.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRoomReservations(t *testing.T) {
	e, m := catalogEcho()
	m.rooms.On("GetByID", mock.Anything, uint64(1)).Return(&model.Room{ID: 1}, nil)
	m.links.On("ListByRoom", mock.Anything, uint64(1)).
		Return([]model.RoomReservationLink{{ReservationID: 5, RoomID: 1}, {ReservationID: 8, RoomID: 1}}, nil)

	rec := do(e, http.MethodGet, "/v1/rooms/1/reservations", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode(t, rec)["items"], 2)
}

func TestPricingBillsUnknownEntry(t *testing.T) {
	e, m := catalogEcho()
	m.pricing.On("GetByID", mock.Anything, uint64(3)).Return(nil, apperrors.NotFound("pricing entry", 3))

	rec := do(e, http.MethodGet, "/v1/pricing/3/bills", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	m.bills.AssertNotCalled(t, "ListByPricing", mock.Anything, mock.Anything)
}

func TestHealth(t *testing.T) {
	e := newEcho()
	e.GET("/healthz", Health)

	rec := do(e, http.MethodGet, "/healthz", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}
