package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-reservation/internal/handler"
)

// RegisterReservations registers /v1/reservations.  Only the free-room
// listing is cached; reservation reads must see writes immediately.
func RegisterReservations(e *echo.Echo, h *handler.ReservationHandler, mw Middlewares) {
	g := e.Group("/v1/reservations")
	w := mw.writes()

	g.POST("/best", h.CreateBest, w...)
	g.POST("", h.Create, w...)
	g.PUT("/:id", h.Update, w...)
	g.DELETE("/:id", h.Delete, w...)

	g.GET("", h.List)
	g.GET("/free-rooms", h.FreeRooms, mw.reads()...)
	g.GET("/:id", h.Get)
	g.GET("/:id/cost", h.Cost)
}

// RegisterReports registers /v1/reports; every route is cached.
func RegisterReports(e *echo.Echo, h *handler.ReportHandler, mw Middlewares) {
	g := e.Group("/v1/reports", mw.reads()...)
	g.GET("/date/:date", h.ForDate)
	g.GET("/range/:start/:end", h.ForRange)
	g.GET("/today", h.ForToday)
	g.GET("/year/:year", h.YearByMonth)
	g.GET("/year/:year/summary", h.ForYear)
	g.GET("/year/:year/month/:month", h.ForMonth)
}

// RegisterInvoices registers /v1/invoices.
func RegisterInvoices(e *echo.Echo, h *handler.InvoiceHandler, mw Middlewares) {
	g := e.Group("/v1/invoices")
	w := mw.writes()
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.POST("", h.Create, w...)
	g.PUT("/:id", h.Update, w...)
	g.DELETE("/:id", h.Delete, w...)
}
