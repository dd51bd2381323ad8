package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-reservation/internal/handler"
)

// RegisterCatalog registers CRUD for rooms, guests, accessibility features
// and pricing entries, plus feature assignment for rooms and guests.
func RegisterCatalog(e *echo.Echo, h *handler.CatalogHandler, mw Middlewares) {
	v1 := e.Group("/v1")
	w := mw.writes()

	// ---- Rooms ----
	v1.GET("/rooms", h.ListRooms)
	v1.GET("/rooms/:id", h.GetRoom)
	v1.GET("/rooms/:id/reservations", h.RoomReservations)
	v1.GET("/rooms/:id/bills", h.RoomBills)
	v1.POST("/rooms", h.CreateRoom, w...)
	v1.PUT("/rooms/:id", h.UpdateRoom, w...)
	v1.DELETE("/rooms/:id", h.DeleteRoom, w...)
	v1.POST("/rooms/:id/features/:feature_id", h.AddRoomFeature, w...)
	v1.DELETE("/rooms/:id/features/:feature_id", h.RemoveRoomFeature, w...)

	// ---- Guests ----
	v1.GET("/guests", h.ListGuests)
	v1.GET("/guests/:id", h.GetGuest)
	v1.POST("/guests", h.CreateGuest, w...)
	v1.PUT("/guests/:id", h.UpdateGuest, w...)
	v1.DELETE("/guests/:id", h.DeleteGuest, w...)
	v1.POST("/guests/:id/features/:feature_id", h.AddGuestFeature, w...)
	v1.DELETE("/guests/:id/features/:feature_id", h.RemoveGuestFeature, w...)

	// ---- Accessibility features ----
	v1.GET("/accessibility-features", h.ListFeatures)
	v1.GET("/accessibility-features/:id", h.GetFeature)
	v1.POST("/accessibility-features", h.CreateFeature, w...)
	v1.PUT("/accessibility-features/:id", h.UpdateFeature, w...)
	v1.DELETE("/accessibility-features/:id", h.DeleteFeature, w...)

	// ---- Pricing ----
	v1.GET("/pricing", h.ListPricing)
	v1.GET("/pricing/:id", h.GetPricing)
	v1.GET("/pricing/:id/bills", h.PricingBills)
	v1.POST("/pricing", h.CreatePricing, w...)
	v1.PUT("/pricing/:id", h.UpdatePricing, w...)
	v1.DELETE("/pricing/:id", h.DeletePricing, w...)
}
