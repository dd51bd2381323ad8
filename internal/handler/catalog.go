package handler

import (
	"context"

	"github.com/iliyamo/hotel-reservation/internal/model"
)

// RoomStore is the room catalog.  *repository.RoomRepo satisfies it.
type RoomStore interface {
	List(ctx context.Context) ([]model.Room, error)
	GetByID(ctx context.Context, id uint64) (*model.Room, error)
	Create(ctx context.Context, room *model.Room) error
	Update(ctx context.Context, room *model.Room) error
	Delete(ctx context.Context, id uint64) error
	AddFeature(ctx context.Context, roomID, featureID uint64) error
	RemoveFeature(ctx context.Context, roomID, featureID uint64) error
}

// GuestStore is the guest registry.  *repository.GuestRepo satisfies it.
type GuestStore interface {
	List(ctx context.Context) ([]model.Guest, error)
	GetByID(ctx context.Context, id uint64) (*model.Guest, error)
	Create(ctx context.Context, g *model.Guest) error
	Update(ctx context.Context, g *model.Guest) error
	Delete(ctx context.Context, id uint64) error
	AddFeature(ctx context.Context, guestID, featureID uint64) error
	RemoveFeature(ctx context.Context, guestID, featureID uint64) error
}

// FeatureStore is the accessibility feature catalog.
type FeatureStore interface {
	List(ctx context.Context) ([]model.AccessibilityFeature, error)
	GetByID(ctx context.Context, id uint64) (*model.AccessibilityFeature, error)
	Create(ctx context.Context, f *model.AccessibilityFeature) error
	Update(ctx context.Context, f *model.AccessibilityFeature) error
	Delete(ctx context.Context, id uint64) error
}

// PricingStore is the pricing catalog.
type PricingStore interface {
	List(ctx context.Context) ([]model.PricingEntry, error)
	GetByID(ctx context.Context, id uint64) (*model.PricingEntry, error)
	Create(ctx context.Context, p *model.PricingEntry) error
	Update(ctx context.Context, p *model.PricingEntry) error
	Delete(ctx context.Context, id uint64) error
}

// RoomLinkLister lists reservation assignments of a room.
type RoomLinkLister interface {
	ListByRoom(ctx context.Context, roomID uint64) ([]model.RoomReservationLink, error)
}

// BillLister lists stored bills by room or by pricing entry.
type BillLister interface {
	ListByRoom(ctx context.Context, roomID uint64) ([]model.Bill, error)
	ListByPricing(ctx context.Context, pricingID uint64) ([]model.Bill, error)
}

// CatalogHandler bundles the stores behind the plain CRUD routes: rooms,
// guests, accessibility features and pricing entries.  Deleting a record
// that is still referenced fails with 409.
type CatalogHandler struct {
	Rooms    RoomStore
	Guests   GuestStore
	Features FeatureStore
	Pricing  PricingStore
	Links    RoomLinkLister
	Bills    BillLister
}

// NewCatalogHandler panics if any store is nil.
func NewCatalogHandler(rooms RoomStore, guests GuestStore, features FeatureStore, pricing PricingStore, links RoomLinkLister, bills BillLister) *CatalogHandler {
	if rooms == nil || guests == nil || features == nil || pricing == nil || links == nil || bills == nil {
		panic("nil store passed to NewCatalogHandler")
	}
	return &CatalogHandler{Rooms: rooms, Guests: guests, Features: features, Pricing: pricing, Links: links, Bills: bills}
}
