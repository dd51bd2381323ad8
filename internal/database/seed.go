package database

import (
	"context"
	"fmt"
)

// PricingSeeder inserts a pricing entry unless one with the name exists.
type PricingSeeder interface {
	EnsureByName(ctx context.Context, name string, priceCents int64) error
}

// SeedPricing makes sure the nightly rate entry is present.  A zero or
// negative price leaves the catalog untouched.
func SeedPricing(ctx context.Context, s PricingSeeder, name string, priceCents int64) error {
	if name == "" || priceCents <= 0 {
		return nil
	}
	if err := s.EnsureByName(ctx, name, priceCents); err != nil {
		return fmt.Errorf("seed pricing %q: %w", name, err)
	}
	return nil
}
