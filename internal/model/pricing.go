package model

// PricingEntry is a named price such as the nightly rate or an add-on
// fee.  Name is unique and is used as a lookup key.
//
// Fields:
//  ID         – primary key identifier.
//  Name       – unique lookup name.
//  PriceCents – price in cents.
type PricingEntry struct {
	ID         uint64 `db:"id" json:"id"`                   // pricing_entries.id
	Name       string `db:"name" json:"name"`               // pricing_entries.name
	PriceCents int64  `db:"price_cents" json:"price_cents"` // pricing_entries.price_cents
}
