package model

// Guest is a hotel customer.  Features hold the guest's stored
// accessibility preferences, loaded from `guest_accessibility_features`.
type Guest struct {
	ID          uint64                 `db:"id" json:"id"`
	FirstName   string                 `db:"first_name" json:"first_name"`
	LastName    string                 `db:"last_name" json:"last_name"`
	Address     string                 `db:"address" json:"address"`
	City        string                 `db:"city" json:"city"`
	Country     string                 `db:"country" json:"country"`
	ZipCode     string                 `db:"zip_code" json:"zip_code"`
	PhoneNumber string                 `db:"phone_number" json:"phone_number"`
	Email       string                 `db:"email" json:"email"`
	Features    []AccessibilityFeature `db:"-" json:"accessibility_features"`
}

// HasAccessibilityNeeds reports whether the guest has at least one
// stored feature.
func (g *Guest) HasAccessibilityNeeds() bool {
	return g != nil && len(g.Features) > 0
}
