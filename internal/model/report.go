package model

// Report summarises occupancy and income over a set of reservations.
type Report struct {
	ReservedRoomsCount           int   `json:"reserved_rooms_count"`
	FreeRoomsCount               int   `json:"free_rooms_count"`
	TotalIncomeCents             int64 `json:"total_income_cents"`
	TotalGuestsCount             int   `json:"total_guests_count"`
	GuestsWithAccessibilityCount int   `json:"total_guests_with_accessibilities_count"`
}

// MonthlyReport is one month of a per-month yearly breakdown.
type MonthlyReport struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Report
}
