package model

import "time"

// Issuer holds the hotel's own details printed on every invoice.
type Issuer struct {
	Name    string `json:"company_name"`
	Address string `json:"company_address"`
	TaxID   string `json:"company_nip"`
	Phone   string `json:"company_phone"`
	Email   string `json:"company_email"`
}

// Invoice is a billing document for a reservation.  TotalSumCents and
// Reservation are never stored; they are recomputed on every read from
// the reservation's bills.
//
// Fields:
//  ID            – primary key identifier.
//  DateOfIssue   – issue date.
//  FirstName     – billed person's first name.
//  LastName      – billed person's last name.
//  Address       – billing address.
//  TaxID         – billed party tax identifier (NIP).
//  ReservationID – reservation being invoiced.
type Invoice struct {
	ID            uint64    `db:"id" json:"id"`                         // invoices.id
	DateOfIssue   time.Time `db:"date_of_issue" json:"date_of_issue"`   // invoices.date_of_issue
	FirstName     string    `db:"first_name" json:"first_name"`         // invoices.first_name
	LastName      string    `db:"last_name" json:"last_name"`           // invoices.last_name
	Address       string    `db:"address" json:"address"`               // invoices.address
	TaxID         string    `db:"nip" json:"nip"`                       // invoices.nip
	ReservationID uint64    `db:"reservation_id" json:"reservation_id"` // invoices.reservation_id

	TotalSumCents int64        `db:"-" json:"total_sum_cents"`
	Reservation   *Reservation `db:"-" json:"reservation,omitempty"`
	Issuer        Issuer       `db:"-" json:"issuer"`
}
