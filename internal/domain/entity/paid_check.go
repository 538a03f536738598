// Package entity defines the core business entities for the domain layer.
package entity

import "fmt"

// PaidCheck marks one bill as paid within one half-month pay period. The row
// is pure set membership: present means paid, absent means unpaid. BillKey is
// an opaque identifier supplied by the client (a bill UUID, or a prefixed key
// like "card-<uuid>" for synthetic debt bills).
type PaidCheck struct {
	Year    int
	Month   int
	Period  int
	BillKey string
}

// PeriodKey returns the "year-month-period" grouping key used both by the
// fallback cache and by API responses.
func (c PaidCheck) PeriodKey() string {
	return fmt.Sprintf("%d-%d-%d", c.Year, c.Month, c.Period)
}

// Valid reports whether the check addresses a well-formed period.
func (c PaidCheck) Valid() bool {
	return c.Year >= 1970 && c.Month >= 1 && c.Month <= 12 &&
		(c.Period == 1 || c.Period == 2) && c.BillKey != ""
}
