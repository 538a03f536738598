// Package entity defines the core business entities for the domain layer.
package entity

// Person identifies one of the two household partners. The dashboard is
// hard-wired to a two-person household; every income source, bill and debt
// belongs to exactly one of them.
type Person string

const (
	PersonA Person = "person_a"
	PersonB Person = "person_b"
)

// IsValid reports whether the value is one of the two known partners.
func (p Person) IsValid() bool {
	return p == PersonA || p == PersonB
}

// Persons lists both partners in a stable order.
func Persons() []Person {
	return []Person{PersonA, PersonB}
}
