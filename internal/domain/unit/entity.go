package unit

import "time"

// Unit is an organizational unit; many employees belong to one unit.
type Unit struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
