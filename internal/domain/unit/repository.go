package unit

import "context"

type UnitRepository interface {
	// GetByID retrieves a unit by ID
	GetByID(ctx context.Context, id string) (Unit, error)

	// List retrieves all units ordered by name
	List(ctx context.Context) ([]Unit, error)
}
