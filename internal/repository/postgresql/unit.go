package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/echal/gembira-sub001/internal/domain/unit"
	"github.com/echal/gembira-sub001/internal/pkg/database"
)

type unitRepository struct {
	db *database.DB
}

func NewUnitRepository(db *database.DB) unit.UnitRepository {
	return &unitRepository{db: db}
}

// GetByID implements unit.UnitRepository.
func (u *unitRepository) GetByID(ctx context.Context, id string) (unit.Unit, error) {
	q := GetQuerier(ctx, u.db)

	query := `SELECT id, name, created_at, updated_at FROM units WHERE id = $1`

	var un unit.Unit
	err := q.QueryRow(ctx, query, id).Scan(&un.ID, &un.Name, &un.CreatedAt, &un.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return unit.Unit{}, unit.ErrUnitNotFound
		}
		return unit.Unit{}, fmt.Errorf("failed to get unit: %w", err)
	}
	return un, nil
}

// List implements unit.UnitRepository.
func (u *unitRepository) List(ctx context.Context) ([]unit.Unit, error) {
	q := GetQuerier(ctx, u.db)

	query := `SELECT id, name, created_at, updated_at FROM units ORDER BY name ASC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list units: %w", err)
	}
	defer rows.Close()

	var units []unit.Unit
	for rows.Next() {
		var un unit.Unit
		if err := rows.Scan(&un.ID, &un.Name, &un.CreatedAt, &un.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan unit: %w", err)
		}
		units = append(units, un)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read units: %w", err)
	}
	return units, nil
}
