package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/echal/gembira-sub001/internal/domain/employee"
	"github.com/echal/gembira-sub001/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT e.id, e.unit_id, e.employee_code, e.full_name, e.employment_status,
			   e.created_at, e.updated_at, e.deleted_at, u.name
		FROM employees e
		JOIN units u ON u.id = e.unit_id
		WHERE e.id = $1 AND e.deleted_at IS NULL
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&emp.ID, &emp.UnitID, &emp.EmployeeCode, &emp.FullName, &emp.EmploymentStatus,
		&emp.CreatedAt, &emp.UpdatedAt, &emp.DeletedAt, &emp.UnitName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return emp, nil
}

// ListActive implements employee.EmployeeRepository.
func (e *employeeRepository) ListActive(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT e.id, e.unit_id, e.employee_code, e.full_name, e.employment_status,
			   e.created_at, e.updated_at, e.deleted_at, u.name
		FROM employees e
		JOIN units u ON u.id = e.unit_id
		WHERE e.deleted_at IS NULL AND e.employment_status = $1
		ORDER BY e.full_name ASC
	`

	rows, err := q.Query(ctx, query, employee.EmploymentStatusActive)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		err := rows.Scan(
			&emp.ID, &emp.UnitID, &emp.EmployeeCode, &emp.FullName, &emp.EmploymentStatus,
			&emp.CreatedAt, &emp.UpdatedAt, &emp.DeletedAt, &emp.UnitName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read employees: %w", err)
	}
	return employees, nil
}

// CountActive implements employee.EmployeeRepository.
func (e *employeeRepository) CountActive(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT COUNT(*) FROM employees WHERE deleted_at IS NULL AND employment_status = $1`

	var count int64
	if err := q.QueryRow(ctx, query, employee.EmploymentStatusActive).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}
	return count, nil
}
