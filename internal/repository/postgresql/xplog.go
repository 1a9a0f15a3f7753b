package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/echal/gembira-sub001/internal/domain/gamification"
	"github.com/echal/gembira-sub001/internal/pkg/database"
)

type xpLogRepository struct {
	db *database.DB
	// tz is the IANA name of the civil timezone month boundaries are drawn
	// in. Entries are stored as UTC instants; attribution must never depend
	// on the database session timezone.
	tz string
}

func NewXpLogRepository(db *database.DB, loc *time.Location) gamification.XpLogRepository {
	return &xpLogRepository{db: db, tz: loc.String()}
}

// Append implements gamification.XpLogRepository. The insert and the counter
// bump commit together or not at all; the unique index on (reason, source_id)
// turns a replayed append into a no-op.
func (x *xpLogRepository) Append(ctx context.Context, entry gamification.XpLog) (bool, error) {
	applied := false

	err := WithTransaction(ctx, x.db, func(tx pgx.Tx) error {
		insert := `
			INSERT INTO xp_logs (id, employee_id, xp_delta, reason, source_id, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (reason, source_id) DO NOTHING
		`
		tag, err := tx.Exec(ctx, insert,
			entry.ID, entry.EmployeeID, entry.XpDelta, entry.Reason, entry.SourceID, entry.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert xp log: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return nil
		}

		bump := `
			INSERT INTO employee_xp_totals (employee_id, total_xp, updated_at)
			VALUES ($1, $2, NOW())
			ON CONFLICT (employee_id)
			DO UPDATE SET total_xp = employee_xp_totals.total_xp + EXCLUDED.total_xp, updated_at = NOW()
		`
		if _, err := tx.Exec(ctx, bump, entry.EmployeeID, entry.XpDelta); err != nil {
			return fmt.Errorf("failed to update xp total: %w", err)
		}

		applied = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return applied, nil
}

// GetMaintainedTotal implements gamification.XpLogRepository.
func (x *xpLogRepository) GetMaintainedTotal(ctx context.Context, employeeID string) (int64, error) {
	q := GetQuerier(ctx, x.db)

	query := `SELECT COALESCE(total_xp, 0) FROM employee_xp_totals WHERE employee_id = $1`

	var total int64
	err := q.QueryRow(ctx, query, employeeID).Scan(&total)
	if err != nil {
		if err == pgx.ErrNoRows {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get xp total: %w", err)
	}
	return total, nil
}

// MonthlyTotals implements gamification.XpLogRepository.
func (x *xpLogRepository) MonthlyTotals(ctx context.Context, year int, month int) ([]gamification.EmployeeXpTotal, error) {
	q := GetQuerier(ctx, x.db)

	query := `
		SELECT l.employee_id, e.full_name, SUM(l.xp_delta)
		FROM xp_logs l
		JOIN employees e ON e.id = l.employee_id AND e.deleted_at IS NULL
		WHERE EXTRACT(YEAR FROM l.created_at AT TIME ZONE $3) = $1
		  AND EXTRACT(MONTH FROM l.created_at AT TIME ZONE $3) = $2
		GROUP BY l.employee_id, e.full_name
	`

	rows, err := q.Query(ctx, query, year, month, x.tz)
	if err != nil {
		return nil, fmt.Errorf("failed to get monthly xp totals: %w", err)
	}
	return collectXpTotals(rows)
}

// MaintainedTotals implements gamification.XpLogRepository.
func (x *xpLogRepository) MaintainedTotals(ctx context.Context) ([]gamification.EmployeeXpTotal, error) {
	q := GetQuerier(ctx, x.db)

	query := `
		SELECT t.employee_id, e.full_name, t.total_xp
		FROM employee_xp_totals t
		JOIN employees e ON e.id = t.employee_id AND e.deleted_at IS NULL
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get maintained xp totals: %w", err)
	}
	return collectXpTotals(rows)
}

// LedgerTotals implements gamification.XpLogRepository.
func (x *xpLogRepository) LedgerTotals(ctx context.Context) ([]gamification.EmployeeXpTotal, error) {
	q := GetQuerier(ctx, x.db)

	query := `
		SELECT l.employee_id, e.full_name, SUM(l.xp_delta)
		FROM xp_logs l
		JOIN employees e ON e.id = l.employee_id AND e.deleted_at IS NULL
		GROUP BY l.employee_id, e.full_name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to recompute xp totals: %w", err)
	}
	return collectXpTotals(rows)
}

// GlobalTotals implements gamification.XpLogRepository.
func (x *xpLogRepository) GlobalTotals(ctx context.Context) (int64, int64, error) {
	q := GetQuerier(ctx, x.db)

	query := `SELECT COALESCE(SUM(xp_delta), 0), COUNT(DISTINCT employee_id) FROM xp_logs`

	var totalXp, activeEmployees int64
	if err := q.QueryRow(ctx, query).Scan(&totalXp, &activeEmployees); err != nil {
		return 0, 0, fmt.Errorf("failed to get global xp totals: %w", err)
	}
	return totalXp, activeEmployees, nil
}

// SetMaintainedTotal implements gamification.XpLogRepository.
func (x *xpLogRepository) SetMaintainedTotal(ctx context.Context, employeeID string, total int64) error {
	q := GetQuerier(ctx, x.db)

	query := `
		INSERT INTO employee_xp_totals (employee_id, total_xp, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (employee_id)
		DO UPDATE SET total_xp = EXCLUDED.total_xp, updated_at = NOW()
	`

	if _, err := q.Exec(ctx, query, employeeID, total); err != nil {
		return fmt.Errorf("failed to set xp total: %w", err)
	}
	return nil
}

func collectXpTotals(rows pgx.Rows) ([]gamification.EmployeeXpTotal, error) {
	defer rows.Close()

	var totals []gamification.EmployeeXpTotal
	for rows.Next() {
		var total gamification.EmployeeXpTotal
		if err := rows.Scan(&total.EmployeeID, &total.EmployeeName, &total.TotalXp); err != nil {
			return nil, fmt.Errorf("failed to scan xp total: %w", err)
		}
		totals = append(totals, total)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read xp totals: %w", err)
	}
	return totals, nil
}
