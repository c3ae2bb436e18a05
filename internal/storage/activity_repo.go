package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type ActivityRepo struct {
	db DBTX
}

func NewActivityRepo(db DBTX) *ActivityRepo {
	return &ActivityRepo{db: db}
}

// Insert appends a ledger row. When the row carries a task id and another row
// already references it, nothing is written and (false, nil) is returned —
// that conflict is the crediting idempotency guard, not an error.
func (r *ActivityRepo) Insert(ctx context.Context, a Activity) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO activities (id, user_id, task_id, activity_type, scheduled_date,
			coins_earned, xp_earned, health_change, stress_change, completed_on, completed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(task_id) DO NOTHING
	`, a.ID, a.UserID, a.TaskID, a.ActivityType, a.ScheduledDate,
		a.CoinsEarned, a.XPEarned, a.HealthChange, a.StressChange,
		a.CompletedAt.UTC().Format("2006-01-02"), a.CompletedAt)
	if err != nil {
		return false, fmt.Errorf("activity insert: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("activity insert rows: %w", err)
	}
	return n > 0, nil
}

// HasTask reports whether a ledger row already references the task.
func (r *ActivityRepo) HasTask(ctx context.Context, taskID string) (bool, error) {
	row := r.db.QueryRowContext(ctx, `SELECT 1 FROM activities WHERE task_id = ? LIMIT 1`, taskID)
	var one int
	if err := row.Scan(&one); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("activity task check: %w", err)
	}
	return true, nil
}

func (r *ActivityRepo) CountInRange(ctx context.Context, userID string, from, to time.Time) (int, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM activities
		WHERE user_id = ? AND completed_at >= ? AND completed_at < ?
	`, userID, from, to)
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("activity count: %w", err)
	}
	return n, nil
}

// CountTaskLinked counts rows that reference a task.
func (r *ActivityRepo) CountTaskLinked(ctx context.Context, userID string) (int, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM activities WHERE user_id = ? AND task_id IS NOT NULL
	`, userID)
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("activity linked count: %w", err)
	}
	return n, nil
}

// ActiveDays returns the distinct calendar days (UTC, "YYYY-MM-DD") with at
// least one credited completion, most recent first. Days are read from the
// completed_on column Insert derives in Go.
func (r *ActivityRepo) ActiveDays(ctx context.Context, userID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT DISTINCT completed_on FROM activities
		WHERE user_id = ?
		ORDER BY completed_on DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("activity days: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("activity days scan: %w", err)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("activity days rows: %w", err)
	}
	return out, nil
}

func (r *ActivityRepo) ListRecent(ctx context.Context, userID string, limit int) ([]Activity, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, task_id, activity_type, scheduled_date,
			coins_earned, xp_earned, health_change, stress_change, completed_at
		FROM activities
		WHERE user_id = ?
		ORDER BY completed_at DESC
		LIMIT ?
	`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("activity list: %w", err)
	}
	defer rows.Close()

	var out []Activity
	for rows.Next() {
		var (
			a       Activity
			taskID  *string
			schedAt *time.Time
		)
		if err := rows.Scan(&a.ID, &a.UserID, &taskID, &a.ActivityType, &schedAt,
			&a.CoinsEarned, &a.XPEarned, &a.HealthChange, &a.StressChange, &a.CompletedAt); err != nil {
			return nil, fmt.Errorf("activity scan: %w", err)
		}
		a.TaskID = taskID
		a.ScheduledDate = schedAt
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("activity rows: %w", err)
	}
	return out, nil
}
