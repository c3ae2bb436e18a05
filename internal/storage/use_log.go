package storage

import (
	"context"
	"fmt"
)

// RecordDailyUse inserts the (user, item, day) marker guarding the
// once-per-calendar-day consumable rule. False means today's marker already
// exists.
func (r *OwnershipRepo) RecordDailyUse(ctx context.Context, userID, itemID, day string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO consumable_uses (user_id, item_id, used_on) VALUES (?, ?, ?)
		ON CONFLICT(user_id, item_id, used_on) DO NOTHING
	`, userID, itemID, day)
	if err != nil {
		return false, fmt.Errorf("daily use insert: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("daily use rows: %w", err)
	}
	return n > 0, nil
}
