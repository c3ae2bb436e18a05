package storage

import (
	"context"
	"fmt"
	"time"
)

type MissionRepo struct {
	db DBTX
}

func NewMissionRepo(db DBTX) *MissionRepo {
	return &MissionRepo{db: db}
}

// InsertCompletionIfAbsent is the idempotency guard for mission grants: the
// reward may be applied only when this returns true.
func (r *MissionRepo) InsertCompletionIfAbsent(ctx context.Context, userID, missionID string, at time.Time) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO mission_completions (user_id, mission_id, completed_at) VALUES (?, ?, ?)
		ON CONFLICT(user_id, mission_id) DO NOTHING
	`, userID, missionID, at)
	if err != nil {
		return false, fmt.Errorf("mission completion insert: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("mission completion rows: %w", err)
	}
	return n > 0, nil
}

func (r *MissionRepo) CompletedSet(ctx context.Context, userID string) (map[string]bool, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT mission_id FROM mission_completions WHERE user_id = ?
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("mission completions list: %w", err)
	}
	defer rows.Close()

	set := map[string]bool{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("mission completions scan: %w", err)
		}
		set[id] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("mission completions rows: %w", err)
	}
	return set, nil
}

func (r *MissionRepo) InsertBadgeIfAbsent(ctx context.Context, userID, badgeID string, at time.Time) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO user_badges (user_id, badge_id, earned_at) VALUES (?, ?, ?)
		ON CONFLICT(user_id, badge_id) DO NOTHING
	`, userID, badgeID, at)
	if err != nil {
		return false, fmt.Errorf("badge insert: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("badge insert rows: %w", err)
	}
	return n > 0, nil
}

func (r *MissionRepo) ListBadges(ctx context.Context, userID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT badge_id FROM user_badges WHERE user_id = ? ORDER BY earned_at
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("badges list: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("badges scan: %w", err)
		}
		out = append(out, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("badges rows: %w", err)
	}
	return out, nil
}
