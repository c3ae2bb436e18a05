package storage

import (
	"context"
	"database/sql"
	"fmt"
)

func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS profiles (
			user_id TEXT PRIMARY KEY,
			coins INTEGER NOT NULL DEFAULT 0,
			level INTEGER NOT NULL DEFAULT 1,
			experience INTEGER NOT NULL DEFAULT 0,
			health INTEGER NOT NULL DEFAULT 100,
			stress INTEGER NOT NULL DEFAULT 0,

			cover_id TEXT NOT NULL,
			avatar_id TEXT NOT NULL,
			pet_id TEXT,
			guardian_id TEXT,

			house_id TEXT NOT NULL,
			work_room_id TEXT NOT NULL,

			last_relax_at DATETIME,
			last_work_bonus_at DATETIME,

			room_layout TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
		// The UNIQUE on task_id is the serialization point for concurrent
		// duplicate completions; SQLite permits multiple NULLs.
		`CREATE TABLE IF NOT EXISTS activities (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			task_id TEXT UNIQUE,
			activity_type TEXT NOT NULL,
			scheduled_date DATETIME,
			coins_earned INTEGER NOT NULL,
			xp_earned INTEGER NOT NULL,
			health_change INTEGER NOT NULL,
			stress_change INTEGER NOT NULL,
			-- UTC calendar day, written from Go; the driver's timestamp
			-- binding is not parseable by SQLite's date functions.
			completed_on TEXT NOT NULL,
			completed_at DATETIME NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS owned_items (
			user_id TEXT NOT NULL,
			item_type TEXT NOT NULL,
			item_id TEXT NOT NULL,
			quantity INTEGER NOT NULL DEFAULT 1,
			PRIMARY KEY (user_id, item_type, item_id)
		);`,
		`CREATE TABLE IF NOT EXISTS owned_rooms (
			user_id TEXT NOT NULL,
			room_type TEXT NOT NULL,
			room_id TEXT NOT NULL,
			PRIMARY KEY (user_id, room_type, room_id)
		);`,
		`CREATE TABLE IF NOT EXISTS mission_completions (
			user_id TEXT NOT NULL,
			mission_id TEXT NOT NULL,
			completed_at DATETIME NOT NULL,
			PRIMARY KEY (user_id, mission_id)
		);`,
		`CREATE TABLE IF NOT EXISTS user_badges (
			user_id TEXT NOT NULL,
			badge_id TEXT NOT NULL,
			earned_at DATETIME NOT NULL,
			PRIMARY KEY (user_id, badge_id)
		);`,
		`CREATE TABLE IF NOT EXISTS consumable_uses (
			user_id TEXT NOT NULL,
			item_id TEXT NOT NULL,
			used_on TEXT NOT NULL,
			PRIMARY KEY (user_id, item_id, used_on)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_activities_user_completed ON activities(user_id, completed_at);`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
