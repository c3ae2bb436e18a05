package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nardogod/diaryquest/internal/catalog"
)

type ProfileRepo struct {
	db DBTX
}

func NewProfileRepo(db DBTX) *ProfileRepo {
	return &ProfileRepo{db: db}
}

const profileColumns = `user_id, coins, level, experience, health, stress,
	cover_id, avatar_id, pet_id, guardian_id, house_id, work_room_id,
	last_relax_at, last_work_bonus_at, room_layout, created_at`

func (r *ProfileRepo) Get(ctx context.Context, userID string) (*Profile, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+profileColumns+` FROM profiles WHERE user_id = ?`, userID)
	return scanProfile(row)
}

// GetOrCreate lazily creates the profile with the fixed defaults. The insert
// ignores conflicts so two concurrent first touches cannot fail each other.
func (r *ProfileRepo) GetOrCreate(ctx context.Context, userID string) (*Profile, error) {
	p, err := r.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if p != nil {
		return p, nil
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO profiles (user_id, coins, level, experience, health, stress, cover_id, avatar_id, house_id, work_room_id)
		VALUES (?, ?, 1, 0, ?, 0, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO NOTHING
	`, userID, catalog.DefaultCoins, catalog.MaxHealth,
		catalog.DefaultCoverID, catalog.DefaultAvatarID,
		catalog.DefaultHouseID, catalog.DefaultWorkRoomID)
	if err != nil {
		return nil, fmt.Errorf("profile insert: %w", err)
	}
	return r.Get(ctx, userID)
}

func (r *ProfileRepo) Update(ctx context.Context, p *Profile) error {
	layout, err := marshalLayout(p.RoomLayout)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
		UPDATE profiles
		SET coins = ?, level = ?, experience = ?, health = ?, stress = ?,
			cover_id = ?, avatar_id = ?, pet_id = ?, guardian_id = ?,
			house_id = ?, work_room_id = ?,
			last_relax_at = ?, last_work_bonus_at = ?, room_layout = ?
		WHERE user_id = ?
	`, p.Coins, p.Level, p.Experience, p.Health, p.Stress,
		p.CoverID, p.AvatarID, p.PetID, p.GuardianID,
		p.HouseID, p.WorkRoomID,
		p.LastRelaxAt, p.LastWorkBonusAt, layout, p.UserID)
	if err != nil {
		return fmt.Errorf("profile update: %w", err)
	}
	return nil
}

// ClaimRelax atomically sets last_relax_at to now if the cooldown has
// elapsed. Returns false when another caller already holds the window.
func (r *ProfileRepo) ClaimRelax(ctx context.Context, userID string, now, cutoff time.Time) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE profiles SET last_relax_at = ?
		WHERE user_id = ? AND (last_relax_at IS NULL OR last_relax_at <= ?)
	`, now, userID, cutoff)
	if err != nil {
		return false, fmt.Errorf("claim relax: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("claim relax rows: %w", err)
	}
	return n > 0, nil
}

// ClaimWorkBonus is the Work Bonus counterpart of ClaimRelax.
func (r *ProfileRepo) ClaimWorkBonus(ctx context.Context, userID string, now, cutoff time.Time) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE profiles SET last_work_bonus_at = ?
		WHERE user_id = ? AND (last_work_bonus_at IS NULL OR last_work_bonus_at <= ?)
	`, now, userID, cutoff)
	if err != nil {
		return false, fmt.Errorf("claim work bonus: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("claim work bonus rows: %w", err)
	}
	return n > 0, nil
}

// DebitCoins debits price only when the balance covers it.
func (r *ProfileRepo) DebitCoins(ctx context.Context, userID string, price int) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE profiles SET coins = coins - ? WHERE user_id = ? AND coins >= ?
	`, price, userID, price)
	if err != nil {
		return false, fmt.Errorf("debit coins: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("debit coins rows: %w", err)
	}
	return n > 0, nil
}

func (r *ProfileRepo) CreditCoins(ctx context.Context, userID string, amount int) error {
	_, err := r.db.ExecContext(ctx, `UPDATE profiles SET coins = coins + ? WHERE user_id = ?`, amount, userID)
	if err != nil {
		return fmt.Errorf("credit coins: %w", err)
	}
	return nil
}

// Reset restores the profile row to the creation defaults. Ownership and
// mission history are handled by their own repos.
func (r *ProfileRepo) Reset(ctx context.Context, userID string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE profiles
		SET coins = ?, level = 1, experience = 0, health = ?, stress = 0,
			cover_id = ?, avatar_id = ?, pet_id = NULL, guardian_id = NULL,
			house_id = ?, work_room_id = ?,
			last_relax_at = NULL, last_work_bonus_at = NULL, room_layout = NULL
		WHERE user_id = ?
	`, catalog.DefaultCoins, catalog.MaxHealth,
		catalog.DefaultCoverID, catalog.DefaultAvatarID,
		catalog.DefaultHouseID, catalog.DefaultWorkRoomID, userID)
	if err != nil {
		return fmt.Errorf("profile reset: %w", err)
	}
	return nil
}

func marshalLayout(layout map[string]string) (*string, error) {
	if len(layout) == 0 {
		return nil, nil
	}
	data, err := json.Marshal(layout)
	if err != nil {
		return nil, fmt.Errorf("marshal room layout: %w", err)
	}
	s := string(data)
	return &s, nil
}

func scanProfile(row *sql.Row) (*Profile, error) {
	var (
		p          Profile
		petID      sql.NullString
		guardianID sql.NullString
		relaxAt    sql.NullTime
		workAt     sql.NullTime
		layoutRaw  sql.NullString
	)

	if err := row.Scan(
		&p.UserID, &p.Coins, &p.Level, &p.Experience, &p.Health, &p.Stress,
		&p.CoverID, &p.AvatarID, &petID, &guardianID, &p.HouseID, &p.WorkRoomID,
		&relaxAt, &workAt, &layoutRaw, &p.CreatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("profile scan: %w", err)
	}

	if petID.Valid {
		v := petID.String
		p.PetID = &v
	}
	if guardianID.Valid {
		v := guardianID.String
		p.GuardianID = &v
	}
	if relaxAt.Valid {
		v := relaxAt.Time
		p.LastRelaxAt = &v
	}
	if workAt.Valid {
		v := workAt.Time
		p.LastWorkBonusAt = &v
	}
	if layoutRaw.Valid && layoutRaw.String != "" {
		if err := json.Unmarshal([]byte(layoutRaw.String), &p.RoomLayout); err != nil {
			return nil, fmt.Errorf("unmarshal room layout: %w", err)
		}
	}
	return &p, nil
}
