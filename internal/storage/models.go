package storage

import "time"

// Profile is the per-user progression state. Level is always derived from
// Experience; callers must keep the two consistent on every write.
type Profile struct {
	UserID     string
	Coins      int
	Level      int
	Experience int
	Health     int
	Stress     int

	CoverID    string
	AvatarID   string
	PetID      *string
	GuardianID *string

	HouseID    string
	WorkRoomID string

	LastRelaxAt     *time.Time
	LastWorkBonusAt *time.Time

	// RoomLayout is an opaque key→position map owned by the room renderer.
	RoomLayout map[string]string

	CreatedAt time.Time
}

// Activity is one append-only ledger row. At most one row may reference a
// given task id; that uniqueness is the idempotency anchor for crediting.
type Activity struct {
	ID            string
	UserID        string
	TaskID        *string
	ActivityType  string
	ScheduledDate *time.Time
	CoinsEarned   int
	XPEarned      int
	HealthChange  int
	StressChange  int
	CompletedAt   time.Time
}

// OwnedItem is set membership (user × type × id). Quantity is only meaningful
// for consumables; permanent entitlements keep it at 1.
type OwnedItem struct {
	UserID   string
	ItemType string
	ItemID   string
	Quantity int
}

type OwnedRoom struct {
	UserID   string
	RoomType string
	RoomID   string
}

type MissionCompletion struct {
	UserID      string
	MissionID   string
	CompletedAt time.Time
}

type Badge struct {
	UserID   string
	BadgeID  string
	EarnedAt time.Time
}
