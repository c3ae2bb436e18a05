package engine

import (
	"context"
	"time"

	"github.com/nardogod/diaryquest/internal/catalog"
	"github.com/nardogod/diaryquest/internal/storage"
)

const (
	sickThreshold    = 50
	burnoutThreshold = 100
)

// Status is the read model for the status surfaces (CLI, board). All fields
// are derived; nothing here mutates state beyond lazy profile creation.
type Status struct {
	Profile *storage.Profile

	XPForNextLevel   int
	XPInCurrentLevel int
	XPProgress       float64
	IsSick           bool
	IsBurnout        bool

	Badges    []string
	Completed map[string]bool

	RelaxAvailableAt     time.Time
	WorkBonusAvailableAt time.Time
}

// GetStatus assembles the full status view for a user.
func (s *Service) GetStatus(ctx context.Context, userID string) (*Status, error) {
	var st *Status
	err := s.withTx(ctx, func(store *storage.Store) error {
		p, err := ensureProfile(ctx, store, userID)
		if err != nil {
			return err
		}
		badges, err := store.Missions.ListBadges(ctx, userID)
		if err != nil {
			return err
		}
		completed, err := store.Missions.CompletedSet(ctx, userID)
		if err != nil {
			return err
		}

		st = &Status{
			Profile:          p,
			XPForNextLevel:   XPForNext(p.Level),
			XPInCurrentLevel: XPInCurrentLevel(p.Experience),
			XPProgress:       ProgressInLevel(p.Experience),
			IsSick:           p.Health <= sickThreshold,
			IsBurnout:        p.Stress >= burnoutThreshold,
			Badges:           badges,
			Completed:        completed,
		}
		if p.LastRelaxAt != nil {
			st.RelaxAvailableAt = p.LastRelaxAt.Add(CooldownWindow)
		}
		if p.LastWorkBonusAt != nil {
			st.WorkBonusAvailableAt = p.LastWorkBonusAt.Add(CooldownWindow)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return st, nil
}

// EquipmentNames resolves the profile's equipped ids to display names.
func EquipmentNames(p *storage.Profile) map[string]string {
	out := map[string]string{}
	if c, ok := catalog.CoverByID(p.CoverID); ok {
		out["cover"] = c.Name
	}
	if a, ok := catalog.AvatarByID(p.AvatarID); ok {
		out["avatar"] = a.Name
	}
	if p.PetID != nil {
		if pet, ok := catalog.PetByID(*p.PetID); ok {
			out["pet"] = pet.Name
		}
	}
	if p.GuardianID != nil {
		if g, ok := catalog.GuardianByID(*p.GuardianID); ok {
			out["guardian"] = g.Name
		}
	}
	if h, ok := catalog.HouseByID(p.HouseID); ok {
		out["house"] = h.Name
	}
	if w, ok := catalog.WorkRoomByID(p.WorkRoomID); ok {
		out["work_room"] = w.Name
	}
	return out
}
