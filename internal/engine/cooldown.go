package engine

import (
	"context"
	"errors"
	"time"

	"github.com/nardogod/diaryquest/internal/catalog"
	"github.com/nardogod/diaryquest/internal/metrics"
	"github.com/nardogod/diaryquest/internal/storage"
)

// CooldownWindow is the minimum gap between uses of a manual bonus action.
const CooldownWindow = 3 * time.Hour

const (
	relaxStressBase = 15
	workCoinsBase   = 80
	workHealthCost  = 10
	actionRelax     = "relax"
	actionWorkBonus = "work_bonus"
)

// cooldownResult labels a failed action: a window rejection is an expected
// outcome, anything else is a storage failure.
func cooldownResult(err error) string {
	var cd CooldownError
	if errors.As(err, &cd) {
		return "rejected"
	}
	return "error"
}

// ActionResult reports a completed cooldown action. Died marks the terminal
// reset path; Profile is the post-action state either way.
type ActionResult struct {
	Died    bool
	Coins   int
	Health  int
	Stress  int
	Profile *storage.Profile
}

// UseRelax reduces stress by the flat base plus the active house's bonus.
// The timestamp claim is a single conditional write, so two concurrent calls
// cannot both pass the window check.
func (s *Service) UseRelax(ctx context.Context, userID string) (*ActionResult, error) {
	var res *ActionResult
	now := s.now().UTC()
	cutoff := now.Add(-CooldownWindow)

	err := s.withTx(ctx, func(st *storage.Store) error {
		p, err := ensureProfile(ctx, st, userID)
		if err != nil {
			return err
		}

		claimed, err := st.Profiles.ClaimRelax(ctx, userID, now, cutoff)
		if err != nil {
			return err
		}
		if !claimed {
			next := now
			if p.LastRelaxAt != nil {
				next = p.LastRelaxAt.Add(CooldownWindow)
			}
			return CooldownError{Action: actionRelax, NextAvailableAt: next}
		}
		p.LastRelaxAt = &now

		house, _ := catalog.HouseByID(p.HouseID)
		stressDrop := relaxStressBase + house.RelaxExtra

		p.Stress = clamp(p.Stress-stressDrop, 0, catalog.StressCap)
		p.Health = clamp(p.Health+house.HealthBonus, 0, catalog.MaxHealth)
		if err := st.Profiles.Update(ctx, p); err != nil {
			return err
		}

		res = &ActionResult{Stress: -stressDrop, Health: house.HealthBonus, Profile: p}
		return nil
	})
	if err != nil {
		metrics.CooldownActionsTotal.WithLabelValues(actionRelax, cooldownResult(err)).Inc()
		return nil, err
	}

	metrics.CooldownActionsTotal.WithLabelValues(actionRelax, "ok").Inc()
	s.log.WithUserID(userID).WithField("stress_drop", -res.Stress).Info("relax used")
	return res, nil
}

// UseWorkBonus grants a flat coin amount plus the active work room's extra,
// at a health cost softened by the room. Health reaching zero triggers the
// death/reset transition inside the same transaction.
func (s *Service) UseWorkBonus(ctx context.Context, userID string) (*ActionResult, error) {
	var res *ActionResult
	now := s.now().UTC()
	cutoff := now.Add(-CooldownWindow)

	err := s.withTx(ctx, func(st *storage.Store) error {
		p, err := ensureProfile(ctx, st, userID)
		if err != nil {
			return err
		}

		claimed, err := st.Profiles.ClaimWorkBonus(ctx, userID, now, cutoff)
		if err != nil {
			return err
		}
		if !claimed {
			next := now
			if p.LastWorkBonusAt != nil {
				next = p.LastWorkBonusAt.Add(CooldownWindow)
			}
			return CooldownError{Action: actionWorkBonus, NextAvailableAt: next}
		}
		p.LastWorkBonusAt = &now

		room, _ := catalog.WorkRoomByID(p.WorkRoomID)
		coins := workCoinsBase + room.WorkCoinsExtra
		healthCost := workHealthCost - room.WorkHealthExtra
		if healthCost < 0 {
			healthCost = 0
		}

		newHealth := clamp(p.Health-healthCost, 0, catalog.MaxHealth)
		if newHealth == 0 {
			if err := resetProfile(ctx, st, userID); err != nil {
				return err
			}
			reset, err := st.Profiles.Get(ctx, userID)
			if err != nil {
				return err
			}
			res = &ActionResult{Died: true, Profile: reset}
			return nil
		}

		p.Coins += coins
		p.Health = newHealth
		if err := st.Profiles.Update(ctx, p); err != nil {
			return err
		}

		res = &ActionResult{Coins: coins, Health: -healthCost, Profile: p}
		return nil
	})
	if err != nil {
		metrics.CooldownActionsTotal.WithLabelValues(actionWorkBonus, cooldownResult(err)).Inc()
		return nil, err
	}

	metrics.CooldownActionsTotal.WithLabelValues(actionWorkBonus, "ok").Inc()
	if res.Died {
		metrics.DeathsTotal.Inc()
		s.log.WithUserID(userID).Warn("work bonus drained health to zero; profile reset")
	} else {
		s.log.WithUserID(userID).WithField("coins", res.Coins).Info("work bonus used")
	}
	return res, nil
}
