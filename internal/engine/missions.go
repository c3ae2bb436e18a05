package engine

import (
	"context"
	"time"

	"github.com/nardogod/diaryquest/internal/catalog"
	"github.com/nardogod/diaryquest/internal/metrics"
	"github.com/nardogod/diaryquest/internal/storage"
)

// missionFacts are the aggregates the predicates read: current profile stats
// plus ledger history.
type missionFacts struct {
	profile      *storage.Profile
	weekCount    int
	linkedCount  int
	distinctDays int
	longestRun   int
	completed    map[string]bool
}

func missionSatisfied(id string, f *missionFacts) bool {
	switch id {
	case "weekly_10":
		return f.weekCount >= 10
	case "streak_7":
		return f.longestRun >= 7
	case "linked_5":
		return f.linkedCount >= 5
	case "active_3":
		return f.distinctDays >= 3
	case "zen":
		// Vitals missions only count once there is a real routine; a fresh
		// profile starts at perfect vitals.
		return f.distinctDays >= 3 && f.profile.Stress < 20
	case "rich":
		return f.profile.Coins >= 500
	case "level_5":
		return f.profile.Level >= 5
	case "balanced":
		return f.distinctDays >= 3 && f.profile.Health >= 70 && f.profile.Stress <= 30
	case "completionist":
		for _, tid := range catalog.TierOneMissionIDs() {
			if !f.completed[tid] {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// EvaluateMissions re-evaluates every mission predicate and applies the
// reward for each one newly satisfied. The insert-if-absent on the
// completion marker is the idempotency guard: re-running against an
// already-granted mission is a no-op. Returns the missions granted this
// pass.
func (s *Service) EvaluateMissions(ctx context.Context, userID string) ([]catalog.Mission, error) {
	now := s.now().UTC()
	weekStart := startOfWeek(now)

	var granted []catalog.Mission
	err := s.withTx(ctx, func(st *storage.Store) error {
		p, err := ensureProfile(ctx, st, userID)
		if err != nil {
			return err
		}
		completed, err := st.Missions.CompletedSet(ctx, userID)
		if err != nil {
			return err
		}
		weekCount, err := st.Activities.CountInRange(ctx, userID, weekStart, weekStart.AddDate(0, 0, 7))
		if err != nil {
			return err
		}
		linked, err := st.Activities.CountTaskLinked(ctx, userID)
		if err != nil {
			return err
		}
		days, err := st.Activities.ActiveDays(ctx, userID)
		if err != nil {
			return err
		}

		facts := &missionFacts{
			profile:      p,
			weekCount:    weekCount,
			linkedCount:  linked,
			distinctDays: len(days),
			longestRun:   longestDayRun(days),
			completed:    completed,
		}

		// Catalog order puts tier 2 after tier 1, so the completionist
		// predicate sees grants from this same pass.
		for _, m := range catalog.Missions() {
			if completed[m.ID] || !missionSatisfied(m.ID, facts) {
				continue
			}
			inserted, err := st.Missions.InsertCompletionIfAbsent(ctx, userID, m.ID, now)
			if err != nil {
				return err
			}
			completed[m.ID] = true
			if !inserted {
				continue
			}
			if m.CoinReward > 0 {
				if err := st.Profiles.CreditCoins(ctx, userID, m.CoinReward); err != nil {
					return err
				}
			}
			if m.BadgeID != "" {
				if _, err := st.Missions.InsertBadgeIfAbsent(ctx, userID, m.BadgeID, now); err != nil {
					return err
				}
			}
			if m.UnlockAvatarID != "" {
				if _, err := st.Ownership.InsertItemIfAbsent(ctx, userID, string(catalog.ItemAvatar), m.UnlockAvatarID); err != nil {
					return err
				}
			}
			granted = append(granted, m)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, m := range granted {
		metrics.MissionGrantsTotal.WithLabelValues(m.ID).Inc()
		s.log.WithUserID(userID).WithField("mission", m.ID).Info("mission granted")
	}
	return granted, nil
}

// startOfWeek returns 00:00 UTC of the Monday of now's ISO week.
func startOfWeek(now time.Time) time.Time {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// longestDayRun returns the longest streak of consecutive calendar days in a
// list of "YYYY-MM-DD" strings sorted descending.
func longestDayRun(days []string) int {
	best, run := 0, 0
	var prev time.Time
	for i, d := range days {
		t, err := time.Parse("2006-01-02", d)
		if err != nil {
			continue
		}
		if i > 0 && prev.Sub(t) == 24*time.Hour {
			run++
		} else {
			run = 1
		}
		if run > best {
			best = run
		}
		prev = t
	}
	return best
}
