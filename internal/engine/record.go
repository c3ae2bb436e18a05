package engine

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nardogod/diaryquest/internal/catalog"
	"github.com/nardogod/diaryquest/internal/metrics"
	"github.com/nardogod/diaryquest/internal/storage"
)

// Outcome tags the terminal state of a credit attempt. Callers must handle
// every variant; AlreadyCredited and Died are successes, not errors.
type Outcome string

const (
	OutcomeCredited        Outcome = "credited"
	OutcomeAlreadyCredited Outcome = "already_credited"
	OutcomeDied            Outcome = "died"
)

// CompletionInput is the context the task/event subsystem supplies for a
// completed task. TaskID must be stable and unique per real-world completion.
type CompletionInput struct {
	TaskID        string
	FolderType    string
	Importance    string
	ScheduledDate *time.Time
}

type CreditResult struct {
	Outcome       Outcome
	PreviousLevel int
	NewLevel      int
	LevelUp       bool
	XPEarned      int
	Reward        catalog.Reward
}

// RecordTaskCompletion converts a "task completed" signal into durable state.
// Crediting the same task id twice yields AlreadyCredited and no mutation, so
// callers can retry freely. The ledger insert and the profile update commit
// as one transaction; a failure after the ledger reservation rolls both back.
func (s *Service) RecordTaskCompletion(ctx context.Context, userID string, in CompletionInput) (*CreditResult, error) {
	taskID := strings.TrimSpace(in.TaskID)
	if taskID == "" {
		return nil, ErrTaskIDRequired
	}

	folder := catalog.ParseFolderType(in.FolderType)
	importance := catalog.ParseImportance(in.Importance)
	now := s.now().UTC()

	var res *CreditResult
	err := s.withTx(ctx, func(st *storage.Store) error {
		// Fast path: a prior credit for this task means no mutation at all,
		// not even the lazy profile creation.
		done, err := st.Activities.HasTask(ctx, taskID)
		if err != nil {
			return err
		}
		if done {
			res = &CreditResult{Outcome: OutcomeAlreadyCredited}
			return nil
		}

		p, err := ensureProfile(ctx, st, userID)
		if err != nil {
			return err
		}

		raw := ComputeReward(folder, importance)
		reward := ApplyBonuses(raw, equippedBonuses(p.CoverID, p.GuardianID))

		inserted, err := st.Activities.Insert(ctx, storage.Activity{
			ID:            uuid.NewString(),
			UserID:        userID,
			TaskID:        &taskID,
			ActivityType:  string(folder),
			ScheduledDate: in.ScheduledDate,
			CoinsEarned:   reward.Coins,
			XPEarned:      reward.XP,
			HealthChange:  reward.Health,
			StressChange:  reward.Stress,
			CompletedAt:   now,
		})
		if err != nil {
			return err
		}
		if !inserted {
			// Lost the race against a concurrent duplicate.
			res = &CreditResult{Outcome: OutcomeAlreadyCredited}
			return nil
		}

		newXP := p.Experience + reward.XP
		newLevel := LevelForXP(newXP)
		newHealth := clamp(p.Health+reward.Health, 0, catalog.MaxHealth)
		newStress := clamp(p.Stress+reward.Stress, 0, catalog.StressCap)

		if newHealth == 0 {
			// The completion stays on the ledger (a retry must observe
			// AlreadyCredited) but the profile takes the terminal reset
			// instead of the normal update.
			if err := resetProfile(ctx, st, userID); err != nil {
				return err
			}
			res = &CreditResult{
				Outcome:       OutcomeDied,
				PreviousLevel: p.Level,
				NewLevel:      1,
				XPEarned:      reward.XP,
				Reward:        reward,
			}
			return nil
		}

		prevLevel := p.Level
		p.Coins += reward.Coins
		p.Experience = newXP
		p.Level = newLevel
		p.Health = newHealth
		p.Stress = newStress
		if err := st.Profiles.Update(ctx, p); err != nil {
			return err
		}

		res = &CreditResult{
			Outcome:       OutcomeCredited,
			PreviousLevel: prevLevel,
			NewLevel:      newLevel,
			LevelUp:       newLevel > prevLevel,
			XPEarned:      reward.XP,
			Reward:        reward,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.CreditsTotal.WithLabelValues(string(res.Outcome)).Inc()
	switch res.Outcome {
	case OutcomeCredited:
		s.log.WithUserID(userID).WithField("task_id", taskID).
			WithField("xp", res.XPEarned).WithField("coins", res.Reward.Coins).
			Info("task completion credited")
		// Missions are evaluated after every credited completion; grants run
		// in their own transaction and are idempotent on their own.
		if _, err := s.EvaluateMissions(ctx, userID); err != nil {
			s.log.WithUserID(userID).WithError(err).Warn("mission evaluation failed")
		}
	case OutcomeDied:
		metrics.DeathsTotal.Inc()
		s.log.WithUserID(userID).WithField("task_id", taskID).Warn("health reached zero; profile reset")
	}

	return res, nil
}
