package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/nardogod/diaryquest/internal/metrics"
)

func TestUseRelaxReducesStress(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	p, _ := svc.GetOrCreateProfile(ctx, "alice")
	p.Stress = 40
	if err := svc.Store().Profiles.Update(ctx, p); err != nil {
		t.Fatalf("update: %v", err)
	}

	res, err := svc.UseRelax(ctx, "alice")
	if err != nil {
		t.Fatalf("relax: %v", err)
	}
	if res.Stress != -15 {
		t.Fatalf("stress delta = %d, want -15", res.Stress)
	}
	if res.Profile.Stress != 25 {
		t.Fatalf("stress = %d, want 25", res.Profile.Stress)
	}
}

func TestUseRelaxCooldownBoundary(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	setNow(svc, start)
	if _, err := svc.UseRelax(ctx, "alice"); err != nil {
		t.Fatalf("first relax: %v", err)
	}

	// One second before the window closes: rejected, with the exact retry
	// time attached.
	setNow(svc, start.Add(CooldownWindow-time.Second))
	_, err := svc.UseRelax(ctx, "alice")
	var cd CooldownError
	if !errors.As(err, &cd) {
		t.Fatalf("err = %v, want CooldownError", err)
	}
	if !cd.NextAvailableAt.Equal(start.Add(CooldownWindow)) {
		t.Fatalf("next available = %s, want %s", cd.NextAvailableAt, start.Add(CooldownWindow))
	}

	// Exactly at the boundary the action is available again.
	setNow(svc, start.Add(CooldownWindow))
	if _, err := svc.UseRelax(ctx, "alice"); err != nil {
		t.Fatalf("relax at boundary: %v", err)
	}
}

func TestUseWorkBonusEarnsCoins(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	res, err := svc.UseWorkBonus(ctx, "alice")
	if err != nil {
		t.Fatalf("work: %v", err)
	}
	if res.Coins != 80 {
		t.Fatalf("coins delta = %d, want 80", res.Coins)
	}
	if res.Health != -10 {
		t.Fatalf("health delta = %d, want -10", res.Health)
	}
	if res.Profile.Coins != 280 || res.Profile.Health != 90 {
		t.Fatalf("profile = %+v", res.Profile)
	}

	// Second call inside the window is rejected.
	_, err = svc.UseWorkBonus(ctx, "alice")
	var cd CooldownError
	if !errors.As(err, &cd) {
		t.Fatalf("err = %v, want CooldownError", err)
	}
}

func TestUseWorkBonusDeath(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	p, _ := svc.GetOrCreateProfile(ctx, "alice")
	p.Health = 10
	p.Coins = 900
	if err := svc.Store().Profiles.Update(ctx, p); err != nil {
		t.Fatalf("update: %v", err)
	}

	res, err := svc.UseWorkBonus(ctx, "alice")
	if err != nil {
		t.Fatalf("work: %v", err)
	}
	if !res.Died {
		t.Fatalf("expected death, got %+v", res)
	}
	if res.Profile.Health != 100 || res.Profile.Coins != 200 {
		t.Fatalf("profile not reset: %+v", res.Profile)
	}
}

func TestCooldownsAreIndependent(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.UseRelax(ctx, "alice"); err != nil {
		t.Fatalf("relax: %v", err)
	}
	// Relax being on cooldown must not block the work bonus.
	if _, err := svc.UseWorkBonus(ctx, "alice"); err != nil {
		t.Fatalf("work: %v", err)
	}
}

func TestCooldownMetricsSeparateRejectionsFromFailures(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	// The collectors are process-global, so assert on deltas.
	rejected := metrics.CooldownActionsTotal.WithLabelValues("relax", "rejected")
	failed := metrics.CooldownActionsTotal.WithLabelValues("relax", "error")
	rejBefore := testutil.ToFloat64(rejected)
	failBefore := testutil.ToFloat64(failed)

	if _, err := svc.UseRelax(ctx, "alice"); err != nil {
		t.Fatalf("first relax: %v", err)
	}
	if _, err := svc.UseRelax(ctx, "alice"); err == nil {
		t.Fatal("expected cooldown rejection")
	}
	if got := testutil.ToFloat64(rejected) - rejBefore; got != 1 {
		t.Fatalf("rejected delta = %v, want 1", got)
	}
	if got := testutil.ToFloat64(failed) - failBefore; got != 0 {
		t.Fatalf("error delta = %v, want 0", got)
	}

	// A storage failure must not count as a rejection.
	_ = svc.db.Close()
	if _, err := svc.UseRelax(ctx, "alice"); err == nil {
		t.Fatal("expected storage failure")
	}
	if got := testutil.ToFloat64(rejected) - rejBefore; got != 1 {
		t.Fatalf("rejected delta after failure = %v, want 1", got)
	}
	if got := testutil.ToFloat64(failed) - failBefore; got != 1 {
		t.Fatalf("error delta after failure = %v, want 1", got)
	}
}

func TestRoomModifiersApplyToActions(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	p, _ := svc.GetOrCreateProfile(ctx, "alice")
	p.Coins = 5000
	if err := svc.Store().Profiles.Update(ctx, p); err != nil {
		t.Fatalf("update: %v", err)
	}
	if _, err := svc.PurchaseRoom(ctx, "alice", "house_villa"); err != nil {
		t.Fatalf("buy villa: %v", err)
	}
	if _, err := svc.PurchaseRoom(ctx, "alice", "work_atelier"); err != nil {
		t.Fatalf("buy atelier: %v", err)
	}

	p, _ = svc.GetOrCreateProfile(ctx, "alice")
	p.Stress = 60
	p.Health = 80
	if err := svc.Store().Profiles.Update(ctx, p); err != nil {
		t.Fatalf("update: %v", err)
	}

	relax, err := svc.UseRelax(ctx, "alice")
	if err != nil {
		t.Fatalf("relax: %v", err)
	}
	// Villa: 15+10 stress relief, +4 health.
	if relax.Stress != -25 || relax.Health != 4 {
		t.Fatalf("relax with villa = %+v", relax)
	}

	work, err := svc.UseWorkBonus(ctx, "alice")
	if err != nil {
		t.Fatalf("work: %v", err)
	}
	// Atelier: 80+45 coins, health cost 10-6.
	if work.Coins != 125 || work.Health != -4 {
		t.Fatalf("work with atelier = %+v", work)
	}
}
