package engine

import (
	"context"
	"errors"
	"testing"
)

func TestPurchaseItemDebitsCoins(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	p, err := svc.PurchaseItem(ctx, "alice", "cover_linen")
	if err != nil {
		t.Fatalf("buy: %v", err)
	}
	if p.Coins != 50 {
		t.Fatalf("coins = %d, want 50", p.Coins)
	}
	owned, err := svc.Store().Ownership.HasItem(ctx, "alice", "cover", "cover_linen")
	if err != nil || !owned {
		t.Fatalf("item not owned: %v %v", owned, err)
	}
}

func TestPurchaseItemAlreadyOwned(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	p, _ := svc.GetOrCreateProfile(ctx, "alice")
	p.Coins = 1000
	if err := svc.Store().Profiles.Update(ctx, p); err != nil {
		t.Fatalf("update: %v", err)
	}

	if _, err := svc.PurchaseItem(ctx, "alice", "pet_cat"); err != nil {
		t.Fatalf("first buy: %v", err)
	}
	if _, err := svc.PurchaseItem(ctx, "alice", "pet_cat"); !errors.Is(err, ErrAlreadyOwned) {
		t.Fatalf("err = %v, want ErrAlreadyOwned", err)
	}

	// The failed re-buy must not debit.
	p, _ = svc.GetOrCreateProfile(ctx, "alice")
	if p.Coins != 820 {
		t.Fatalf("coins = %d, want 820", p.Coins)
	}
}

func TestPurchaseItemInsufficientFundsRollsBack(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	// Default balance is 200; the gilded cover costs 500.
	_, err := svc.PurchaseItem(ctx, "alice", "cover_gilded")
	var funds InsufficientFundsError
	if !errors.As(err, &funds) {
		t.Fatalf("err = %v, want InsufficientFundsError", err)
	}
	if funds.Price != 500 || funds.Balance != 200 {
		t.Fatalf("funds = %+v", funds)
	}

	// The ownership insert from the failed transaction must be rolled back.
	owned, err := svc.Store().Ownership.HasItem(ctx, "alice", "cover", "cover_gilded")
	if err != nil || owned {
		t.Fatalf("ownership leaked from failed purchase: %v %v", owned, err)
	}
	p, _ := svc.GetOrCreateProfile(ctx, "alice")
	if p.Coins != 200 {
		t.Fatalf("coins = %d, want 200", p.Coins)
	}
}

func TestPurchaseItemValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.PurchaseItem(ctx, "alice", "no_such_item"); !errors.Is(err, ErrUnknownItem) {
		t.Fatalf("unknown: %v", err)
	}
	// Defaults and mission-granted avatars have no price.
	if _, err := svc.PurchaseItem(ctx, "alice", "cover_classic"); !errors.Is(err, ErrNotPurchasable) {
		t.Fatalf("default cover: %v", err)
	}
	if _, err := svc.PurchaseItem(ctx, "alice", "avatar_guardian"); !errors.Is(err, ErrNotPurchasable) {
		t.Fatalf("mission avatar: %v", err)
	}
}

func TestPurchaseGuardianRequiresMission(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	p, _ := svc.GetOrCreateProfile(ctx, "alice")
	p.Coins = 1000
	if err := svc.Store().Profiles.Update(ctx, p); err != nil {
		t.Fatalf("update: %v", err)
	}

	_, err := svc.PurchaseItem(ctx, "alice", "guardian_lantern")
	var locked MissionLockedError
	if !errors.As(err, &locked) {
		t.Fatalf("err = %v, want MissionLockedError", err)
	}
	if locked.MissionID != "streak_7" {
		t.Fatalf("mission = %s", locked.MissionID)
	}

	// Completing the mission unlocks the purchase.
	if _, err := svc.Store().Missions.InsertCompletionIfAbsent(ctx, "alice", "streak_7", svc.now()); err != nil {
		t.Fatalf("insert completion: %v", err)
	}
	if _, err := svc.PurchaseItem(ctx, "alice", "guardian_lantern"); err != nil {
		t.Fatalf("buy after unlock: %v", err)
	}
}

func TestPurchaseConsumableStockCap(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	p, _ := svc.GetOrCreateProfile(ctx, "alice")
	p.Coins = 1000
	if err := svc.Store().Profiles.Update(ctx, p); err != nil {
		t.Fatalf("update: %v", err)
	}

	for i := 0; i < 2; i++ {
		if _, err := svc.PurchaseItem(ctx, "alice", "tea_calming"); err != nil {
			t.Fatalf("buy %d: %v", i, err)
		}
	}
	if _, err := svc.PurchaseItem(ctx, "alice", "tea_calming"); !errors.Is(err, ErrStockLimit) {
		t.Fatalf("err = %v, want ErrStockLimit", err)
	}
	q, err := svc.Store().Ownership.Quantity(ctx, "alice", "consumable", "tea_calming")
	if err != nil || q != 2 {
		t.Fatalf("quantity = %d (%v), want 2", q, err)
	}
}

func TestPurchaseRoomSetsCurrent(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	p, _ := svc.GetOrCreateProfile(ctx, "alice")
	p.Coins = 1000
	if err := svc.Store().Profiles.Update(ctx, p); err != nil {
		t.Fatalf("update: %v", err)
	}

	p, err := svc.PurchaseRoom(ctx, "alice", "house_loft")
	if err != nil {
		t.Fatalf("buy loft: %v", err)
	}
	if p.HouseID != "house_loft" {
		t.Fatalf("house = %s", p.HouseID)
	}
	if p.Coins != 600 {
		t.Fatalf("coins = %d, want 600", p.Coins)
	}

	// Switching back requires ownership, which the default always has.
	p, err = svc.SetCurrentHouse(ctx, "alice", "house_studio")
	if err != nil {
		t.Fatalf("switch back: %v", err)
	}
	if p.HouseID != "house_studio" {
		t.Fatalf("house = %s", p.HouseID)
	}
	// An unowned room cannot be made current.
	if _, err := svc.SetCurrentHouse(ctx, "alice", "house_villa"); !errors.Is(err, ErrNotOwned) {
		t.Fatalf("err = %v, want ErrNotOwned", err)
	}
}

func TestEquipRequiresOwnership(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.EquipCover(ctx, "alice", "cover_linen"); !errors.Is(err, ErrNotOwned) {
		t.Fatalf("err = %v, want ErrNotOwned", err)
	}
	if _, err := svc.PurchaseItem(ctx, "alice", "cover_linen"); err != nil {
		t.Fatalf("buy: %v", err)
	}
	p, err := svc.EquipCover(ctx, "alice", "cover_linen")
	if err != nil {
		t.Fatalf("equip: %v", err)
	}
	if p.CoverID != "cover_linen" {
		t.Fatalf("cover = %s", p.CoverID)
	}
	// The default cover can always be re-equipped.
	if _, err := svc.EquipCover(ctx, "alice", "cover_classic"); err != nil {
		t.Fatalf("re-equip default: %v", err)
	}
}

func TestEquippedCoverBoostsRewards(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	p, _ := svc.GetOrCreateProfile(ctx, "alice")
	p.Coins = 1000
	if err := svc.Store().Profiles.Update(ctx, p); err != nil {
		t.Fatalf("update: %v", err)
	}
	if _, err := svc.PurchaseItem(ctx, "alice", "cover_galaxy"); err != nil {
		t.Fatalf("buy: %v", err)
	}
	if _, err := svc.EquipCover(ctx, "alice", "cover_galaxy"); err != nil {
		t.Fatalf("equip: %v", err)
	}

	// Galaxy cover: +5% XP. estudos/medium base XP is 45 → 47.
	res, err := svc.RecordTaskCompletion(ctx, "alice", CompletionInput{
		TaskID: "boosted-1", FolderType: "estudos", Importance: "medium",
	})
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if res.Reward.XP != 47 {
		t.Fatalf("xp = %d, want 47", res.Reward.XP)
	}
}
