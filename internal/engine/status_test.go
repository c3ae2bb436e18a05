package engine

import (
	"context"
	"testing"
)

func TestGetStatusDerivedFields(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	p, _ := svc.GetOrCreateProfile(ctx, "alice")
	p.Experience = 100 // level 2, 12 into the 91-point level
	p.Health = 50
	p.Stress = 100
	if err := svc.Store().Profiles.Update(ctx, p); err != nil {
		t.Fatalf("update: %v", err)
	}

	st, err := svc.GetStatus(ctx, "alice")
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if st.Profile.Level != 2 {
		t.Fatalf("level = %d, want 2", st.Profile.Level)
	}
	if st.XPInCurrentLevel != 12 || st.XPForNextLevel != 91 {
		t.Fatalf("xp = %d/%d, want 12/91", st.XPInCurrentLevel, st.XPForNextLevel)
	}
	if !st.IsSick {
		t.Fatal("health 50 should read as sick")
	}
	if !st.IsBurnout {
		t.Fatal("stress 100 should read as burnout")
	}
}

func TestGetStatusHealthyProfile(t *testing.T) {
	svc := newTestService(t)
	st, err := svc.GetStatus(context.Background(), "bob")
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if st.IsSick || st.IsBurnout {
		t.Fatalf("fresh profile flagged: %+v", st)
	}
	if st.XPProgress != 0 {
		t.Fatalf("progress = %f, want 0", st.XPProgress)
	}
}
