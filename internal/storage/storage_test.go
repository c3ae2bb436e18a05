package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := Open(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewStore(db)
}

func TestProfileGetOrCreate(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	p, err := st.Profiles.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Nil(t, p, "missing profile reads as nil, not an error")

	p, err = st.Profiles.GetOrCreate(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, 200, p.Coins)
	assert.Equal(t, 1, p.Level)
	assert.Equal(t, 100, p.Health)
	assert.Equal(t, 0, p.Stress)

	// A second call returns the same row unchanged.
	p.Coins = 999
	require.NoError(t, st.Profiles.Update(ctx, p))
	again, err := st.Profiles.GetOrCreate(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 999, again.Coins)
}

func TestProfileRoundTripsOptionalFields(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	p, err := st.Profiles.GetOrCreate(ctx, "alice")
	require.NoError(t, err)

	pet := "pet_cat"
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	p.PetID = &pet
	p.LastRelaxAt = &at
	p.RoomLayout = map[string]string{"sofa": "2,3"}
	require.NoError(t, st.Profiles.Update(ctx, p))

	got, err := st.Profiles.Get(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, got.PetID)
	assert.Equal(t, "pet_cat", *got.PetID)
	require.NotNil(t, got.LastRelaxAt)
	assert.True(t, got.LastRelaxAt.Equal(at))
	assert.Equal(t, map[string]string{"sofa": "2,3"}, got.RoomLayout)
}

func TestClaimRelaxIsConditional(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	_, err := st.Profiles.GetOrCreate(ctx, "alice")
	require.NoError(t, err)

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	cutoff := now.Add(-3 * time.Hour)

	ok, err := st.Profiles.ClaimRelax(ctx, "alice", now, cutoff)
	require.NoError(t, err)
	assert.True(t, ok, "first claim succeeds")

	later := now.Add(time.Hour)
	ok, err = st.Profiles.ClaimRelax(ctx, "alice", later, later.Add(-3*time.Hour))
	require.NoError(t, err)
	assert.False(t, ok, "claim inside the window is refused")

	after := now.Add(3 * time.Hour)
	ok, err = st.Profiles.ClaimRelax(ctx, "alice", after, after.Add(-3*time.Hour))
	require.NoError(t, err)
	assert.True(t, ok, "claim at the boundary succeeds")
}

func TestDebitCoinsGuardsBalance(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	_, err := st.Profiles.GetOrCreate(ctx, "alice")
	require.NoError(t, err)

	ok, err := st.Profiles.DebitCoins(ctx, "alice", 150)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = st.Profiles.DebitCoins(ctx, "alice", 100)
	require.NoError(t, err)
	assert.False(t, ok, "debit past the balance is refused")

	p, err := st.Profiles.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 50, p.Coins)
}

func TestActivityInsertTaskUnique(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	task := "task-1"

	inserted, err := st.Activities.Insert(ctx, Activity{
		ID: uuid.NewString(), UserID: "alice", TaskID: &task,
		ActivityType: "trabalho", CompletedAt: time.Now().UTC(),
	})
	require.NoError(t, err)
	assert.True(t, inserted)

	inserted, err = st.Activities.Insert(ctx, Activity{
		ID: uuid.NewString(), UserID: "alice", TaskID: &task,
		ActivityType: "trabalho", CompletedAt: time.Now().UTC(),
	})
	require.NoError(t, err)
	assert.False(t, inserted, "duplicate task id is swallowed, not an error")

	has, err := st.Activities.HasTask(ctx, task)
	require.NoError(t, err)
	assert.True(t, has)

	n, err := st.Activities.CountTaskLinked(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestActivityInsertAllowsMultipleNilTasks(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		inserted, err := st.Activities.Insert(ctx, Activity{
			ID: uuid.NewString(), UserID: "alice",
			ActivityType: "work_bonus", CompletedAt: time.Now().UTC(),
		})
		require.NoError(t, err)
		assert.True(t, inserted)
	}
}

func TestActiveDaysDistinctDesc(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	for _, day := range []int{1, 1, 2, 4} {
		id := uuid.NewString()
		_, err := st.Activities.Insert(ctx, Activity{
			ID: id, UserID: "alice", ActivityType: "lazer",
			CompletedAt: time.Date(2026, 3, day, 10, 0, 0, 0, time.UTC),
		})
		require.NoError(t, err)
	}
	// 01:00+03:00 on March 5 is still March 4 in UTC; the day must collapse
	// into the existing one.
	_, err := st.Activities.Insert(ctx, Activity{
		ID: uuid.NewString(), UserID: "alice", ActivityType: "lazer",
		CompletedAt: time.Date(2026, 3, 5, 1, 0, 0, 0, time.FixedZone("east", 3*60*60)),
	})
	require.NoError(t, err)

	days, err := st.Activities.ActiveDays(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-03-04", "2026-03-02", "2026-03-01"}, days)
}

func TestStockAddRespectsCap(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		ok, err := st.Ownership.AddStock(ctx, "alice", "consumable", "tea", 2)
		require.NoError(t, err)
		assert.True(t, ok)
	}
	ok, err := st.Ownership.AddStock(ctx, "alice", "consumable", "tea", 2)
	require.NoError(t, err)
	assert.False(t, ok, "third unit refused at cap 2")

	q, err := st.Ownership.Quantity(ctx, "alice", "consumable", "tea")
	require.NoError(t, err)
	assert.Equal(t, 2, q)

	taken, err := st.Ownership.TakeStock(ctx, "alice", "consumable", "tea")
	require.NoError(t, err)
	assert.True(t, taken)

	ok, err = st.Ownership.AddStock(ctx, "alice", "consumable", "tea", 2)
	require.NoError(t, err)
	assert.True(t, ok, "slot freed by TakeStock")
}

func TestTakeStockEmpty(t *testing.T) {
	st := newTestStore(t)
	taken, err := st.Ownership.TakeStock(context.Background(), "alice", "consumable", "tea")
	require.NoError(t, err)
	assert.False(t, taken)
}

func TestRecordDailyUse(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	fresh, err := st.Ownership.RecordDailyUse(ctx, "alice", "tea", "2026-03-01")
	require.NoError(t, err)
	assert.True(t, fresh)

	fresh, err = st.Ownership.RecordDailyUse(ctx, "alice", "tea", "2026-03-01")
	require.NoError(t, err)
	assert.False(t, fresh)

	fresh, err = st.Ownership.RecordDailyUse(ctx, "alice", "tea", "2026-03-02")
	require.NoError(t, err)
	assert.True(t, fresh, "new day, new marker")
}

func TestDeleteRoomsExceptKeepsDefaults(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	for _, r := range []struct{ typ, id string }{
		{"house", "house_studio"}, {"house", "house_villa"},
		{"work", "work_corner"}, {"work", "work_office"},
	} {
		_, err := st.Ownership.InsertRoomIfAbsent(ctx, "alice", r.typ, r.id)
		require.NoError(t, err)
	}

	require.NoError(t, st.Ownership.DeleteRoomsExcept(ctx, "alice", "house_studio", "work_corner"))

	rooms, err := st.Ownership.ListRooms(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.Equal(t, "house_studio", rooms[0].RoomID)
	assert.Equal(t, "work_corner", rooms[1].RoomID)
}

func TestWithTxRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	db, err := Open(ctx, filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	store := NewStore(db)
	_, err = store.Profiles.GetOrCreate(ctx, "alice")
	require.NoError(t, err)

	wantErr := assert.AnError
	err = WithTx(ctx, db, func(s *Store) error {
		ok, err := s.Profiles.DebitCoins(ctx, "alice", 100)
		require.NoError(t, err)
		require.True(t, ok)
		return wantErr
	})
	assert.ErrorIs(t, err, wantErr)

	p, err := store.Profiles.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 200, p.Coins, "debit rolled back")
}
