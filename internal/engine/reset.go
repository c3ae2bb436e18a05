package engine

import (
	"context"

	"github.com/nardogod/diaryquest/internal/catalog"
	"github.com/nardogod/diaryquest/internal/storage"
)

// resetProfile is the death/reset transition. It runs inside the caller's
// transaction so the trigger (fatal completion or work bonus) and the reset
// land atomically. Mission completions and badges are deliberately left
// intact: narrative progress is permanent.
func resetProfile(ctx context.Context, st *storage.Store, userID string) error {
	if err := st.Ownership.DeleteAllItems(ctx, userID); err != nil {
		return err
	}
	if err := st.Ownership.DeleteRoomsExcept(ctx, userID, catalog.DefaultHouseID, catalog.DefaultWorkRoomID); err != nil {
		return err
	}
	if _, err := st.Ownership.InsertRoomIfAbsent(ctx, userID, string(catalog.RoomHouse), catalog.DefaultHouseID); err != nil {
		return err
	}
	if _, err := st.Ownership.InsertRoomIfAbsent(ctx, userID, string(catalog.RoomWork), catalog.DefaultWorkRoomID); err != nil {
		return err
	}
	return st.Profiles.Reset(ctx, userID)
}
