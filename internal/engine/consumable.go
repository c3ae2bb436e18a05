package engine

import (
	"context"

	"github.com/nardogod/diaryquest/internal/catalog"
	"github.com/nardogod/diaryquest/internal/storage"
)

// UseConsumable applies an owned buff: the percent effect lands as a flat
// point addition on the clamped stat. Each item id is usable at most once per
// calendar day (UTC) and consumes one unit of stock.
func (s *Service) UseConsumable(ctx context.Context, userID, itemID string) (*storage.Profile, error) {
	item, ok := catalog.ConsumableByID(itemID)
	if !ok {
		return nil, ErrUnknownItem
	}
	day := s.now().UTC().Format("2006-01-02")

	var p *storage.Profile
	err := s.withTx(ctx, func(st *storage.Store) error {
		var err error
		p, err = ensureProfile(ctx, st, userID)
		if err != nil {
			return err
		}

		q, err := st.Ownership.Quantity(ctx, userID, string(catalog.ItemConsumable), itemID)
		if err != nil {
			return err
		}
		if q <= 0 {
			return ErrNotOwned
		}

		fresh, err := st.Ownership.RecordDailyUse(ctx, userID, itemID, day)
		if err != nil {
			return err
		}
		if !fresh {
			return ErrAlreadyUsedToday
		}

		taken, err := st.Ownership.TakeStock(ctx, userID, string(catalog.ItemConsumable), itemID)
		if err != nil {
			return err
		}
		if !taken {
			return ErrNotOwned
		}

		p.Health = clamp(p.Health+item.HealthRestorePercent, 0, catalog.MaxHealth)
		p.Stress = clamp(p.Stress-item.StressReducePercent, 0, catalog.StressCap)
		return st.Profiles.Update(ctx, p)
	})
	if err != nil {
		return nil, err
	}

	s.log.WithUserID(userID).WithField("item", itemID).Info("consumable used")
	return p, nil
}
