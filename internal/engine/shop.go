package engine

import (
	"context"

	"github.com/nardogod/diaryquest/internal/catalog"
	"github.com/nardogod/diaryquest/internal/metrics"
	"github.com/nardogod/diaryquest/internal/storage"
)

// purchasable is the resolved shop entry for an item id, whatever its kind.
type purchasable struct {
	itemType  catalog.ItemType
	price     int
	missionID string
}

func resolveItem(itemID string) (purchasable, bool) {
	if c, ok := catalog.CoverByID(itemID); ok {
		return purchasable{itemType: catalog.ItemCover, price: c.Price}, true
	}
	if a, ok := catalog.AvatarByID(itemID); ok {
		// Mission-unlocked avatars are granted, never sold.
		if a.MissionID != "" {
			return purchasable{itemType: catalog.ItemAvatar}, true
		}
		return purchasable{itemType: catalog.ItemAvatar, price: a.Price}, true
	}
	if p, ok := catalog.PetByID(itemID); ok {
		return purchasable{itemType: catalog.ItemPet, price: p.Price}, true
	}
	if g, ok := catalog.GuardianByID(itemID); ok {
		return purchasable{itemType: catalog.ItemGuardian, price: g.Price, missionID: g.MissionID}, true
	}
	if c, ok := catalog.ConsumableByID(itemID); ok {
		return purchasable{itemType: catalog.ItemConsumable, price: c.Price}, true
	}
	return purchasable{}, false
}

// PurchaseItem buys any catalog item. The ownership insert is the idempotency
// guard; the debit happens only after the insert created a row, and a debit
// that finds insufficient balance rolls the whole purchase back.
func (s *Service) PurchaseItem(ctx context.Context, userID, itemID string) (*storage.Profile, error) {
	entry, ok := resolveItem(itemID)
	if !ok {
		return nil, ErrUnknownItem
	}
	if entry.price <= 0 {
		return nil, ErrNotPurchasable
	}

	var p *storage.Profile
	err := s.withTx(ctx, func(st *storage.Store) error {
		var err error
		p, err = ensureProfile(ctx, st, userID)
		if err != nil {
			return err
		}

		if entry.missionID != "" {
			completed, err := st.Missions.CompletedSet(ctx, userID)
			if err != nil {
				return err
			}
			if !completed[entry.missionID] {
				return MissionLockedError{ItemID: itemID, MissionID: entry.missionID}
			}
		}

		if entry.itemType == catalog.ItemConsumable {
			added, err := st.Ownership.AddStock(ctx, userID, string(entry.itemType), itemID, catalog.MaxConsumableStock)
			if err != nil {
				return err
			}
			if !added {
				return ErrStockLimit
			}
		} else {
			inserted, err := st.Ownership.InsertItemIfAbsent(ctx, userID, string(entry.itemType), itemID)
			if err != nil {
				return err
			}
			if !inserted {
				return ErrAlreadyOwned
			}
		}

		paid, err := st.Profiles.DebitCoins(ctx, userID, entry.price)
		if err != nil {
			return err
		}
		if !paid {
			return InsufficientFundsError{Price: entry.price, Balance: p.Coins}
		}
		p.Coins -= entry.price
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.PurchasesTotal.WithLabelValues(string(entry.itemType)).Inc()
	s.log.WithUserID(userID).WithField("item", itemID).WithField("price", entry.price).Info("item purchased")
	return p, nil
}

// PurchaseRoom buys a house or work room and makes it current.
func (s *Service) PurchaseRoom(ctx context.Context, userID, roomID string) (*storage.Profile, error) {
	var (
		roomType catalog.RoomType
		price    int
	)
	if h, ok := catalog.HouseByID(roomID); ok {
		roomType, price = catalog.RoomHouse, h.Price
	} else if w, ok := catalog.WorkRoomByID(roomID); ok {
		roomType, price = catalog.RoomWork, w.Price
	} else {
		return nil, ErrUnknownRoom
	}
	if price <= 0 {
		return nil, ErrNotPurchasable
	}

	var p *storage.Profile
	err := s.withTx(ctx, func(st *storage.Store) error {
		var err error
		p, err = ensureProfile(ctx, st, userID)
		if err != nil {
			return err
		}

		inserted, err := st.Ownership.InsertRoomIfAbsent(ctx, userID, string(roomType), roomID)
		if err != nil {
			return err
		}
		if !inserted {
			return ErrAlreadyOwned
		}

		paid, err := st.Profiles.DebitCoins(ctx, userID, price)
		if err != nil {
			return err
		}
		if !paid {
			return InsufficientFundsError{Price: price, Balance: p.Coins}
		}
		p.Coins -= price

		if roomType == catalog.RoomHouse {
			p.HouseID = roomID
		} else {
			p.WorkRoomID = roomID
		}
		return st.Profiles.Update(ctx, p)
	})
	if err != nil {
		return nil, err
	}

	metrics.PurchasesTotal.WithLabelValues(string(roomType)).Inc()
	s.log.WithUserID(userID).WithField("room", roomID).WithField("price", price).Info("room purchased")
	return p, nil
}

// SetCurrentHouse switches the active house to an owned one.
func (s *Service) SetCurrentHouse(ctx context.Context, userID, houseID string) (*storage.Profile, error) {
	if _, ok := catalog.HouseByID(houseID); !ok {
		return nil, ErrUnknownRoom
	}
	return s.setCurrentRoom(ctx, userID, catalog.RoomHouse, houseID)
}

// SetCurrentWorkRoom switches the active work room to an owned one.
func (s *Service) SetCurrentWorkRoom(ctx context.Context, userID, roomID string) (*storage.Profile, error) {
	if _, ok := catalog.WorkRoomByID(roomID); !ok {
		return nil, ErrUnknownRoom
	}
	return s.setCurrentRoom(ctx, userID, catalog.RoomWork, roomID)
}

func (s *Service) setCurrentRoom(ctx context.Context, userID string, roomType catalog.RoomType, roomID string) (*storage.Profile, error) {
	var p *storage.Profile
	err := s.withTx(ctx, func(st *storage.Store) error {
		var err error
		p, err = ensureProfile(ctx, st, userID)
		if err != nil {
			return err
		}
		owned, err := st.Ownership.HasRoom(ctx, userID, string(roomType), roomID)
		if err != nil {
			return err
		}
		if !owned {
			return ErrNotOwned
		}
		if roomType == catalog.RoomHouse {
			p.HouseID = roomID
		} else {
			p.WorkRoomID = roomID
		}
		return st.Profiles.Update(ctx, p)
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

// EquipCover makes an owned cover active. The default cover needs no
// ownership row.
func (s *Service) EquipCover(ctx context.Context, userID, coverID string) (*storage.Profile, error) {
	if _, ok := catalog.CoverByID(coverID); !ok {
		return nil, ErrUnknownItem
	}
	return s.equip(ctx, userID, catalog.ItemCover, coverID, coverID == catalog.DefaultCoverID, func(p *storage.Profile) {
		p.CoverID = coverID
	})
}

func (s *Service) EquipAvatar(ctx context.Context, userID, avatarID string) (*storage.Profile, error) {
	if _, ok := catalog.AvatarByID(avatarID); !ok {
		return nil, ErrUnknownItem
	}
	return s.equip(ctx, userID, catalog.ItemAvatar, avatarID, avatarID == catalog.DefaultAvatarID, func(p *storage.Profile) {
		p.AvatarID = avatarID
	})
}

// EquipPet sets the active pet; an empty id unequips.
func (s *Service) EquipPet(ctx context.Context, userID, petID string) (*storage.Profile, error) {
	if petID == "" {
		return s.equip(ctx, userID, catalog.ItemPet, "", true, func(p *storage.Profile) {
			p.PetID = nil
		})
	}
	if _, ok := catalog.PetByID(petID); !ok {
		return nil, ErrUnknownItem
	}
	return s.equip(ctx, userID, catalog.ItemPet, petID, false, func(p *storage.Profile) {
		p.PetID = &petID
	})
}

// EquipGuardian sets the active guardian item; an empty id unequips.
func (s *Service) EquipGuardian(ctx context.Context, userID, guardianID string) (*storage.Profile, error) {
	if guardianID == "" {
		return s.equip(ctx, userID, catalog.ItemGuardian, "", true, func(p *storage.Profile) {
			p.GuardianID = nil
		})
	}
	if _, ok := catalog.GuardianByID(guardianID); !ok {
		return nil, ErrUnknownItem
	}
	return s.equip(ctx, userID, catalog.ItemGuardian, guardianID, false, func(p *storage.Profile) {
		p.GuardianID = &guardianID
	})
}

func (s *Service) equip(ctx context.Context, userID string, itemType catalog.ItemType, itemID string, skipOwnership bool, apply func(*storage.Profile)) (*storage.Profile, error) {
	var p *storage.Profile
	err := s.withTx(ctx, func(st *storage.Store) error {
		var err error
		p, err = ensureProfile(ctx, st, userID)
		if err != nil {
			return err
		}
		if !skipOwnership {
			owned, err := st.Ownership.HasItem(ctx, userID, string(itemType), itemID)
			if err != nil {
				return err
			}
			if !owned {
				return ErrNotOwned
			}
		}
		apply(p)
		return st.Profiles.Update(ctx, p)
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}
