package engine

import (
	"errors"
	"fmt"
	"time"
)

// Domain rejections. These are expected business outcomes, distinct from
// storage failures; callers branch on them with errors.Is/errors.As.
var (
	ErrUnknownItem      = errors.New("unknown item")
	ErrUnknownRoom      = errors.New("unknown room")
	ErrNotPurchasable   = errors.New("item is not purchasable")
	ErrAlreadyOwned     = errors.New("already owned")
	ErrNotOwned         = errors.New("not owned")
	ErrStockLimit       = errors.New("stock limit reached")
	ErrAlreadyUsedToday = errors.New("already used today")
	ErrTaskIDRequired   = errors.New("task id is required")
)

// CooldownError rejects a manual action attempted before its window elapsed.
type CooldownError struct {
	Action          string
	NextAvailableAt time.Time
}

func (e CooldownError) Error() string {
	return fmt.Sprintf("%s already used; available again at %s", e.Action, e.NextAvailableAt.Format(time.RFC3339))
}

// InsufficientFundsError carries the price/balance pair for the caller's
// message.
type InsufficientFundsError struct {
	Price   int
	Balance int
}

func (e InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: need %d coins, have %d", e.Price, e.Balance)
}

// MissionLockedError rejects a guardian-item purchase whose unlocking mission
// is not completed yet.
type MissionLockedError struct {
	ItemID    string
	MissionID string
}

func (e MissionLockedError) Error() string {
	return fmt.Sprintf("item %s is locked behind mission %s", e.ItemID, e.MissionID)
}
