package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nardogod/diaryquest/internal/engine"
	"github.com/nardogod/diaryquest/internal/storage"
	"github.com/nardogod/diaryquest/internal/ui"
)

func newBuyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "buy item|room <id>",
		Short: "Buy a shop item or a room",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("want: buy item|room <id>")
			}
			if args[0] != "item" && args[0] != "room" {
				return errors.New("first argument must be item or room")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, user, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			var p *storage.Profile
			if args[0] == "item" {
				p, err = svc.PurchaseItem(ctx, user, args[1])
			} else {
				p, err = svc.PurchaseRoom(ctx, user, args[1])
			}
			if err != nil {
				var funds engine.InsufficientFundsError
				var locked engine.MissionLockedError
				switch {
				case errors.As(err, &funds):
					return fmt.Errorf("not enough coins: need %d, have %d", funds.Price, funds.Balance)
				case errors.As(err, &locked):
					return fmt.Errorf("%s unlocks after the %s mission", locked.ItemID, locked.MissionID)
				case errors.Is(err, engine.ErrAlreadyOwned):
					fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Already owned."))
					return nil
				case errors.Is(err, engine.ErrStockLimit):
					fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render(ui.IconWarn+" Stock limit reached for that consumable."))
					return nil
				default:
					return err
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s Bought %s. %s %d coins left.\n", ui.IconDone, args[1], ui.IconCoin, p.Coins)
			return nil
		},
	}

	return cmd
}
