package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nardogod/diaryquest/internal/engine"
	"github.com/nardogod/diaryquest/internal/ui"
)

func newWorkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "work",
		Short: "Spend the work bonus action to earn coins",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, user, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := svc.UseWorkBonus(ctx, user)
			if err != nil {
				var cd engine.CooldownError
				if errors.As(err, &cd) {
					fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render(ui.IconWarn+" Work bonus is on cooldown until "+cd.NextAvailableAt.Local().Format("15:04")+"."))
					return nil
				}
				return err
			}

			if res.Died {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Bad.Render(ui.IconSkull+" Worked yourself to zero health. Fresh start."))
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Worked overtime: %+d coins, %+d health\n", ui.IconWork, res.Coins, res.Health)
			return nil
		},
	}

	return cmd
}
