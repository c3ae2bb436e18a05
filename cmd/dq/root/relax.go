package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nardogod/diaryquest/internal/engine"
	"github.com/nardogod/diaryquest/internal/ui"
)

func newRelaxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "relax",
		Short: "Spend the relax action to lower stress",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, user, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := svc.UseRelax(ctx, user)
			if err != nil {
				var cd engine.CooldownError
				if errors.As(err, &cd) {
					fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render(ui.IconWarn+" Relax is on cooldown until "+cd.NextAvailableAt.Local().Format("15:04")+"."))
					return nil
				}
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s Relaxed: %+d stress", ui.IconHouse, res.Stress)
			if res.Health != 0 {
				fmt.Fprintf(cmd.OutOrStdout(), ", %+d health", res.Health)
			}
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}

	return cmd
}
