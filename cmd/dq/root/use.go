package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nardogod/diaryquest/internal/engine"
	"github.com/nardogod/diaryquest/internal/ui"
)

func newUseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "use <consumable-id>",
		Short: "Use an owned consumable",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("consumable id is required")
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

			p, err := svc.UseConsumable(ctx, user, args[0])
			if err != nil {
				switch {
				case errors.Is(err, engine.ErrAlreadyUsedToday):
					fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render(ui.IconWarn+" Already used today. It works once per day."))
					return nil
				case errors.Is(err, engine.ErrNotOwned):
					return fmt.Errorf("you do not own %q (buy it first)", args[0])
				default:
					return err
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s Used %s. Health %d, stress %d.\n", ui.IconPotion, args[0], p.Health, p.Stress)
			return nil
		},
	}

	return cmd
}
