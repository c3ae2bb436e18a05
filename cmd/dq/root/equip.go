package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nardogod/diaryquest/internal/engine"
	"github.com/nardogod/diaryquest/internal/ui"
)

func newEquipCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "equip cover|avatar|pet|guardian|house|work <id>",
		Short: "Equip an owned item or switch the active room",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 || len(args) > 2 {
				return errors.New("want: equip <slot> <id>")
			}
			switch args[0] {
			case "cover", "avatar", "house", "work":
				if len(args) != 2 {
					return errors.New("id is required for that slot")
				}
			case "pet", "guardian":
				// Bare slot unequips.
			default:
				return errors.New("slot must be one of cover|avatar|pet|guardian|house|work")
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

			id := ""
			if len(args) == 2 {
				id = args[1]
			}

			switch args[0] {
			case "cover":
				_, err = svc.EquipCover(ctx, user, id)
			case "avatar":
				_, err = svc.EquipAvatar(ctx, user, id)
			case "pet":
				_, err = svc.EquipPet(ctx, user, id)
			case "guardian":
				_, err = svc.EquipGuardian(ctx, user, id)
			case "house":
				_, err = svc.SetCurrentHouse(ctx, user, id)
			case "work":
				_, err = svc.SetCurrentWorkRoom(ctx, user, id)
			}
			if err != nil {
				if errors.Is(err, engine.ErrNotOwned) {
					return fmt.Errorf("you do not own %q (buy it first)", id)
				}
				return err
			}

			if id == "" {
				fmt.Fprintf(cmd.OutOrStdout(), "%s Unequipped %s.\n", ui.IconDone, args[0])
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Equipped %s as %s.\n", ui.IconDone, id, args[0])
			return nil
		},
	}

	return cmd
}
