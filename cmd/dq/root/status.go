package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nardogod/diaryquest/internal/catalog"
	"github.com/nardogod/diaryquest/internal/engine"
	"github.com/nardogod/diaryquest/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show character stats, vitals and equipment",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, user, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			st, err := svc.GetStatus(ctx, user)
			if err != nil {
				return err
			}
			p := st.Profile

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, "Character Status"))
			fmt.Fprintln(out, ui.LabelValue("User", p.UserID))
			if st.XPForNextLevel > 0 {
				fmt.Fprintln(out, ui.LabelValue("Level", fmt.Sprintf("%d (%d/%d XP, %.0f%%)",
					p.Level, st.XPInCurrentLevel, st.XPForNextLevel, st.XPProgress*100)))
			} else {
				fmt.Fprintln(out, ui.LabelValue("Level", fmt.Sprintf("%d %s", p.Level, ui.Gold.Render("(max)"))))
			}
			fmt.Fprintln(out, ui.LabelValue("Coins", fmt.Sprintf("%s %d", ui.IconCoin, p.Coins)))
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render("Vitals"))
			fmt.Fprintf(out, "- %s Health: %d/%d %s\n", ui.IconHeart, p.Health, catalog.MaxHealth, ui.Gauge(p.Health, catalog.MaxHealth, 14, false))
			fmt.Fprintf(out, "- %s Stress: %d/%d %s\n", ui.IconStress, p.Stress, catalog.StressCap, ui.Gauge(p.Stress, catalog.StressCap, 14, true))
			if st.IsSick {
				fmt.Fprintln(out, "- "+ui.Bad.Render("sick")+" "+ui.Muted.Render("(health at or below 50)"))
			}
			if st.IsBurnout {
				fmt.Fprintln(out, "- "+ui.Bad.Render("burnout")+" "+ui.Muted.Render("(stress at or above 100)"))
			}
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render("Equipment"))
			eq := engine.EquipmentNames(p)
			for _, slot := range []struct{ key, label string }{
				{"cover", "Cover"}, {"avatar", "Avatar"}, {"pet", "Pet"},
				{"guardian", "Guardian"}, {"house", "House"}, {"work_room", "Work room"},
			} {
				if name, ok := eq[slot.key]; ok {
					fmt.Fprintf(out, "- %s %s\n", ui.Key.Render(slot.label+":"), name)
				}
			}
			fmt.Fprintln(out, "")

			if len(st.Badges) > 0 {
				fmt.Fprintln(out, ui.H2.Render(ui.IconTrophy+" Badges"))
				for _, b := range st.Badges {
					fmt.Fprintf(out, "- %s\n", ui.Gold.Render(b))
				}
			}
			return nil
		},
	}

	return cmd
}
