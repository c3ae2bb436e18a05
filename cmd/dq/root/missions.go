package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nardogod/diaryquest/internal/catalog"
	"github.com/nardogod/diaryquest/internal/ui"
)

func newMissionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "missions",
		Short: "List missions and claim any newly earned rewards",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, user, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			granted, err := svc.EvaluateMissions(ctx, user)
			if err != nil {
				return err
			}
			st, err := svc.GetStatus(ctx, user)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, m := range granted {
				fmt.Fprintf(out, "%s %s %s (+%d coins)\n", ui.IconTrophy, ui.Gold.Render("Completed:"), m.Name, m.CoinReward)
			}
			if len(granted) > 0 {
				fmt.Fprintln(out, "")
			}

			fmt.Fprintln(out, ui.Heading(ui.IconTrophy, "Missions"))
			for _, m := range catalog.Missions() {
				mark := ui.Muted.Render("[ ]")
				if st.Completed[m.ID] {
					mark = ui.Good.Render("[x]")
				}
				fmt.Fprintf(out, "%s %s — %s %s\n", mark, ui.Key.Render(m.Name), m.Description, ui.Muted.Render(fmt.Sprintf("(+%d coins)", m.CoinReward)))
			}
			return nil
		},
	}

	return cmd
}
