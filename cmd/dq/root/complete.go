package root

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/nardogod/diaryquest/internal/engine"
	"github.com/nardogod/diaryquest/internal/ui"
)

func newCompleteCmd() *cobra.Command {
	var (
		folder     string
		importance string
		date       string
	)

	cmd := &cobra.Command{
		Use:   "complete <task-id>",
		Short: "Credit a completed task",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("task id is required")
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

			in := engine.CompletionInput{
				TaskID:     args[0],
				FolderType: folder,
				Importance: importance,
			}
			if date != "" {
				d, err := time.Parse("2006-01-02", date)
				if err != nil {
					return fmt.Errorf("invalid --date (want YYYY-MM-DD): %w", err)
				}
				in.ScheduledDate = &d
			}

			res, err := svc.RecordTaskCompletion(ctx, user, in)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch res.Outcome {
			case engine.OutcomeAlreadyCredited:
				fmt.Fprintln(out, ui.Muted.Render("Already credited, nothing to do."))
			case engine.OutcomeDied:
				fmt.Fprintln(out, ui.Bad.Render(ui.IconSkull+" That one drained the last health point. Fresh start."))
			default:
				fmt.Fprintf(out, "%s %s %+d coins, %+d XP, %+d health, %+d stress\n",
					ui.IconDone, ui.Good.Render("Credited:"),
					res.Reward.Coins, res.Reward.XP, res.Reward.Health, res.Reward.Stress)
				if res.LevelUp {
					fmt.Fprintf(out, "%s %s level %d → %d\n", ui.IconBolt, ui.BadgeLevelUp, res.PreviousLevel, res.NewLevel)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&folder, "folder", "trabalho", "folder type: trabalho|estudos|lazer|tarefas_pessoais")
	cmd.Flags().StringVar(&importance, "importance", "medium", "importance: simple|medium|important")
	cmd.Flags().StringVar(&date, "date", "", "scheduled date (YYYY-MM-DD)")
	return cmd
}
