package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nardogod/diaryquest/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "dq",
	Short:         "DiaryQuest — reward & progression engine for your diary",
	Long:          "DiaryQuest turns completed diary tasks into coins, XP, levels and a small pixel life to take care of.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newStatusCmd(),
		newCompleteCmd(),
		newRelaxCmd(),
		newWorkCmd(),
		newUseCmd(),
		newBuyCmd(),
		newEquipCmd(),
		newMissionsCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
