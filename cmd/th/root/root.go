package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/i2bric/TaskHero/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "th",
	Short:         "TaskHero — a to-do tracker that levels you up",
	Long:          "TaskHero is a local-first to-do tracker with RPG progression: tasks award XP by difficulty, levels follow an exponential curve, and daily completions build a streak.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newAddCmd(),
		newDoCmd(),
		newListCmd(),
		newEditCmd(),
		newRmCmd(),
		newStatusCmd(),
		newHistoryCmd(),
		newResetCmd(),
		newBoardCmd(),
		newServeCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
