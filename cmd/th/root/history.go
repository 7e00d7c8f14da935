package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/i2bric/TaskHero/internal/ui"
)

func newHistoryCmd() *cobra.Command {
	var statsOnly bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent completions and statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()

			if !statsOnly {
				entries, err := svc.History(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, ui.Heading(ui.IconScroll, "History"))
				if len(entries) == 0 {
					fmt.Fprintln(out, ui.Muted.Render("Nothing completed yet."))
				}
				for _, e := range entries {
					when := ui.Muted.Render(e.CompletedAt.Local().Format("Jan 2 15:04"))
					line := fmt.Sprintf("%s %s  %s  %s  %s", ui.IconDone, e.TaskText, ui.DifficultyText(e.Difficulty), ui.Gold.Render(fmt.Sprintf("+%d XP", e.ExpEarned)), when)
					if e.WasOverdue {
						line += " " + ui.Warn.Render("overdue")
					}
					fmt.Fprintln(out, line)
				}
				fmt.Fprintln(out, "")
			}

			stats, err := svc.HistoryStats(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, ui.H2.Render("📊 Stats"))
			fmt.Fprintln(out, ui.LabelValue("Completed", stats.TotalCompleted))
			fmt.Fprintln(out, ui.LabelValue("XP earned", stats.TotalExpEarned))
			fmt.Fprintln(out, ui.LabelValue("Overdue", stats.OverdueCompleted))
			fmt.Fprintf(out, "%s %s %d · %s %d · %s %d\n",
				ui.Key.Render("By difficulty:"),
				ui.Good.Render("easy"), stats.EasyCount,
				ui.Warn.Render("medium"), stats.MediumCount,
				ui.Bad.Render("hard"), stats.HardCount,
			)
			return nil
		},
	}

	cmd.Flags().BoolVar(&statsOnly, "stats", false, "Only show aggregate statistics")

	return cmd
}
