package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/i2bric/TaskHero/internal/ui"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List active tasks (soonest deadline first)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			tasks, err := svc.Tasks(ctx)
			if err != nil {
				return err
			}
			if len(tasks) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No active tasks. Add one with `th add`."))
				return nil
			}

			now := time.Now()
			for _, t := range tasks {
				due := t.Deadline.Local().Format("Mon Jan 2 15:04")
				dueText := ui.Muted.Render("due " + due)
				if now.After(t.Deadline) {
					dueText = ui.Bad.Render("overdue " + due)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "#%d %s  %s  %s\n", t.ID, t.Text, ui.DifficultyText(t.Difficulty), dueText)
			}

			overdue, err := svc.OverdueCount(ctx)
			if err != nil {
				return err
			}
			if overdue > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render(fmt.Sprintf("%s %d overdue", ui.IconWarn, overdue)))
			}
			return nil
		},
	}

	return cmd
}
