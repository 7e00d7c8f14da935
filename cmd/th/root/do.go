package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/i2bric/TaskHero/internal/ui"
)

func newDoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "do <id>",
		Short: "Complete a task",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("id is required")
			}
			if _, err := strconv.ParseInt(args[0], 10, 64); err != nil {
				return errors.New("id must be an integer")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			id, _ := strconv.ParseInt(args[0], 10, 64)
			res, err := svc.CompleteTask(ctx, id)
			if err != nil {
				return err
			}

			if res.NotificationID != nil {
				_ = reminderScheduler().Cancel(ctx, *res.NotificationID)
			}

			line := fmt.Sprintf("%s #%d %s", ui.Good.Render(ui.IconDone+" Completed"), res.TaskID, ui.Gold.Render(fmt.Sprintf("+%d XP", res.ExpEarned)))
			if res.WasOverdue {
				line += " " + ui.Warn.Render(ui.IconClock+" overdue")
			}
			fmt.Fprintln(cmd.OutOrStdout(), line)

			if res.LeveledUp {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
					ui.BadgeLevelUp,
					ui.LabelValue("Level", fmt.Sprintf("%d → %d", res.LevelBefore, res.NewLevel)),
					ui.TitleStyle(res.Title.Color).Render(res.Title.Icon+" "+res.Title.Name),
				)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %d %s\n",
				ui.Key.Render("Streak:"), ui.IconFire, res.CurrentStreak,
				ui.Muted.Render(fmt.Sprintf("(best %d)", res.LongestStreak)),
			)
			return nil
		},
	}

	return cmd
}
