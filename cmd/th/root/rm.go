package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/i2bric/TaskHero/internal/ui"
)

func newRmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a task (no reward, no history entry)",
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
			notifID, err := svc.DeleteTask(ctx, id)
			if err != nil {
				return err
			}
			if notifID != nil {
				_ = reminderScheduler().Cancel(ctx, *notifID)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s #%d %s\n", ui.Warn.Render(ui.IconTrash+" Deleted"), id, ui.Muted.Render("(no reward)"))
			return nil
		},
	}

	return cmd
}
