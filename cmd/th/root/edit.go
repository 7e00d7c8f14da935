package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/i2bric/TaskHero/internal/engine"
	"github.com/i2bric/TaskHero/internal/ui"
)

func newEditCmd() *cobra.Command {
	var text string
	var diff string
	var due string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a task's text, difficulty or deadline",
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
			current, err := svc.TaskRepo().Get(ctx, id)
			if err != nil {
				return err
			}
			if current == nil {
				return engine.NotFoundError{TaskID: id}
			}

			// Unset flags keep the current values.
			in := engine.TaskInput{
				Text:           current.Text,
				Difficulty:     engine.Difficulty(current.Difficulty),
				Deadline:       current.Deadline,
				NotificationID: current.NotificationID,
			}
			if cmd.Flags().Changed("text") {
				in.Text = text
			}
			if cmd.Flags().Changed("diff") {
				in.Difficulty = engine.Difficulty(diff)
			}
			if cmd.Flags().Changed("due") {
				deadline, err := parseDeadline(due, time.Now())
				if err != nil {
					return err
				}
				in.Deadline = deadline
				// The old reminder no longer matches the deadline.
				in.NotificationID = nil
			}

			oldNotifID, err := svc.UpdateTask(ctx, id, in)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("due") && oldNotifID != nil {
				_ = reminderScheduler().Cancel(ctx, *oldNotifID)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s #%d %s  %s  %s\n",
				ui.Good.Render(ui.IconSparkle+" Updated"),
				id, in.Text,
				ui.DifficultyText(string(in.Difficulty)),
				ui.Muted.Render("due "+in.Deadline.Local().Format("Jan 2 15:04")),
			)
			return nil
		},
	}

	cmd.Flags().StringVarP(&text, "text", "t", "", "New task text")
	cmd.Flags().StringVarP(&diff, "diff", "d", "", "New difficulty (easy|medium|hard)")
	cmd.Flags().StringVar(&due, "due", "", "New deadline")

	return cmd
}
