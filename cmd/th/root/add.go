package root

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/i2bric/TaskHero/internal/engine"
	"github.com/i2bric/TaskHero/internal/notify"
	"github.com/i2bric/TaskHero/internal/ui"
)

func newAddCmd() *cobra.Command {
	var diff string
	var due string
	var remind bool

	cmd := &cobra.Command{
		Use:   "add [text]",
		Short: "Add a task",
		Long:  "Add a task with a difficulty and a deadline. With no arguments an interactive form opens.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			now := time.Now()

			text := ""
			if len(args) == 1 {
				text = args[0]
			}

			if text == "" {
				var err error
				text, diff, due, err = promptTask(diff, due)
				if err != nil {
					return err
				}
			}

			deadline, err := parseDeadline(due, now)
			if err != nil {
				return err
			}

			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			in := engine.TaskInput{
				Text:       text,
				Difficulty: engine.Difficulty(diff),
				Deadline:   deadline,
			}
			if remind {
				// The schedule id is stored on the task so it can be
				// cancelled when the task is completed, edited or deleted.
				sched := reminderScheduler()
				if id, err := sched.Schedule(ctx, 0, text, deadline, diff); err == nil && id != "" {
					in.NotificationID = &id
				}
			}

			t, err := svc.CreateTask(ctx, in)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s #%d %s  %s  %s\n",
				ui.Good.Render(ui.IconSparkle+" Added"),
				t.ID, t.Text,
				ui.DifficultyText(t.Difficulty),
				ui.Muted.Render("due "+t.Deadline.Local().Format("Jan 2 15:04")),
			)
			return nil
		},
	}

	cmd.Flags().StringVarP(&diff, "diff", "d", "easy", "Difficulty (easy|medium|hard)")
	cmd.Flags().StringVar(&due, "due", "", "Deadline (2006-01-02, 2006-01-02 15:04, or a duration like 36h)")
	cmd.Flags().BoolVar(&remind, "remind", false, "Schedule a reminder ahead of the deadline")

	return cmd
}

func promptTask(diff, due string) (string, string, string, error) {
	var text string
	if diff == "" {
		diff = "easy"
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Task").Value(&text),
			huh.NewSelect[string]().Title("Difficulty").Options(
				huh.NewOption("easy (+30 XP)", "easy"),
				huh.NewOption("medium (+60 XP)", "medium"),
				huh.NewOption("hard (+100 XP)", "hard"),
			).Value(&diff),
			huh.NewInput().Title("Due").Description("2006-01-02, 2006-01-02 15:04 or 36h").Value(&due),
		),
	)
	if err := form.Run(); err != nil {
		return "", "", "", err
	}
	if text == "" {
		return "", "", "", errors.New("task text is required")
	}
	return text, diff, due, nil
}

func reminderScheduler() notify.Scheduler {
	return &notify.LogScheduler{Logger: log.New(os.Stderr, "", 0)}
}
