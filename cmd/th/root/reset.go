package root

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/i2bric/TaskHero/internal/ui"
)

func newResetCmd() *cobra.Command {
	var force bool
	var profileOnly bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset progression (and optionally wipe tasks and history)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if !force {
				confirmed := false
				prompt := "Delete ALL tasks and history and reset the profile to level 1?"
				if profileOnly {
					prompt = "Reset the profile to level 1? Tasks and history are kept."
				}
				form := huh.NewForm(huh.NewGroup(
					huh.NewConfirm().Title(prompt).Value(&confirmed),
				))
				if err := form.Run(); err != nil {
					return err
				}
				if !confirmed {
					fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Aborted."))
					return nil
				}
			}

			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if profileOnly {
				if err := svc.ResetProfile(ctx); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render(ui.IconWarn+" Profile reset to level 1."))
				return nil
			}

			res, err := svc.ResetAll(ctx)
			if err != nil {
				return err
			}
			sched := reminderScheduler()
			for _, id := range res.NotificationIDs {
				_ = sched.Cancel(ctx, id)
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render(ui.IconWarn+" Everything reset."))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Deleted tasks", res.DeletedTasks))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Deleted history", res.DeletedHistory))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip the confirmation prompt")
	cmd.Flags().BoolVar(&profileOnly, "profile", false, "Only reset the profile, keep tasks and history")

	return cmd
}
