package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/i2bric/TaskHero/internal/engine"
	"github.com/i2bric/TaskHero/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show level, XP, title and streak",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			p, err := svc.Profile(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconHero, "Hero Status"))
			fmt.Fprintf(out, "%s  %s\n",
				ui.LabelValue("Level", p.Level),
				ui.TitleStyle(p.Title.Color).Render(p.Title.Icon+" "+p.Title.Name),
			)
			fmt.Fprintf(out, "%s %s %s\n",
				ui.Key.Render("XP:"),
				ui.XPBar(p.Experience, p.ExperienceToNext, 24),
				ui.Muted.Render(fmt.Sprintf("%d/%d (%d to next level)", p.Experience, p.ExperienceToNext, p.ExperienceToNext-p.Experience)),
			)
			fmt.Fprintf(out, "%s %s %d %s\n",
				ui.Key.Render("Streak:"), ui.IconFire, p.CurrentStreak,
				ui.Muted.Render(fmt.Sprintf("(best %d)", p.LongestStreak)),
			)
			fmt.Fprintln(out, ui.LabelValue("Completed", p.TotalCompleted))

			next := nextTitle(p.Level)
			if next != nil {
				fmt.Fprintf(out, "%s %s %s\n",
					ui.Key.Render("Next title:"),
					ui.TitleStyle(next.Color).Render(next.Icon+" "+next.Name),
					ui.Muted.Render(fmt.Sprintf("at level %d", next.MinLevel)),
				)
			}
			return nil
		},
	}

	return cmd
}

func nextTitle(level int) *engine.TitleTier {
	for probe := level + 1; probe <= level+1000; probe++ {
		t := engine.TitleForLevel(probe)
		if t.MinLevel > level {
			return &t
		}
	}
	return nil
}
