package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"planboard/internal/attachment"
	"planboard/internal/domain"
	"planboard/internal/service"
)

// newDemoCmd walks one project through the whole lifecycle in a single
// process. The other subcommands each see a fresh empty store, so this
// is the way to watch the pieces interact.
func newDemoCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run a scripted end-to-end walkthrough",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			pm := domain.Actor{ID: "u-pm", Name: "Priya", Role: domain.RoleProductManager1}
			operator := domain.Actor{ID: "u-op", Name: "Omar", Role: domain.RoleOperator1}
			designer := domain.Actor{ID: "u-ds", Name: "Dana", Role: domain.RoleDesigner}

			p, err := app.Projects.Create(ctx, pm, "Website Redesign")
			if err != nil {
				return err
			}
			fmt.Printf("== Created %q with the standard %d-phase template\n\n", p.Name, len(p.Phases))

			start, end := "2026-09-07", "2026-09-21"
			phase, err := app.Projects.UpdatePhase(ctx, pm, p.ID, 0, phaseDates(start, end))
			if err != nil {
				return err
			}
			fmt.Printf("== Scheduled %s %s..%s, duration derived as %q\n\n", phase.Name, start, end, phase.Duration)

			if err := app.Projects.Update(ctx, designer, p.ID, projectRename("Website Redesign 2.0")); err == nil {
				fmt.Println("== Designer renamed the project (scope edit allowed)")
			}
			if err := app.Projects.UpdateBudget(ctx, designer, p.ID, domain.Budget{}); err != nil {
				fmt.Printf("== Designer budget edit denied: %v\n\n", err)
			}

			rev, err := app.Reviews.AddReviewer(ctx, pm, p.ID, 0, domain.RoleSponsor)
			if err != nil {
				return err
			}
			rev, err = app.Reviews.SetReviewerStatus(ctx, pm, p.ID, rev.ID, domain.ReviewRejected, "budget unclear")
			if err != nil {
				return err
			}
			fmt.Printf("== Sponsor review on %s: %s (%s)\n", p.Phases[0].Name, rev.Status, rev.Comment)
			rev, err = app.Reviews.SetReviewerStatus(ctx, pm, p.ID, rev.ID, domain.ReviewApproved, "budget attached")
			if err != nil {
				return err
			}
			fmt.Printf("== Flipped to %s at %s\n\n", rev.Status, rev.ReviewedAt.Format("15:04:05"))

			key := domain.SectionKey(p.ID, domain.SectionTimeline)
			c, _, err := app.Comments.Add(ctx, operator, key, "two weeks is tight for planning", nil)
			if err != nil {
				return err
			}
			if _, err := app.Comments.Reply(ctx, pm, key, c.ID, "agreed, padded the design phase"); err != nil {
				return err
			}

			accepted, rejected, err := app.Projects.AttachPhaseFiles(ctx, pm, p.ID, 0, []attachment.File{
				{Name: "kickoff.pdf", SizeBytes: 120 << 10, URI: "mem://kickoff.pdf"},
				{Name: "installer.exe", SizeBytes: 1 << 20, URI: "mem://installer.exe"},
			})
			if err != nil {
				return err
			}
			fmt.Printf("== Attached %d file(s); rejected %d (%s: %s)\n\n", len(accepted), len(rejected), rejected[0].Name, rejected[0].Reason)

			final, err := app.Projects.GetByID(ctx, p.ID)
			if err != nil {
				return err
			}
			fmt.Print(FormatProjectInspect(final))
			thread, err := app.Comments.ListBySection(ctx, key)
			if err != nil {
				return err
			}
			fmt.Printf("\nTIMELINE THREAD\n%s", FormatThread(thread))
			return nil
		},
	}
}

func phaseDates(start, end string) (upd service.PhaseUpdate) {
	upd.StartDate = &start
	upd.EndDate = &end
	return upd
}

func projectRename(name string) (upd service.ProjectUpdate) {
	upd.Name = &name
	return upd
}
