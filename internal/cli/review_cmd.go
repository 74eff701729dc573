package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"planboard/internal/domain"
)

func newReviewCmd(app *App, actor actorFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "review",
		Short: "Manage phase reviews",
	}

	cmd.AddCommand(
		newReviewAddCmd(app, actor),
		newReviewDecideCmd(app, actor),
		newReviewRemoveCmd(app, actor),
	)

	return cmd
}

func newReviewAddCmd(app *App, actor actorFunc) *cobra.Command {
	var role string

	cmd := &cobra.Command{
		Use:   "add ID PHASE",
		Short: "Add a pending reviewer role to a phase",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := resolveProjectID(app, cmd, args[0])
			if err != nil {
				return err
			}
			idx, err := parsePhaseIndex(args[1])
			if err != nil {
				return err
			}
			rev, err := app.Reviews.AddReviewer(cmd.Context(), actor(), projectID, idx, domain.Role(role))
			if err != nil {
				return err
			}
			fmt.Printf("Added reviewer %s (%s) to phase %d\n", rev.ID, rev.Role, idx)
			return nil
		},
	}

	cmd.Flags().StringVar(&role, "as", "", "Reviewer role")
	_ = cmd.MarkFlagRequired("as")

	return cmd
}

func newReviewDecideCmd(app *App, actor actorFunc) *cobra.Command {
	var approve, reject bool
	var comment string

	cmd := &cobra.Command{
		Use:   "decide ID REVIEWER",
		Short: "Approve or reject a pending or decided review",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if approve == reject {
				return fmt.Errorf("pass exactly one of --approve or --reject")
			}
			projectID, err := resolveProjectID(app, cmd, args[0])
			if err != nil {
				return err
			}
			status := domain.ReviewApproved
			if reject {
				status = domain.ReviewRejected
			}
			rev, err := app.Reviews.SetReviewerStatus(cmd.Context(), actor(), projectID, args[1], status, comment)
			if err != nil {
				return err
			}
			fmt.Printf("Review %s is now %s\n", rev.ID, rev.Status)
			return nil
		},
	}

	cmd.Flags().BoolVar(&approve, "approve", false, "Approve the phase")
	cmd.Flags().BoolVar(&reject, "reject", false, "Reject the phase")
	cmd.Flags().StringVar(&comment, "comment", "", "Review comment")

	return cmd
}

func newReviewRemoveCmd(app *App, actor actorFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID REVIEWER",
		Short: "Remove a reviewer from its phase",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := resolveProjectID(app, cmd, args[0])
			if err != nil {
				return err
			}
			if err := app.Reviews.RemoveReviewer(cmd.Context(), actor(), projectID, args[1]); err != nil {
				return err
			}
			fmt.Printf("Removed reviewer %s\n", args[1])
			return nil
		},
	}
}
