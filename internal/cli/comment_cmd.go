package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"planboard/internal/domain"
)

func newCommentCmd(app *App, actor actorFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "comment",
		Short: "Discuss a project section",
	}

	cmd.AddCommand(
		newCommentAddCmd(app, actor),
		newCommentReplyCmd(app, actor),
		newCommentListCmd(app),
	)

	return cmd
}

func sectionKeyFor(app *App, cmd *cobra.Command, projectArg, section string) (string, error) {
	projectID, err := resolveProjectID(app, cmd, projectArg)
	if err != nil {
		return "", err
	}
	kind := domain.SectionKind(section)
	if !domain.ValidSections[kind] {
		return "", fmt.Errorf("unknown section %q (scope, timeline, resources, risks, communication)", section)
	}
	return domain.SectionKey(projectID, kind), nil
}

func newCommentAddCmd(app *App, actor actorFunc) *cobra.Command {
	var section, content string

	cmd := &cobra.Command{
		Use:   "add ID",
		Short: "Post a comment on a project section",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := sectionKeyFor(app, cmd, args[0], section)
			if err != nil {
				return err
			}
			c, _, err := app.Comments.Add(cmd.Context(), actor(), key, content, nil)
			if err != nil {
				return err
			}
			fmt.Printf("Posted comment %s on %s\n", c.ID, key)
			return nil
		},
	}

	cmd.Flags().StringVar(&section, "section", "", "Project section (scope, timeline, resources, risks, communication)")
	cmd.Flags().StringVar(&content, "message", "", "Comment text")
	_ = cmd.MarkFlagRequired("section")
	_ = cmd.MarkFlagRequired("message")

	return cmd
}

func newCommentReplyCmd(app *App, actor actorFunc) *cobra.Command {
	var section, content string

	cmd := &cobra.Command{
		Use:   "reply ID COMMENT",
		Short: "Reply to a top-level comment",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := sectionKeyFor(app, cmd, args[0], section)
			if err != nil {
				return err
			}
			r, err := app.Comments.Reply(cmd.Context(), actor(), key, args[1], content)
			if err != nil {
				return err
			}
			fmt.Printf("Posted reply %s\n", r.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&section, "section", "", "Project section (scope, timeline, resources, risks, communication)")
	cmd.Flags().StringVar(&content, "message", "", "Reply text")
	_ = cmd.MarkFlagRequired("section")
	_ = cmd.MarkFlagRequired("message")

	return cmd
}

func newCommentListCmd(app *App) *cobra.Command {
	var section string

	cmd := &cobra.Command{
		Use:   "list ID",
		Short: "Show a section's comment thread, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := sectionKeyFor(app, cmd, args[0], section)
			if err != nil {
				return err
			}
			thread, err := app.Comments.ListBySection(cmd.Context(), key)
			if err != nil {
				return err
			}
			if len(thread) == 0 {
				fmt.Println("No comments yet.")
				return nil
			}
			fmt.Print(FormatThread(thread))
			return nil
		},
	}

	cmd.Flags().StringVar(&section, "section", "", "Project section (scope, timeline, resources, risks, communication)")
	_ = cmd.MarkFlagRequired("section")

	return cmd
}
