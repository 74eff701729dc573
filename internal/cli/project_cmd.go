package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"planboard/internal/domain"
	"planboard/internal/service"
)

type actorFunc func() domain.Actor

func newProjectCmd(app *App, actor actorFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}

	cmd.AddCommand(
		newProjectAddCmd(app, actor),
		newProjectListCmd(app),
		newProjectInspectCmd(app),
		newProjectRenameCmd(app, actor),
		newProjectRemoveCmd(app, actor),
		newProjectBudgetCmd(app, actor),
	)

	return cmd
}

func newProjectAddCmd(app *App, actor actorFunc) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new project from the standard template",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Projects.Create(cmd.Context(), actor(), name)
			if err != nil {
				return err
			}
			fmt.Printf("Created project %s (%s) with %d phases\n", p.Name, p.ID, len(p.Phases))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Project name")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newProjectListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := app.Projects.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(projects) == 0 {
				fmt.Println("No projects found.")
				return nil
			}
			fmt.Print(FormatProjectList(projects))
			return nil
		},
	}
}

func newProjectInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect ID",
		Short: "Show project details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := resolveProjectID(app, cmd, args[0])
			if err != nil {
				return err
			}
			p, err := app.Projects.GetByID(cmd.Context(), projectID)
			if err != nil {
				return err
			}
			fmt.Print(FormatProjectInspect(p))
			return nil
		},
	}
}

func newProjectRenameCmd(app *App, actor actorFunc) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "rename ID",
		Short: "Rename a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := resolveProjectID(app, cmd, args[0])
			if err != nil {
				return err
			}
			if err := app.Projects.Update(cmd.Context(), actor(), projectID, service.ProjectUpdate{Name: &name}); err != nil {
				return err
			}
			fmt.Printf("Renamed project %s to %q\n", projectID, name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New project name")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newProjectRemoveCmd(app *App, actor actorFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := resolveProjectID(app, cmd, args[0])
			if err != nil {
				return err
			}
			if err := app.Projects.Delete(cmd.Context(), actor(), projectID); err != nil {
				return err
			}
			fmt.Printf("Removed project %s\n", projectID)
			return nil
		},
	}
}

func newProjectBudgetCmd(app *App, actor actorFunc) *cobra.Command {
	var personnel, technology, marketing, contingency string

	cmd := &cobra.Command{
		Use:   "budget ID",
		Short: "Set the project budget",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := resolveProjectID(app, cmd, args[0])
			if err != nil {
				return err
			}
			budget, err := parseBudget(personnel, technology, marketing, contingency)
			if err != nil {
				return err
			}
			if err := app.Projects.UpdateBudget(cmd.Context(), actor(), projectID, budget); err != nil {
				return err
			}
			fmt.Printf("Budget for %s set to %s total\n", projectID, budget.Total().StringFixed(2))
			return nil
		},
	}

	cmd.Flags().StringVar(&personnel, "personnel", "0", "Personnel costs")
	cmd.Flags().StringVar(&technology, "technology", "0", "Technology and tools")
	cmd.Flags().StringVar(&marketing, "marketing", "0", "Marketing and launch")
	cmd.Flags().StringVar(&contingency, "contingency", "0", "Contingency reserve")

	return cmd
}
