package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"planboard/internal/attachment"
	"planboard/internal/service"
)

func newPhaseCmd(app *App, actor actorFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "phase",
		Short: "Manage project phases",
	}

	cmd.AddCommand(
		newPhaseUpdateCmd(app, actor),
		newPhaseAttachCmd(app, actor),
	)

	return cmd
}

func parsePhaseIndex(arg string) (int, error) {
	idx, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid phase index %q", arg)
	}
	return idx, nil
}

func newPhaseUpdateCmd(app *App, actor actorFunc) *cobra.Command {
	var name, start, end, duration, content string

	cmd := &cobra.Command{
		Use:   "update ID PHASE",
		Short: "Update a phase; dates recompute the duration",
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

			var upd service.PhaseUpdate
			if cmd.Flags().Changed("name") {
				upd.Name = &name
			}
			if cmd.Flags().Changed("start") {
				upd.StartDate = &start
			}
			if cmd.Flags().Changed("end") {
				upd.EndDate = &end
			}
			if cmd.Flags().Changed("duration") {
				upd.Duration = &duration
			}
			if cmd.Flags().Changed("content") {
				upd.Content = &content
			}

			phase, err := app.Projects.UpdatePhase(cmd.Context(), actor(), projectID, idx, upd)
			if err != nil {
				return err
			}
			fmt.Printf("Updated phase %d: %s (%s)\n", idx, phase.Name, phase.Duration)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Phase name")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD, empty clears)")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD, empty clears)")
	cmd.Flags().StringVar(&duration, "duration", "", "Manual duration label (ignored when both dates are set)")
	cmd.Flags().StringVar(&content, "content", "", "Phase description")

	return cmd
}

func newPhaseAttachCmd(app *App, actor actorFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "attach ID PHASE FILE...",
		Short: "Attach files to a phase",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := resolveProjectID(app, cmd, args[0])
			if err != nil {
				return err
			}
			idx, err := parsePhaseIndex(args[1])
			if err != nil {
				return err
			}

			files := make([]attachment.File, 0, len(args)-2)
			for _, path := range args[2:] {
				info, err := os.Stat(path)
				if err != nil {
					return fmt.Errorf("reading %s: %w", path, err)
				}
				files = append(files, attachment.File{
					Name:      filepath.Base(path),
					SizeBytes: info.Size(),
					URI:       "file://" + path,
				})
			}

			accepted, rejected, err := app.Projects.AttachPhaseFiles(cmd.Context(), actor(), projectID, idx, files)
			if err != nil {
				return err
			}
			for _, a := range accepted {
				fmt.Printf("Attached %s\n", a.Name)
			}
			for _, r := range rejected {
				fmt.Printf("Rejected %s: %s\n", r.Name, r.Reason)
			}
			return nil
		},
	}
}
