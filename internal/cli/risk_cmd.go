package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"planboard/internal/domain"
)

func newRiskCmd(app *App, actor actorFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "risk",
		Short: "Manage the project risk register",
	}

	cmd.AddCommand(
		newRiskAddCmd(app, actor),
		newRiskUpdateCmd(app, actor),
		newRiskRemoveCmd(app, actor),
	)

	return cmd
}

func riskFlags(cmd *cobra.Command, category, description, impact, probability, mitigation *string) {
	cmd.Flags().StringVar(category, "category", "", "Risk category")
	cmd.Flags().StringVar(description, "description", "", "Risk description")
	cmd.Flags().StringVar(impact, "impact", string(domain.RatingMedium), "Impact (High, Medium, Low)")
	cmd.Flags().StringVar(probability, "probability", string(domain.RatingMedium), "Probability (High, Medium, Low)")
	cmd.Flags().StringVar(mitigation, "mitigation", "", "Mitigation plan")
}

func newRiskAddCmd(app *App, actor actorFunc) *cobra.Command {
	var category, description, impact, probability, mitigation string

	cmd := &cobra.Command{
		Use:   "add ID",
		Short: "Add a risk",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := resolveProjectID(app, cmd, args[0])
			if err != nil {
				return err
			}
			risk, err := app.Projects.AddRisk(cmd.Context(), actor(), projectID, domain.Risk{
				Category:    category,
				Description: description,
				Impact:      domain.RiskRating(impact),
				Probability: domain.RiskRating(probability),
				Mitigation:  mitigation,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Added risk %s (exposure %s)\n", risk.ID, risk.Exposure())
			return nil
		},
	}

	riskFlags(cmd, &category, &description, &impact, &probability, &mitigation)
	_ = cmd.MarkFlagRequired("description")

	return cmd
}

func newRiskUpdateCmd(app *App, actor actorFunc) *cobra.Command {
	var category, description, impact, probability, mitigation string

	cmd := &cobra.Command{
		Use:   "update ID INDEX",
		Short: "Replace a risk at its current list position",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := resolveProjectID(app, cmd, args[0])
			if err != nil {
				return err
			}
			idx, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid risk index %q", args[1])
			}
			err = app.Projects.UpdateRisk(cmd.Context(), actor(), projectID, idx, domain.Risk{
				Category:    category,
				Description: description,
				Impact:      domain.RiskRating(impact),
				Probability: domain.RiskRating(probability),
				Mitigation:  mitigation,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Updated risk %d\n", idx)
			return nil
		},
	}

	riskFlags(cmd, &category, &description, &impact, &probability, &mitigation)

	return cmd
}

func newRiskRemoveCmd(app *App, actor actorFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID INDEX",
		Short: "Remove a risk at its current list position",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := resolveProjectID(app, cmd, args[0])
			if err != nil {
				return err
			}
			idx, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid risk index %q", args[1])
			}
			if err := app.Projects.DeleteRisk(cmd.Context(), actor(), projectID, idx); err != nil {
				return err
			}
			fmt.Printf("Removed risk %d\n", idx)
			return nil
		},
	}
}
