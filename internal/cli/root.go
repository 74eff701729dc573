package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"planboard/internal/domain"
	"planboard/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Projects service.ProjectService
	Reviews  service.ReviewService
	Comments service.CommentService
}

// NewRootCmd creates the top-level "planboard" command and registers all
// subcommands against the provided App. The acting user comes from the
// persistent --role/--actor flags (or PLANBOARD_ROLE / PLANBOARD_ACTOR);
// there is no authentication, the host names the caller and we take its
// word for it.
func NewRootCmd(app *App) *cobra.Command {
	var roleStr, actorID, actorName string

	root := &cobra.Command{
		Use:           "planboard",
		Short:         "Role-aware project tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&roleStr, "role", envOr("PLANBOARD_ROLE", string(domain.RoleAdmin)), "Acting role (designer, product-manager-1..3, sponsor, operator-1..3, admin)")
	root.PersistentFlags().StringVar(&actorID, "actor", envOr("PLANBOARD_ACTOR", "local"), "Acting user id")
	root.PersistentFlags().StringVar(&actorName, "actor-name", envOr("PLANBOARD_ACTOR_NAME", "Local User"), "Acting user display name")

	actor := func() domain.Actor {
		return domain.Actor{ID: actorID, Name: actorName, Role: domain.Role(roleStr)}
	}

	root.AddCommand(
		newProjectCmd(app, actor),
		newPhaseCmd(app, actor),
		newRiskCmd(app, actor),
		newReviewCmd(app, actor),
		newCommentCmd(app, actor),
		newDemoCmd(app),
	)

	return root
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func resolveProjectID(app *App, cmd *cobra.Command, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("project ID is required")
	}

	projects, err := app.Projects.List(cmd.Context())
	if err != nil {
		return "", err
	}

	for _, p := range projects {
		if p.ID == input {
			return p.ID, nil
		}
	}

	var matches []string
	for _, p := range projects {
		if len(input) <= len(p.ID) && p.ID[:len(input)] == input {
			matches = append(matches, p.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("project not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("project ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}
