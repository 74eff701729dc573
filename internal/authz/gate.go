// Package authz is the checkpoint every state-mutating intent passes
// through before it touches the entity store.
package authz

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/samber/lo"

	"planboard/internal/domain"
	"planboard/internal/permission"
)

type Verb string

const (
	VerbEdit          Verb = "edit"
	VerbComment       Verb = "comment"
	VerbUpload        Verb = "upload"
	VerbManageUsers   Verb = "manage-users"
	VerbCreateProject Verb = "create-project"
	VerbDeleteProject Verb = "delete-project"
)

// Action is a verb plus, for edits, the section it targets.
type Action struct {
	Verb    Verb
	Section domain.SectionKind
}

func (a Action) String() string {
	if a.Verb == VerbEdit {
		return fmt.Sprintf("%s:%s", a.Verb, a.Section)
	}
	return string(a.Verb)
}

func EditAction(section domain.SectionKind) Action { return Action{Verb: VerbEdit, Section: section} }
func CommentAction() Action                        { return Action{Verb: VerbComment} }
func UploadAction() Action                         { return Action{Verb: VerbUpload} }
func ManageUsersAction() Action                    { return Action{Verb: VerbManageUsers} }
func CreateProjectAction() Action                  { return Action{Verb: VerbCreateProject} }
func DeleteProjectAction() Action                  { return Action{Verb: VerbDeleteProject} }

// PermissionDeniedError reports an authorization failure. It is
// user-visible and not retryable without a role change.
type PermissionDeniedError struct {
	Role   domain.Role
	Action Action
}

func (e *PermissionDeniedError) Error() string {
	return fmt.Sprintf("permission denied: role %q may not %s", e.Role, e.Action)
}

// Gate decides, per intent, whether the acting role may perform it. The
// check and the subsequent apply are atomic because the core runs one
// operation at a time (the host serializes callers).
type Gate struct {
	logger *slog.Logger
}

// NewGate builds a gate. A nil logger disables the decision log.
func NewGate(logger *slog.Logger) *Gate {
	return &Gate{logger: logger}
}

// Authorize returns nil when the actor's role permits the action, a
// *PermissionDeniedError when it does not, and an ErrUnknownRole-wrapped
// error for roles outside the table. It never partially applies
// anything; callers mutate only after a nil return.
func (g *Gate) Authorize(ctx context.Context, actor domain.Actor, action Action) error {
	profile, err := permission.ProfileFor(actor.Role)
	if err != nil {
		return err
	}

	var allowed bool
	switch action.Verb {
	case VerbEdit:
		allowed = profile.CanEdit(action.Section)
	case VerbComment:
		allowed = profile.CanComment
	case VerbUpload:
		allowed = profile.CanUpload
	case VerbManageUsers, VerbDeleteProject:
		allowed = profile.IsAdmin
	case VerbCreateProject:
		allowed = permission.CanCreateProjects(actor.Role)
	default:
		allowed = false
	}

	if g.logger != nil {
		g.logger.DebugContext(ctx, "authz decision",
			slog.String("actor", actor.String()),
			slog.String("action", action.String()),
			slog.String("decision", lo.Ternary(allowed, "allow", "deny")),
		)
	}

	if !allowed {
		return &PermissionDeniedError{Role: actor.Role, Action: action}
	}
	return nil
}
