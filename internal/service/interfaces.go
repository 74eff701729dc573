package service

import (
	"context"

	"planboard/internal/attachment"
	"planboard/internal/domain"
)

// ProjectUpdate is a partial project update; nil fields are unchanged.
type ProjectUpdate struct {
	Name *string
}

// PhaseUpdate is a partial phase update; nil fields are unchanged. Date
// fields take "2006-01-02" strings; an empty string clears the date.
// Whenever both dates end up set after the merge, Duration is recomputed
// from them and any manual Duration in the update is ignored.
type PhaseUpdate struct {
	Name      *string
	StartDate *string
	EndDate   *string
	Duration  *string
	Content   *string
}

// ProjectService is the entity store's mutation surface. Every mutating
// operation authorizes the actor first and leaves the store untouched on
// any failure.
type ProjectService interface {
	Create(ctx context.Context, actor domain.Actor, name string) (*domain.Project, error)
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
	Update(ctx context.Context, actor domain.Actor, id string, upd ProjectUpdate) error
	Delete(ctx context.Context, actor domain.Actor, id string) error

	UpdatePhase(ctx context.Context, actor domain.Actor, id string, phaseIndex int, upd PhaseUpdate) (*domain.Phase, error)
	AttachPhaseFiles(ctx context.Context, actor domain.Actor, id string, phaseIndex int, files []attachment.File) ([]domain.Attachment, []attachment.Rejected, error)

	UpdateBudget(ctx context.Context, actor domain.Actor, id string, budget domain.Budget) error
	AddRisk(ctx context.Context, actor domain.Actor, id string, risk domain.Risk) (*domain.Risk, error)
	UpdateRisk(ctx context.Context, actor domain.Actor, id string, index int, risk domain.Risk) error
	DeleteRisk(ctx context.Context, actor domain.Actor, id string, index int) error
	UpdateCommunication(ctx context.Context, actor domain.Actor, id string, comm domain.Communication) error
	UpdateTeam(ctx context.Context, actor domain.Actor, id string, members []domain.TeamMember) error
}

// ReviewService drives the per-(phase, role) approval state machine.
type ReviewService interface {
	AddReviewer(ctx context.Context, actor domain.Actor, projectID string, phaseIndex int, role domain.Role) (*domain.Reviewer, error)
	SetReviewerStatus(ctx context.Context, actor domain.Actor, projectID, reviewerID string, status domain.ReviewStatus, comment string) (*domain.Reviewer, error)
	RemoveReviewer(ctx context.Context, actor domain.Actor, projectID, reviewerID string) error
}

// CommentService is the annotation engine: append-only threads keyed by
// section key, one level of reply nesting.
type CommentService interface {
	Add(ctx context.Context, actor domain.Actor, sectionKey, content string, files []attachment.File) (*domain.Comment, []attachment.Rejected, error)
	Reply(ctx context.Context, actor domain.Actor, sectionKey, commentID, content string) (*domain.Comment, error)
	ListBySection(ctx context.Context, sectionKey string) ([]*domain.Comment, error)
}
