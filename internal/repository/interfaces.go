package repository

import (
	"context"
	"errors"

	"planboard/internal/domain"
)

// ErrNotFound signals a stale or invalid entity reference. Callers
// recover by refetching current state.
var ErrNotFound = errors.New("not found")

// ErrCommentNotFound signals a reply addressed to a comment id that does
// not exist in the section's thread.
var ErrCommentNotFound = errors.New("comment not found")

type ProjectRepo interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id string) error
}

// CommentRepo owns the comment-thread map, keyed by section key and
// independent of the project list: deleting a project does not purge its
// threads.
type CommentRepo interface {
	Insert(ctx context.Context, sectionKey string, c *domain.Comment) error
	AppendReply(ctx context.Context, sectionKey, commentID string, reply *domain.Comment) error
	ListBySection(ctx context.Context, sectionKey string) ([]*domain.Comment, error)
}
