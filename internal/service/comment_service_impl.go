package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"planboard/internal/attachment"
	"planboard/internal/authz"
	"planboard/internal/domain"
	"planboard/internal/repository"
)

type commentService struct {
	gate     *authz.Gate
	comments repository.CommentRepo
	registry *attachment.Registry
	obs      Observer
}

// NewCommentService builds the annotation engine. A nil observer
// disables telemetry.
func NewCommentService(gate *authz.Gate, comments repository.CommentRepo, registry *attachment.Registry, obs Observer) CommentService {
	if obs == nil {
		obs = NoopObserver{}
	}
	return &commentService{gate: gate, comments: comments, registry: registry, obs: obs}
}

// Add posts a top-level comment at the head of the section's thread.
// Files ride through the same validation as phase attachments; rejected
// files are reported back without failing the comment.
func (s *commentService) Add(ctx context.Context, actor domain.Actor, sectionKey, content string, files []attachment.File) (*domain.Comment, []attachment.Rejected, error) {
	if err := s.gate.Authorize(ctx, actor, authz.CommentAction()); err != nil {
		return nil, nil, err
	}
	if len(files) > 0 {
		if err := s.gate.Authorize(ctx, actor, authz.UploadAction()); err != nil {
			return nil, nil, err
		}
	}
	projectID, _, ok := domain.SplitSectionKey(sectionKey)
	if !ok {
		return nil, nil, fmt.Errorf("section key %q: %w", sectionKey, ErrInvalidSectionKey)
	}

	accepted, rejected := s.registry.RegisterBatch(files, actor.ID)
	c := &domain.Comment{
		ID:          uuid.New().String(),
		AuthorID:    actor.ID,
		AuthorName:  actor.Name,
		AuthorRole:  actor.Role,
		Content:     content,
		Timestamp:   time.Now().UTC(),
		SectionKey:  sectionKey,
		Attachments: accepted,
		Replies:     []domain.Comment{},
	}
	err := s.comments.Insert(ctx, sectionKey, c)
	emit(ctx, s.obs, "comment.add", actor, projectID, err)
	if err != nil {
		return nil, nil, err
	}
	return c, rejected, nil
}

// Reply appends to a top-level comment's reply list. Replies never carry
// attachments and never nest further.
func (s *commentService) Reply(ctx context.Context, actor domain.Actor, sectionKey, commentID, content string) (*domain.Comment, error) {
	if err := s.gate.Authorize(ctx, actor, authz.CommentAction()); err != nil {
		return nil, err
	}
	projectID, _, ok := domain.SplitSectionKey(sectionKey)
	if !ok {
		return nil, fmt.Errorf("section key %q: %w", sectionKey, ErrInvalidSectionKey)
	}

	reply := &domain.Comment{
		ID:         uuid.New().String(),
		AuthorID:   actor.ID,
		AuthorName: actor.Name,
		AuthorRole: actor.Role,
		Content:    content,
		Timestamp:  time.Now().UTC(),
		SectionKey: sectionKey,
	}
	err := s.comments.AppendReply(ctx, sectionKey, commentID, reply)
	emit(ctx, s.obs, "comment.reply", actor, projectID, err)
	if err != nil {
		return nil, err
	}
	return reply, nil
}

func (s *commentService) ListBySection(ctx context.Context, sectionKey string) ([]*domain.Comment, error) {
	return s.comments.ListBySection(ctx, sectionKey)
}
