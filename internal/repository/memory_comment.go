package repository

import (
	"context"
	"fmt"

	"planboard/internal/domain"
)

// MemoryCommentRepo implements CommentRepo with an in-process thread
// map. Like MemoryProjectRepo it does no locking; the host serializes.
type MemoryCommentRepo struct {
	threads map[string][]*domain.Comment
}

// NewMemoryCommentRepo creates an empty in-memory comment store.
func NewMemoryCommentRepo() *MemoryCommentRepo {
	return &MemoryCommentRepo{threads: make(map[string][]*domain.Comment)}
}

// Insert places the comment at the head of the section's thread, so
// retrieval is most-recent-first.
func (r *MemoryCommentRepo) Insert(_ context.Context, sectionKey string, c *domain.Comment) error {
	r.threads[sectionKey] = append([]*domain.Comment{c}, r.threads[sectionKey]...)
	return nil
}

// AppendReply adds the reply to the tail of the matched top-level
// comment's reply list. It only ever writes to a top-level comment, so
// reply nesting stops at one level.
func (r *MemoryCommentRepo) AppendReply(_ context.Context, sectionKey, commentID string, reply *domain.Comment) error {
	for _, comment := range r.threads[sectionKey] {
		if comment.ID == commentID {
			comment.Replies = append(comment.Replies, *reply)
			return nil
		}
	}
	return fmt.Errorf("comment %s in section %s: %w", commentID, sectionKey, ErrCommentNotFound)
}

// ListBySection returns the section's thread, most recent first. Absent
// keys yield an empty list, never an error.
func (r *MemoryCommentRepo) ListBySection(_ context.Context, sectionKey string) ([]*domain.Comment, error) {
	thread := r.threads[sectionKey]
	out := make([]*domain.Comment, len(thread))
	copy(out, thread)
	return out, nil
}
