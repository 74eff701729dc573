package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planboard/internal/domain"
)

func TestMemoryCommentRepo_HeadInsertOrdering(t *testing.T) {
	repo := NewMemoryCommentRepo()
	ctx := context.Background()
	key := "p1:scope"

	require.NoError(t, repo.Insert(ctx, key, &domain.Comment{ID: "c1", Content: "first"}))
	require.NoError(t, repo.Insert(ctx, key, &domain.Comment{ID: "c2", Content: "second"}))

	thread, err := repo.ListBySection(ctx, key)
	require.NoError(t, err)
	require.Len(t, thread, 2)
	assert.Equal(t, "c2", thread[0].ID, "most recent first")
	assert.Equal(t, "c1", thread[1].ID)
}

func TestMemoryCommentRepo_AppendReply(t *testing.T) {
	repo := NewMemoryCommentRepo()
	ctx := context.Background()
	key := "p1:timeline"

	require.NoError(t, repo.Insert(ctx, key, &domain.Comment{ID: "c1"}))
	require.NoError(t, repo.Insert(ctx, key, &domain.Comment{ID: "c2"}))

	require.NoError(t, repo.AppendReply(ctx, key, "c1", &domain.Comment{ID: "r1"}))
	require.NoError(t, repo.AppendReply(ctx, key, "c1", &domain.Comment{ID: "r2"}))

	thread, err := repo.ListBySection(ctx, key)
	require.NoError(t, err)
	for _, comment := range thread {
		switch comment.ID {
		case "c1":
			require.Len(t, comment.Replies, 2)
			assert.Equal(t, "r1", comment.Replies[0].ID, "replies append at the tail")
			assert.Equal(t, "r2", comment.Replies[1].ID)
		case "c2":
			assert.Empty(t, comment.Replies, "sibling comment untouched")
		}
	}

	err = repo.AppendReply(ctx, key, "missing", &domain.Comment{ID: "r3"})
	assert.ErrorIs(t, err, ErrCommentNotFound)

	err = repo.AppendReply(ctx, "other:scope", "c1", &domain.Comment{ID: "r4"})
	assert.ErrorIs(t, err, ErrCommentNotFound, "lookup is scoped to the section key")
}

func TestMemoryCommentRepo_AbsentKey(t *testing.T) {
	repo := NewMemoryCommentRepo()

	thread, err := repo.ListBySection(context.Background(), "nope:risks")
	require.NoError(t, err)
	assert.NotNil(t, thread)
	assert.Empty(t, thread)
}
