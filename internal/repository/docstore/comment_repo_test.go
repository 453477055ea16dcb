package docstore

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventgram/internal/domain"
	"eventgram/internal/store/memory"
)

func testComment(text, uid string, createdAt time.Time) *domain.Comment {
	return &domain.Comment{
		Text:      text,
		Name:      "taro",
		UID:       uid,
		CreatedAt: createdAt,
	}
}

func TestCommentRepository_CreateGetByID(t *testing.T) {
	ctx := context.Background()
	repo := NewCommentRepository(memory.New())

	c := testComment("see you there", "user-1", day(2024, 6, 1))
	require.NoError(t, repo.Create(ctx, "ev-1", c))
	require.NotEmpty(t, c.ID)
	assert.Equal(t, "ev-1", c.EventID)

	got, err := repo.GetByID(ctx, "ev-1", c.ID)
	require.NoError(t, err)
	assert.Equal(t, "see you there", got.Text)
	assert.Equal(t, "taro", got.Name)
	assert.Equal(t, "user-1", got.UID)
	assert.Equal(t, "ev-1", got.EventID)
	assert.True(t, got.CreatedAt.Equal(c.CreatedAt))
}

func TestCommentRepository_CommentsAreScopedToEvent(t *testing.T) {
	ctx := context.Background()
	repo := NewCommentRepository(memory.New())

	c := testComment("hello", "user-1", day(2024, 6, 1))
	require.NoError(t, repo.Create(ctx, "ev-1", c))

	_, err := repo.GetByID(ctx, "ev-2", c.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)

	others, err := repo.ListByEvent(ctx, "ev-2")
	require.NoError(t, err)
	assert.Empty(t, others)
}

func TestCommentRepository_ListByEvent_OrdersByCreatedAt(t *testing.T) {
	ctx := context.Background()
	repo := NewCommentRepository(memory.New())

	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, "ev-1", testComment("second", "u", base.Add(time.Minute))))
	require.NoError(t, repo.Create(ctx, "ev-1", testComment("first", "u", base)))

	comments, err := repo.ListByEvent(ctx, "ev-1")
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "first", comments[0].Text)
	assert.Equal(t, "second", comments[1].Text)
}

func TestCommentRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewCommentRepository(memory.New())

	c := testComment("bye", "user-1", day(2024, 6, 1))
	require.NoError(t, repo.Create(ctx, "ev-1", c))

	require.NoError(t, repo.Delete(ctx, "ev-1", c.ID))
	_, err := repo.GetByID(ctx, "ev-1", c.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)

	require.ErrorIs(t, repo.Delete(ctx, "ev-1", c.ID), domain.ErrNotFound)
}

func TestCommentRepository_DeleteAll(t *testing.T) {
	ctx := context.Background()

	for _, count := range []int{0, 1, 12} {
		t.Run(fmt.Sprintf("%d comments", count), func(t *testing.T) {
			repo := NewCommentRepository(memory.New())
			base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
			for i := range count {
				c := testComment(fmt.Sprintf("comment %d", i), "u", base.Add(time.Duration(i)*time.Second))
				require.NoError(t, repo.Create(ctx, "ev-1", c))
			}

			require.NoError(t, repo.DeleteAll(ctx, "ev-1"))
			left, err := repo.ListByEvent(ctx, "ev-1")
			require.NoError(t, err)
			assert.Empty(t, left)

			// Retrying a finished cascade is a no-op.
			require.NoError(t, repo.DeleteAll(ctx, "ev-1"))
		})
	}
}
