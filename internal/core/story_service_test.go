package core

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ozlemtrn/oynaogren/internal/models"
)

func testStories() []models.Story {
	return []models.Story{
		{ID: "story1", Title: "First"},
		{ID: "story2", Title: "Second"},
	}
}

func TestStoryServiceList(t *testing.T) {
	ctx := context.Background()

	t.Run("annotates completion state", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewStoryService(repo, testStories())
		p := models.NewDefaultProgress(time.Now().UTC())
		p.CompletedStories = []string{"story2"}
		repo.put("u1", p)

		stories, err := svc.List(ctx, "u1")
		require.NoError(t, err)
		require.Len(t, stories, 2)
		assert.False(t, stories[0].Completed)
		assert.True(t, stories[1].Completed)
	})

	t.Run("uninitialized user sees nothing completed", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewStoryService(repo, testStories())

		stories, err := svc.List(ctx, "missing")
		require.NoError(t, err)
		require.Len(t, stories, 2)
		assert.False(t, stories[0].Completed)
		assert.False(t, stories[1].Completed)
	})
}

func TestStoryServiceComplete(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	svc := NewStoryService(repo, testStories())
	repo.put("u1", models.NewDefaultProgress(time.Now().UTC()))

	progress, err := svc.Complete(ctx, "u1", "story1")
	require.NoError(t, err)
	assert.Equal(t, []string{"story1"}, progress.CompletedStories)

	// Completing twice must not duplicate the entry.
	progress, err = svc.Complete(ctx, "u1", "story1")
	require.NoError(t, err)
	assert.Equal(t, []string{"story1"}, progress.CompletedStories)

	_, err = svc.Complete(ctx, "u1", "storyX")
	assert.ErrorIs(t, err, ErrStoryNotFound)

	_, err = svc.Complete(ctx, "missing", "story1")
	assert.ErrorIs(t, err, ErrProgressNotFound)
}
