package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/ozlemtrn/oynaogren/internal/db"
	"github.com/ozlemtrn/oynaogren/internal/models"
)

// storyService implements StoryService over the static story catalog.
type storyService struct {
	repo    db.ProgressRepository
	stories []models.Story
}

// NewStoryService creates a StoryService.
func NewStoryService(repo db.ProgressRepository, stories []models.Story) StoryService {
	return &storyService{repo: repo, stories: stories}
}

func (s *storyService) List(ctx context.Context, userID string) ([]StoryStatus, error) {
	progress, err := s.repo.Get(ctx, userID)
	if err != nil && !errors.Is(err, db.ErrNotFound) {
		return nil, fmt.Errorf("failed to get progress for user '%s': %w", userID, err)
	}

	out := make([]StoryStatus, 0, len(s.stories))
	for _, story := range s.stories {
		out = append(out, StoryStatus{
			Story:     story,
			Completed: progress.HasCompletedStory(story.ID),
		})
	}
	return out, nil
}

func (s *storyService) Complete(ctx context.Context, userID, storyID string) (*models.UserProgress, error) {
	if !s.storyExists(storyID) {
		return nil, fmt.Errorf("%w: %s", ErrStoryNotFound, storyID)
	}

	progress, err := s.repo.Mutate(ctx, userID, func(p *models.UserProgress) error {
		if p.HasCompletedStory(storyID) {
			// Set semantics: completing a story twice is a no-op.
			return nil
		}
		p.CompletedStories = append(p.CompletedStories, storyID)
		return nil
	})
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: user '%s'", ErrProgressNotFound, userID)
		}
		return nil, fmt.Errorf("failed to complete story '%s' for user '%s': %w", storyID, userID, err)
	}
	return progress, nil
}

func (s *storyService) storyExists(id string) bool {
	for _, story := range s.stories {
		if story.ID == id {
			return true
		}
	}
	return false
}
