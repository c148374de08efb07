package core

import (
	"context"
	"time"

	"github.com/ozlemtrn/oynaogren/internal/db"
	"github.com/ozlemtrn/oynaogren/internal/models"
)

// fakeProgressRepository is an in-memory ProgressRepository honoring the same
// transactional contract as the Firestore implementation: Mutate applies fn
// to a copy and stores the result only when fn returns nil.
type fakeProgressRepository struct {
	users  map[string]*models.UserProgress
	events map[string]bool
}

func newFakeRepo() *fakeProgressRepository {
	return &fakeProgressRepository{
		users:  map[string]*models.UserProgress{},
		events: map[string]bool{},
	}
}

func (r *fakeProgressRepository) put(userID string, p *models.UserProgress) {
	p.ID = userID
	r.users[userID] = p
}

func cloneProgress(p *models.UserProgress) *models.UserProgress {
	out := *p
	out.Units = make(map[string]*models.UnitProgress, len(p.Units))
	for k, u := range p.Units {
		cu := *u
		cu.CorrectAnswers = append([]string(nil), u.CorrectAnswers...)
		out.Units[k] = &cu
	}
	out.CompletedStories = append([]string(nil), p.CompletedStories...)
	return &out
}

func (r *fakeProgressRepository) Get(_ context.Context, userID string) (*models.UserProgress, error) {
	p, ok := r.users[userID]
	if !ok {
		return nil, db.ErrNotFound
	}
	return cloneProgress(p), nil
}

func (r *fakeProgressRepository) Initialize(_ context.Context, userID string, now time.Time) (*models.UserProgress, bool, error) {
	if p, ok := r.users[userID]; ok {
		return cloneProgress(p), false, nil
	}
	p := models.NewDefaultProgress(now)
	p.ID = userID
	r.users[userID] = p
	return cloneProgress(p), true, nil
}

func (r *fakeProgressRepository) Mutate(_ context.Context, userID string, fn func(*models.UserProgress) error) (*models.UserProgress, error) {
	p, ok := r.users[userID]
	if !ok {
		return nil, db.ErrNotFound
	}
	next := cloneProgress(p)
	if err := fn(next); err != nil {
		return nil, err
	}
	r.users[userID] = next
	return cloneProgress(next), nil
}

func (r *fakeProgressRepository) CreditLivesOnce(_ context.Context, userID, eventID string, lives int) (bool, error) {
	if r.events[eventID] {
		return false, nil
	}
	r.events[eventID] = true
	p, ok := r.users[userID]
	if !ok {
		return false, nil
	}
	p.Lives += lives
	if p.Lives > models.MaxLives {
		p.Lives = models.MaxLives
	}
	return true, nil
}
