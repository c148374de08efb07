package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ozlemtrn/oynaogren/internal/db"
	"github.com/ozlemtrn/oynaogren/internal/models"
)

// LifeRegenInterval is the time a single life takes to regenerate.
const LifeRegenInterval = 10 * time.Minute

// lifePackCosts is the points price of each purchasable life pack.
var lifePackCosts = map[int]int{
	1: 10,
	5: 40,
}

// errUnchanged aborts a Mutate call whose function decided no write is
// needed; the caller treats it as success with the read snapshot.
var errUnchanged = errors.New("progress unchanged")

// livesService implements LivesService.
type livesService struct {
	repo db.ProgressRepository
}

// NewLivesService creates a LivesService.
func NewLivesService(repo db.ProgressRepository) LivesService {
	return &livesService{repo: repo}
}

// RegeneratedLives computes how many lives have regenerated between last and
// now: one per full ten-minute interval, never past the cap. Partial
// intervals award nothing.
func RegeneratedLives(lives int, last, now time.Time) int {
	if lives >= models.MaxLives {
		return 0
	}
	elapsed := now.Sub(last)
	if elapsed <= 0 {
		return 0
	}
	gain := int(elapsed / LifeRegenInterval)
	if room := models.MaxLives - lives; gain > room {
		gain = room
	}
	return gain
}

func (s *livesService) Regenerate(ctx context.Context, userID string, now time.Time) (*models.UserProgress, error) {
	var snapshot *models.UserProgress
	progress, err := s.repo.Mutate(ctx, userID, func(p *models.UserProgress) error {
		gain := RegeneratedLives(p.Lives, p.LastLifeUpdate, now)
		if gain == 0 {
			snapshot = p
			return errUnchanged
		}
		p.Lives += gain
		p.LastLifeUpdate = now
		return nil
	})
	if err != nil {
		if errors.Is(err, errUnchanged) {
			return snapshot, nil
		}
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: user '%s'", ErrProgressNotFound, userID)
		}
		return nil, fmt.Errorf("failed to regenerate lives for user '%s': %w", userID, err)
	}
	return progress, nil
}

func (s *livesService) PurchaseWithPoints(ctx context.Context, userID string, pack int) (*models.UserProgress, error) {
	cost, ok := lifePackCosts[pack]
	if !ok {
		return nil, fmt.Errorf("%w: life pack must be 1 or 5, got %d", ErrInvalidArgument, pack)
	}

	now := time.Now().UTC()
	progress, err := s.repo.Mutate(ctx, userID, func(p *models.UserProgress) error {
		if p.Lives >= models.MaxLives {
			return ErrLivesFull
		}
		if p.GlobalScore < cost {
			return ErrInsufficientPoints
		}
		p.GlobalScore -= cost
		p.Lives += pack
		if p.Lives > models.MaxLives {
			p.Lives = models.MaxLives
		}
		p.LastLifeUpdate = now
		return nil
	})
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: user '%s'", ErrProgressNotFound, userID)
		}
		return nil, err
	}
	return progress, nil
}
