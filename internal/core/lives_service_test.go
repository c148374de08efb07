package core

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ozlemtrn/oynaogren/internal/models"
)

func TestRegeneratedLives(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		lives   int
		elapsed time.Duration
		want    int
	}{
		{"nothing before the first full interval", 3, 9 * time.Minute, 0},
		{"one life per full interval", 3, 10 * time.Minute, 1},
		{"partial intervals award nothing", 3, 25 * time.Minute, 2},
		{"capped at max lives", 3, 2 * time.Hour, 2},
		{"full lives never regenerate", models.MaxLives, time.Hour, 0},
		{"zero lives recover fully over time", 0, time.Hour, 5},
		{"clock skew is ignored", 3, -time.Hour, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RegeneratedLives(tt.lives, base, base.Add(tt.elapsed))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRegenerate(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("applies gained lives and stamps the update time", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewLivesService(repo)
		p := models.NewDefaultProgress(base)
		p.Lives = 3
		repo.put("u1", p)

		now := base.Add(25 * time.Minute)
		progress, err := svc.Regenerate(ctx, "u1", now)
		require.NoError(t, err)
		assert.Equal(t, 5, progress.Lives)
		assert.Equal(t, now, progress.LastLifeUpdate)
	})

	t.Run("no gain leaves the document untouched", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewLivesService(repo)
		p := models.NewDefaultProgress(base)
		p.Lives = 3
		repo.put("u1", p)

		now := base.Add(5 * time.Minute)
		progress, err := svc.Regenerate(ctx, "u1", now)
		require.NoError(t, err)
		assert.Equal(t, 3, progress.Lives)
		// LastLifeUpdate must not move, or partial intervals would be lost.
		assert.Equal(t, base, progress.LastLifeUpdate)
	})

	t.Run("missing user", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewLivesService(repo)
		_, err := svc.Regenerate(ctx, "missing", base)
		assert.ErrorIs(t, err, ErrProgressNotFound)
	})
}

func TestPurchaseWithPoints(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	seed := func(lives, score int) *fakeProgressRepository {
		repo := newFakeRepo()
		p := models.NewDefaultProgress(base)
		p.Lives = lives
		p.GlobalScore = score
		repo.put("u1", p)
		return repo
	}

	t.Run("single life costs ten points", func(t *testing.T) {
		repo := seed(2, 15)
		svc := NewLivesService(repo)

		progress, err := svc.PurchaseWithPoints(ctx, "u1", 1)
		require.NoError(t, err)
		assert.Equal(t, 3, progress.Lives)
		assert.Equal(t, 5, progress.GlobalScore)
	})

	t.Run("five pack costs forty points and clamps at the cap", func(t *testing.T) {
		repo := seed(4, 45)
		svc := NewLivesService(repo)

		progress, err := svc.PurchaseWithPoints(ctx, "u1", 5)
		require.NoError(t, err)
		assert.Equal(t, models.MaxLives, progress.Lives)
		assert.Equal(t, 5, progress.GlobalScore)
	})

	t.Run("insufficient points rejects with no mutation", func(t *testing.T) {
		repo := seed(2, 5)
		svc := NewLivesService(repo)

		_, err := svc.PurchaseWithPoints(ctx, "u1", 1)
		assert.ErrorIs(t, err, ErrInsufficientPoints)

		stored, err := repo.Get(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, 2, stored.Lives)
		assert.Equal(t, 5, stored.GlobalScore)
	})

	t.Run("full lives rejects before checking points", func(t *testing.T) {
		repo := seed(models.MaxLives, 100)
		svc := NewLivesService(repo)

		_, err := svc.PurchaseWithPoints(ctx, "u1", 1)
		assert.ErrorIs(t, err, ErrLivesFull)
	})

	t.Run("unknown pack size", func(t *testing.T) {
		repo := seed(2, 100)
		svc := NewLivesService(repo)

		_, err := svc.PurchaseWithPoints(ctx, "u1", 3)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("missing user", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewLivesService(repo)
		_, err := svc.PurchaseWithPoints(ctx, "missing", 1)
		assert.ErrorIs(t, err, ErrProgressNotFound)
	})
}
