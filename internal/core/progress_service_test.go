package core

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ozlemtrn/oynaogren/internal/models"
)

func newTestProgressService(repo *fakeProgressRepository) ProgressService {
	return NewProgressService(repo, testUnits(), testCatalog())
}

func seedUser(repo *fakeProgressRepository, userID string) {
	repo.put(userID, models.NewDefaultProgress(time.Now().UTC()))
}

func TestProgressServiceInitializeIdempotent(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestProgressService(repo)
	ctx := context.Background()

	progress, created, err := svc.Initialize(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, models.MaxLives, progress.Lives)
	assert.Equal(t, 0, progress.GlobalScore)

	// Simulate progress between sign-ins, then initialize again.
	_, err = svc.RecordCorrectAnswer(ctx, "u1", 1, "q1", 5)
	require.NoError(t, err)

	progress, created, err = svc.Initialize(ctx, "u1")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, 5, progress.GlobalScore, "re-initialization must not reset progress")
}

func TestRecordCorrectAnswer(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestProgressService(repo)
	ctx := context.Background()
	seedUser(repo, "u1")

	progress, err := svc.RecordCorrectAnswer(ctx, "u1", 1, "q1", 3)
	require.NoError(t, err)
	assert.Equal(t, 3, progress.GlobalScore)
	assert.Equal(t, 3, progress.Unit(1).UnitScore)
	assert.Equal(t, []string{"q1"}, progress.Unit(1).CorrectAnswers)

	// Same question again: set semantics, no score inflation.
	progress, err = svc.RecordCorrectAnswer(ctx, "u1", 1, "q1", 3)
	require.NoError(t, err)
	assert.Equal(t, 3, progress.GlobalScore)
	assert.Equal(t, []string{"q1"}, progress.Unit(1).CorrectAnswers)
}

func TestRecordCorrectAnswerValidation(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestProgressService(repo)
	ctx := context.Background()
	seedUser(repo, "u1")

	_, err := svc.RecordCorrectAnswer(ctx, "u1", 0, "q1", 1)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = svc.RecordCorrectAnswer(ctx, "u1", 1, "", 1)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = svc.RecordCorrectAnswer(ctx, "u1", 1, "q1", 0)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = svc.RecordCorrectAnswer(ctx, "missing", 1, "q1", 1)
	assert.ErrorIs(t, err, ErrProgressNotFound)
}

func TestDeductLife(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestProgressService(repo)
	ctx := context.Background()
	seedUser(repo, "u1")

	progress, err := svc.DeductLife(ctx, "u1", 1)
	require.NoError(t, err)
	assert.Equal(t, 4, progress.Lives)

	// Over-deduction clamps at zero instead of going negative.
	progress, err = svc.DeductLife(ctx, "u1", 10)
	require.NoError(t, err)
	assert.Equal(t, 0, progress.Lives)

	// Already at zero: rejected with no mutation.
	_, err = svc.DeductLife(ctx, "u1", 1)
	assert.ErrorIs(t, err, ErrNoLivesLeft)

	stored, err := svc.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 0, stored.Lives)
}

func TestSubmitAnswer(t *testing.T) {
	ctx := context.Background()

	t.Run("correct answer records progress once", func(t *testing.T) {
		repo := newFakeRepo()
		svc := newTestProgressService(repo)
		seedUser(repo, "u1")

		result, err := svc.SubmitAnswer(ctx, "u1", "q1", true)
		require.NoError(t, err)
		assert.True(t, result.Recorded)
		assert.False(t, result.LifeLost)
		assert.Equal(t, DefaultAnswerPoints, result.Progress.GlobalScore)

		result, err = svc.SubmitAnswer(ctx, "u1", "q1", true)
		require.NoError(t, err)
		assert.False(t, result.Recorded)
		assert.Equal(t, DefaultAnswerPoints, result.Progress.GlobalScore)
	})

	t.Run("incorrect answer costs a life", func(t *testing.T) {
		repo := newFakeRepo()
		svc := newTestProgressService(repo)
		seedUser(repo, "u1")

		result, err := svc.SubmitAnswer(ctx, "u1", "q1", false)
		require.NoError(t, err)
		assert.True(t, result.LifeLost)
		assert.Equal(t, 4, result.LivesLeft)
		assert.False(t, result.OutOfLives)
	})

	t.Run("losing the last life signals out of lives", func(t *testing.T) {
		repo := newFakeRepo()
		svc := newTestProgressService(repo)
		p := models.NewDefaultProgress(time.Now().UTC())
		p.Lives = 1
		repo.put("u1", p)

		result, err := svc.SubmitAnswer(ctx, "u1", "q1", false)
		require.NoError(t, err)
		assert.True(t, result.LifeLost)
		assert.Equal(t, 0, result.LivesLeft)
		assert.True(t, result.OutOfLives)
	})

	t.Run("incorrect answer at zero lives is not an error", func(t *testing.T) {
		repo := newFakeRepo()
		svc := newTestProgressService(repo)
		p := models.NewDefaultProgress(time.Now().UTC())
		p.Lives = 0
		repo.put("u1", p)

		result, err := svc.SubmitAnswer(ctx, "u1", "q1", false)
		require.NoError(t, err)
		assert.False(t, result.LifeLost)
		assert.True(t, result.OutOfLives)
	})

	t.Run("unknown question is rejected", func(t *testing.T) {
		repo := newFakeRepo()
		svc := newTestProgressService(repo)
		seedUser(repo, "u1")

		_, err := svc.SubmitAnswer(ctx, "u1", "q99", true)
		assert.ErrorIs(t, err, ErrQuestionNotFound)
	})
}

func TestAdvanceUnlocksNextUnit(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestProgressService(repo)
	ctx := context.Background()
	seedUser(repo, "u1")

	// Declining the bonus after the last main question of unit 1.
	result, err := svc.Advance(ctx, "u1", "q2", boolPtr(false))
	require.NoError(t, err)
	assert.Equal(t, StepUnitComplete, result.Kind)
	assert.Equal(t, 2, result.UnlockedUnit)
	require.NotNil(t, result.Progress)
	assert.NotNil(t, result.Progress.Unit(2))
}

func TestAdvanceUnlockIsIdempotent(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestProgressService(repo)
	ctx := context.Background()
	seedUser(repo, "u1")

	// Put recorded progress into unit 2, then re-complete unit 1.
	_, err := svc.RecordCorrectAnswer(ctx, "u1", 2, "q4", 7)
	require.NoError(t, err)

	result, err := svc.Advance(ctx, "u1", "q2", boolPtr(false))
	require.NoError(t, err)
	require.NotNil(t, result.Progress)

	u2 := result.Progress.Unit(2)
	require.NotNil(t, u2)
	assert.Equal(t, []string{"q4"}, u2.CorrectAnswers, "re-unlock must not reset unit progress")
	assert.Equal(t, 7, u2.UnitScore)
}

func TestAdvanceMidRunDoesNotTouchStore(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestProgressService(repo)
	ctx := context.Background()
	seedUser(repo, "u1")

	result, err := svc.Advance(ctx, "u1", "q1", nil)
	require.NoError(t, err)
	assert.Equal(t, StepNextQuestion, result.Kind)
	require.NotNil(t, result.Next)
	assert.Equal(t, "q2", result.Next.ID)
	assert.Nil(t, result.Progress)
}
