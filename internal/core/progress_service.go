package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ozlemtrn/oynaogren/internal/db"
	"github.com/ozlemtrn/oynaogren/internal/models"
)

// DefaultAnswerPoints is the award for a first-time correct answer.
const DefaultAnswerPoints = 1

// progressService implements ProgressService over a ProgressRepository and a
// static question catalog.
type progressService struct {
	repo      db.ProgressRepository
	questions []models.Question
	units     []int
}

// NewProgressService creates a ProgressService. units is the ordered unit
// list the lock-state evaluator runs over; questions is the full catalog.
func NewProgressService(repo db.ProgressRepository, units []int, questions []models.Question) ProgressService {
	return &progressService{
		repo:      repo,
		questions: questions,
		units:     units,
	}
}

func (s *progressService) Initialize(ctx context.Context, userID string) (*models.UserProgress, bool, error) {
	progress, created, err := s.repo.Initialize(ctx, userID, time.Now().UTC())
	if err != nil {
		return nil, false, fmt.Errorf("failed to initialize progress for user '%s': %w", userID, err)
	}
	return progress, created, nil
}

func (s *progressService) Get(ctx context.Context, userID string) (*models.UserProgress, error) {
	progress, err := s.repo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: user '%s'", ErrProgressNotFound, userID)
		}
		return nil, fmt.Errorf("failed to get progress for user '%s': %w", userID, err)
	}
	return progress, nil
}

func (s *progressService) MapState(ctx context.Context, userID string) (*MapState, error) {
	progress, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &MapState{
		Progress:         progress,
		LockState:        ComputeLockState(s.units, s.questions, progress),
		EnabledQuestions: EnabledQuestionIDs(s.questions, progress),
	}, nil
}

func (s *progressService) RecordCorrectAnswer(ctx context.Context, userID string, unit int, questionID string, points int) (*models.UserProgress, error) {
	if unit <= 0 || questionID == "" || points <= 0 {
		return nil, fmt.Errorf("%w: unit, questionId and points are required", ErrInvalidArgument)
	}

	progress, err := s.repo.Mutate(ctx, userID, func(p *models.UserProgress) error {
		u := p.EnsureUnit(unit)
		if u.HasAnswer(questionID) {
			// Already recorded: set semantics, no score inflation.
			return nil
		}
		u.CorrectAnswers = append(u.CorrectAnswers, questionID)
		u.UnitScore += points
		p.GlobalScore += points
		return nil
	})
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: user '%s'", ErrProgressNotFound, userID)
		}
		return nil, fmt.Errorf("failed to record correct answer for user '%s': %w", userID, err)
	}
	return progress, nil
}

func (s *progressService) DeductLife(ctx context.Context, userID string, amount int) (*models.UserProgress, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: deduction amount must be positive", ErrInvalidArgument)
	}

	now := time.Now().UTC()
	progress, err := s.repo.Mutate(ctx, userID, func(p *models.UserProgress) error {
		if p.Lives <= 0 {
			return ErrNoLivesLeft
		}
		p.Lives -= amount
		if p.Lives < 0 {
			p.Lives = 0
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

func (s *progressService) SubmitAnswer(ctx context.Context, userID, questionID string, correct bool) (*AnswerResult, error) {
	question, ok := s.questionByID(questionID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrQuestionNotFound, questionID)
	}

	result := &AnswerResult{Question: questionID, Correct: correct}

	if correct {
		var recorded bool
		progress, err := s.repo.Mutate(ctx, userID, func(p *models.UserProgress) error {
			u := p.EnsureUnit(question.Unit)
			if u.HasAnswer(questionID) {
				recorded = false
				return nil
			}
			u.CorrectAnswers = append(u.CorrectAnswers, questionID)
			u.UnitScore += DefaultAnswerPoints
			p.GlobalScore += DefaultAnswerPoints
			recorded = true
			return nil
		})
		if err != nil {
			if errors.Is(err, db.ErrNotFound) {
				return nil, fmt.Errorf("%w: user '%s'", ErrProgressNotFound, userID)
			}
			return nil, fmt.Errorf("failed to submit answer for user '%s': %w", userID, err)
		}
		result.Recorded = recorded
		result.Progress = progress
		result.LivesLeft = progress.Lives
		return result, nil
	}

	// Incorrect answer: costs one life unless the user is already out.
	progress, err := s.DeductLife(ctx, userID, 1)
	if err != nil {
		if errors.Is(err, ErrNoLivesLeft) {
			result.OutOfLives = true
			result.LivesLeft = 0
			return result, nil
		}
		return nil, err
	}
	result.LifeLost = true
	result.Progress = progress
	result.LivesLeft = progress.Lives
	result.OutOfLives = progress.Lives == 0
	return result, nil
}

func (s *progressService) Advance(ctx context.Context, userID, questionID string, acceptBonus *bool) (*AdvanceResult, error) {
	question, ok := s.questionByID(questionID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrQuestionNotFound, questionID)
	}

	step, err := NextStep(question, s.questions, acceptBonus)
	if err != nil {
		return nil, err
	}

	result := &AdvanceResult{Kind: step.Kind, Next: step.Next}
	if step.Kind != StepUnitComplete {
		return result, nil
	}

	progress, err := s.unlockUnit(ctx, userID, step.UnlockUnit)
	if err != nil {
		return nil, err
	}
	result.UnlockedUnit = step.UnlockUnit
	result.Progress = progress
	return result, nil
}

// unlockUnit creates the progress entry for a freshly unlocked unit. An
// existing entry is left alone: re-unlocking must never reset recorded
// answers or scores.
func (s *progressService) unlockUnit(ctx context.Context, userID string, unit int) (*models.UserProgress, error) {
	progress, err := s.repo.Mutate(ctx, userID, func(p *models.UserProgress) error {
		if p.Unit(unit) != nil {
			return nil
		}
		p.EnsureUnit(unit)
		return nil
	})
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: user '%s'", ErrProgressNotFound, userID)
		}
		return nil, fmt.Errorf("failed to unlock unit %d for user '%s': %w", unit, userID, err)
	}
	return progress, nil
}

func (s *progressService) questionByID(id string) (models.Question, bool) {
	for _, q := range s.questions {
		if q.ID == id {
			return q, true
		}
	}
	return models.Question{}, false
}
