package core

import (
	"fmt"

	"github.com/ozlemtrn/oynaogren/internal/models"
)

// StepKind classifies the outcome of an advancement decision.
type StepKind string

const (
	// StepNextQuestion continues to the next question of the current run.
	StepNextQuestion StepKind = "nextQuestion"
	// StepBonusOffer pauses after the last main question: the user chooses
	// between the bonus run and unlocking the next unit.
	StepBonusOffer StepKind = "bonusOffer"
	// StepUnitComplete ends the unit; the next unit is unlocked.
	StepUnitComplete StepKind = "unitComplete"
)

// Step is a pure advancement decision; UnlockUnit is set for
// StepUnitComplete.
type Step struct {
	Kind       StepKind
	Next       *models.Question
	UnlockUnit int
}

// NextStep decides what follows the current question. The unit's catalog is
// partitioned into the ordered main and bonus runs; the current question
// advances within its own run.
//
//   - Last main question with a bonus run available: without a decision the
//     result is a bonus offer; declining completes the unit, accepting jumps
//     to the first bonus question.
//   - Last main question without bonus, or last bonus question: the unit is
//     complete and unit N+1 unlocks.
//   - Anything else: the next question of the same run.
func NextStep(current models.Question, questions []models.Question, acceptBonus *bool) (Step, error) {
	main := MainQuestions(questions, current.Unit)
	bonus := BonusQuestions(questions, current.Unit)

	run := main
	if current.Extra {
		run = bonus
	}

	idx := -1
	for i, q := range run {
		if q.ID == current.ID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return Step{}, fmt.Errorf("%w: %s", ErrQuestionNotFound, current.ID)
	}

	last := idx == len(run)-1

	if !current.Extra && last {
		if len(bonus) == 0 {
			return Step{Kind: StepUnitComplete, UnlockUnit: current.Unit + 1}, nil
		}
		if acceptBonus == nil {
			return Step{Kind: StepBonusOffer}, nil
		}
		if *acceptBonus {
			next := bonus[0]
			return Step{Kind: StepNextQuestion, Next: &next}, nil
		}
		return Step{Kind: StepUnitComplete, UnlockUnit: current.Unit + 1}, nil
	}

	if current.Extra && last {
		return Step{Kind: StepUnitComplete, UnlockUnit: current.Unit + 1}, nil
	}

	next := run[idx+1]
	return Step{Kind: StepNextQuestion, Next: &next}, nil
}
