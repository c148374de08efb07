package core

import (
	"github.com/ozlemtrn/oynaogren/internal/catalog"
	"github.com/ozlemtrn/oynaogren/internal/models"
)

// The unit unlock evaluator. Pure functions of the catalog and a progress
// snapshot; callers recompute after every progress mutation instead of
// caching results.

// MainQuestions returns the non-bonus questions of a unit ordered by numeric
// ID.
func MainQuestions(questions []models.Question, unit int) []models.Question {
	var out []models.Question
	for _, q := range questions {
		if q.Unit == unit && !q.Extra {
			out = append(out, q)
		}
	}
	catalog.SortByNumber(out)
	return out
}

// BonusQuestions returns the bonus questions of a unit ordered by numeric ID.
func BonusQuestions(questions []models.Question, unit int) []models.Question {
	var out []models.Question
	for _, q := range questions {
		if q.Unit == unit && q.Extra {
			out = append(out, q)
		}
	}
	catalog.SortByNumber(out)
	return out
}

// unitComplete reports whether every non-bonus question of the unit has been
// answered correctly.
func unitComplete(questions []models.Question, unit int, progress *models.UserProgress) bool {
	for _, q := range MainQuestions(questions, unit) {
		if !progress.HasCorrectAnswer(unit, q.ID) {
			return false
		}
	}
	return true
}

// ComputeLockState derives the locked flag for every unit. Unit 1 is never
// locked; unit k is locked until every non-bonus question of unit k-1 is in
// that unit's correct-answer set.
func ComputeLockState(units []int, questions []models.Question, progress *models.UserProgress) map[int]bool {
	lockState := make(map[int]bool, len(units))
	for i, unit := range units {
		if i == 0 {
			lockState[unit] = false
			continue
		}
		lockState[unit] = !unitComplete(questions, units[i-1], progress)
	}
	return lockState
}

// frontierQuestion returns the first unsolved non-bonus question of the
// unit, the only one enabled ahead of the solved set. ok is false when the
// unit's main run is complete.
func frontierQuestion(questions []models.Question, unit int, progress *models.UserProgress) (models.Question, bool) {
	for _, q := range MainQuestions(questions, unit) {
		if !progress.HasCorrectAnswer(unit, q.ID) {
			return q, true
		}
	}
	return models.Question{}, false
}

// IsQuestionEnabled decides whether a map node is tappable.
//
// Bonus questions are enabled only once solved: they become reviewable after
// the post-unit bonus run and are never reachable as "next" from the map.
// Main questions are enabled once solved, or when they are the unit's
// frontier question.
func IsQuestionEnabled(q models.Question, questions []models.Question, progress *models.UserProgress) bool {
	if progress.HasCorrectAnswer(q.Unit, q.ID) {
		return true
	}
	if q.Extra {
		return false
	}
	frontier, ok := frontierQuestion(questions, q.Unit, progress)
	return ok && frontier.ID == q.ID
}

// EnabledQuestionIDs lists every enabled question across the catalog for the
// given progress snapshot.
func EnabledQuestionIDs(questions []models.Question, progress *models.UserProgress) []string {
	var out []string
	for _, q := range questions {
		if IsQuestionEnabled(q, questions, progress) {
			out = append(out, q.ID)
		}
	}
	return out
}
