package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ozlemtrn/oynaogren/internal/models"
)

func TestCatalogIntegrity(t *testing.T) {
	qs := Questions()
	require.NotEmpty(t, qs)

	unitSet := map[int]bool{}
	for _, u := range Units() {
		unitSet[u.Number] = true
	}

	seen := map[string]bool{}
	for _, q := range qs {
		assert.False(t, seen[q.ID], "duplicate question ID %s", q.ID)
		seen[q.ID] = true
		assert.True(t, unitSet[q.Unit], "question %s references unknown unit %d", q.ID, q.Unit)
		assert.True(t, q.Type.Valid(), "question %s has invalid type %q", q.ID, q.Type)
		assert.NotEmpty(t, q.Description, "question %s has no description", q.ID)
	}

	// Every unit must carry at least one main question, or it could never be
	// completed and everything behind it would be unreachable.
	for _, u := range Units() {
		var mains int
		for _, q := range UnitQuestions(u.Number) {
			if !q.Extra {
				mains++
			}
		}
		assert.Positive(t, mains, "unit %d has no main questions", u.Number)
	}
}

func TestUnitNumbersOrdered(t *testing.T) {
	nums := UnitNumbers()
	require.NotEmpty(t, nums)
	for i := 1; i < len(nums); i++ {
		assert.Greater(t, nums[i], nums[i-1])
	}
}

func TestQuestionNumber(t *testing.T) {
	assert.Equal(t, 12, QuestionNumber("q12"))
	assert.Equal(t, 1, QuestionNumber("q1"))
	assert.Equal(t, 0, QuestionNumber("bogus"))
}

func TestSortByNumberIsNumericNotLexicographic(t *testing.T) {
	qs := []models.Question{{ID: "q10"}, {ID: "q2"}, {ID: "q1"}}
	SortByNumber(qs)
	assert.Equal(t, "q1", qs[0].ID)
	assert.Equal(t, "q2", qs[1].ID)
	assert.Equal(t, "q10", qs[2].ID)
}

func TestQuestionByID(t *testing.T) {
	q, ok := QuestionByID("q1")
	require.True(t, ok)
	assert.Equal(t, 1, q.Unit)

	_, ok = QuestionByID("q999")
	assert.False(t, ok)
}

func TestStoriesHaveUniqueIDsAndSteps(t *testing.T) {
	stories := Stories()
	require.NotEmpty(t, stories)

	seen := map[string]bool{}
	for _, s := range stories {
		assert.False(t, seen[s.ID], "duplicate story ID %s", s.ID)
		seen[s.ID] = true
		assert.NotEmpty(t, s.Title)
		assert.NotEmpty(t, s.Steps, "story %s has no steps", s.ID)
	}

	_, ok := StoryByID(stories[0].ID)
	assert.True(t, ok)
	_, ok = StoryByID("nope")
	assert.False(t, ok)
}
