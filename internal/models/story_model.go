package models

// StoryStepType distinguishes dialog lines from embedded comprehension
// questions inside a story.
type StoryStepType string

const (
	StoryStepDialog   StoryStepType = "dialog"
	StoryStepQuestion StoryStepType = "question"
)

// StoryStep is one beat of a story: either a character speaking or a
// multiple-choice question about what was just said.
type StoryStep struct {
	Type          StoryStepType `json:"type"`
	Speaker       string        `json:"speaker,omitempty"`
	Text          string        `json:"text"`
	Options       []string      `json:"options,omitempty"`
	CorrectAnswer string        `json:"correctAnswer,omitempty"`
}

// Story is one entry of the static story catalog.
type Story struct {
	ID    string      `json:"id"`
	Title string      `json:"title"`
	Steps []StoryStep `json:"steps"`
}
