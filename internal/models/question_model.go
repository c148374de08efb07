package models

// QuestionType enumerates the supported mini-game kinds. Dispatch on the
// question type is always an explicit switch over these constants; unknown
// values are rejected at the boundary.
type QuestionType string

const (
	QuestionMatching    QuestionType = "matching"
	QuestionTranslation QuestionType = "translation"
	QuestionListening   QuestionType = "listening"
	QuestionSpeaking    QuestionType = "speaking"
	QuestionImageChoice QuestionType = "imageChoice"
)

// Valid reports whether t is one of the known question kinds.
func (t QuestionType) Valid() bool {
	switch t {
	case QuestionMatching, QuestionTranslation, QuestionListening,
		QuestionSpeaking, QuestionImageChoice:
		return true
	}
	return false
}

// MatchingPair is one left/right pair of a matching question.
type MatchingPair struct {
	Left  string `json:"left"`
	Right string `json:"right"`
}

// ImageOption is one selectable image of an imageChoice question.
// Image is an asset path or URL resolved by the client.
type ImageOption struct {
	Label string `json:"label"`
	Image string `json:"image"`
}

// Question is one entry of the static question catalog. It is content, not
// user data: the catalog ships with the build and is never mutated.
//
// IDs carry a numeric suffix ("q12") that defines the ordering of questions
// inside a unit. Extra marks bonus questions, which do not gate the next
// unit unless the user opts into them after finishing the main run.
type Question struct {
	ID            string       `json:"id"`
	Unit          int          `json:"unit"`
	Type          QuestionType `json:"type"`
	Extra         bool         `json:"extra,omitempty"`
	Description   string       `json:"description"`
	Sentence      string       `json:"sentence,omitempty"`
	CorrectAnswer string       `json:"correctAnswer,omitempty"`

	// Matching questions only.
	LeftOptions  []string       `json:"leftOptions,omitempty"`
	RightOptions []string       `json:"rightOptions,omitempty"`
	CorrectPairs []MatchingPair `json:"correctPairs,omitempty"`

	// Listening questions only.
	AudioFile string `json:"audioFile,omitempty"`

	// ImageChoice questions only.
	Images []ImageOption `json:"images,omitempty"`
}
