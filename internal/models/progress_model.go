package models

import (
	"strconv"
	"time"
)

// MaxLives is the hard cap on the lives counter. Every mutation of the
// lives field clamps to [0, MaxLives].
const MaxLives = 5

// UnitProgress tracks a user's state inside a single unit.
// CorrectAnswers has set semantics: a question ID appears at most once and
// the list only ever grows.
type UnitProgress struct {
	Locked         bool     `json:"locked" firestore:"locked"`
	CorrectAnswers []string `json:"correctAnswers" firestore:"correctAnswers"`
	UnitScore      int      `json:"unitScore" firestore:"unitScore"`
}

// HasAnswer reports whether questionID was already answered correctly.
func (u *UnitProgress) HasAnswer(questionID string) bool {
	for _, id := range u.CorrectAnswers {
		if id == questionID {
			return true
		}
	}
	return false
}

// UserProgress is the per-user progress document stored in the "users"
// collection. The Firebase Auth UID is the document ID.
//
// Unit entries are created lazily as units unlock; a missing entry means the
// user has not touched that unit yet. Firestore map keys are strings, so
// Units is keyed by the decimal unit number (see UnitKey).
type UserProgress struct {
	ID               string                   `json:"id" firestore:"-"`
	GlobalScore      int                      `json:"globalScore" firestore:"globalScore"`
	Lives            int                      `json:"lives" firestore:"lives"`
	LastLifeUpdate   time.Time                `json:"lastLifeUpdate" firestore:"lastLifeUpdate"`
	Units            map[string]*UnitProgress `json:"units" firestore:"units"`
	CompletedStories []string                 `json:"completedStories" firestore:"completedStories"`
	LastUpdated      time.Time                `json:"lastUpdated" firestore:"lastUpdated,serverTimestamp"`
}

// UnitKey converts a unit number to its Units map key.
func UnitKey(unit int) string {
	return strconv.Itoa(unit)
}

// NewDefaultProgress returns the document written at first sign-in:
// full lives, zero score, no units started.
func NewDefaultProgress(now time.Time) *UserProgress {
	return &UserProgress{
		GlobalScore:      0,
		Lives:            MaxLives,
		LastLifeUpdate:   now,
		Units:            map[string]*UnitProgress{},
		CompletedStories: []string{},
	}
}

// Unit returns the progress entry for a unit, or nil if the unit has not
// been started.
func (p *UserProgress) Unit(unit int) *UnitProgress {
	if p == nil || p.Units == nil {
		return nil
	}
	return p.Units[UnitKey(unit)]
}

// EnsureUnit returns the progress entry for a unit, creating an empty
// unlocked entry if it does not exist yet.
func (p *UserProgress) EnsureUnit(unit int) *UnitProgress {
	if p.Units == nil {
		p.Units = map[string]*UnitProgress{}
	}
	key := UnitKey(unit)
	if u, ok := p.Units[key]; ok {
		return u
	}
	u := &UnitProgress{Locked: false, CorrectAnswers: []string{}, UnitScore: 0}
	p.Units[key] = u
	return u
}

// HasCorrectAnswer reports whether the question was already recorded as
// answered correctly in its unit.
func (p *UserProgress) HasCorrectAnswer(unit int, questionID string) bool {
	u := p.Unit(unit)
	return u != nil && u.HasAnswer(questionID)
}

// HasCompletedStory reports whether the story ID is in the completed set.
func (p *UserProgress) HasCompletedStory(storyID string) bool {
	if p == nil {
		return false
	}
	for _, id := range p.CompletedStories {
		if id == storyID {
			return true
		}
	}
	return false
}
