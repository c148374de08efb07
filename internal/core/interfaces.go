package core

import (
	"context"
	"time"

	"github.com/ozlemtrn/oynaogren/internal/models"
)

// ProgressService drives the progression rules engine: progress reads,
// answer submission, and unit advancement.
type ProgressService interface {
	// Initialize creates the progress document with defaults if absent.
	// Reports whether the document was created. Idempotent: an existing
	// document is never overwritten.
	Initialize(ctx context.Context, userID string) (*models.UserProgress, bool, error)

	// Get returns the raw progress document.
	Get(ctx context.Context, userID string) (*models.UserProgress, error)

	// MapState returns the progress document together with the computed
	// per-unit lock state and the set of currently enabled question IDs.
	MapState(ctx context.Context, userID string) (*MapState, error)

	// RecordCorrectAnswer records a correct answer for a question. Set
	// semantics: an already-recorded question ID changes nothing and awards
	// no points.
	RecordCorrectAnswer(ctx context.Context, userID string, unit int, questionID string, points int) (*models.UserProgress, error)

	// DeductLife removes lives, clamped at zero. Returns ErrNoLivesLeft with
	// no mutation when the user is already at zero.
	DeductLife(ctx context.Context, userID string, amount int) (*models.UserProgress, error)

	// SubmitAnswer applies one answer submission: a correct answer records
	// progress (idempotently), an incorrect one costs a life. The result
	// carries the out-of-lives signal the client must act on.
	SubmitAnswer(ctx context.Context, userID, questionID string, correct bool) (*AnswerResult, error)

	// Advance decides what follows the given question: the next question in
	// its list, a bonus offer, or unit completion (which unlocks the next
	// unit). acceptBonus resolves a pending bonus offer; nil means no
	// decision has been made yet.
	Advance(ctx context.Context, userID, questionID string, acceptBonus *bool) (*AdvanceResult, error)
}

// MapState is the question-map view: raw progress plus derived lock and
// enablement state, recomputed on every read.
type MapState struct {
	Progress         *models.UserProgress `json:"progress"`
	LockState        map[int]bool         `json:"lockState"`
	EnabledQuestions []string             `json:"enabledQuestions"`
}

// AnswerResult reports the effect of one answer submission.
type AnswerResult struct {
	Question   string               `json:"question"`
	Correct    bool                 `json:"correct"`
	Recorded   bool                 `json:"recorded"`   // progress was newly recorded
	LifeLost   bool                 `json:"lifeLost"`   // a life was deducted
	LivesLeft  int                  `json:"livesLeft"`
	OutOfLives bool                 `json:"outOfLives"` // session must redirect away from questions
	Progress   *models.UserProgress `json:"progress"`
}

// AdvanceResult reports the next step after a question.
type AdvanceResult struct {
	Kind         StepKind             `json:"kind"`
	Next         *models.Question     `json:"next,omitempty"`
	UnlockedUnit int                  `json:"unlockedUnit,omitempty"`
	Progress     *models.UserProgress `json:"progress,omitempty"`
}

// LivesService implements the lives economy: timed regeneration and the
// points barter.
type LivesService interface {
	// Regenerate applies time-based life regeneration as of now. A no-gain
	// call leaves the document untouched.
	Regenerate(ctx context.Context, userID string, now time.Time) (*models.UserProgress, error)

	// PurchaseWithPoints trades globalScore for lives. pack must be 1 or 5.
	PurchaseWithPoints(ctx context.Context, userID string, pack int) (*models.UserProgress, error)
}

// BillingService handles real-money life purchases through the payment
// gateway.
type BillingService interface {
	// CreateCheckoutSession starts a payment for a life pack and returns the
	// gateway redirect URL. No progress mutation happens here; the credit is
	// applied by the webhook after payment completes.
	CreateCheckoutSession(ctx context.Context, userID string, quantity int) (string, error)

	// HandleStripeWebhook verifies and processes a webhook delivery. Safe to
	// call more than once for the same event.
	HandleStripeWebhook(ctx context.Context, signature string, payload []byte) error
}

// StoryService tracks interactive-story completion.
type StoryService interface {
	List(ctx context.Context, userID string) ([]StoryStatus, error)
	Complete(ctx context.Context, userID, storyID string) (*models.UserProgress, error)
}

// StoryStatus pairs a catalog story with the user's completion flag.
type StoryStatus struct {
	models.Story
	Completed bool `json:"completed"`
}
