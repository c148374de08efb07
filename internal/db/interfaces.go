package db

import (
	"context"
	"time"

	"github.com/ozlemtrn/oynaogren/internal/models"
)

// ProgressRepository defines the storage operations on the per-user progress
// document.
//
// Mutate is the single write primitive for business-rule mutations: it runs
// the given function against the current document inside a transaction and
// persists the result only if the function returns nil. Returning an error
// from fn aborts the transaction with no write, which is how business
// rejections ("lives full", "insufficient points") guarantee zero mutation.
// Clamping invariants (lives in [0,5]) hold because the read-check-write runs
// under the store's transaction isolation, so concurrent triggers cannot
// interleave lost updates.
type ProgressRepository interface {
	// Get retrieves the progress document. Returns ErrNotFound if the user
	// has no document yet.
	Get(ctx context.Context, userID string) (*models.UserProgress, error)

	// Initialize creates the document with defaults if it is absent and
	// reports whether it was created. An existing document is returned
	// untouched: initialization never overwrites recorded progress.
	Initialize(ctx context.Context, userID string, now time.Time) (*models.UserProgress, bool, error)

	// Mutate applies fn to the document transactionally and returns the
	// stored result. Returns ErrNotFound if the document does not exist.
	Mutate(ctx context.Context, userID string, fn func(*models.UserProgress) error) (*models.UserProgress, error)

	// CreditLivesOnce applies a webhook life credit exactly once per event:
	// the processed-event marker and the clamped lives update commit in the
	// same transaction. Reports false without mutation when the event was
	// already processed or the user document is missing.
	CreditLivesOnce(ctx context.Context, userID, eventID string, lives int) (bool, error)
}
