package core

import "errors"

// Business and integration errors surfaced by the core services. Handlers
// match these with errors.Is and map them to HTTP statuses.
var (
	// ErrProgressNotFound is returned when a user has no progress document.
	ErrProgressNotFound = errors.New("user progress not found")

	// ErrInvalidArgument is returned for malformed input rejected before any
	// store access.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrQuestionNotFound is returned when a question ID is not in the
	// catalog.
	ErrQuestionNotFound = errors.New("question not found in catalog")

	// ErrStoryNotFound is returned when a story ID is not in the catalog.
	ErrStoryNotFound = errors.New("story not found in catalog")

	// ErrNoLivesLeft is the business rejection for deducting from a user who
	// is already at zero lives. No mutation occurs.
	ErrNoLivesLeft = errors.New("no lives left")

	// ErrLivesFull is the business rejection for buying lives while already
	// at the cap. No mutation occurs.
	ErrLivesFull = errors.New("lives already full")

	// ErrInsufficientPoints is the business rejection for a points purchase
	// the user cannot afford. No mutation occurs.
	ErrInsufficientPoints = errors.New("insufficient points")

	// ErrStripeClient wraps failures talking to the payment provider.
	ErrStripeClient = errors.New("stripe client operation failed")

	// ErrWebhookSignature is returned when a webhook payload cannot be
	// authenticated against the signing secret.
	ErrWebhookSignature = errors.New("stripe webhook signature verification failed")
)
