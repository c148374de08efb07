package db

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ozlemtrn/oynaogren/internal/models"
)

const (
	usersCollection        = "users"
	stripeEventsCollection = "stripeEvents"
)

// ErrNotFound is returned when a document is not found in Firestore.
var ErrNotFound = errors.New("document not found")

// firestoreProgressRepository implements ProgressRepository on Firestore.
type firestoreProgressRepository struct {
	client *firestore.Client
}

// NewFirestoreProgressRepository creates a new Firestore-backed
// ProgressRepository.
func NewFirestoreProgressRepository(client *firestore.Client) ProgressRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for ProgressRepository.")
	}
	return &firestoreProgressRepository{client: client}
}

func (r *firestoreProgressRepository) userRef(userID string) *firestore.DocumentRef {
	return r.client.Collection(usersCollection).Doc(userID)
}

func (r *firestoreProgressRepository) eventRef(eventID string) *firestore.DocumentRef {
	return r.client.Collection(stripeEventsCollection).Doc(eventID)
}

func decodeProgress(snap *firestore.DocumentSnapshot) (*models.UserProgress, error) {
	var progress models.UserProgress
	if err := snap.DataTo(&progress); err != nil {
		return nil, fmt.Errorf("failed to decode progress for '%s': %w", snap.Ref.ID, err)
	}
	progress.ID = snap.Ref.ID
	return &progress, nil
}

// Get retrieves a user's progress document.
func (r *firestoreProgressRepository) Get(ctx context.Context, userID string) (*models.UserProgress, error) {
	if userID == "" {
		return nil, errors.New("userID cannot be empty for Get operation")
	}
	snap, err := r.userRef(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("progress for user '%s' not found: %w", userID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get progress for user '%s': %w", userID, err)
	}
	return decodeProgress(snap)
}

// Initialize creates the progress document with defaults if it is absent.
// An existing document is never touched, so re-initialization on every
// sign-in cannot reset a returning user's score or lives.
func (r *firestoreProgressRepository) Initialize(ctx context.Context, userID string, now time.Time) (*models.UserProgress, bool, error) {
	if userID == "" {
		return nil, false, errors.New("userID cannot be empty for Initialize operation")
	}

	ref := r.userRef(userID)
	var progress *models.UserProgress
	var created bool

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil {
			if status.Code(err) != codes.NotFound {
				return err
			}
			defaults := models.NewDefaultProgress(now)
			if err := tx.Set(ref, defaults); err != nil {
				return err
			}
			defaults.ID = userID
			progress = defaults
			created = true
			return nil
		}
		progress, err = decodeProgress(snap)
		created = false
		return err
	})
	if err != nil {
		return nil, false, fmt.Errorf("failed to initialize progress for user '%s': %w", userID, err)
	}
	return progress, created, nil
}

// Mutate runs fn against the current document inside a transaction and
// writes the result back. An error from fn aborts the transaction and is
// returned unchanged, with no write performed.
func (r *firestoreProgressRepository) Mutate(ctx context.Context, userID string, fn func(*models.UserProgress) error) (*models.UserProgress, error) {
	if userID == "" {
		return nil, errors.New("userID cannot be empty for Mutate operation")
	}

	ref := r.userRef(userID)
	var progress *models.UserProgress

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return fmt.Errorf("progress for user '%s' not found: %w", userID, ErrNotFound)
			}
			return err
		}
		progress, err = decodeProgress(snap)
		if err != nil {
			return err
		}
		if err := fn(progress); err != nil {
			return err
		}
		return tx.Set(ref, progress)
	})
	if err != nil {
		return nil, err
	}
	return progress, nil
}

// CreditLivesOnce credits lives for a completed checkout event. The
// processed-event marker and the lives update are written in one
// transaction, so a redelivered webhook event can never credit twice and a
// crash between "mark" and "credit" cannot lose a paid credit.
func (r *firestoreProgressRepository) CreditLivesOnce(ctx context.Context, userID, eventID string, lives int) (bool, error) {
	if userID == "" || eventID == "" {
		return false, errors.New("userID and eventID are required for CreditLivesOnce")
	}
	if lives <= 0 {
		return false, fmt.Errorf("lives must be positive, got %d", lives)
	}

	userRef := r.userRef(userID)
	evRef := r.eventRef(eventID)
	var credited bool

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		credited = false

		// All reads happen before any write inside a Firestore transaction.
		if _, err := tx.Get(evRef); err == nil {
			// Marker exists: duplicate delivery, nothing to do.
			return nil
		} else if status.Code(err) != codes.NotFound {
			return err
		}

		snap, err := tx.Get(userRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				// No progress document to credit. Record the event anyway so
				// the gateway stops retrying something we can never act on.
				log.Printf("CreditLivesOnce: user '%s' has no progress document, event %s recorded without credit", userID, eventID)
				return tx.Create(evRef, map[string]interface{}{
					"uid":         userID,
					"lives":       lives,
					"credited":    false,
					"processedAt": firestore.ServerTimestamp,
				})
			}
			return err
		}

		progress, err := decodeProgress(snap)
		if err != nil {
			return err
		}
		progress.Lives = progress.Lives + lives
		if progress.Lives > models.MaxLives {
			progress.Lives = models.MaxLives
		}
		progress.LastLifeUpdate = time.Now().UTC()

		if err := tx.Create(evRef, map[string]interface{}{
			"uid":         userID,
			"lives":       lives,
			"credited":    true,
			"processedAt": firestore.ServerTimestamp,
		}); err != nil {
			return err
		}
		if err := tx.Set(userRef, progress); err != nil {
			return err
		}
		credited = true
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to credit lives for user '%s' (event %s): %w", userID, eventID, err)
	}
	return credited, nil
}
