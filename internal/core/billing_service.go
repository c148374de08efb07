package core

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"

	stripe "github.com/stripe/stripe-go/v76"
	stripeclient "github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"

	"github.com/ozlemtrn/oynaogren/internal/db"
	"github.com/ozlemtrn/oynaogren/internal/models"
)

// checkoutCompletedEvent is the only webhook event type this service acts on.
const checkoutCompletedEvent = "checkout.session.completed"

// BillingConfig carries the payment-gateway configuration the billing
// service needs. Values are opaque to the rules logic.
type BillingConfig struct {
	SecretKey     string
	WebhookSecret string
	PriceIDLife1  string
	PriceIDLife5  string
	ClientURL     string
}

// billingService implements BillingService on the Stripe SDK.
type billingService struct {
	repo   db.ProgressRepository
	cfg    BillingConfig
	client *stripeclient.API
}

// NewBillingService creates a BillingService with its own Stripe client
// instance. The client is constructed here and injected nowhere else; no
// package-global Stripe state is used.
func NewBillingService(repo db.ProgressRepository, cfg BillingConfig) BillingService {
	sc := &stripeclient.API{}
	sc.Init(cfg.SecretKey, nil)
	return &billingService{repo: repo, cfg: cfg, client: sc}
}

func (s *billingService) priceID(quantity int) string {
	switch quantity {
	case 1:
		return s.cfg.PriceIDLife1
	case 5:
		return s.cfg.PriceIDLife5
	}
	return ""
}

// CreateCheckoutSession starts a Stripe Checkout payment for a life pack.
// The session metadata carries the uid and pack size; the webhook reads them
// back after payment completes. Rejected when the user's lives are already
// full, so the client cannot start a purchase that could never be credited
// in full.
func (s *billingService) CreateCheckoutSession(ctx context.Context, userID string, quantity int) (string, error) {
	priceID := s.priceID(quantity)
	if priceID == "" {
		return "", fmt.Errorf("%w: only 1 or 5 lives allowed, got %d", ErrInvalidArgument, quantity)
	}

	progress, err := s.repo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return "", fmt.Errorf("%w: user '%s'", ErrProgressNotFound, userID)
		}
		return "", fmt.Errorf("failed to read progress for user '%s': %w", userID, err)
	}
	if progress.Lives >= models.MaxLives {
		return "", ErrLivesFull
	}

	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(priceID),
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(s.cfg.ClientURL + "/payment-success.html"),
		CancelURL:  stripe.String(s.cfg.ClientURL + "/payment-cancel.html"),
	}
	params.Context = ctx
	params.AddMetadata("uid", userID)
	params.AddMetadata("lives", strconv.Itoa(quantity))

	session, err := s.client.CheckoutSessions.New(params)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrStripeClient, err)
	}
	return session.URL, nil
}

// HandleStripeWebhook verifies a webhook delivery and applies the life
// credit for completed checkouts.
//
// Stripe delivers events at least once, so the credit goes through
// CreditLivesOnce, which pairs a processed-event marker with the clamped
// lives update in one transaction. Events this service cannot act on
// (unrelated types, missing metadata) return nil so the gateway stops
// retrying them; only signature failures and store errors are returned as
// errors.
func (s *billingService) HandleStripeWebhook(ctx context.Context, signature string, payload []byte) error {
	event, err := webhook.ConstructEvent(payload, signature, s.cfg.WebhookSecret)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWebhookSignature, err)
	}

	if event.Type != checkoutCompletedEvent {
		return nil
	}

	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		log.Printf("Stripe webhook %s: cannot decode checkout session: %v", event.ID, err)
		return nil
	}

	uid := session.Metadata["uid"]
	lives, _ := strconv.Atoi(session.Metadata["lives"])
	if uid == "" || lives <= 0 {
		log.Printf("Stripe webhook %s: missing or invalid metadata, skipping credit", event.ID)
		return nil
	}

	credited, err := s.repo.CreditLivesOnce(ctx, uid, event.ID, lives)
	if err != nil {
		return fmt.Errorf("failed to apply webhook credit for user '%s': %w", uid, err)
	}
	if !credited {
		log.Printf("Stripe webhook %s: already processed or user missing, no credit applied", event.ID)
	}
	return nil
}
