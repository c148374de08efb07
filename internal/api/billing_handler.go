package api

import (
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ozlemtrn/oynaogren/internal/core"
)

// maxWebhookBodyBytes caps the webhook payload we are willing to read.
const maxWebhookBodyBytes = 65536

// BillingHandler handles Stripe checkout creation and webhook deliveries.
type BillingHandler struct {
	billingService core.BillingService
}

// NewBillingHandler creates a new BillingHandler.
func NewBillingHandler(bs core.BillingService) *BillingHandler {
	if bs == nil {
		panic("BillingService cannot be nil in NewBillingHandler")
	}
	return &BillingHandler{billingService: bs}
}

// CreateCheckoutSessionRequest is the payload for starting a real-money life
// purchase. Quantity must be 1 or 5.
type CreateCheckoutSessionRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

// CreateCheckoutSessionResponse carries the Stripe redirect URL.
type CreateCheckoutSessionResponse struct {
	URL string `json:"url"`
}

// CreateCheckoutSessionHandler starts a Stripe Checkout session for a life
// pack. No lives are credited here; the webhook does that after payment.
func (h *BillingHandler) CreateCheckoutSessionHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req CreateCheckoutSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	url, err := h.billingService.CreateCheckoutSession(c.Request.Context(), userID, req.Quantity)
	if err != nil {
		mapCoreErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, CreateCheckoutSessionResponse{URL: url})
}

// StripeWebhookHandler receives webhook deliveries from Stripe. The raw body
// is needed for signature verification, so this route must not run through
// any body-consuming middleware. Processing failures return 5xx so Stripe
// retries the delivery.
func (h *BillingHandler) StripeWebhookHandler(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBodyBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Failed to read request body"})
		return
	}

	signature := c.GetHeader("Stripe-Signature")
	if err := h.billingService.HandleStripeWebhook(c.Request.Context(), signature, payload); err != nil {
		log.Printf("StripeWebhookHandler: processing failed: %v", err)
		mapCoreErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"received": true})
}
