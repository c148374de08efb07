package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ozlemtrn/oynaogren/internal/core"
)

// ErrorResponse is a generic structure for returning errors via API.
type ErrorResponse struct {
	Error   string `json:"error"`             // A high-level error message or code
	Details string `json:"details,omitempty"` // More specific details about the error, if available
}

// SuccessResponse is a generic structure for simple success messages.
type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// currentUserID pulls the authenticated Firebase UID out of the Gin context.
// The auth middleware is responsible for setting it; a missing key means the
// middleware did not run.
func currentUserID(c *gin.Context) (string, bool) {
	raw, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User ID not found in context"})
		return "", false
	}
	userID, ok := raw.(string)
	if !ok || userID == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid user ID in context"})
		return "", false
	}
	return userID, true
}

// mapCoreErrorToStatus maps errors from the core services to HTTP status
// codes and writes the error response. Business rejections are 409s: normal
// decision outcomes, not system errors.
func mapCoreErrorToStatus(c *gin.Context, err error) {
	var statusCode int
	var errResponse ErrorResponse

	switch {
	case errors.Is(err, core.ErrInvalidArgument):
		statusCode = http.StatusBadRequest
		errResponse = ErrorResponse{Error: "Invalid argument", Details: err.Error()}
	case errors.Is(err, core.ErrProgressNotFound):
		statusCode = http.StatusNotFound
		errResponse = ErrorResponse{Error: "User progress not found", Details: "Call /progress/initialize first."}
	case errors.Is(err, core.ErrQuestionNotFound):
		statusCode = http.StatusNotFound
		errResponse = ErrorResponse{Error: "Question not found", Details: err.Error()}
	case errors.Is(err, core.ErrStoryNotFound):
		statusCode = http.StatusNotFound
		errResponse = ErrorResponse{Error: "Story not found", Details: err.Error()}
	case errors.Is(err, core.ErrNoLivesLeft):
		statusCode = http.StatusConflict
		errResponse = ErrorResponse{Error: "No lives left"}
	case errors.Is(err, core.ErrLivesFull):
		statusCode = http.StatusConflict
		errResponse = ErrorResponse{Error: "Lives already full"}
	case errors.Is(err, core.ErrInsufficientPoints):
		statusCode = http.StatusConflict
		errResponse = ErrorResponse{Error: "Insufficient points"}
	case errors.Is(err, core.ErrWebhookSignature):
		statusCode = http.StatusBadRequest
		errResponse = ErrorResponse{Error: "Webhook signature verification failed"}
	case errors.Is(err, core.ErrStripeClient):
		statusCode = http.StatusServiceUnavailable
		errResponse = ErrorResponse{Error: "Payment provider error", Details: "Could not complete the operation with the payment provider."}
		log.Printf("Stripe Client Error: %v", err)
	default:
		log.Printf("Internal Server Error: %v", err)
		statusCode = http.StatusInternalServerError
		errResponse = ErrorResponse{Error: "An unexpected internal server error occurred."}
	}
	c.JSON(statusCode, errResponse)
}
