package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ozlemtrn/oynaogren/internal/core"
)

// LivesHandler handles lives-economy endpoints: deduction, regeneration, and
// the points barter.
type LivesHandler struct {
	progressService core.ProgressService
	livesService    core.LivesService
}

// NewLivesHandler creates a new LivesHandler.
func NewLivesHandler(ps core.ProgressService, ls core.LivesService) *LivesHandler {
	if ps == nil || ls == nil {
		panic("services cannot be nil in NewLivesHandler")
	}
	return &LivesHandler{progressService: ps, livesService: ls}
}

// DeductLifeRequest is the payload for losing lives. Amount defaults to 1
// when omitted.
type DeductLifeRequest struct {
	Amount int `json:"amount"`
}

// DeductLifeHandler removes lives from the authenticated user, clamped at
// zero. A user already at zero gets a 409.
func (h *LivesHandler) DeductLifeHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req DeductLifeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}
	if req.Amount == 0 {
		req.Amount = 1
	}

	progress, err := h.progressService.DeductLife(c.Request.Context(), userID, req.Amount)
	if err != nil {
		mapCoreErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "Life deducted", Data: progress})
}

// RegenerateHandler applies time-based life regeneration and returns the
// refreshed progress. Idempotent between regeneration ticks.
func (h *LivesHandler) RegenerateHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	progress, err := h.livesService.Regenerate(c.Request.Context(), userID, time.Now().UTC())
	if err != nil {
		mapCoreErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, progress)
}

// PurchaseLivesRequest is the payload for buying lives with points. Pack must
// be 1 or 5.
type PurchaseLivesRequest struct {
	Pack int `json:"pack" binding:"required"`
}

// PurchaseHandler trades global score for lives at the fixed pack prices.
func (h *LivesHandler) PurchaseHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req PurchaseLivesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	progress, err := h.livesService.PurchaseWithPoints(c.Request.Context(), userID, req.Pack)
	if err != nil {
		mapCoreErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "Lives purchased", Data: progress})
}
