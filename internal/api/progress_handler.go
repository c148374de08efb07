package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ozlemtrn/oynaogren/internal/core"
)

// ProgressHandler handles progression endpoints: initialization, reads, the
// question-map view, answer submission, and unit advancement.
type ProgressHandler struct {
	progressService core.ProgressService
}

// NewProgressHandler creates a new ProgressHandler.
func NewProgressHandler(ps core.ProgressService) *ProgressHandler {
	if ps == nil {
		panic("ProgressService cannot be nil in NewProgressHandler")
	}
	return &ProgressHandler{progressService: ps}
}

// InitializeRequest is intentionally empty; the user comes from the token.
// Kept as a type so the endpoint has a stable request contract.
type InitializeRequest struct{}

// InitializeHandler creates the progress document for the authenticated user
// if it does not exist yet. Safe to call on every app start.
func (h *ProgressHandler) InitializeHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	progress, created, err := h.progressService.Initialize(c.Request.Context(), userID)
	if err != nil {
		mapCoreErrorToStatus(c, err)
		return
	}

	status := http.StatusOK
	message := "User progress already exists"
	if created {
		status = http.StatusCreated
		message = "User progress initialized"
	}
	c.JSON(status, SuccessResponse{Message: message, Data: progress})
}

// GetProgressHandler returns the raw progress document for the authenticated
// user.
func (h *ProgressHandler) GetProgressHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	progress, err := h.progressService.Get(c.Request.Context(), userID)
	if err != nil {
		mapCoreErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, progress)
}

// GetMapHandler returns the question-map view: raw progress plus derived unit
// lock state and the set of enabled question IDs.
func (h *ProgressHandler) GetMapHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	state, err := h.progressService.MapState(c.Request.Context(), userID)
	if err != nil {
		mapCoreErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// SubmitAnswerRequest is the payload for an answer submission.
type SubmitAnswerRequest struct {
	QuestionID string `json:"questionId" binding:"required"`
	Correct    *bool  `json:"correct" binding:"required"`
}

// SubmitAnswerHandler applies a single answer submission: correct answers
// record progress, incorrect ones cost a life. Running out of lives is
// reported in the body, not as an HTTP error, so clients can redirect.
func (h *ProgressHandler) SubmitAnswerHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req SubmitAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	result, err := h.progressService.SubmitAnswer(c.Request.Context(), userID, req.QuestionID, *req.Correct)
	if err != nil {
		mapCoreErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// RecordCorrectAnswerRequest is the payload for directly recording a solved
// question with its point value.
type RecordCorrectAnswerRequest struct {
	Unit       int    `json:"unit" binding:"required"`
	QuestionID string `json:"questionId" binding:"required"`
	Points     int    `json:"points" binding:"required"`
}

// RecordCorrectAnswerHandler records a correct answer with explicit points.
// Repeat calls for the same question are no-ops.
func (h *ProgressHandler) RecordCorrectAnswerHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req RecordCorrectAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	progress, err := h.progressService.RecordCorrectAnswer(c.Request.Context(), userID, req.Unit, req.QuestionID, req.Points)
	if err != nil {
		mapCoreErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "Answer recorded", Data: progress})
}

// AdvanceRequest asks what follows the given question. AcceptBonus resolves a
// pending bonus offer; leave it unset until an offer has been made.
type AdvanceRequest struct {
	QuestionID  string `json:"questionId" binding:"required"`
	AcceptBonus *bool  `json:"acceptBonus"`
}

// AdvanceHandler decides the next step after a question: the next question in
// sequence, a bonus offer, or unit completion with the next unit unlocked.
func (h *ProgressHandler) AdvanceHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req AdvanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	result, err := h.progressService.Advance(c.Request.Context(), userID, req.QuestionID, req.AcceptBonus)
	if err != nil {
		mapCoreErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
