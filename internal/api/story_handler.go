package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ozlemtrn/oynaogren/internal/core"
)

// StoryHandler handles interactive-story endpoints.
type StoryHandler struct {
	storyService core.StoryService
}

// NewStoryHandler creates a new StoryHandler.
func NewStoryHandler(ss core.StoryService) *StoryHandler {
	if ss == nil {
		panic("StoryService cannot be nil in NewStoryHandler")
	}
	return &StoryHandler{storyService: ss}
}

// ListStoriesHandler returns the story catalog annotated with the user's
// completion state.
func (h *StoryHandler) ListStoriesHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	stories, err := h.storyService.List(c.Request.Context(), userID)
	if err != nil {
		mapCoreErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, stories)
}

// CompleteStoryHandler marks the story from the path as completed. Repeat
// completions are no-ops.
func (h *StoryHandler) CompleteStoryHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	storyID := c.Param("storyId")
	if storyID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Story ID is required in path"})
		return
	}

	progress, err := h.storyService.Complete(c.Request.Context(), userID, storyID)
	if err != nil {
		mapCoreErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "Story completed", Data: progress})
}
