package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ozlemtrn/oynaogren/internal/catalog"
)

// CatalogHandler serves the static question and unit catalog. The catalog is
// compiled in, so these endpoints never touch the database.
type CatalogHandler struct{}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// ListUnitsHandler returns all units.
func (h *CatalogHandler) ListUnitsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.Units())
}

// ListQuestionsHandler returns the question catalog, optionally filtered to a
// single unit with ?unit=N.
func (h *CatalogHandler) ListQuestionsHandler(c *gin.Context) {
	unitParam := c.Query("unit")
	if unitParam == "" {
		c.JSON(http.StatusOK, catalog.Questions())
		return
	}

	unit, err := strconv.Atoi(unitParam)
	if err != nil || unit <= 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid unit parameter", Details: "unit must be a positive integer"})
		return
	}
	c.JSON(http.StatusOK, catalog.UnitQuestions(unit))
}
