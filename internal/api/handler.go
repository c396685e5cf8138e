package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"studio-listing-backend/internal/store"
	"studio-listing-backend/internal/studio"
)

// Handler holds shared dependencies for API handlers.
type Handler struct {
	studios *studio.Service
}

// NewHandler creates a new API handler.
func NewHandler(svc *studio.Service) *Handler {
	return &Handler{studios: svc}
}

// studioID parses the :id path parameter, answering 400 when it is not an integer.
func studioID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid studio ID"})
		return 0, false
	}
	return id, true
}

// respondError maps service errors onto status codes. Not found is an
// empty 404; anything unrecognised is recorded on the context and
// answered with 500.
func respondError(c *gin.Context, err error, failure string) {
	var verr *studio.ValidationError
	switch {
	case errors.As(err, &verr):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":   "validation failed",
			"details": verr.Violations,
		})
	case errors.Is(err, store.ErrNotFound):
		c.AbortWithStatus(http.StatusNotFound)
	default:
		_ = c.Error(err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": failure})
	}
}
