package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthMessage is the fixed body of GET /api/health.
const HealthMessage = "Studio API is running!"

// Health handles GET /api/health.
func (h *Handler) Health(c *gin.Context) {
	c.String(http.StatusOK, HealthMessage)
}
