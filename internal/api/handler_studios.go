package api

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"studio-listing-backend/internal/studio"
)

// ListStudios handles GET /api/studios?location&maxPrice&search&availableOnly.
func (h *Handler) ListStudios(c *gin.Context) {
	var f studio.Filter
	if v, ok := c.GetQuery("location"); ok {
		f.Location = &v
	}
	if v, ok := c.GetQuery("search"); ok {
		f.Search = &v
	}
	if v := c.Query("maxPrice"); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil || math.IsNaN(p) || math.IsInf(p, 0) {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid 'maxPrice' value"})
			return
		}
		f.MaxPrice = &p
	}
	if v := c.Query("availableOnly"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid 'availableOnly' value"})
			return
		}
		f.AvailableOnly = b
	}

	studios, err := h.studios.List(c.Request.Context(), f)
	if err != nil {
		respondError(c, err, "Failed to retrieve studios")
		return
	}
	c.JSON(http.StatusOK, studios)
}

// GetStudio handles GET /api/studios/{id}.
func (h *Handler) GetStudio(c *gin.Context) {
	id, ok := studioID(c)
	if !ok {
		return
	}

	resp, err := h.studios.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to retrieve studio")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CreateStudio handles POST /api/studios.
func (h *Handler) CreateStudio(c *gin.Context) {
	var in studio.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.studios.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, err, "Failed to create studio")
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// UpdateStudio handles PUT /api/studios/{id}, replacing every mutable field.
func (h *Handler) UpdateStudio(c *gin.Context) {
	id, ok := studioID(c)
	if !ok {
		return
	}

	var in studio.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.studios.Update(c.Request.Context(), id, in)
	if err != nil {
		respondError(c, err, "Failed to update studio")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteStudio handles DELETE /api/studios/{id}.
func (h *Handler) DeleteStudio(c *gin.Context) {
	id, ok := studioID(c)
	if !ok {
		return
	}

	deleted, err := h.studios.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to delete studio")
		return
	}
	if !deleted {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}
