package api

import (
	"log"

	"github.com/gin-gonic/gin"

	"studio-listing-backend/internal/mw"
	"studio-listing-backend/internal/studio"
)

// NewRouter creates and configures a new Gin router.
func NewRouter(svc *studio.Service, corsOrigins []string, logger *log.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), mw.RequestID(), mw.ErrorLogger(logger), mw.CORS(corsOrigins))

	handler := NewHandler(svc)

	// API group
	api := r.Group("/api")
	{
		api.GET("/studios", handler.ListStudios)
		api.GET("/studios/:id", handler.GetStudio)
		api.POST("/studios", handler.CreateStudio)
		api.PUT("/studios/:id", handler.UpdateStudio)
		api.DELETE("/studios/:id", handler.DeleteStudio)

		api.GET("/health", handler.Health)
	}

	return r
}
