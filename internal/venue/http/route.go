package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers venue browsing and admin routes.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	venues := g.Group("/venues")
	{
		venues.GET("", h.List)
		venues.GET("/:id", h.Get)
		venues.POST("", authMiddleware, adminMiddleware, h.Create)
	}
}
