package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers provider browsing and admin routes.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	providers := g.Group("/providers")
	{
		providers.GET("", h.List)
		providers.GET("/:id", h.Get)
		providers.POST("", authMiddleware, adminMiddleware, h.Create)
	}
}
