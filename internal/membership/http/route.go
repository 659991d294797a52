package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers membership listing, context resolution and admin routes.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	providers := g.Group("/providers/:id")
	{
		providers.GET("/memberships", h.ListForProvider)
		providers.GET("/context", h.ResolveContext)
	}

	g.POST("/memberships", authMiddleware, adminMiddleware, h.Create)
}
