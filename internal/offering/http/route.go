package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers catalog browsing and capability routes.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	offerings := g.Group("/offerings")
	{
		offerings.GET("", h.Browse)
		offerings.POST("", authMiddleware, adminMiddleware, h.Create)
		offerings.PUT("/overrides", authMiddleware, adminMiddleware, h.SetOverride)
	}

	g.GET("/providers/:id/offerings", h.EffectiveForProvider)
}
