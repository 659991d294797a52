package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers quoting and promotion routes.
func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	g.POST("/quotes", h.Quote)
	g.GET("/promotions", h.ListPromotions)
	g.GET("/pricing-rules/active", h.ActiveRule)
}
