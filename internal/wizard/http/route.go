package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the wizard state route.
func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	g.GET("/wizard/state", h.State)
}
