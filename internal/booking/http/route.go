package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers booking routes. All of them require a session;
// the auth middleware carries the login redirect for anonymous callers.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	bookings := g.Group("/bookings", authMiddleware)
	{
		bookings.POST("", h.Create)
		bookings.GET("", h.List)
		bookings.GET("/:id", h.Get)
	}
}
