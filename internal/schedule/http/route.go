package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers slot computation and schedule authoring routes.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	providers := g.Group("/providers/:id")
	{
		providers.GET("/slots", h.Slots)
		providers.GET("/slots/next", h.NextSlot)

		providers.GET("/shifts", h.ListShifts)
		providers.POST("/shifts", authMiddleware, h.CreateShift)
		providers.DELETE("/shifts/:shiftID", authMiddleware, h.DeleteShift)

		providers.GET("/blocks", h.ListBlocks)
		providers.POST("/blocks", authMiddleware, h.CreateBlock)
		providers.DELETE("/blocks/:blockID", authMiddleware, h.DeleteBlock)
	}

	g.GET("/venues/:id/slots", h.VenueSlots)
}
