package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/trimslot/barber-booking-backend/internal/membership"
	"github.com/trimslot/barber-booking-backend/internal/pkg/response"
	"github.com/trimslot/barber-booking-backend/internal/provider"
)

type Handler struct {
	service membership.Service
}

func NewHandler(service membership.Service) *Handler {
	return &Handler{service: service}
}

// ListForProvider returns a provider's active, booking-enabled memberships.
func (h *Handler) ListForProvider(c *gin.Context) {
	providerID := c.Param("id")
	if _, err := uuid.Parse(providerID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	memberships, err := h.service.ListBookable(c.Request.Context(), providerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list memberships"})
		return
	}

	items := make([]MembershipResponse, len(memberships))
	for i, m := range memberships {
		items[i] = NewMembershipResponse(m)
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

// ResolveContext resolves the booking anchor for a provider from navigation
// parameters. Resolution failures carry a redirect destination so the
// client can send the user back to context selection.
func (h *Handler) ResolveContext(c *gin.Context) {
	providerID := c.Param("id")
	if _, err := uuid.Parse(providerID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var q ContextQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query", "details": err.Error()})
		return
	}

	resolved, err := h.service.ResolveContext(c.Request.Context(), providerID, q.VenueID, q.Independent)
	if err != nil {
		switch {
		case errors.Is(err, provider.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "provider not found"})
		case errors.Is(err, membership.ErrContextInvalid):
			response.ErrorWithRedirect(c, err, "/providers/"+providerID+"/context")
		case errors.Is(err, membership.ErrNoBookableContext):
			response.ErrorWithRedirect(c, err, "/")
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve context"})
		}
		return
	}

	c.JSON(http.StatusOK, NewContextResponse(resolved))
}

// Create links a provider to a venue (admin back-office).
func (h *Handler) Create(c *gin.Context) {
	var body CreateMembershipBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	m, err := h.service.Create(c.Request.Context(), membership.CreateRequest{
		ProviderID:     body.ProviderID,
		VenueID:        body.VenueID,
		Role:           membership.Role(body.Role),
		BookingEnabled: body.BookingEnabled,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create membership"})
		return
	}

	c.JSON(http.StatusCreated, NewMembershipResponse(m))
}
