package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/trimslot/barber-booking-backend/internal/membership"
	"github.com/trimslot/barber-booking-backend/internal/offering"
	"github.com/trimslot/barber-booking-backend/internal/pkg/response"
)

type Handler struct {
	service           offering.Service
	membershipService membership.Service
}

func NewHandler(service offering.Service, membershipService membership.Service) *Handler {
	return &Handler{
		service:           service,
		membershipService: membershipService,
	}
}

// Browse lists offerings for a browsing scope without capability filtering.
// This backs the "any professional" flow.
func (h *Handler) Browse(c *gin.Context) {
	var req BrowseOfferingsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query", "details": err.Error()})
		return
	}

	offerings, err := h.service.Browse(c.Request.Context(), offering.Filter{
		ProviderID:   req.ProviderID,
		VenueID:      req.VenueID,
		Category:     req.Category,
		MembershipID: req.MembershipID,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list offerings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": toResponses(offerings)})
}

// EffectiveForProvider resolves the provider's booking context from the
// navigation parameters, then returns the offerings the provider may
// perform there. An ambiguous context is returned as a 409 with the choice
// set so the client can force disambiguation.
func (h *Handler) EffectiveForProvider(c *gin.Context) {
	providerID := c.Param("id")
	if _, err := uuid.Parse(providerID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var q EffectiveOfferingsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query", "details": err.Error()})
		return
	}

	ctx := c.Request.Context()

	bctx, err := h.membershipService.ResolveContext(ctx, providerID, q.VenueID, q.Independent)
	if err != nil {
		response.ErrorWithRedirect(c, err, "/providers/"+providerID+"/context")
		return
	}
	if bctx.Kind == membership.ContextAmbiguous {
		c.JSON(http.StatusConflict, gin.H{
			"error":   "booking context is ambiguous",
			"choices": bctx.Choices,
		})
		return
	}

	offerings, err := h.service.EffectiveForProvider(ctx, providerID, bctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list offerings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"context": string(bctx.Kind),
		"items":   toResponses(offerings),
	})
}

// Create adds an offering to a provider's or venue's catalog.
func (h *Handler) Create(c *gin.Context) {
	var body CreateOfferingBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	o, err := h.service.Create(c.Request.Context(), offering.CreateRequest{
		ProviderID:      body.ProviderID,
		VenueID:         body.VenueID,
		Name:            body.Name,
		Category:        body.Category,
		PriceCents:      body.PriceCents,
		DurationMinutes: body.DurationMinutes,
	})
	if err != nil {
		if errors.Is(err, offering.ErrOwnerRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create offering"})
		return
	}

	c.JSON(http.StatusCreated, NewOfferingResponse(o))
}

// SetOverride customizes or disables a venue-owned offering for a membership.
func (h *Handler) SetOverride(c *gin.Context) {
	var body SetOverrideBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	ov, err := h.service.SetOverride(c.Request.Context(), offering.OverrideRequest{
		MembershipID:    body.MembershipID,
		OfferingID:      body.OfferingID,
		Enabled:         body.Enabled,
		PriceCents:      body.PriceCents,
		DurationMinutes: body.DurationMinutes,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to set override"})
		return
	}

	c.JSON(http.StatusOK, ov)
}

func toResponses(offerings []*offering.Offering) []OfferingResponse {
	items := make([]OfferingResponse, len(offerings))
	for i, o := range offerings {
		items[i] = NewOfferingResponse(o)
	}
	return items
}
