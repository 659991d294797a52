package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/trimslot/barber-booking-backend/internal/membership"
	"github.com/trimslot/barber-booking-backend/internal/pkg/response"
	"github.com/trimslot/barber-booking-backend/internal/pricing"
)

type Handler struct {
	service           pricing.Service
	membershipService membership.Service
}

func NewHandler(service pricing.Service, membershipService membership.Service) *Handler {
	return &Handler{
		service:           service,
		membershipService: membershipService,
	}
}

// Quote computes a price breakdown for a selection without creating a
// booking. The same computation runs again at booking time, so the client
// preview and the persisted snapshot always agree.
func (h *Handler) Quote(c *gin.Context) {
	var body QuoteBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	ctx := c.Request.Context()

	bctx, err := h.membershipService.ResolveContext(ctx, body.ProviderID, body.VenueID, body.Independent)
	if err != nil {
		response.ErrorWithRedirect(c, err, "/providers/"+body.ProviderID+"/context")
		return
	}
	if bctx.Kind == membership.ContextAmbiguous {
		c.JSON(http.StatusConflict, gin.H{
			"error":   "booking context is ambiguous",
			"choices": bctx.Choices,
		})
		return
	}

	items, breakdown, err := h.service.QuoteSelection(ctx, pricing.QuoteRequest{
		OfferingIDs:   body.OfferingIDs,
		PromotionCode: body.PromotionCode,
		Context:       bctx,
	})
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "selection is not bookable in this context"})
		return
	}

	c.JSON(http.StatusOK, QuoteResponse{Items: items, Breakdown: breakdown})
}

// ListPromotions returns the active promotion codes.
func (h *Handler) ListPromotions(c *gin.Context) {
	promotions, err := h.service.ListPromotions(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list promotions"})
		return
	}

	items := make([]PromotionResponse, len(promotions))
	for i, p := range promotions {
		items[i] = NewPromotionResponse(p)
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// ActiveRule returns the commission rates currently in effect, falling back
// to the platform defaults when no rule row is configured.
func (h *Handler) ActiveRule(c *gin.Context) {
	rule, err := h.service.ActiveRule(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load pricing rule"})
		return
	}

	resp := RuleResponse{
		FreelancerRate: pricing.DefaultFreelancerRate,
		ShopRate:       pricing.DefaultShopRate,
	}
	if rule != nil {
		resp.FreelancerRate = rule.FreelancerRate
		resp.ShopRate = rule.ShopRate
	}
	c.JSON(http.StatusOK, resp)
}
