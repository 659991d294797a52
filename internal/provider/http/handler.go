package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/trimslot/barber-booking-backend/internal/pkg/response"
	"github.com/trimslot/barber-booking-backend/internal/provider"
)

type Handler struct {
	service provider.Service
}

func NewHandler(service provider.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	var req ListProvidersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query", "details": err.Error()})
		return
	}

	filter := provider.Filter{
		Keyword:  req.Keyword,
		VenueID:  req.VenueID,
		Page:     req.Page,
		PageSize: req.PageSize,
	}

	providers, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list providers"})
		return
	}

	items := make([]ProviderResponse, len(providers))
	for i, p := range providers {
		items[i] = NewProviderResponse(p)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, filter.Page, filter.PageSize, total))
}

func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	p, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, provider.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "provider not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get provider"})
		return
	}

	c.JSON(http.StatusOK, NewProviderResponse(p))
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateProviderBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	p, err := h.service.Create(c.Request.Context(), provider.CreateRequest{
		DisplayName:     body.DisplayName,
		Bio:             body.Bio,
		IsIndependent:   body.IsIndependent,
		DefaultLocation: body.DefaultLocation,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create provider"})
		return
	}

	c.JSON(http.StatusCreated, NewProviderResponse(p))
}
