package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/trimslot/barber-booking-backend/internal/pkg/response"
	"github.com/trimslot/barber-booking-backend/internal/venue"
)

type Handler struct {
	service venue.Service
}

func NewHandler(service venue.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	var req ListVenuesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query", "details": err.Error()})
		return
	}

	filter := venue.Filter{
		Keyword:  req.Keyword,
		Page:     req.Page,
		PageSize: req.PageSize,
	}

	venues, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list venues"})
		return
	}

	items := make([]VenueResponse, len(venues))
	for i, v := range venues {
		items[i] = NewVenueResponse(v)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, filter.Page, filter.PageSize, total))
}

func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	v, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, venue.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "venue not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get venue"})
		return
	}

	c.JSON(http.StatusOK, NewVenueResponse(v))
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateVenueBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	v, err := h.service.Create(c.Request.Context(), venue.CreateRequest{
		Name:    body.Name,
		Address: body.Address,
		Phone:   body.Phone,
	})
	if err != nil {
		if errors.Is(err, venue.ErrNameRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create venue"})
		return
	}

	c.JSON(http.StatusCreated, NewVenueResponse(v))
}
