package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/trimslot/barber-booking-backend/internal/auth"
	"github.com/trimslot/barber-booking-backend/internal/booking"
	"github.com/trimslot/barber-booking-backend/internal/pkg/response"
	"github.com/trimslot/barber-booking-backend/internal/user"
)

type Handler struct {
	service     booking.Service
	userService user.Service
}

func NewHandler(service booking.Service, userService user.Service) *Handler {
	return &Handler{
		service:     service,
		userService: userService,
	}
}

// Create is the single write path for bookings. Context integrity, the
// capability snapshot and the price breakdown are all settled inside the
// service; here we only translate the transport.
func (h *Handler) Create(c *gin.Context) {
	var body CreateBookingBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	date, err := time.Parse("2006-01-02", body.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return
	}

	b, err := h.service.Create(c.Request.Context(), booking.CreateRequest{
		ClientID:            auth.GetUserID(c),
		ProviderID:          body.ProviderID,
		VenueID:             body.VenueID,
		ExplicitIndependent: body.Independent,
		OfferingIDs:         body.OfferingIDs,
		PromotionCode:       body.PromotionCode,
		Date:                date,
		SlotLabel:           body.SlotLabel,
		Note:                body.Note,
	})
	if err != nil {
		if errors.Is(err, booking.ErrAmbiguousContext) {
			response.ErrorWithRedirect(c, err, "/providers/"+body.ProviderID+"/context")
			return
		}
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewBookingResponse(b))
}

// List returns the caller's bookings. A provider account additionally sees
// bookings made with them when ?role=provider is passed.
func (h *Handler) List(c *gin.Context) {
	var q ListBookingsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query", "details": err.Error()})
		return
	}

	filter := booking.Filter{
		Status:   booking.Status(q.Status),
		Page:     q.Page,
		PageSize: q.PageSize,
	}
	if q.Date != "" {
		date, _ := time.Parse("2006-01-02", q.Date)
		filter.Date = &date
	}

	ctx := c.Request.Context()
	userID := auth.GetUserID(c)

	if c.Query("role") == "provider" {
		u, err := h.userService.GetByID(ctx, userID)
		if err != nil || u.ProviderID == nil {
			c.JSON(http.StatusForbidden, gin.H{"error": "no provider profile on this account"})
			return
		}
		filter.ProviderID = *u.ProviderID
	} else {
		filter.ClientID = userID
	}

	bookings, err := h.service.List(ctx, filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list bookings"})
		return
	}

	items := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = NewBookingResponse(b)
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// Get returns a single booking visible to the caller: its client, its
// provider, or a system admin.
func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	ctx := c.Request.Context()

	b, err := h.service.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get booking"})
		return
	}

	u, err := h.userService.GetByID(ctx, auth.GetUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get user"})
		return
	}

	isClient := b.ClientID == u.ID
	isProvider := u.ProviderID != nil && *u.ProviderID == b.ProviderID
	if !isClient && !isProvider && !u.IsSystemAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "not allowed to view this booking"})
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}
