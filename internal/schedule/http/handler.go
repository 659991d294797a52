package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/trimslot/barber-booking-backend/internal/auth"
	"github.com/trimslot/barber-booking-backend/internal/membership"
	"github.com/trimslot/barber-booking-backend/internal/pkg/response"
	"github.com/trimslot/barber-booking-backend/internal/pkg/timeofday"
	"github.com/trimslot/barber-booking-backend/internal/schedule"
	"github.com/trimslot/barber-booking-backend/internal/user"
)

type Handler struct {
	service           schedule.Service
	membershipService membership.Service
	userService       user.Service
}

func NewHandler(service schedule.Service, membershipService membership.Service, userService user.Service) *Handler {
	return &Handler{
		service:           service,
		membershipService: membershipService,
		userService:       userService,
	}
}

// canManageProvider checks that the authenticated user owns the provider
// profile (or is a system admin).
func (h *Handler) canManageProvider(c *gin.Context, providerID string) bool {
	userID := auth.GetUserID(c)
	if userID == "" {
		return false
	}
	u, err := h.userService.GetByID(c.Request.Context(), userID)
	if err != nil {
		return false
	}
	if u.IsSystemAdmin {
		return true
	}
	return u.ProviderID != nil && *u.ProviderID == providerID
}

func (h *Handler) resolveContext(c *gin.Context, providerID, venueID string, independent bool) (*membership.Context, bool) {
	bctx, err := h.membershipService.ResolveContext(c.Request.Context(), providerID, venueID, independent)
	if err != nil {
		response.ErrorWithRedirect(c, err, "/providers/"+providerID+"/context")
		return nil, false
	}
	if bctx.Kind == membership.ContextAmbiguous {
		c.JSON(http.StatusConflict, gin.H{
			"error":   "booking context is ambiguous",
			"choices": bctx.Choices,
		})
		return nil, false
	}
	return bctx, true
}

// Slots computes the bookable slot ladder for a provider on a date.
func (h *Handler) Slots(c *gin.Context) {
	providerID := c.Param("id")
	if _, err := uuid.Parse(providerID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var q SlotsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query", "details": err.Error()})
		return
	}

	date, _ := time.Parse("2006-01-02", q.Date)

	bctx, ok := h.resolveContext(c, providerID, q.VenueID, q.Independent)
	if !ok {
		return
	}

	slots, err := h.service.SlotsForProvider(c.Request.Context(), providerID, date, bctx, q.Duration)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute slots"})
		return
	}

	c.JSON(http.StatusOK, SlotsResponse{
		Date:    q.Date,
		Context: string(bctx.Kind),
		Slots:   slotLabels(slots),
	})
}

// NextSlot is the ASAP shortcut: today's first slot later than the current
// hour, else tomorrow's first slot.
func (h *Handler) NextSlot(c *gin.Context) {
	providerID := c.Param("id")
	if _, err := uuid.Parse(providerID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	venueID := c.Query("venue_id")
	independent := c.Query("independent") == "true"

	bctx, ok := h.resolveContext(c, providerID, venueID, independent)
	if !ok {
		return
	}

	next, err := h.service.NextAvailable(c.Request.Context(), providerID, bctx, 0, time.Now())
	if err != nil {
		if errors.Is(err, schedule.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no upcoming slot available"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to find next slot"})
		return
	}

	c.JSON(http.StatusOK, NextSlotResponse{
		Date: next.Date.Format("2006-01-02"),
		Slot: next.Slot.Label(),
	})
}

// VenueSlots computes the aggregate ladder for "any professional" browsing.
func (h *Handler) VenueSlots(c *gin.Context) {
	venueID := c.Param("id")
	if _, err := uuid.Parse(venueID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	dateStr := c.Query("date")
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return
	}

	slots, err := h.service.SlotsForVenue(c.Request.Context(), venueID, date, 0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute slots"})
		return
	}

	c.JSON(http.StatusOK, SlotsResponse{
		Date:    dateStr,
		Context: "venue",
		Slots:   slotLabels(slots),
	})
}

// ListShifts returns a provider's recurring availability windows.
func (h *Handler) ListShifts(c *gin.Context) {
	providerID := c.Param("id")
	if _, err := uuid.Parse(providerID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	shifts, err := h.service.ListShifts(c.Request.Context(), providerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list shifts"})
		return
	}

	items := make([]ShiftResponse, len(shifts))
	for i, s := range shifts {
		items[i] = NewShiftResponse(s)
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// CreateShift adds a recurring availability window for the provider.
func (h *Handler) CreateShift(c *gin.Context) {
	providerID := c.Param("id")
	if _, err := uuid.Parse(providerID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}
	if !h.canManageProvider(c, providerID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "permission denied"})
		return
	}

	var body CreateShiftBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	start, err := timeofday.Parse(body.Start)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start_time"})
		return
	}
	end, err := timeofday.Parse(body.End)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end_time"})
		return
	}

	shift, err := h.service.CreateShift(c.Request.Context(), schedule.CreateShiftRequest{
		ProviderID: providerID,
		VenueID:    body.VenueID,
		Weekday:    time.Weekday(body.Weekday),
		Start:      start,
		End:        end,
	})
	if err != nil {
		if errors.Is(err, schedule.ErrInvalidWindow) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create shift"})
		return
	}

	c.JSON(http.StatusCreated, NewShiftResponse(shift))
}

// DeleteShift removes a recurring availability window.
func (h *Handler) DeleteShift(c *gin.Context) {
	providerID := c.Param("id")
	shiftID := c.Param("shiftID")
	if _, err := uuid.Parse(providerID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}
	if _, err := uuid.Parse(shiftID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}
	if !h.canManageProvider(c, providerID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "permission denied"})
		return
	}

	if err := h.service.DeleteShift(c.Request.Context(), shiftID, providerID); err != nil {
		if errors.Is(err, schedule.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "shift not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete shift"})
		return
	}

	c.Status(http.StatusNoContent)
}

// ListBlocks returns a provider's unavailability windows.
func (h *Handler) ListBlocks(c *gin.Context) {
	providerID := c.Param("id")
	if _, err := uuid.Parse(providerID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	blocks, err := h.service.ListBlocks(c.Request.Context(), providerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list time blocks"})
		return
	}

	items := make([]BlockResponse, len(blocks))
	for i, b := range blocks {
		items[i] = NewBlockResponse(b)
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// CreateBlock adds an unavailability window for the provider.
func (h *Handler) CreateBlock(c *gin.Context) {
	providerID := c.Param("id")
	if _, err := uuid.Parse(providerID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}
	if !h.canManageProvider(c, providerID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "permission denied"})
		return
	}

	var body CreateBlockBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	block, err := h.service.CreateBlock(c.Request.Context(), schedule.CreateBlockRequest{
		ProviderID: providerID,
		VenueID:    body.VenueID,
		Start:      body.Start,
		End:        body.End,
		Reason:     body.Reason,
	})
	if err != nil {
		if errors.Is(err, schedule.ErrInvalidWindow) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create time block"})
		return
	}

	c.JSON(http.StatusCreated, NewBlockResponse(block))
}

// DeleteBlock removes an unavailability window.
func (h *Handler) DeleteBlock(c *gin.Context) {
	providerID := c.Param("id")
	blockID := c.Param("blockID")
	if _, err := uuid.Parse(providerID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}
	if _, err := uuid.Parse(blockID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}
	if !h.canManageProvider(c, providerID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "permission denied"})
		return
	}

	if err := h.service.DeleteBlock(c.Request.Context(), blockID, providerID); err != nil {
		if errors.Is(err, schedule.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "time block not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete time block"})
		return
	}

	c.Status(http.StatusNoContent)
}
