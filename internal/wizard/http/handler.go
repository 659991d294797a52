package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/trimslot/barber-booking-backend/internal/wizard"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// StateQuery mirrors the navigation parameters a client deep-links with.
type StateQuery struct {
	ProviderID  string `form:"provider_id" binding:"omitempty,uuid"`
	VenueID     string `form:"venue_id" binding:"omitempty,uuid"`
	OfferingID  string `form:"offering_id" binding:"omitempty,uuid"`
	Independent bool   `form:"independent"`
	Step        string `form:"step"`
}

// StateResponse describes the derived wizard position so clients can render
// the right step and gate state without re-implementing the flow rules.
type StateResponse struct {
	Flow        string   `json:"flow"`
	Step        string   `json:"step"`
	Steps       []string `json:"steps"`
	CanContinue bool     `json:"can_continue"`
	Missing     string   `json:"missing,omitempty"`
	ProviderID  string   `json:"provider_id,omitempty"`
	VenueID     string   `json:"venue_id,omitempty"`
	OfferingIDs []string `json:"offering_ids,omitempty"`
}

// State derives the wizard state from navigation parameters.
func (h *Handler) State(c *gin.Context) {
	var q StateQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query", "details": err.Error()})
		return
	}

	s := wizard.New(wizard.Params{
		ProviderID:  q.ProviderID,
		VenueID:     q.VenueID,
		OfferingID:  q.OfferingID,
		Independent: q.Independent,
		Step:        wizard.Step(q.Step),
	})

	var steps []string
	for _, st := range s.Steps() {
		steps = append(steps, string(st))
	}

	resp := StateResponse{
		Flow:        string(s.Flow),
		Step:        string(s.Step),
		Steps:       steps,
		CanContinue: true,
		ProviderID:  s.ProviderID,
		VenueID:     s.VenueID,
		OfferingIDs: s.OfferingIDs,
	}
	if err := s.Gate(); err != nil {
		resp.CanContinue = false
		resp.Missing = err.Error()
	}

	c.JSON(http.StatusOK, resp)
}
