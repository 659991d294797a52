package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSelectsFlow(t *testing.T) {
	targeted := New(Params{ProviderID: "p1"})
	assert.Equal(t, FlowTargeted, targeted.Flow)
	assert.Equal(t, StepServices, targeted.Step)

	open := New(Params{})
	assert.Equal(t, FlowOpenSearch, open.Flow)
	assert.Equal(t, StepServices, open.Step)
}

func TestNewCarriesPreselectedOffering(t *testing.T) {
	s := New(Params{ProviderID: "p1", OfferingID: "o1"})
	assert.Equal(t, []string{"o1"}, s.OfferingIDs)
	assert.True(t, s.Complete())
}

func TestNewDeepLinksIntoStep(t *testing.T) {
	s := New(Params{ProviderID: "p1", Step: StepDateTime})
	assert.Equal(t, StepDateTime, s.Step)

	// A step not in the flow is ignored, not an error.
	s = New(Params{ProviderID: "p1", Step: StepResults})
	assert.Equal(t, StepServices, s.Step)
}

func TestServicesGateBlocksForward(t *testing.T) {
	s := New(Params{ProviderID: "p1"})

	_, err := s.Next()
	require.ErrorIs(t, err, ErrNoServicesSelected)

	s = s.SelectOfferings([]string{"o1", "o2"})
	s, err = s.Next()
	require.NoError(t, err)
	assert.Equal(t, StepDateTime, s.Step)
}

func TestDateTimeGateRequiresBoth(t *testing.T) {
	s := New(Params{ProviderID: "p1", OfferingID: "o1", Step: StepDateTime})

	_, err := s.Next()
	require.ErrorIs(t, err, ErrNoSlotSelected)

	_, err = s.SelectSlot("2026-09-07", "").Next()
	require.ErrorIs(t, err, ErrNoSlotSelected)

	s, err = s.SelectSlot("2026-09-07", "9:30 AM").Next()
	require.NoError(t, err)
	assert.Equal(t, StepConfirmation, s.Step)
}

func TestTargetedFlowTerminatesAtConfirmation(t *testing.T) {
	s := New(Params{ProviderID: "p1", OfferingID: "o1", Step: StepConfirmation})
	_, err := s.Next()
	assert.ErrorIs(t, err, ErrTerminalStep)
}

func TestOpenSearchFlowWalk(t *testing.T) {
	s := New(Params{}).SelectOfferings([]string{"o1"})

	s, err := s.Next()
	require.NoError(t, err)
	assert.Equal(t, StepDateTime, s.Step)

	s, err = s.SelectSlot("2026-09-07", "10:00 AM").Next()
	require.NoError(t, err)
	assert.Equal(t, StepPreferences, s.Step)

	// Preferences has no blocking gate.
	s, err = s.Next()
	require.NoError(t, err)
	assert.Equal(t, StepResults, s.Step)

	_, err = s.Next()
	assert.ErrorIs(t, err, ErrTerminalStep)
}

func TestBackIsUnconditional(t *testing.T) {
	s := New(Params{ProviderID: "p1", Step: StepDateTime})

	// Gate incomplete, back still works.
	s, err := s.Back()
	require.NoError(t, err)
	assert.Equal(t, StepServices, s.Step)

	_, err = s.Back()
	assert.ErrorIs(t, err, ErrFirstStep)
}

func TestSelectASAPAdvancesDirectly(t *testing.T) {
	s := New(Params{ProviderID: "p1", OfferingID: "o1", Step: StepDateTime})

	s, err := s.SelectASAP("2026-08-29", "3:00 PM")
	require.NoError(t, err)
	assert.Equal(t, StepConfirmation, s.Step)
	assert.Equal(t, "2026-08-29", s.Date)
	assert.Equal(t, "3:00 PM", s.SlotLabel)
}

func TestSelectResultRestartsTargeted(t *testing.T) {
	s := New(Params{}).
		SelectOfferings([]string{"o1"}).
		SelectSlot("2026-09-07", "10:00 AM").
		SetPreferences(Preferences{Category: "fade"})
	s.Step = StepResults

	s = s.SelectResult("p9", "v2", false)
	assert.Equal(t, FlowTargeted, s.Flow)
	assert.Equal(t, StepConfirmation, s.Step)
	assert.Equal(t, "p9", s.ProviderID)
	assert.Equal(t, "v2", s.VenueID)
	assert.Equal(t, []string{"o1"}, s.OfferingIDs)
	assert.Equal(t, "10:00 AM", s.SlotLabel)
	assert.Equal(t, Preferences{}, s.Preferences)
}

func TestSyncParamsKeepsSelections(t *testing.T) {
	s := New(Params{ProviderID: "p1"}).SelectOfferings([]string{"o1"})

	synced := s.SyncParams(Params{ProviderID: "p1", VenueID: "v1", Step: StepDateTime})
	assert.Equal(t, StepDateTime, synced.Step)
	assert.Equal(t, "v1", synced.VenueID)
	assert.Equal(t, []string{"o1"}, synced.OfferingIDs)
}

func TestSyncParamsResetsOnProviderChange(t *testing.T) {
	s := New(Params{ProviderID: "p1"}).SelectOfferings([]string{"o1"}).SelectSlot("2026-09-07", "9:00 AM")

	synced := s.SyncParams(Params{ProviderID: "p2"})
	assert.Equal(t, "p2", synced.ProviderID)
	assert.Empty(t, synced.OfferingIDs)
	assert.Empty(t, synced.SlotLabel)
	assert.Equal(t, StepServices, synced.Step)
}

func TestUpdatesAreImmutable(t *testing.T) {
	orig := New(Params{ProviderID: "p1"})
	_ = orig.SelectOfferings([]string{"o1"}).SelectSlot("2026-09-07", "9:00 AM")

	assert.Empty(t, orig.OfferingIDs)
	assert.Empty(t, orig.Date)
	assert.Equal(t, StepServices, orig.Step)
}
