// Package wizard drives the booking step sequence. The state is a plain
// value updated immutably: every mutation returns a new State, so two
// readers never observe a half-applied update.
package wizard

import "errors"

var (
	ErrNoServicesSelected = errors.New("at least one service must be selected")
	ErrNoSlotSelected     = errors.New("a date and a time slot must be selected")
	ErrTerminalStep       = errors.New("the flow has no further step")
	ErrFirstStep          = errors.New("already on the first step")
)

// Flow distinguishes booking with a pre-selected provider from searching
// for any available professional.
type Flow string

const (
	FlowTargeted   Flow = "targeted"
	FlowOpenSearch Flow = "open_search"
)

type Step string

const (
	StepServices     Step = "services"
	StepDateTime     Step = "datetime"
	StepPreferences  Step = "preferences"
	StepResults      Step = "results"
	StepConfirmation Step = "confirmation"
)

// flow step orders; the last step of each is terminal.
var (
	targetedSteps   = []Step{StepServices, StepDateTime, StepConfirmation}
	openSearchSteps = []Step{StepServices, StepDateTime, StepPreferences, StepResults}
)

// Params are the navigation-level inputs the wizard is derived from. Deep
// linking into any step works because the state is a pure function of
// these plus the user's selections.
type Params struct {
	ProviderID  string
	VenueID     string
	OfferingID  string
	Independent bool
	Step        Step
}

// Preferences narrow the open-search result set.
type Preferences struct {
	VenueID  string `json:"venue_id,omitempty"`
	Category string `json:"category,omitempty"`
}

// State is the complete booking-in-progress snapshot.
type State struct {
	Flow        Flow
	Step        Step
	ProviderID  string
	VenueID     string
	Independent bool

	OfferingIDs []string
	Date        string // YYYY-MM-DD
	SlotLabel   string // e.g. "9:30 AM"
	Preferences Preferences
}

// New derives the initial state from navigation parameters. A provider id
// selects the targeted flow; its absence selects open search. A pre-selected
// offering (e.g. a "book this service" link) is carried into the selection.
func New(p Params) State {
	s := State{
		Flow:        FlowOpenSearch,
		Step:        StepServices,
		VenueID:     p.VenueID,
		Independent: p.Independent,
	}
	if p.ProviderID != "" {
		s.Flow = FlowTargeted
		s.ProviderID = p.ProviderID
	}
	if p.OfferingID != "" {
		s.OfferingIDs = []string{p.OfferingID}
	}
	if p.Step != "" && stepIndex(s.steps(), p.Step) >= 0 {
		s.Step = p.Step
	}
	return s
}

func (s State) steps() []Step {
	if s.Flow == FlowTargeted {
		return targetedSteps
	}
	return openSearchSteps
}

// Steps returns the ordered step sequence for the state's flow.
func (s State) Steps() []Step {
	return append([]Step(nil), s.steps()...)
}

// Complete reports whether the current step's gate is satisfied.
func (s State) Complete() bool {
	return s.gate() == nil
}

// Gate returns the unmet requirement blocking a forward transition, or nil.
func (s State) Gate() error {
	return s.gate()
}

func (s State) gate() error {
	switch s.Step {
	case StepServices:
		if len(s.OfferingIDs) == 0 {
			return ErrNoServicesSelected
		}
	case StepDateTime:
		if s.Date == "" || s.SlotLabel == "" {
			return ErrNoSlotSelected
		}
	}
	// Preferences, Results and Confirmation have no blocking predicate.
	return nil
}

// Next advances to the following step, gated on the current step being
// complete.
func (s State) Next() (State, error) {
	if err := s.gate(); err != nil {
		return s, err
	}
	steps := s.steps()
	i := stepIndex(steps, s.Step)
	if i < 0 || i == len(steps)-1 {
		return s, ErrTerminalStep
	}
	s.Step = steps[i+1]
	return s, nil
}

// Back moves to the previous step. It is unconditional while not on the
// first step.
func (s State) Back() (State, error) {
	steps := s.steps()
	i := stepIndex(steps, s.Step)
	if i <= 0 {
		return s, ErrFirstStep
	}
	s.Step = steps[i-1]
	return s, nil
}

// SelectOfferings replaces the service selection.
func (s State) SelectOfferings(ids []string) State {
	s.OfferingIDs = append([]string(nil), ids...)
	return s
}

// SelectSlot records the chosen date and slot label.
func (s State) SelectSlot(date, label string) State {
	s.Date = date
	s.SlotLabel = label
	return s
}

// SelectASAP records the slot and advances in one move. Binding selection
// and advancement together avoids the race where the advance gate re-reads
// a not-yet-applied selection.
func (s State) SelectASAP(date, label string) (State, error) {
	s.Date = date
	s.SlotLabel = label
	steps := s.steps()
	i := stepIndex(steps, StepDateTime)
	if i == len(steps)-1 {
		return s, ErrTerminalStep
	}
	s.Step = steps[i+1]
	return s, nil
}

// SetPreferences records open-search filters.
func (s State) SetPreferences(p Preferences) State {
	s.Preferences = p
	return s
}

// SelectResult converts an open-search flow into a targeted flow for the
// chosen provider, keeping the selected services and slot.
func (s State) SelectResult(providerID, venueID string, independent bool) State {
	s.Flow = FlowTargeted
	s.Step = StepConfirmation
	s.ProviderID = providerID
	s.VenueID = venueID
	s.Independent = independent
	s.Preferences = Preferences{}
	return s
}

// SyncParams re-derives the step from changed navigation parameters while
// keeping in-progress selections, so browser-level navigation and wizard
// state never disagree.
func (s State) SyncParams(p Params) State {
	if p.ProviderID != s.ProviderID {
		// Switching provider restarts the flow; selections made for another
		// provider's catalog don't carry over.
		next := New(p)
		return next
	}
	s.VenueID = p.VenueID
	s.Independent = p.Independent
	if p.Step != "" && stepIndex(s.steps(), p.Step) >= 0 {
		s.Step = p.Step
	}
	return s
}

func stepIndex(steps []Step, step Step) int {
	for i, st := range steps {
		if st == step {
			return i
		}
	}
	return -1
}
