package membership

// ContextKind says where a booking is anchored.
type ContextKind string

const (
	// ContextShop anchors the booking to a specific venue membership.
	ContextShop ContextKind = "shop"
	// ContextIndependent anchors the booking to the provider's own practice.
	ContextIndependent ContextKind = "independent"
	// ContextAmbiguous means multiple anchors are valid and the user has to
	// pick one before availability or pricing may be computed.
	ContextAmbiguous ContextKind = "ambiguous"
)

// Context is the resolved booking anchor. For ContextShop, VenueID and
// MembershipID identify the exact provider+venue link. For ContextAmbiguous,
// Choices lists every selectable anchor.
type Context struct {
	Kind         ContextKind
	VenueID      string
	VenueName    string
	MembershipID string
	Choices      []Choice
}

// Choice is one selectable anchor presented during disambiguation.
type Choice struct {
	MembershipID string `json:"membership_id,omitempty"`
	VenueID      string `json:"venue_id,omitempty"`
	VenueName    string `json:"venue_name,omitempty"`
	Independent  bool   `json:"independent"`
}

// IsShop reports whether the context is anchored to a venue.
func (c *Context) IsShop() bool { return c.Kind == ContextShop }

// IsIndependent reports whether the context is the provider's own practice.
func (c *Context) IsIndependent() bool { return c.Kind == ContextIndependent }

// ResolveInput carries everything the resolver needs. Memberships must be
// pre-filtered to active, booking-enabled records.
type ResolveInput struct {
	ProviderIsIndependent bool
	RequestedVenueID      string
	ExplicitIndependent   bool
	Memberships           []*Membership
}

// Resolve determines the booking anchor for a provider.
//
// A requested venue is honored only if a membership links the provider to
// that exact venue. An explicit independent request is honored only if the
// provider carries the independence flag. With no request, the sole valid
// anchor is auto-selected; when several are valid the result is ambiguous
// and the caller must force an explicit choice. A provider with no
// memberships and no independence flag has no bookable context at all.
func Resolve(in ResolveInput) (*Context, error) {
	if in.RequestedVenueID != "" {
		for _, m := range in.Memberships {
			if m.VenueID == in.RequestedVenueID {
				return &Context{
					Kind:         ContextShop,
					VenueID:      m.VenueID,
					VenueName:    m.VenueName,
					MembershipID: m.ID,
				}, nil
			}
		}
		return nil, ErrContextInvalid
	}

	if in.ExplicitIndependent {
		if !in.ProviderIsIndependent {
			return nil, ErrContextInvalid
		}
		return &Context{Kind: ContextIndependent}, nil
	}

	switch {
	case len(in.Memberships) == 1 && !in.ProviderIsIndependent:
		m := in.Memberships[0]
		return &Context{
			Kind:         ContextShop,
			VenueID:      m.VenueID,
			VenueName:    m.VenueName,
			MembershipID: m.ID,
		}, nil

	case len(in.Memberships) == 0 && in.ProviderIsIndependent:
		return &Context{Kind: ContextIndependent}, nil

	case len(in.Memberships) == 0:
		return nil, ErrNoBookableContext
	}

	choices := make([]Choice, 0, len(in.Memberships)+1)
	for _, m := range in.Memberships {
		choices = append(choices, Choice{
			MembershipID: m.ID,
			VenueID:      m.VenueID,
			VenueName:    m.VenueName,
		})
	}
	if in.ProviderIsIndependent {
		choices = append(choices, Choice{Independent: true})
	}

	return &Context{Kind: ContextAmbiguous, Choices: choices}, nil
}
