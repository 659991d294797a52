package membership

import (
	"errors"
	"testing"
)

func member(id, venueID, venueName string) *Membership {
	return &Membership{
		ID:             id,
		ProviderID:     "p1",
		VenueID:        venueID,
		VenueName:      venueName,
		Role:           RoleStaff,
		BookingEnabled: true,
		IsActive:       true,
	}
}

func TestResolve(t *testing.T) {
	shopA := member("m1", "v1", "Fade Factory")
	shopB := member("m2", "v2", "Clipper Club")

	tests := []struct {
		name     string
		in       ResolveInput
		wantKind ContextKind
		wantErr  error
	}{
		{
			name: "requested venue with matching membership",
			in: ResolveInput{
				RequestedVenueID: "v1",
				Memberships:      []*Membership{shopA, shopB},
			},
			wantKind: ContextShop,
		},
		{
			name: "requested venue without membership fails",
			in: ResolveInput{
				RequestedVenueID: "v9",
				Memberships:      []*Membership{shopA},
			},
			wantErr: ErrContextInvalid,
		},
		{
			name: "explicit independent honored for independent provider",
			in: ResolveInput{
				ProviderIsIndependent: true,
				ExplicitIndependent:   true,
				Memberships:           []*Membership{shopA},
			},
			wantKind: ContextIndependent,
		},
		{
			name: "explicit independent rejected for shop-only provider",
			in: ResolveInput{
				ExplicitIndependent: true,
				Memberships:         []*Membership{shopA},
			},
			wantErr: ErrContextInvalid,
		},
		{
			name: "single membership auto-resolves",
			in: ResolveInput{
				Memberships: []*Membership{shopA},
			},
			wantKind: ContextShop,
		},
		{
			name: "independent with no memberships auto-resolves",
			in: ResolveInput{
				ProviderIsIndependent: true,
			},
			wantKind: ContextIndependent,
		},
		{
			name:    "no memberships and not independent is terminal",
			in:      ResolveInput{},
			wantErr: ErrNoBookableContext,
		},
		{
			name: "multiple memberships are ambiguous",
			in: ResolveInput{
				Memberships: []*Membership{shopA, shopB},
			},
			wantKind: ContextAmbiguous,
		},
		{
			name: "single membership plus independence flag is ambiguous",
			in: ResolveInput{
				ProviderIsIndependent: true,
				Memberships:           []*Membership{shopA},
			},
			wantKind: ContextAmbiguous,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.in)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Resolve() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve() unexpected error: %v", err)
			}
			if got.Kind != tt.wantKind {
				t.Errorf("Resolve() kind = %v, want %v", got.Kind, tt.wantKind)
			}
		})
	}
}

func TestResolveShopContextCarriesMembership(t *testing.T) {
	shopA := member("m1", "v1", "Fade Factory")

	got, err := Resolve(ResolveInput{Memberships: []*Membership{shopA}})
	if err != nil {
		t.Fatalf("Resolve() unexpected error: %v", err)
	}
	if got.MembershipID != "m1" || got.VenueID != "v1" {
		t.Errorf("Resolve() = %+v, want membership m1 at venue v1", got)
	}
}

func TestResolveAmbiguousChoices(t *testing.T) {
	shopA := member("m1", "v1", "Fade Factory")
	shopB := member("m2", "v2", "Clipper Club")

	got, err := Resolve(ResolveInput{
		ProviderIsIndependent: true,
		Memberships:           []*Membership{shopA, shopB},
	})
	if err != nil {
		t.Fatalf("Resolve() unexpected error: %v", err)
	}
	if len(got.Choices) != 3 {
		t.Fatalf("expected 3 choices (two shops + independent), got %d", len(got.Choices))
	}
	if !got.Choices[2].Independent {
		t.Error("last choice should be the independent option")
	}
}
