package offering

// ApplyOverrides filters a venue-owned offering list through a membership's
// overrides. An offering is dropped when an override disables it; otherwise
// the override's custom price and duration, when set, supersede the base
// values. Offerings without an override pass through untouched.
//
// The returned offerings are copies; the input list is never mutated.
func ApplyOverrides(offerings []*Offering, overrides []*Override) []*Offering {
	byOffering := make(map[string]*Override, len(overrides))
	for _, o := range overrides {
		byOffering[o.OfferingID] = o
	}

	result := make([]*Offering, 0, len(offerings))
	for _, off := range offerings {
		ov, ok := byOffering[off.ID]
		if !ok {
			copied := *off
			result = append(result, &copied)
			continue
		}
		if !ov.Enabled {
			continue
		}

		copied := *off
		if ov.PriceCents != nil {
			copied.PriceCents = *ov.PriceCents
		}
		if ov.DurationMinutes != nil {
			copied.DurationMinutes = *ov.DurationMinutes
		}
		result = append(result, &copied)
	}
	return result
}

// TotalDuration sums the durations of the given offerings in minutes.
// Returns fallback when the list is empty (no services picked yet).
func TotalDuration(offerings []*Offering, fallback int) int {
	if len(offerings) == 0 {
		return fallback
	}
	total := 0
	for _, o := range offerings {
		total += o.DurationMinutes
	}
	return total
}
