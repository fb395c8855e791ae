package domain

import "math"

// PriceBounds - a derived [min, max] bound for the price slider.
type PriceBounds struct {
	Min float64
	Max float64
}

// DefaultPriceBounds is used until at least one priced listing exists.
var DefaultPriceBounds = PriceBounds{Min: 0, Max: 5000}

// DerivePriceBounds computes the slider bound from the currently loaded
// property set. Listings without a positive price are excluded; when none
// remain, the previous bound is kept unchanged. An asymmetric margin keeps
// the bound slightly wider than the real prices so the slider never clips
// an actual listing:
//
//	min = max(0, floor(rawMin * 0.9))
//	max = ceil(rawMax * 1.1)
func DerivePriceBounds(properties []Property, previous PriceBounds) PriceBounds {
	var rawMin, rawMax float64
	found := false
	for i := range properties {
		price := properties[i].Price
		if price <= 0 {
			continue
		}
		if !found || price < rawMin {
			rawMin = price
		}
		if !found || price > rawMax {
			rawMax = price
		}
		found = true
	}
	if !found {
		return previous
	}
	return PriceBounds{
		Min: math.Max(0, math.Floor(rawMin*0.9)),
		Max: math.Ceil(rawMax * 1.1),
	}
}

// ClampSelection re-checks a user's selected price range against a freshly
// derived bound. A deliberate narrower selection survives recomputation;
// a selection that no longer fits is reset to the full bound.
func ClampSelection(selection, bounds PriceBounds) PriceBounds {
	if selection.Min >= bounds.Min && selection.Max <= bounds.Max {
		return selection
	}
	return bounds
}
