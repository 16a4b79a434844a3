package clustering

import (
	"fmt"
	"strings"
)

// Variant selects the centroid-update algorithm.
type Variant int

const (
	// VariantLloyd is batch k-means: assign every point, then move every centroid to its cluster mean.
	VariantLloyd Variant = iota
	// VariantQueen visits points one at a time and moves the joined centroid immediately.
	VariantQueen
	// VariantPAM keeps centroids on data points and searches medoids by random swaps.
	VariantPAM
)

func (v Variant) String() string {
	switch v {
	case VariantLloyd:
		return "lloyd"
	case VariantQueen:
		return "queen"
	case VariantPAM:
		return "pam"
	default:
		return fmt.Sprintf("unknown(%d)", int(v))
	}
}

// ParseVariant resolves a variant name case-insensitively.
// Unknown names are rejected with ErrUnsupportedVariant; there is no fallback.
func ParseVariant(name string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "lloyd":
		return VariantLloyd, nil
	case "queen":
		return VariantQueen, nil
	case "pam":
		return VariantPAM, nil
	default:
		return 0, fmt.Errorf("%w:%w: %q", ErrInvalidArgument, ErrUnsupportedVariant, name)
	}
}
