// SPDX-License-Identifier: MPL-2.0

package builder

import (
	"errors"
	"fmt"
)

const (
	ComplexitySmall  Complexity = "small"
	ComplexityMedium Complexity = "medium"
	ComplexityLarge  Complexity = "large"
	ComplexityHuge   Complexity = "huge"
)

// ErrInvalidComplexity is returned when a Complexity value is not recognized.
var ErrInvalidComplexity = errors.New("invalid complexity")

// Complexity is a blueprint complexity tier controlling field counts and
// whether non-leading fields may use refinement, collection, and modifier
// types.
type Complexity string

// IsValid reports whether c is a recognized complexity tier.
func (c Complexity) IsValid() (bool, error) {
	switch c {
	case ComplexitySmall, ComplexityMedium, ComplexityLarge, ComplexityHuge:
		return true, nil
	}
	return false, fmt.Errorf("%w: %q", ErrInvalidComplexity, c)
}

// fieldBounds returns the inclusive [min, max] own-field count for the tier.
func (c Complexity) fieldBounds() (int, int) {
	switch c {
	case ComplexitySmall:
		return 1, 2
	case ComplexityMedium:
		return 2, 5
	case ComplexityLarge:
		return 4, 8
	default: // huge
		return 6, 12
	}
}
