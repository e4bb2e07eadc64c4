// SPDX-License-Identifier: MPL-2.0

package caffeine

import (
	"errors"
	"fmt"
)

const (
	// KindRequires marks an extendable contributing additional required
	// fields to every blueprint that extends it.
	KindRequires ExtendableKind = "Requires"
	// KindProvides marks an extendable contributing fixed metadata, in
	// this corpus always exactly one vendor identity literal.
	KindProvides ExtendableKind = "Provides"
)

// ErrInvalidExtendableKind is returned when an ExtendableKind value is not
// recognized.
var ErrInvalidExtendableKind = errors.New("invalid extendable kind")

type (
	// ExtendableKind discriminates the two extendable flavors.
	ExtendableKind string

	// Extendable is a reusable named fragment a blueprint can extend.
	// Requires extendables carry Fields; Provides extendables carry a
	// Vendor literal and no fields.
	Extendable struct {
		Name   string
		Kind   ExtendableKind
		Fields []Field
		Vendor string
	}
)

// IsValid reports whether k is a recognized extendable kind.
func (k ExtendableKind) IsValid() (bool, error) {
	switch k {
	case KindRequires, KindProvides:
		return true, nil
	}
	return false, fmt.Errorf("%w: %q", ErrInvalidExtendableKind, k)
}
