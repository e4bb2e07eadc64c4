// SPDX-License-Identifier: MPL-2.0

package caffeine

type (
	// ExpectationValue pairs a resolved field name with a rendered literal
	// satisfying that field's type. Values keep blueprint field order.
	ExpectationValue struct {
		Name    string
		Literal string
	}

	// Expectation is one concrete instance conforming to a blueprint's
	// resolved field set, plus the fixed threshold/window metadata every
	// instance carries. An expectation satisfies exactly one blueprint;
	// many expectations may reference the same blueprint.
	Expectation struct {
		// Name is "{team}_{blueprint}_{index}", unique per (org, team).
		Name string

		// Blueprint is the name of the satisfied blueprint.
		Blueprint string

		Values []ExpectationValue

		// Threshold lies in (95.0, 99.99], rounded to 2 decimals.
		Threshold float64

		// WindowDays is one of 7, 30, or 90.
		WindowDays int
	}
)
