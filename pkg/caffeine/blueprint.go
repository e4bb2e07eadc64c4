// SPDX-License-Identifier: MPL-2.0

package caffeine

type (
	// Field is a named, typed schema entry. Name uniqueness is scoped to
	// the owning Blueprint or Extendable.
	Field struct {
		Name string
		Type Type
	}

	// AliasDecl declares a named type alias at the top of a blueprint file.
	AliasDecl struct {
		Name string
		Type Type
	}

	// IndicatorQueries holds the two indicator query templates of a
	// blueprint's Provides block. Template variables appear as
	// $name->name$ placeholders that the compiler substitutes per
	// expectation.
	IndicatorQueries struct {
		Numerator   string
		Denominator string
	}

	// ProvidesBlock is a blueprint's fixed derived output: the vendor tag
	// (empty when already guaranteed by an extended Provides extendable),
	// the evaluation formula, and the indicator query templates.
	ProvidesBlock struct {
		Vendor     string
		Evaluation string
		Indicators IndicatorQueries
	}

	// Blueprint is a named schema declaring required input fields and a
	// derived output. It is created once per corpus generation pass and
	// immutable thereafter.
	Blueprint struct {
		// Name is the unique service identifier (e.g. "checkout_slo").
		Name string

		// Extends lists extendable names in declaration order.
		Extends []string

		// OwnFields are the fields declared directly on the blueprint.
		OwnFields []Field

		// ResolvedFields is OwnFields plus every field contributed by
		// extended Requires extendables, in declaration order. This is
		// the field set an Expectation must satisfy.
		ResolvedFields []Field

		Provides ProvidesBlock
	}
)
