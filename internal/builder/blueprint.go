// SPDX-License-Identifier: MPL-2.0

package builder

import (
	"fmt"
	"math/rand"
	"strings"

	"caffbench/internal/typegen"
	"caffbench/pkg/caffeine"
)

// Builder assembles blueprints and expectations for one corpus generation
// pass. It owns no randomness of its own: every draw flows through the
// single injected rng, and the alias table belongs to the same pass.
type Builder struct {
	rng     *rand.Rand
	grammar *typegen.Grammar
	synth   *typegen.Synthesizer
	aliases *typegen.AliasTable
}

// New creates a builder over the pass-scoped rng and alias table.
func New(rng *rand.Rand, table *typegen.AliasTable) *Builder {
	return &Builder{
		rng:     rng,
		grammar: typegen.NewGrammar(rng, table),
		synth:   typegen.NewSynthesizer(rng, table),
		aliases: table,
	}
}

// Grammar exposes the pass's type grammar (used to pre-register aliases).
func (b *Builder) Grammar() *typegen.Grammar { return b.grammar }

// PickExtends selects the extendables a blueprint declares: 60% chance of
// 1-2 Provides extendables, then 50% chance of one Requires extendable,
// in that declaration order.
func (b *Builder) PickExtends(ex *Extendables) []string {
	var extends []string
	if prov := ex.ProvidesNames(); len(prov) > 0 && b.rng.Float64() < 0.6 {
		k := 1 + b.rng.Intn(2)
		if k > len(prov) {
			k = len(prov)
		}
		perm := b.rng.Perm(len(prov))
		for i := 0; i < k; i++ {
			extends = append(extends, prov[perm[i]])
		}
	}
	if req := ex.RequiresNames(); len(req) > 0 && b.rng.Float64() < 0.5 {
		extends = append(extends, req[b.rng.Intn(len(req))])
	}
	return extends
}

// Build generates one blueprint. The first two own fields are always
// Primitive(String): exactly these become eligible template variables, so
// this is a hard invariant rather than a probability. Later fields draw
// from the grammar (20% alias references once aliases exist), with complex
// types enabled for every tier above small.
func (b *Builder) Build(name string, extends []string, ex *Extendables, complexity Complexity) caffeine.Blueprint {
	minFields, maxFields := complexity.fieldBounds()
	n := minFields + b.rng.Intn(maxFields-minFields+1)

	own := make([]caffeine.Field, n)
	for i := range own {
		fname := fmt.Sprintf("%s_param_%d", name, i)
		var ftype caffeine.Type
		switch {
		case i < 2:
			ftype = caffeine.String
		case b.aliases.Len() > 0 && b.rng.Float64() < 0.2:
			names := b.aliases.Names()
			ftype = caffeine.Alias{Name: names[b.rng.Intn(len(names))]}
		default:
			ftype = b.grammar.NextType(0, complexity != ComplexitySmall)
		}
		own[i] = caffeine.Field{Name: fname, Type: ftype}
	}

	resolved := make([]caffeine.Field, 0, n)
	resolved = append(resolved, own...)
	resolved = append(resolved, ex.FieldsFor(extends)...)

	vendor := typegen.Vendor
	if ex.HasProvides(extends) {
		// The vendor value is already guaranteed by the extension.
		vendor = ""
	}

	return caffeine.Blueprint{
		Name:           name,
		Extends:        extends,
		OwnFields:      own,
		ResolvedFields: resolved,
		Provides: caffeine.ProvidesBlock{
			Vendor:     vendor,
			Evaluation: "numerator / denominator",
			Indicators: b.indicatorQueries(own),
		},
	}
}

// indicatorQueries builds the two query templates around a randomly chosen
// metric, substituting $name->name$ placeholders for up to two string-based
// fields in field order (envParam, then svcParam). When no field qualifies
// the placeholder segment is omitted entirely rather than left malformed.
func (b *Builder) indicatorQueries(fields []caffeine.Field) caffeine.IndicatorQueries {
	metric := typegen.Metrics[b.rng.Intn(len(typegen.Metrics))]

	var envParam, svcParam string
	for _, f := range fields {
		if !caffeine.IsStringBased(f.Type, b.aliases) {
			continue
		}
		switch {
		case envParam == "":
			envParam = f.Name
		case svcParam == "":
			svcParam = f.Name
		}
	}

	var num strings.Builder
	fmt.Fprintf(&num, "sum:%s{", metric)
	if envParam != "" {
		fmt.Fprintf(&num, "$%s->%s$", envParam, envParam)
	}
	if svcParam != "" {
		if envParam != "" {
			num.WriteString(",")
		}
		fmt.Fprintf(&num, "$%s->%s$", svcParam, svcParam)
	}
	num.WriteString("}")

	denomVar := ""
	if envParam != "" {
		denomVar = fmt.Sprintf("$%s->%s$", envParam, envParam)
	}

	return caffeine.IndicatorQueries{
		Numerator:   num.String(),
		Denominator: fmt.Sprintf("sum:%s.total{%s}", metric, denomVar),
	}
}
