// SPDX-License-Identifier: MPL-2.0

package typegen

import (
	"fmt"
	"math/rand"
	"sort"
	"strconv"

	"caffbench/pkg/caffeine"
)

// maxDepth is the structural depth ceiling: beyond it only primitives are
// produced, so constructed type trees never exceed three levels.
const maxDepth = 2

// Grammar draws random caffeine type descriptors. OneOf and Range
// parameters are drawn fresh on every call, never cached, to maximize
// corpus diversity: two calls with identical arguments may yield
// different descriptors.
type Grammar struct {
	rng     *rand.Rand
	aliases *AliasTable
}

// NewGrammar creates a grammar drawing from rng and registering aliases
// into table.
func NewGrammar(rng *rand.Rand, table *AliasTable) *Grammar {
	return &Grammar{rng: rng, aliases: table}
}

// NextType returns a type descriptor. Beyond maxDepth, or when
// allowComplex is false, only primitives are produced; the function is
// total and recursion always terminates.
func (g *Grammar) NextType(depth int, allowComplex bool) caffeine.Type {
	if depth > maxDepth || !allowComplex {
		return g.primitive()
	}

	switch r := g.rng.Float64(); {
	case r < 0.40:
		return g.primitive()
	case r < 0.55:
		if g.rng.Float64() < 0.5 {
			return g.oneOfString()
		}
		return g.oneOfInteger()
	case r < 0.65:
		return g.rangeType()
	case r < 0.80:
		return g.collection(depth)
	default:
		return g.modifier(depth)
	}
}

// primitive returns one of the four base types.
func (g *Grammar) primitive() caffeine.Type {
	kinds := [...]caffeine.Primitive{caffeine.String, caffeine.Integer, caffeine.Float, caffeine.Boolean}
	return kinds[g.rng.Intn(len(kinds))]
}

// oneOfString draws 2-5 distinct status values.
func (g *Grammar) oneOfString() caffeine.Type {
	return caffeine.OneOf{
		Base:   caffeine.String,
		Values: g.sample(statuses, 2+g.rng.Intn(4)),
	}
}

// oneOfInteger draws 2-4 distinct values in [1, 100), sorted ascending.
func (g *Grammar) oneOfInteger() caffeine.Type {
	k := 2 + g.rng.Intn(3)
	perm := g.rng.Perm(99)
	picked := make([]int, k)
	for i := 0; i < k; i++ {
		picked[i] = perm[i] + 1
	}
	sort.Ints(picked)

	values := make([]string, k)
	for i, v := range picked {
		values[i] = strconv.Itoa(v)
	}
	return caffeine.OneOf{Base: caffeine.Integer, Values: values}
}

// rangeType draws a Float range with 1-decimal bounds or an Integer range,
// each with disjoint low/high pools so the interval is always well-formed.
func (g *Grammar) rangeType() caffeine.Type {
	if g.rng.Float64() < 0.5 {
		return caffeine.Range{
			Base: caffeine.Float,
			Low:  round1(g.rng.Float64() * 50),
			High: round1(60 + g.rng.Float64()*40),
		}
	}
	return caffeine.Range{
		Base: caffeine.Integer,
		Low:  float64(g.rng.Intn(51)),
		High: float64(60 + g.rng.Intn(941)),
	}
}

// collection returns a List (60%) or Dict (40%) with a simple element
// type: one level of complexity inside containers, never two.
func (g *Grammar) collection(depth int) caffeine.Type {
	if depth > 1 {
		return g.primitive()
	}
	if g.rng.Float64() < 0.6 {
		return caffeine.List{Elem: g.NextType(depth+1, false)}
	}
	return caffeine.Dict{Value: g.NextType(depth+1, false)}
}

// modifier wraps a simple inner type in Optional or Defaulted. Defaulted
// needs a default literal matching the inner base; non-primitive inners
// fall back to Optional.
func (g *Grammar) modifier(depth int) caffeine.Type {
	inner := g.NextType(depth+1, false)
	if g.rng.Float64() < 0.5 {
		return caffeine.Optional{Inner: inner}
	}

	prim, ok := inner.(caffeine.Primitive)
	if !ok {
		return caffeine.Optional{Inner: inner}
	}
	var def string
	switch prim {
	case caffeine.String:
		def = `"default"`
	case caffeine.Integer:
		def = "0"
	case caffeine.Float:
		def = "0.0"
	case caffeine.Boolean:
		def = "false"
	}
	return caffeine.Defaulted{Inner: prim, Default: def}
}

// Aliases registers n type aliases named _type_0.._type_{n-1} and returns
// their declarations. Each alias is either a OneOf over environment names
// or a Float range; the underlying descriptor is registered so later
// Alias references resolve without re-parsing rendered text.
func (g *Grammar) Aliases(n int) []caffeine.AliasDecl {
	pool := make([]string, 0, len(Envs)+len(aliasEnvs))
	pool = append(pool, Envs...)
	pool = append(pool, aliasEnvs...)

	decls := make([]caffeine.AliasDecl, 0, n)
	for i := 0; i < n; i++ {
		name := fmt.Sprintf("_type_%d", i)
		var underlying caffeine.Type
		if g.rng.Float64() < 0.5 {
			underlying = caffeine.OneOf{
				Base:   caffeine.String,
				Values: g.sample(pool, 2+g.rng.Intn(4)),
			}
		} else {
			underlying = caffeine.Range{
				Base: caffeine.Float,
				Low:  round1(g.rng.Float64() * 50),
				High: round1(60 + g.rng.Float64()*40),
			}
		}
		g.aliases.Register(name, underlying)
		decls = append(decls, caffeine.AliasDecl{Name: name, Type: underlying})
	}
	return decls
}

// sample picks k distinct elements of pool in shuffle order.
func (g *Grammar) sample(pool []string, k int) []string {
	if k > len(pool) {
		k = len(pool)
	}
	perm := g.rng.Perm(len(pool))
	out := make([]string, k)
	for i := 0; i < k; i++ {
		out[i] = pool[perm[i]]
	}
	return out
}

// round1 rounds to one decimal place for Float range bounds.
func round1(v float64) float64 {
	return float64(int(v*10+0.5)) / 10
}
