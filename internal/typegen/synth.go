// SPDX-License-Identifier: MPL-2.0

package typegen

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"caffbench/pkg/caffeine"
)

// FallbackLiteral is emitted for descriptors the synthesizer does not
// recognize (nil descriptors, unresolved aliases, or variants added to the
// grammar before being wired here). Degrading to a fixed literal instead
// of failing lets a corpus generation pass run to completion.
const FallbackLiteral = `"fallback_value"`

const lowercase = "abcdefghijklmnopqrstuvwxyz"

// Synthesizer produces rendered literal values conforming to a type
// descriptor. Soundness invariant: for every descriptor t produced by the
// Grammar, t.Accepts(Synthesize(t), resolver) holds.
type Synthesizer struct {
	rng     *rand.Rand
	aliases caffeine.Resolver
}

// NewSynthesizer creates a synthesizer drawing from rng and resolving
// aliases through resolver.
func NewSynthesizer(rng *rand.Rand, resolver caffeine.Resolver) *Synthesizer {
	return &Synthesizer{rng: rng, aliases: resolver}
}

// Synthesize returns a literal inside t's accepted value domain.
// Optional and Defaulted always synthesize the inner value: omission is
// valid per the type's semantics but an explicit value keeps expectations
// complete and stable for downstream benchmarking.
func (s *Synthesizer) Synthesize(t caffeine.Type) string {
	switch v := t.(type) {
	case caffeine.Primitive:
		return s.primitive(v)
	case caffeine.OneOf:
		return v.ValueLiteral(v.Values[s.rng.Intn(len(v.Values))])
	case caffeine.Range:
		return s.rangeValue(v)
	case caffeine.List:
		n := 1 + s.rng.Intn(4)
		elems := make([]string, n)
		for i := range elems {
			elems[i] = s.Synthesize(v.Elem)
		}
		return "[" + strings.Join(elems, ", ") + "]"
	case caffeine.Dict:
		n := 1 + s.rng.Intn(3)
		entries := make([]string, n)
		for i := range entries {
			entries[i] = fmt.Sprintf("key_%d: %s", i, s.Synthesize(v.Value))
		}
		return "{ " + strings.Join(entries, ", ") + " }"
	case caffeine.Optional:
		return s.Synthesize(v.Inner)
	case caffeine.Defaulted:
		return s.Synthesize(v.Inner)
	case caffeine.Alias:
		resolved, ok := s.aliases.Resolve(v.Name)
		if !ok {
			return FallbackLiteral
		}
		return s.Synthesize(resolved)
	default:
		return FallbackLiteral
	}
}

func (s *Synthesizer) primitive(p caffeine.Primitive) string {
	switch p {
	case caffeine.String:
		return `"` + s.token(5+s.rng.Intn(11)) + `"`
	case caffeine.Integer:
		return strconv.Itoa(1 + s.rng.Intn(10000))
	case caffeine.Float:
		return formatFloat(0.01 + s.rng.Float64()*99.99)
	case caffeine.Boolean:
		if s.rng.Intn(2) == 0 {
			return "true"
		}
		return "false"
	}
	return FallbackLiteral
}

// rangeValue draws strictly inside the interval: integer ranges use an
// inclusive draw on the truncated bounds, float ranges a 2-decimal draw.
func (s *Synthesizer) rangeValue(r caffeine.Range) string {
	if r.Base == caffeine.Integer {
		lo, hi := int(r.Low), int(r.High)
		return strconv.Itoa(lo + s.rng.Intn(hi-lo+1))
	}
	return formatFloat(r.Low + s.rng.Float64()*(r.High-r.Low))
}

// token returns a random lowercase identifier of length n.
func (s *Synthesizer) token(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = lowercase[s.rng.Intn(len(lowercase))]
	}
	return string(b)
}

// formatFloat renders a float rounded to 2 decimals.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
