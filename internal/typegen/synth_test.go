// SPDX-License-Identifier: MPL-2.0

package typegen

import (
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"caffbench/pkg/caffeine"
)

func TestSynthesize_PrimitiveShapes(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(11))
	s := NewSynthesizer(rng, NewAliasTable())

	for i := 0; i < 100; i++ {
		str := s.Synthesize(caffeine.String)
		if !strings.HasPrefix(str, `"`) || !strings.HasSuffix(str, `"`) {
			t.Fatalf("string literal %q is not quoted", str)
		}
		inner := str[1 : len(str)-1]
		if len(inner) < 5 || len(inner) > 15 {
			t.Fatalf("string token %q length %d outside [5, 15]", inner, len(inner))
		}

		n, err := strconv.Atoi(s.Synthesize(caffeine.Integer))
		if err != nil || n < 1 || n > 10000 {
			t.Fatalf("integer literal out of range: %d (%v)", n, err)
		}

		f := s.Synthesize(caffeine.Float)
		if _, err := strconv.ParseFloat(f, 64); err != nil {
			t.Fatalf("float literal %q invalid: %v", f, err)
		}
		if _, frac, ok := strings.Cut(f, "."); !ok || len(frac) != 2 {
			t.Fatalf("float literal %q must have exactly 2 decimals", f)
		}

		b := s.Synthesize(caffeine.Boolean)
		if b != "true" && b != "false" {
			t.Fatalf("boolean literal %q invalid", b)
		}
	}
}

func TestSynthesize_ModifiersUseInnerValue(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(5))
	s := NewSynthesizer(rng, NewAliasTable())

	opt := caffeine.Optional{Inner: caffeine.Boolean}
	if lit := s.Synthesize(opt); lit != "true" && lit != "false" {
		t.Errorf("optional should synthesize the inner value, got %q", lit)
	}

	def := caffeine.Defaulted{Inner: caffeine.Boolean, Default: "false"}
	if lit := s.Synthesize(def); lit != "true" && lit != "false" {
		t.Errorf("defaulted should synthesize the inner value, got %q", lit)
	}
}

func TestSynthesize_UnresolvedAliasFallsBack(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(5))
	s := NewSynthesizer(rng, NewAliasTable())

	if lit := s.Synthesize(caffeine.Alias{Name: "_type_0"}); lit != FallbackLiteral {
		t.Errorf("unresolved alias should fall back, got %q", lit)
	}
	if lit := s.Synthesize(nil); lit != FallbackLiteral {
		t.Errorf("nil descriptor should fall back, got %q", lit)
	}
}
