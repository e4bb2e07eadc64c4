// SPDX-License-Identifier: MPL-2.0

package typegen

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"caffbench/pkg/caffeine"
)

func TestNextType_SynthesizedValuesAreAccepted(t *testing.T) {
	t.Parallel()

	// Soundness across many seeds and draws: whatever the grammar
	// produces, the synthesizer must produce a member literal for it.
	for seed := int64(0); seed < 10; seed++ {
		seed := seed
		t.Run(fmt.Sprintf("seed_%d", seed), func(t *testing.T) {
			t.Parallel()

			rng := rand.New(rand.NewSource(seed))
			table := NewAliasTable()
			g := NewGrammar(rng, table)
			g.Aliases(4)
			s := NewSynthesizer(rng, table)

			for i := 0; i < 500; i++ {
				typ := g.NextType(0, true)
				lit := s.Synthesize(typ)
				if !typ.Accepts(lit, table) {
					t.Fatalf("draw %d: literal %q not accepted by type %q", i, lit, typ.Render())
				}
			}
		})
	}
}

func TestNextType_SimpleOnly(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(1))
	g := NewGrammar(rng, NewAliasTable())

	for i := 0; i < 200; i++ {
		typ := g.NextType(0, false)
		if _, ok := typ.(caffeine.Primitive); !ok {
			t.Fatalf("draw %d: allowComplex=false must yield primitives, got %q", i, typ.Render())
		}
	}
}

func TestNextType_DepthIsBounded(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(7))
	g := NewGrammar(rng, NewAliasTable())

	for i := 0; i < 1000; i++ {
		typ := g.NextType(0, true)
		if d := typeDepth(typ); d > 2 {
			t.Fatalf("draw %d: type %q has depth %d", i, typ.Render(), d)
		}
	}
}

// typeDepth counts constructor nesting levels.
func typeDepth(t caffeine.Type) int {
	switch v := t.(type) {
	case caffeine.List:
		return 1 + typeDepth(v.Elem)
	case caffeine.Dict:
		return 1 + typeDepth(v.Value)
	case caffeine.Optional:
		return 1 + typeDepth(v.Inner)
	case caffeine.Defaulted:
		return 1 + typeDepth(v.Inner)
	default:
		return 0
	}
}

func TestNextType_Deterministic(t *testing.T) {
	t.Parallel()

	render := func(seed int64) string {
		rng := rand.New(rand.NewSource(seed))
		g := NewGrammar(rng, NewAliasTable())
		var sb strings.Builder
		for i := 0; i < 100; i++ {
			sb.WriteString(g.NextType(0, true).Render())
			sb.WriteString("\n")
		}
		return sb.String()
	}

	if render(42) != render(42) {
		t.Error("equal seeds must yield identical type sequences")
	}
	if render(42) == render(43) {
		t.Error("different seeds should yield different type sequences")
	}
}

func TestAliases_RegistersResolvableDecls(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(3))
	table := NewAliasTable()
	g := NewGrammar(rng, table)

	decls := g.Aliases(5)
	if len(decls) != 5 {
		t.Fatalf("expected 5 decls, got %d", len(decls))
	}
	if table.Len() != 5 {
		t.Fatalf("expected 5 registered aliases, got %d", table.Len())
	}

	for i, d := range decls {
		wantName := fmt.Sprintf("_type_%d", i)
		if d.Name != wantName {
			t.Errorf("decl %d: name = %q, want %q", i, d.Name, wantName)
		}
		resolved, ok := table.Resolve(d.Name)
		if !ok {
			t.Fatalf("alias %q not resolvable", d.Name)
		}
		if resolved.Render() != d.Type.Render() {
			t.Errorf("alias %q: resolved %q != declared %q", d.Name, resolved.Render(), d.Type.Render())
		}
		switch d.Type.(type) {
		case caffeine.OneOf, caffeine.Range:
		default:
			t.Errorf("alias %q has unexpected underlying type %q", d.Name, d.Type.Render())
		}
	}
}

func TestAliasTable_OrderAndOverwrite(t *testing.T) {
	t.Parallel()

	table := NewAliasTable()
	table.Register("_type_0", caffeine.String)
	table.Register("_type_1", caffeine.Integer)
	table.Register("_type_0", caffeine.Boolean)

	names := table.Names()
	if len(names) != 2 || names[0] != "_type_0" || names[1] != "_type_1" {
		t.Fatalf("unexpected names order: %v", names)
	}

	typ, ok := table.Resolve("_type_0")
	if !ok || typ != caffeine.Boolean {
		t.Errorf("re-registration should overwrite the type, got %v", typ)
	}
	if _, ok := table.Resolve("_type_9"); ok {
		t.Error("unknown alias should not resolve")
	}
}
