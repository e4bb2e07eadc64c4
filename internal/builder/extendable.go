// SPDX-License-Identifier: MPL-2.0

package builder

import (
	"fmt"

	"github.com/charmbracelet/log"

	"caffbench/internal/typegen"
	"caffbench/pkg/caffeine"
)

// Extendables is the set of extendable declarations owned by one corpus
// generation pass, preserving declaration order per kind.
type Extendables struct {
	byName   map[string]caffeine.Extendable
	decls    []caffeine.Extendable
	requires []string
	provides []string
}

// BuildExtendables generates reqCount Requires extendables (each with 1-3
// simple-typed fields) and provCount Provides extendables (each carrying
// only the fixed vendor tag, the single field valid on a Provides
// fragment).
func (b *Builder) BuildExtendables(reqCount, provCount int) *Extendables {
	ex := &Extendables{byName: make(map[string]caffeine.Extendable)}

	for i := 0; i < reqCount; i++ {
		name := fmt.Sprintf("_req_%d", i)
		n := 1 + b.rng.Intn(3)
		fields := make([]caffeine.Field, n)
		for j := range fields {
			fields[j] = caffeine.Field{
				Name: fmt.Sprintf("req_%d_field_%d", i, j),
				Type: b.grammar.NextType(0, false),
			}
		}
		ex.add(caffeine.Extendable{Name: name, Kind: caffeine.KindRequires, Fields: fields})
	}

	for i := 0; i < provCount; i++ {
		ex.add(caffeine.Extendable{
			Name:   fmt.Sprintf("_prov_%d", i),
			Kind:   caffeine.KindProvides,
			Vendor: typegen.Vendor,
		})
	}

	return ex
}

func (ex *Extendables) add(e caffeine.Extendable) {
	ex.byName[e.Name] = e
	ex.decls = append(ex.decls, e)
	switch e.Kind {
	case caffeine.KindRequires:
		ex.requires = append(ex.requires, e.Name)
	case caffeine.KindProvides:
		ex.provides = append(ex.provides, e.Name)
	}
}

// Decls returns all declarations in declaration order.
func (ex *Extendables) Decls() []caffeine.Extendable { return ex.decls }

// RequiresNames returns the Requires extendable names in declaration order.
func (ex *Extendables) RequiresNames() []string { return ex.requires }

// ProvidesNames returns the Provides extendable names in declaration order.
func (ex *Extendables) ProvidesNames() []string { return ex.provides }

// HasProvides reports whether any of names is a Provides extendable.
func (ex *Extendables) HasProvides(names []string) bool {
	for _, n := range names {
		if e, ok := ex.byName[n]; ok && e.Kind == caffeine.KindProvides {
			return true
		}
	}
	return false
}

// FieldsFor concatenates, in the order names are declared, the field lists
// of every named Requires extendable. Provides extendables contribute no
// fields. Name collisions between extendables are NOT deduplicated: each
// extendable contributes its fields independently, and a collision is
// surfaced as a warning because the consuming compiler's tolerance for
// duplicate field declarations is an open question.
func (ex *Extendables) FieldsFor(names []string) []caffeine.Field {
	var fields []caffeine.Field
	seen := make(map[string]bool)
	for _, n := range names {
		e, ok := ex.byName[n]
		if !ok || e.Kind != caffeine.KindRequires {
			continue
		}
		for _, f := range e.Fields {
			if seen[f.Name] {
				log.Warn("duplicate field contributed by merged extendables",
					"field", f.Name, "extendable", n)
			}
			seen[f.Name] = true
			fields = append(fields, f)
		}
	}
	return fields
}
