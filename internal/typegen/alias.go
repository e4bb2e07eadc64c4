// SPDX-License-Identifier: MPL-2.0

package typegen

import (
	"caffbench/pkg/caffeine"
)

// AliasTable maps alias names to their underlying type descriptors. It is
// owned by a single corpus generation pass and discarded with it; two
// passes never share a table. Registration order is preserved so alias
// declarations render deterministically.
//
// Aliases are depth-1 by construction: a registered type is never itself
// an Alias.
type AliasTable struct {
	types map[string]caffeine.Type
	names []string
}

// NewAliasTable creates an empty alias table.
func NewAliasTable() *AliasTable {
	return &AliasTable{types: make(map[string]caffeine.Type)}
}

// Register adds an alias. Re-registering a name overwrites its type but
// keeps its original declaration position.
func (t *AliasTable) Register(name string, typ caffeine.Type) {
	if _, exists := t.types[name]; !exists {
		t.names = append(t.names, name)
	}
	t.types[name] = typ
}

// Resolve implements caffeine.Resolver.
func (t *AliasTable) Resolve(name string) (caffeine.Type, bool) {
	typ, ok := t.types[name]
	return typ, ok
}

// Names returns alias names in registration order.
func (t *AliasTable) Names() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

// Len returns the number of registered aliases.
func (t *AliasTable) Len() int {
	return len(t.names)
}
