// SPDX-License-Identifier: MPL-2.0

package caffeine

import (
	"fmt"
	"strings"
)

type (
	// Type is a caffeine type descriptor. Implementations are Primitive,
	// OneOf, Range, List, Dict, Optional, Defaulted, and Alias.
	//
	// Render produces the caffeine type syntax. Accepts reports whether a
	// rendered literal is a member of the type's accepted value domain;
	// it exists so generated corpora can be verified against the very
	// descriptors that produced them.
	Type interface {
		Render() string
		Accepts(lit string, r Resolver) bool
	}

	// Resolver resolves alias names to their underlying type descriptors.
	// The generator's alias table implements it; aliases are depth-1 by
	// construction, so a resolved type is never itself an Alias.
	Resolver interface {
		Resolve(name string) (Type, bool)
	}

	// Primitive is one of the four base types.
	Primitive string

	// OneOf narrows a String or Integer base to an enumerated value set.
	// Values holds raw (unquoted) literals; rendering adds quotes for
	// String bases. The set is non-empty and duplicate-free.
	OneOf struct {
		Base   Primitive
		Values []string
	}

	// Range narrows a Float or Integer base to the interval [Low, High].
	// Integer ranges carry whole-number bounds.
	Range struct {
		Base Primitive
		Low  float64
		High float64
	}

	// List holds 1-4 elements of the element type.
	List struct {
		Elem Type
	}

	// Dict maps 1-3 String keys to values of the value type.
	Dict struct {
		Value Type
	}

	// Optional admits either absence or a value of the inner type.
	Optional struct {
		Inner Type
	}

	// Defaulted admits either its rendered default literal or a value of
	// the inner type. Default always matches Inner's base.
	Defaulted struct {
		Inner   Type
		Default string
	}

	// Alias names a declared type alias; it resolves through a Resolver
	// to exactly one non-alias descriptor.
	Alias struct {
		Name string
	}
)

const (
	String  Primitive = "String"
	Integer Primitive = "Integer"
	Float   Primitive = "Float"
	Boolean Primitive = "Boolean"
)

// IsValid reports whether p is one of the four base types.
func (p Primitive) IsValid() bool {
	switch p {
	case String, Integer, Float, Boolean:
		return true
	}
	return false
}

func (p Primitive) Render() string { return string(p) }

func (o OneOf) Render() string {
	quoted := make([]string, len(o.Values))
	for i, v := range o.Values {
		quoted[i] = o.ValueLiteral(v)
	}
	return fmt.Sprintf("%s { x | x in { %s } }", o.Base, strings.Join(quoted, ", "))
}

// ValueLiteral formats a single candidate literal for the base type,
// quoting String-based values.
func (o OneOf) ValueLiteral(v string) string {
	if o.Base == String {
		return fmt.Sprintf("%q", v)
	}
	return v
}

func (r Range) Render() string {
	if r.Base == Integer {
		return fmt.Sprintf("Integer { x | x in ( %d..%d ) }", int64(r.Low), int64(r.High))
	}
	return fmt.Sprintf("Float { x | x in ( %.1f..%.1f ) }", r.Low, r.High)
}

func (l List) Render() string { return fmt.Sprintf("List(%s)", l.Elem.Render()) }

func (d Dict) Render() string { return fmt.Sprintf("Dict(String, %s)", d.Value.Render()) }

func (o Optional) Render() string { return fmt.Sprintf("Optional(%s)", o.Inner.Render()) }

func (d Defaulted) Render() string {
	return fmt.Sprintf("Defaulted(%s, %s)", d.Inner.Render(), d.Default)
}

func (a Alias) Render() string { return a.Name }

// IsStringBased reports whether t admits string literals eligible for
// template-variable substitution: Primitive(String), OneOf(String, ...),
// or an Alias resolving to either.
func IsStringBased(t Type, r Resolver) bool {
	switch v := t.(type) {
	case Primitive:
		return v == String
	case OneOf:
		return v.Base == String
	case Alias:
		if r == nil {
			return false
		}
		resolved, ok := r.Resolve(v.Name)
		if !ok {
			return false
		}
		return IsStringBased(resolved, r)
	}
	return false
}
