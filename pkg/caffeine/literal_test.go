// SPDX-License-Identifier: MPL-2.0

package caffeine

import (
	"reflect"
	"testing"
)

func TestPrimitiveAccepts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		typ  Primitive
		lit  string
		want bool
	}{
		{"quoted string", String, `"hello"`, true},
		{"unquoted string", String, "hello", false},
		{"empty quoted string", String, `""`, true},
		{"integer", Integer, "42", true},
		{"negative integer", Integer, "-3", true},
		{"float as integer", Integer, "4.2", false},
		{"float", Float, "4.25", true},
		{"integer as float", Float, "4", true},
		{"boolean true", Boolean, "true", true},
		{"boolean false", Boolean, "false", true},
		{"boolean junk", Boolean, "yes", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.typ.Accepts(tt.lit, nil); got != tt.want {
				t.Errorf("%s.Accepts(%q) = %v, want %v", tt.typ, tt.lit, got, tt.want)
			}
		})
	}
}

func TestOneOfAccepts(t *testing.T) {
	t.Parallel()

	str := OneOf{Base: String, Values: []string{"active", "degraded"}}
	if !str.Accepts(`"active"`, nil) {
		t.Error("quoted member should be accepted")
	}
	if str.Accepts("active", nil) {
		t.Error("unquoted member should be rejected")
	}
	if str.Accepts(`"down"`, nil) {
		t.Error("non-member should be rejected")
	}

	num := OneOf{Base: Integer, Values: []string{"3", "17"}}
	if !num.Accepts("17", nil) {
		t.Error("integer member should be accepted")
	}
	if num.Accepts("18", nil) {
		t.Error("integer non-member should be rejected")
	}
}

func TestRangeAccepts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		typ  Range
		lit  string
		want bool
	}{
		{"float inside", Range{Base: Float, Low: 0.5, High: 49.9}, "25.00", true},
		{"float at low bound", Range{Base: Float, Low: 0.5, High: 49.9}, "0.50", true},
		{"float rounded past high bound", Range{Base: Float, Low: 0.5, High: 49.9}, "49.90", true},
		{"float outside", Range{Base: Float, Low: 0.5, High: 49.9}, "50.01", false},
		{"integer inside", Range{Base: Integer, Low: 60, High: 1000}, "60", true},
		{"integer outside", Range{Base: Integer, Low: 60, High: 1000}, "59", false},
		{"integer rejects fraction", Range{Base: Integer, Low: 60, High: 1000}, "60.5", false},
		{"not a number", Range{Base: Float, Low: 0, High: 1}, `"x"`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.typ.Accepts(tt.lit, nil); got != tt.want {
				t.Errorf("Accepts(%q) = %v, want %v", tt.lit, got, tt.want)
			}
		})
	}
}

func TestContainerAccepts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		typ  Type
		lit  string
		want bool
	}{
		{"list of integers", List{Elem: Integer}, "[1, 2, 3]", true},
		{"list element mismatch", List{Elem: Integer}, `[1, "two"]`, false},
		{"empty list", List{Elem: Integer}, "[]", false},
		{"oversized list", List{Elem: Integer}, "[1, 2, 3, 4, 5]", false},
		{"nested list", List{Elem: List{Elem: Integer}}, "[[1, 2], [3]]", true},
		{"dict of floats", Dict{Value: Float}, "{key_0: 1.25, key_1: 2.50}", true},
		{"dict value mismatch", Dict{Value: Float}, `{key_0: "x"}`, false},
		{"dict missing colon", Dict{Value: Float}, "{key_0}", false},
		{"dict of strings with commas", Dict{Value: String}, `{key_0: "a,b", key_1: "c"}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.typ.Accepts(tt.lit, nil); got != tt.want {
				t.Errorf("Accepts(%q) = %v, want %v", tt.lit, got, tt.want)
			}
		})
	}
}

func TestModifierAndAliasAccepts(t *testing.T) {
	t.Parallel()

	opt := Optional{Inner: Integer}
	if !opt.Accepts("7", nil) {
		t.Error("present optional value should satisfy the inner type")
	}
	if opt.Accepts(`"7"`, nil) {
		t.Error("inner type mismatch should be rejected")
	}

	def := Defaulted{Inner: Integer, Default: "42"}
	if !def.Accepts("42", nil) {
		t.Error("default literal should be accepted")
	}
	if !def.Accepts("7", nil) {
		t.Error("inner-typed literal should be accepted")
	}
	if def.Accepts(`"x"`, nil) {
		t.Error("literal matching neither default nor inner should be rejected")
	}

	r := mapResolver{"_type_0": OneOf{Base: String, Values: []string{"qa"}}}
	al := Alias{Name: "_type_0"}
	if !al.Accepts(`"qa"`, r) {
		t.Error("alias should accept through its resolved type")
	}
	if al.Accepts(`"qa"`, nil) {
		t.Error("alias without resolver should reject")
	}
	if (Alias{Name: "_type_9"}).Accepts(`"qa"`, r) {
		t.Error("unresolvable alias should reject")
	}
}

func TestSplitTopLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"flat", "1, 2, 3", []string{"1", "2", "3"}},
		{"nested brackets", "[1, 2], [3]", []string{"[1, 2]", "[3]"}},
		{"nested braces", "k: {a: 1, b: 2}, j: 3", []string{"k: {a: 1, b: 2}", "j: 3"}},
		{"comma inside string", `"a,b", "c"`, []string{`"a,b"`, `"c"`}},
		{"single element", "42", []string{"42"}},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := splitTopLevel(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitTopLevel(%q) = %#v, want %#v", tt.in, got, tt.want)
			}
		})
	}
}
