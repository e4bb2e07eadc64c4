// SPDX-License-Identifier: MPL-2.0

package caffeine

import (
	"strconv"
	"strings"
)

// floatTolerance absorbs the 2-decimal rounding applied to synthesized
// Float values when checking Range membership.
const floatTolerance = 0.005

func (p Primitive) Accepts(lit string, _ Resolver) bool {
	lit = strings.TrimSpace(lit)
	switch p {
	case String:
		return len(lit) >= 2 && strings.HasPrefix(lit, `"`) && strings.HasSuffix(lit, `"`)
	case Integer:
		_, err := strconv.ParseInt(lit, 10, 64)
		return err == nil
	case Float:
		_, err := strconv.ParseFloat(lit, 64)
		return err == nil
	case Boolean:
		return lit == "true" || lit == "false"
	}
	return false
}

func (o OneOf) Accepts(lit string, _ Resolver) bool {
	lit = strings.TrimSpace(lit)
	for _, v := range o.Values {
		if lit == o.ValueLiteral(v) {
			return true
		}
	}
	return false
}

func (r Range) Accepts(lit string, _ Resolver) bool {
	v, err := strconv.ParseFloat(strings.TrimSpace(lit), 64)
	if err != nil {
		return false
	}
	if r.Base == Integer && v != float64(int64(v)) {
		return false
	}
	return v >= r.Low-floatTolerance && v <= r.High+floatTolerance
}

func (l List) Accepts(lit string, r Resolver) bool {
	lit = strings.TrimSpace(lit)
	if !strings.HasPrefix(lit, "[") || !strings.HasSuffix(lit, "]") {
		return false
	}
	elems := splitTopLevel(lit[1 : len(lit)-1])
	if len(elems) < 1 || len(elems) > 4 {
		return false
	}
	for _, e := range elems {
		if !l.Elem.Accepts(e, r) {
			return false
		}
	}
	return true
}

func (d Dict) Accepts(lit string, r Resolver) bool {
	lit = strings.TrimSpace(lit)
	if !strings.HasPrefix(lit, "{") || !strings.HasSuffix(lit, "}") {
		return false
	}
	entries := splitTopLevel(lit[1 : len(lit)-1])
	if len(entries) < 1 || len(entries) > 3 {
		return false
	}
	for _, e := range entries {
		key, val, ok := strings.Cut(e, ":")
		if !ok || strings.TrimSpace(key) == "" {
			return false
		}
		if !d.Value.Accepts(val, r) {
			return false
		}
	}
	return true
}

func (o Optional) Accepts(lit string, r Resolver) bool {
	// Absence is also valid but has no literal representation; a present
	// literal must satisfy the inner type.
	return o.Inner.Accepts(lit, r)
}

func (d Defaulted) Accepts(lit string, r Resolver) bool {
	return strings.TrimSpace(lit) == d.Default || d.Inner.Accepts(lit, r)
}

func (a Alias) Accepts(lit string, r Resolver) bool {
	if r == nil {
		return false
	}
	resolved, ok := r.Resolve(a.Name)
	if !ok {
		return false
	}
	return resolved.Accepts(lit, r)
}

// splitTopLevel splits s on commas that are not nested inside brackets,
// braces, or string quotes, trimming surrounding whitespace from each part.
func splitTopLevel(s string) []string {
	var (
		parts    []string
		depth    int
		inString bool
		start    int
	)
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '"':
			inString = !inString
		case inString:
		case c == '[' || c == '{' || c == '(':
			depth++
		case c == ']' || c == '}' || c == ')':
			depth--
		case c == ',' && depth == 0:
			parts = append(parts, strings.TrimSpace(s[start:i]))
			start = i + 1
		}
	}
	if rest := strings.TrimSpace(s[start:]); rest != "" {
		parts = append(parts, rest)
	}
	return parts
}
