// SPDX-License-Identifier: MPL-2.0

package caffeine

import (
	"fmt"
	"strconv"
	"strings"
)

// GenerateBlueprintFile renders a complete blueprints .caffeine file:
// alias declarations, extendable declarations, then one Blueprints block
// for the given group. Empty sections are omitted; sections are separated
// by a blank line.
func GenerateBlueprintFile(group string, aliases []AliasDecl, extendables []Extendable, blueprints []Blueprint) string {
	var sections []string

	if len(aliases) > 0 {
		lines := make([]string, len(aliases))
		for i, a := range aliases {
			lines[i] = fmt.Sprintf("%s (Type): %s", a.Name, a.Type.Render())
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}

	if len(extendables) > 0 {
		lines := make([]string, len(extendables))
		for i, e := range extendables {
			lines[i] = generateExtendableDecl(e)
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Blueprints for %q", group)
	for i := range blueprints {
		sb.WriteString("\n")
		generateBlueprintItem(&sb, &blueprints[i])
	}
	sections = append(sections, sb.String())

	return strings.Join(sections, "\n\n") + "\n"
}

// generateExtendableDecl renders a single extendable declaration line.
func generateExtendableDecl(e Extendable) string {
	if e.Kind == KindProvides {
		return fmt.Sprintf("%s (Provides): { vendor: %q }", e.Name, e.Vendor)
	}
	entries := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		entries[i] = fmt.Sprintf("%s: %s", f.Name, f.Type.Render())
	}
	return fmt.Sprintf("%s (Requires): { %s }", e.Name, strings.Join(entries, ", "))
}

// generateBlueprintItem renders one blueprint item within a Blueprints
// block. A Requires block with at most two fields stays inline; larger
// blocks go multiline with trailing commas.
func generateBlueprintItem(sb *strings.Builder, bp *Blueprint) {
	extendsStr := ""
	if len(bp.Extends) > 0 {
		extendsStr = fmt.Sprintf(" extends [%s]", strings.Join(bp.Extends, ", "))
	}
	fmt.Fprintf(sb, "  * %q%s:\n", bp.Name, extendsStr)

	entries := make([]string, len(bp.OwnFields))
	for i, f := range bp.OwnFields {
		entries[i] = fmt.Sprintf("%s: %s", f.Name, f.Type.Render())
	}
	if len(entries) <= 2 {
		fmt.Fprintf(sb, "    Requires { %s }\n", strings.Join(entries, ", "))
	} else {
		sb.WriteString("    Requires {\n")
		for _, e := range entries {
			fmt.Fprintf(sb, "      %s,\n", e)
		}
		sb.WriteString("    }\n")
	}

	sb.WriteString("    Provides {\n")
	if bp.Provides.Vendor != "" {
		fmt.Fprintf(sb, "      vendor: %q,\n", bp.Provides.Vendor)
	}
	fmt.Fprintf(sb, "      evaluation: %q,\n", bp.Provides.Evaluation)
	sb.WriteString("      indicators: {\n")
	fmt.Fprintf(sb, "        numerator: %q,\n", bp.Provides.Indicators.Numerator)
	fmt.Fprintf(sb, "        denominator: %q\n", bp.Provides.Indicators.Denominator)
	sb.WriteString("      }\n")
	sb.WriteString("    }")
}

// GenerateExpectationSection renders one "Expectations for" section for a
// single blueprint. The returned text ends with a newline so sections can
// be joined with a single "\n" to leave one blank line between them.
func GenerateExpectationSection(blueprintName string, exps []Expectation) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Expectations for %q\n", blueprintName)

	for i := range exps {
		e := &exps[i]
		fmt.Fprintf(&sb, "  * %q:\n", e.Name)
		sb.WriteString("    Provides {\n")
		for _, v := range e.Values {
			fmt.Fprintf(&sb, "      %s: %s,\n", v.Name, v.Literal)
		}
		fmt.Fprintf(&sb, "      threshold: %s,\n", strconv.FormatFloat(e.Threshold, 'f', 2, 64))
		fmt.Fprintf(&sb, "      window_in_days: %d\n", e.WindowDays)
		sb.WriteString("    }\n")
	}

	return sb.String()
}
