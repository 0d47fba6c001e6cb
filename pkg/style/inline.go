package style

import (
	"sort"
	"strings"

	"github.com/goliatone/go-contactform/pkg/contact"
)

// Declarations returns the CSS properties set by s, skipping empty values.
func Declarations(s contact.Style) [][2]string {
	var out [][2]string
	add := func(prop, value string) {
		if value != "" {
			out = append(out, [2]string{prop, value})
		}
	}
	add("color", s.Color)
	add("background", s.Background)
	add("padding", s.Padding)
	add("border-radius", s.BorderRadius)
	return out
}

// Merge applies s on top of an inline style attribute, keeping unrelated
// declarations in their original order.
func Merge(existing string, s contact.Style) string {
	var order []string
	values := make(map[string]string)
	for _, decl := range strings.Split(existing, ";") {
		prop, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		prop = strings.ToLower(strings.TrimSpace(prop))
		value = strings.TrimSpace(value)
		if prop == "" {
			continue
		}
		if _, seen := values[prop]; !seen {
			order = append(order, prop)
		}
		values[prop] = value
	}
	for _, decl := range Declarations(s) {
		if _, seen := values[decl[0]]; !seen {
			order = append(order, decl[0])
		}
		values[decl[0]] = decl[1]
	}

	parts := make([]string, 0, len(order))
	for _, prop := range order {
		parts = append(parts, prop+": "+values[prop])
	}
	return strings.Join(parts, "; ")
}

// CSSVars derives custom properties ("--name") from tokens.
func CSSVars(tokens map[string]string) map[string]string {
	if len(tokens) == 0 {
		return nil
	}
	out := make(map[string]string, len(tokens))
	for key, value := range tokens {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		out["--"+key] = value
	}
	return out
}

// RootBlock renders vars as a sorted ":root { ... }" block.
func RootBlock(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, key := range keys {
		b.WriteString("  ")
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(vars[key])
		b.WriteString(";\n")
	}
	b.WriteString("}")
	return b.String()
}
