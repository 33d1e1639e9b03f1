package i18n

import (
	"fmt"
	"slices"
	"strings"
)

// Vars maps placeholder names to substitution values. A value may be a
// Localized object (resolved with the usual language fallback chain), a
// string, or any other value, which is coerced with %v.
type Vars map[string]any

// ReplacePlaceholders substitutes every literal occurrence of a {{name}}
// token in template with the value bound to name in vars. Matching is exact
// and case-sensitive; tokens without a bound variable are left unchanged.
// Variables are processed in sorted name order so that the result is
// deterministic.
func ReplacePlaceholders(template string, vars Vars, lang, def Language) string {
	if len(vars) == 0 {
		return template
	}

	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	slices.Sort(names)

	result := template
	for _, name := range names {
		token := "{{" + name + "}}"
		if !strings.Contains(result, token) {
			continue
		}

		var replacement string
		switch v := vars[name].(type) {
		case Localized:
			replacement = v.For(lang, def)
		case map[Language]string:
			replacement = Localized(v).For(lang, def)
		case string:
			replacement = v
		default:
			replacement = fmt.Sprintf("%v", v)
		}

		result = strings.ReplaceAll(result, token, replacement)
	}

	return result
}

// mergeVars flattens a variadic Vars list into one map. Later maps win on
// conflicting names. Returns nil when nothing is bound.
func mergeVars(vars []Vars) Vars {
	switch len(vars) {
	case 0:
		return nil
	case 1:
		return vars[0]
	}

	merged := make(Vars)
	for _, v := range vars {
		for name, value := range v {
			merged[name] = value
		}
	}
	return merged
}
