package cssshorthand

import "strings"

var listStylePositionKeywords = map[string]bool{"inside": true, "outside": true}

var listStyleTypeKeywords = map[string]bool{
	"disc": true, "circle": true, "square": true, "decimal": true,
	"decimal-leading-zero": true, "lower-roman": true, "upper-roman": true,
	"lower-alpha": true, "upper-alpha": true, "lower-greek": true,
	"lower-latin": true, "upper-latin": true, "armenian": true,
	"georgian": true, "none": true,
}

// expandListStyle implements list-style expansion:
// classify each token as image (url(...)), position (inside|outside), or
// type (from a fixed keyword set).
func expandListStyle(value string) map[string]string {
	toks := fields(value)
	if len(toks) == 0 {
		return nil
	}

	m := map[string]string{}
	for _, t := range toks {
		low := strings.ToLower(t)
		switch {
		case strings.HasPrefix(low, "url("):
			m["list-style-image"] = t
		case listStylePositionKeywords[low]:
			m["list-style-position"] = t
		case listStyleTypeKeywords[low]:
			m["list-style-type"] = t
		default:
			// Unrecognized tokens (custom counter-style names) are kept
			// as the type, matching CSS's fallback grammar for
			// <counter-style> in this position.
			m["list-style-type"] = t
		}
	}
	if len(m) == 0 {
		return nil
	}
	return m
}

// createListStyle implements list-style creator: requires
// at least one component.
func createListStyle(m map[string]string) (string, bool) {
	var parts []string
	if v := m["list-style-type"]; v != "" {
		parts = append(parts, v)
	}
	if v := m["list-style-position"]; v != "" {
		parts = append(parts, v)
	}
	if v := m["list-style-image"]; v != "" {
		parts = append(parts, v)
	}
	if len(parts) == 0 {
		return "", false
	}
	return strings.Join(parts, " "), true
}
