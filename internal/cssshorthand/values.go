package cssshorthand

import "strings"

// cssLengthUnits is the set of unit suffixes the font expander uses to
// recognize a font-size token ("ends in a CSS length unit").
var cssLengthUnits = []string{
	"px", "em", "rem", "ex", "ch", "vw", "vh", "vmin", "vmax",
	"cm", "mm", "in", "pt", "pc", "q", "%",
}

// isLength reports whether tok is a dimension: a leading digit/sign/dot
// followed by a known CSS unit, or a bare "0".
func isLength(tok string) bool {
	if tok == "" {
		return false
	}
	if tok == "0" {
		return true
	}
	i := 0
	if tok[i] == '+' || tok[i] == '-' {
		i++
	}
	start := i
	for i < len(tok) && (isDigit(tok[i]) || tok[i] == '.') {
		i++
	}
	if i == start {
		return false
	}
	unit := strings.ToLower(tok[i:])
	for _, u := range cssLengthUnits {
		if unit == u {
			return true
		}
	}
	return false
}

// namedColors is a representative subset of CSS named colors, enough to
// classify the common cases a shorthand engine will actually see; it is
// not meant to be an exhaustive CSS Color Module implementation (that's
// computed-value resolution, which this engine doesn't perform).
var namedColors = map[string]bool{
	"black": true, "silver": true, "gray": true, "grey": true, "white": true,
	"maroon": true, "red": true, "purple": true, "fuchsia": true, "green": true,
	"lime": true, "olive": true, "yellow": true, "navy": true, "blue": true,
	"teal": true, "aqua": true, "orange": true, "transparent": true,
	"currentcolor": true, "inherit": true,
}
