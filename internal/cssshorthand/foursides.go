package cssshorthand

// expandFourSides implements the margin/padding/border-{color,style,width}
// 1/2/3/4-value expansion: 1 token -> all sides, 2 -> vertical/horizontal,
// 3 -> top/horizontal/bottom, 4 -> clockwise from top.
func expandFourSides(value string, top, right, bottom, left string) map[string]string {
	toks := fields(value)
	switch len(toks) {
	case 1:
		return map[string]string{top: toks[0], right: toks[0], bottom: toks[0], left: toks[0]}
	case 2:
		return map[string]string{top: toks[0], bottom: toks[0], right: toks[1], left: toks[1]}
	case 3:
		return map[string]string{top: toks[0], right: toks[1], left: toks[1], bottom: toks[2]}
	case 4:
		return map[string]string{top: toks[0], right: toks[1], bottom: toks[2], left: toks[3]}
	default:
		return nil
	}
}

// createFourSides implements the dimension creators' collapse rule:
// all-equal -> 1 value; top=bottom and left=right (but the two pairs
// differ) -> 2; left=right only -> 3; otherwise -> 4. It requires all
// four sides to be present.
func createFourSides(m map[string]string, top, right, bottom, left string) (string, bool) {
	t, ok1 := m[top]
	r, ok2 := m[right]
	b, ok3 := m[bottom]
	l, ok4 := m[left]
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return "", false
	}

	switch {
	case t == r && t == b && t == l:
		return t, true
	case t == b && r == l:
		return t + " " + r, true
	case r == l:
		return t + " " + r + " " + b, true
	default:
		return t + " " + r + " " + b + " " + l, true
	}
}
