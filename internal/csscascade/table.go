// Package csscascade groups rules by selector, resolves the CSS cascade
// over a per-property working table, recreates shorthands, and
// reconciles selector-list divergence.
//
// Grounded on evanw-esbuild/internal/css_parser's mangle passes for the
// "expand then recreate the tightest form" shape. The working table wants
// to be an ordered map so that recreated-shorthand removal and
// replacement stays stable; orderedTable below is that ordered map, a
// small purpose-built type rather than a generic container since Go has
// no stdlib ordered map.
package csscascade

// entry is one working-table slot: the declaration currently winning the
// cascade for a property, plus enough to re-run the tiebreak when a later
// declaration contests it.
type entry struct {
	sourceOrder int
	specificity int
	important   bool
	value       string
}

// orderedTable is a property -> entry map that remembers insertion
// order, so recreated shorthands replace their longhands in a
// predictable position and iteration order is deterministic.
type orderedTable struct {
	order []string
	data  map[string]entry
}

func newOrderedTable() *orderedTable {
	return &orderedTable{data: make(map[string]entry)}
}

func (t *orderedTable) get(prop string) (entry, bool) {
	e, ok := t.data[prop]
	return e, ok
}

func (t *orderedTable) set(prop string, e entry) {
	if _, exists := t.data[prop]; !exists {
		t.order = append(t.order, prop)
	}
	t.data[prop] = e
}

func (t *orderedTable) delete(prop string) {
	if _, exists := t.data[prop]; !exists {
		return
	}
	delete(t.data, prop)
	for i, p := range t.order {
		if p == prop {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
}

// properties returns every currently-set property, in insertion order.
func (t *orderedTable) properties() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// apply runs the cascade tiebreak: importance
// beats specificity beats source order.
func (t *orderedTable) apply(prop string, important bool, specificity, sourceOrder int, value string) {
	existing, ok := t.get(prop)
	if !ok {
		t.set(prop, entry{sourceOrder: sourceOrder, specificity: specificity, important: important, value: value})
		return
	}

	newWins := false
	switch {
	case important && !existing.important:
		newWins = true
	case !important && existing.important:
		newWins = false
	case specificity != existing.specificity:
		newWins = specificity > existing.specificity
	default:
		newWins = sourceOrder > existing.sourceOrder
	}
	if newWins {
		t.set(prop, entry{sourceOrder: sourceOrder, specificity: specificity, important: important, value: value})
	}
}
