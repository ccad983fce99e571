package csscascade

import "github.com/jamescook/cataract-sub000/internal/cssshorthand"

// recreateShorthands recreates shorthands from the working table in a
// fixed order, each creator consuming its longhands and installing the
// shorthand in their place.
func recreateShorthands(t *orderedTable) {
	applyFourSided(t, "margin", "margin-top", "margin-right", "margin-bottom", "margin-left")
	applyFourSided(t, "padding", "padding-top", "padding-right", "padding-bottom", "padding-left")
	applyFourSided(t, "border-width", "border-top-width", "border-right-width", "border-bottom-width", "border-left-width")
	applyFourSided(t, "border-style", "border-top-style", "border-right-style", "border-bottom-style", "border-left-style")
	applyFourSided(t, "border-color", "border-top-color", "border-right-color", "border-bottom-color", "border-left-color")
	applyCreator(t, "border", []string{"border-width", "border-style", "border-color"})
	applyCreatorMinCount(t, "list-style", []string{"list-style-type", "list-style-position", "list-style-image"}, 2)
	applyCreator(t, "font", []string{"font-style", "font-variant", "font-weight", "font-size", "line-height", "font-family"})
	applyCreator(t, "background", []string{"background-color", "background-image", "background-repeat", "background-attachment", "background-position", "background-size"})
}

// applyFourSided handles the dimension-creator family (margin, padding,
// border-width/style/color), which all require four sides present before
// recreating.
func applyFourSided(t *orderedTable, kind, top, right, bottom, left string) {
	keys := []string{top, right, bottom, left}
	applyCreatorRequireAll(t, kind, keys)
}

// applyCreatorRequireAll only invokes the creator when every listed
// longhand is present in the table -- the dimension families' "require
// all four sides" rule.
func applyCreatorRequireAll(t *orderedTable, kind string, keys []string) {
	longhands := make(map[string]string, len(keys))
	for _, k := range keys {
		e, ok := t.get(k)
		if !ok {
			return
		}
		longhands[k] = addImportant(e.value, e.important)
	}
	install(t, kind, keys, longhands)
}

// applyCreator gathers whatever subset of keys is currently present
// (font/background/border each have their own internal minimum-count
// requirement, enforced by their Create implementation) and lets the
// shorthand engine decide whether to create.
func applyCreator(t *orderedTable, kind string, keys []string) {
	applyCreatorMinCount(t, kind, keys, 1)
}

// applyCreatorMinCount is applyCreator with an explicit floor on how many
// of keys must be present before the creator is even attempted. Create's
// own per-shorthand rule still applies on top of this; list-style needs
// this extra gate because createListStyle accepts a single longhand,
// which would otherwise reset the other two to their initial values.
func applyCreatorMinCount(t *orderedTable, kind string, keys []string, minCount int) {
	longhands := make(map[string]string, len(keys))
	present := make([]string, 0, len(keys))
	for _, k := range keys {
		e, ok := t.get(k)
		if !ok {
			continue
		}
		longhands[k] = addImportant(e.value, e.important)
		present = append(present, k)
	}
	if len(longhands) < minCount {
		return
	}
	install(t, kind, present, longhands)
}

func install(t *orderedTable, kind string, consumedKeys []string, longhands map[string]string) {
	value, ok := cssshorthand.Create(kind, longhands)
	if !ok {
		return
	}
	clean, important := stripImportant(value)

	// Keep the earliest source_order and the highest specificity among the
	// consumed entries for the recreated shorthand's entry.
	minOrder, maxSpecificity := -1, 0
	for _, k := range consumedKeys {
		if e, ok := t.get(k); ok {
			if minOrder == -1 || e.sourceOrder < minOrder {
				minOrder = e.sourceOrder
			}
			if e.specificity > maxSpecificity {
				maxSpecificity = e.specificity
			}
		}
		t.delete(k)
	}
	t.set(kind, entry{sourceOrder: minOrder, specificity: maxSpecificity, important: important, value: clean})
}
