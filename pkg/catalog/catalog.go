// Package catalog is the static reference data for serverconfig.xml
// properties: which tab each property belongs on and what the official
// documentation says about it. The table is read-only, process-wide state;
// documents never mutate it.
package catalog

// Category is one of the fixed tabs properties are grouped under.
type Category string

const (
	General     Category = "General"
	World       Category = "World"
	Difficulty  Category = "Difficulty"
	Rules       Category = "Rules"
	Performance Category = "Performance"
	Zombies     Category = "Zombies"
	Loot        Category = "Loot"
	Multiplayer Category = "Multiplayer"
	Claims      Category = "Claims"
	Other       Category = "Other"
)

// Categories returns the fixed tab sequence. Search ordering and the tab bar
// both depend on this order being stable.
func Categories() []Category {
	return []Category{
		General, World, Difficulty, Rules, Performance,
		Zombies, Loot, Multiplayer, Claims, Other,
	}
}

// Overrides supplies document-derived descriptions that take precedence over
// the builtin table, since they document the exact installed server version.
// A loaded config.Document satisfies this.
type Overrides interface {
	Description(name string) (string, bool)
}

// Describe resolves the description for a property: the override wins, then
// the builtin table, else empty. Absence of a description is a valid, silent
// outcome, never an error.
func Describe(name string, overrides Overrides) string {
	if overrides != nil {
		if desc, ok := overrides.Description(name); ok {
			return desc
		}
	}
	return descriptions[name]
}

// CategoryOf returns the builtin category for a property name, or Other for
// names the catalog does not know. Total over all possible names.
func CategoryOf(name string) Category {
	if cat, ok := categoryByName[name]; ok {
		return cat
	}
	return Other
}

// Known reports whether the catalog has an entry for name.
func Known(name string) bool {
	_, ok := categoryByName[name]
	return ok
}

// Names returns the catalog's layout order for a category. Properties present
// in a file but unknown to the catalog are not listed here; callers place
// them under Other in document order.
func Names(cat Category) []string {
	names := layout[cat]
	out := make([]string, len(names))
	copy(out, names)
	return out
}

var categoryByName = func() map[string]Category {
	m := make(map[string]Category, 128)
	for cat, names := range layout {
		for _, n := range names {
			m[n] = cat
		}
	}
	return m
}()
