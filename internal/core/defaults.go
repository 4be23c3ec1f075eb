package core

// FallbackIconKey is used when a category references an icon the fixed
// set does not contain.
const FallbackIconKey = "Package"

// defaultCategorySeed is the built-in category set. The registry
// materializes it with fresh ids on every load and reconciles it
// against stored data, so the list can grow between releases without
// duplicating a user's existing entries.
var defaultCategorySeed = []struct {
	Name    string
	IconKey string
}{
	{"Salary", "Briefcase"},
	{"Food", "Utensils"},
	{"Transport", "Car"},
	{"Shopping", "ShoppingCart"},
	{"Utilities", "Lightbulb"},
	{"Entertainment", "Smile"},
	{"Healthcare", "HeartPulse"},
	{"Housing", "Home"},
	{"Education", "BookOpen"},
	{"Gifts", "Gift"},
	{"Other", "Package"},
}

// availableIcons is the fixed icon set category entries may reference.
var availableIcons = map[string]struct{}{
	"Briefcase":      {},
	"Utensils":       {},
	"Car":            {},
	"ShoppingCart":   {},
	"Lightbulb":      {},
	"Smile":          {},
	"HeartPulse":     {},
	"Home":           {},
	"BookOpen":       {},
	"Gift":           {},
	"Package":        {},
	"DollarSign":     {},
	"BarChart":       {},
	"Banknote":       {},
	"Settings":       {},
	"Palette":        {},
	"ShieldCheck":    {},
	"HelpCircle":     {},
	"ArrowRightLeft": {},
}

// DefaultCategories materializes the built-in category set. newID
// supplies a fresh unique id per entry.
func DefaultCategories(newID func() string) []AppCategory {
	out := make([]AppCategory, 0, len(defaultCategorySeed))
	for _, seed := range defaultCategorySeed {
		out = append(out, AppCategory{
			ID:            newID(),
			Name:          seed.Name,
			IconKey:       seed.IconKey,
			IsUserDefined: false,
		})
	}
	return out
}

// ResolveIconKey maps an arbitrary icon key onto the fixed icon set,
// falling back to FallbackIconKey for unknown keys.
func ResolveIconKey(key string) string {
	if _, ok := availableIcons[key]; ok {
		return key
	}
	return FallbackIconKey
}
