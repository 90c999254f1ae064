package reference

// AllCategories is the "no restriction" sentinel of the category filter.
const AllCategories = "All categories"

var categoryCodes = []string{"A", "B", "C"}

var categoryMeanings = map[string]string{
	"A":           "National passenger stations: Frequented by at least 250,000 passengers per year.",
	"B":           "Regional passenger stations: Frequented by at least 100,000 passengers per year.",
	"C":           "Local passenger stations: Managed at the regional level.",
	AllCategories: "Display all stations from all categories.",
}

// CategoryCodes returns the valid station category facets in order.
func CategoryCodes() []string {
	out := make([]string, len(categoryCodes))
	copy(out, categoryCodes)
	return out
}

// IsCategoryCode reports whether code is one of the valid facets.
func IsCategoryCode(code string) bool {
	for _, c := range categoryCodes {
		if c == code {
			return true
		}
	}
	return false
}

// CategoryMeaning describes a category code or the AllCategories sentinel.
func CategoryMeaning(code string) (string, bool) {
	m, ok := categoryMeanings[code]
	return m, ok
}

// Railway line categories as labelled in the line geometry file.
const (
	LineConventional = "Ligne du réseau conventionnel"
	LineHighSpeed    = "Ligne à grande vitesse"
)

var lineCategories = []string{LineConventional, LineHighSpeed}

var lineColors = map[string]string{
	LineConventional: "green",
	LineHighSpeed:    "blue",
}

// LineCategories returns the mapped line categories in display order.
func LineCategories() []string {
	out := make([]string, len(lineCategories))
	copy(out, lineCategories)
	return out
}

// LineColor returns the color of a line category; ok is false for unmapped ones.
func LineColor(category string) (string, bool) {
	c, ok := lineColors[category]
	return c, ok
}
