package reference

// years of the station usage dataset, oldest first.
var years = []string{"2015", "2016", "2017", "2018", "2019", "2020", "2021", "2022", "2023"}

var yearSet = func() map[string]struct{} {
	m := make(map[string]struct{}, len(years))
	for _, y := range years {
		m[y] = struct{}{}
	}
	return m
}()

// Years returns the fixed year range in chronological order.
func Years() []string {
	out := make([]string, len(years))
	copy(out, years)
	return out
}

// LatestYear is the default year of the usage views.
func LatestYear() string {
	return years[len(years)-1]
}

// IsKnownYear reports whether year belongs to the fixed range.
func IsKnownYear(year string) bool {
	_, ok := yearSet[year]
	return ok
}
