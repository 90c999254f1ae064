package pipeline

import (
	"math"
	"strconv"
	"strings"

	"github.com/track-analytics/internal/domain"
	"github.com/track-analytics/internal/reference"
)

const (
	inseeWidth    = 5
	facetSep      = ";"
	positionSep   = ","
	departmentLen = 2
)

// ParseNumber coerces text leniently: anything that is not a finite number is nil.
func ParseNumber(text string) *float64 {
	s := strings.TrimSpace(text)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// ParsePosition splits "lat,long" text. Anything but two numeric parts is nil.
func ParsePosition(text string) *domain.Position {
	parts := strings.Split(text, positionSep)
	if len(parts) != 2 {
		return nil
	}
	lat := ParseNumber(parts[0])
	lon := ParseNumber(parts[1])
	if lat == nil || lon == nil {
		return nil
	}
	return &domain.Position{Lat: *lat, Lon: *lon}
}

// DepartmentCode zero-pads an INSEE code to five characters and keeps the first two.
func DepartmentCode(insee string) string {
	code := []rune(strings.TrimSpace(insee))
	for len(code) < inseeWidth {
		code = append([]rune{'0'}, code...)
	}
	return strings.ToUpper(string(code[:departmentLen]))
}

// RegionOf resolves the region of an INSEE code, reference.UnknownRegion when unmapped.
func RegionOf(insee string) string {
	return reference.RegionForDepartment(DepartmentCode(insee))
}

// SplitFacets extracts the valid category codes of a multi-value field,
// deduplicated, in their original order.
func SplitFacets(text string) []string {
	facets := make([]string, 0, 2)
	seen := make(map[string]struct{}, 2)
	for _, raw := range strings.Split(text, facetSep) {
		f := strings.TrimSpace(raw)
		if !reference.IsCategoryCode(f) {
			continue
		}
		if _, dup := seen[f]; dup {
			continue
		}
		seen[f] = struct{}{}
		facets = append(facets, f)
	}
	return facets
}

// ParseKilometerPoint reads the integer part of a marker such as "120+500",
// which is the text before the first '+' or '-'.
func ParseKilometerPoint(marker string) (int, bool) {
	head := marker
	if i := strings.IndexAny(head, "+-"); i >= 0 {
		head = head[:i]
	}
	head = strings.TrimSpace(head)
	if head == "" {
		return 0, false
	}
	v, err := strconv.Atoi(head)
	if err != nil {
		return 0, false
	}
	return v, true
}

// LineLength is end minus start in whole kilometers, nil if a marker does not parse.
func LineLength(startMarker, endMarker string) *int {
	start, ok := ParseKilometerPoint(startMarker)
	if !ok {
		return nil
	}
	end, ok := ParseKilometerPoint(endMarker)
	if !ok {
		return nil
	}
	length := end - start
	return &length
}

// RouteDistance looks a station pair up in both directions. Unknown pairs are nil, never zero.
func RouteDistance(origin, destination string) *float64 {
	km, ok := reference.Distance(origin, destination)
	if !ok {
		return nil
	}
	return &km
}

// CostPerKm divides a price by a distance; nil when either side is unknown.
func CostPerKm(price, distanceKm *float64) *float64 {
	if price == nil || distanceKm == nil || *distanceKm == 0 {
		return nil
	}
	v := *price / *distanceKm
	return &v
}

// OrZero reads an optional value, treating nil as zero for sums.
func OrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
