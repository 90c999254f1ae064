package pipeline

import (
	"strings"

	"github.com/track-analytics/internal/domain"
	apperrors "github.com/track-analytics/internal/pkg/errors"
	"github.com/track-analytics/internal/reference"
)

// Sentinel selections meaning "no restriction".
const (
	SelectAll        = "All"
	SelectAllRegions = "All regions"
)

// Predicate selects a row. A nil predicate places no restriction.
type Predicate[T any] func(T) bool

// Filter keeps the rows matching every predicate, in their original order.
// The input slice is never modified.
func Filter[T any](rows []T, preds ...Predicate[T]) []T {
	active := make([]Predicate[T], 0, len(preds))
	for _, p := range preds {
		if p != nil {
			active = append(active, p)
		}
	}

	out := make([]T, 0, len(rows))
next:
	for _, r := range rows {
		for _, p := range active {
			if !p(r) {
				continue next
			}
		}
		out = append(out, r)
	}
	return out
}

// IsAll reports whether a selection is empty or one of the "All" sentinels.
func IsAll(selection string) bool {
	switch strings.TrimSpace(selection) {
	case "", SelectAll, reference.AllCategories, SelectAllRegions:
		return true
	}
	return false
}

// CategoryContains matches rows having the code among their facets. Codes
// outside {A, B, C} are a configuration error.
func CategoryContains[T any](code string, facets func(T) []string) (Predicate[T], error) {
	if IsAll(code) {
		return nil, nil
	}
	code = strings.TrimSpace(code)
	if !reference.IsCategoryCode(code) {
		return nil, apperrors.ErrConfiguration.
			WithMessage("unknown station category %q", code).
			WithDetails(map[string]interface{}{"category": code, "allowed": reference.CategoryCodes()})
	}
	return func(r T) bool {
		for _, f := range facets(r) {
			if f == code {
				return true
			}
		}
		return false
	}, nil
}

// RegionEquals matches rows of one region. Region names outside the reference
// table (and its Unknown Region sentinel) are a configuration error.
func RegionEquals[T any](region string, regionOf func(T) string) (Predicate[T], error) {
	if IsAll(region) {
		return nil, nil
	}
	region = strings.TrimSpace(region)
	if region != reference.UnknownRegion && reference.ColorForRegion(region) == reference.DefaultColor {
		return nil, apperrors.ErrConfiguration.
			WithMessage("unknown region %q", region).
			WithDetails(map[string]interface{}{"region": region})
	}
	return func(r T) bool {
		return regionOf(r) == region
	}, nil
}

// RouteEquals matches one directed origin/destination pair exactly.
func RouteEquals[T any](origin, destination string, routeOf func(T) (string, string)) Predicate[T] {
	return func(r T) bool {
		o, d := routeOf(r)
		return o == origin && d == destination
	}
}

// NameIn matches rows whose name is in the set; an empty set places no restriction.
func NameIn[T any](names []string, nameOf func(T) string) Predicate[T] {
	if len(names) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return func(r T) bool {
		_, ok := set[nameOf(r)]
		return ok
	}
}

// HasPosition keeps stations that can be placed on a map.
func HasPosition(s domain.StationRecord) bool {
	return s.Position != nil
}

// SelectYears validates a year selection against the fixed range, keeping the
// caller's order and dropping duplicates.
func SelectYears(years []string) ([]string, error) {
	out := make([]string, 0, len(years))
	seen := make(map[string]struct{}, len(years))
	for _, raw := range years {
		y := strings.TrimSpace(raw)
		if !reference.IsKnownYear(y) {
			return nil, apperrors.ErrConfiguration.
				WithMessage("year %q is outside the known range", y).
				WithDetails(map[string]interface{}{"year": y, "allowed": reference.Years()})
		}
		if _, dup := seen[y]; dup {
			continue
		}
		seen[y] = struct{}{}
		out = append(out, y)
	}
	return out, nil
}

// RequireYear validates a single year; an empty selection means the latest year.
func RequireYear(year string) (string, error) {
	if strings.TrimSpace(year) == "" {
		return reference.LatestYear(), nil
	}
	ys, err := SelectYears([]string{year})
	if err != nil {
		return "", err
	}
	return ys[0], nil
}
