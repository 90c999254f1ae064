package pipeline

import (
	"strings"
	"time"

	"github.com/track-analytics/internal/domain"
	apperrors "github.com/track-analytics/internal/pkg/errors"
	"github.com/track-analytics/internal/reference"
)

// RequireColumns fails with ErrMissingColumns when the table header lacks any
// of the columns. Builders read absent columns as empty cells, so a renamed
// column must be caught here instead of turning into sentinel values.
func RequireColumns(t *domain.Table, columns ...string) error {
	missing := t.MissingColumns(columns...)
	if len(missing) == 0 {
		return nil
	}
	source := ""
	if t != nil {
		source = t.Source
	}
	return apperrors.ErrMissingColumns.
		WithMessage("Dataset %s is missing columns: %s", source, strings.Join(missing, ", ")).
		WithDetails(map[string]interface{}{
			"path":            source,
			"missing_columns": missing,
		})
}

// EnrichStations builds one record per row. Rows without a parseable position
// are kept; views that need a position filter them with HasPosition.
func EnrichStations(t *domain.Table, cols domain.StationColumns) []domain.StationRecord {
	out := make([]domain.StationRecord, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		insee := t.Value(i, cols.Insee)
		segments := t.Value(i, cols.Segments)
		out = append(out, domain.StationRecord{
			Name:       t.Value(i, cols.Name),
			InseeCode:  insee,
			Position:   ParsePosition(t.Value(i, cols.Position)),
			Segments:   segments,
			Facets:     SplitFacets(segments),
			Department: DepartmentCode(insee),
			Region:     RegionOf(insee),
		})
	}
	return out
}

// EnrichPrices coerces prices and attaches distance and cost per km.
func EnrichPrices(t *domain.Table, cols domain.PriceColumns) []domain.PriceQuote {
	out := make([]domain.PriceQuote, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		q := domain.PriceQuote{
			Origin:      t.Value(i, cols.Origin),
			Destination: t.Value(i, cols.Destination),
			Carrier:     t.Value(i, cols.Carrier),
			FareProfile: t.Value(i, cols.FareProfile),
			MinPrice:    ParseNumber(t.Value(i, cols.MinPrice)),
			MaxPrice:    ParseNumber(t.Value(i, cols.MaxPrice)),
		}
		q.DistanceKm = RouteDistance(q.Origin, q.Destination)
		q.CostPerKmMin = CostPerKm(q.MinPrice, q.DistanceKm)
		q.CostPerKmMax = CostPerKm(q.MaxPrice, q.DistanceKm)
		out = append(out, q)
	}
	return out
}

var monthLayouts = []string{
	"2006-01",
	"2006-01-02",
	"2006/01",
	"2006/01/02",
	"02/01/2006",
	time.RFC3339,
}

// ParseMonth reads a date and truncates it to the first day of its month.
func ParseMonth(text string) *time.Time {
	s := strings.TrimSpace(text)
	if s == "" {
		return nil
	}
	for _, layout := range monthLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			m := time.Date(ts.Year(), ts.Month(), 1, 0, 0, 0, 0, time.UTC)
			return &m
		}
	}
	return nil
}

// EnrichRegularity coerces every numeric column; invalid values become nil.
func EnrichRegularity(t *domain.Table, cols domain.RegularityColumns) []domain.RegularityRecord {
	out := make([]domain.RegularityRecord, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		r := domain.RegularityRecord{
			Month:           ParseMonth(t.Value(i, cols.Date)),
			Origin:          t.Value(i, cols.Origin),
			Destination:     t.Value(i, cols.Destination),
			AvgArrivalDelay: ParseNumber(t.Value(i, cols.AvgArrivalDelay)),
			Cancellations:   ParseNumber(t.Value(i, cols.Cancellations)),
			LateDepartures:  ParseNumber(t.Value(i, cols.LateDepartures)),
			LateArrivals:    ParseNumber(t.Value(i, cols.LateArrivals)),
		}
		for c, col := range cols.Causes {
			r.Causes[c] = ParseNumber(t.Value(i, col))
		}
		out = append(out, r)
	}
	return out
}

// EnrichFrequentation keeps only complete rows: a name, a category field and a
// count for every year of the fixed range. The second result is the number of
// rows dropped.
func EnrichFrequentation(t *domain.Table, cols domain.FrequentationColumns) ([]domain.FrequentationRecord, int) {
	years := reference.Years()
	out := make([]domain.FrequentationRecord, 0, t.Len())
	dropped := 0

rows:
	for i := 0; i < t.Len(); i++ {
		name := t.Value(i, cols.Name)
		segments := t.Value(i, cols.Segments)
		if name == "" || segments == "" {
			dropped++
			continue
		}

		passengers := make(map[string]int64, len(years))
		for _, y := range years {
			v := ParseNumber(t.Value(i, cols.YearColumn(y)))
			if v == nil {
				dropped++
				continue rows
			}
			passengers[y] = int64(*v)
		}

		out = append(out, domain.FrequentationRecord{
			Name:       name,
			Segments:   segments,
			Facets:     SplitFacets(segments),
			Passengers: passengers,
		})
	}
	return out, dropped
}
