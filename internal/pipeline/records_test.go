package pipeline

import (
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/track-analytics/internal/domain"
	apperrors "github.com/track-analytics/internal/pkg/errors"
	"github.com/track-analytics/internal/reference"
)

func TestEnrichStations(t *testing.T) {
	table := domain.NewTable("stations.csv",
		[]string{"nom", "codeinsee", "position_geographique", "segment_drg"},
		[][]string{
			{"Paris Gare de Lyon", "75112", "48.8443,2.3744", "A"},
			{"Boulogne", "75116", "", "A;B"},
			{"Pointe-à-Pitre", "97120", "16.24,-61.53", "C"},
			{"Bourg", "1053", "46.2,5.2"},
		},
	)

	stations := EnrichStations(table, domain.DefaultStationColumns)
	require.Len(t, stations, 4)

	assert.Equal(t, "75", stations[0].Department)
	assert.Equal(t, "Île-de-France", stations[0].Region)
	require.NotNil(t, stations[0].Position)

	assert.Equal(t, "Île-de-France", stations[1].Region)
	assert.Nil(t, stations[1].Position)
	assert.Equal(t, []string{"A", "B"}, stations[1].Facets)

	assert.Equal(t, reference.UnknownRegion, stations[2].Region)
	assert.NotNil(t, stations[2].Position)

	assert.Equal(t, "01", stations[3].Department)
	assert.Empty(t, stations[3].Facets)
}

func TestEnrichPrices(t *testing.T) {
	table := domain.NewTable("prices.csv",
		[]string{"Transporteur", "Gare origine", "Destination", "Profil tarifaire", "Prix minimum", "Prix maximum"},
		[][]string{
			{"TGV INOUI", "LYON PART DIEU", "PARIS GARE DE LYON", "Tarif Normal", "50", "120"},
			{"OUIGO", "BREST", "NICE VILLE", "Tarif Normal", "30", "abc"},
		},
	)

	quotes := EnrichPrices(table, domain.DefaultPriceColumns)
	require.Len(t, quotes, 2)

	q := quotes[0]
	require.NotNil(t, q.DistanceKm)
	assert.Equal(t, 465.0, *q.DistanceKm)
	require.NotNil(t, q.CostPerKmMin)
	assert.InDelta(t, 0.1075, *q.CostPerKmMin, 0.0001)
	require.NotNil(t, q.CostPerKmMax)
	assert.InDelta(t, 0.258, *q.CostPerKmMax, 0.0001)

	missing := quotes[1]
	assert.Nil(t, missing.DistanceKm)
	assert.Nil(t, missing.CostPerKmMin)
	assert.Nil(t, missing.MaxPrice)
	require.NotNil(t, missing.MinPrice)
	assert.Equal(t, 30.0, *missing.MinPrice)
}

func TestParseMonth(t *testing.T) {
	for _, text := range []string{"2018-03", "2018-03-17", "2018/03", "17/03/2018"} {
		m := ParseMonth(text)
		require.NotNil(t, m, text)
		assert.Equal(t, time.Date(2018, time.March, 1, 0, 0, 0, 0, time.UTC), *m, text)
	}
	assert.Nil(t, ParseMonth("march"))
	assert.Nil(t, ParseMonth(""))
}

func TestEnrichRegularity(t *testing.T) {
	cols := domain.DefaultRegularityColumns
	header := []string{cols.Date, cols.Origin, cols.Destination, cols.AvgArrivalDelay,
		cols.Cancellations, cols.LateDepartures, cols.LateArrivals}
	header = append(header, cols.Causes[:]...)

	table := domain.NewTable("regularity.csv", header, [][]string{
		{"2018-01", "PARIS LYON", "MARSEILLE ST CHARLES", "6.5", "2", "10", "30", "20", "30", "10", "25", "10", "5"},
		{"bad", "PARIS LYON", "MARSEILLE ST CHARLES", "x", "", "1", "1"},
	})

	records := EnrichRegularity(table, cols)
	require.Len(t, records, 2)

	r := records[0]
	require.NotNil(t, r.Month)
	assert.Equal(t, 6.5, *r.AvgArrivalDelay)
	assert.Equal(t, 2.0, *r.Cancellations)
	require.NotNil(t, r.Causes[5])
	assert.Equal(t, 5.0, *r.Causes[5])

	bad := records[1]
	assert.Nil(t, bad.Month)
	assert.Nil(t, bad.AvgArrivalDelay)
	assert.Nil(t, bad.Cancellations)
	assert.Nil(t, bad.Causes[0])
}

func TestEnrichFrequentation_DropsIncompleteRows(t *testing.T) {
	cols := domain.DefaultFrequentationColumns
	header := []string{cols.Name, cols.Segments}
	for _, y := range reference.Years() {
		header = append(header, cols.YearColumn(y))
	}
	full := func(name, seg string) []string {
		rec := []string{name, seg}
		for i := range reference.Years() {
			rec = append(rec, []string{"100", "200", "300", "400", "500", "600", "700", "800", "900"}[i])
		}
		return rec
	}
	partial := full("Rennes", "A")
	partial[5] = ""

	table := domain.NewTable("freq.csv", header, [][]string{
		full("Paris Nord", "A"),
		partial,
		full("", "B"),
		full("Brest", ""),
		full("Quimper", "B;C"),
	})

	records, dropped := EnrichFrequentation(table, cols)
	assert.Equal(t, 3, dropped)
	require.Len(t, records, 2)
	assert.Equal(t, "Paris Nord", records[0].Name)
	assert.Equal(t, int64(100), records[0].Passengers["2015"])
	assert.Equal(t, int64(900), records[0].Passengers["2023"])
	assert.Equal(t, []string{"B", "C"}, records[1].Facets)
}

func TestRequireColumns(t *testing.T) {
	table := domain.NewTable("gares.csv",
		[]string{"nom", "code_insee", "position_geographique", "segment_drg"},
		[][]string{{"Brest", "29019", "48.3879,-4.4791", "B"}},
	)

	t.Run("all present", func(t *testing.T) {
		assert.NoError(t, RequireColumns(table, "nom", "segment_drg"))
	})

	t.Run("renamed column is reported", func(t *testing.T) {
		err := RequireColumns(table, domain.DefaultStationColumns.Required()...)

		require.Error(t, err)
		assert.True(t, stderrors.Is(err, apperrors.ErrMissingColumns))

		var appErr *apperrors.AppError
		require.True(t, stderrors.As(err, &appErr))
		assert.Equal(t, []string{"codeinsee"}, appErr.Details["missing_columns"])
		assert.Contains(t, appErr.Message, "gares.csv")
	})

	t.Run("nil table misses everything", func(t *testing.T) {
		err := RequireColumns(nil, "nom", "codeinsee")

		var appErr *apperrors.AppError
		require.True(t, stderrors.As(err, &appErr))
		assert.Equal(t, []string{"nom", "codeinsee"}, appErr.Details["missing_columns"])
	})
}
