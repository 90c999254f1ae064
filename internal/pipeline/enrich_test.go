package pipeline

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/track-analytics/internal/reference"
)

func TestParsePosition_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 500; i++ {
		lat := rng.Float64()*180 - 90
		lon := rng.Float64()*360 - 180
		text := strconv.FormatFloat(lat, 'g', -1, 64) + "," + strconv.FormatFloat(lon, 'g', -1, 64)

		pos := ParsePosition(text)
		require.NotNil(t, pos, text)
		assert.Equal(t, lat, pos.Lat)
		assert.Equal(t, lon, pos.Lon)
	}
}

func TestParsePosition_Invalid(t *testing.T) {
	tests := []string{
		"",
		"48.85",
		"48.85,",
		",2.35",
		"abc,2.35",
		"48.85,2.35,1",
		"NaN,2.35",
		"48.85;2.35",
	}
	for _, text := range tests {
		assert.Nil(t, ParsePosition(text), "%q", text)
	}

	pos := ParsePosition(" 48.8443 , 2.3744 ")
	require.NotNil(t, pos)
	assert.Equal(t, 48.8443, pos.Lat)
	assert.Equal(t, 2.3744, pos.Lon)
}

func TestDepartmentCode(t *testing.T) {
	tests := []struct {
		insee    string
		expected string
	}{
		{"75116", "75"},
		{"1053", "01"},
		{"01053", "01"},
		{"2A004", "2A"},
		{"97101", "97"},
		{"", "00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, DepartmentCode(tt.insee), tt.insee)
	}
}

func TestRegionOf(t *testing.T) {
	assert.Equal(t, "Île-de-France", RegionOf("75116"))
	assert.Equal(t, "Auvergne-Rhône-Alpes", RegionOf("69123"))
	assert.Equal(t, reference.UnknownRegion, RegionOf("97101"))
	assert.Equal(t, reference.UnknownRegion, RegionOf("971"))
}

func TestSplitFacets(t *testing.T) {
	assert.Equal(t, []string{"A", "B"}, SplitFacets("A;B"))
	assert.Equal(t, []string{"B", "A"}, SplitFacets(" B ; A ;B"))
	assert.Equal(t, []string{"C"}, SplitFacets("C;X;AB"))
	assert.Empty(t, SplitFacets(""))
}

func TestParseKilometerPoint(t *testing.T) {
	tests := []struct {
		marker string
		value  int
		ok     bool
	}{
		{"120+500", 120, true},
		{"340-200", 340, true},
		{"12-3+4", 12, true},
		{"7", 7, true},
		{" 15 +000", 15, true},
		{"-5+0", 0, false},
		{"abc+1", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		v, ok := ParseKilometerPoint(tt.marker)
		assert.Equal(t, tt.ok, ok, tt.marker)
		if tt.ok {
			assert.Equal(t, tt.value, v, tt.marker)
		}
	}
}

func TestLineLength(t *testing.T) {
	length := LineLength("120+500", "340-200")
	require.NotNil(t, length)
	assert.Equal(t, 220, *length)

	assert.Nil(t, LineLength("x", "340-200"))
	assert.Nil(t, LineLength("120+500", ""))
}

func TestRouteDistanceAndCost(t *testing.T) {
	d := RouteDistance("LYON PART DIEU", "PARIS GARE DE LYON")
	require.NotNil(t, d)
	assert.Equal(t, 465.0, *d)

	rev := RouteDistance("PARIS GARE DE LYON", "LYON PART DIEU")
	require.NotNil(t, rev)
	assert.Equal(t, *d, *rev)

	minPrice, maxPrice := 50.0, 120.0
	costMin := CostPerKm(&minPrice, d)
	costMax := CostPerKm(&maxPrice, d)
	require.NotNil(t, costMin)
	require.NotNil(t, costMax)
	assert.InDelta(t, 0.1075, *costMin, 0.0001)
	assert.InDelta(t, 0.258, *costMax, 0.0001)

	assert.Nil(t, RouteDistance("BREST", "NICE VILLE"))
	assert.Nil(t, CostPerKm(&minPrice, nil))
	assert.Nil(t, CostPerKm(nil, d))
}

func TestParseNumber(t *testing.T) {
	v := ParseNumber(" 19.5 ")
	require.NotNil(t, v)
	assert.Equal(t, 19.5, *v)

	for _, text := range []string{"", "n/a", "12,5", "Inf"} {
		assert.Nil(t, ParseNumber(text), "%q", text)
	}
}
