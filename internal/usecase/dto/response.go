package dto

import (
	"github.com/twpayne/go-geom/encoding/geojson"

	"github.com/track-analytics/internal/domain"
)

// RegionCount - число станций региона
type RegionCount struct {
	Region string `json:"region"`
	Color  string `json:"color"`
	Count  int    `json:"count"`
}

// StationMarker - маркер станции на карте
type StationMarker struct {
	Name   string  `json:"name"`
	Region string  `json:"region"`
	Color  string  `json:"color"`
	Lat    float64 `json:"lat"`
	Lon    float64 `json:"lon"`
	Popup  string  `json:"popup"`
}

// LegendEntry - цвет региона в легенде карты
type LegendEntry struct {
	Region string `json:"region"`
	Color  string `json:"color"`
}

// StationsResponse - страница станций
type StationsResponse struct {
	ViewInfo
	Category        string          `json:"category"`
	CategoryMeaning string          `json:"category_meaning"`
	Region          string          `json:"region"`
	Total           int             `json:"total"`
	RegionCounts    []RegionCount   `json:"region_counts"`
	Markers         []StationMarker `json:"markers"`
	Legend          []LegendEntry   `json:"legend"`
}

// StationOptionsResponse - доступные значения фильтров страницы станций
type StationOptionsResponse struct {
	ViewInfo
	Categories []string          `json:"categories"`
	Regions    []string          `json:"regions"`
	Meanings   map[string]string `json:"meanings"`
}

// LineLayer - слой карты одной категории линий
type LineLayer struct {
	Category string                     `json:"category"`
	Color    string                     `json:"color"`
	Count    int                        `json:"count"`
	LengthKm int                        `json:"length_km"`
	Features *geojson.FeatureCollection `json:"features"`
}

// LinesResponse - страница железнодорожных линий
type LinesResponse struct {
	ViewInfo
	Layers        []LineLayer `json:"layers"`
	TotalFeatures int         `json:"total_features"`
	TotalLengthKm int         `json:"total_length_km"`
	MissingLength int         `json:"missing_length"`
}

// PriceStationsResponse - станции для выпадающих списков страницы тарифов
type PriceStationsResponse struct {
	ViewInfo
	Origins      []string `json:"origins"`
	Destinations []string `json:"destinations"`
}

// PriceRouteResponse - все тарифы одного маршрута
type PriceRouteResponse struct {
	ViewInfo
	Origin      string              `json:"origin"`
	Destination string              `json:"destination"`
	Quotes      []domain.PriceQuote `json:"quotes"`
}

// MostExpensiveResponse - самые дорогие маршруты с известной дистанцией
type MostExpensiveResponse struct {
	ViewInfo
	Routes []domain.PriceQuote `json:"routes"`
}

// RouteComparison - цена за километр одного маршрута; Found=false означает "нет данных"
type RouteComparison struct {
	Origin       string   `json:"origin"`
	Destination  string   `json:"destination"`
	Found        bool     `json:"found"`
	DistanceKm   *float64 `json:"distance_km"`
	CostPerKmMin *float64 `json:"cost_per_km_min"`
	CostPerKmMax *float64 `json:"cost_per_km_max"`
}

// PriceCompareResponse - сравнение двух маршрутов
type PriceCompareResponse struct {
	ViewInfo
	Routes []RouteComparison `json:"routes"`
}

// MonthlyDelay - средняя задержка прибытия за месяц
type MonthlyDelay struct {
	Month    string  `json:"month"`
	AvgDelay float64 `json:"avg_delay"`
}

// MonthlyDelaysResponse - динамика задержек по месяцам
type MonthlyDelaysResponse struct {
	ViewInfo
	Points []MonthlyDelay `json:"points"`
}

// RouteIncidents - суммарные инциденты маршрута
type RouteIncidents struct {
	Origin         string  `json:"origin"`
	Destination    string  `json:"destination"`
	Cancellations  float64 `json:"cancellations"`
	LateDepartures float64 `json:"late_departures"`
	LateArrivals   float64 `json:"late_arrivals"`
	Total          float64 `json:"total"`
}

// TopIncidentsResponse - маршруты с наибольшим числом инцидентов
type TopIncidentsResponse struct {
	ViewInfo
	Routes []RouteIncidents `json:"routes"`
}

// CauseShare - средний процент причины задержек
type CauseShare struct {
	Key        string   `json:"key"`
	Label      string   `json:"label"`
	Percentage *float64 `json:"percentage"`
}

// CausesResponse - распределение причин задержек
type CausesResponse struct {
	ViewInfo
	Causes []CauseShare `json:"causes"`
}

// RankedStation - строка топа станций
type RankedStation struct {
	Rank       int    `json:"rank"`
	Name       string `json:"name"`
	Passengers int64  `json:"passengers"`
}

// FrequentationTopResponse - топ станций по пассажиропотоку
type FrequentationTopResponse struct {
	ViewInfo
	Year     string          `json:"year"`
	Category string          `json:"category"`
	Stations []RankedStation `json:"stations"`
}

// ComparisonEntry - пассажиропоток станции за год
type ComparisonEntry struct {
	Year       string `json:"year"`
	Name       string `json:"name"`
	Passengers int64  `json:"passengers"`
}

// FrequentationCompareResponse - сравнение станций по годам.
// DefaultStations - станции не выбраны, взят топ за год
type FrequentationCompareResponse struct {
	ViewInfo
	Years           []string          `json:"years"`
	Stations        []string          `json:"stations"`
	DefaultStations bool              `json:"default_stations"`
	Entries         []ComparisonEntry `json:"entries"`
}

// FrequentationStationsResponse - названия станций категории в порядке файла
type FrequentationStationsResponse struct {
	ViewInfo
	Category string   `json:"category"`
	Stations []string `json:"stations"`
}

// YearCount - пассажиропоток за год
type YearCount struct {
	Year       string `json:"year"`
	Passengers int64  `json:"passengers"`
}

// FrequentationTrendResponse - динамика одной станции по годам
type FrequentationTrendResponse struct {
	ViewInfo
	Station string      `json:"station"`
	Points  []YearCount `json:"points"`
}
