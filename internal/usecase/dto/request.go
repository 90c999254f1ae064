package dto

// StationsRequest - фильтры страницы станций
type StationsRequest struct {
	Category string `query:"category" json:"category"`
	Region   string `query:"region" json:"region"`
}

// PriceRouteRequest - тарифы одного маршрута
type PriceRouteRequest struct {
	Origin      string `query:"origin" json:"origin" validate:"required,nonblank"`
	Destination string `query:"destination" json:"destination" validate:"required,nonblank"`
}

// LimitRequest - запрос топа с ограничением числа строк
type LimitRequest struct {
	Limit int `query:"limit" json:"limit" validate:"omitempty,min=1,max=100"`
}

// PriceCompareRequest - сравнение двух маршрутов по цене за километр
type PriceCompareRequest struct {
	Origin1      string `query:"origin1" json:"origin1" validate:"required,nonblank"`
	Destination1 string `query:"destination1" json:"destination1" validate:"required,nonblank"`
	Origin2      string `query:"origin2" json:"origin2" validate:"required,nonblank"`
	Destination2 string `query:"destination2" json:"destination2" validate:"required,nonblank"`
}

// FrequentationTopRequest - самые посещаемые станции за год
type FrequentationTopRequest struct {
	Category string `query:"category" json:"category"`
	Year     string `query:"year" json:"year"`
	Limit    int    `query:"limit" json:"limit" validate:"omitempty,min=1,max=100"`
}

// FrequentationCompareRequest - пассажиропоток выбранных станций по выбранным годам.
// Без станций сравниваются станции топа за Year (по умолчанию последний год)
type FrequentationCompareRequest struct {
	Category string   `query:"category" json:"category"`
	Year     string   `query:"year" json:"year"`
	Years    []string `query:"years" json:"years"`
	Stations []string `query:"stations" json:"stations" validate:"omitempty,max=100"`
}

// FrequentationStationsRequest - станции для выбора в сравнении и динамике
type FrequentationStationsRequest struct {
	Category string `query:"category" json:"category"`
}

// FrequentationTrendRequest - динамика пассажиропотока одной станции
type FrequentationTrendRequest struct {
	Category string `query:"category" json:"category"`
	Station  string `query:"station" json:"station" validate:"required,nonblank"`
}

// DefaultLimit - размер топов по умолчанию
const DefaultLimit = 10

// LimitOrDefault возвращает limit или DefaultLimit, если он не задан
func LimitOrDefault(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	return limit
}
