package domain

// PriceQuote - тариф на маршрут. Цены и дистанция nil, если неизвестны
type PriceQuote struct {
	Origin       string   `json:"origin"`
	Destination  string   `json:"destination"`
	Carrier      string   `json:"carrier"`
	FareProfile  string   `json:"fare_profile"`
	MinPrice     *float64 `json:"min_price"`
	MaxPrice     *float64 `json:"max_price"`
	DistanceKm   *float64 `json:"distance_km"`
	CostPerKmMin *float64 `json:"cost_per_km_min"`
	CostPerKmMax *float64 `json:"cost_per_km_max"`
}

type PriceColumns struct {
	Origin      string
	Destination string
	Carrier     string
	FareProfile string
	MinPrice    string
	MaxPrice    string
}

func (c PriceColumns) Required() []string {
	return []string{c.Origin, c.Destination, c.Carrier, c.FareProfile, c.MinPrice, c.MaxPrice}
}

// DefaultPriceColumns - колонки файла tarifs-tgv-inoui-ouigo.csv
var DefaultPriceColumns = PriceColumns{
	Origin:      "Gare origine",
	Destination: "Destination",
	Carrier:     "Transporteur",
	FareProfile: "Profil tarifaire",
	MinPrice:    "Prix minimum",
	MaxPrice:    "Prix maximum",
}
