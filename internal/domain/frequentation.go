package domain

// FrequentationRecord - пассажиропоток станции по годам
type FrequentationRecord struct {
	Name       string           `json:"name"`
	Segments   string           `json:"segments"`
	Facets     []string         `json:"facets"`
	Passengers map[string]int64 `json:"passengers"`
}

type FrequentationColumns struct {
	Name       string
	Segments   string
	YearPrefix string
}

// YearColumn возвращает имя колонки пассажиропотока за год
func (c FrequentationColumns) YearColumn(year string) string {
	return c.YearPrefix + year
}

// Required - имя, сегмент и пассажиропоток за каждый год диапазона
func (c FrequentationColumns) Required(years []string) []string {
	cols := []string{c.Name, c.Segments}
	for _, y := range years {
		cols = append(cols, c.YearColumn(y))
	}
	return cols
}

// DefaultFrequentationColumns - колонки файла frequentation-gares.csv
var DefaultFrequentationColumns = FrequentationColumns{
	Name:       "nom_gare",
	Segments:   "segmentation_drg",
	YearPrefix: "total_voyageurs_",
}
