package domain

// StationRecord - станция после обогащения справочниками
type StationRecord struct {
	Name       string    `json:"name"`
	InseeCode  string    `json:"insee_code"`
	Position   *Position `json:"position"`
	Segments   string    `json:"segments"`
	Facets     []string  `json:"facets"`
	Department string    `json:"department"`
	Region     string    `json:"region"`
}

// StationColumns - имена колонок файла станций
type StationColumns struct {
	Name     string
	Insee    string
	Position string
	Segments string
}

// Required - колонки, без которых страница станций не строится
func (c StationColumns) Required() []string {
	return []string{c.Name, c.Insee, c.Position, c.Segments}
}

// DefaultStationColumns - колонки файла gares-de-voyageurs.csv
var DefaultStationColumns = StationColumns{
	Name:     "nom",
	Insee:    "codeinsee",
	Position: "position_geographique",
	Segments: "segment_drg",
}
