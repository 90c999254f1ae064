package domain

import "github.com/twpayne/go-geom"

// LineFeature - линия с производными свойствами. Geometry может быть nil
type LineFeature struct {
	ID          string
	Name        string
	Category    string
	StartMarker string
	EndMarker   string
	LengthKm    *int
	PathKm      float64
	Geometry    geom.T
	Properties  map[string]interface{}
}

// LineProperties - ключи свойств GeoJSON-фичи
type LineProperties struct {
	Name        string
	Category    string
	StartMarker string
	EndMarker   string
}

// DefaultLineProperties - свойства файла lignes-lgv-et-par-ecartement.geojson
var DefaultLineProperties = LineProperties{
	Name:        "lib_ligne",
	Category:    "catlig",
	StartMarker: "pkd",
	EndMarker:   "pkf",
}

// Производные свойства, добавляемые к фиче
const (
	PropertyLength     = "longueur"
	PropertyPathLength = "path_length_km"
	PropertyColor      = "color"
)
