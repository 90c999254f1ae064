package pipeline

import (
	"strconv"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"

	"github.com/track-analytics/internal/domain"
	"github.com/track-analytics/internal/pkg/utils"
	"github.com/track-analytics/internal/reference"
)

// EnrichLines derives the marker length, path length and color of every
// feature. A feature whose markers do not parse keeps a nil length: it is still
// drawn but left out of length totals.
func EnrichLines(fc *geojson.FeatureCollection, props domain.LineProperties) []domain.LineFeature {
	if fc == nil {
		return []domain.LineFeature{}
	}
	out := make([]domain.LineFeature, 0, len(fc.Features))
	for _, f := range fc.Features {
		if f == nil {
			continue
		}
		start := propertyText(f.Properties, props.StartMarker)
		end := propertyText(f.Properties, props.EndMarker)
		category := propertyText(f.Properties, props.Category)

		lf := domain.LineFeature{
			ID:          f.ID,
			Name:        propertyText(f.Properties, props.Name),
			Category:    category,
			StartMarker: start,
			EndMarker:   end,
			LengthKm:    LineLength(start, end),
			PathKm:      PathLengthKm(f.Geometry),
			Geometry:    f.Geometry,
		}

		derived := make(map[string]interface{}, len(f.Properties)+3)
		for k, v := range f.Properties {
			derived[k] = v
		}
		if lf.LengthKm != nil {
			derived[domain.PropertyLength] = *lf.LengthKm
		} else {
			derived[domain.PropertyLength] = nil
		}
		derived[domain.PropertyPathLength] = lf.PathKm
		color, ok := reference.LineColor(category)
		if !ok {
			color = reference.DefaultColor
		}
		derived[domain.PropertyColor] = color
		lf.Properties = derived

		out = append(out, lf)
	}
	return out
}

// propertyText renders a property as text; numbers keep their shortest form
// and absent or null values are empty.
func propertyText(properties map[string]interface{}, key string) string {
	v, ok := properties[key]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	default:
		return ""
	}
}

// PathLengthKm sums the great-circle length of line geometries. GeoJSON
// coordinates are longitude first. Other geometry types measure zero.
func PathLengthKm(g geom.T) float64 {
	switch t := g.(type) {
	case *geom.LineString:
		return coordsLengthKm(t.Coords())
	case *geom.MultiLineString:
		total := 0.0
		for i := 0; i < t.NumLineStrings(); i++ {
			total += coordsLengthKm(t.LineString(i).Coords())
		}
		return total
	default:
		return 0
	}
}

func coordsLengthKm(coords []geom.Coord) float64 {
	total := 0.0
	for i := 1; i < len(coords); i++ {
		prev, cur := coords[i-1], coords[i]
		total += utils.GreatCircleKm(
			domain.Position{Lat: prev.Y(), Lon: prev.X()},
			domain.Position{Lat: cur.Y(), Lon: cur.X()},
		)
	}
	return total
}
