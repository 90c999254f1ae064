package repository

import (
	"context"

	"github.com/twpayne/go-geom/encoding/geojson"

	"github.com/track-analytics/internal/domain"
)

// DatasetRepository отдаёт разобранные исходные файлы. Результаты общие для всех
// запросов и не должны изменяться вызывающей стороной.
type DatasetRepository interface {
	// Stations возвращает справочник станций
	Stations(ctx context.Context) (*domain.Table, error)

	// Lines возвращает геометрию линий
	Lines(ctx context.Context) (*geojson.FeatureCollection, error)

	// Prices возвращает тарифы
	Prices(ctx context.Context) (*domain.Table, error)

	// Regularity возвращает статистику пунктуальности
	Regularity(ctx context.Context) (*domain.Table, error)

	// Frequentation возвращает пассажиропоток
	Frequentation(ctx context.Context) (*domain.Table, error)
}
