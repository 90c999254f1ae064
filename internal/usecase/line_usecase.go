package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/twpayne/go-geom/encoding/geojson"
	"go.uber.org/zap"

	"github.com/track-analytics/internal/domain"
	"github.com/track-analytics/internal/domain/repository"
	"github.com/track-analytics/internal/pipeline"
	"github.com/track-analytics/internal/reference"
	"github.com/track-analytics/internal/usecase/dto"
)

// LineUseCase - страница железнодорожных линий
type LineUseCase struct {
	datasets   repository.DatasetRepository
	views      *viewCache
	properties domain.LineProperties
	logger     *zap.Logger
}

// NewLineUseCase создает новый экземпляр LineUseCase
func NewLineUseCase(
	datasets repository.DatasetRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *LineUseCase {
	return &LineUseCase{
		datasets:   datasets,
		views:      newViewCache(cacheRepo, cacheTTL, logger),
		properties: domain.DefaultLineProperties,
		logger:     logger,
	}
}

// GetLines - слои карты по категориям, их счётчики и суммарная длина.
// Длина суммируется по всем линиям с известной длиной, на карту попадают
// только линии двух известных категорий
func (uc *LineUseCase) GetLines(ctx context.Context) (*dto.LinesResponse, error) {
	key := viewKey("lines", "all")
	resp := &dto.LinesResponse{}
	if uc.views.load(ctx, key, resp) {
		resp.Cached = true
		return resp, nil
	}

	categories := reference.LineCategories()
	resp.Layers = make([]dto.LineLayer, 0, len(categories))
	layerOf := make(map[string]int, len(categories))
	for i, c := range categories {
		color, _ := reference.LineColor(c)
		resp.Layers = append(resp.Layers, dto.LineLayer{
			Category: c,
			Color:    color,
			Features: &geojson.FeatureCollection{Features: []*geojson.Feature{}},
		})
		layerOf[c] = i
	}

	fc, err := uc.datasets.Lines(ctx)
	if err != nil {
		notice, err := datasetNotice(uc.logger, "lines", err)
		if err != nil {
			return nil, err
		}
		resp.Notices = append(resp.Notices, notice)
		resp.Finish(0)
		return resp, nil
	}

	lines := pipeline.EnrichLines(fc, uc.properties)
	resp.TotalFeatures = len(lines)
	for _, l := range lines {
		if l.LengthKm != nil {
			resp.TotalLengthKm += *l.LengthKm
		} else {
			resp.MissingLength++
		}

		i, ok := layerOf[l.Category]
		if !ok {
			continue
		}
		layer := &resp.Layers[i]
		layer.Count++
		if l.LengthKm != nil {
			layer.LengthKm += *l.LengthKm
		}
		layer.Features.Features = append(layer.Features.Features, &geojson.Feature{
			ID:         l.ID,
			Geometry:   l.Geometry,
			Properties: l.Properties,
		})
	}

	if resp.MissingLength > 0 {
		uc.logger.Debug("Lines without kilometer markers", zap.Int("count", resp.MissingLength))
		resp.AddNotice(domain.NoticeMissingLength,
			fmt.Sprintf("%d lines have no readable kilometer markers and are left out of the total length.", resp.MissingLength))
	}

	resp.Finish(resp.TotalFeatures)
	uc.views.store(ctx, key, resp)
	return resp, nil
}
