package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/track-analytics/internal/domain"
	"github.com/track-analytics/internal/domain/repository"
	"github.com/track-analytics/internal/pipeline"
	"github.com/track-analytics/internal/pkg/utils"
	"github.com/track-analytics/internal/reference"
	"github.com/track-analytics/internal/usecase/dto"
)

// StationUseCase - страница станций: счётчики по регионам и карта
type StationUseCase struct {
	datasets repository.DatasetRepository
	views    *viewCache
	columns  domain.StationColumns
	logger   *zap.Logger
}

// NewStationUseCase создает новый экземпляр StationUseCase
func NewStationUseCase(
	datasets repository.DatasetRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *StationUseCase {
	return &StationUseCase{
		datasets: datasets,
		views:    newViewCache(cacheRepo, cacheTTL, logger),
		columns:  domain.DefaultStationColumns,
		logger:   logger,
	}
}

func stationFacets(s domain.StationRecord) []string { return s.Facets }

func stationRegion(s domain.StationRecord) string { return s.Region }

// records загружает и обогащает станции; nil-срез с сообщением, если файла нет
// или в нём не хватает колонок
func (uc *StationUseCase) records(ctx context.Context, info *dto.ViewInfo) ([]domain.StationRecord, error) {
	table, err := openTable(ctx, uc.logger, info, "stations", uc.datasets.Stations, uc.columns.Required()...)
	if err != nil || table == nil {
		return nil, err
	}
	return pipeline.EnrichStations(table, uc.columns), nil
}

// GetStations - счётчики по регионам, маркеры и легенда для выбранных фильтров
func (uc *StationUseCase) GetStations(ctx context.Context, req dto.StationsRequest) (*dto.StationsResponse, error) {
	byCategory, err := pipeline.CategoryContains[domain.StationRecord](req.Category, stationFacets)
	if err != nil {
		return nil, err
	}
	byRegion, err := pipeline.RegionEquals[domain.StationRecord](req.Region, stationRegion)
	if err != nil {
		return nil, err
	}

	category := strings.TrimSpace(req.Category)
	if pipeline.IsAll(category) {
		category = reference.AllCategories
	}
	region := strings.TrimSpace(req.Region)
	if pipeline.IsAll(region) {
		region = pipeline.SelectAllRegions
	}

	key := viewKey("stations", category, region)
	resp := &dto.StationsResponse{}
	if uc.views.load(ctx, key, resp) {
		resp.Cached = true
		return resp, nil
	}

	resp.Category = category
	resp.Region = region
	resp.CategoryMeaning, _ = reference.CategoryMeaning(category)
	resp.Legend = legend()

	records, err := uc.records(ctx, &resp.ViewInfo)
	if err != nil {
		return nil, err
	}

	filtered := pipeline.Filter(records, byCategory, byRegion)
	resp.Total = len(filtered)

	counts := pipeline.SortGroupsByRows(pipeline.CountBy(filtered, stationRegion))
	resp.RegionCounts = make([]dto.RegionCount, 0, len(counts))
	for _, g := range counts {
		resp.RegionCounts = append(resp.RegionCounts, dto.RegionCount{
			Region: g.Keys[0],
			Color:  reference.ColorForRegion(g.Keys[0]),
			Count:  g.Rows,
		})
	}

	placed := pipeline.Filter(filtered, pipeline.HasPosition)
	resp.Markers = make([]dto.StationMarker, 0, len(placed))
	invalid := 0
	for _, s := range placed {
		if !utils.ValidPosition(*s.Position) {
			invalid++
			continue
		}
		resp.Markers = append(resp.Markers, dto.StationMarker{
			Name:   s.Name,
			Region: s.Region,
			Color:  reference.ColorForRegion(s.Region),
			Lat:    s.Position.Lat,
			Lon:    s.Position.Lon,
			Popup:  fmt.Sprintf("%s<br><b>Region:</b> %s", s.Name, s.Region),
		})
	}

	if missing := len(filtered) - len(resp.Markers); missing > 0 {
		uc.logger.Debug("Stations left off the map",
			zap.Int("missing", missing),
			zap.Int("out_of_range", invalid),
		)
		resp.AddNotice(domain.NoticeMissingPosition,
			fmt.Sprintf("%d stations have no usable position and are not shown on the map.", missing))
	}
	if len(records) > 0 && len(filtered) == 0 {
		resp.AddNotice(domain.NoticeNoMatch, "No station matches the selected filters.")
	}

	resp.Finish(resp.Total)
	if resp.Cacheable() {
		uc.views.store(ctx, key, resp)
	}
	return resp, nil
}

// GetOptions - категории и регионы, встречающиеся в данных, с sentinel "все" первым
func (uc *StationUseCase) GetOptions(ctx context.Context) (*dto.StationOptionsResponse, error) {
	key := viewKey("stations", "options")
	resp := &dto.StationOptionsResponse{}
	if uc.views.load(ctx, key, resp) {
		resp.Cached = true
		return resp, nil
	}

	records, err := uc.records(ctx, &resp.ViewInfo)
	if err != nil {
		return nil, err
	}

	categories := make(map[string]struct{})
	regions := make(map[string]struct{})
	for _, s := range records {
		for _, f := range s.Facets {
			categories[f] = struct{}{}
		}
		regions[s.Region] = struct{}{}
	}

	resp.Categories = append([]string{reference.AllCategories}, sortedKeys(categories)...)
	resp.Regions = append([]string{pipeline.SelectAllRegions}, sortedKeys(regions)...)
	resp.Meanings = make(map[string]string, len(resp.Categories))
	for _, c := range resp.Categories {
		if m, ok := reference.CategoryMeaning(c); ok {
			resp.Meanings[c] = m
		}
	}

	resp.Finish(len(records))
	if resp.Cacheable() {
		uc.views.store(ctx, key, resp)
	}
	return resp, nil
}

func legend() []dto.LegendEntry {
	pairs := reference.RegionLegend()
	out := make([]dto.LegendEntry, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, dto.LegendEntry{Region: p[0], Color: p[1]})
	}
	return out
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
