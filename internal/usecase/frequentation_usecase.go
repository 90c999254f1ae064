package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/track-analytics/internal/domain"
	"github.com/track-analytics/internal/domain/repository"
	"github.com/track-analytics/internal/pipeline"
	"github.com/track-analytics/internal/reference"
	"github.com/track-analytics/internal/usecase/dto"
)

// FrequentationUseCase - страница пассажиропотока станций 2015-2023
type FrequentationUseCase struct {
	datasets repository.DatasetRepository
	views    *viewCache
	columns  domain.FrequentationColumns
	logger   *zap.Logger
}

// NewFrequentationUseCase создает новый экземпляр FrequentationUseCase
func NewFrequentationUseCase(
	datasets repository.DatasetRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *FrequentationUseCase {
	return &FrequentationUseCase{
		datasets: datasets,
		views:    newViewCache(cacheRepo, cacheTTL, logger),
		columns:  domain.DefaultFrequentationColumns,
		logger:   logger,
	}
}

func frequentationFacets(r domain.FrequentationRecord) []string { return r.Facets }

func frequentationName(r domain.FrequentationRecord) string { return r.Name }

// records загружает полные строки и применяет фильтр категории
func (uc *FrequentationUseCase) records(
	ctx context.Context,
	info *dto.ViewInfo,
	byCategory pipeline.Predicate[domain.FrequentationRecord],
) ([]domain.FrequentationRecord, error) {
	required := uc.columns.Required(reference.Years())
	table, err := openTable(ctx, uc.logger, info, "frequentation", uc.datasets.Frequentation, required...)
	if err != nil || table == nil {
		return nil, err
	}

	records, dropped := pipeline.EnrichFrequentation(table, uc.columns)
	if dropped > 0 {
		uc.logger.Debug("Incomplete frequentation rows", zap.Int("dropped", dropped))
		info.AddNotice(domain.NoticeIncompleteRows,
			fmt.Sprintf("%d stations have incomplete data and are excluded.", dropped))
	}
	return pipeline.Filter(records, byCategory), nil
}

// topStations - limit станций с наибольшим пассажиропотоком за год
func topStations(records []domain.FrequentationRecord, year string, limit int) []domain.FrequentationRecord {
	return pipeline.TopK(records, limit, func(r domain.FrequentationRecord) (float64, bool) {
		v, ok := r.Passengers[year]
		return float64(v), ok
	})
}

func categoryLabel(category string) string {
	if pipeline.IsAll(category) {
		return reference.AllCategories
	}
	return strings.TrimSpace(category)
}

// GetTop - top-K станций по пассажиропотоку за год; пустой год означает последний
func (uc *FrequentationUseCase) GetTop(ctx context.Context, req dto.FrequentationTopRequest) (*dto.FrequentationTopResponse, error) {
	byCategory, err := pipeline.CategoryContains[domain.FrequentationRecord](req.Category, frequentationFacets)
	if err != nil {
		return nil, err
	}
	year, err := pipeline.RequireYear(req.Year)
	if err != nil {
		return nil, err
	}
	limit := dto.LimitOrDefault(req.Limit)
	category := categoryLabel(req.Category)

	key := viewKey("frequentation", "top", category, year, strconv.Itoa(limit))
	resp := &dto.FrequentationTopResponse{Year: year, Category: category}
	if uc.views.load(ctx, key, resp) {
		resp.Cached = true
		return resp, nil
	}

	records, err := uc.records(ctx, &resp.ViewInfo, byCategory)
	if err != nil {
		return nil, err
	}

	top := topStations(records, year, limit)
	resp.Stations = make([]dto.RankedStation, 0, len(top))
	for i, r := range top {
		resp.Stations = append(resp.Stations, dto.RankedStation{
			Rank:       i + 1,
			Name:       r.Name,
			Passengers: r.Passengers[year],
		})
	}

	resp.Finish(len(resp.Stations))
	if resp.Cacheable() {
		uc.views.store(ctx, key, resp)
	}
	return resp, nil
}

// Compare - пассажиропоток выбранных станций; годы идут в запрошенном порядке,
// станции внутри года - в порядке файла. Без выбранных станций сравнивается
// топ-10 станций за req.Year
func (uc *FrequentationUseCase) Compare(ctx context.Context, req dto.FrequentationCompareRequest) (*dto.FrequentationCompareResponse, error) {
	byCategory, err := pipeline.CategoryContains[domain.FrequentationRecord](req.Category, frequentationFacets)
	if err != nil {
		return nil, err
	}
	years, err := pipeline.SelectYears(req.Years)
	if err != nil {
		return nil, err
	}
	topYear, err := pipeline.RequireYear(req.Year)
	if err != nil {
		return nil, err
	}

	resp := &dto.FrequentationCompareResponse{
		Years:           years,
		Stations:        []string{},
		DefaultStations: len(req.Stations) == 0,
		Entries:         []dto.ComparisonEntry{},
	}
	if len(years) == 0 {
		resp.AddNotice(domain.NoticeNothingSelected, "Please select at least one year for comparison.")
		resp.Finish(0)
		return resp, nil
	}

	selection := listKey(req.Stations)
	if resp.DefaultStations {
		selection = "top:" + topYear
	}
	key := viewKey("frequentation", "compare", categoryLabel(req.Category), listKey(years), selection)
	if uc.views.load(ctx, key, resp) {
		resp.Cached = true
		return resp, nil
	}

	records, err := uc.records(ctx, &resp.ViewInfo, byCategory)
	if err != nil {
		return nil, err
	}

	names := req.Stations
	if resp.DefaultStations {
		names = unique(topStations(records, topYear, dto.DefaultLimit), frequentationName)
	}
	selected := pipeline.Filter(records, pipeline.NameIn(names, frequentationName))
	resp.Stations = unique(selected, frequentationName)

	for _, y := range years {
		for _, r := range selected {
			resp.Entries = append(resp.Entries, dto.ComparisonEntry{
				Year:       y,
				Name:       r.Name,
				Passengers: r.Passengers[y],
			})
		}
	}
	if len(records) > 0 && len(selected) == 0 {
		resp.AddNotice(domain.NoticeNoMatch, "None of the selected stations matches the category filter.")
	}

	resp.Finish(len(resp.Entries))
	if resp.Cacheable() {
		uc.views.store(ctx, key, resp)
	}
	return resp, nil
}

// GetStations - станции категории для выбора в сравнении и динамике, в порядке файла
func (uc *FrequentationUseCase) GetStations(ctx context.Context, req dto.FrequentationStationsRequest) (*dto.FrequentationStationsResponse, error) {
	byCategory, err := pipeline.CategoryContains[domain.FrequentationRecord](req.Category, frequentationFacets)
	if err != nil {
		return nil, err
	}
	category := categoryLabel(req.Category)

	key := viewKey("frequentation", "stations", category)
	resp := &dto.FrequentationStationsResponse{Category: category, Stations: []string{}}
	if uc.views.load(ctx, key, resp) {
		resp.Cached = true
		return resp, nil
	}

	records, err := uc.records(ctx, &resp.ViewInfo, byCategory)
	if err != nil {
		return nil, err
	}
	resp.Stations = unique(records, frequentationName)

	resp.Finish(len(resp.Stations))
	if resp.Cacheable() {
		uc.views.store(ctx, key, resp)
	}
	return resp, nil
}

// GetTrend - пассажиропоток одной станции по всем годам в хронологическом порядке
func (uc *FrequentationUseCase) GetTrend(ctx context.Context, req dto.FrequentationTrendRequest) (*dto.FrequentationTrendResponse, error) {
	byCategory, err := pipeline.CategoryContains[domain.FrequentationRecord](req.Category, frequentationFacets)
	if err != nil {
		return nil, err
	}
	station := strings.TrimSpace(req.Station)

	key := viewKey("frequentation", "trend", categoryLabel(req.Category), station)
	resp := &dto.FrequentationTrendResponse{Station: station, Points: []dto.YearCount{}}
	if uc.views.load(ctx, key, resp) {
		resp.Cached = true
		return resp, nil
	}

	records, err := uc.records(ctx, &resp.ViewInfo, byCategory)
	if err != nil {
		return nil, err
	}

	matches := pipeline.Filter(records, pipeline.NameIn([]string{station}, frequentationName))
	if len(matches) == 0 {
		if len(records) > 0 {
			resp.AddNotice(domain.NoticeNoMatch, fmt.Sprintf("No data for station %s.", station))
		}
	} else {
		r := matches[0]
		for _, y := range reference.Years() {
			resp.Points = append(resp.Points, dto.YearCount{Year: y, Passengers: r.Passengers[y]})
		}
	}

	resp.Finish(len(resp.Points))
	if resp.Cacheable() {
		uc.views.store(ctx, key, resp)
	}
	return resp, nil
}
