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
	"github.com/track-analytics/internal/usecase/dto"
)

// PriceUseCase - страница тарифов TGV INOUI / OUIGO
type PriceUseCase struct {
	datasets repository.DatasetRepository
	views    *viewCache
	columns  domain.PriceColumns
	logger   *zap.Logger
}

// NewPriceUseCase создает новый экземпляр PriceUseCase
func NewPriceUseCase(
	datasets repository.DatasetRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *PriceUseCase {
	return &PriceUseCase{
		datasets: datasets,
		views:    newViewCache(cacheRepo, cacheTTL, logger),
		columns:  domain.DefaultPriceColumns,
		logger:   logger,
	}
}

func quoteRoute(q domain.PriceQuote) (string, string) { return q.Origin, q.Destination }

func quoteHasDistance(q domain.PriceQuote) bool { return q.DistanceKm != nil }

func (uc *PriceUseCase) quotes(ctx context.Context, info *dto.ViewInfo) ([]domain.PriceQuote, error) {
	table, err := openTable(ctx, uc.logger, info, "prices", uc.datasets.Prices, uc.columns.Required()...)
	if err != nil || table == nil {
		return nil, err
	}
	return pipeline.EnrichPrices(table, uc.columns), nil
}

// GetStations - станции отправления и прибытия в порядке первого появления
func (uc *PriceUseCase) GetStations(ctx context.Context) (*dto.PriceStationsResponse, error) {
	key := viewKey("prices", "stations")
	resp := &dto.PriceStationsResponse{}
	if uc.views.load(ctx, key, resp) {
		resp.Cached = true
		return resp, nil
	}

	quotes, err := uc.quotes(ctx, &resp.ViewInfo)
	if err != nil {
		return nil, err
	}

	resp.Origins = unique(quotes, func(q domain.PriceQuote) string { return q.Origin })
	resp.Destinations = unique(quotes, func(q domain.PriceQuote) string { return q.Destination })

	resp.Finish(len(quotes))
	if resp.Cacheable() {
		uc.views.store(ctx, key, resp)
	}
	return resp, nil
}

// GetRoute - все тарифы маршрута; дистанция может быть неизвестна
func (uc *PriceUseCase) GetRoute(ctx context.Context, req dto.PriceRouteRequest) (*dto.PriceRouteResponse, error) {
	origin := strings.TrimSpace(req.Origin)
	destination := strings.TrimSpace(req.Destination)

	key := viewKey("prices", "route", origin, destination)
	resp := &dto.PriceRouteResponse{Origin: origin, Destination: destination}
	if uc.views.load(ctx, key, resp) {
		resp.Cached = true
		return resp, nil
	}

	quotes, err := uc.quotes(ctx, &resp.ViewInfo)
	if err != nil {
		return nil, err
	}

	resp.Quotes = pipeline.Filter(quotes, pipeline.RouteEquals(origin, destination, quoteRoute))
	switch {
	case len(quotes) > 0 && len(resp.Quotes) == 0:
		resp.AddNotice(domain.NoticeNoMatch,
			fmt.Sprintf("No data available for the route from %s to %s.", origin, destination))
	case len(resp.Quotes) > 0 && resp.Quotes[0].DistanceKm == nil:
		resp.AddNotice(domain.NoticeMissingDistance,
			fmt.Sprintf("No reference distance for the route from %s to %s.", origin, destination))
	}

	resp.Finish(len(resp.Quotes))
	if resp.Cacheable() {
		uc.views.store(ctx, key, resp)
	}
	return resp, nil
}

// GetMostExpensive - top-K маршрутов по максимальной цене среди строк с известной дистанцией
func (uc *PriceUseCase) GetMostExpensive(ctx context.Context, req dto.LimitRequest) (*dto.MostExpensiveResponse, error) {
	limit := dto.LimitOrDefault(req.Limit)

	key := viewKey("prices", "most-expensive", strconv.Itoa(limit))
	resp := &dto.MostExpensiveResponse{}
	if uc.views.load(ctx, key, resp) {
		resp.Cached = true
		return resp, nil
	}

	quotes, err := uc.quotes(ctx, &resp.ViewInfo)
	if err != nil {
		return nil, err
	}

	withDistance := pipeline.Filter(quotes, quoteHasDistance)
	if dropped := len(quotes) - len(withDistance); dropped > 0 {
		uc.logger.Debug("Price rows without reference distance", zap.Int("dropped", dropped))
		resp.AddNotice(domain.NoticeMissingDistance,
			fmt.Sprintf("%d fares have no reference distance and are excluded.", dropped))
	}

	resp.Routes = pipeline.TopK(withDistance, limit, func(q domain.PriceQuote) (float64, bool) {
		if q.MaxPrice == nil {
			return 0, false
		}
		return *q.MaxPrice, true
	})

	resp.Finish(len(resp.Routes))
	if resp.Cacheable() {
		uc.views.store(ctx, key, resp)
	}
	return resp, nil
}

// Compare - цена за километр двух маршрутов по первой подходящей строке
func (uc *PriceUseCase) Compare(ctx context.Context, req dto.PriceCompareRequest) (*dto.PriceCompareResponse, error) {
	routes := [][2]string{
		{strings.TrimSpace(req.Origin1), strings.TrimSpace(req.Destination1)},
		{strings.TrimSpace(req.Origin2), strings.TrimSpace(req.Destination2)},
	}

	key := viewKey("prices", "compare", routes[0][0], routes[0][1], routes[1][0], routes[1][1])
	resp := &dto.PriceCompareResponse{}
	if uc.views.load(ctx, key, resp) {
		resp.Cached = true
		return resp, nil
	}

	quotes, err := uc.quotes(ctx, &resp.ViewInfo)
	if err != nil {
		return nil, err
	}
	withDistance := pipeline.Filter(quotes, quoteHasDistance)

	resp.Routes = make([]dto.RouteComparison, 0, len(routes))
	found := 0
	for i, r := range routes {
		cmp := dto.RouteComparison{Origin: r[0], Destination: r[1]}
		matches := pipeline.Filter(withDistance, pipeline.RouteEquals(r[0], r[1], quoteRoute))
		if len(matches) > 0 {
			first := matches[0]
			cmp.Found = true
			cmp.DistanceKm = first.DistanceKm
			cmp.CostPerKmMin = first.CostPerKmMin
			cmp.CostPerKmMax = first.CostPerKmMax
			found++
		} else if len(quotes) > 0 {
			resp.AddNotice(domain.NoticeNoMatch,
				fmt.Sprintf("No data available for Route %d: %s to %s", i+1, r[0], r[1]))
		}
		resp.Routes = append(resp.Routes, cmp)
	}

	resp.Finish(found)
	if resp.Cacheable() {
		uc.views.store(ctx, key, resp)
	}
	return resp, nil
}

// unique - различные значения в порядке первого появления
func unique[T any](rows []T, value func(T) string) []string {
	groups := pipeline.CountBy(rows, value)
	out := make([]string, 0, len(groups))
	for _, g := range groups {
		if g.Keys[0] != "" {
			out = append(out, g.Keys[0])
		}
	}
	return out
}
