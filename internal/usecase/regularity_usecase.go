package usecase

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode"

	"go.uber.org/zap"

	"github.com/track-analytics/internal/domain"
	"github.com/track-analytics/internal/domain/repository"
	"github.com/track-analytics/internal/pipeline"
	"github.com/track-analytics/internal/usecase/dto"
)

const causePrefix = "prct_cause_"

// RegularityUseCase - страница пунктуальности TGV
type RegularityUseCase struct {
	datasets repository.DatasetRepository
	views    *viewCache
	columns  domain.RegularityColumns
	logger   *zap.Logger
}

// NewRegularityUseCase создает новый экземпляр RegularityUseCase
func NewRegularityUseCase(
	datasets repository.DatasetRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *RegularityUseCase {
	return &RegularityUseCase{
		datasets: datasets,
		views:    newViewCache(cacheRepo, cacheTTL, logger),
		columns:  domain.DefaultRegularityColumns,
		logger:   logger,
	}
}

// records загружает статистику; extra - колонки, нужные только текущему представлению
func (uc *RegularityUseCase) records(ctx context.Context, info *dto.ViewInfo, extra ...string) ([]domain.RegularityRecord, error) {
	required := append(uc.columns.Required(), extra...)
	table, err := openTable(ctx, uc.logger, info, "regularity", uc.datasets.Regularity, required...)
	if err != nil || table == nil {
		return nil, err
	}
	return pipeline.EnrichRegularity(table, uc.columns), nil
}

// GetMonthlyDelays - средняя задержка прибытия по месяцам в хронологическом порядке.
// Строки с нечитаемой датой исключаются
func (uc *RegularityUseCase) GetMonthlyDelays(ctx context.Context) (*dto.MonthlyDelaysResponse, error) {
	key := viewKey("regularity", "monthly-delays")
	resp := &dto.MonthlyDelaysResponse{}
	if uc.views.load(ctx, key, resp) {
		resp.Cached = true
		return resp, nil
	}

	records, err := uc.records(ctx, &resp.ViewInfo)
	if err != nil {
		return nil, err
	}

	dated := pipeline.Filter(records, func(r domain.RegularityRecord) bool { return r.Month != nil })
	if invalid := len(records) - len(dated); invalid > 0 {
		uc.logger.Debug("Regularity rows with invalid date", zap.Int("dropped", invalid))
		resp.AddNotice(domain.NoticeInvalidDate,
			fmt.Sprintf("%d rows have an unreadable date and are excluded.", invalid))
	}

	byMonth := make(map[string][]*float64)
	for _, r := range dated {
		m := r.Month.Format("2006-01")
		byMonth[m] = append(byMonth[m], r.AvgArrivalDelay)
	}

	resp.Points = make([]dto.MonthlyDelay, 0, len(byMonth))
	for m, delays := range byMonth {
		avg, ok := pipeline.Mean(delays)
		if !ok {
			continue
		}
		resp.Points = append(resp.Points, dto.MonthlyDelay{Month: m, AvgDelay: avg})
	}
	sort.Slice(resp.Points, func(i, j int) bool {
		return resp.Points[i].Month < resp.Points[j].Month
	})

	resp.Finish(len(resp.Points))
	if resp.Cacheable() {
		uc.views.store(ctx, key, resp)
	}
	return resp, nil
}

// GetTopIncidents - маршруты с наибольшей суммой отмен, задержек отправления и прибытия
func (uc *RegularityUseCase) GetTopIncidents(ctx context.Context, req dto.LimitRequest) (*dto.TopIncidentsResponse, error) {
	limit := dto.LimitOrDefault(req.Limit)

	key := viewKey("regularity", "top-incidents", strconv.Itoa(limit))
	resp := &dto.TopIncidentsResponse{}
	if uc.views.load(ctx, key, resp) {
		resp.Cached = true
		return resp, nil
	}

	records, err := uc.records(ctx, &resp.ViewInfo)
	if err != nil {
		return nil, err
	}

	groups := pipeline.GroupSum(records,
		func(r domain.RegularityRecord) []string { return []string{r.Origin, r.Destination} },
		func(r domain.RegularityRecord) []float64 {
			return []float64{
				pipeline.OrZero(r.Cancellations),
				pipeline.OrZero(r.LateDepartures),
				pipeline.OrZero(r.LateArrivals),
			}
		},
	)

	routes := make([]dto.RouteIncidents, 0, len(groups))
	for _, g := range groups {
		routes = append(routes, dto.RouteIncidents{
			Origin:         g.Keys[0],
			Destination:    g.Keys[1],
			Cancellations:  g.Sums[0],
			LateDepartures: g.Sums[1],
			LateArrivals:   g.Sums[2],
			Total:          g.Sums[0] + g.Sums[1] + g.Sums[2],
		})
	}
	resp.Routes = pipeline.TopK(routes, limit, func(r dto.RouteIncidents) (float64, bool) {
		return r.Total, true
	})

	resp.Finish(len(resp.Routes))
	if resp.Cacheable() {
		uc.views.store(ctx, key, resp)
	}
	return resp, nil
}

// GetCauses - средний процент каждой причины задержек. Сумма процентов не проверяется
func (uc *RegularityUseCase) GetCauses(ctx context.Context) (*dto.CausesResponse, error) {
	key := viewKey("regularity", "causes")
	resp := &dto.CausesResponse{}
	if uc.views.load(ctx, key, resp) {
		resp.Cached = true
		return resp, nil
	}

	records, err := uc.records(ctx, &resp.ViewInfo, uc.columns.Causes[:]...)
	if err != nil {
		return nil, err
	}

	resp.Causes = make([]dto.CauseShare, 0, domain.CauseCount)
	known := 0
	for c, column := range uc.columns.Causes {
		values := make([]*float64, 0, len(records))
		for _, r := range records {
			values = append(values, r.Causes[c])
		}
		share := dto.CauseShare{Key: column, Label: CauseLabel(column)}
		if avg, ok := pipeline.Mean(values); ok {
			share.Percentage = &avg
			known++
		}
		resp.Causes = append(resp.Causes, share)
	}

	resp.Finish(known)
	if resp.Cacheable() {
		uc.views.store(ctx, key, resp)
	}
	return resp, nil
}

// CauseLabel - подпись причины: "prct_cause_gestion_gare" -> "Gestion gare"
func CauseLabel(column string) string {
	label := strings.ReplaceAll(strings.TrimPrefix(column, causePrefix), "_", " ")
	if label == "" {
		return label
	}
	runes := []rune(strings.ToLower(label))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
