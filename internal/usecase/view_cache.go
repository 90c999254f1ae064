package usecase

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/track-analytics/internal/domain"
	"github.com/track-analytics/internal/domain/repository"
	"github.com/track-analytics/internal/pipeline"
	"github.com/track-analytics/internal/pkg/errors"
	"github.com/track-analytics/internal/usecase/dto"
)

// viewCache - cache-aside для вычисленных представлений. Ошибки кеша только
// логируются: представление всегда можно пересчитать
type viewCache struct {
	repo   repository.CacheRepository
	ttl    time.Duration
	logger *zap.Logger
}

func newViewCache(repo repository.CacheRepository, ttl time.Duration, logger *zap.Logger) *viewCache {
	return &viewCache{repo: repo, ttl: ttl, logger: logger}
}

// viewKey строит ключ представления. Каждая часть экранируется, поэтому
// разные запросы не могут дать один ключ
func viewKey(page string, parts ...string) string {
	escaped := make([]string, len(parts))
	for i, p := range parts {
		escaped[i] = url.QueryEscape(p)
	}
	return "view:" + page + ":" + strings.Join(escaped, "|")
}

// listKey - часть ключа для списка значений: длина и экранированные элементы
func listKey(values []string) string {
	escaped := make([]string, len(values))
	for i, v := range values {
		escaped[i] = url.QueryEscape(v)
	}
	return strconv.Itoa(len(values)) + ":" + strings.Join(escaped, ",")
}

// load читает представление в dst; false при промахе или ошибке
func (c *viewCache) load(ctx context.Context, key string, dst interface{}) bool {
	if c == nil || c.repo == nil {
		return false
	}

	data, err := c.repo.Get(ctx, key)
	if err != nil {
		c.logger.Warn("Failed to get view from cache", zap.String("key", key), zap.Error(err))
		return false
	}
	if data == nil {
		return false
	}

	if err := json.Unmarshal(data, dst); err != nil {
		c.logger.Warn("Failed to decode cached view, evicting", zap.String("key", key), zap.Error(err))
		if err := c.repo.Delete(ctx, key); err != nil {
			c.logger.Warn("Failed to evict cached view", zap.String("key", key), zap.Error(err))
		}
		return false
	}

	c.logger.Debug("View fetched from cache", zap.String("key", key))
	return true
}

func (c *viewCache) store(ctx context.Context, key string, v interface{}) {
	if c == nil || c.repo == nil || c.ttl <= 0 {
		return
	}

	data, err := json.Marshal(v)
	if err != nil {
		c.logger.Warn("Failed to encode view", zap.String("key", key), zap.Error(err))
		return
	}

	if err := c.repo.Set(ctx, key, data, c.ttl); err != nil {
		c.logger.Warn("Failed to cache view", zap.String("key", key), zap.Error(err))
	}
}

// datasetNotice переводит ошибку загрузки в сообщение для пустого представления.
// Прочие ошибки (например, отменённый контекст) возвращаются как есть
func datasetNotice(logger *zap.Logger, dataset string, err error) (domain.Notice, error) {
	switch {
	case stderrors.Is(err, errors.ErrDatasetNotFound):
		logger.Warn("Dataset not found", zap.String("dataset", dataset), zap.Error(err))
		return domain.Notice{
			Code:    domain.NoticeDatasetMissing,
			Message: "Data file not found.",
		}, nil
	case stderrors.Is(err, errors.ErrMissingColumns):
		logger.Error("Dataset is missing columns", zap.String("dataset", dataset), zap.Error(err))
		var appErr *errors.AppError
		missing := []string{}
		if stderrors.As(err, &appErr) {
			if cols, ok := appErr.Details["missing_columns"].([]string); ok {
				missing = cols
			}
		}
		return domain.Notice{
			Code:    domain.NoticeMissingColumns,
			Message: fmt.Sprintf("Data file is missing columns: %s.", strings.Join(missing, ", ")),
		}, nil
	case stderrors.Is(err, errors.ErrParseFailure):
		logger.Error("Dataset could not be parsed", zap.String("dataset", dataset), zap.Error(err))
		return domain.Notice{
			Code:    domain.NoticeDatasetInvalid,
			Message: "Data file could not be read.",
		}, nil
	default:
		return domain.Notice{}, err
	}
}

// openTable загружает таблицу и проверяет обязательные колонки. Если файла нет
// или он не подходит, в info добавляется сообщение и возвращается nil без ошибки
func openTable(
	ctx context.Context,
	logger *zap.Logger,
	info *dto.ViewInfo,
	dataset string,
	load func(context.Context) (*domain.Table, error),
	required ...string,
) (*domain.Table, error) {
	table, err := load(ctx)
	if err == nil {
		err = pipeline.RequireColumns(table, required...)
	}
	if err != nil {
		notice, err := datasetNotice(logger, dataset, err)
		if err != nil {
			return nil, err
		}
		info.Notices = append(info.Notices, notice)
		return nil, nil
	}
	return table, nil
}
