package dataset

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/bluele/gcache"
	"github.com/twpayne/go-geom/encoding/geojson"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/track-analytics/internal/config"
	"github.com/track-analytics/internal/domain"
	"github.com/track-analytics/internal/domain/repository"
	"github.com/track-analytics/internal/pkg/errors"
)

// Catalog - явный кеш разобранных файлов. Ключ - только путь: содержимое файлов
// считается неизменным на всё время жизни процесса, записи не инвалидируются.
// Ошибки не кешируются, поэтому появившийся позже файл будет прочитан.
type Catalog struct {
	stations      string
	lines         string
	prices        string
	regularity    string
	frequentation string
	delimiter     rune

	cache  gcache.Cache
	locks  sync.Map
	loads  atomic.Int64
	logger *zap.Logger
}

var _ repository.DatasetRepository = (*Catalog)(nil)

// NewCatalog создаёт каталог по конфигурации путей
func NewCatalog(cfg *config.DatasetConfig, logger *zap.Logger) *Catalog {
	c := &Catalog{
		stations:      cfg.DatasetPath(cfg.Stations),
		lines:         cfg.DatasetPath(cfg.Lines),
		prices:        cfg.DatasetPath(cfg.Prices),
		regularity:    cfg.DatasetPath(cfg.Regularity),
		frequentation: cfg.DatasetPath(cfg.Frequentation),
		delimiter:     DefaultDelimiter,
		logger:        logger,
	}

	// Размер не меньше числа путей, чтобы записи никогда не вытеснялись
	size := cfg.CacheSize
	if n := len(c.Paths()); size < n {
		size = n
	}
	c.cache = gcache.New(size).Simple().Build()

	return c
}

// Paths возвращает пути всех наборов данных
func (c *Catalog) Paths() []string {
	return []string{c.stations, c.lines, c.prices, c.regularity, c.frequentation}
}

// Loads - сколько раз файлы реально читались с диска
func (c *Catalog) Loads() int64 {
	return c.loads.Load()
}

func isGeoJSON(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".geojson", ".json":
		return true
	}
	return false
}

func (c *Catalog) load(path string) (interface{}, error) {
	c.loads.Add(1)
	c.logger.Debug("Loading dataset", zap.String("path", path))

	if isGeoJSON(path) {
		fc, err := LoadGeoJSON(path)
		if err != nil {
			return nil, err
		}
		c.logger.Info("Dataset loaded",
			zap.String("path", path),
			zap.Int("features", len(fc.Features)))
		return fc, nil
	}

	table, err := LoadCSV(path, c.delimiter)
	if err != nil {
		return nil, err
	}
	c.logger.Info("Dataset loaded",
		zap.String("path", path),
		zap.Int("rows", table.Len()),
		zap.Int("columns", len(table.Columns)))
	return table, nil
}

func (c *Catalog) get(ctx context.Context, path string) (interface{}, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if v, err := c.cache.GetIFPresent(path); err == nil {
		return v, nil
	}

	// Первая загрузка пути выполняется один раз даже при конкурентных запросах
	mu, _ := c.locks.LoadOrStore(path, &sync.Mutex{})
	mu.(*sync.Mutex).Lock()
	defer mu.(*sync.Mutex).Unlock()

	if v, err := c.cache.GetIFPresent(path); err == nil {
		return v, nil
	}
	v, err := c.load(path)
	if err != nil {
		return nil, err
	}
	if err := c.cache.Set(path, v); err != nil {
		return nil, fmt.Errorf("cache dataset %s: %w", path, err)
	}
	return v, nil
}

// Table возвращает таблицу по пути
func (c *Catalog) Table(ctx context.Context, path string) (*domain.Table, error) {
	v, err := c.get(ctx, path)
	if err != nil {
		return nil, err
	}
	table, ok := v.(*domain.Table)
	if !ok {
		return nil, fmt.Errorf("dataset %s is not tabular", path)
	}
	return table, nil
}

// FeatureCollection возвращает коллекцию фич по пути
func (c *Catalog) FeatureCollection(ctx context.Context, path string) (*geojson.FeatureCollection, error) {
	v, err := c.get(ctx, path)
	if err != nil {
		return nil, err
	}
	fc, ok := v.(*geojson.FeatureCollection)
	if !ok {
		return nil, fmt.Errorf("dataset %s is not a feature collection", path)
	}
	return fc, nil
}

func (c *Catalog) Stations(ctx context.Context) (*domain.Table, error) {
	return c.Table(ctx, c.stations)
}

func (c *Catalog) Lines(ctx context.Context) (*geojson.FeatureCollection, error) {
	return c.FeatureCollection(ctx, c.lines)
}

func (c *Catalog) Prices(ctx context.Context) (*domain.Table, error) {
	return c.Table(ctx, c.prices)
}

func (c *Catalog) Regularity(ctx context.Context) (*domain.Table, error) {
	return c.Table(ctx, c.regularity)
}

func (c *Catalog) Frequentation(ctx context.Context) (*domain.Table, error) {
	return c.Table(ctx, c.frequentation)
}

// Warmup параллельно загружает все наборы. Отсутствующие файлы только логируются
func (c *Catalog) Warmup(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, path := range c.Paths() {
		g.Go(func() error {
			_, err := c.get(gctx, path)
			if stderrors.Is(err, errors.ErrDatasetNotFound) {
				c.logger.Warn("Dataset file not found, views will be empty", zap.String("path", path))
				return nil
			}
			if err != nil {
				return fmt.Errorf("warmup %s: %w", path, err)
			}
			return nil
		})
	}
	return g.Wait()
}

// Health проверяет, что все файлы на месте
func (c *Catalog) Health(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	var missing []string
	for _, path := range c.Paths() {
		if _, err := os.Stat(path); err != nil {
			missing = append(missing, path)
		}
	}
	if len(missing) > 0 {
		return errors.ErrDatasetNotFound.
			WithMessage("%d dataset files are missing", len(missing)).
			WithDetails(map[string]interface{}{"paths": missing})
	}
	return nil
}
