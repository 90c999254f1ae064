package usecase_test

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/twpayne/go-geom/encoding/geojson"

	"github.com/track-analytics/internal/domain"
)

// MockDatasetRepository is a mock of DatasetRepository
type MockDatasetRepository struct {
	mock.Mock
}

func (m *MockDatasetRepository) Stations(ctx context.Context) (*domain.Table, error) {
	return m.tableCall(ctx, "Stations")
}

func (m *MockDatasetRepository) Lines(ctx context.Context) (*geojson.FeatureCollection, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*geojson.FeatureCollection), args.Error(1)
}

func (m *MockDatasetRepository) Prices(ctx context.Context) (*domain.Table, error) {
	return m.tableCall(ctx, "Prices")
}

func (m *MockDatasetRepository) Regularity(ctx context.Context) (*domain.Table, error) {
	return m.tableCall(ctx, "Regularity")
}

func (m *MockDatasetRepository) Frequentation(ctx context.Context) (*domain.Table, error) {
	return m.tableCall(ctx, "Frequentation")
}

// tableCall records the call under the given method name
func (m *MockDatasetRepository) tableCall(ctx context.Context, method string) (*domain.Table, error) {
	args := m.MethodCalled(method, ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Table), args.Error(1)
}

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

// memoryCache is a map-backed CacheRepository that ignores TTL
type memoryCache struct {
	mu      sync.Mutex
	entries map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string][]byte)}
}

func (c *memoryCache) Get(_ context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries[key], nil
}

func (c *memoryCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
	return nil
}

func (c *memoryCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
	return nil
}

func (c *memoryCache) keys() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	keys := make([]string, 0, len(c.entries))
	for k := range c.entries {
		keys = append(keys, k)
	}
	return keys
}

// renameColumn returns a copy of the table with one header cell replaced
func renameColumn(t *domain.Table, from, to string) *domain.Table {
	columns := append([]string{}, t.Columns...)
	for i, c := range columns {
		if c == from {
			columns[i] = to
		}
	}
	return domain.NewTable(t.Source, columns, t.Records)
}
