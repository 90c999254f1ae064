package usecase_test

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/track-analytics/internal/domain"
	apperrors "github.com/track-analytics/internal/pkg/errors"
	"github.com/track-analytics/internal/reference"
	"github.com/track-analytics/internal/repository/cache"
	"github.com/track-analytics/internal/usecase"
	"github.com/track-analytics/internal/usecase/dto"
)

func stationsTable() *domain.Table {
	return domain.NewTable("gares.csv",
		[]string{"nom", "codeinsee", "position_geographique", "segment_drg"},
		[][]string{
			{"Paris Gare de Lyon", "75112", "48.8443,2.3744", "A"},
			{"Boulogne", "75116", "", "A;B"},
			{"Brest", "29019", "48.3879,-4.4791", "B"},
			{"Pointe-à-Pitre", "97120", "16.24,-61.53", "C"},
		},
	)
}

func newStationUseCase(datasets *MockDatasetRepository) *usecase.StationUseCase {
	return usecase.NewStationUseCase(datasets, cache.NewNoopRepository(), zap.NewNop(), time.Minute)
}

func TestStationUseCase_GetStations(t *testing.T) {
	ctx := context.Background()

	t.Run("all stations", func(t *testing.T) {
		datasets := &MockDatasetRepository{}
		datasets.On("Stations", mock.Anything).Return(stationsTable(), nil)

		resp, err := newStationUseCase(datasets).GetStations(ctx, dto.StationsRequest{})

		require.NoError(t, err)
		assert.Equal(t, reference.AllCategories, resp.Category)
		assert.Equal(t, "All regions", resp.Region)
		assert.Equal(t, 4, resp.Total)
		require.NotEmpty(t, resp.RegionCounts)
		assert.Equal(t, dto.RegionCount{Region: "Île-de-France", Color: "beige", Count: 2}, resp.RegionCounts[0])

		// Boulogne has no position
		require.Len(t, resp.Markers, 3)
		assert.Equal(t, domain.StatusPartial, resp.Status)
		assert.True(t, resp.HasNotice(domain.NoticeMissingPosition))

		overseas := resp.Markers[2]
		assert.Equal(t, "Pointe-à-Pitre", overseas.Name)
		assert.Equal(t, reference.UnknownRegion, overseas.Region)
		assert.Equal(t, "black", overseas.Color)
		assert.Equal(t, "Pointe-à-Pitre<br><b>Region:</b> Unknown Region", overseas.Popup)

		datasets.AssertExpectations(t)
	})

	t.Run("category uses facet membership", func(t *testing.T) {
		datasets := &MockDatasetRepository{}
		datasets.On("Stations", mock.Anything).Return(stationsTable(), nil)

		resp, err := newStationUseCase(datasets).GetStations(ctx, dto.StationsRequest{Category: "B"})

		require.NoError(t, err)
		assert.Equal(t, 2, resp.Total)
		meaning, _ := reference.CategoryMeaning("B")
		assert.Equal(t, meaning, resp.CategoryMeaning)
	})

	t.Run("category and region combine", func(t *testing.T) {
		datasets := &MockDatasetRepository{}
		datasets.On("Stations", mock.Anything).Return(stationsTable(), nil)

		resp, err := newStationUseCase(datasets).GetStations(ctx, dto.StationsRequest{Category: "B", Region: "Bretagne"})

		require.NoError(t, err)
		assert.Equal(t, 1, resp.Total)
		require.Len(t, resp.Markers, 1)
		assert.Equal(t, "Brest", resp.Markers[0].Name)
		assert.Equal(t, domain.StatusOK, resp.Status)
	})

	t.Run("no match", func(t *testing.T) {
		datasets := &MockDatasetRepository{}
		datasets.On("Stations", mock.Anything).Return(stationsTable(), nil)

		resp, err := newStationUseCase(datasets).GetStations(ctx, dto.StationsRequest{Category: "C", Region: "Bretagne"})

		require.NoError(t, err)
		assert.Zero(t, resp.Total)
		assert.Equal(t, domain.StatusEmpty, resp.Status)
		assert.True(t, resp.HasNotice(domain.NoticeNoMatch))
	})

	t.Run("unknown category is a configuration error", func(t *testing.T) {
		datasets := &MockDatasetRepository{}

		resp, err := newStationUseCase(datasets).GetStations(ctx, dto.StationsRequest{Category: "D"})

		assert.Nil(t, resp)
		assert.True(t, stderrors.Is(err, apperrors.ErrConfiguration))
		datasets.AssertNotCalled(t, "Stations", mock.Anything)
	})

	t.Run("unknown region is a configuration error", func(t *testing.T) {
		datasets := &MockDatasetRepository{}

		_, err := newStationUseCase(datasets).GetStations(ctx, dto.StationsRequest{Region: "Atlantis"})

		assert.True(t, stderrors.Is(err, apperrors.ErrConfiguration))
	})

	t.Run("missing dataset gives an empty view", func(t *testing.T) {
		datasets := &MockDatasetRepository{}
		datasets.On("Stations", mock.Anything).
			Return(nil, apperrors.ErrDatasetNotFound.WithDetails(map[string]interface{}{"path": "gares.csv"}))

		resp, err := newStationUseCase(datasets).GetStations(ctx, dto.StationsRequest{})

		require.NoError(t, err)
		assert.Equal(t, domain.StatusEmpty, resp.Status)
		assert.True(t, resp.HasNotice(domain.NoticeDatasetMissing))
		assert.Empty(t, resp.Markers)
		assert.NotEmpty(t, resp.Legend)
	})

	t.Run("unreadable dataset gives an empty view", func(t *testing.T) {
		datasets := &MockDatasetRepository{}
		datasets.On("Stations", mock.Anything).Return(nil, apperrors.ErrParseFailure)

		resp, err := newStationUseCase(datasets).GetStations(ctx, dto.StationsRequest{})

		require.NoError(t, err)
		assert.True(t, resp.HasNotice(domain.NoticeDatasetInvalid))
	})

	t.Run("other errors propagate", func(t *testing.T) {
		datasets := &MockDatasetRepository{}
		datasets.On("Stations", mock.Anything).Return(nil, context.Canceled)

		_, err := newStationUseCase(datasets).GetStations(ctx, dto.StationsRequest{})

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestStationUseCase_ViewCache(t *testing.T) {
	ctx := context.Background()
	key := "view:stations:All+categories|All+regions"

	t.Run("hit skips the dataset", func(t *testing.T) {
		datasets := &MockDatasetRepository{}
		cacheRepo := &MockCacheRepository{}
		cacheRepo.On("Get", mock.Anything, key).
			Return([]byte(`{"status":"ok","notices":[],"total":7}`), nil)

		uc := usecase.NewStationUseCase(datasets, cacheRepo, zap.NewNop(), time.Minute)
		resp, err := uc.GetStations(ctx, dto.StationsRequest{Category: "All categories"})

		require.NoError(t, err)
		assert.True(t, resp.Cached)
		assert.Equal(t, 7, resp.Total)
		datasets.AssertNotCalled(t, "Stations", mock.Anything)
	})

	t.Run("miss stores the view", func(t *testing.T) {
		datasets := &MockDatasetRepository{}
		datasets.On("Stations", mock.Anything).Return(stationsTable(), nil)
		cacheRepo := &MockCacheRepository{}
		cacheRepo.On("Get", mock.Anything, key).Return(nil, nil)
		cacheRepo.On("Set", mock.Anything, key, mock.Anything, time.Minute).Return(nil)

		uc := usecase.NewStationUseCase(datasets, cacheRepo, zap.NewNop(), time.Minute)
		resp, err := uc.GetStations(ctx, dto.StationsRequest{})

		require.NoError(t, err)
		assert.False(t, resp.Cached)
		cacheRepo.AssertExpectations(t)
	})

	t.Run("cache errors are ignored", func(t *testing.T) {
		datasets := &MockDatasetRepository{}
		datasets.On("Stations", mock.Anything).Return(stationsTable(), nil)
		cacheRepo := &MockCacheRepository{}
		cacheRepo.On("Get", mock.Anything, key).Return(nil, stderrors.New("connection refused"))
		cacheRepo.On("Set", mock.Anything, key, mock.Anything, time.Minute).Return(stderrors.New("connection refused"))

		uc := usecase.NewStationUseCase(datasets, cacheRepo, zap.NewNop(), time.Minute)
		resp, err := uc.GetStations(ctx, dto.StationsRequest{})

		require.NoError(t, err)
		assert.Equal(t, 4, resp.Total)
	})

	t.Run("corrupt entry is evicted and recomputed", func(t *testing.T) {
		datasets := &MockDatasetRepository{}
		datasets.On("Stations", mock.Anything).Return(stationsTable(), nil)
		cacheRepo := &MockCacheRepository{}
		cacheRepo.On("Get", mock.Anything, key).Return([]byte(`{"total":`), nil)
		cacheRepo.On("Delete", mock.Anything, key).Return(nil)
		cacheRepo.On("Set", mock.Anything, key, mock.Anything, time.Minute).Return(nil)

		uc := usecase.NewStationUseCase(datasets, cacheRepo, zap.NewNop(), time.Minute)
		resp, err := uc.GetStations(ctx, dto.StationsRequest{})

		require.NoError(t, err)
		assert.False(t, resp.Cached)
		assert.Equal(t, 4, resp.Total)
		cacheRepo.AssertExpectations(t)
	})

	t.Run("views without a dataset are not stored", func(t *testing.T) {
		datasets := &MockDatasetRepository{}
		datasets.On("Stations", mock.Anything).Return(nil, apperrors.ErrDatasetNotFound)
		cacheRepo := &MockCacheRepository{}
		cacheRepo.On("Get", mock.Anything, key).Return(nil, nil)

		uc := usecase.NewStationUseCase(datasets, cacheRepo, zap.NewNop(), time.Minute)
		_, err := uc.GetStations(ctx, dto.StationsRequest{})

		require.NoError(t, err)
		cacheRepo.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestStationUseCase_GetOptions(t *testing.T) {
	datasets := &MockDatasetRepository{}
	datasets.On("Stations", mock.Anything).Return(stationsTable(), nil)

	resp, err := newStationUseCase(datasets).GetOptions(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"All categories", "A", "B", "C"}, resp.Categories)
	assert.Equal(t, []string{"All regions", "Bretagne", reference.UnknownRegion, "Île-de-France"}, resp.Regions)
	assert.Len(t, resp.Meanings, 4)
}

func TestStationUseCase_MissingColumns(t *testing.T) {
	datasets := &MockDatasetRepository{}
	datasets.On("Stations", mock.Anything).
		Return(renameColumn(stationsTable(), "codeinsee", "code_insee"), nil)
	cacheRepo := &MockCacheRepository{}
	cacheRepo.On("Get", mock.Anything, mock.Anything).Return(nil, nil)

	uc := usecase.NewStationUseCase(datasets, cacheRepo, zap.NewNop(), time.Minute)
	resp, err := uc.GetStations(context.Background(), dto.StationsRequest{})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusEmpty, resp.Status)
	assert.True(t, resp.HasNotice(domain.NoticeMissingColumns))
	assert.Zero(t, resp.Total)
	assert.Empty(t, resp.Markers)
	assert.Empty(t, resp.RegionCounts)
	cacheRepo.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
