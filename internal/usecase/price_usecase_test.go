package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/track-analytics/internal/domain"
	apperrors "github.com/track-analytics/internal/pkg/errors"
	"github.com/track-analytics/internal/repository/cache"
	"github.com/track-analytics/internal/usecase"
	"github.com/track-analytics/internal/usecase/dto"
)

func pricesTable() *domain.Table {
	return domain.NewTable("tarifs.csv",
		[]string{"Transporteur", "Gare origine", "Destination", "Profil tarifaire", "Prix minimum", "Prix maximum"},
		[][]string{
			{"TGV INOUI", "LYON PART DIEU", "PARIS GARE DE LYON", "Tarif Normal", "50", "120"},
			{"OUIGO", "LYON PART DIEU", "PARIS GARE DE LYON", "Tarif Normal", "19", "89"},
			{"TGV INOUI", "PARIS GARE DE LYON", "NICE VILLE", "Tarif Normal", "60", "180"},
			{"TGV INOUI", "BREST", "QUIMPER", "Tarif Normal", "10", "250"},
			{"OUIGO", "BORDEAUX ST JEAN", "TOULOUSE MATABIAU", "Tarif Normal", "15", "n/a"},
		},
	)
}

func newPriceUseCase(datasets *MockDatasetRepository) *usecase.PriceUseCase {
	return usecase.NewPriceUseCase(datasets, cache.NewNoopRepository(), zap.NewNop(), time.Minute)
}

func TestPriceUseCase_GetStations(t *testing.T) {
	datasets := &MockDatasetRepository{}
	datasets.On("Prices", mock.Anything).Return(pricesTable(), nil)

	resp, err := newPriceUseCase(datasets).GetStations(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"LYON PART DIEU", "PARIS GARE DE LYON", "BREST", "BORDEAUX ST JEAN"}, resp.Origins)
	assert.Equal(t, []string{"PARIS GARE DE LYON", "NICE VILLE", "QUIMPER", "TOULOUSE MATABIAU"}, resp.Destinations)
}

func TestPriceUseCase_GetRoute(t *testing.T) {
	ctx := context.Background()

	t.Run("route with reference distance", func(t *testing.T) {
		datasets := &MockDatasetRepository{}
		datasets.On("Prices", mock.Anything).Return(pricesTable(), nil)

		resp, err := newPriceUseCase(datasets).GetRoute(ctx, dto.PriceRouteRequest{
			Origin:      "LYON PART DIEU",
			Destination: "PARIS GARE DE LYON",
		})

		require.NoError(t, err)
		require.Len(t, resp.Quotes, 2)
		q := resp.Quotes[0]
		require.NotNil(t, q.DistanceKm)
		assert.Equal(t, 465.0, *q.DistanceKm)
		assert.InDelta(t, 0.1075, *q.CostPerKmMin, 0.0001)
		assert.InDelta(t, 0.258, *q.CostPerKmMax, 0.0001)
		assert.Equal(t, domain.StatusOK, resp.Status)
	})

	t.Run("route without reference distance", func(t *testing.T) {
		datasets := &MockDatasetRepository{}
		datasets.On("Prices", mock.Anything).Return(pricesTable(), nil)

		resp, err := newPriceUseCase(datasets).GetRoute(ctx, dto.PriceRouteRequest{Origin: "BREST", Destination: "QUIMPER"})

		require.NoError(t, err)
		require.Len(t, resp.Quotes, 1)
		assert.Nil(t, resp.Quotes[0].DistanceKm)
		assert.Nil(t, resp.Quotes[0].CostPerKmMin)
		assert.True(t, resp.HasNotice(domain.NoticeMissingDistance))
	})

	t.Run("direction matters", func(t *testing.T) {
		datasets := &MockDatasetRepository{}
		datasets.On("Prices", mock.Anything).Return(pricesTable(), nil)

		resp, err := newPriceUseCase(datasets).GetRoute(ctx, dto.PriceRouteRequest{
			Origin:      "PARIS GARE DE LYON",
			Destination: "LYON PART DIEU",
		})

		require.NoError(t, err)
		assert.Empty(t, resp.Quotes)
		assert.Equal(t, domain.StatusEmpty, resp.Status)
		assert.True(t, resp.HasNotice(domain.NoticeNoMatch))
	})
}

func TestPriceUseCase_GetMostExpensive(t *testing.T) {
	datasets := &MockDatasetRepository{}
	datasets.On("Prices", mock.Anything).Return(pricesTable(), nil)

	resp, err := newPriceUseCase(datasets).GetMostExpensive(context.Background(), dto.LimitRequest{Limit: 2})

	require.NoError(t, err)
	// BREST -> QUIMPER is the priciest fare but has no reference distance
	require.Len(t, resp.Routes, 2)
	assert.Equal(t, "NICE VILLE", resp.Routes[0].Destination)
	assert.Equal(t, 120.0, *resp.Routes[1].MaxPrice)
	assert.True(t, resp.HasNotice(domain.NoticeMissingDistance))
	assert.Equal(t, domain.StatusPartial, resp.Status)
}

func TestPriceUseCase_Compare(t *testing.T) {
	datasets := &MockDatasetRepository{}
	datasets.On("Prices", mock.Anything).Return(pricesTable(), nil)

	resp, err := newPriceUseCase(datasets).Compare(context.Background(), dto.PriceCompareRequest{
		Origin1:      "LYON PART DIEU",
		Destination1: "PARIS GARE DE LYON",
		Origin2:      "BREST",
		Destination2: "QUIMPER",
	})

	require.NoError(t, err)
	require.Len(t, resp.Routes, 2)

	first := resp.Routes[0]
	assert.True(t, first.Found)
	assert.Equal(t, 465.0, *first.DistanceKm)
	assert.InDelta(t, 0.1075, *first.CostPerKmMin, 0.0001)

	second := resp.Routes[1]
	assert.False(t, second.Found)
	assert.Nil(t, second.DistanceKm)
	assert.True(t, resp.HasNotice(domain.NoticeNoMatch))
}

func TestPriceUseCase_MissingDataset(t *testing.T) {
	datasets := &MockDatasetRepository{}
	datasets.On("Prices", mock.Anything).Return(nil, apperrors.ErrDatasetNotFound)

	resp, err := newPriceUseCase(datasets).Compare(context.Background(), dto.PriceCompareRequest{
		Origin1: "A", Destination1: "B", Origin2: "C", Destination2: "D",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusEmpty, resp.Status)
	assert.True(t, resp.HasNotice(domain.NoticeDatasetMissing))
	assert.False(t, resp.HasNotice(domain.NoticeNoMatch))
}

func TestPriceUseCase_MissingColumns(t *testing.T) {
	datasets := &MockDatasetRepository{}
	datasets.On("Prices", mock.Anything).
		Return(renameColumn(pricesTable(), "Prix maximum", "Prix max"), nil)
	cacheRepo := &MockCacheRepository{}
	cacheRepo.On("Get", mock.Anything, mock.Anything).Return(nil, nil)

	uc := usecase.NewPriceUseCase(datasets, cacheRepo, zap.NewNop(), time.Minute)
	resp, err := uc.GetMostExpensive(context.Background(), dto.LimitRequest{})

	require.NoError(t, err)
	assert.Empty(t, resp.Routes)
	assert.Equal(t, domain.StatusEmpty, resp.Status)
	require.True(t, resp.HasNotice(domain.NoticeMissingColumns))
	assert.Equal(t, "Data file is missing columns: Prix maximum.", resp.Notices[0].Message)
	cacheRepo.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
