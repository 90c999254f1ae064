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
	"github.com/track-analytics/internal/repository/cache"
	"github.com/track-analytics/internal/usecase"
	"github.com/track-analytics/internal/usecase/dto"
)

func regularityTable() *domain.Table {
	return domain.NewTable("regularite.csv",
		[]string{
			"date", "gare_depart", "gare_arrivee", "retard_moyen_arrivee",
			"nb_annulation", "nb_train_depart_retard", "nb_train_retard_arrivee",
			"prct_cause_externe", "prct_cause_infra", "prct_cause_gestion_trafic",
			"prct_cause_materiel_roulant", "prct_cause_gestion_gare", "prct_cause_prise_en_charge_voyageurs",
		},
		[][]string{
			{"2019-02", "PARIS LYON", "MARSEILLE ST CHARLES", "6", "2", "10", "30", "20", "20", "20", "20", "10", "10"},
			{"2018-01", "PARIS LYON", "MARSEILLE ST CHARLES", "4", "1", "5", "12", "40", "10", "10", "20", "10", "10"},
			{"2018-01", "LILLE", "NANTES", "8", "0", "", "3", "", "", "", "", "", ""},
			{"not a date", "LILLE", "NANTES", "100", "50", "0", "0", "", "", "", "", "", ""},
			{"2019-02", "RENNES", "PARIS MONTPARNASSE", "", "0", "1", "1", "", "", "", "", "", ""},
		},
	)
}

func newRegularityUseCase(datasets *MockDatasetRepository) *usecase.RegularityUseCase {
	return usecase.NewRegularityUseCase(datasets, cache.NewNoopRepository(), zap.NewNop(), time.Minute)
}

func TestRegularityUseCase_GetMonthlyDelays(t *testing.T) {
	datasets := &MockDatasetRepository{}
	datasets.On("Regularity", mock.Anything).Return(regularityTable(), nil)

	resp, err := newRegularityUseCase(datasets).GetMonthlyDelays(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []dto.MonthlyDelay{
		{Month: "2018-01", AvgDelay: 6},
		{Month: "2019-02", AvgDelay: 6},
	}, resp.Points)
	assert.True(t, resp.HasNotice(domain.NoticeInvalidDate))
	assert.Equal(t, domain.StatusPartial, resp.Status)
}

func TestRegularityUseCase_GetTopIncidents(t *testing.T) {
	datasets := &MockDatasetRepository{}
	datasets.On("Regularity", mock.Anything).Return(regularityTable(), nil)

	resp, err := newRegularityUseCase(datasets).GetTopIncidents(context.Background(), dto.LimitRequest{Limit: 2})

	require.NoError(t, err)
	require.Len(t, resp.Routes, 2)

	assert.Equal(t, dto.RouteIncidents{
		Origin:         "PARIS LYON",
		Destination:    "MARSEILLE ST CHARLES",
		Cancellations:  3,
		LateDepartures: 15,
		LateArrivals:   42,
		Total:          60,
	}, resp.Routes[0])

	// missing counts add nothing to the sums
	assert.Equal(t, "LILLE", resp.Routes[1].Origin)
	assert.Equal(t, 53.0, resp.Routes[1].Total)
}

func TestRegularityUseCase_GetCauses(t *testing.T) {
	datasets := &MockDatasetRepository{}
	datasets.On("Regularity", mock.Anything).Return(regularityTable(), nil)

	resp, err := newRegularityUseCase(datasets).GetCauses(context.Background())

	require.NoError(t, err)
	require.Len(t, resp.Causes, domain.CauseCount)
	assert.Equal(t, "Externe", resp.Causes[0].Label)
	require.NotNil(t, resp.Causes[0].Percentage)
	assert.Equal(t, 30.0, *resp.Causes[0].Percentage)
	assert.Equal(t, "Prise en charge voyageurs", resp.Causes[5].Label)
	assert.Equal(t, 10.0, *resp.Causes[5].Percentage)
}

func TestCauseLabel(t *testing.T) {
	assert.Equal(t, "Gestion gare", usecase.CauseLabel("prct_cause_gestion_gare"))
	assert.Equal(t, "Materiel roulant", usecase.CauseLabel("prct_cause_materiel_roulant"))
	assert.Equal(t, "Infra", usecase.CauseLabel("prct_cause_infra"))
	assert.Equal(t, "", usecase.CauseLabel("prct_cause_"))
}

func TestRegularityUseCase_MissingColumns(t *testing.T) {
	ctx := context.Background()

	t.Run("core column", func(t *testing.T) {
		datasets := &MockDatasetRepository{}
		datasets.On("Regularity", mock.Anything).
			Return(renameColumn(regularityTable(), "retard_moyen_arrivee", "retard_moyen"), nil)

		resp, err := newRegularityUseCase(datasets).GetMonthlyDelays(ctx)

		require.NoError(t, err)
		assert.Empty(t, resp.Points)
		assert.Equal(t, domain.StatusEmpty, resp.Status)
		assert.True(t, resp.HasNotice(domain.NoticeMissingColumns))
	})

	t.Run("cause column only fails the causes view", func(t *testing.T) {
		table := renameColumn(regularityTable(), "prct_cause_infra", "prct_infra")
		datasets := &MockDatasetRepository{}
		datasets.On("Regularity", mock.Anything).Return(table, nil)
		uc := newRegularityUseCase(datasets)

		causes, err := uc.GetCauses(ctx)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusEmpty, causes.Status)
		assert.True(t, causes.HasNotice(domain.NoticeMissingColumns))

		incidents, err := uc.GetTopIncidents(ctx, dto.LimitRequest{})
		require.NoError(t, err)
		assert.NotEmpty(t, incidents.Routes)
		assert.False(t, incidents.HasNotice(domain.NoticeMissingColumns))
	})
}
