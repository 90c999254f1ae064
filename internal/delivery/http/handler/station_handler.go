package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/track-analytics/internal/pkg/utils"
	"github.com/track-analytics/internal/usecase"
	"github.com/track-analytics/internal/usecase/dto"
)

// StationHandler обрабатывает запросы страницы станций
type StationHandler struct {
	stationUC *usecase.StationUseCase
	logger    *zap.Logger
}

// NewStationHandler создает новый экземпляр StationHandler
func NewStationHandler(stationUC *usecase.StationUseCase, logger *zap.Logger) *StationHandler {
	return &StationHandler{
		stationUC: stationUC,
		logger:    logger,
	}
}

// GetStations godoc
// @Summary Stations by region and map markers
// @Description Возвращает число станций по регионам, маркеры карты и легенду цветов для выбранной категории и региона
// @Tags Stations
// @Produce json
// @Param category query string false "Категория станции: A, B, C или All categories"
// @Param region query string false "Регион или All regions"
// @Success 200 {object} utils.SuccessResponse{data=dto.StationsResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/stations [get]
func (h *StationHandler) GetStations(c *fiber.Ctx) error {
	var req dto.StationsRequest
	if err := parseQuery(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	resp, err := h.stationUC.GetStations(c.Context(), req)
	if err != nil {
		h.logger.Warn("Failed to build stations view", zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, resp, viewMeta(resp.ViewInfo, resp.Total))
}

// GetOptions godoc
// @Summary Station filter options
// @Description Возвращает категории и регионы, встречающиеся в данных, и описание категорий
// @Tags Stations
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.StationOptionsResponse}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/stations/options [get]
func (h *StationHandler) GetOptions(c *fiber.Ctx) error {
	resp, err := h.stationUC.GetOptions(c.Context())
	if err != nil {
		h.logger.Error("Failed to build station options", zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, resp, viewMeta(resp.ViewInfo, 0))
}
