package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/track-analytics/internal/pkg/utils"
	"github.com/track-analytics/internal/usecase"
	"github.com/track-analytics/internal/usecase/dto"
)

// FrequentationHandler - обработчик страницы пассажиропотока
type FrequentationHandler struct {
	frequentationUC *usecase.FrequentationUseCase
	logger          *zap.Logger
}

// NewFrequentationHandler - создание нового FrequentationHandler
func NewFrequentationHandler(frequentationUC *usecase.FrequentationUseCase, logger *zap.Logger) *FrequentationHandler {
	return &FrequentationHandler{
		frequentationUC: frequentationUC,
		logger:          logger,
	}
}

// GetTop godoc
// @Summary Most frequented stations
// @Description Возвращает самые посещаемые станции за год (по умолчанию последний) с учётом категории
// @Tags Frequentation
// @Produce json
// @Param category query string false "Категория станции: A, B, C или All categories"
// @Param year query string false "Год 2015-2023"
// @Param limit query int false "Количество станций (1-100, по умолчанию 10)"
// @Success 200 {object} utils.SuccessResponse{data=dto.FrequentationTopResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/frequentation/top [get]
func (h *FrequentationHandler) GetTop(c *fiber.Ctx) error {
	var req dto.FrequentationTopRequest
	if err := parseQuery(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	resp, err := h.frequentationUC.GetTop(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	meta := viewMeta(resp.ViewInfo, len(resp.Stations))
	meta.Limit = dto.LimitOrDefault(req.Limit)
	return utils.SendSuccess(c, resp, meta)
}

// Compare godoc
// @Summary Compare stations across years
// @Description Сравнивает пассажиропоток выбранных станций по выбранным годам; порядок годов сохраняется.
// @Description Без stations сравниваются 10 самых посещаемых станций за year
// @Tags Frequentation
// @Produce json
// @Param category query string false "Категория станции"
// @Param year query string false "Год топа станций по умолчанию (2015-2023, по умолчанию последний)"
// @Param years query []string false "Годы для сравнения" collectionFormat(multi)
// @Param stations query []string false "Названия станций" collectionFormat(multi)
// @Success 200 {object} utils.SuccessResponse{data=dto.FrequentationCompareResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/frequentation/compare [get]
func (h *FrequentationHandler) Compare(c *fiber.Ctx) error {
	var req dto.FrequentationCompareRequest
	if err := parseQuery(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	resp, err := h.frequentationUC.Compare(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, resp, viewMeta(resp.ViewInfo, len(resp.Entries)))
}

// GetStations godoc
// @Summary Frequentation station options
// @Description Возвращает названия станций категории для выбора в сравнении и динамике
// @Tags Frequentation
// @Produce json
// @Param category query string false "Категория станции"
// @Success 200 {object} utils.SuccessResponse{data=dto.FrequentationStationsResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/frequentation/stations [get]
func (h *FrequentationHandler) GetStations(c *fiber.Ctx) error {
	var req dto.FrequentationStationsRequest
	if err := parseQuery(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	resp, err := h.frequentationUC.GetStations(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, resp, viewMeta(resp.ViewInfo, len(resp.Stations)))
}

// GetTrend godoc
// @Summary Yearly trend of one station
// @Description Возвращает пассажиропоток станции по годам в хронологическом порядке
// @Tags Frequentation
// @Produce json
// @Param category query string false "Категория станции"
// @Param station query string true "Название станции"
// @Success 200 {object} utils.SuccessResponse{data=dto.FrequentationTrendResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/frequentation/trend [get]
func (h *FrequentationHandler) GetTrend(c *fiber.Ctx) error {
	var req dto.FrequentationTrendRequest
	if err := parseQuery(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	resp, err := h.frequentationUC.GetTrend(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, resp, viewMeta(resp.ViewInfo, len(resp.Points)))
}
