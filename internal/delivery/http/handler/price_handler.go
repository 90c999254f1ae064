package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/track-analytics/internal/pkg/utils"
	"github.com/track-analytics/internal/usecase"
	"github.com/track-analytics/internal/usecase/dto"
)

// PriceHandler - обработчик страницы тарифов
type PriceHandler struct {
	priceUC *usecase.PriceUseCase
	logger  *zap.Logger
}

// NewPriceHandler - создание нового PriceHandler
func NewPriceHandler(priceUC *usecase.PriceUseCase, logger *zap.Logger) *PriceHandler {
	return &PriceHandler{
		priceUC: priceUC,
		logger:  logger,
	}
}

// GetStations godoc
// @Summary Fare stations
// @Description Возвращает станции отправления и прибытия из файла тарифов
// @Tags Prices
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.PriceStationsResponse}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/prices/stations [get]
func (h *PriceHandler) GetStations(c *fiber.Ctx) error {
	resp, err := h.priceUC.GetStations(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, resp, viewMeta(resp.ViewInfo, len(resp.Origins)))
}

// GetRoute godoc
// @Summary Fares of one route
// @Description Возвращает все тарифы маршрута с дистанцией и ценой за километр, если дистанция известна
// @Tags Prices
// @Produce json
// @Param origin query string true "Станция отправления"
// @Param destination query string true "Станция прибытия"
// @Success 200 {object} utils.SuccessResponse{data=dto.PriceRouteResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/prices/route [get]
func (h *PriceHandler) GetRoute(c *fiber.Ctx) error {
	var req dto.PriceRouteRequest
	if err := parseQuery(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	resp, err := h.priceUC.GetRoute(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, resp, viewMeta(resp.ViewInfo, len(resp.Quotes)))
}

// GetMostExpensive godoc
// @Summary Most expensive routes
// @Description Возвращает маршруты с наибольшей максимальной ценой среди маршрутов с известной дистанцией
// @Tags Prices
// @Produce json
// @Param limit query int false "Количество маршрутов (1-100, по умолчанию 10)"
// @Success 200 {object} utils.SuccessResponse{data=dto.MostExpensiveResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/prices/most-expensive [get]
func (h *PriceHandler) GetMostExpensive(c *fiber.Ctx) error {
	var req dto.LimitRequest
	if err := parseQuery(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	resp, err := h.priceUC.GetMostExpensive(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	meta := viewMeta(resp.ViewInfo, len(resp.Routes))
	meta.Limit = dto.LimitOrDefault(req.Limit)
	return utils.SendSuccess(c, resp, meta)
}

// Compare godoc
// @Summary Compare two routes by cost per kilometer
// @Description Сравнивает цену за километр двух маршрутов; для маршрута без данных found=false
// @Tags Prices
// @Produce json
// @Param origin1 query string true "Отправление маршрута 1"
// @Param destination1 query string true "Прибытие маршрута 1"
// @Param origin2 query string true "Отправление маршрута 2"
// @Param destination2 query string true "Прибытие маршрута 2"
// @Success 200 {object} utils.SuccessResponse{data=dto.PriceCompareResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/prices/compare [get]
func (h *PriceHandler) Compare(c *fiber.Ctx) error {
	var req dto.PriceCompareRequest
	if err := parseQuery(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	resp, err := h.priceUC.Compare(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, resp, viewMeta(resp.ViewInfo, len(resp.Routes)))
}
