package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/track-analytics/internal/pkg/utils"
	"github.com/track-analytics/internal/usecase"
	"github.com/track-analytics/internal/usecase/dto"
)

// RegularityHandler - обработчик страницы пунктуальности
type RegularityHandler struct {
	regularityUC *usecase.RegularityUseCase
	logger       *zap.Logger
}

// NewRegularityHandler - создание нового RegularityHandler
func NewRegularityHandler(regularityUC *usecase.RegularityUseCase, logger *zap.Logger) *RegularityHandler {
	return &RegularityHandler{
		regularityUC: regularityUC,
		logger:       logger,
	}
}

// GetMonthlyDelays godoc
// @Summary Average arrival delay per month
// @Description Возвращает среднюю задержку прибытия по месяцам в хронологическом порядке
// @Tags Regularity
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.MonthlyDelaysResponse}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/regularity/monthly-delays [get]
func (h *RegularityHandler) GetMonthlyDelays(c *fiber.Ctx) error {
	resp, err := h.regularityUC.GetMonthlyDelays(c.Context())
	if err != nil {
		h.logger.Error("Failed to build monthly delays", zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, resp, viewMeta(resp.ViewInfo, len(resp.Points)))
}

// GetTopIncidents godoc
// @Summary Routes with the most incidents
// @Description Возвращает маршруты с наибольшей суммой отмен, задержек отправления и прибытия
// @Tags Regularity
// @Produce json
// @Param limit query int false "Количество маршрутов (1-100, по умолчанию 10)"
// @Success 200 {object} utils.SuccessResponse{data=dto.TopIncidentsResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/regularity/top-incidents [get]
func (h *RegularityHandler) GetTopIncidents(c *fiber.Ctx) error {
	var req dto.LimitRequest
	if err := parseQuery(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	resp, err := h.regularityUC.GetTopIncidents(c.Context(), req)
	if err != nil {
		h.logger.Error("Failed to build top incidents", zap.Error(err))
		return utils.SendError(c, err)
	}

	meta := viewMeta(resp.ViewInfo, len(resp.Routes))
	meta.Limit = dto.LimitOrDefault(req.Limit)
	return utils.SendSuccess(c, resp, meta)
}

// GetCauses godoc
// @Summary Average causes of delays
// @Description Возвращает средний процент каждой причины задержек с подписями для диаграммы
// @Tags Regularity
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.CausesResponse}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/regularity/causes [get]
func (h *RegularityHandler) GetCauses(c *fiber.Ctx) error {
	resp, err := h.regularityUC.GetCauses(c.Context())
	if err != nil {
		h.logger.Error("Failed to build causes", zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, resp, viewMeta(resp.ViewInfo, len(resp.Causes)))
}
