package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/track-analytics/internal/pkg/utils"
	"github.com/track-analytics/internal/usecase"
)

// LineHandler обрабатывает запросы страницы линий
type LineHandler struct {
	lineUC *usecase.LineUseCase
	logger *zap.Logger
}

// NewLineHandler создает новый экземпляр LineHandler
func NewLineHandler(lineUC *usecase.LineUseCase, logger *zap.Logger) *LineHandler {
	return &LineHandler{
		lineUC: lineUC,
		logger: logger,
	}
}

// GetLines godoc
// @Summary Railway lines
// @Description Возвращает слои GeoJSON по категориям линий с производными свойствами longueur, color и path_length_km, а также общую длину
// @Tags Lines
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.LinesResponse}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/lines [get]
func (h *LineHandler) GetLines(c *fiber.Ctx) error {
	h.logger.Debug("Handling get lines request")

	resp, err := h.lineUC.GetLines(c.Context())
	if err != nil {
		h.logger.Error("Failed to build lines view", zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, resp, viewMeta(resp.ViewInfo, resp.TotalFeatures))
}
