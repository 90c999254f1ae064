package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/track-analytics/internal/pkg/errors"
	"github.com/track-analytics/internal/pkg/utils"
	"github.com/track-analytics/internal/pkg/validator"
	"github.com/track-analytics/internal/usecase/dto"
)

// parseQuery - разбор и валидация query-параметров в DTO
func parseQuery(c *fiber.Ctx, req interface{}) error {
	if err := c.QueryParser(req); err != nil {
		return errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"query": err.Error(),
		})
	}
	return validator.Validate(req)
}

// viewMeta - мета-данные ответа для представления
func viewMeta(info dto.ViewInfo, total int) *utils.Meta {
	return &utils.Meta{
		Total:  total,
		Status: string(info.Status),
		Cached: info.Cached,
	}
}
