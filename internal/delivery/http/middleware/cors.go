package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// CORS - middleware для Cross-Origin Resource Sharing.
// API только читает данные: разрешены GET и OPTIONS, клиенту виден request id.
// Пустой список origins разрешает всех.
func CORS(origins []string) fiber.Handler {
	allow := strings.Join(origins, ",")
	if allow == "" {
		allow = "*"
	}

	return cors.New(cors.Config{
		AllowOrigins:  allow,
		AllowMethods:  strings.Join([]string{fiber.MethodGet, fiber.MethodOptions}, ","),
		AllowHeaders:  "Content-Type,Accept," + RequestIDHeader,
		ExposeHeaders: RequestIDHeader,
		MaxAge:        3600,
	})
}
