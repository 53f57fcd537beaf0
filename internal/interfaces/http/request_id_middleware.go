package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Local key para el Request ID en Fiber.
const LocalRequestID = "request_id"

// HeaderRequestID cabecera con el identificador de la petición.
const HeaderRequestID = "X-Request-ID"

// RequestIDMiddleware asigna un identificador único a cada petición.
// Si el cliente ya envía X-Request-ID se respeta; si no, se genera uno.
func RequestIDMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Locals(LocalRequestID, requestID)
		c.Set(HeaderRequestID, requestID)
		return c.Next()
	}
}

// GetRequestID devuelve el Request ID del contexto.
func GetRequestID(c *fiber.Ctx) string {
	v := c.Locals(LocalRequestID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
