package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/kape-pos-api/internal/application/dto"
)

// internalError registra el detalle del fallo en el log del servidor y
// responde un mensaje genérico: el texto crudo del error nunca llega al
// cliente.
func internalError(c *fiber.Ctx, op string, err error) error {
	log.Error().Err(err).Str("op", op).Str("path", c.Path()).Msg("fallo inesperado")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Internal server error"})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: msg})
}

func notFound(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: msg})
}
