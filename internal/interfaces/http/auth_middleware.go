package http

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/kape-pos-api/internal/application/dto"
	"github.com/jhoicas/kape-pos-api/internal/domain"
	"github.com/jhoicas/kape-pos-api/pkg/jwt"
)

// Local key para el UserID en Fiber.
const LocalUserID = "user_id"

// AuthMiddleware valida el Bearer Token JWT y deja el UserID en c.Locals.
// El token solo trae el id; el rol se consulta fresco en cada operación
// privilegiada (ver RequireRole).
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Missing Authorization header"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Invalid Authorization header"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Missing Authorization header"})
		}
		userID, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Invalid or expired token"})
		}
		c.Locals(LocalUserID, userID)
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) int64 {
	v := c.Locals(LocalUserID)
	if v == nil {
		return 0
	}
	id, _ := v.(int64)
	return id
}

// roleChecker es el contrato mínimo que necesita el gate de autorización.
// Lo implementa *postgres.UserRepo; la interfaz evita acoplar el middleware al repo.
type roleChecker interface {
	GetRoleByID(ctx context.Context, id int64) (string, error)
}

// RequireRole devuelve un middleware Fiber que permite la operación solo si el
// rol ACTUAL de la cuenta (leído de la DB, no del token) está en allowedRoles.
// Debe usarse DESPUÉS de AuthMiddleware. La comparación es case-insensitive.
//
// Comportamiento:
//   - 404 Not Found → la cuenta del token ya no existe.
//   - 403 Forbidden → rol fuera de la lista.
//
// Leer el rol por request hace que una degradación aplique de inmediato, sin
// esperar a que expire el token.
func RequireRole(checker roleChecker, allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := GetUserID(c)
		if userID == 0 {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Missing Authorization header"})
		}

		role, err := checker.GetRoleByID(c.Context(), userID)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "User not found"})
			}
			log.Error().Err(err).Int64("user_id", userID).Msg("verificación de rol")
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Internal server error"})
		}

		for _, allowed := range allowedRoles {
			if strings.EqualFold(role, allowed) {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: "Unauthorized"})
	}
}
