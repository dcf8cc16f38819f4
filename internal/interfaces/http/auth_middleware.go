package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/smarthr-api/internal/application/dto"
	"github.com/jhoicas/smarthr-api/pkg/jwt"
)

// Locals keys para EmpID y AccountType en Fiber.
const (
	LocalEmpID       = "emp_id"
	LocalAccountType = "account_type"
)

// AuthMiddleware valida el Bearer Token JWT y extrae EmpID y AccountType a c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		empID, accountType, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalEmpID, empID)
		c.Locals(LocalAccountType, accountType)
		return c.Next()
	}
}

// RequireRole autoriza solo a cuentas cuyo tipo esté en allowed.
// Debe montarse después de AuthMiddleware.
func RequireRole(allowed ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetAccountType(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "el token no incluye tipo de cuenta"})
		}
		for _, a := range allowed {
			if role == a {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado para el tipo de cuenta"})
	}
}

// GetEmpID devuelve el EmpID del contexto (después del middleware de auth).
func GetEmpID(c *fiber.Ctx) string {
	v := c.Locals(LocalEmpID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetAccountType devuelve el tipo de cuenta del contexto (después del middleware de auth).
func GetAccountType(c *fiber.Ctx) string {
	v := c.Locals(LocalAccountType)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
