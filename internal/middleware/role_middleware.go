package middleware

import (
	"sirup-monitor/internal/model"

	"github.com/gofiber/fiber/v2"
)

// Role hanya meloloskan role yang terdaftar. Dipasang setelah Auth.
func Role(allowedRoles ...model.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userRole, ok := c.Locals("role").(string)
		if !ok {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Akses ditolak: Role tidak valid"})
		}

		for _, role := range allowedRoles {
			if string(role) == userRole {
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Akses ditolak: menu ini tidak tersedia untuk role Anda"})
	}
}
