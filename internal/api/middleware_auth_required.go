package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/pactum-app/pactum/internal/models"
)

func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	user, err := handler.authenticateRequest(c)
	if err != nil {
		if strings.HasPrefix(c.Path(), "/api/") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
		}
		return redirectToPath(c, loginPathWithNext(c.OriginalURL()))
	}

	c.Locals(contextUserKey, user)
	if user.MustChangePassword && !isPasswordChangePath(c.Path()) {
		if strings.HasPrefix(c.Path(), "/api/") {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "password change required"})
		}
		return redirectToPath(c, "/change-password")
	}

	return c.Next()
}

func (handler *Handler) AdminOnly(c *fiber.Ctx) error {
	user := currentUser(c)
	if user == nil || user.Role != models.RoleAdmin {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "admin role required"})
	}
	return c.Next()
}

func currentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(contextUserKey).(*models.User)
	return user
}

func isPasswordChangePath(path string) bool {
	cleanPath := strings.TrimSpace(path)
	return cleanPath == "/change-password" ||
		cleanPath == "/api/auth/change-password" ||
		cleanPath == "/api/auth/logout"
}
