package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) DashboardSummary(c *fiber.Ctx) error {
	user := currentUser(c)
	if user == nil {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	summary, err := handler.contractService.BuildDashboardSummary(user.ID, time.Now().In(handler.location))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build summary")
	}
	return c.JSON(summary)
}
