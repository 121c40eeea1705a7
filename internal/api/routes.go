package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	registerPageRoutes(app, handler)
	registerAPIRoutes(app, handler)
}

func registerPageRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/favicon.ico", sendNoContent)

	app.Get("/login", handler.ShowApp)
	app.Get("/register", handler.ShowApp)
	app.Get("/share/:token", handler.GetSharedContract)

	app.Get("/", handler.AuthRequired, handler.ShowApp)
	app.Get("/dashboard", handler.AuthRequired, handler.ShowApp)
	app.Get("/contracts", handler.AuthRequired, handler.ShowApp)
	app.Get("/contracts/:id", handler.AuthRequired, handler.ShowApp)
	app.Get("/change-password", handler.AuthRequired, handler.ShowApp)
}

func registerAPIRoutes(app *fiber.App, handler *Handler) {
	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)
	auth.Post("/change-password", handler.AuthRequired, handler.ChangePassword)

	contracts := api.Group("/contracts", handler.AuthRequired)
	contracts.Get("", handler.ListContracts)
	contracts.Post("", handler.AdminOnly, handler.CreateContract)
	contracts.Get("/:id", handler.GetContract)
	contracts.Put("/:id", handler.AdminOnly, handler.UpdateContract)
	contracts.Delete("/:id", handler.AdminOnly, handler.DeleteContract)
	contracts.Post("/:id/share", handler.AdminOnly, handler.ShareContract)

	dashboard := api.Group("/dashboard", handler.AuthRequired)
	dashboard.Get("/summary", handler.DashboardSummary)
}

func sendNoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}
