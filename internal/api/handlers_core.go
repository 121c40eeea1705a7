package api

import "github.com/gofiber/fiber/v2"

// appShell is the minimal document the SPA boots from; all real view
// composition happens client-side.
const appShell = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>Pactum</title>
  <link rel="stylesheet" href="/static/app.css">
</head>
<body>
  <div id="app"></div>
  <script src="/static/app.js" defer></script>
</body>
</html>
`

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (handler *Handler) ShowApp(c *fiber.Ctx) error {
	c.Type("html", "utf-8")
	return c.SendString(appShell)
}
