package api

import (
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/pactum-app/pactum/internal/models"
	"github.com/pactum-app/pactum/internal/security"
)

func postLoginRedirectPath(user *models.User) string {
	if user != nil && user.MustChangePassword {
		return "/change-password"
	}
	return security.DefaultRedirectPath
}

// loginPathWithNext encodes the originally requested URL so the login flow
// can send the user back after authenticating. The stored value is never
// trusted raw; it goes back through the redirect resolver at login time.
func loginPathWithNext(target string) string {
	trimmed := strings.TrimSpace(target)
	if trimmed == "" || trimmed == "/" {
		return "/login"
	}

	values := url.Values{}
	values.Set("next", trimmed)
	return "/login?" + values.Encode()
}

// requestedNext pulls the post-login destination candidate from the request.
// The form field wins so the SPA can echo the query value it arrived with.
func requestedNext(c *fiber.Ctx) string {
	if next := strings.TrimSpace(c.FormValue("next")); next != "" {
		return next
	}
	return strings.TrimSpace(c.Query("next"))
}
