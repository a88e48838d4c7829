package handlers

import (
	applog "brushworks/internal/log"
	"brushworks/internal/services"

	"github.com/gofiber/fiber/v2"
)

// RequireAdmin is the session gate for dashboard routes: unauthenticated
// requests are sent to the login form, non-admin sessions are refused.
func RequireAdmin(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies("sid")
		if sid == "" {
			return c.Redirect("/admin/login")
		}
		u, err := auth.CurrentUser(sid)
		if err != nil || u == nil || u.Role != "ADMIN" {
			applog.Security(c, "access.denied.admin", map[string]any{"sid": sid})
			return c.Redirect("/admin/login")
		}
		c.Locals("user", u)
		return c.Next()
	}
}
