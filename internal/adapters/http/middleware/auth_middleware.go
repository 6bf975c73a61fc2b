package middleware

import (
	"log"

	"pharmastock/internal/adapters/persistence/models"
	"pharmastock/internal/pkg/response"
	"pharmastock/internal/pkg/session"

	"github.com/gofiber/fiber/v2"
)

// SessionCookie is the name of the client-held session credential
const SessionCookie = "session_token"

// Locals keys set by ResolveSession for authenticated requests
const (
	LocalsUserID = "userID"
	LocalsName   = "name"
	LocalsRole   = "role"
	LocalsToken  = "sessionToken"
)

// ResolveSession reads the session cookie and, when the token resolves,
// puts the identity into request locals. It never rejects by itself; store
// failures degrade to anonymous so a redis blip cannot take down public
// routes.
func ResolveSession(store session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(SessionCookie)
		if token == "" {
			return c.Next()
		}

		rec, err := store.Resolve(c.Context(), token)
		if err != nil {
			log.Printf("session resolve failed: %v", err)
			return c.Next()
		}
		if rec == nil {
			return c.Next()
		}

		c.Locals(LocalsUserID, rec.UserID)
		c.Locals(LocalsName, rec.Name)
		c.Locals(LocalsRole, rec.Role)
		c.Locals(LocalsToken, token)
		return c.Next()
	}
}

// Authenticated guards API routes: anonymous requests get 401.
func Authenticated() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !isAuthenticated(c) {
			return response.Unauthorized(c, "Authentication required")
		}
		return c.Next()
	}
}

// AdminOnly guards admin API routes: anonymous gets 401, any other role
// gets 403. Runs its own authentication check so no route can skip it by
// omitting Authenticated.
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !isAuthenticated(c) {
			return response.Unauthorized(c, "Authentication required")
		}
		if role(c) != models.RoleAdmin {
			return response.Forbidden(c, "Admin role required")
		}
		return c.Next()
	}
}

// AdminPage guards admin-facing pages: anonymous is sent to the login
// page, stock admins to their own dashboard.
func AdminPage() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !isAuthenticated(c) {
			return c.Redirect("/login")
		}
		if role(c) == models.RoleStockAdmin {
			return c.Redirect("/stock_dashboard")
		}
		return c.Next()
	}
}

// StockDashboardPage guards the stock dashboard: anonymous is sent to
// login, admins back to the main dashboard, and any other role gets 403.
func StockDashboardPage() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !isAuthenticated(c) {
			return c.Redirect("/login")
		}
		switch role(c) {
		case models.RoleAdmin:
			return c.Redirect("/")
		case models.RoleStockAdmin:
			return c.Next()
		default:
			return response.Forbidden(c, "Unauthorized")
		}
	}
}

func isAuthenticated(c *fiber.Ctx) bool {
	_, ok := c.Locals(LocalsUserID).(uint)
	return ok
}

func role(c *fiber.Ctx) string {
	r, _ := c.Locals(LocalsRole).(string)
	return r
}
