package handlers

import (
	"fmt"

	"pharmastock/internal/adapters/http/middleware"

	"github.com/gofiber/fiber/v2"
)

// PageHandler renders the minimal HTML pages. Real rendering lives in the
// frontend; these pages are just enough to navigate the API by hand.
type PageHandler struct{}

// NewPageHandler creates a new page handler
func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

const loginPage = `<!DOCTYPE html>
<html>
<head><title>Pharmacy Inventory - Login</title></head>
<body>
<h2>Login</h2>
<form method="post" action="/login">
  <input type="email" name="emailIn" placeholder="Email" required>
  <input type="password" name="passwordIn" placeholder="Password" required>
  <button type="submit">Login</button>
</form>
<h2>Sign up</h2>
<form method="post" action="/signup">
  <input type="text" name="fullname" placeholder="Full name" required>
  <input type="email" name="email" placeholder="Email" required>
  <input type="password" name="password" placeholder="Password" required>
  <button type="submit">Create account</button>
</form>
</body>
</html>`

// Home renders the admin dashboard shell. Role routing happens in the
// page guard, not here.
func (h *PageHandler) Home(c *fiber.Ctx) error {
	return h.dashboard(c, "Pharmacy Dashboard", "/medicines")
}

// LoginPage renders the login form
func (h *PageHandler) LoginPage(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(loginPage)
}

// StockDashboard renders the stock admin dashboard shell
func (h *PageHandler) StockDashboard(c *fiber.Ctx) error {
	return h.dashboard(c, "Stock Dashboard", "/medicines-in-stock")
}

func (h *PageHandler) dashboard(c *fiber.Ctx, title, catalogPath string) error {
	name, _ := c.Locals(middleware.LocalsName).(string)
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><title>%s</title></head>
<body>
<h2>%s</h2>
<p>Signed in as %s. Catalog: <a href="%s">%s</a> &middot; <a href="/logout">Logout</a></p>
</body>
</html>`, title, title, name, catalogPath, catalogPath))
}
