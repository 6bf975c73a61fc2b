package handlers

import (
	"errors"
	"strings"
	"time"

	"pharmastock/internal/adapters/http/middleware"
	"pharmastock/internal/adapters/persistence/models"
	"pharmastock/internal/config"
	"pharmastock/internal/core/domain"
	"pharmastock/internal/core/services"
	"pharmastock/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService *services.AuthService
	cfg         *config.Config
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cfg:         cfg,
	}
}

// LoginRequest represents login request body. Form field names match the
// original login form.
type LoginRequest struct {
	Email    string `json:"email" form:"emailIn"`
	Password string `json:"password" form:"passwordIn"`
}

// SignupRequest represents signup request body
type SignupRequest struct {
	FullName string `json:"fullname" form:"fullname"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// Login authenticates a user and opens a session
// @Summary Login user
// @Description Verify credentials, set the session cookie, redirect by role
// @Tags Auth
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Success 302
// @Failure 401 {object} map[string]interface{}
// @Router /login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Email == "" {
		return response.BadRequest(c, "Email is required")
	}
	if req.Password == "" {
		return response.BadRequest(c, "Password is required")
	}

	input := &services.LoginInput{
		Email:    strings.TrimSpace(req.Email),
		Password: req.Password,
	}

	result, err := h.authService.Login(c.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmailNotFound):
			return response.Unauthorized(c, "Email not found")
		case errors.Is(err, domain.ErrInvalidPassword):
			return response.Unauthorized(c, "Invalid password")
		default:
			return response.InternalServerError(c, "Failed to login")
		}
	}

	h.setSessionCookie(c, result.Token)

	if result.User.Role == models.RoleStockAdmin {
		return c.Redirect("/stock_dashboard")
	}
	return c.Redirect("/")
}

// Signup creates a new admin-role account
// @Summary Sign up
// @Description Create an admin account; stock_admin accounts are provisioned out-of-band
// @Tags Auth
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Success 201 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /signup [post]
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.FullName == "" {
		return response.BadRequest(c, "Full name is required")
	}
	if req.Email == "" {
		return response.BadRequest(c, "Email is required")
	}
	if req.Password == "" {
		return response.BadRequest(c, "Password is required")
	}

	input := &services.SignupInput{
		FullName: strings.TrimSpace(req.FullName),
		Email:    strings.TrimSpace(req.Email),
		Password: req.Password,
	}

	if err := h.authService.Signup(c.Context(), input); err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return response.Conflict(c, "Email already exists!")
		}
		return response.InternalServerError(c, "Failed to create account")
	}

	return response.Message(c, fiber.StatusCreated, "Account created successfully!")
}

// Logout destroys the session and clears the cookie
// @Summary Logout
// @Description Clear the session and redirect to the login page
// @Tags Auth
// @Success 302
// @Router /logout [get]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	token, _ := c.Locals(middleware.LocalsToken).(string)
	if token == "" {
		token = c.Cookies(middleware.SessionCookie)
	}
	_ = h.authService.Logout(c.Context(), token)

	h.clearSessionCookie(c)
	return c.Redirect("/login")
}

func (h *AuthHandler) setSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Expires:  time.Now().Add(h.cfg.Session.TTL),
		HTTPOnly: true,
		Secure:   h.cfg.Cookie.Secure,
		SameSite: h.cfg.Cookie.SameSite,
		Domain:   h.cfg.Cookie.Domain,
		Path:     "/",
	})
}

func (h *AuthHandler) clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   h.cfg.Cookie.Secure,
		SameSite: h.cfg.Cookie.SameSite,
		Domain:   h.cfg.Cookie.Domain,
		Path:     "/",
	})
}
