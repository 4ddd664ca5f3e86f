package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/hydrolog/hydrolog-backend/internal/config"
	"github.com/hydrolog/hydrolog-backend/internal/dto"
	"github.com/hydrolog/hydrolog-backend/internal/middleware"
	"github.com/hydrolog/hydrolog-backend/internal/services"
	"github.com/hydrolog/hydrolog-backend/internal/validation"
)

type AuthHandler struct {
	authService *services.AuthService
	cfg         *config.Config
}

func NewAuthHandler(authService *services.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{authService: authService, cfg: cfg}
}

// Home serves the authenticated landing page payload.
func (h *AuthHandler) Home(c *fiber.Ctx) error {
	return c.JSON(dto.HomeResponse{Email: middleware.CurrentEmail(c)})
}

func (h *AuthHandler) LoginForm(c *fiber.Ctx) error {
	return c.JSON(dto.PageResponse{Page: "login"})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if verr := validation.ValidateCredentials(validation.NormalizeEmail(req.Email), req.Password); verr != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid login fields", Fields: verr.Fields,
		})
	}

	session, rawToken, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    rawToken,
		Expires:  session.ExpiresAt,
		HTTPOnly: true,
		Secure:   h.cfg.CookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return c.JSON(dto.HomeResponse{Email: session.Email})
}

func (h *AuthHandler) SignupForm(c *fiber.Ctx) error {
	return c.JSON(dto.PageResponse{Page: "signup"})
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if _, err := h.authService.Signup(req.Email, req.Password, req.ConfirmPassword); err != nil {
		var verr *validation.Error
		switch {
		case errors.Is(err, services.ErrPasswordMismatch):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.As(err, &verr):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "Invalid signup fields", Fields: verr.Fields,
			})
		case errors.Is(err, services.ErrEmailTaken):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Internal server error",
			})
		}
	}

	return c.Redirect("/login", fiber.StatusFound)
}

// ListUsers is the administrative listing behind /getUser.
func (h *AuthHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.authService.ListUsers()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list users",
		})
	}

	resp := make([]dto.UserResponse, len(users))
	for i, u := range users {
		resp[i] = dto.UserResponse{ID: u.ID, Email: u.Email}
	}
	return c.JSON(resp)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.authService.Logout(c.Cookies(middleware.SessionCookie)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to log out",
		})
	}

	c.ClearCookie(middleware.SessionCookie)
	return c.Redirect("/login", fiber.StatusFound)
}
