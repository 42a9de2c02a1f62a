package handlers

import (
	"errors"

	"smartcash/internal/dto"
	"smartcash/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type AuthHandler struct {
	authService *service.AuthService
	logger      *zap.Logger
}

func NewAuthHandler(authService *service.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// authFailure maps the auth sentinels onto their response status and
// message. Anything unmapped is an internal failure.
func authFailure(err error) (int, string, bool) {
	switch {
	case errors.Is(err, service.ErrUserExists):
		return fiber.StatusConflict, "User already exists", true
	case errors.Is(err, service.ErrInvalidCredentials):
		return fiber.StatusUnauthorized, "Invalid credentials", true
	case errors.Is(err, service.ErrUserNotFound):
		return fiber.StatusUnauthorized, "Invalid credentials", true
	}
	return fiber.StatusInternalServerError, "", false
}

func (h *AuthHandler) respond(c *fiber.Ctx, op string, resp *dto.AuthResponse, err error) error {
	if err == nil {
		return c.JSON(resp)
	}
	if status, msg, known := authFailure(err); known {
		return c.Status(status).JSON(fiber.Map{"error": msg})
	}
	h.logger.Error(op+" failed", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": op + " failed",
	})
}

// Register godoc
// @Summary Register a new user
// @Description Register a new user with username, email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Registration request"
// @Success 201 {object} dto.AuthResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /user/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if !parseBody(c, &req) {
		return nil
	}

	resp, err := h.authService.Register(c.Context(), &req)
	if err == nil {
		return c.Status(fiber.StatusCreated).JSON(resp)
	}
	return h.respond(c, "Registration", nil, err)
}

// Login godoc
// @Summary Login user
// @Description Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login request"
// @Success 200 {object} dto.AuthResponse
// @Failure 401 {object} map[string]string
// @Router /user/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if !parseBody(c, &req) {
		return nil
	}

	resp, err := h.authService.Login(c.Context(), &req)
	return h.respond(c, "Login", resp, err)
}

// RefreshToken godoc
// @Summary Refresh access token
// @Description Refresh access token using refresh token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Refresh token request"
// @Success 200 {object} dto.AuthResponse
// @Failure 401 {object} map[string]string
// @Router /user/auth/refresh [post]
func (h *AuthHandler) RefreshToken(c *fiber.Ctx) error {
	var req dto.RefreshTokenRequest
	if !parseBody(c, &req) {
		return nil
	}

	resp, err := h.authService.RefreshToken(c.Context(), req.RefreshToken)
	return h.respond(c, "Token refresh", resp, err)
}
