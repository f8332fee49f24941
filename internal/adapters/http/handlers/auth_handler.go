package handlers

import (
	"errors"
	"strings"

	"libshelf/internal/core/domain"
	"libshelf/internal/core/services"
	"libshelf/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles account endpoints
type AuthHandler struct {
	authService *services.AuthService
	userService *services.UserService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService, userService *services.UserService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		userService: userService,
	}
}

// RegisterRequest represents registration request body
type RegisterRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest represents login request body
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register handles user registration
// @Summary Register new user
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body RegisterRequest true "Registration data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /api/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Name == "" || req.Username == "" || req.Password == "" {
		return response.BadRequest(c, "Name, username and password are required")
	}

	input := &services.RegisterInput{
		Name:     strings.TrimSpace(req.Name),
		Username: strings.TrimSpace(req.Username),
		Password: req.Password,
	}

	user, err := h.authService.Register(c.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrUsernameTaken) {
			return response.BadRequest(c, "Username already taken, pick another one")
		}
		return response.InternalServerError(c, err.Error())
	}

	return response.Created(c, "Registration successful, please log in", fiber.Map{
		"user": user,
	})
}

// Login handles user login
// @Summary Login user
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Login credentials"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /api/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Username == "" || req.Password == "" {
		return response.BadRequest(c, "Username and password are required")
	}

	input := &services.LoginInput{
		Username: strings.TrimSpace(req.Username),
		Password: req.Password,
	}

	result, err := h.authService.Login(c.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return response.Unauthorized(c, "Invalid username or password")
		}
		return response.InternalServerError(c, err.Error())
	}

	return response.Success(c, "Login successful", fiber.Map{
		"token": result.Token,
		"user":  result.User,
	})
}

// Unregister deletes the caller's account
// @Summary Delete own account
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /api/unregister [delete]
func (h *AuthHandler) Unregister(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	if err := h.userService.Unregister(c.Context(), userID); err != nil {
		if errors.Is(err, domain.ErrActiveLoan) {
			return response.BadRequest(c, "Cannot delete account while you still have a borrowed book")
		}
		return response.InternalServerError(c, err.Error())
	}

	return response.Success(c, "Your account has been deleted", nil)
}
