package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/crewcal/internal/api/dto"
	"github.com/spec-kit/crewcal/internal/auth"
	"github.com/spec-kit/crewcal/internal/catalog"
	apperrors "github.com/spec-kit/crewcal/pkg/util/errorutil"
)

// AuthHandler exposes the admin passphrase gate.
type AuthHandler struct {
	tokens *auth.TokenManager
	region catalog.RegionConfig
}

// NewAuthHandler constructs handler.
func NewAuthHandler(tokens *auth.TokenManager, region catalog.RegionConfig) *AuthHandler {
	return &AuthHandler{tokens: tokens, region: region}
}

// Login handles POST /auth/admin/login. A correct passphrase yields a
// region-scoped admin token; a wrong one yields 401 with no detail about
// which part failed.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.AdminLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	if !auth.VerifyPassphrase(h.region.AdminPassword, req.Passphrase) {
		return apperrors.NewUnauthorized("invalid passphrase")
	}

	token, expiresAt, err := h.tokens.GenerateToken(h.region.ID)
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	return c.JSON(fiber.Map{
		"data": dto.AuthResponse{Token: token, ExpiresAt: expiresAt},
	})
}
