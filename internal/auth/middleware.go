package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/spec-kit/crewcal/pkg/util/errorutil"
)

const claimsKey = "auth_admin_claims"

// AdminMiddleware validates bearer tokens on admin-gated routes.
type AdminMiddleware struct {
	tokens *TokenManager
	region string
}

// NewAdminMiddleware constructs middleware bound to the active region.
func NewAdminMiddleware(tokens *TokenManager, region string) *AdminMiddleware {
	return &AdminMiddleware{tokens: tokens, region: region}
}

// Handle enforces admin authentication for roster-management routes.
func (m *AdminMiddleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewUnauthorized("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized("invalid authorization header")
	}

	claims, err := m.tokens.ParseToken(parts[1])
	if err != nil {
		return apperrors.NewUnauthorized("invalid token")
	}
	if !claims.Admin || claims.Region != m.region {
		return apperrors.NewUnauthorized("admin access not granted for region")
	}

	c.Locals(claimsKey, claims)
	return c.Next()
}

// ClaimsFromContext retrieves the verified admin claims.
func ClaimsFromContext(c *fiber.Ctx) (*Claims, bool) {
	val := c.Locals(claimsKey)
	if val == nil {
		return nil, false
	}
	claims, ok := val.(*Claims)
	return claims, ok
}
