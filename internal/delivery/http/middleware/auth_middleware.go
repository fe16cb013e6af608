package middleware

import (
	"net/http"
	"strings"

	"tillpoint/internal/domain/entity"
	"tillpoint/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const scopeContextKey = "accessScope"

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the JWT access token and builds the AccessScope the
// use case layer authorizes against: user ID, role and assigned shop IDs.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authorization header is missing"})
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid token format, must be Bearer token"})
		}

		token, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil || !token.Valid {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Failed to parse token claims"})
		}

		scope, ok := scopeFromClaims(claims)
		if !ok {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Token claims are incomplete"})
		}

		c.Set(scopeContextKey, scope)

		return next(c)
	}
}

// RequireRole is a middleware factory that checks the authenticated user's
// role. It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			scope, ok := GetScope(c)
			if !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: scope information missing"})
			}

			for _, role := range roles {
				if scope.Role == role {
					return next(c)
				}
			}

			return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: insufficient role"})
		}
	}
}

// GetScope retrieves the AccessScope set by Authenticate.
func GetScope(c echo.Context) (entity.AccessScope, bool) {
	scope, ok := c.Get(scopeContextKey).(entity.AccessScope)

	return scope, ok
}

func scopeFromClaims(claims jwt.MapClaims) (entity.AccessScope, bool) {
	userIDStr, ok := claims["sub"].(string)
	if !ok {
		return entity.AccessScope{}, false
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return entity.AccessScope{}, false
	}

	roleStr, ok := claims["role"].(string)
	if !ok {
		return entity.AccessScope{}, false
	}

	var shopIDs []uuid.UUID
	if rawShops, ok := claims["shop_ids"].([]any); ok {
		for _, raw := range rawShops {
			shopStr, ok := raw.(string)
			if !ok {
				continue
			}
			shopID, err := uuid.Parse(shopStr)
			if err != nil {
				continue
			}
			shopIDs = append(shopIDs, shopID)
		}
	}

	return entity.AccessScope{
		UserID:  userID,
		Role:    entity.Role(roleStr),
		ShopIDs: shopIDs,
	}, true
}
