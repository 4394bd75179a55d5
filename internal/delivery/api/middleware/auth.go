package middleware

import (
	"strings"

	"funnel/internal/domain/entity"
	domainerrors "funnel/internal/domain/errors"
	"funnel/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const operatorKey = "operator"

// AuthMiddleware validates operator access tokens issued by the identity provider.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the Bearer token and stores the operator on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || strings.TrimSpace(tokenString) == "" {
			return domainerrors.ErrUnauthorized.WithDetails("missing bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(strings.TrimSpace(tokenString))
		if err != nil {
			return domainerrors.ErrUnauthorized.WithDetails("invalid or expired token")
		}

		c.Set(operatorKey, claims.Operator())

		return next(c)
	}
}

// RequireRole allows the request when the operator has any of roles. It must be used
// after Authenticate.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			operator, ok := GetOperator(c)
			if !ok {
				return domainerrors.ErrUnauthorized
			}

			for _, role := range roles {
				if operator.Roles.Contains(role) {
					return next(c)
				}
			}

			return domainerrors.ErrForbidden
		}
	}
}

// GetOperator returns the authenticated operator set by Authenticate.
func GetOperator(c echo.Context) (*entity.Operator, bool) {
	operator, ok := c.Get(operatorKey).(*entity.Operator)

	return operator, ok && operator != nil
}
