package service

import (
	"funnel/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims for operator access tokens.
type Claims struct {
	Roles        []string `json:"roles"`
	MarketerCode string   `json:"marketer_code,omitempty"`
	jwt.RegisteredClaims
}

// Operator converts the claims into the authenticated identity.
func (c *Claims) Operator() *entity.Operator {
	return &entity.Operator{
		Subject:      c.Subject,
		Roles:        entity.RolesFromStrings(c.Roles),
		MarketerCode: c.MarketerCode,
	}
}

// TokenService defines the interface for issuing and validating operator tokens.
// Tokens are normally issued by the identity provider; GenerateAccessToken exists for
// tooling and tests sharing the same secret.
type TokenService interface {
	// GenerateAccessToken creates a signed access token for an operator.
	GenerateAccessToken(operator *entity.Operator) (string, error)

	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*Claims, error)
}
