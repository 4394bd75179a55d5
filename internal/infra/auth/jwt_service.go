// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"funnel/config"
	"funnel/internal/domain/entity"
	"funnel/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

const (
	defaultAccessTTL = 12 * time.Hour
	tokenIssuer      = "funnel"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret []byte        // Secret key shared with the identity provider.
	accessTTL    time.Duration // Time-to-live for tokens issued here.
	now          func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	return &jwtService{
		accessSecret: []byte(cfg.SecretKey.Access),
		accessTTL:    defaultAccessTTL,
		now:          time.Now,
	}, nil
}

// GenerateAccessToken creates a signed HS256 access token for an operator.
func (s *jwtService) GenerateAccessToken(operator *entity.Operator) (string, error) {
	if operator == nil || operator.Subject == "" {
		return "", errors.New("operator subject is required")
	}

	roles := make([]string, 0, len(operator.Roles))
	for _, role := range operator.Roles {
		roles = append(roles, role.String())
	}

	issuedAt := s.now()
	claims := &service.Claims{
		Roles:        roles,
		MarketerCode: operator.MarketerCode,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   operator.Subject,
			Issuer:    tokenIssuer,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.accessTTL)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.accessSecret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// ValidateToken parses tokenString and returns its claims when the signature and
// expiry are valid.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(token *jwt.Token) (any, error) {
			return s.accessSecret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}
	if !token.Valid {
		return nil, errors.New("token is not valid")
	}
	if claims.Subject == "" {
		return nil, errors.New("token subject is missing")
	}

	return claims, nil
}
