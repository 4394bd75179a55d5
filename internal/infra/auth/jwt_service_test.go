package auth

import (
	"testing"
	"time"

	"funnel/config"
	"funnel/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_access_secret_key_very_long_for_testing"

func newTestJWTService(t *testing.T) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = testSecret

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := newTestJWTService(t)

	operator := &entity.Operator{
		Subject:      "partner-1",
		Roles:        entity.Roles{entity.RolePartner},
		MarketerCode: "AB12",
	}

	token, err := svc.GenerateAccessToken(operator)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "partner-1", claims.Subject)
	assert.Equal(t, []string{"partner"}, claims.Roles)
	assert.Equal(t, "AB12", claims.MarketerCode)
	assert.Equal(t, operator, claims.Operator())
}

func TestJWTService_InvalidToken(t *testing.T) {
	svc := newTestJWTService(t)

	claims, err := svc.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "failed to parse token")
}

func TestJWTService_WrongSecret(t *testing.T) {
	svc := newTestJWTService(t)

	other := &jwtService{accessSecret: []byte("another-secret"), accessTTL: time.Hour, now: time.Now}
	token, err := other.GenerateAccessToken(&entity.Operator{Subject: "admin-1", Roles: entity.Roles{entity.RoleAdmin}})
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_Expired(t *testing.T) {
	svc := newTestJWTService(t)
	svc.now = func() time.Time { return time.Now().Add(-48 * time.Hour) }

	token, err := svc.GenerateAccessToken(&entity.Operator{Subject: "admin-1", Roles: entity.Roles{entity.RoleAdmin}})
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTService_RejectsOtherAlgorithms(t *testing.T) {
	svc := newTestJWTService(t)

	claims := jwt.MapClaims{"sub": "admin-1", "exp": time.Now().Add(time.Hour).Unix()}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_MissingExpiry(t *testing.T) {
	svc := newTestJWTService(t)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "admin-1"}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_EmptySecret(t *testing.T) {
	svc, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
	assert.Nil(t, svc)
	assert.Contains(t, err.Error(), "jwt access secret must be provided")
}
