package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studytrack/studytrack-backend/internal/config"
)

func testAuthService() *AuthService {
	cfg := &config.Config{
		JWTSecret:  "test-secret",
		JWTExpiry:  time.Hour,
		BcryptCost: 4, // Minimum cost keeps the tests fast.
	}
	return NewAuthService(cfg, nil)
}

// signTestToken builds a token the way GenerateToken does, without touching
// the session registry.
func signTestToken(t *testing.T, secret string, claims Claims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestHashAndCheckPassword(t *testing.T) {
	s := testAuthService()

	hash, err := s.HashPassword("Str0ng!pass")
	require.NoError(t, err)
	assert.NotEqual(t, "Str0ng!pass", hash)

	assert.NoError(t, s.CheckPassword(hash, "Str0ng!pass"))
	assert.ErrorIs(t, s.CheckPassword(hash, "wrong"), ErrInvalidCredentials)
}

func TestValidateToken(t *testing.T) {
	s := testAuthService()
	userID := uuid.New()
	now := time.Now()

	baseClaims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
		UserID:  userID,
		IsAdmin: true,
	}

	t.Run("valid token round-trips claims", func(t *testing.T) {
		signed := signTestToken(t, "test-secret", baseClaims)

		claims, err := s.ValidateToken(signed)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.True(t, claims.IsAdmin)
		assert.Equal(t, baseClaims.ID, claims.ID)
	})

	t.Run("wrong secret rejected", func(t *testing.T) {
		signed := signTestToken(t, "other-secret", baseClaims)

		_, err := s.ValidateToken(signed)
		assert.Error(t, err)
	})

	t.Run("expired token rejected", func(t *testing.T) {
		expired := baseClaims
		expired.IssuedAt = jwt.NewNumericDate(now.Add(-2 * time.Hour))
		expired.ExpiresAt = jwt.NewNumericDate(now.Add(-time.Hour))
		signed := signTestToken(t, "test-secret", expired)

		_, err := s.ValidateToken(signed)
		assert.Error(t, err)
	})

	t.Run("garbage rejected", func(t *testing.T) {
		_, err := s.ValidateToken("not-a-token")
		assert.Error(t, err)
	})
}
