package auth_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/auth"
)

const testSecret = "test-secret"

func TestNewTokenService(t *testing.T) {
	t.Parallel()

	t.Run("empty secret rejected", func(t *testing.T) {
		t.Parallel()
		_, err := auth.NewTokenService("", time.Hour)
		assert.ErrorIs(t, err, auth.ErrMissingSecret)
	})

	t.Run("non-positive ttl falls back to default", func(t *testing.T) {
		t.Parallel()
		ts, err := auth.NewTokenService(testSecret, 0)
		require.NoError(t, err)

		token, err := ts.Issue("user123")
		require.NoError(t, err)

		claims := parseUnverified(t, token)
		validity := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
		assert.Equal(t, auth.DefaultTokenTTL, validity)
	})
}

func TestTokenRoundTrip(t *testing.T) {
	t.Parallel()

	ts, err := auth.NewTokenService(testSecret, time.Hour)
	require.NoError(t, err)

	token, err := ts.Issue("68b0c1d2e3f4a5b6c7d8e9f0")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := ts.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "68b0c1d2e3f4a5b6c7d8e9f0", subject)
}

func TestVerifyFailures(t *testing.T) {
	t.Parallel()

	ts, err := auth.NewTokenService(testSecret, time.Hour)
	require.NoError(t, err)

	t.Run("garbage input", func(t *testing.T) {
		t.Parallel()
		_, err := ts.Verify("not.a.token")
		assert.ErrorIs(t, err, auth.ErrTokenMalformed)
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()
		_, err := ts.Verify("")
		assert.ErrorIs(t, err, auth.ErrTokenMalformed)
	})

	t.Run("wrong secret", func(t *testing.T) {
		t.Parallel()
		other, err := auth.NewTokenService("some-other-secret", time.Hour)
		require.NoError(t, err)
		token, err := other.Issue("user123")
		require.NoError(t, err)

		_, err = ts.Verify(token)
		assert.ErrorIs(t, err, auth.ErrTokenMalformed)
	})

	t.Run("expired token", func(t *testing.T) {
		t.Parallel()
		token := signedToken(t, jwt.RegisteredClaims{
			Subject:   "user123",
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		})

		_, err := ts.Verify(token)
		assert.ErrorIs(t, err, auth.ErrTokenExpired)
	})

	t.Run("missing subject", func(t *testing.T) {
		t.Parallel()
		token := signedToken(t, jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		})

		_, err := ts.Verify(token)
		assert.ErrorIs(t, err, auth.ErrTokenMalformed)
	})

	t.Run("unexpected signing method", func(t *testing.T) {
		t.Parallel()
		unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
			Subject:   "user123",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = ts.Verify(unsigned)
		assert.ErrorIs(t, err, auth.ErrTokenMalformed)
	})
}

func signedToken(t *testing.T, claims jwt.RegisteredClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func parseUnverified(t *testing.T, token string) *jwt.RegisteredClaims {
	t.Helper()
	claims := &jwt.RegisteredClaims{}
	_, _, err := jwt.NewParser().ParseUnverified(token, claims)
	require.NoError(t, err)
	return claims
}
