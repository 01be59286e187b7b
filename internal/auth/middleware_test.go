package auth_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"taskboard/internal/auth"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	tokens, err := auth.NewTokenService(testSecret, time.Hour)
	require.NoError(t, err)
	storage := newFakeStorage()

	user := &auth.User{Name: "Ann", Email: "ann@x.com", CreatedAt: time.Now()}
	require.NoError(t, storage.Insert(context.Background(), user))

	var seenUserID bson.ObjectID
	var seenOK bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenUserID, seenOK = auth.UserID(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	protected := auth.Middleware(tokens, storage, discardLogger())(next)

	do := func(authorization string) *httptest.ResponseRecorder {
		r := httptest.NewRequest(http.MethodGet, "/tasks", nil)
		if authorization != "" {
			r.Header.Set("Authorization", authorization)
		}
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, r)
		return rec
	}

	t.Run("missing header", func(t *testing.T) {
		rec := do("")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "authorization token required")
	})

	t.Run("malformed header", func(t *testing.T) {
		rec := do("Basic abc123")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("bearer with no token", func(t *testing.T) {
		rec := do("Bearer")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		rec := do("Bearer not.a.token")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "malformed token")
	})

	t.Run("expired token", func(t *testing.T) {
		expired := signedToken(t, jwt.RegisteredClaims{
			Subject:   user.ID.Hex(),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-25 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		})
		rec := do("Bearer " + expired)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "token expired")
	})

	t.Run("subject not an object id", func(t *testing.T) {
		token := signedToken(t, jwt.RegisteredClaims{
			Subject:   "not-hex",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		})
		rec := do("Bearer " + token)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token for deleted user", func(t *testing.T) {
		ghost := &auth.User{Name: "Ghost", Email: "ghost@x.com", CreatedAt: time.Now()}
		require.NoError(t, storage.Insert(context.Background(), ghost))
		token, err := tokens.Issue(ghost.ID.Hex())
		require.NoError(t, err)
		storage.delete(ghost.ID)

		rec := do("Bearer " + token)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token resolves user into context", func(t *testing.T) {
		token, err := tokens.Issue(user.ID.Hex())
		require.NoError(t, err)

		rec := do("Bearer " + token)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, seenOK)
		assert.Equal(t, user.ID, seenUserID)
	})
}

func TestUserIDContext(t *testing.T) {
	t.Parallel()

	t.Run("absent", func(t *testing.T) {
		t.Parallel()
		_, ok := auth.UserID(context.Background())
		assert.False(t, ok)
	})

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		id := bson.NewObjectID()
		ctx := auth.WithUserID(context.Background(), id)
		got, ok := auth.UserID(ctx)
		assert.True(t, ok)
		assert.Equal(t, id, got)
	})
}
