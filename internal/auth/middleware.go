package auth

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"

	"taskboard/internal/httpx"
	"taskboard/pkg/logger"
)

// Middleware gates protected endpoints on a valid bearer token.
//
// The subject id is re-resolved against the credential store on every
// request: a token can outlive its account, and trusting the payload alone
// would authenticate a deleted user. On success the resolved user id is
// attached to the request context.
func Middleware(tokens *TokenService, storage Storage, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, err := bearerToken(r)
			if err != nil {
				httpx.Error(w, http.StatusUnauthorized, ErrNoToken.Error())
				return
			}

			subject, err := tokens.Verify(tokenString)
			if err != nil {
				httpx.Error(w, http.StatusUnauthorized, err.Error())
				return
			}

			userID, err := bson.ObjectIDFromHex(subject)
			if err != nil {
				httpx.Error(w, http.StatusUnauthorized, ErrTokenMalformed.Error())
				return
			}

			user, err := storage.FindByID(r.Context(), userID)
			if err != nil {
				if errors.Is(err, ErrUserNotFound) {
					httpx.Error(w, http.StatusUnauthorized, ErrTokenMalformed.Error())
					return
				}
				log.ErrorContext(r.Context(), "failed to resolve token subject",
					logger.Error(err), logger.Component("auth"))
				httpx.Error(w, http.StatusInternalServerError, "internal server error")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), user.ID)))
		})
	}
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header.
func bearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", ErrNoToken
	}

	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", ErrNoToken
	}

	return parts[1], nil
}
