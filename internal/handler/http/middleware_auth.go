package http

import (
	"net/http"
	"strings"

	"github.com/sofyone/go-gig-desk/internal/app"
	"github.com/sofyone/go-gig-desk/internal/logger"
	"github.com/sofyone/go-gig-desk/internal/utils"
	"github.com/sofyone/go-gig-desk/models"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// validates it via [service.AuthService.ParseToken], and on success stores
// the authenticated user's ID in the request context under [utils.UserIDCtxKey]
// before delegating to the next handler.
//
// The middleware distinguishes two rejection classes:
//   - HTTP 401 Unauthorized when no usable token is present at all: the
//     "Authorization" header is absent, malformed, or carries an empty token.
//   - HTTP 403 Forbidden when a token is present but expired, tampered with,
//     or otherwise fails verification.
//
// All rejection events are logged using the context-scoped logger obtained
// via [logger.FromRequest].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteJSON(w, models.MessageResponse{Message: app.MsgTokenIsMissing}, http.StatusUnauthorized)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Err(err).Send()
			utils.WriteJSON(w, models.MessageResponse{Message: app.MsgTokenIsMissing}, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("token verification failed")
			utils.WriteJSON(w, models.MessageResponse{Message: app.MsgTokenIsExpiredOrInvalid}, http.StatusForbidden)
			return
		}

		userID, err := token.GetUserID()
		if err != nil {
			log.Err(err).Msg("token subject claim is unusable")
			utils.WriteJSON(w, models.MessageResponse{Message: app.MsgTokenIsExpiredOrInvalid}, http.StatusForbidden)
			return
		}

		// Store the authenticated user's ID in the context so that downstream
		// handlers can retrieve it without re-parsing the token.
		ctx = utils.WithUserID(ctx, userID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value.
//
// The header is expected to follow the standard format:
//
//	Authorization: Bearer <token>
//
// It returns the following sentinel errors:
//   - [ErrInvalidAuthorizationHeader]: if the header contains fewer than
//     two space-separated parts or the scheme is not "Bearer".
//   - [ErrEmptyToken]: if the token part exists but is an empty string.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 || parts[0] != "Bearer" {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
