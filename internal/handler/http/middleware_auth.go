package http

import (
	"net/http"

	"github.com/MKhiriev/go-progress-keeper/internal/logger"
	"github.com/MKhiriev/go-progress-keeper/internal/utils"
)

// auth is an HTTP middleware that enforces bearer token authentication.
//
// The token from the "Authorization" header is verified via
// [service.AuthService.ParseToken]. The subject becomes the user ID: a local
// profile is created for it on first sight and the ID is stored in the request
// context under [utils.UserIDCtxKey].
//
// Missing, malformed, expired or otherwise invalid tokens are rejected with
// 401 Unauthorized.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Debug().Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteError(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Debug().Err(err).Send()
			utils.WriteError(w, err.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Debug().Err(err).Msg("error occurred during parsing token")
			utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		if _, err = h.services.UserService.EnsureUser(ctx, token.UserID); err != nil {
			writeError(w, r, err, "error ensuring user profile")
			return
		}

		ctx = logger.WithUser(utils.WithUserID(ctx, token.UserID), token.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// userID returns the authenticated user of r. It fails only when a handler
// is mounted outside the auth group.
func userID(r *http.Request) (string, error) {
	id, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		return "", ErrNoUserInContext
	}
	return id, nil
}
