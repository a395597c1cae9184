package middlewares

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/skins-api/internal/logger"
	"github.com/sbilibin2017/skins-api/internal/services"
)

//go:generate mockgen -source=csrf.go -destination=mock_csrf.go -package=middlewares

// CSRFHeader carries the CSRF token on mutating requests.
const CSRFHeader = "x-csrf"

// CSRFValidator validates a CSRF token.
type CSRFValidator interface {
	Validate(ctx context.Context, token string) error
}

// CSRFMiddleware rejects requests whose x-csrf header does not validate.
// It does not look at the session.
func CSRFMiddleware(validator CSRFValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := validator.Validate(r.Context(), r.Header.Get(CSRFHeader)); err != nil {
				if errors.Is(err, services.ErrInvalidCSRF) {
					logger.Log.Infow("csrf validation failed", "uri", r.RequestURI, "err", err)
					writeError(w, http.StatusUnauthorized, msgInvalidCSRF)
					return
				}
				logger.Log.Errorw("csrf validation failed", "err", err)
				writeError(w, http.StatusInternalServerError, err.Error())
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
