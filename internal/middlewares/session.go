package middlewares

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/skins-api/internal/logger"
	"github.com/sbilibin2017/skins-api/internal/models"
	"github.com/sbilibin2017/skins-api/internal/services"
)

//go:generate mockgen -source=session.go -destination=mock_session.go -package=middlewares

// SessionHeader carries the session token issued at login.
const SessionHeader = "x-session"

// Authenticator resolves a session token to an account.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*models.Account, error)
}

type accountKey struct{}

// SessionMiddleware rejects requests without a current session and stores the
// authenticated account in the request context.
func SessionMiddleware(auth Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			account, err := auth.Authenticate(ctx, r.Header.Get(SessionHeader))
			if err != nil {
				if errors.Is(err, services.ErrUnauthenticated) {
					logger.Log.Infow("authentication failed", "uri", r.RequestURI)
					writeError(w, http.StatusUnauthorized, msgUnauthenticated)
					return
				}
				logger.Log.Errorw("authentication failed", "err", err)
				writeError(w, http.StatusInternalServerError, err.Error())
				return
			}

			next.ServeHTTP(w, r.WithContext(WithAccount(ctx, account)))
		})
	}
}

// WithAccount returns a copy of ctx carrying account.
func WithAccount(ctx context.Context, account *models.Account) context.Context {
	return context.WithValue(ctx, accountKey{}, account)
}

// AccountFromContext returns the account stored by SessionMiddleware.
func AccountFromContext(ctx context.Context) (*models.Account, bool) {
	account, ok := ctx.Value(accountKey{}).(*models.Account)
	return account, ok && account != nil
}
