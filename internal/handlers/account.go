package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/skins-api/internal/logger"
	"github.com/sbilibin2017/skins-api/internal/models"
	"github.com/sbilibin2017/skins-api/internal/services"
)

//go:generate mockgen -source=account.go -destination=mock_account.go -package=handlers

// AccountGetter returns the authenticated account stored in the request context.
type AccountGetter func(ctx context.Context) (*models.Account, bool)

// Registerer creates accounts.
type Registerer interface {
	Register(ctx context.Context, username, email, password, confirmPassword string) error
}

// LoginService issues sessions.
type LoginService interface {
	Login(ctx context.Context, email, password string) (string, error)
}

// AccountViewer renders the caller's own account.
type AccountViewer interface {
	Me(ctx context.Context, account *models.Account) (*models.AccountView, error)
}

// EmailUpdater changes an account's email.
type EmailUpdater interface {
	UpdateEmail(ctx context.Context, account *models.Account, email string) error
}

// ProfileUpdater changes an account's username and about-me text.
type ProfileUpdater interface {
	UpdateProfile(ctx context.Context, account *models.Account, username, aboutMe string) error
}

// CSRFIssuer issues CSRF tokens.
type CSRFIssuer interface {
	Issue(ctx context.Context) (string, error)
}

// NewMeHandler returns an HTTP handler for the caller's own account.
// @Summary Current account
// @Description Returns the authenticated account with its email decrypted and the ids of its skins
// @Tags account
// @Produce json
// @Param x-session header string true "Session token"
// @Success 200 {object} models.MeResponse
// @Failure 401 {object} models.StatusResponse "Could not authenticate request."
// @Failure 500 {object} models.StatusResponse
// @Router /v1/account/@me [get]
func NewMeHandler(svc AccountViewer, accountGetter AccountGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		account, ok := accountGetter(r.Context())
		if !ok {
			writeStatus(w, http.StatusUnauthorized, msgUnauthenticated)
			return
		}

		view, err := svc.Me(r.Context(), account)
		if err != nil {
			logger.Log.Errorw("failed to render account", "account_id", account.ID, "err", err)
			writeStatus(w, http.StatusInternalServerError, err.Error())
			return
		}

		writeJSON(w, http.StatusOK, models.MeResponse{
			Status:  http.StatusOK,
			Success: true,
			Account: view,
		})
	}
}

// NewRegisterHandler returns an HTTP handler for account registration.
// Duplicate name, duplicate email and password mismatch are reported with
// HTTP 200 and success=false.
// @Summary Register a new account
// @Description Creates an account. Username is unique case-insensitively; email and password are stored encrypted.
// @Tags account
// @Accept x-www-form-urlencoded
// @Produce json
// @Param x-csrf header string true "CSRF token"
// @Param username formData string true "Username, at most 16 characters"
// @Param email formData string true "Email, at most 256 characters"
// @Param password formData string true "Password, at most 256 characters"
// @Param conf_password formData string true "Password confirmation"
// @Param agreed formData bool false "Terms accepted"
// @Success 200 {object} models.StatusResponse "Registered, or a duplicate / mismatch with success=false"
// @Failure 400 {object} models.StatusResponse "Missing field or length bound exceeded"
// @Failure 401 {object} models.StatusResponse "Invalid CSRF token."
// @Failure 500 {object} models.StatusResponse
// @Router /v1/account/register [put]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			writeStatus(w, http.StatusBadRequest, msgBadForm)
			return
		}

		err := svc.Register(r.Context(),
			r.PostForm.Get("username"),
			r.PostForm.Get("email"),
			r.PostForm.Get("password"),
			r.PostForm.Get("conf_password"),
		)
		if err != nil {
			msg, known := clientMessage(err)
			switch {
			case errors.Is(err, services.ErrUsernameExists),
				errors.Is(err, services.ErrEmailExists),
				errors.Is(err, services.ErrPasswordMismatch):
				writeStatus(w, http.StatusOK, msg)
			case known:
				writeStatus(w, http.StatusBadRequest, msg)
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeStatus(w, http.StatusInternalServerError, msg)
			}
			return
		}

		writeStatus(w, http.StatusOK, "")
	}
}

// NewLoginHandler returns an HTTP handler that issues a session token.
// @Summary Log in
// @Description Matches the encrypted credentials and replaces the account's session. The token is returned in ID.
// @Tags account
// @Accept x-www-form-urlencoded
// @Produce json
// @Param x-csrf header string true "CSRF token"
// @Param email formData string true "Email"
// @Param password formData string true "Password"
// @Param remember_me formData bool false "Remember me"
// @Success 200 {object} models.LoginResponse
// @Failure 401 {object} models.StatusResponse "Invalid CSRF token."
// @Failure 404 {object} models.LoginResponse "Account not found."
// @Failure 500 {object} models.LoginResponse
// @Router /v1/account/login [post]
func NewLoginHandler(svc LoginService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			writeJSON(w, http.StatusBadRequest, models.LoginResponse{Code: http.StatusBadRequest, Error: msgBadForm})
			return
		}

		session, err := svc.Login(r.Context(), r.PostForm.Get("email"), r.PostForm.Get("password"))
		if err != nil {
			msg, _ := clientMessage(err)
			if errors.Is(err, services.ErrAccountNotFound) {
				writeJSON(w, http.StatusNotFound, models.LoginResponse{Code: http.StatusNotFound, Error: msg})
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			writeJSON(w, http.StatusInternalServerError, models.LoginResponse{Code: http.StatusInternalServerError, Error: msg})
			return
		}

		writeJSON(w, http.StatusOK, models.LoginResponse{
			Code:    http.StatusOK,
			Success: true,
			ID:      session,
		})
	}
}

// NewUpdateEmailHandler returns an HTTP handler that changes the caller's email.
// @Summary Update email
// @Tags account
// @Accept x-www-form-urlencoded
// @Produce json
// @Param x-csrf header string true "CSRF token"
// @Param x-session header string true "Session token"
// @Param email formData string true "New email, at most 256 characters"
// @Success 200 {object} models.StatusResponse
// @Failure 400 {object} models.StatusResponse
// @Failure 401 {object} models.StatusResponse
// @Failure 409 {object} models.StatusResponse "Email already exists!"
// @Failure 500 {object} models.StatusResponse
// @Router /v1/account/email [patch]
func NewUpdateEmailHandler(svc EmailUpdater, accountGetter AccountGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		account, ok := accountGetter(r.Context())
		if !ok {
			writeStatus(w, http.StatusUnauthorized, msgUnauthenticated)
			return
		}
		if err := r.ParseForm(); err != nil {
			writeStatus(w, http.StatusBadRequest, msgBadForm)
			return
		}

		if err := svc.UpdateEmail(r.Context(), account, r.PostForm.Get("email")); err != nil {
			writeUpdateError(w, err)
			return
		}

		writeStatus(w, http.StatusOK, "")
	}
}

// NewUpdateProfileHandler returns an HTTP handler that changes the caller's
// username and about-me text.
// @Summary Update profile
// @Tags account
// @Accept x-www-form-urlencoded
// @Produce json
// @Param x-csrf header string true "CSRF token"
// @Param x-session header string true "Session token"
// @Param username formData string true "Username, at most 16 characters"
// @Param about_me formData string false "About me, at most 256 characters"
// @Success 200 {object} models.StatusResponse
// @Failure 400 {object} models.StatusResponse
// @Failure 401 {object} models.StatusResponse
// @Failure 409 {object} models.StatusResponse "Name already exists!"
// @Failure 500 {object} models.StatusResponse
// @Router /v1/account [patch]
func NewUpdateProfileHandler(svc ProfileUpdater, accountGetter AccountGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		account, ok := accountGetter(r.Context())
		if !ok {
			writeStatus(w, http.StatusUnauthorized, msgUnauthenticated)
			return
		}
		if err := r.ParseForm(); err != nil {
			writeStatus(w, http.StatusBadRequest, msgBadForm)
			return
		}

		err := svc.UpdateProfile(r.Context(), account, r.PostForm.Get("username"), r.PostForm.Get("about_me"))
		if err != nil {
			writeUpdateError(w, err)
			return
		}

		writeStatus(w, http.StatusOK, "")
	}
}

// NewCSRFTokenHandler returns an HTTP handler that issues a CSRF token.
// @Summary Issue CSRF token
// @Description Returns a token for the x-csrf header of mutating account requests
// @Tags account
// @Produce json
// @Success 200 {object} models.CSRFResponse
// @Failure 500 {object} models.StatusResponse
// @Router /v1/account/csrf [get]
func NewCSRFTokenHandler(svc CSRFIssuer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := svc.Issue(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to issue csrf token", "err", err)
			writeStatus(w, http.StatusInternalServerError, err.Error())
			return
		}

		writeJSON(w, http.StatusOK, models.CSRFResponse{
			Status:  http.StatusOK,
			Success: true,
			Token:   token,
		})
	}
}

func writeUpdateError(w http.ResponseWriter, err error) {
	msg, known := clientMessage(err)
	switch {
	case errors.Is(err, services.ErrUsernameExists), errors.Is(err, services.ErrEmailExists):
		writeStatus(w, http.StatusConflict, msg)
	case known:
		writeStatus(w, http.StatusBadRequest, msg)
	default:
		logger.Log.Errorw("internal server error", "err", err)
		writeStatus(w, http.StatusInternalServerError, msg)
	}
}
