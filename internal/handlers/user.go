package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/skins-api/internal/logger"
	"github.com/sbilibin2017/skins-api/internal/models"
	"github.com/sbilibin2017/skins-api/internal/services"
)

//go:generate mockgen -source=user.go -destination=mock_user.go -package=handlers

// UserGetter looks up public profiles.
type UserGetter interface {
	GetUser(ctx context.Context, username string) (*models.PublicUser, error)
}

// UserSkinLister lists a user's skins.
type UserSkinLister interface {
	ListUserSkins(ctx context.Context, username string) ([]models.SkinView, error)
}

// NewGetUserHandler returns an HTTP handler for a public profile.
// @Summary Get user
// @Description Case-insensitive lookup by username
// @Tags user
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} models.PublicUser
// @Failure 404 {object} models.StatusResponse "Not found"
// @Failure 500 {object} models.StatusResponse
// @Router /v1/user/{username} [get]
func NewGetUserHandler(svc UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := svc.GetUser(r.Context(), chi.URLParam(r, "username"))
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				writeStatus(w, http.StatusNotFound, msgNotFound)
				return
			}
			logger.Log.Errorw("failed to get user", "err", err)
			writeStatus(w, http.StatusInternalServerError, err.Error())
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}

// NewListUserSkinsHandler returns an HTTP handler listing a user's skins.
// @Summary List user skins
// @Tags user
// @Produce json
// @Param username path string true "Username"
// @Success 200 {array} models.SkinView
// @Failure 404 {object} models.StatusResponse "User not found"
// @Failure 500 {object} models.StatusResponse
// @Router /v1/user/{username}/skins [get]
func NewListUserSkinsHandler(svc UserSkinLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skins, err := svc.ListUserSkins(r.Context(), chi.URLParam(r, "username"))
		if err != nil {
			msg, _ := clientMessage(err)
			if errors.Is(err, services.ErrUserNotFound) {
				writeStatus(w, http.StatusNotFound, msg)
				return
			}
			logger.Log.Errorw("failed to list user skins", "err", err)
			writeStatus(w, http.StatusInternalServerError, msg)
			return
		}

		writeJSON(w, http.StatusOK, skins)
	}
}
