package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/skins-api/internal/models"
	"github.com/sbilibin2017/skins-api/internal/services"
)

func newUserRouter(getter UserGetter, lister UserSkinLister) http.Handler {
	r := chi.NewRouter()
	r.Get("/v1/user/{username}", NewGetUserHandler(getter))
	r.Get("/v1/user/{username}/skins", NewListUserSkinsHandler(lister))
	return r
}

func TestGetUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	about := "hi"
	user := &models.PublicUser{ID: "acc-1", Username: "Alice", AboutMe: &about}

	tests := []struct {
		name         string
		user         *models.PublicUser
		serviceErr   error
		expectedCode int
	}{
		{name: "found", user: user, expectedCode: http.StatusOK},
		{name: "not found", serviceErr: services.ErrUserNotFound, expectedCode: http.StatusNotFound},
		{name: "store error", serviceErr: errors.New("db error"), expectedCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockGetter := NewMockUserGetter(ctrl)
			mockGetter.EXPECT().GetUser(gomock.Any(), "alice").Return(tt.user, tt.serviceErr)

			rr := httptest.NewRecorder()
			newUserRouter(mockGetter, NewMockUserSkinLister(ctrl)).
				ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/user/alice", nil))

			assert.Equal(t, tt.expectedCode, rr.Code)
			switch tt.expectedCode {
			case http.StatusOK:
				var got models.PublicUser
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
				assert.Equal(t, *user, got)
			case http.StatusNotFound:
				assert.Equal(t, models.StatusResponse{Status: 404, Error: "Not found"}, decodeStatus(t, rr))
			}
		})
	}
}

func TestListUserSkinsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("found", func(t *testing.T) {
		mockLister := NewMockUserSkinLister(ctrl)
		mockLister.EXPECT().ListUserSkins(gomock.Any(), "alice").
			Return([]models.SkinView{{ID: "s1", Title: "Cool"}}, nil)

		rr := httptest.NewRecorder()
		newUserRouter(NewMockUserGetter(ctrl), mockLister).
			ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/user/alice/skins", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		var got []models.SkinView
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
		require.Len(t, got, 1)
		assert.Equal(t, "Cool", got[0].Title)
	})

	t.Run("empty list encodes as array", func(t *testing.T) {
		mockLister := NewMockUserSkinLister(ctrl)
		mockLister.EXPECT().ListUserSkins(gomock.Any(), "alice").Return([]models.SkinView{}, nil)

		rr := httptest.NewRecorder()
		newUserRouter(NewMockUserGetter(ctrl), mockLister).
			ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/user/alice/skins", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, "[]", rr.Body.String())
	})

	t.Run("user not found", func(t *testing.T) {
		mockLister := NewMockUserSkinLister(ctrl)
		mockLister.EXPECT().ListUserSkins(gomock.Any(), "ghost").Return(nil, services.ErrUserNotFound)

		rr := httptest.NewRecorder()
		newUserRouter(NewMockUserGetter(ctrl), mockLister).
			ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/user/ghost/skins", nil))

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, models.StatusResponse{Status: 404, Error: "User not found"}, decodeStatus(t, rr))
	})
}
