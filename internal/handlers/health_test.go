package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/skins-api/internal/models"
)

func TestHealthHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := NewMockPinger(ctrl)

	mockDB.EXPECT().PingContext(gomock.Any()).Return(nil)
	rr := httptest.NewRecorder()
	NewHealthHandler(mockDB).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, models.StatusResponse{Status: 200, Success: true}, decodeStatus(t, rr))

	mockDB.EXPECT().PingContext(gomock.Any()).Return(errors.New("connection refused"))
	rr = httptest.NewRecorder()
	NewHealthHandler(mockDB).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}
