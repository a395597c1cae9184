package middlewares

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/skins-api/internal/models"
	"github.com/sbilibin2017/skins-api/internal/services"
)

func TestSessionMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	account := &models.Account{ID: "acc-1", Username: "alice"}

	tests := []struct {
		name             string
		header           string
		mockSetup        func(m *MockAuthenticator)
		expectedStatus   int
		expectedError    string
		expectNextCalled bool
	}{
		{
			name:   "NoSession",
			header: "",
			mockSetup: func(m *MockAuthenticator) {
				m.EXPECT().Authenticate(gomock.Any(), "").Return(nil, services.ErrUnauthenticated)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedError:  msgUnauthenticated,
		},
		{
			name:   "UnknownSession",
			header: "stale",
			mockSetup: func(m *MockAuthenticator) {
				m.EXPECT().Authenticate(gomock.Any(), "stale").Return(nil, services.ErrUnauthenticated)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedError:  msgUnauthenticated,
		},
		{
			name:   "StoreError",
			header: "token",
			mockSetup: func(m *MockAuthenticator) {
				m.EXPECT().Authenticate(gomock.Any(), "token").Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "db error",
		},
		{
			name:   "ValidSession",
			header: "token",
			mockSetup: func(m *MockAuthenticator) {
				m.EXPECT().Authenticate(gomock.Any(), "token").Return(account, nil)
			},
			expectedStatus:   http.StatusOK,
			expectNextCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockAuth := NewMockAuthenticator(ctrl)
			tt.mockSetup(mockAuth)

			nextCalled := false
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				got, ok := AccountFromContext(r.Context())
				assert.True(t, ok)
				assert.Equal(t, account, got)
				w.WriteHeader(http.StatusOK)
			})

			handler := SessionMiddleware(mockAuth)(nextHandler)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(SessionHeader, tt.header)
			}
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectNextCalled, nextCalled)

			if tt.expectedError != "" {
				var resp models.StatusResponse
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedStatus, resp.Status)
				assert.False(t, resp.Success)
				assert.Equal(t, tt.expectedError, resp.Error)
				assert.NotContains(t, rr.Body.String(), "account")
			}
		})
	}
}

func TestAccountFromContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, ok := AccountFromContext(req.Context())
	assert.False(t, ok)

	_, ok = AccountFromContext(WithAccount(req.Context(), nil))
	assert.False(t, ok)

	account := &models.Account{ID: "acc-1"}
	got, ok := AccountFromContext(WithAccount(req.Context(), account))
	assert.True(t, ok)
	assert.Same(t, account, got)
}
