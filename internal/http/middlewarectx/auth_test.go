package middlewarectx_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/petcare-miniapp/internal/http/middlewarectx"
	"github.com/magabrotheeeer/petcare-miniapp/internal/lib/apperr"
	"github.com/magabrotheeeer/petcare-miniapp/internal/lib/jwt"
	"github.com/magabrotheeeer/petcare-miniapp/internal/lib/logger"
)

type ValidatorMock struct {
	mock.Mock
}

func (m *ValidatorMock) ValidateToken(ctx context.Context, token string) (*jwt.CustomClaims, error) {
	args := m.Called(ctx, token)
	claims, _ := args.Get(0).(*jwt.CustomClaims)
	return claims, args.Error(1)
}

func TestJWTMiddleware(t *testing.T) {
	const userID = "0f8fad5b-d9cb-469f-a165-70867728950e"

	tests := []struct {
		name           string
		authHeader     string
		setup          func(m *ValidatorMock)
		wantStatusCode int
		wantCalled     bool
	}{
		{
			name:           "missing Authorization header",
			setup:          func(_ *ValidatorMock) {},
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			name:           "invalid Authorization header prefix",
			authHeader:     "Basic sometoken",
			setup:          func(_ *ValidatorMock) {},
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			name:       "token rejected",
			authHeader: "Bearer expired",
			setup: func(m *ValidatorMock) {
				m.On("ValidateToken", mock.Anything, "expired").
					Return(nil, apperr.Authentication(apperr.ReasonInvalidOrExpiredToken, "invalid token")).Once()
			},
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			name:       "valid token",
			authHeader: "Bearer good",
			setup: func(m *ValidatorMock) {
				m.On("ValidateToken", mock.Anything, "good").
					Return(&jwt.CustomClaims{UserID: userID, TelegramID: 123}, nil).Once()
			},
			wantStatusCode: http.StatusOK,
			wantCalled:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			validator := new(ValidatorMock)
			tt.setup(validator)

			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				id, ok := middlewarectx.UserIDFrom(r.Context())
				assert.True(t, ok)
				assert.Equal(t, userID, id)
				assert.Equal(t, int64(123), r.Context().Value(middlewarectx.TelegramID))
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/pets/1", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			middlewarectx.JWTMiddleware(validator, logger.Discard())(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)
			assert.Equal(t, tt.wantCalled, called)
			if !tt.wantCalled {
				assert.Contains(t, rec.Body.String(), `"status":"Error"`)
			}
			validator.AssertExpectations(t)
		})
	}
}
