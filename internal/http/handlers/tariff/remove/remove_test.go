package remove

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/petcare-miniapp/internal/lib/apperr"
	"github.com/magabrotheeeer/petcare-miniapp/internal/lib/logger"
)

const tariffID = "7c9e6679-7425-40de-944b-e07fc1f90ae7"

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) Deactivate(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func TestRemoveHandler(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{name: "deactivated", wantStatus: http.StatusOK, wantBody: `{"success":true}`},
		{
			name:       "not found",
			err:        apperr.NotFound("tariff %s not found", tariffID),
			wantStatus: http.StatusNotFound,
			wantBody:   `{"status":"Error","error":"tariff ` + tariffID + ` not found"}`,
		},
		{
			name:       "storage failure",
			err:        errors.New("db down"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"status":"Error","error":"internal error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(ServiceMock)
			svc.On("Deactivate", mock.Anything, tariffID).Return(tt.err).Once()

			r := chi.NewRouter()
			r.Method(http.MethodDelete, "/tariffs/{id}", New(logger.Discard(), svc))
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/tariffs/"+tariffID, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
			svc.AssertExpectations(t)
		})
	}
}
