package update

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/petcare-miniapp/internal/lib/apperr"
	"github.com/magabrotheeeer/petcare-miniapp/internal/lib/logger"
	"github.com/magabrotheeeer/petcare-miniapp/internal/models"
)

const tariffID = "7c9e6679-7425-40de-944b-e07fc1f90ae7"

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) Update(ctx context.Context, id string, upd models.TariffUpdate) (*models.Tariff, error) {
	args := m.Called(ctx, id, upd)
	t, _ := args.Get(0).(*models.Tariff)
	return t, args.Error(1)
}

func TestUpdateHandler(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(m *ServiceMock)
		wantStatus int
		wantBody   string
	}{
		{
			name: "new price",
			body: `{"monthlyPrice":1490}`,
			setup: func(m *ServiceMock) {
				m.On("Update", mock.Anything, tariffID, mock.MatchedBy(func(u models.TariffUpdate) bool {
					return u.MonthlyPrice != nil && *u.MonthlyPrice == 1490 && u.Name == nil
				})).Return(&models.Tariff{ID: tariffID, Name: "Premium", MonthlyPrice: 1490, IsActive: true}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"monthlyPrice":1490`,
		},
		{
			name:       "negative price",
			body:       `{"monthlyPrice":-1}`,
			setup:      func(_ *ServiceMock) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `field MonthlyPrice must be at least 0`,
		},
		{
			name:       "empty name",
			body:       `{"name":""}`,
			setup:      func(_ *ServiceMock) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `field Name must not be empty`,
		},
		{
			name: "nothing to update",
			body: `{}`,
			setup: func(m *ServiceMock) {
				m.On("Update", mock.Anything, tariffID, models.TariffUpdate{}).
					Return(nil, apperr.Validation("nothing to update")).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `nothing to update`,
		},
		{
			name: "unknown tariff",
			body: `{"isPopular":true}`,
			setup: func(m *ServiceMock) {
				m.On("Update", mock.Anything, tariffID, mock.Anything).
					Return(nil, apperr.NotFound("tariff %s not found", tariffID)).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `not found`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(ServiceMock)
			tt.setup(svc)

			r := chi.NewRouter()
			r.Method(http.MethodPut, "/tariffs/{id}", New(logger.Discard(), svc))
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/tariffs/"+tariffID, bytes.NewBufferString(tt.body)))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
			svc.AssertExpectations(t)
		})
	}
}
