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

const petID = "3d813cbb-47fb-4ba9-8b1b-c9d0c0a7f1e2"

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) Update(ctx context.Context, id string, upd models.PetUpdate) (*models.Pet, error) {
	args := m.Called(ctx, id, upd)
	p, _ := args.Get(0).(*models.Pet)
	return p, args.Error(1)
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
			name: "rename",
			body: `{"name":"Max"}`,
			setup: func(m *ServiceMock) {
				m.On("Update", mock.Anything, petID, mock.MatchedBy(func(u models.PetUpdate) bool {
					return u.Name != nil && *u.Name == "Max" && u.Age == nil
				})).Return(&models.Pet{ID: petID, Name: "Max", Breed: "Corgi", Age: 3}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"name":"Max"`,
		},
		{
			name:       "age out of range",
			body:       `{"age":150}`,
			setup:      func(_ *ServiceMock) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `field Age must be at most 100`,
		},
		{
			name: "unknown pet",
			body: `{"breed":"Husky"}`,
			setup: func(m *ServiceMock) {
				m.On("Update", mock.Anything, petID, mock.Anything).
					Return(nil, apperr.NotFound("pet %s not found", petID)).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `not found`,
		},
		{
			name:       "broken json",
			body:       `{"name":`,
			setup:      func(_ *ServiceMock) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `invalid request body`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(ServiceMock)
			tt.setup(svc)

			r := chi.NewRouter()
			r.Method(http.MethodPut, "/pets/{id}", New(logger.Discard(), svc))
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/pets/"+petID, bytes.NewBufferString(tt.body)))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
			svc.AssertExpectations(t)
		})
	}
}
