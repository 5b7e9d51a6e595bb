package read

import (
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

func (m *ServiceMock) Get(ctx context.Context, id string) (*models.Pet, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*models.Pet)
	return p, args.Error(1)
}

func TestReadHandler(t *testing.T) {
	tests := []struct {
		name       string
		pet        *models.Pet
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "found",
			pet:        &models.Pet{ID: petID, Name: "Rex", Breed: "Corgi", Age: 3},
			wantStatus: http.StatusOK,
			wantBody:   `"breed":"Corgi"`,
		},
		{
			name:       "not found",
			err:        apperr.NotFound("pet %s not found", petID),
			wantStatus: http.StatusNotFound,
			wantBody:   `{"status":"Error","error":"pet ` + petID + ` not found"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(ServiceMock)
			svc.On("Get", mock.Anything, petID).Return(tt.pet, tt.err).Once()

			r := chi.NewRouter()
			r.Method(http.MethodGet, "/pets/{id}", New(logger.Discard(), svc))
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/pets/"+petID, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
			svc.AssertExpectations(t)
		})
	}
}
