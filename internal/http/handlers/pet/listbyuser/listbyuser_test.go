package listbyuser

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

const userID = "0f8fad5b-d9cb-469f-a165-70867728950e"

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) ListByUser(ctx context.Context, id string) ([]models.Pet, error) {
	args := m.Called(ctx, id)
	pets, _ := args.Get(0).([]models.Pet)
	return pets, args.Error(1)
}

func TestListByUserHandler(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		pets       []models.Pet
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "two pets",
			id:         userID,
			pets:       []models.Pet{{ID: "p1", Name: "Rex"}, {ID: "p2", Name: "Murka"}},
			wantStatus: http.StatusOK,
			wantBody:   `"name":"Murka"`,
		},
		{
			name:       "no pets",
			id:         userID,
			wantStatus: http.StatusOK,
			wantBody:   `[]`,
		},
		{
			name:       "malformed user id",
			id:         "42",
			err:        apperr.CheckID("user id", "42"),
			wantStatus: http.StatusBadRequest,
			wantBody:   `invalid user id`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(ServiceMock)
			svc.On("ListByUser", mock.Anything, tt.id).Return(tt.pets, tt.err).Once()

			r := chi.NewRouter()
			r.Method(http.MethodGet, "/pets/user/{userId}", New(logger.Discard(), svc))
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/pets/user/"+tt.id, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
			svc.AssertExpectations(t)
		})
	}
}
