package create

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

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

func (m *ServiceMock) Create(ctx context.Context, in models.DummyPet) (*models.Pet, error) {
	args := m.Called(ctx, in)
	p, _ := args.Get(0).(*models.Pet)
	return p, args.Error(1)
}

func TestCreateHandler(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(m *ServiceMock)
		wantStatus int
		wantBody   string
	}{
		{
			name: "created",
			body: `{"userId":"` + userID + `","name":"Rex","breed":"Corgi","age":3}`,
			setup: func(m *ServiceMock) {
				m.On("Create", mock.Anything, mock.MatchedBy(func(in models.DummyPet) bool {
					return in.UserID == userID && in.Name == "Rex" && *in.Age == 3
				})).Return(&models.Pet{ID: "p1", UserID: userID, Name: "Rex", Breed: "Corgi", Age: 3}, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"name":"Rex"`,
		},
		{
			name: "age zero is allowed",
			body: `{"userId":"` + userID + `","name":"Kitty","breed":"Siamese","age":0}`,
			setup: func(m *ServiceMock) {
				m.On("Create", mock.Anything, mock.Anything).Return(&models.Pet{ID: "p2", Age: 0}, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"age":0`,
		},
		{
			name:       "missing fields",
			body:       `{"userId":"` + userID + `"}`,
			setup:      func(_ *ServiceMock) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `field Name is a required field`,
		},
		{
			name:       "malformed owner",
			body:       `{"userId":"42","name":"Rex","breed":"Corgi","age":3}`,
			setup:      func(_ *ServiceMock) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `field UserID can contain only uuid`,
		},
		{
			name: "unknown owner",
			body: `{"userId":"` + userID + `","name":"Rex","breed":"Corgi","age":3}`,
			setup: func(m *ServiceMock) {
				m.On("Create", mock.Anything, mock.Anything).Return(nil, apperr.NotFound("user %s not found", userID)).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `not found`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(ServiceMock)
			tt.setup(svc)

			rec := httptest.NewRecorder()
			New(logger.Discard(), svc).ServeHTTP(rec,
				httptest.NewRequest(http.MethodPost, "/pets", bytes.NewBufferString(tt.body)))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
			svc.AssertExpectations(t)
		})
	}
}
