package pet_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/petcare-miniapp/internal/lib/apperr"
	"github.com/magabrotheeeer/petcare-miniapp/internal/lib/logger"
	"github.com/magabrotheeeer/petcare-miniapp/internal/models"
	"github.com/magabrotheeeer/petcare-miniapp/internal/services/pet"
	"github.com/magabrotheeeer/petcare-miniapp/internal/storage"
)

const (
	userID = "0f8fad5b-d9cb-469f-a165-70867728950e"
	petID  = "7c9e6679-7425-40de-944b-e07fc1f90ae7"
)

type RepoMock struct {
	mock.Mock
}

func (m *RepoMock) CreatePet(ctx context.Context, in models.DummyPet) (*models.Pet, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Pet), args.Error(1)
}

func (m *RepoMock) ListPetsByUser(ctx context.Context, id string) ([]models.Pet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Pet), args.Error(1)
}

func (m *RepoMock) GetPet(ctx context.Context, id string) (*models.Pet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Pet), args.Error(1)
}

func (m *RepoMock) UpdatePet(ctx context.Context, id string, upd models.PetUpdate) (*models.Pet, error) {
	args := m.Called(ctx, id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Pet), args.Error(1)
}

func (m *RepoMock) DeletePet(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func wrapped(err error) error {
	return fmt.Errorf("repository.op: %w", err)
}

func TestService_Create(t *testing.T) {
	age := 3
	in := models.DummyPet{UserID: userID, Name: "Rex", Breed: "Corgi", Age: &age}

	tests := []struct {
		name     string
		input    models.DummyPet
		setup    func(r *RepoMock)
		wantKind apperr.Kind
		wantErr  bool
	}{
		{
			name:  "created",
			input: in,
			setup: func(r *RepoMock) {
				r.On("CreatePet", mock.Anything, in).
					Return(&models.Pet{ID: petID, UserID: userID, Name: "Rex", Breed: "Corgi", Age: 3}, nil).Once()
			},
		},
		{
			name:     "malformed owner id",
			input:    models.DummyPet{UserID: "42", Name: "Rex", Breed: "Corgi", Age: &age},
			setup:    func(_ *RepoMock) {},
			wantErr:  true,
			wantKind: apperr.KindValidation,
		},
		{
			name:  "unknown owner",
			input: in,
			setup: func(r *RepoMock) {
				r.On("CreatePet", mock.Anything, in).Return(nil, wrapped(storage.ErrReferenceNotFound)).Once()
			},
			wantErr:  true,
			wantKind: apperr.KindNotFound,
		},
		{
			name:  "storage failure",
			input: in,
			setup: func(r *RepoMock) {
				r.On("CreatePet", mock.Anything, in).Return(nil, errors.New("db down")).Once()
			},
			wantErr:  true,
			wantKind: apperr.KindInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(RepoMock)
			tt.setup(repo)
			svc := pet.New(repo, logger.Discard())

			got, err := svc.Create(context.Background(), tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, apperr.KindOf(err))
			} else {
				require.NoError(t, err)
				assert.Equal(t, petID, got.ID)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestService_Get(t *testing.T) {
	repo := new(RepoMock)
	repo.On("GetPet", mock.Anything, petID).Return(nil, wrapped(storage.ErrNotFound)).Once()
	svc := pet.New(repo, logger.Discard())

	_, err := svc.Get(context.Background(), petID)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	_, err = svc.Get(context.Background(), "not-a-uuid")
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	repo.AssertExpectations(t)
}

func TestService_Update(t *testing.T) {
	name := "Max"
	upd := models.PetUpdate{Name: &name}

	repo := new(RepoMock)
	repo.On("UpdatePet", mock.Anything, petID, upd).Return(&models.Pet{ID: petID, Name: name}, nil).Once()
	svc := pet.New(repo, logger.Discard())

	got, err := svc.Update(context.Background(), petID, upd)
	require.NoError(t, err)
	assert.Equal(t, name, got.Name)

	_, err = svc.Update(context.Background(), petID, models.PetUpdate{})
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	assert.Equal(t, "no data provided for update", apperr.MessageOf(err))

	repo.AssertExpectations(t)
}

func TestService_Delete(t *testing.T) {
	repo := new(RepoMock)
	repo.On("DeletePet", mock.Anything, petID).Return(nil).Once()
	repo.On("DeletePet", mock.Anything, petID).Return(wrapped(storage.ErrNotFound)).Once()
	svc := pet.New(repo, logger.Discard())

	require.NoError(t, svc.Delete(context.Background(), petID))

	err := svc.Delete(context.Background(), petID)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	repo.AssertExpectations(t)
}

func TestService_ListByUser(t *testing.T) {
	pets := []models.Pet{{ID: petID, UserID: userID}}
	repo := new(RepoMock)
	repo.On("ListPetsByUser", mock.Anything, userID).Return(pets, nil).Once()
	svc := pet.New(repo, logger.Discard())

	got, err := svc.ListByUser(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, pets, got)
	repo.AssertExpectations(t)
}
