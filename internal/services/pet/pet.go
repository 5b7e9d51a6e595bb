// Package pet содержит бизнес-логику питомцев пользователя.
package pet

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/magabrotheeeer/petcare-miniapp/internal/lib/apperr"
	"github.com/magabrotheeeer/petcare-miniapp/internal/lib/sl"
	"github.com/magabrotheeeer/petcare-miniapp/internal/models"
	"github.com/magabrotheeeer/petcare-miniapp/internal/storage"
)

// Repository описывает контракт хранилища питомцев.
type Repository interface {
	CreatePet(ctx context.Context, pet models.DummyPet) (*models.Pet, error)
	ListPetsByUser(ctx context.Context, userID string) ([]models.Pet, error)
	GetPet(ctx context.Context, petID string) (*models.Pet, error)
	UpdatePet(ctx context.Context, petID string, upd models.PetUpdate) (*models.Pet, error)
	DeletePet(ctx context.Context, petID string) error
}

// Service реализует операции над питомцами.
type Service struct {
	repo Repository
	log  *slog.Logger
}

// New создает новый экземпляр Service.
func New(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log,
	}
}

// Create добавляет питомца пользователю. Владелец должен существовать.
func (s *Service) Create(ctx context.Context, in models.DummyPet) (*models.Pet, error) {
	const op = "services.pet.Create"
	if err := apperr.CheckID("user id", in.UserID); err != nil {
		return nil, err
	}

	p, err := s.repo.CreatePet(ctx, in)
	if err != nil {
		if errors.Is(err, storage.ErrReferenceNotFound) {
			return nil, apperr.NotFound("user %s not found", in.UserID)
		}
		s.log.Error("failed to create pet", sl.Op(op), slog.String("user_id", in.UserID), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("pet created", slog.String("pet_id", p.ID), slog.String("user_id", p.UserID))
	return p, nil
}

// ListByUser возвращает питомцев пользователя, старые первыми.
func (s *Service) ListByUser(ctx context.Context, userID string) ([]models.Pet, error) {
	const op = "services.pet.ListByUser"
	if err := apperr.CheckID("user id", userID); err != nil {
		return nil, err
	}

	pets, err := s.repo.ListPetsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return pets, nil
}

// Get возвращает питомца по ID.
func (s *Service) Get(ctx context.Context, petID string) (*models.Pet, error) {
	const op = "services.pet.Get"
	if err := apperr.CheckID("pet id", petID); err != nil {
		return nil, err
	}

	p, err := s.repo.GetPet(ctx, petID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperr.NotFound("pet %s not found", petID)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

// Update меняет переданные поля питомца.
func (s *Service) Update(ctx context.Context, petID string, upd models.PetUpdate) (*models.Pet, error) {
	const op = "services.pet.Update"
	if err := apperr.CheckID("pet id", petID); err != nil {
		return nil, err
	}
	if upd.Empty() {
		return nil, apperr.Validation("no data provided for update")
	}

	p, err := s.repo.UpdatePet(ctx, petID, upd)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperr.NotFound("pet %s not found", petID)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

// Delete удаляет питомца.
func (s *Service) Delete(ctx context.Context, petID string) error {
	const op = "services.pet.Delete"
	if err := apperr.CheckID("pet id", petID); err != nil {
		return err
	}

	if err := s.repo.DeletePet(ctx, petID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return apperr.NotFound("pet %s not found", petID)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("pet removed", slog.String("pet_id", petID))
	return nil
}
