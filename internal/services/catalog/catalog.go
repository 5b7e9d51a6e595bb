// Package catalog содержит бизнес-логику каталога услуг.
//
// Список активных услуг кэшируется в Redis; любое изменение каталога
// сбрасывает кэш. Ошибки кэша только логируются.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/petcare-miniapp/internal/lib/apperr"
	"github.com/magabrotheeeer/petcare-miniapp/internal/lib/sl"
	"github.com/magabrotheeeer/petcare-miniapp/internal/models"
	"github.com/magabrotheeeer/petcare-miniapp/internal/storage"
)

// ActiveServicesKey - ключ кэша списка активных услуг.
const ActiveServicesKey = "services:active"

// Repository описывает контракт хранилища услуг.
type Repository interface {
	ListActiveServices(ctx context.Context) ([]models.Service, error)
	GetService(ctx context.Context, serviceID string) (*models.Service, error)
	CreateService(ctx context.Context, in models.DummyService) (*models.Service, error)
	UpdateService(ctx context.Context, serviceID string, upd models.ServiceUpdate) (*models.Service, error)
	DeactivateService(ctx context.Context, serviceID string) error
}

// Cache описывает кэш чтений каталога.
type Cache interface {
	Get(ctx context.Context, key string, result any) (bool, error)
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	Invalidate(ctx context.Context, keys ...string) error
}

// Service реализует операции над каталогом услуг.
type Service struct {
	repo  Repository
	cache Cache
	ttl   time.Duration
	log   *slog.Logger
}

// New создает новый экземпляр Service.
func New(repo Repository, cache Cache, ttl time.Duration, log *slog.Logger) *Service {
	return &Service{
		repo:  repo,
		cache: cache,
		ttl:   ttl,
		log:   log,
	}
}

// ListActive возвращает активные услуги, старые первыми.
func (s *Service) ListActive(ctx context.Context) ([]models.Service, error) {
	const op = "services.catalog.ListActive"

	var cached []models.Service
	found, err := s.cache.Get(ctx, ActiveServicesKey, &cached)
	if err != nil {
		s.log.Warn("failed to read from cache", slog.String("key", ActiveServicesKey), sl.Err(err))
	}
	if found {
		return cached, nil
	}

	list, err := s.repo.ListActiveServices(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := s.cache.Set(ctx, ActiveServicesKey, list, s.ttl); err != nil {
		s.log.Warn("failed to add to cache", slog.String("key", ActiveServicesKey), sl.Err(err))
	}
	return list, nil
}

// Get возвращает услугу по ID, в том числе неактивную.
func (s *Service) Get(ctx context.Context, serviceID string) (*models.Service, error) {
	const op = "services.catalog.Get"
	if err := apperr.CheckID("service id", serviceID); err != nil {
		return nil, err
	}

	svc, err := s.repo.GetService(ctx, serviceID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperr.NotFound("service %s not found", serviceID)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return svc, nil
}

// Create добавляет услугу в каталог.
func (s *Service) Create(ctx context.Context, in models.DummyService) (*models.Service, error) {
	const op = "services.catalog.Create"

	svc, err := s.repo.CreateService(ctx, in)
	if err != nil {
		s.log.Error("failed to create service", sl.Op(op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.invalidate(ctx)

	s.log.Info("service created", slog.String("service_id", svc.ID))
	return svc, nil
}

// Update меняет переданные поля услуги.
func (s *Service) Update(ctx context.Context, serviceID string, upd models.ServiceUpdate) (*models.Service, error) {
	const op = "services.catalog.Update"
	if err := apperr.CheckID("service id", serviceID); err != nil {
		return nil, err
	}
	if upd.Empty() {
		return nil, apperr.Validation("no data provided for update")
	}

	svc, err := s.repo.UpdateService(ctx, serviceID, upd)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperr.NotFound("service %s not found", serviceID)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.invalidate(ctx)
	return svc, nil
}

// Deactivate скрывает услугу из каталога. Запись остаётся в базе.
func (s *Service) Deactivate(ctx context.Context, serviceID string) error {
	const op = "services.catalog.Deactivate"
	if err := apperr.CheckID("service id", serviceID); err != nil {
		return err
	}

	if err := s.repo.DeactivateService(ctx, serviceID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return apperr.NotFound("service %s not found", serviceID)
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	s.invalidate(ctx)

	s.log.Info("service deactivated", slog.String("service_id", serviceID))
	return nil
}

func (s *Service) invalidate(ctx context.Context) {
	if err := s.cache.Invalidate(ctx, ActiveServicesKey); err != nil {
		s.log.Warn("failed to remove from cache", slog.String("key", ActiveServicesKey), sl.Err(err))
	}
}
