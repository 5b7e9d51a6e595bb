// Package tariff содержит бизнес-логику тарифов подписки.
package tariff

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

// ActiveTariffsKey - ключ кэша списка активных тарифов.
const ActiveTariffsKey = "tariffs:active"

// Repository описывает контракт хранилища тарифов.
type Repository interface {
	ListActiveTariffs(ctx context.Context) ([]models.Tariff, error)
	GetTariff(ctx context.Context, tariffID string) (*models.Tariff, error)
	CreateTariff(ctx context.Context, in models.DummyTariff) (*models.Tariff, error)
	UpdateTariff(ctx context.Context, tariffID string, upd models.TariffUpdate) (*models.Tariff, error)
	DeactivateTariff(ctx context.Context, tariffID string) error
}

// Cache описывает кэш чтений тарифов.
type Cache interface {
	Get(ctx context.Context, key string, result any) (bool, error)
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	Invalidate(ctx context.Context, keys ...string) error
}

// Service реализует операции над тарифами.
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

// ListActive возвращает активные тарифы по возрастанию цены.
func (s *Service) ListActive(ctx context.Context) ([]models.Tariff, error) {
	const op = "services.tariff.ListActive"

	var cached []models.Tariff
	found, err := s.cache.Get(ctx, ActiveTariffsKey, &cached)
	if err != nil {
		s.log.Warn("failed to read from cache", slog.String("key", ActiveTariffsKey), sl.Err(err))
	}
	if found {
		return cached, nil
	}

	list, err := s.repo.ListActiveTariffs(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := s.cache.Set(ctx, ActiveTariffsKey, list, s.ttl); err != nil {
		s.log.Warn("failed to add to cache", slog.String("key", ActiveTariffsKey), sl.Err(err))
	}
	return list, nil
}

// Get возвращает тариф по ID.
func (s *Service) Get(ctx context.Context, tariffID string) (*models.Tariff, error) {
	const op = "services.tariff.Get"
	if err := apperr.CheckID("tariff id", tariffID); err != nil {
		return nil, err
	}

	t, err := s.repo.GetTariff(ctx, tariffID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperr.NotFound("tariff %s not found", tariffID)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return t, nil
}

// Create добавляет тариф.
func (s *Service) Create(ctx context.Context, in models.DummyTariff) (*models.Tariff, error) {
	const op = "services.tariff.Create"
	if in.Features == nil {
		in.Features = []string{}
	}

	t, err := s.repo.CreateTariff(ctx, in)
	if err != nil {
		s.log.Error("failed to create tariff", sl.Op(op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.invalidate(ctx)

	s.log.Info("tariff created", slog.String("tariff_id", t.ID), slog.String("name", t.Name))
	return t, nil
}

// Update меняет переданные поля тарифа.
func (s *Service) Update(ctx context.Context, tariffID string, upd models.TariffUpdate) (*models.Tariff, error) {
	const op = "services.tariff.Update"
	if err := apperr.CheckID("tariff id", tariffID); err != nil {
		return nil, err
	}
	if upd.Empty() {
		return nil, apperr.Validation("no data provided for update")
	}

	t, err := s.repo.UpdateTariff(ctx, tariffID, upd)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperr.NotFound("tariff %s not found", tariffID)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.invalidate(ctx)
	return t, nil
}

// Deactivate снимает тариф с продажи.
func (s *Service) Deactivate(ctx context.Context, tariffID string) error {
	const op = "services.tariff.Deactivate"
	if err := apperr.CheckID("tariff id", tariffID); err != nil {
		return err
	}

	if err := s.repo.DeactivateTariff(ctx, tariffID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return apperr.NotFound("tariff %s not found", tariffID)
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	s.invalidate(ctx)

	s.log.Info("tariff deactivated", slog.String("tariff_id", tariffID))
	return nil
}

func (s *Service) invalidate(ctx context.Context) {
	if err := s.cache.Invalidate(ctx, ActiveTariffsKey); err != nil {
		s.log.Warn("failed to remove from cache", slog.String("key", ActiveTariffsKey), sl.Err(err))
	}
}
