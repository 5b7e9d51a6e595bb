// Package user содержит бизнес-логику профиля пользователя и сопоставление
// аккаунта Telegram с пользователем приложения.
package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/petcare-miniapp/internal/lib/apperr"
	"github.com/magabrotheeeer/petcare-miniapp/internal/lib/month"
	"github.com/magabrotheeeer/petcare-miniapp/internal/lib/sl"
	"github.com/magabrotheeeer/petcare-miniapp/internal/models"
	"github.com/magabrotheeeer/petcare-miniapp/internal/storage"
)

// Repository описывает контракт хранилища пользователей.
type Repository interface {
	CreateUser(ctx context.Context, profile models.TelegramProfile) (*models.User, error)
	GetUserByTelegramID(ctx context.Context, telegramID int64) (*models.User, error)
	GetUser(ctx context.Context, userID string) (*models.User, error)
	UpdateUser(ctx context.Context, userID string, upd models.UserUpdate) (*models.User, error)
	ListPetsByUser(ctx context.Context, userID string) ([]models.Pet, error)
	ListOrdersByUser(ctx context.Context, userID string) ([]models.Order, error)
}

// Service реализует операции над пользователями.
type Service struct {
	repo Repository
	log  *slog.Logger
	now  func() time.Time
}

// Option настраивает Service.
type Option func(*Service)

// WithClock подменяет источник текущего времени.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// New создает новый экземпляр Service.
func New(repo Repository, log *slog.Logger, opts ...Option) *Service {
	s := &Service{
		repo: repo,
		log:  log,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FindOrCreateByTelegram возвращает пользователя с данным telegramId,
// создавая его с планом free при первом входе.
//
// Если параллельный запрос успел создать пользователя раньше, возвращается
// его запись: дубликатов не бывает.
func (s *Service) FindOrCreateByTelegram(ctx context.Context, profile models.TelegramProfile) (*models.User, error) {
	const op = "services.user.FindOrCreateByTelegram"

	u, err := s.repo.GetUserByTelegramID(ctx, profile.TelegramID)
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	u, err = s.repo.CreateUser(ctx, profile)
	if err == nil {
		s.log.Info("user created", slog.String("user_id", u.ID), slog.Int64("telegram_id", u.TelegramID))
		return u, nil
	}
	if !errors.Is(err, storage.ErrUserExists) {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Debug("user created concurrently, fetching existing", slog.Int64("telegram_id", profile.TelegramID))
	u, err = s.repo.GetUserByTelegramID(ctx, profile.TelegramID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

// Get возвращает пользователя по ID.
func (s *Service) Get(ctx context.Context, userID string) (*models.User, error) {
	const op = "services.user.Get"
	if err := apperr.CheckID("user id", userID); err != nil {
		return nil, err
	}

	u, err := s.repo.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperr.NotFound("user %s not found", userID)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

// GetProfile возвращает пользователя вместе с питомцами и заказами.
func (s *Service) GetProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	const op = "services.user.GetProfile"

	u, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	pets, err := s.repo.ListPetsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	orders, err := s.repo.ListOrdersByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &models.UserProfile{
		User:               u,
		SubscriptionActive: u.SubscriptionPlan != models.PlanFree && month.Active(u.SubscriptionExpiresAt, s.now()),
		Pets:               pets,
		Orders:             orders,
	}, nil
}

// Update меняет переданные поля профиля.
func (s *Service) Update(ctx context.Context, userID string, upd models.UserUpdate) (*models.User, error) {
	const op = "services.user.Update"
	if err := apperr.CheckID("user id", userID); err != nil {
		return nil, err
	}
	if upd.Empty() {
		return nil, apperr.Validation("no data provided for update")
	}

	u, err := s.repo.UpdateUser(ctx, userID, upd)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperr.NotFound("user %s not found", userID)
		}
		s.log.Error("failed to update user", sl.Op(op), slog.String("user_id", userID), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}
