// Package auth реализует вход через Telegram Mini App: проверка подписи
// initData, поиск или создание пользователя и выпуск JWT.
package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/magabrotheeeer/petcare-miniapp/internal/lib/apperr"
	"github.com/magabrotheeeer/petcare-miniapp/internal/lib/jwt"
	"github.com/magabrotheeeer/petcare-miniapp/internal/lib/telegram"
	"github.com/magabrotheeeer/petcare-miniapp/internal/metrics"
	"github.com/magabrotheeeer/petcare-miniapp/internal/models"
)

// UserResolver находит или создаёт пользователя по данным Telegram.
type UserResolver interface {
	FindOrCreateByTelegram(ctx context.Context, profile models.TelegramProfile) (*models.User, error)
}

// Service отвечает за вход и проверку сессионных токенов.
type Service struct {
	users    UserResolver
	jwtMaker jwt.Maker
	botToken string
	log      *slog.Logger
}

// New создает новый экземпляр Service.
func New(users UserResolver, jwtMaker jwt.Maker, botToken string, log *slog.Logger) *Service {
	return &Service{
		users:    users,
		jwtMaker: jwtMaker,
		botToken: botToken,
		log:      log,
	}
}

// Login проверяет initData, находит или создаёт пользователя и выпускает токен.
func (s *Service) Login(ctx context.Context, initData string) (*models.User, string, error) {
	const op = "services.auth.Login"

	tgUser, err := telegram.ValidateInitData(initData, s.botToken)
	if err != nil {
		metrics.LoginAttempts.WithLabelValues(string(apperr.ReasonOf(err))).Inc()
		s.log.Warn("init data rejected", slog.String("reason", string(apperr.ReasonOf(err))))
		return nil, "", err
	}

	user, err := s.users.FindOrCreateByTelegram(ctx, profileFrom(tgUser))
	if err != nil {
		metrics.LoginAttempts.WithLabelValues("error").Inc()
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	email := ""
	if user.Email != nil {
		email = *user.Email
	}
	token, err := s.jwtMaker.GenerateToken(user.ID, user.TelegramID, email)
	if err != nil {
		metrics.LoginAttempts.WithLabelValues("error").Inc()
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	metrics.LoginAttempts.WithLabelValues("ok").Inc()
	return user, token, nil
}

// ValidateToken проверяет токен и возвращает его claims.
// Любая ошибка разбора (подпись, формат, срок) - ошибка аутентификации.
func (s *Service) ValidateToken(_ context.Context, token string) (*jwt.CustomClaims, error) {
	claims, err := s.jwtMaker.ParseToken(token)
	if err != nil {
		s.log.Debug("token rejected", slog.String("error", err.Error()))
		return nil, apperr.Authentication(apperr.ReasonInvalidOrExpiredToken, "invalid token")
	}
	return claims, nil
}

func profileFrom(u *telegram.WebAppUser) models.TelegramProfile {
	p := models.TelegramProfile{
		TelegramID: u.ID,
		FirstName:  u.FirstName,
	}
	if u.LastName != "" {
		p.LastName = &u.LastName
	}
	if u.Username != "" {
		p.Username = &u.Username
	}
	return p
}
