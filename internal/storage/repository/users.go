package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/magabrotheeeer/petcare-miniapp/internal/models"
	"github.com/magabrotheeeer/petcare-miniapp/internal/storage"
)

const userColumns = `id, telegram_id, first_name, last_name, username, phone_number, email,
	subscription_plan, subscription_expires_at, created_at, updated_at`

func scanUser(row scanner) (*models.User, error) {
	u := &models.User{}
	var expiresAt sql.NullTime
	if err := row.Scan(&u.ID, &u.TelegramID, &u.FirstName, &u.LastName, &u.Username,
		&u.PhoneNumber, &u.Email, &u.SubscriptionPlan, &expiresAt, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	if expiresAt.Valid {
		u.SubscriptionExpiresAt = &expiresAt.Time
	}
	return u, nil
}

// CreateUser создаёт пользователя с планом free.
// Если пользователь с таким telegram_id уже есть, возвращает storage.ErrUserExists.
func (s *Storage) CreateUser(ctx context.Context, profile models.TelegramProfile) (*models.User, error) {
	const op = "storage.CreateUser"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO users (telegram_id, first_name, last_name, username, subscription_plan)
			  VALUES ($1, $2, $3, $4, 'free')
			  RETURNING ` + userColumns
	u, err := scanUser(s.DB.QueryRowContext(ctx, query,
		profile.TelegramID, profile.FirstName, profile.LastName, profile.Username))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrUserExists)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

// GetUserByTelegramID возвращает пользователя по идентификатору Telegram.
func (s *Storage) GetUserByTelegramID(ctx context.Context, telegramID int64) (*models.User, error) {
	const op = "storage.GetUserByTelegramID"

	query := `SELECT ` + userColumns + ` FROM users WHERE telegram_id = $1`
	u, err := scanUser(s.DB.QueryRowContext(ctx, query, telegramID))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapError(err))
	}
	return u, nil
}

// GetUser возвращает пользователя по его ID.
func (s *Storage) GetUser(ctx context.Context, userID string) (*models.User, error) {
	const op = "storage.GetUser"

	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	u, err := scanUser(s.DB.QueryRowContext(ctx, query, userID))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapError(err))
	}
	return u, nil
}

// UpdateUser меняет только переданные поля профиля.
func (s *Storage) UpdateUser(ctx context.Context, userID string, upd models.UserUpdate) (*models.User, error) {
	const op = "storage.UpdateUser"

	query := `UPDATE users
			  SET first_name = COALESCE($2, first_name),
			      last_name = COALESCE($3, last_name),
			      phone_number = COALESCE($4, phone_number),
			      email = COALESCE($5, email),
			      updated_at = NOW()
			  WHERE id = $1
			  RETURNING ` + userColumns
	u, err := scanUser(s.DB.QueryRowContext(ctx, query,
		userID, upd.FirstName, upd.LastName, upd.PhoneNumber, upd.Email))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapError(err))
	}
	return u, nil
}

// CancelSubscription переводит пользователя на план free и записывает
// в историю заказ со статусом cancelled. Всё выполняется в одной транзакции,
// строка пользователя блокируется, поэтому две одновременные отмены
// не могут обе завершиться успешно.
//
// Возвращает предыдущий план. Если план уже free - storage.ErrNoActiveSubscription.
func (s *Storage) CancelSubscription(ctx context.Context, userID string, at time.Time) (models.SubscriptionPlan, *models.Order, error) {
	const op = "storage.CancelSubscription"

	var previous models.SubscriptionPlan
	var order *models.Order
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx,
			`SELECT subscription_plan FROM users WHERE id = $1 FOR UPDATE`, userID).Scan(&previous)
		if err != nil {
			return mapError(err)
		}
		if previous == models.PlanFree {
			return storage.ErrNoActiveSubscription
		}

		res, err := tx.ExecContext(ctx,
			`UPDATE users
			 SET subscription_plan = 'free', subscription_expires_at = $2, updated_at = $2
			 WHERE id = $1 AND subscription_plan <> 'free'`, userID, at)
		if err != nil {
			return err
		}
		if n, err := res.RowsAffected(); err != nil {
			return err
		} else if n == 0 {
			return storage.ErrNoActiveSubscription
		}

		description := fmt.Sprintf("Subscription %s cancelled by user", previous)
		order, err = scanOrder(tx.QueryRowContext(ctx,
			`INSERT INTO orders (user_id, amount, status, type, description, created_at, updated_at)
			 VALUES ($1, 0, 'cancelled', 'subscription', $2, $3, $3)
			 RETURNING `+orderColumns, userID, description, at))
		return err
	})
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}
	return previous, order, nil
}
