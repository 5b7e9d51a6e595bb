package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/magabrotheeeer/petcare-miniapp/internal/models"
)

const orderColumns = `id, user_id, payment_id, amount, status, type, tariff_id, service_id,
	description, created_at, updated_at`

const orderWithTariffQuery = `SELECT o.id, o.user_id, o.payment_id, o.amount, o.status, o.type,
	o.tariff_id, o.service_id, o.description, o.created_at, o.updated_at,
	t.id, t.name, t.description, t.monthly_price, t.features, t.is_popular, t.is_active,
	t.created_at, t.updated_at
	FROM orders o
	LEFT JOIN tariffs t ON t.id = o.tariff_id`

func scanOrder(row scanner) (*models.Order, error) {
	o := &models.Order{}
	if err := row.Scan(&o.ID, &o.UserID, &o.PaymentID, &o.Amount, &o.Status, &o.Type,
		&o.TariffID, &o.ServiceID, &o.Description, &o.CreatedAt, &o.UpdatedAt); err != nil {
		return nil, err
	}
	return o, nil
}

func scanOrderWithTariff(row scanner) (*models.Order, error) {
	o := &models.Order{}
	var (
		tID, tName, tDescription sql.NullString
		tPrice                   sql.NullFloat64
		tFeatures                []byte
		tPopular, tActive        sql.NullBool
		tCreatedAt, tUpdatedAt   sql.NullTime
	)
	if err := row.Scan(&o.ID, &o.UserID, &o.PaymentID, &o.Amount, &o.Status, &o.Type,
		&o.TariffID, &o.ServiceID, &o.Description, &o.CreatedAt, &o.UpdatedAt,
		&tID, &tName, &tDescription, &tPrice, &tFeatures, &tPopular, &tActive,
		&tCreatedAt, &tUpdatedAt); err != nil {
		return nil, err
	}
	if !tID.Valid {
		return o, nil
	}

	t := &models.Tariff{
		ID:           tID.String,
		Name:         tName.String,
		Description:  tDescription.String,
		MonthlyPrice: tPrice.Float64,
		IsPopular:    tPopular.Bool,
		IsActive:     tActive.Bool,
		CreatedAt:    tCreatedAt.Time,
		UpdatedAt:    tUpdatedAt.Time,
	}
	if err := decodeFeatures(tFeatures, &t.Features); err != nil {
		return nil, err
	}
	o.Tariff = t
	return o, nil
}

// CreateOrder сохраняет заказ и возвращает его с присвоенным ID.
func (s *Storage) CreateOrder(ctx context.Context, order models.Order) (*models.Order, error) {
	const op = "storage.CreateOrder"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO orders (user_id, payment_id, amount, status, type, tariff_id, service_id, description)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  RETURNING ` + orderColumns
	o, err := scanOrder(s.DB.QueryRowContext(ctx, query,
		order.UserID, order.PaymentID, order.Amount, order.Status, order.Type,
		order.TariffID, order.ServiceID, order.Description))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapError(err))
	}
	return o, nil
}

// GetOrder возвращает заказ вместе с тарифом.
func (s *Storage) GetOrder(ctx context.Context, orderID string) (*models.Order, error) {
	const op = "storage.GetOrder"

	o, err := scanOrderWithTariff(s.DB.QueryRowContext(ctx, orderWithTariffQuery+` WHERE o.id = $1`, orderID))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapError(err))
	}
	return o, nil
}

// GetOrderByPaymentID возвращает заказ по идентификатору платежа вместе с тарифом.
func (s *Storage) GetOrderByPaymentID(ctx context.Context, paymentID string) (*models.Order, error) {
	const op = "storage.GetOrderByPaymentID"

	o, err := scanOrderWithTariff(s.DB.QueryRowContext(ctx, orderWithTariffQuery+` WHERE o.payment_id = $1`, paymentID))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapError(err))
	}
	return o, nil
}

// ListOrdersByUser возвращает заказы пользователя, новые первыми.
func (s *Storage) ListOrdersByUser(ctx context.Context, userID string) ([]models.Order, error) {
	const op = "storage.ListOrdersByUser"

	rows, err := s.DB.QueryContext(ctx, orderWithTariffQuery+` WHERE o.user_id = $1 ORDER BY o.created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	result := make([]models.Order, 0)
	for rows.Next() {
		o, err := scanOrderWithTariff(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, *o)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// MarkOrderPaid переводит заказ из pending в paid и, если change не nil,
// обновляет подписку пользователя в той же транзакции.
// Возвращает false, если заказ уже не в статусе pending.
func (s *Storage) MarkOrderPaid(ctx context.Context, orderID string, change *models.SubscriptionChange) (bool, error) {
	const op = "storage.MarkOrderPaid"

	applied := false
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		ok, err := transitionPending(ctx, tx, orderID, models.OrderPaid)
		if err != nil || !ok {
			return err
		}
		if change != nil {
			_, err = tx.ExecContext(ctx,
				`UPDATE users
				 SET subscription_plan = $2, subscription_expires_at = $3, updated_at = NOW()
				 WHERE id = $1`, change.UserID, change.Plan, change.ExpiresAt)
			if err != nil {
				return err
			}
		}
		applied = true
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return applied, nil
}

// MarkOrderCancelled переводит заказ из pending в cancelled.
func (s *Storage) MarkOrderCancelled(ctx context.Context, orderID string) (bool, error) {
	const op = "storage.MarkOrderCancelled"

	var applied bool
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		applied, err = transitionPending(ctx, tx, orderID, models.OrderCancelled)
		return err
	})
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return applied, nil
}

func transitionPending(ctx context.Context, tx *sql.Tx, orderID string, status models.OrderStatus) (bool, error) {
	res, err := tx.ExecContext(ctx,
		`UPDATE orders SET status = $2, updated_at = NOW()
		 WHERE id = $1 AND status = 'pending'`, orderID, status)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func decodeFeatures(raw []byte, dst *[]string) error {
	*dst = []string{}
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, dst)
}
