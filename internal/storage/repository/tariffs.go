package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/magabrotheeeer/petcare-miniapp/internal/models"
	"github.com/magabrotheeeer/petcare-miniapp/internal/storage"
)

const tariffColumns = `id, name, description, monthly_price, features, is_popular,
	is_active, created_at, updated_at`

func scanTariff(row scanner) (*models.Tariff, error) {
	t := &models.Tariff{}
	var features []byte
	if err := row.Scan(&t.ID, &t.Name, &t.Description, &t.MonthlyPrice, &features,
		&t.IsPopular, &t.IsActive, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	if err := decodeFeatures(features, &t.Features); err != nil {
		return nil, err
	}
	return t, nil
}

func encodeFeatures(features []string) (string, error) {
	if features == nil {
		features = []string{}
	}
	b, err := json.Marshal(features)
	return string(b), err
}

// ListActiveTariffs возвращает активные тарифы по возрастанию цены.
func (s *Storage) ListActiveTariffs(ctx context.Context) ([]models.Tariff, error) {
	const op = "storage.ListActiveTariffs"

	rows, err := s.DB.QueryContext(ctx,
		`SELECT `+tariffColumns+` FROM tariffs WHERE is_active = TRUE ORDER BY monthly_price ASC`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	result := make([]models.Tariff, 0)
	for rows.Next() {
		t, err := scanTariff(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, *t)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// GetTariff возвращает тариф по ID.
func (s *Storage) GetTariff(ctx context.Context, tariffID string) (*models.Tariff, error) {
	const op = "storage.GetTariff"

	t, err := scanTariff(s.DB.QueryRowContext(ctx,
		`SELECT `+tariffColumns+` FROM tariffs WHERE id = $1`, tariffID))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapError(err))
	}
	return t, nil
}

// CreateTariff добавляет тариф.
func (s *Storage) CreateTariff(ctx context.Context, in models.DummyTariff) (*models.Tariff, error) {
	const op = "storage.CreateTariff"

	features, err := encodeFeatures(in.Features)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	query := `INSERT INTO tariffs (name, description, monthly_price, features, is_popular)
			  VALUES ($1, $2, $3, $4::jsonb, $5)
			  RETURNING ` + tariffColumns
	t, err := scanTariff(s.DB.QueryRowContext(ctx, query,
		in.Name, in.Description, in.MonthlyPrice, features, in.IsPopular))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return t, nil
}

// UpdateTariff меняет только переданные поля.
func (s *Storage) UpdateTariff(ctx context.Context, tariffID string, upd models.TariffUpdate) (*models.Tariff, error) {
	const op = "storage.UpdateTariff"

	var features *string
	if upd.Features != nil {
		encoded, err := encodeFeatures(*upd.Features)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		features = &encoded
	}

	query := `UPDATE tariffs
			  SET name = COALESCE($2, name),
			      description = COALESCE($3, description),
			      monthly_price = COALESCE($4, monthly_price),
			      features = COALESCE($5::jsonb, features),
			      is_popular = COALESCE($6, is_popular),
			      is_active = COALESCE($7, is_active),
			      updated_at = NOW()
			  WHERE id = $1
			  RETURNING ` + tariffColumns
	t, err := scanTariff(s.DB.QueryRowContext(ctx, query, tariffID,
		upd.Name, upd.Description, upd.MonthlyPrice, features, upd.IsPopular, upd.IsActive))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapError(err))
	}
	return t, nil
}

// DeactivateTariff скрывает тариф (is_active = false).
func (s *Storage) DeactivateTariff(ctx context.Context, tariffID string) error {
	const op = "storage.DeactivateTariff"

	res, err := s.DB.ExecContext(ctx,
		`UPDATE tariffs SET is_active = FALSE, updated_at = NOW() WHERE id = $1`, tariffID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}
	return nil
}
