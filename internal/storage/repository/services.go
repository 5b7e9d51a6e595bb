package repository

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/petcare-miniapp/internal/models"
	"github.com/magabrotheeeer/petcare-miniapp/internal/storage"
)

const serviceColumns = `id, title, description, full_description, base_price, icon,
	is_active, created_at, updated_at`

func scanService(row scanner) (*models.Service, error) {
	sv := &models.Service{}
	if err := row.Scan(&sv.ID, &sv.Title, &sv.Description, &sv.FullDescription, &sv.BasePrice,
		&sv.Icon, &sv.IsActive, &sv.CreatedAt, &sv.UpdatedAt); err != nil {
		return nil, err
	}
	return sv, nil
}

// ListActiveServices возвращает активные услуги в порядке добавления.
func (s *Storage) ListActiveServices(ctx context.Context) ([]models.Service, error) {
	const op = "storage.ListActiveServices"

	rows, err := s.DB.QueryContext(ctx,
		`SELECT `+serviceColumns+` FROM services WHERE is_active = TRUE ORDER BY created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	result := make([]models.Service, 0)
	for rows.Next() {
		sv, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, *sv)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// GetService возвращает услугу по ID, в том числе неактивную.
func (s *Storage) GetService(ctx context.Context, serviceID string) (*models.Service, error) {
	const op = "storage.GetService"

	sv, err := scanService(s.DB.QueryRowContext(ctx,
		`SELECT `+serviceColumns+` FROM services WHERE id = $1`, serviceID))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapError(err))
	}
	return sv, nil
}

// CreateService добавляет услугу в каталог.
func (s *Storage) CreateService(ctx context.Context, in models.DummyService) (*models.Service, error) {
	const op = "storage.CreateService"

	query := `INSERT INTO services (title, description, full_description, base_price, icon)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING ` + serviceColumns
	sv, err := scanService(s.DB.QueryRowContext(ctx, query,
		in.Title, in.Description, in.FullDescription, in.BasePrice, in.Icon))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return sv, nil
}

// UpdateService меняет только переданные поля.
func (s *Storage) UpdateService(ctx context.Context, serviceID string, upd models.ServiceUpdate) (*models.Service, error) {
	const op = "storage.UpdateService"

	query := `UPDATE services
			  SET title = COALESCE($2, title),
			      description = COALESCE($3, description),
			      full_description = COALESCE($4, full_description),
			      base_price = COALESCE($5, base_price),
			      icon = COALESCE($6, icon),
			      is_active = COALESCE($7, is_active),
			      updated_at = NOW()
			  WHERE id = $1
			  RETURNING ` + serviceColumns
	sv, err := scanService(s.DB.QueryRowContext(ctx, query, serviceID,
		upd.Title, upd.Description, upd.FullDescription, upd.BasePrice, upd.Icon, upd.IsActive))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapError(err))
	}
	return sv, nil
}

// DeactivateService скрывает услугу из каталога (is_active = false).
func (s *Storage) DeactivateService(ctx context.Context, serviceID string) error {
	const op = "storage.DeactivateService"

	res, err := s.DB.ExecContext(ctx,
		`UPDATE services SET is_active = FALSE, updated_at = NOW() WHERE id = $1`, serviceID)
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
