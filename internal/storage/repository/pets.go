package repository

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/petcare-miniapp/internal/models"
	"github.com/magabrotheeeer/petcare-miniapp/internal/storage"
)

const petColumns = `id, user_id, name, breed, age, description, photo_url, created_at`

func scanPet(row scanner) (*models.Pet, error) {
	p := &models.Pet{}
	if err := row.Scan(&p.ID, &p.UserID, &p.Name, &p.Breed, &p.Age,
		&p.Description, &p.PhotoURL, &p.CreatedAt); err != nil {
		return nil, err
	}
	return p, nil
}

// CreatePet сохраняет питомца. Несуществующий владелец - storage.ErrReferenceNotFound.
func (s *Storage) CreatePet(ctx context.Context, pet models.DummyPet) (*models.Pet, error) {
	const op = "storage.CreatePet"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO pets (user_id, name, breed, age, description)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING ` + petColumns
	p, err := scanPet(s.DB.QueryRowContext(ctx, query,
		pet.UserID, pet.Name, pet.Breed, pet.Age, pet.Description))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapError(err))
	}
	return p, nil
}

// ListPetsByUser возвращает питомцев пользователя в порядке добавления.
func (s *Storage) ListPetsByUser(ctx context.Context, userID string) ([]models.Pet, error) {
	const op = "storage.ListPetsByUser"

	rows, err := s.DB.QueryContext(ctx,
		`SELECT `+petColumns+` FROM pets WHERE user_id = $1 ORDER BY created_at ASC`, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	result := make([]models.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, *p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// GetPet возвращает питомца по ID.
func (s *Storage) GetPet(ctx context.Context, petID string) (*models.Pet, error) {
	const op = "storage.GetPet"

	p, err := scanPet(s.DB.QueryRowContext(ctx, `SELECT `+petColumns+` FROM pets WHERE id = $1`, petID))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapError(err))
	}
	return p, nil
}

// UpdatePet меняет только переданные поля.
func (s *Storage) UpdatePet(ctx context.Context, petID string, upd models.PetUpdate) (*models.Pet, error) {
	const op = "storage.UpdatePet"

	query := `UPDATE pets
			  SET name = COALESCE($2, name),
			      breed = COALESCE($3, breed),
			      age = COALESCE($4, age),
			      description = COALESCE($5, description)
			  WHERE id = $1
			  RETURNING ` + petColumns
	p, err := scanPet(s.DB.QueryRowContext(ctx, query, petID, upd.Name, upd.Breed, upd.Age, upd.Description))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapError(err))
	}
	return p, nil
}

// DeletePet удаляет питомца. Если его нет - storage.ErrNotFound.
func (s *Storage) DeletePet(ctx context.Context, petID string) error {
	const op = "storage.DeletePet"

	res, err := s.DB.ExecContext(ctx, `DELETE FROM pets WHERE id = $1`, petID)
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
