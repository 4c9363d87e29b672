package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/akinalp/patievi/database"
	"github.com/akinalp/patievi/models"
	"github.com/akinalp/patievi/pkg"
)

// sqliteAnimalRepo, AnimalRepository interface'inin SQLite implementasyonu.
type sqliteAnimalRepo struct {
	db database.TxQuerier
}

// NewSQLiteAnimalRepo, constructor.
func NewSQLiteAnimalRepo(db database.TxQuerier) AnimalRepository {
	return &sqliteAnimalRepo{db: db}
}

func (r *sqliteAnimalRepo) Create(ctx context.Context, animal *models.Animal) error {
	query := `
		INSERT INTO animals (id, species, description)
		VALUES (?, ?, ?)
		RETURNING created_at`

	err := r.db.QueryRowContext(ctx, query,
		animal.ID,
		animal.Species,
		animal.Description,
	).Scan(&animal.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create animal: %w", err)
	}

	return nil
}

func (r *sqliteAnimalRepo) GetByID(ctx context.Context, id string) (*models.Animal, error) {
	query := `
		SELECT id, species, description, created_at
		FROM animals WHERE id = ?`

	animal := &models.Animal{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&animal.ID, &animal.Species, &animal.Description, &animal.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get animal by id: %w", err)
	}

	return animal, nil
}

func (r *sqliteAnimalRepo) ListIDs(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id FROM animals ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("failed to list animals: %w", err)
	}
	defer rows.Close() // rows kapatılmazsa bağlantı sızar (leak)

	// Boş katalog [] dönmeli, null değil — slice'ı baştan ayır.
	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan animal row: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating animal rows: %w", err)
	}

	return ids, nil
}

func (r *sqliteAnimalRepo) Update(ctx context.Context, animal *models.Animal) error {
	query := `UPDATE animals SET species = ?, description = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query,
		animal.Species, animal.Description, animal.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update animal: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if affected == 0 {
		return pkg.ErrNotFound
	}

	return nil
}

func (r *sqliteAnimalRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM animals WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete animal: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if affected == 0 {
		return pkg.ErrNotFound
	}

	return nil
}
