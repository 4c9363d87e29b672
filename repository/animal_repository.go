package repository

import (
	"context"

	"github.com/akinalp/patievi/models"
)

// AnimalRepository, animals tablosu için interface.
type AnimalRepository interface {
	Create(ctx context.Context, animal *models.Animal) error
	GetByID(ctx context.Context, id string) (*models.Animal, error)
	// ListIDs, kayıtlı tüm hayvanların id'lerini ekleniş sırasıyla döner.
	ListIDs(ctx context.Context) ([]string, error)
	// Update, mevcut bir kaydın species ve description alanlarını günceller.
	// Kayıt yoksa pkg.ErrNotFound döner.
	Update(ctx context.Context, animal *models.Animal) error
	Delete(ctx context.Context, id string) error
}
