// Package repository, veri erişim katmanını tanımlar.
//
// Repository Pattern: her veri kaynağı için bir interface + bir concrete
// implementasyon. Service katmanı interface'e bağımlıdır — testlerde
// fake implementasyon geçilebilir, SQL detayları dışarı sızmaz.
package repository

import (
	"context"

	"github.com/akinalp/patievi/models"
)

// UserRepository, users tablosu için interface.
type UserRepository interface {
	// Create, yeni kullanıcı satırı ekler; id ve created_at doldurulur.
	// Email zaten kayıtlıysa pkg.ErrAlreadyExists döner.
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
}
