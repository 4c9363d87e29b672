package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/akinalp/patievi/models"
	"github.com/akinalp/patievi/repository"
)

// AnimalService, sahiplendirme kataloğunun iş mantığı.
type AnimalService interface {
	// Create, yeni kayıt oluşturur ve üretilen id'yi döner.
	Create(ctx context.Context, req *models.AnimalRequest) (string, error)
	Get(ctx context.Context, id string) (*models.Animal, error)
	ListIDs(ctx context.Context) ([]string, error)
	Update(ctx context.Context, id string, req *models.AnimalRequest) error
	Delete(ctx context.Context, id string) error
}

// animalService, AnimalService interface'inin implementasyonu.
type animalService struct {
	animalRepo repository.AnimalRepository
}

// NewAnimalService, constructor.
func NewAnimalService(animalRepo repository.AnimalRepository) AnimalService {
	return &animalService{animalRepo: animalRepo}
}

func (s *animalService) Create(ctx context.Context, req *models.AnimalRequest) (string, error) {
	animal := &models.Animal{
		ID:          uuid.NewString(),
		Species:     *req.Species,
		Description: req.Description,
	}

	if err := s.animalRepo.Create(ctx, animal); err != nil {
		return "", err
	}

	return animal.ID, nil
}

func (s *animalService) Get(ctx context.Context, id string) (*models.Animal, error) {
	return s.animalRepo.GetByID(ctx, id)
}

func (s *animalService) ListIDs(ctx context.Context) ([]string, error) {
	return s.animalRepo.ListIDs(ctx)
}

func (s *animalService) Update(ctx context.Context, id string, req *models.AnimalRequest) error {
	animal := &models.Animal{
		ID:          id,
		Species:     *req.Species,
		Description: req.Description,
	}
	return s.animalRepo.Update(ctx, animal)
}

func (s *animalService) Delete(ctx context.Context, id string) error {
	return s.animalRepo.Delete(ctx, id)
}
