package models

import (
	"time"

	"github.com/akinalp/patievi/pkg"
)

// Species, hayvanın türünü temsil eder.
// Go'da enum yoktur — typed constant kullanılır. Sayısal değerler
// API kontratının parçasıdır, değiştirilemez.
type Species int

const (
	SpeciesDog Species = 0
	SpeciesCat Species = 1
)

// Animal, sahiplendirme kataloğundaki bir hayvanı temsil eder.
type Animal struct {
	ID          string    `json:"id"` // UUID, uygulama tarafında üretilir
	Species     Species   `json:"species"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// AnimalRequest, POST /animals ve PUT /animals/:id gövdesi.
//
// Species pointer'dır: JSON'da alan hiç gönderilmemişse nil olur.
// Değer tipi olsaydı eksik alan ile geçerli 0 (dog) ayırt edilemezdi.
type AnimalRequest struct {
	Species     *Species `json:"species"`
	Description string   `json:"description"`
}

// Validate, request'teki tüm sorunları liste olarak döner.
func (r *AnimalRequest) Validate() []pkg.Issue {
	var issues []pkg.Issue

	if r.Species == nil {
		issues = append(issues, pkg.Issue{
			Field:   "species",
			Message: "is required",
		})
	} else if *r.Species != SpeciesDog && *r.Species != SpeciesCat {
		issues = append(issues, pkg.Issue{
			Field:   "species",
			Message: "must be 0 (dog) or 1 (cat)",
		})
	}

	if r.Description == "" {
		issues = append(issues, pkg.Issue{
			Field:   "description",
			Message: "is required",
		})
	}

	return issues
}
