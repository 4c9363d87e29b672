package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/akinalp/patievi/models"
	"github.com/akinalp/patievi/pkg"
	"github.com/akinalp/patievi/router"
	"github.com/akinalp/patievi/services"
)

// AnimalHandler, sahiplendirme kataloğu endpoint'lerini yönetir.
type AnimalHandler struct {
	animalService services.AnimalService
}

// NewAnimalHandler, constructor.
func NewAnimalHandler(animalService services.AnimalService) *AnimalHandler {
	return &AnimalHandler{animalService: animalService}
}

// List godoc
// GET /animals
// Kayıtlı hayvanların id listesini döner.
func (h *AnimalHandler) List(w http.ResponseWriter, r *http.Request, _ *router.MatchResult) {
	ids, err := h.animalService.ListIDs(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, ids)
}

// Get godoc
// GET /animals/:id
func (h *AnimalHandler) Get(w http.ResponseWriter, r *http.Request, m *router.MatchResult) {
	animal, err := h.animalService.Get(r.Context(), m.Params["id"])
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, animal)
}

// Create godoc
// POST /animals
// Body: { "species": 0|1, "description": "..." }
func (h *AnimalHandler) Create(w http.ResponseWriter, r *http.Request, _ *router.MatchResult) {
	req, ok := decodeAnimal(w, r)
	if !ok {
		return
	}

	id, err := h.animalService.Create(r.Context(), req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusCreated, map[string]string{"id": id})
}

// Update godoc
// PUT /animals/:id
func (h *AnimalHandler) Update(w http.ResponseWriter, r *http.Request, m *router.MatchResult) {
	req, ok := decodeAnimal(w, r)
	if !ok {
		return
	}

	if err := h.animalService.Update(r.Context(), m.Params["id"], req); err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.Message(w, http.StatusOK, "Animal updated")
}

// Delete godoc
// DELETE /animals/:id
func (h *AnimalHandler) Delete(w http.ResponseWriter, r *http.Request, m *router.MatchResult) {
	if err := h.animalService.Delete(r.Context(), m.Params["id"]); err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.Message(w, http.StatusOK, "Animal deleted")
}

// decodeAnimal, body'yi parse edip validate eder.
// Hata durumunda response'u kendisi yazar ve ok=false döner.
func decodeAnimal(w http.ResponseWriter, r *http.Request) (*models.AnimalRequest, bool) {
	var req models.AnimalRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ValidationError(w, []pkg.Issue{{
			Field:   "body",
			Message: "must be valid JSON",
		}})
		return nil, false
	}

	if issues := req.Validate(); len(issues) > 0 {
		pkg.ValidationError(w, issues)
		return nil, false
	}

	return &req, true
}
