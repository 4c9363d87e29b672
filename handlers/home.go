package handlers

import (
	"net/http"

	"github.com/akinalp/patievi/pkg"
	"github.com/akinalp/patievi/router"
)

// Home godoc
// GET /
func Home(w http.ResponseWriter, _ *http.Request, _ *router.MatchResult) {
	pkg.Message(w, http.StatusOK, "Hello, World!")
}
