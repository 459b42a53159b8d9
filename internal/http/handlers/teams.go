package handlers

import (
	"net/http"

	"github.com/HeetJani123/ethos-web-collective/internal/models"
)

// ListTeams — GET /teams: статичный состав исследовательских групп.
func (h *Handlers) ListTeams(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, struct {
		Teams []models.Team `json:"teams"`
	}{Teams: models.ResearchTeams()})
}
