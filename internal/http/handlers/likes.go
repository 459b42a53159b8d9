package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/HeetJani123/ethos-web-collective/internal/http/httperr"
	"github.com/HeetJani123/ethos-web-collective/internal/service"
)

// ToggleLike — POST /journal/{id}/like, требует входа.
// Одна операция на обе стороны: сервер сам решает, ставить или снимать,
// и возвращает итоговое состояние со счётчиком.
func (h *Handlers) ToggleLike(w http.ResponseWriter, r *http.Request) {
	identity := requireIdentity(w, r)
	if identity == nil {
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		httperr.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	state, err := h.svc.ToggleLike(r.Context(), id, identity.UserID)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, LikeResponse{
		Liked: state.Liked,
		Likes: state.Likes,
	})
}
