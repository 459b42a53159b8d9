package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/HeetJani123/ethos-web-collective/internal/http/httperr"
	"github.com/HeetJani123/ethos-web-collective/internal/service"
)

// GrantMembership — POST /admin/members/{user_id}.
// Выставляет флаг членства целевому профилю; право на операцию
// (таблица journal_admins) проверяет сервисный слой.
func (h *Handlers) GrantMembership(w http.ResponseWriter, r *http.Request) {
	identity := requireIdentity(w, r)
	if identity == nil {
		return
	}

	targetID, err := uuid.Parse(chi.URLParam(r, "user_id"))
	if err != nil {
		httperr.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	var in MembershipRequest
	if err := decodeStrict(r, &in); err != nil {
		httperr.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	if err := h.svc.GrantMembership(r.Context(), identity.UserID, targetID, in.IsMember); err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, MembershipRequest{IsMember: in.IsMember})
}
