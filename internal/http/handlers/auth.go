package handlers

import (
	"net/http"

	"github.com/HeetJani123/ethos-web-collective/internal/http/httperr"
	"github.com/HeetJani123/ethos-web-collective/internal/service"
)

func (h *Handlers) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var in AuthRegisterRequest
	if err := decodeStrict(r, &in); err != nil {
		httperr.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	pair, userID, err := h.svc.RegisterUser(r.Context(), in.Email, in.Password, in.Username)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, authResponseFrom(pair, userID.String()))
}

func (h *Handlers) LoginUser(w http.ResponseWriter, r *http.Request) {
	var in AuthLoginRequest
	if err := decodeStrict(r, &in); err != nil {
		httperr.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	pair, userID, err := h.svc.LoginUser(r.Context(), in.Email, in.Password)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, authResponseFrom(pair, userID.String()))
}

func (h *Handlers) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var in AuthRefreshRequest
	if err := decodeStrict(r, &in); err != nil {
		httperr.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	pair, userID, err := h.svc.RefreshToken(r.Context(), in.RefreshToken)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, authResponseFrom(pair, userID.String()))
}

func (h *Handlers) RevokeToken(w http.ResponseWriter, r *http.Request) {
	var in AuthRevokeRequest
	if err := decodeStrict(r, &in); err != nil {
		httperr.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	if err := h.svc.RevokeToken(r.Context(), in.RefreshToken); err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, AuthRevokeResponse{Ok: true})
}

// CurrentSession — GET /auth/me: личность и профиль текущего пользователя.
// Фронт дергает его при старте, чтобы восстановить сессию из сохранённого токена.
func (h *Handlers) CurrentSession(w http.ResponseWriter, r *http.Request) {
	identity := requireIdentity(w, r)
	if identity == nil {
		return
	}

	session, err := h.svc.CurrentSession(r.Context(), *identity)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, SessionResponse{
		UserID:   session.UserID.String(),
		Email:    session.Email,
		Username: session.Profile.Username,
		IsMember: session.Profile.IsMember,
	})
}
