package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/HeetJani123/ethos-web-collective/internal/http/httperr"
	"github.com/HeetJani123/ethos-web-collective/internal/http/middleware"
	"github.com/HeetJani123/ethos-web-collective/internal/models"
	"github.com/HeetJani123/ethos-web-collective/internal/service"
)

// Handlers агрегирует зависимости (сервисный слой).
type Handlers struct {
	svc *service.Service
}

func New(svc *service.Service) *Handlers {
	return &Handlers{svc: svc}
}

// writeJSON — единый ответ JSON с нужным Content-Type.
// Ошибки выводим через httperr.WriteError.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// decodeStrict — строгий JSON-декодер: запрещаем неизвестные поля.
func decodeStrict(r *http.Request, value any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(value)
}

// requireIdentity достаёт пользователя из контекста; для анонимного
// запроса пишет 401 и возвращает nil — хендлер в этом случае выходит.
func requireIdentity(w http.ResponseWriter, r *http.Request) *models.Identity {
	identity := middleware.IdentityFrom(r.Context())
	if identity == nil {
		httperr.WriteError(w, r, httperr.ErrUnauthenticated)
		return nil
	}
	return identity
}
