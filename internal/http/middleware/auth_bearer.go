package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/HeetJani123/ethos-web-collective/internal/http/httperr"
	"github.com/HeetJani123/ethos-web-collective/internal/models"
	"github.com/HeetJani123/ethos-web-collective/internal/service"
)

// TokenValidator — минимальный контракт проверки access-токена.
// Реализуется сервисным слоем (service.Service.ValidateToken).
type TokenValidator interface {
	ValidateToken(ctx context.Context, accessToken string) (*models.Identity, error)
}

// AuthBearer извлекает Bearer-токен из Authorization, валидирует его
// и кладёт Identity пользователя в контекст.
//
// Семантика:
//   - заголовка нет — запрос анонимный, идём дальше (публичные маршруты
//     сами решают, нужен ли им пользователь);
//   - заголовок есть, но токен не прошёл проверку — сразу 401
//     (присланный токен обязан быть действительным).
func AuthBearer(v TokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if auth == "" {
				next.ServeHTTP(w, r)
				return
			}

			const prefix = "Bearer "
			if !strings.HasPrefix(auth, prefix) || len(auth) == len(prefix) {
				httperr.WriteError(w, r, service.ErrInvalidToken)
				return
			}

			token := strings.TrimSpace(auth[len(prefix):])
			if token == "" {
				httperr.WriteError(w, r, service.ErrInvalidToken)
				return
			}

			identity, err := v.ValidateToken(r.Context(), token)
			if err != nil {
				httperr.WriteError(w, r, err)
				return
			}

			ctx := context.WithValue(r.Context(), ctxIdentity, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IdentityFrom возвращает аутентифицированного пользователя из контекста
// (nil — запрос анонимный).
func IdentityFrom(ctx context.Context) *models.Identity {
	if id, ok := ctx.Value(ctxIdentity).(*models.Identity); ok {
		return id
	}
	return nil
}
