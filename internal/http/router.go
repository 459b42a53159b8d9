package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/HeetJani123/ethos-web-collective/internal/http/handlers"
	"github.com/HeetJani123/ethos-web-collective/internal/http/middleware"
	"github.com/HeetJani123/ethos-web-collective/internal/metrics"
	"github.com/HeetJani123/ethos-web-collective/internal/service"
)

// Options — параметры сборки HTTP-роутера.
type Options struct {
	Logger   *slog.Logger
	Timeout  time.Duration
	Metrics  *metrics.Collector      // nil — без HTTP-метрик.
	Limiter  *middleware.RateLimiter // nil — без лимита на мутации.
	BasePath string                  // например, "/api"; если пустой — роуты регистрируются на корне.
}

// NewRouter собирает http.Handler с chi и подключёнными middleware/роутами.
func NewRouter(svc *service.Service, opts Options) http.Handler {
	root := chi.NewRouter()

	// Middleware (внешний -> внутренний).
	root.Use(
		middleware.Recover(),            // безопасно ловим паники
		middleware.RequestID(),          // формируем/прокидываем X-Request-Id (до логирования!)
		middleware.Logging(opts.Logger), // кладём request-scoped логгер в контекст и логируем
		middleware.Metrics(opts.Metrics),
		middleware.AuthBearer(svc), // валидируем Bearer токен, кладём Identity в контекст
	)
	if opts.Timeout > 0 {
		root.Use(middleware.Timeout(opts.Timeout)) // общий дедлайн запроса
	}

	// Зависимости хендлеров.
	h := handlers.New(svc)

	// Регистрация маршрутов.
	if opts.BasePath != "" {
		sub := chi.NewRouter()
		registerRoutes(sub, h, opts.Limiter)
		root.Mount(opts.BasePath, sub)
		return root
	}

	registerRoutes(root, h, opts.Limiter)
	return root
}

// registerRoutes — единая точка регистрации всех REST-эндпойнтов.
// Лимит запросов навешивается только на мутации: чтение журнала — публичная
// витрина, её душить нельзя.
func registerRoutes(r chi.Router, h *handlers.Handlers, limiter *middleware.RateLimiter) {
	limited := func(fn http.HandlerFunc) http.HandlerFunc {
		if limiter == nil {
			return fn
		}
		wrapped := limiter.Middleware()(fn)
		return wrapped.ServeHTTP
	}

	// auth
	r.Post("/auth/register", limited(h.RegisterUser))
	r.Post("/auth/login", limited(h.LoginUser))
	r.Post("/auth/refresh", limited(h.RefreshToken))
	r.Post("/auth/revoke", limited(h.RevokeToken))
	r.Get("/auth/me", h.CurrentSession)

	// journal
	r.Get("/journal", h.ListArticles)
	r.Post("/journal", limited(h.CreateArticle))
	r.Get("/journal/{id}", h.GetArticleByID)

	// comments
	r.Get("/journal/{id}/comments", h.ListComments)
	r.Post("/journal/{id}/comments", limited(h.CreateComment))

	// likes
	r.Post("/journal/{id}/like", limited(h.ToggleLike))

	// admin
	r.Post("/admin/members/{user_id}", limited(h.GrantMembership))

	// teams
	r.Get("/teams", h.ListTeams)
}
