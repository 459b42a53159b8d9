package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/HeetJani123/ethos-web-collective/internal/http/httperr"
)

// clientLimiter — токен-бакет конкретного клиента и время последнего обращения.
type clientLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// RateLimiter ограничивает частоту запросов на клиента.
// Ключ — user id аутентифицированного пользователя, иначе IP-адрес.
// Просроченные бакеты вычищаются фоновой горутиной.
type RateLimiter struct {
	rps   rate.Limit
	burst int

	mu       sync.Mutex
	limiters map[string]*clientLimiter

	cleanupEvery time.Duration
	stopCh       chan struct{}
	stopOnce     sync.Once
}

// NewRateLimiter создаёт лимитер и запускает фоновую очистку.
func NewRateLimiter(rps float64, burst int) *RateLimiter {
	rl := &RateLimiter{
		rps:          rate.Limit(rps),
		burst:        burst,
		limiters:     make(map[string]*clientLimiter),
		cleanupEvery: 5 * time.Minute,
		stopCh:       make(chan struct{}),
	}

	go rl.cleanupLoop()

	return rl
}

// Stop останавливает фоновую очистку. Повторный вызов безопасен.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stopCh) })
}

// Middleware возвращает мидлвар с лимитом на клиента.
// Должен стоять после AuthBearer, чтобы ключом был user id, а не IP.
func (rl *RateLimiter) Middleware() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := rl.clientKey(r)

			if !rl.limiterFor(key).Allow() {
				// Retry-After — оценка времени до пополнения одного токена.
				retryAfter := int(math.Ceil(1.0 / float64(rl.rps)))
				if retryAfter < 1 {
					retryAfter = 1
				}
				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))

				httperr.WriteError(w, r, httperr.ErrRateLimited)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// LimiterCount — число живых бакетов (для тестов).
func (rl *RateLimiter) LimiterCount() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.limiters)
}

func (rl *RateLimiter) clientKey(r *http.Request) string {
	if id := IdentityFrom(r.Context()); id != nil {
		return id.UserID.String()
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func (rl *RateLimiter) limiterFor(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if cl, ok := rl.limiters[key]; ok {
		cl.lastAccess = time.Now()
		return cl.limiter
	}

	cl := &clientLimiter{
		limiter:    rate.NewLimiter(rl.rps, rl.burst),
		lastAccess: time.Now(),
	}
	rl.limiters[key] = cl

	return cl.limiter
}

func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(rl.cleanupEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanup()
		case <-rl.stopCh:
			return
		}
	}
}

// cleanup удаляет бакеты, к которым не обращались дольше двух интервалов очистки.
func (rl *RateLimiter) cleanup() {
	ttl := rl.cleanupEvery * 2
	now := time.Now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	for key, cl := range rl.limiters {
		if now.Sub(cl.lastAccess) > ttl {
			delete(rl.limiters, key)
		}
	}
}
