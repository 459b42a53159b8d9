package middleware

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/HeetJani123/ethos-web-collective/internal/models"
	"github.com/HeetJani123/ethos-web-collective/internal/service"
)

// capHandler — тестовый slog.Handler, который:
//   - аккумулирует базовые attrs, приходящие через Logger.With(...);
//   - собирает attrs из каждой записи в map[string]any;
//   - не создаёт реальных I/O, чтобы не паниковать в тестах.
type capHandler struct {
	base    []slog.Attr
	lastMsg string
	lastLvl slog.Level
	attrs   map[string]any
	count   int
}

func (h *capHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *capHandler) Handle(_ context.Context, r slog.Record) error {
	out := make(map[string]any, len(h.base)+8)

	for _, a := range h.base {
		out[a.Key] = a.Value.Any()
	}

	r.Attrs(func(a slog.Attr) bool {
		out[a.Key] = a.Value.Any()
		return true
	})

	h.count++
	h.lastMsg = r.Message
	h.lastLvl = r.Level
	h.attrs = out

	return nil
}

func (h *capHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) > 0 {
		h.base = append(h.base, attrs...)
	}

	return h
}

func (h *capHandler) WithGroup(string) slog.Handler { return h }

func makeReq(target string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.RemoteAddr = (&net.TCPAddr{IP: net.ParseIP("127.0.0.1"), Port: 12345}).String()
	return req
}

type apiError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

type errEnvelope struct {
	Error apiError `json:"error"`
}

// stubValidator — подмена TokenValidator: один валидный токен, остальным отказ.
type stubValidator struct {
	token    string
	identity *models.Identity
}

func (s *stubValidator) ValidateToken(_ context.Context, accessToken string) (*models.Identity, error) {
	if accessToken == s.token {
		return s.identity, nil
	}
	return nil, service.ErrInvalidToken
}

func TestChain_Order(t *testing.T) {
	order := []string{}

	m1 := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			order = append(order, "m1-begin")
			next.ServeHTTP(w, r)
			order = append(order, "m1-end")
		})
	}

	m2 := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			order = append(order, "m2-begin")
			next.ServeHTTP(w, r)
			order = append(order, "m2-end")
		})
	}

	final := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
		w.WriteHeader(http.StatusTeapot)
	})

	rec := httptest.NewRecorder()
	Chain(final, m1, m2).ServeHTTP(rec, makeReq("/x"))

	require.Equal(t, http.StatusTeapot, rec.Code)
	require.Equal(t, []string{"m1-begin", "m2-begin", "handler", "m2-end", "m1-end"}, order)
}

func TestRequestID_GeneratesWhenAbsent(t *testing.T) {
	var seen string

	h := RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFrom(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, makeReq("/x"))

	require.Len(t, seen, 32)
	require.Equal(t, seen, rec.Header().Get("X-Request-Id"))
}

func TestRequestID_PropagatesExisting(t *testing.T) {
	var seen string

	h := RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFrom(r.Context())
	}))

	req := makeReq("/x")
	req.Header.Set("X-Request-Id", "given-id")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, "given-id", seen)
	require.Equal(t, "given-id", rec.Header().Get("X-Request-Id"))
}

func TestLogging_RecordsRequestAttrs(t *testing.T) {
	cap := &capHandler{}
	logger := slog.New(cap)

	h := Chain(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte("created"))
		}),
		RequestID(),
		Logging(logger),
	)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, makeReq("/journal"))

	require.Equal(t, 1, cap.count)
	require.Equal(t, "http", cap.lastMsg)
	require.Equal(t, slog.LevelInfo, cap.lastLvl)
	require.Equal(t, "GET", cap.attrs["method"])
	require.Equal(t, "/journal", cap.attrs["path"])
	require.EqualValues(t, http.StatusCreated, cap.attrs["status"])
	require.NotEmpty(t, cap.attrs["request_id"])
}

func TestRecover_ConvertsPanicTo500(t *testing.T) {
	cap := &capHandler{}
	logger := slog.New(cap)

	h := Chain(
		http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			panic("boom")
		}),
		Recover(),
		RequestID(),
		Logging(logger),
	)

	rec := httptest.NewRecorder()
	require.NotPanics(t, func() { h.ServeHTTP(rec, makeReq("/x")) })

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var env errEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.Equal(t, "internal", env.Error.Code)
	require.NotContains(t, rec.Body.String(), "boom")
}

func TestTimeout_SetsDeadline(t *testing.T) {
	var hadDeadline bool

	h := Timeout(50 * time.Millisecond)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hadDeadline = r.Context().Deadline()
	}))

	h.ServeHTTP(httptest.NewRecorder(), makeReq("/x"))
	require.True(t, hadDeadline)
}

func TestTimeout_ZeroIsNoop(t *testing.T) {
	var hadDeadline bool

	h := Timeout(0)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hadDeadline = r.Context().Deadline()
	}))

	h.ServeHTTP(httptest.NewRecorder(), makeReq("/x"))
	require.False(t, hadDeadline)
}

func TestAuthBearer_AnonymousPassesWithoutIdentity(t *testing.T) {
	v := &stubValidator{token: "good", identity: &models.Identity{UserID: uuid.New()}}

	var got *models.Identity
	h := AuthBearer(v)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = IdentityFrom(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, makeReq("/journal"))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Nil(t, got)
}

func TestAuthBearer_ValidToken(t *testing.T) {
	identity := &models.Identity{UserID: uuid.New(), Email: "user@example.com"}
	v := &stubValidator{token: "good", identity: identity}

	var got *models.Identity
	h := AuthBearer(v)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = IdentityFrom(r.Context())
	}))

	req := makeReq("/journal")
	req.Header.Set("Authorization", "Bearer good")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, identity, got)
}

func TestAuthBearer_InvalidTokenRejected(t *testing.T) {
	v := &stubValidator{token: "good"}

	called := false
	h := AuthBearer(v)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		called = true
	}))

	req := makeReq("/journal")
	req.Header.Set("Authorization", "Bearer bad")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.False(t, called)

	var env errEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.Equal(t, "unauthenticated", env.Error.Code)
}

func TestAuthBearer_MalformedHeaderRejected(t *testing.T) {
	v := &stubValidator{token: "good"}

	h := AuthBearer(v)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	for _, header := range []string{"Bearer", "Bearer ", "Basic abc"} {
		req := makeReq("/journal")
		req.Header.Set("Authorization", header)

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
	}
}

func TestRateLimiter_BurstThen429(t *testing.T) {
	rl := NewRateLimiter(1, 2)
	defer rl.Stop()

	h := rl.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	// Burst=2: два запроса проходят, третий упирается в лимит.
	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, makeReq("/journal"))
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, makeReq("/journal"))
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.NotEmpty(t, rec.Header().Get("Retry-After"))

	var env errEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.Equal(t, "resource_exhausted", env.Error.Code)
}

func TestRateLimiter_KeysAreIndependent(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	defer rl.Stop()

	h := rl.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	// Первый клиент исчерпал корзину.
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, makeReq("/journal"))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, makeReq("/journal"))
	require.Equal(t, http.StatusTooManyRequests, rec.Code)

	// Второй клиент (другой IP) не задет.
	other := makeReq("/journal")
	other.RemoteAddr = (&net.TCPAddr{IP: net.ParseIP("10.0.0.7"), Port: 2222}).String()

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, other)
	require.Equal(t, http.StatusOK, rec.Code)

	require.Equal(t, 2, rl.LimiterCount())
}

func TestRateLimiter_AuthenticatedKeyIsUserID(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	defer rl.Stop()

	identity := &models.Identity{UserID: uuid.New()}
	v := &stubValidator{token: "good", identity: identity}

	h := Chain(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}),
		AuthBearer(v),
		rl.Middleware(),
	)

	// Один и тот же пользователь с разных адресов делит одну корзину.
	for i, addr := range []string{"127.0.0.1:1000", "10.1.1.1:2000"} {
		req := makeReq("/journal")
		req.RemoteAddr = addr
		req.Header.Set("Authorization", "Bearer good")

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if i == 0 {
			require.Equal(t, http.StatusOK, rec.Code)
		} else {
			require.Equal(t, http.StatusTooManyRequests, rec.Code)
		}
	}

	require.Equal(t, 1, rl.LimiterCount())
}
