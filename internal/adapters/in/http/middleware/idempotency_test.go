package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type idempotencyFixture struct {
	e      *echo.Echo
	redis  *miniredis.Miniredis
	calls  *atomic.Int32
	status int
}

func newIdempotencyFixture(t *testing.T) *idempotencyFixture {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	f := &idempotencyFixture{e: echo.New(), redis: mr, calls: &atomic.Int32{}, status: http.StatusCreated}
	f.e.Use(Idempotency(client, IdempotencyConfig{
		LockTTL:     5 * time.Second,
		ResponseTTL: time.Hour,
		Logger:      slog.New(slog.DiscardHandler),
	}))

	handler := func(c echo.Context) error {
		n := f.calls.Add(1)
		if f.status >= http.StatusBadRequest {
			return echo.NewHTTPError(f.status, "rejected")
		}
		return c.JSON(f.status, map[string]any{"call": n})
	}
	f.e.POST("/loads", handler)
	f.e.PUT("/loads/:id", handler)
	f.e.GET("/loads", handler)
	return f
}

func (f *idempotencyFixture) do(method, target, key string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if key != "" {
		req.Header.Set(HeaderIdempotencyKey, key)
	}
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)
	return rec
}

func TestIdempotency_ReplaysSuccessfulResponse(t *testing.T) {
	f := newIdempotencyFixture(t)

	first := f.do(http.MethodPost, "/loads", "key-1")
	second := f.do(http.MethodPost, "/loads", "key-1")

	require.Equal(t, http.StatusCreated, first.Code)
	assert.Empty(t, first.Header().Get(HeaderReplayed))
	require.Equal(t, http.StatusCreated, second.Code)
	assert.Equal(t, "true", second.Header().Get(HeaderReplayed))
	assert.JSONEq(t, first.Body.String(), second.Body.String())
	assert.Equal(t, int32(1), f.calls.Load())

	ttl := f.redis.TTL("idempotency:POST:/loads:key-1")
	assert.Equal(t, time.Hour, ttl)
}

func TestIdempotency_KeysAreScopedToMethodAndPath(t *testing.T) {
	f := newIdempotencyFixture(t)

	f.do(http.MethodPost, "/loads", "shared")
	f.do(http.MethodPut, "/loads/1", "shared")
	f.do(http.MethodPut, "/loads/2", "shared")

	assert.Equal(t, int32(3), f.calls.Load())
}

func TestIdempotency_InFlightDuplicateConflicts(t *testing.T) {
	f := newIdempotencyFixture(t)
	require.NoError(t, f.redis.Set("idempotency:POST:/loads:busy", processingMarker))

	rec := f.do(http.MethodPost, "/loads", "busy")

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, int32(0), f.calls.Load())
}

func TestIdempotency_FailuresAreNotCached(t *testing.T) {
	f := newIdempotencyFixture(t)
	f.status = http.StatusBadRequest

	rec := f.do(http.MethodPost, "/loads", "retry-me")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, f.redis.Exists("idempotency:POST:/loads:retry-me"))

	f.status = http.StatusCreated
	rec = f.do(http.MethodPost, "/loads", "retry-me")
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, int32(2), f.calls.Load())
}

func TestIdempotency_IgnoresReadsAndRequestsWithoutKey(t *testing.T) {
	f := newIdempotencyFixture(t)

	f.do(http.MethodGet, "/loads", "key-1")
	f.do(http.MethodGet, "/loads", "key-1")
	f.do(http.MethodPost, "/loads", "")
	f.do(http.MethodPost, "/loads", "")

	assert.Equal(t, int32(4), f.calls.Load())
	assert.Empty(t, f.redis.Keys())
}

func TestIdempotency_RedisUnavailablePassesThrough(t *testing.T) {
	f := newIdempotencyFixture(t)
	f.redis.Close()

	first := f.do(http.MethodPost, "/loads", "key-1")
	second := f.do(http.MethodPost, "/loads", "key-1")

	assert.Equal(t, http.StatusCreated, first.Code)
	assert.Equal(t, http.StatusCreated, second.Code)
	assert.Equal(t, int32(2), f.calls.Load())
}
