package middleware

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

const (
	HeaderIdempotencyKey = "Idempotency-Key"
	HeaderReplayed       = "X-Idempotency-Replayed"

	processingMarker = "PROCESSING"
)

// IdempotencyConfig tunes the Idempotency middleware.
type IdempotencyConfig struct {
	// LockTTL bounds how long a key stays claimed by a request that never finishes.
	LockTTL time.Duration
	// ResponseTTL is how long a successful response is replayed.
	ResponseTTL time.Duration
	Logger      *slog.Logger
}

type cachedResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"contentType"`
	Body        []byte `json:"body"`
}

// Idempotency deduplicates POST and PUT requests that carry an Idempotency-Key
// header. The first request claims the key with SETNX; a 2xx response is then
// stored and replayed for later requests with the same key, method and path.
// A duplicate arriving while the first is still running gets 409. Redis
// failures never block a request: the middleware logs them and lets it through.
func Idempotency(client redis.Cmdable, cfg IdempotencyConfig) echo.MiddlewareFunc {
	if cfg.LockTTL == 0 {
		cfg.LockTTL = 30 * time.Second
	}
	if cfg.ResponseTTL == 0 {
		cfg.ResponseTTL = 24 * time.Hour
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "idempotency")

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if req.Method != http.MethodPost && req.Method != http.MethodPut {
				return next(c)
			}
			key := req.Header.Get(HeaderIdempotencyKey)
			if key == "" {
				return next(c)
			}

			ctx := req.Context()
			redisKey := fmt.Sprintf("idempotency:%s:%s:%s", req.Method, req.URL.Path, key)

			stored, err := client.Get(ctx, redisKey).Result()
			switch {
			case err == nil && stored == processingMarker:
				return echo.NewHTTPError(http.StatusConflict, "a request with this idempotency key is in progress")
			case err == nil:
				return replay(c, stored)
			case !errors.Is(err, redis.Nil):
				logger.WarnContext(ctx, "idempotency lookup failed", "error", err)
				return next(c)
			}

			acquired, err := client.SetNX(ctx, redisKey, processingMarker, cfg.LockTTL).Result()
			if err != nil {
				logger.WarnContext(ctx, "idempotency claim failed", "error", err)
				return next(c)
			}
			if !acquired {
				return echo.NewHTTPError(http.StatusConflict, "a request with this idempotency key is in progress")
			}

			recorder := &responseRecorder{ResponseWriter: c.Response().Writer}
			c.Response().Writer = recorder

			handlerErr := next(c)

			// the client may be gone; the outcome is still recorded
			storeCtx := context.WithoutCancel(ctx)
			status := c.Response().Status
			if handlerErr != nil || status < 200 || status >= 300 {
				if delErr := client.Del(storeCtx, redisKey).Err(); delErr != nil {
					logger.WarnContext(ctx, "idempotency release failed", "error", delErr)
				}
				return handlerErr
			}

			payload, err := json.Marshal(cachedResponse{
				Status:      status,
				ContentType: c.Response().Header().Get(echo.HeaderContentType),
				Body:        recorder.body.Bytes(),
			})
			if err == nil {
				err = client.Set(storeCtx, redisKey, payload, cfg.ResponseTTL).Err()
			}
			if err != nil {
				logger.WarnContext(ctx, "idempotency store failed", "error", err)
			}

			return nil
		}
	}
}

func replay(c echo.Context, stored string) error {
	var cached cachedResponse
	if err := json.Unmarshal([]byte(stored), &cached); err != nil {
		return fmt.Errorf("decode cached response: %w", err)
	}

	c.Response().Header().Set(HeaderReplayed, "true")
	if len(cached.Body) == 0 {
		return c.NoContent(cached.Status)
	}
	return c.Blob(cached.Status, cached.ContentType, cached.Body)
}

// responseRecorder tees the response body into a buffer.
type responseRecorder struct {
	http.ResponseWriter
	body bytes.Buffer
}

func (r *responseRecorder) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

func (r *responseRecorder) Flush() {
	if flusher, ok := r.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}

func (r *responseRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hijacker, ok := r.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("response writer does not support hijacking")
	}
	return hijacker.Hijack()
}
