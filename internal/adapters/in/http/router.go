package http

import (
	"log/slog"
	"net/http"

	"loadbooking/internal/adapters/in/http/middleware"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RouterConfig carries the optional collaborators of the router.
type RouterConfig struct {
	// Redis enables Idempotency-Key handling when set.
	Redis  redis.Cmdable
	Logger *slog.Logger
}

// NewRouter builds the echo instance serving the API, health, metrics and
// the Swagger UI.
func NewRouter(server ServerInterface, cfg RouterConfig) (*echo.Echo, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	doc, err := GetSwagger()
	if err != nil {
		return nil, err
	}
	if err = registerSwaggerDoc(doc); err != nil {
		return nil, err
	}
	validator, err := middleware.OpenAPIValidator(doc, BaseURL)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewErrorHandler(logger)

	e.Use(echomw.Recover())
	e.Use(echomw.RequestLoggerWithConfig(requestLoggerConfig(logger)))
	e.Use(middleware.Metrics())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group(BaseURL)
	if cfg.Redis != nil {
		api.Use(middleware.Idempotency(cfg.Redis, middleware.IdempotencyConfig{Logger: logger}))
	}
	api.Use(validator)
	RegisterHandlers(api, server)

	return e, nil
}

func requestLoggerConfig(logger *slog.Logger) echomw.RequestLoggerConfig {
	logger = logger.With("component", "http")
	return echomw.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogError:     true,
		LogRequestID: true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}
			logger.LogAttrs(c.Request().Context(), level, "request", attrs...)
			return nil
		},
	}
}
