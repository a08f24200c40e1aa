// Package middleware holds the echo middleware of the HTTP adapter.
package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
)

// OpenAPIValidator rejects requests that do not match doc with 400. Paths in doc
// are relative to basePath. Requests for paths or methods doc does not describe
// pass through so echo can answer them with 404 or 405.
func OpenAPIValidator(doc *openapi3.T, basePath string) (echo.MiddlewareFunc, error) {
	relative := *doc
	relative.Servers = nil

	router, err := legacy.NewRouter(&relative)
	if err != nil {
		return nil, err
	}

	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			routed := req.Clone(req.Context())
			routed.URL.Path = strings.TrimPrefix(req.URL.Path, basePath)
			if routed.URL.RawPath != "" {
				routed.URL.RawPath = strings.TrimPrefix(req.URL.RawPath, basePath)
			}

			route, pathParams, err := router.FindRoute(routed)
			if err != nil {
				var routeErr *routers.RouteError
				if errors.As(err, &routeErr) {
					return next(c)
				}
				return echo.NewHTTPError(http.StatusBadRequest, err.Error())
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    routed,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			validationErr := openapi3filter.ValidateRequest(req.Context(), input)

			// the validator consumes the body and leaves a fresh reader on routed
			req.Body = routed.Body

			if validationErr != nil {
				return echo.NewHTTPError(http.StatusBadRequest, describe(validationErr))
			}

			return next(c)
		}
	}, nil
}

func describe(err error) string {
	var requestErr *openapi3filter.RequestError
	if errors.As(err, &requestErr) {
		if requestErr.Parameter != nil {
			return "invalid parameter " + requestErr.Parameter.Name + ": " + requestErr.Reason
		}
		var schemaErr *openapi3.SchemaError
		if errors.As(requestErr.Err, &schemaErr) {
			return "invalid request body: " + schemaErr.Reason
		}
		if requestErr.Reason != "" {
			return requestErr.Reason
		}
	}
	return err.Error()
}
