package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDocument = `
openapi: 3.0.3
info:
  title: test
  version: 1.0.0
servers:
  - url: /api
paths:
  /items:
    get:
      parameters:
        - name: size
          in: query
          schema:
            type: integer
            maximum: 10
      responses:
        '200':
          description: ok
    post:
      requestBody:
        required: true
        content:
          application/json:
            schema:
              type: object
              required: [name]
              properties:
                name:
                  type: string
                  minLength: 1
      responses:
        '201':
          description: created
`

func newValidatedEcho(t *testing.T) *echo.Echo {
	t.Helper()
	doc, err := openapi3.NewLoader().LoadFromData([]byte(testDocument))
	require.NoError(t, err)
	validator, err := OpenAPIValidator(doc, "/api")
	require.NoError(t, err)

	e := echo.New()
	g := e.Group("/api", validator)
	g.GET("/items", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	g.POST("/items", func(c echo.Context) error {
		var body struct {
			Name string `json:"name"`
		}
		if err := c.Bind(&body); err != nil {
			return err
		}
		return c.String(http.StatusCreated, body.Name)
	})
	g.DELETE("/items", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })
	return e
}

func request(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestOpenAPIValidator(t *testing.T) {
	e := newValidatedEcho(t)

	tests := []struct {
		name   string
		method string
		target string
		body   string
		code   int
	}{
		{"valid query", http.MethodGet, "/api/items?size=5", "", http.StatusOK},
		{"query above maximum", http.MethodGet, "/api/items?size=50", "", http.StatusBadRequest},
		{"query not an integer", http.MethodGet, "/api/items?size=many", "", http.StatusBadRequest},
		{"valid body", http.MethodPost, "/api/items", `{"name":"pallet"}`, http.StatusCreated},
		{"missing required property", http.MethodPost, "/api/items", `{}`, http.StatusBadRequest},
		{"undocumented method passes through", http.MethodDelete, "/api/items", "", http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := request(e, tt.method, tt.target, tt.body)
			assert.Equal(t, tt.code, rec.Code, rec.Body.String())
		})
	}
}

func TestOpenAPIValidator_BodyStillReadableByHandler(t *testing.T) {
	e := newValidatedEcho(t)

	rec := request(e, http.MethodPost, "/api/items", `{"name":"crate"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "crate", rec.Body.String())
}
