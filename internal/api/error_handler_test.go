package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/cargotrack/cargo-api/internal/core/domain"
)

func TestHTTPErrorHandler_DomainErrorMapping(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"conflict", domain.ErrUserExists, http.StatusBadRequest, "Username or email already taken"},
		{"bad credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid credentials"},
		{"bad token", domain.ErrInvalidToken, http.StatusUnauthorized, "Invalid or expired token"},
		{"missing fields", domain.ErrMissingFields, http.StatusBadRequest, "All fields are required"},
		{"bad id", domain.ErrInvalidProductID, http.StatusBadRequest, "Invalid product ID"},
		{"not found", domain.ErrProductNotFound, http.StatusNotFound, "Product not found"},
		{"validation", &domain.ValidationError{Reason: "email must be a valid email"}, http.StatusBadRequest, "email must be a valid email"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			e.HTTPErrorHandler = NewHTTPErrorHandler(zerolog.Nop())
			e.GET("/boom", func(c echo.Context) error { return tc.err })

			req := httptest.NewRequest(http.MethodGet, "/boom", nil)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			if rec.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, rec.Code)
			}

			var resp map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if resp["message"] != tc.message {
				t.Fatalf("expected message %q, got %q", tc.message, resp["message"])
			}
		})
	}
}

func TestHTTPErrorHandler_StoreFailureIsOpaque(t *testing.T) {
	e := echo.New()
	e.HTTPErrorHandler = NewHTTPErrorHandler(zerolog.Nop())
	e.GET("/boom", func(c echo.Context) error {
		return errContaining{"connection refused: mongodb://internal-host:27017"}
	})

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Internal server error" {
		t.Fatalf("internal details leaked: %q", resp["message"])
	}
}

type errContaining struct{ msg string }

func (e errContaining) Error() string { return e.msg }

func TestHTTPErrorHandler_EchoHTTPErrorPassthrough(t *testing.T) {
	e := echo.New()
	e.HTTPErrorHandler = NewHTTPErrorHandler(zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/no-such-route", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
