package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCORSMiddleware(t *testing.T) {
	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("configured origin echoed with vary", func(t *testing.T) {
		m := NewCORSMiddleware("https://hms.example.org")
		rec := httptest.NewRecorder()

		m.Handle(okHandler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/patients", nil))

		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://hms.example.org" {
			t.Fatalf("Access-Control-Allow-Origin = %q, want the configured origin", got)
		}
		if got := rec.Header().Get("Vary"); got != "Origin" {
			t.Fatalf("Vary = %q, want Origin", got)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
		}
	})

	t.Run("empty configuration falls back to wildcard", func(t *testing.T) {
		m := NewCORSMiddleware("")
		rec := httptest.NewRecorder()

		m.Handle(okHandler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/patients", nil))

		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
			t.Fatalf("Access-Control-Allow-Origin = %q, want *", got)
		}
		if got := rec.Header().Get("Vary"); got != "" {
			t.Fatalf("Vary = %q, want unset for wildcard", got)
		}
	})

	t.Run("preflight short-circuits", func(t *testing.T) {
		called := false
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		})

		m := NewCORSMiddleware("https://hms.example.org")
		rec := httptest.NewRecorder()

		m.Handle(next).ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/v1/patients", nil))

		if called {
			t.Fatal("preflight request reached the next handler")
		}
		if rec.Code != http.StatusNoContent {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusNoContent)
		}
		if got := rec.Header().Get("Access-Control-Max-Age"); got != "600" {
			t.Fatalf("Access-Control-Max-Age = %q, want 600", got)
		}
	})
}
