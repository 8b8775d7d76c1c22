package pageroutes

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestStdMux(t *testing.T) {
	mux := http.NewServeMux()
	m := NewRouter(mux)
	handler := func(body string) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(body))
		})
	}
	m.HandleMethod(http.MethodGet, "/", handler("root"))
	m.HandleMethod(http.MethodGet, "/cart", handler("cart"))
	m.NotFound(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("nope"))
	}))

	tests := []struct {
		path     string
		wantCode int
		wantBody string
	}{
		{"/", http.StatusOK, "root"},
		{"/cart", http.StatusOK, "cart"},
		{"/cart/extra", http.StatusNotFound, "nope"},
		{"/elsewhere", http.StatusNotFound, "nope"},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, tt.path, http.NoBody)
		rec := httptest.NewRecorder()
		m.ServeHTTP(rec, req)
		if rec.Code != tt.wantCode {
			t.Errorf("%s: expected status %d, got %d", tt.path, tt.wantCode, rec.Code)
		}
		if rec.Body.String() != tt.wantBody {
			t.Errorf("%s: expected body %q, got %q", tt.path, tt.wantBody, rec.Body.String())
		}
	}
}

func TestStdMuxMethodNotAllowed(t *testing.T) {
	m := NewRouter(http.NewServeMux())
	m.HandleMethod(http.MethodGet, "/cart", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("cart"))
	}))
	m.NotFound(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	req := httptest.NewRequest(http.MethodPost, "/cart", http.NoBody)
	rec := httptest.NewRecorder()
	m.ServeHTTP(rec, req)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected status %d, got %d", http.StatusMethodNotAllowed, rec.Code)
	}

	req = httptest.NewRequest(http.MethodHead, "/elsewhere", http.NoBody)
	rec = httptest.NewRecorder()
	m.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, rec.Code)
	}
}
