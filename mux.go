package pageroutes

import (
	"net/http"
)

// Mux is an interface for registering HTTP routes.
// It lets Server mount pages on different routing implementations.
type Mux interface {
	HandleMethod(method, path string, handler http.Handler)
	// NotFound sets the handler for requests matching no registered path.
	NotFound(handler http.Handler)
}

type stdMux struct {
	mux *http.ServeMux
}

// NewRouter creates a Mux that wraps http.ServeMux.
// If mux is nil, it uses http.DefaultServeMux.
//
// Example:
//
//	mux := http.NewServeMux()
//	srv.Mount(pageroutes.NewRouter(mux))
func NewRouter(mux *http.ServeMux) *stdMux {
	if mux == nil {
		mux = http.DefaultServeMux
	}
	return &stdMux{mux: mux}
}

func (m *stdMux) HandleMethod(method, pattern string, handler http.Handler) {
	// route paths are literal, "/" must not act as the catch-all
	if pattern == "/" {
		pattern = "/{$}"
	}
	if method != "" {
		pattern = method + " " + pattern
	}
	m.mux.Handle(pattern, handler)
}

// NotFound only catches GET and HEAD, so other methods on a known path
// still get the mux's 405.
func (m *stdMux) NotFound(handler http.Handler) {
	m.mux.Handle(http.MethodGet+" /", handler)
}

func (m *stdMux) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	m.mux.ServeHTTP(w, req)
}
