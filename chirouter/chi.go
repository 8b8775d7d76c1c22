// Package chirouter mounts pageroutes servers on a chi router.
package chirouter

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackielii/pageroutes"
)

type chiRouter struct {
	router chi.Router
}

var _ pageroutes.Mux = (*chiRouter)(nil)

func NewChiRouter(r chi.Router) *chiRouter {
	return &chiRouter{router: r}
}

func (r *chiRouter) HandleMethod(method, path string, handler http.Handler) {
	if method == "" {
		r.router.Handle(path, handler)
	} else {
		r.router.Method(method, path, handler)
	}
}

func (r *chiRouter) NotFound(handler http.Handler) {
	r.router.NotFound(handler.ServeHTTP)
}

func (r *chiRouter) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}
