package pageroutes

import (
	"context"
	"net/http"

	"github.com/jackielii/ctxkey"
)

var routerCtx = ctxkey.New[*Router]("pageroutes.router", nil)

func withRouter(r *http.Request, rt *Router) *http.Request {
	return r.WithContext(routerCtx.WithValue(r.Context(), rt))
}

// RouterFrom returns the visitor's Router stored in ctx by Server, or nil.
func RouterFrom(ctx context.Context) *Router {
	return routerCtx.Value(ctx)
}

// CurrentPath returns the visitor's active path, handy for highlighting
// navigation links. It returns "" outside a Server request.
func CurrentPath(ctx context.Context) string {
	rt := RouterFrom(ctx)
	if rt == nil {
		return ""
	}
	return rt.Current()
}
