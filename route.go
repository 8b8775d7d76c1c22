package pageroutes

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// View is a renderable page. Any templ.Component satisfies it.
type View interface {
	Render(ctx context.Context, w io.Writer) error
}

// Route associates a literal URL path with the view rendered for it.
// Name is optional and only used for diagnostics such as PrintRoutes.
type Route struct {
	Path string
	View View
	Name string
}

func (r Route) String() string {
	if r.Name != "" {
		return r.Name
	}
	return fmt.Sprintf("%T", r.View)
}

// Table is an ordered, immutable set of routes keyed by exact path.
type Table struct {
	routes []Route
	index  map[string]int
}

// NewTable validates routes and builds a Table. Paths must be non-empty,
// start with "/" and be unique, and every route needs a view.
func NewTable(routes ...Route) (*Table, error) {
	t := &Table{
		routes: make([]Route, 0, len(routes)),
		index:  make(map[string]int, len(routes)),
	}
	for _, r := range routes {
		switch {
		case r.Path == "":
			return nil, &ConfigurationError{Path: r.Path, Reason: "empty path"}
		case !strings.HasPrefix(r.Path, "/"):
			return nil, &ConfigurationError{Path: r.Path, Reason: "path must start with /"}
		case r.View == nil:
			return nil, &ConfigurationError{Path: r.Path, Reason: "nil view"}
		}
		if _, dup := t.index[r.Path]; dup {
			return nil, &ConfigurationError{Path: r.Path, Reason: "duplicate path"}
		}
		t.index[r.Path] = len(t.routes)
		t.routes = append(t.routes, r)
	}
	return t, nil
}

// Lookup returns the route registered for path using exact string equality.
func (t *Table) Lookup(path string) (Route, bool) {
	i, ok := t.index[path]
	if !ok {
		return Route{}, false
	}
	return t.routes[i], true
}

// Routes returns a copy of the routes in declaration order.
func (t *Table) Routes() []Route {
	out := make([]Route, len(t.routes))
	copy(out, t.routes)
	return out
}

func (t *Table) Len() int { return len(t.routes) }
