package pageroutes

import (
	"errors"
	"fmt"
	"hash/maphash"
	"net/http"
	"sync"

	"github.com/alexedwards/scs/v2"
	"github.com/angelofallars/htmx-go"
	"github.com/go-playground/form/v4"
)

// NavPath receives programmatic navigation requests.
const NavPath = "/_nav"

// MiddlewareFunc wraps the handler of a single route. The not-found and
// navigation handlers receive a zero Route.
type MiddlewareFunc = func(http.Handler, Route) http.Handler

// Server serves the pages of a Router over HTTP. Full page loads and htmx
// history restores render the view inside the layout; htmx navigations
// render the partial and update the browser address through HX-Push-Url.
type Server struct {
	router      *Router
	onError     func(http.ResponseWriter, *http.Request, error)
	notFound    View
	layout      func(View) View
	partial     func(View) View
	middlewares []MiddlewareFunc
	sessions    *scs.SessionManager
	decoder     *form.Decoder

	// visitor requests are serialized per session cookie, striped
	visitorLocks [64]sync.Mutex
	lockSeed     maphash.Seed
}

func NewServer(router *Router, options ...func(*Server)) *Server {
	s := &Server{
		router:   router,
		decoder:  form.NewDecoder(),
		lockSeed: maphash.MakeSeed(),
	}
	s.onError = s.defaultError
	for _, opt := range options {
		opt(s)
	}
	return s
}

func WithErrorHandler(onError func(http.ResponseWriter, *http.Request, error)) func(*Server) {
	return func(s *Server) {
		s.onError = onError
	}
}

// WithNotFound sets the view rendered with status 404 for unknown paths.
// Without it, unknown paths get http.NotFound.
func WithNotFound(v View) func(*Server) {
	return func(s *Server) {
		s.notFound = v
	}
}

// WithLayout wraps views rendered on full page loads and htmx history
// restores, which htmx swaps into the whole body.
func WithLayout(layout func(content View) View) func(*Server) {
	return func(s *Server) {
		s.layout = layout
	}
}

// WithPartial wraps views rendered for htmx navigations, e.g. to add
// out-of-band swaps of elements outside the target.
func WithPartial(partial func(content View) View) func(*Server) {
	return func(s *Server) {
		s.partial = partial
	}
}

func WithMiddlewares(middlewares ...MiddlewareFunc) func(*Server) {
	return func(s *Server) {
		s.middlewares = append(s.middlewares, middlewares...)
	}
}

// WithSessions gives every visitor a SessionHistory stored in sm. Without
// it all requests share the Router's own history. Requests carrying the
// same session cookie are handled one at a time so concurrent navigations
// of one visitor do not overwrite each other's history.
func WithSessions(sm *scs.SessionManager) func(*Server) {
	return func(s *Server) {
		s.sessions = sm
	}
}

// Mount registers a GET handler for every route, the not-found handler and
// the programmatic navigation endpoint on mux.
func (s *Server) Mount(mux Mux) {
	for _, route := range s.router.Table().Routes() {
		mux.HandleMethod(http.MethodGet, route.Path, s.wrap(s.pageHandler(route), route))
	}
	mux.NotFound(s.wrap(http.HandlerFunc(s.serveNotFound), Route{}))
	mux.HandleMethod(http.MethodPost, NavPath, s.wrap(http.HandlerFunc(s.serveNav), Route{}))
	s.router.logger.Info("server.mounted", "routes", s.router.Table().Len())
}

func (s *Server) wrap(h http.Handler, route Route) http.Handler {
	for _, mw := range s.middlewares {
		h = mw(h, route)
	}
	if s.sessions != nil {
		h = s.serializeVisitor(s.sessions.LoadAndSave(h))
	}
	return h
}

// serializeVisitor holds the visitor's lock across session load, handler
// and commit.
func (s *Server) serializeVisitor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, err := r.Cookie(s.sessions.Cookie.Name)
		if err != nil || c.Value == "" {
			next.ServeHTTP(w, r)
			return
		}
		mu := &s.visitorLocks[maphash.String(s.lockSeed, c.Value)%uint64(len(s.visitorLocks))]
		mu.Lock()
		defer mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

// wrapView applies the layout or the partial depending on how the
// request arrived.
func (s *Server) wrapView(r *http.Request, v View) View {
	if !isHTMX(r) || htmx.IsHistoryRestoreRequest(r) {
		if s.layout != nil {
			return s.layout(v)
		}
		return v
	}
	if s.partial != nil {
		return s.partial(v)
	}
	return v
}

// visitor returns the Router holding the navigation state of the request.
func (s *Server) visitor(r *http.Request) *Router {
	if s.sessions == nil {
		return s.router
	}
	return s.router.Session(NewSessionHistory(r.Context(), s.sessions))
}

func (s *Server) pageHandler(route Route) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rt := s.visitor(r)
		r = withRouter(r, rt)

		var err error
		kind := classify(r)
		switch kind {
		case navPop:
			err = rt.OnPopState(route.Path)
		case navPush:
			err = rt.Navigate(route.Path)
		default:
			err = rt.Visit(route.Path)
		}
		if err != nil {
			s.onError(w, r, err)
			return
		}
		view := s.wrapView(r, route.View)
		var resp *htmx.Response
		if kind == navPush {
			hr := htmx.NewResponse().PushURL(route.Path)
			resp = &hr
		}
		s.render(w, r, view, resp)
	})
}

type navForm struct {
	Action string `form:"action"`
	Path   string `form:"path"`
}

// serveNav handles programmatic navigation: action is push (default),
// back or forward. The response is the now current view.
func (s *Server) serveNav(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	var nf navForm
	if err := s.decoder.Decode(&nf, r.PostForm); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	rt := s.visitor(r)
	r = withRouter(r, rt)

	var err error
	resp := htmx.NewResponse()
	switch nf.Action {
	case "", "push":
		err = rt.Navigate(nf.Path)
		resp = resp.PushURL(nf.Path)
	case "back":
		err = rt.Back()
	case "forward":
		err = rt.Forward()
	default:
		http.Error(w, fmt.Sprintf("unknown navigation action %q", nf.Action), http.StatusBadRequest)
		return
	}
	if err != nil {
		s.onError(w, r, err)
		return
	}
	current := rt.Current()
	if nf.Action == "back" || nf.Action == "forward" {
		resp = resp.ReplaceURL(current)
	}
	view, err := rt.Resolve(current)
	if err != nil {
		s.onError(w, r, err)
		return
	}
	s.render(w, r, s.wrapView(r, view), &resp)
}

func (s *Server) serveNotFound(w http.ResponseWriter, r *http.Request) {
	r = withRouter(r, s.visitor(r))
	s.onError(w, r, &NotFoundError{Path: r.URL.Path})
}

// render buffers the view so a failing view does not leave a half written
// response behind. resp, when set, carries the htmx headers.
func (s *Server) render(w http.ResponseWriter, r *http.Request, v View, resp *htmx.Response) {
	buf := getBuffer()
	defer releaseBuffer(buf)
	if err := v.Render(r.Context(), buf); err != nil {
		s.onError(w, r, fmt.Errorf("render %s: %w", r.URL.Path, err))
		return
	}
	if resp != nil {
		if err := resp.Write(w); err != nil {
			s.onError(w, r, err)
			return
		}
	}
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) defaultError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case IsNotFound(err):
		s.router.logger.Info("server.not_found", "path", r.URL.Path)
		if s.notFound == nil {
			http.NotFound(w, r)
			return
		}
		view := s.wrapView(r, s.notFound)
		buf := getBuffer()
		defer releaseBuffer(buf)
		if rerr := view.Render(r.Context(), buf); rerr != nil {
			s.router.logger.Error("server.render_not_found", "error", rerr)
			http.NotFound(w, r)
			return
		}
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write(buf.Bytes())
	case errors.Is(err, ErrNoHistory):
		http.Error(w, "No history entry", http.StatusConflict)
	default:
		s.router.logger.Error("server.error", "path", r.URL.Path, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
