package pageroutes

import (
	"log/slog"
	"sync"
)

// Router resolves paths against a fixed route table and owns the
// navigation state of one visitor. Create it with New; a zero Router is
// uninitialized and every method returns ErrUninitialized.
type Router struct {
	mu          sync.Mutex
	table       *Table
	history     History
	onChange    func(path string, v View)
	logger      *slog.Logger
	initialPath string
}

// Option configures a Router.
type Option func(*Router)

// WithHistory sets the navigation stack. Defaults to a new MemoryHistory.
func WithHistory(h History) Option {
	return func(r *Router) {
		r.history = h
	}
}

// WithInitialPath sets the path the history is seeded with when empty.
// Defaults to "/".
func WithInitialPath(path string) Option {
	return func(r *Router) {
		r.initialPath = path
	}
}

// WithOnChange registers the function that renders a view after every
// successful navigation or pop. It is called synchronously, after the
// router's lock is released.
func WithOnChange(fn func(path string, v View)) Option {
	return func(r *Router) {
		r.onChange = fn
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(r *Router) {
		r.logger = l
	}
}

// New builds a ready Router over routes. It returns a *ConfigurationError
// when the table is invalid, e.g. two routes share a path.
func New(routes []Route, options ...Option) (*Router, error) {
	table, err := NewTable(routes...)
	if err != nil {
		return nil, err
	}
	r := &Router{
		table:       table,
		initialPath: "/",
		logger:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range options {
		opt(r)
	}
	if r.history == nil {
		r.history = NewMemoryHistory()
	}
	if r.history.Len() == 0 && r.initialPath != "" {
		r.history.Replace(r.initialPath)
	}
	r.logger.Debug("router.initialized", "routes", table.Len(), "path", r.history.Current())
	return r, nil
}

// Session returns a Router sharing r's table, callbacks and logger but
// driving its own history h. h is not seeded with the initial path.
func (r *Router) Session(h History) *Router {
	return &Router{
		table:       r.table,
		history:     h,
		onChange:    r.onChange,
		logger:      r.logger,
		initialPath: r.initialPath,
	}
}

// Table returns the route table, or nil for an uninitialized Router.
func (r *Router) Table() *Table { return r.table }

// Resolve returns the view registered for path. It has no side effects.
func (r *Router) Resolve(path string) (View, error) {
	if r.table == nil {
		return nil, ErrUninitialized
	}
	route, ok := r.table.Lookup(path)
	if !ok {
		return nil, &NotFoundError{Path: path}
	}
	return route.View, nil
}

// Current returns the active path.
func (r *Router) Current() string {
	if r.table == nil {
		return ""
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.history.Current()
}

// Navigate makes path current and pushes it onto the history. Unknown
// paths return a *NotFoundError and leave the navigation state untouched.
func (r *Router) Navigate(path string) error {
	if r.table == nil {
		return ErrUninitialized
	}
	v, err := r.Resolve(path)
	if err != nil {
		r.logger.Debug("router.navigate.not_found", "path", path)
		return err
	}
	r.mu.Lock()
	from := r.history.Current()
	r.history.Push(path)
	r.mu.Unlock()

	r.logger.Debug("router.navigate", "from", from, "to", path)
	r.render(path, v)
	return nil
}

// OnPopState handles a back or forward event that landed on path. The
// history is not pushed; if its cursor is not already on path, it is moved
// to an adjacent entry holding path, or the current entry is replaced.
// Unknown paths return a *NotFoundError and leave the history untouched.
func (r *Router) OnPopState(path string) error {
	if r.table == nil {
		return ErrUninitialized
	}
	v, err := r.Resolve(path)
	if err != nil {
		r.logger.Debug("router.popstate.not_found", "path", path)
		return err
	}
	r.mu.Lock()
	r.seek(path)
	r.mu.Unlock()

	r.logger.Debug("router.popstate", "path", path)
	r.render(path, v)
	return nil
}

// Visit handles a full page load of path: a reload of the current path
// re-renders without pushing, anything else navigates.
func (r *Router) Visit(path string) error {
	if r.Current() == path {
		return r.OnPopState(path)
	}
	return r.Navigate(path)
}

// Back moves one entry back in the history and re-renders.
func (r *Router) Back() error { return r.step(-1) }

// Forward moves one entry forward in the history and re-renders.
func (r *Router) Forward() error { return r.step(1) }

func (r *Router) step(delta int) error {
	if r.table == nil {
		return ErrUninitialized
	}
	r.mu.Lock()
	path, ok := r.history.Go(delta)
	r.mu.Unlock()
	if !ok {
		return ErrNoHistory
	}
	return r.OnPopState(path)
}

// seek must be called with r.mu held.
func (r *Router) seek(path string) {
	if r.history.Current() == path {
		return
	}
	for _, delta := range []int{-1, 1} {
		if p, ok := r.history.Peek(delta); ok && p == path {
			r.history.Go(delta)
			return
		}
	}
	r.history.Replace(path)
}

func (r *Router) render(path string, v View) {
	if r.onChange != nil {
		r.onChange(path, v)
	}
}
