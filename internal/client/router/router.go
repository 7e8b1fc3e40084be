// Package router maps console paths to views and keeps gated views behind a
// valid session.
package router

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/dmitrijs2005/userconsole/internal/logging"
)

const (
	PathRoot      = "/"
	PathSignIn    = "/signin"
	PathDashboard = "/dashboard"

	// DefaultPublic is where a gated path sends a visitor without a session.
	DefaultPublic = PathSignIn

	NotFoundText    = "Page Not Found"
	LoadingText     = "Loading..."
	DefaultRedirect = PathDashboard
)

// View is a screen the router can show. Enter runs every time the view
// becomes current and Leave when another view replaces it.
type View interface {
	Enter(ctx context.Context) error
	Leave(ctx context.Context)
}

// Builder creates a view. It runs at most once per successful build.
type Builder func() (View, error)

// SessionChecker reports whether a session is active.
type SessionChecker interface {
	Valid(ctx context.Context) bool
}

type route struct {
	path  string
	build Builder

	mu   sync.Mutex
	load func() (View, error)
	done bool
}

func newRoute(path string, b Builder) *route {
	return &route{path: path, build: b, load: sync.OnceValues(b)}
}

// view returns the built view, building it on first use. A failed build is
// forgotten so the next navigation tries again.
func (r *route) view(out io.Writer) (View, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.done {
		fmt.Fprintln(out, LoadingText)
	}
	v, err := r.load()
	if err != nil {
		r.load = sync.OnceValues(r.build)
		return nil, err
	}
	r.done = true
	return v, nil
}

type Router struct {
	public map[string]*route
	gated  map[string]*route

	session  SessionChecker
	notFound View
	out      io.Writer
	logger   logging.Logger

	mu      sync.Mutex
	current string
	view    View
}

// New builds a router with empty tables. notFound is shown for unknown
// paths; loading placeholders are written to out.
func New(session SessionChecker, notFound View, out io.Writer, logger logging.Logger) *Router {
	return &Router{
		public:   make(map[string]*route),
		gated:    make(map[string]*route),
		session:  session,
		notFound: notFound,
		out:      out,
		logger:   logger,
	}
}

// Public registers a path that is always reachable.
func (r *Router) Public(path string, b Builder) {
	r.public[clean(path)] = newRoute(clean(path), b)
}

// Gated registers a path that requires a session.
func (r *Router) Gated(path string, b Builder) {
	r.gated[clean(path)] = newRoute(clean(path), b)
}

// Current returns the current path and view.
func (r *Router) Current() (string, View) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current, r.view
}

// Navigate resolves path and makes its view current. It returns the path
// actually shown, which differs from the request after a redirect. Unknown
// paths show the not-found view and keep the requested path.
func (r *Router) Navigate(ctx context.Context, path string) (string, error) {
	path = clean(path)
	if path == PathRoot {
		path = DefaultRedirect
	}

	rt, gated := r.gated[path]
	if gated && !r.session.Valid(ctx) {
		r.logger.Debug(ctx, "no session, redirecting", "from", path, "to", DefaultPublic)
		path = DefaultPublic
		gated = false
	}
	if !gated {
		rt = r.public[path]
	}

	if rt == nil {
		r.logger.Debug(ctx, "unknown path", "path", path)
		return path, r.show(ctx, path, r.notFound)
	}

	v, err := rt.view(r.out)
	if err != nil {
		r.logger.Error(ctx, "view failed to load", "path", path, "error", err)
		return path, fmt.Errorf("load view %s: %w", path, err)
	}
	return path, r.show(ctx, path, v)
}

func (r *Router) show(ctx context.Context, path string, v View) error {
	r.mu.Lock()
	prev := r.view
	r.current, r.view = path, v
	r.mu.Unlock()

	if prev != nil {
		prev.Leave(ctx)
	}
	return v.Enter(ctx)
}

func clean(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return PathRoot
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if path = strings.TrimRight(path, "/"); path == "" {
		return PathRoot
	}
	return path
}

// NotFound is the fixed view for unknown paths.
type NotFound struct {
	Out io.Writer
}

func (n NotFound) Enter(ctx context.Context) error {
	_, err := fmt.Fprintln(n.Out, NotFoundText)
	return err
}

func (n NotFound) Leave(ctx context.Context) {}
