package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/dmitrijs2005/userconsole/internal/client/api"
	"github.com/dmitrijs2005/userconsole/internal/client/client"
	"github.com/dmitrijs2005/userconsole/internal/client/config"
	"github.com/dmitrijs2005/userconsole/internal/client/forms"
	"github.com/dmitrijs2005/userconsole/internal/client/router"
	"github.com/dmitrijs2005/userconsole/internal/client/session"
	"github.com/dmitrijs2005/userconsole/internal/client/store"
	"github.com/dmitrijs2005/userconsole/internal/logging"
)

// remoteAPI is everything the two stores call on the server.
type remoteAPI interface {
	store.SignInAPI
	store.UsersAPI
}

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB

	sessions  *session.Context
	auth      *store.SessionStore
	users     *store.UsersStore
	validator *forms.Validator
	router    *router.Router

	reader *bufio.Reader
	out    *syncWriter

	mu       sync.Mutex
	redirect string
}

// NewApp opens the session database, builds the HTTP client and wires the
// stores, the router and the views. The console reads stdin and writes
// stdout.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	db, err := client.InitDatabase(ctx, c.SessionDB)
	if err != nil {
		logger.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	httpClient, err := client.NewHTTPClient(c.APIBaseURL, c.AuthorizationKey, c.RequestTimeout, logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return newApp(ctx, c, logger, api.New(httpClient), db, os.Stdin, os.Stdout), nil
}

func newApp(ctx context.Context, c *config.Config, logger logging.Logger, remote remoteAPI, db *sql.DB, in io.Reader, out io.Writer) *App {
	a := &App{
		config:    c,
		logger:    logger,
		db:        db,
		validator: forms.New(),
		reader:    bufio.NewReader(in),
		out:       &syncWriter{w: out},
	}

	a.sessions = session.NewContext(session.NewStorage(db), logger)
	a.auth = store.NewSessionStore(ctx, remote, a.sessions, logger)
	a.users = store.NewUsersStore(remote, logger)

	a.router = router.New(a.sessions, router.NotFound{Out: a.out}, a.out, logger)
	a.router.Public(router.PathSignIn, func() (router.View, error) { return newSignInView(a), nil })
	a.router.Gated(router.PathDashboard, func() (router.View, error) { return newDashboardView(a), nil })

	return a
}

// Run shows the start page and runs the REPL until the user exits, input
// ends or ctx is done. The session scope is closed on return, also after an
// interrupt.
func (a *App) Run(ctx context.Context) error {
	defer func() {
		if err := a.Close(ctx); err != nil {
			a.logger.Error(ctx, "close failed", "error", err)
		}
	}()

	a.println("Welcome to the user console (type 'help' for commands)")
	if err := a.Open(ctx, router.PathRoot); err != nil {
		a.println("error:", err)
	}

	runREPL(ctx, a, a.reader, a.out)
	return nil
}

// Close ends the session scope and closes the database. The session table
// is wiped unless the config asks to keep it.
func (a *App) Close(ctx context.Context) error {
	err := a.sessions.Close(ctx, a.config.PersistSession)
	return errors.Join(err, a.db.Close())
}

// Open navigates to path.
func (a *App) Open(ctx context.Context, path string) error {
	_, err := a.router.Navigate(ctx, path)
	return err
}

// requestRedirect asks for a navigation once the running command returns.
// Views call it from store subscriptions.
func (a *App) requestRedirect(path string) {
	a.mu.Lock()
	a.redirect = path
	a.mu.Unlock()
}

// afterCommand performs a pending redirect, if any.
func (a *App) afterCommand(ctx context.Context) {
	a.mu.Lock()
	path := a.redirect
	a.redirect = ""
	a.mu.Unlock()

	if path == "" {
		return
	}
	if cur, _ := a.router.Current(); cur == path {
		return
	}
	if err := a.Open(ctx, path); err != nil {
		a.println("error:", err)
	}
}

func (a *App) status() string {
	cur, _ := a.router.Current()
	return cur
}

func (a *App) isLoggedIn() bool {
	return a.auth.State().IsLoggedIn
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

// syncWriter serialises writes coming from the REPL and from debounce
// timers.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}
