package store

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/userconsole/internal/client/api"
	"github.com/dmitrijs2005/userconsole/internal/client/models"
	"github.com/dmitrijs2005/userconsole/internal/logging"
)

// MsgInvalidCredentials is shown when a sign-in is rejected without a message.
const MsgInvalidCredentials = "Invalid credentials"

// MsgSessionNotSaved is shown when the server accepted the credentials but
// the token could not be stored.
const MsgSessionNotSaved = "Signed in, but the session could not be saved. Please try again."

// SessionState is the session slice. AuthToken is the in-memory mirror of
// the persisted token.
type SessionState struct {
	FlowState
	IsLoggedIn bool
	AuthToken  string
}

// SignInAPI is the remote call used by SessionStore.
type SignInAPI interface {
	SignIn(ctx context.Context, creds models.Credentials) api.Result[string]
}

// Session is the persisted side of the session slice.
type Session interface {
	Token(ctx context.Context) string
	Start(ctx context.Context, token string) error
	End(ctx context.Context) error
}

type SessionStore struct {
	mu    sync.Mutex
	state SessionState
	gen   uint64

	api     SignInAPI
	session Session
	logger  logging.Logger
	subs    listeners[SessionState]
}

// NewSessionStore builds the store with AuthToken read from the persisted
// session, so a console restarted with a stored token starts signed in.
func NewSessionStore(ctx context.Context, a SignInAPI, s Session, logger logging.Logger) *SessionStore {
	tok := s.Token(ctx)
	return &SessionStore{
		state:   SessionState{AuthToken: tok, IsLoggedIn: tok != ""},
		api:     a,
		session: s,
		logger:  logger.With("store", "session"),
	}
}

// State returns the current snapshot.
func (s *SessionStore) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers fn for every transition.
func (s *SessionStore) Subscribe(fn func(SessionState)) (unsubscribe func()) {
	return s.subs.add(fn)
}

// SignIn runs one sign-in attempt. It returns the failure, if any, of this
// attempt; a nil return also covers an attempt superseded by a newer one.
func (s *SessionStore) SignIn(ctx context.Context, creds models.Credentials) *api.Failure {
	gen := s.begin()

	res := s.api.SignIn(ctx, creds)

	s.mu.Lock()
	if gen != s.gen {
		s.mu.Unlock()
		s.logger.Debug(ctx, "stale sign-in dropped", "generation", gen)
		return nil
	}

	if !res.OK() {
		s.state.FlowState = rejectedFlow(res.Err.Message, MsgInvalidCredentials)
		snap := s.state
		s.mu.Unlock()

		s.logger.Warn(ctx, "sign-in rejected", "status", res.Err.StatusCode, "error", snap.ErrorMessage)
		s.subs.publish(snap)
		return &api.Failure{Message: snap.ErrorMessage, StatusCode: res.Err.StatusCode}
	}

	s.mu.Unlock()

	// AuthToken is published only once storage holds it.
	if err := s.session.Start(ctx, res.Data); err != nil {
		s.logger.Warn(ctx, "session token not persisted", "error", err)
		s.settle(gen, func(st *SessionState) {
			st.FlowState = rejectedFlow(MsgSessionNotSaved, MsgSessionNotSaved)
		})
		return &api.Failure{Message: MsgSessionNotSaved}
	}

	s.settle(gen, func(st *SessionState) {
		*st = SessionState{FlowState: fulfilledFlow(), IsLoggedIn: true, AuthToken: res.Data}
	})
	s.logger.Info(ctx, "signed in")
	return nil
}

// settle applies fn and publishes the result unless a newer attempt or a
// logout came first.
func (s *SessionStore) settle(gen uint64, fn func(*SessionState)) {
	s.mu.Lock()
	if gen != s.gen {
		s.mu.Unlock()
		return
	}
	fn(&s.state)
	snap := s.state
	s.mu.Unlock()

	s.subs.publish(snap)
}

func (s *SessionStore) begin() uint64 {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.state.FlowState = pendingFlow()
	snap := s.state
	s.mu.Unlock()

	s.subs.publish(snap)
	return gen
}

// Logout forgets the token and returns the slice to its initial state. A
// sign-in still in flight is dropped when it settles.
func (s *SessionStore) Logout(ctx context.Context) error {
	err := s.session.End(ctx)
	if err != nil {
		s.logger.Warn(ctx, "session not cleared", "error", err)
	}

	s.mu.Lock()
	s.gen++
	s.state = SessionState{}
	snap := s.state
	s.mu.Unlock()

	s.logger.Info(ctx, "logged out")
	s.subs.publish(snap)
	return err
}
