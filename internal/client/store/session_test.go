package store

import (
	"context"
	"sync"
	"testing"

	"github.com/dmitrijs2005/userconsole/internal/client/api"
	"github.com/dmitrijs2005/userconsole/internal/client/models"
	"github.com/dmitrijs2005/userconsole/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSessionStore_ReadsPersistedToken(t *testing.T) {
	s := NewSessionStore(context.Background(), &fakeAPI{}, &fakeSession{token: "persisted"}, logging.Discard())
	st := s.State()
	require.Equal(t, "persisted", st.AuthToken)
	require.True(t, st.IsLoggedIn)

	s = NewSessionStore(context.Background(), &fakeAPI{}, &fakeSession{}, logging.Discard())
	require.Equal(t, SessionState{}, s.State())
}

func TestSignIn_Fulfilled(t *testing.T) {
	fa := &fakeAPI{signIn: api.Result[string]{Data: "QpwL5tke4Pnpja7X4"}}
	fs := &fakeSession{}
	s := NewSessionStore(context.Background(), fa, fs, logging.Discard())

	var seen []SessionState
	unsub := s.Subscribe(func(st SessionState) { seen = append(seen, st) })
	defer unsub()

	creds := models.Credentials{Email: "eve.holt@reqres.in", Password: "cityslicka"}
	require.Nil(t, s.SignIn(context.Background(), creds))

	require.Equal(t, creds, fa.lastCreds)
	require.Equal(t, SessionState{IsLoggedIn: true, AuthToken: "QpwL5tke4Pnpja7X4"}, s.State())
	require.Equal(t, []string{"QpwL5tke4Pnpja7X4"}, fs.started)

	require.Len(t, seen, 2)
	assert.Equal(t, FlowState{IsLoading: true}, seen[0].FlowState)
	assert.True(t, seen[1].IsLoggedIn)
}

// A rejected sign-in with a server message ends in a settled error state.
func TestSignIn_Rejected_InvalidCredentials(t *testing.T) {
	fa := &fakeAPI{signIn: fail[string]("Invalid credentials", 401)}
	fs := &fakeSession{}
	s := NewSessionStore(context.Background(), fa, fs, logging.Discard())

	f := s.SignIn(context.Background(), models.Credentials{})
	require.Equal(t, &api.Failure{Message: "Invalid credentials", StatusCode: 401}, f)

	require.Equal(t, SessionState{
		FlowState:  FlowState{IsLoading: false, IsError: true, ErrorMessage: "Invalid credentials"},
		IsLoggedIn: false,
	}, s.State())
	require.Empty(t, fs.started)
}

func TestSignIn_Rejected_DefaultMessage(t *testing.T) {
	s := NewSessionStore(context.Background(), &fakeAPI{signIn: fail[string]("", 0)}, &fakeSession{}, logging.Discard())

	f := s.SignIn(context.Background(), models.Credentials{})
	require.Equal(t, MsgInvalidCredentials, f.Message)
	require.Equal(t, MsgInvalidCredentials, s.State().ErrorMessage)
}

func TestSignIn_ResubmitClearsError(t *testing.T) {
	fa := &fakeAPI{signIn: fail[string]("user not found", 400)}
	s := NewSessionStore(context.Background(), fa, &fakeSession{}, logging.Discard())
	s.SignIn(context.Background(), models.Credentials{})
	require.True(t, s.State().IsError)

	var pending SessionState
	fa.signIn = api.Result[string]{Data: "tok"}
	unsub := s.Subscribe(func(st SessionState) {
		if st.IsLoading {
			pending = st
		}
	})
	defer unsub()

	require.Nil(t, s.SignIn(context.Background(), models.Credentials{}))
	require.False(t, pending.IsError)
	require.Empty(t, pending.ErrorMessage)
	require.True(t, s.State().IsLoggedIn)
}

func TestSignIn_PersistFailureRejects(t *testing.T) {
	fs := &fakeSession{startErr: errBoom}
	s := NewSessionStore(context.Background(), &fakeAPI{signIn: api.Result[string]{Data: "tok"}}, fs, logging.Discard())

	var seen []SessionState
	s.Subscribe(func(st SessionState) { seen = append(seen, st) })

	f := s.SignIn(context.Background(), models.Credentials{})
	require.NotNil(t, f)
	require.Equal(t, MsgSessionNotSaved, f.Message)
	require.Equal(t, []string{"tok"}, fs.started)

	st := s.State()
	require.False(t, st.IsLoggedIn)
	require.Empty(t, st.AuthToken)
	require.False(t, st.IsLoading)
	require.True(t, st.IsError)
	require.Equal(t, MsgSessionNotSaved, st.ErrorMessage)

	for _, st := range seen {
		require.False(t, st.IsLoggedIn, "no published state claims a session storage does not hold")
	}
}

func TestSignIn_StaleAttemptDropped(t *testing.T) {
	release := make(chan struct{})
	entered := make(chan struct{})
	first := true
	var mu sync.Mutex

	fa := &fakeAPI{signInFn: func(ctx context.Context, creds models.Credentials) api.Result[string] {
		mu.Lock()
		isFirst := first
		first = false
		mu.Unlock()
		if isFirst {
			close(entered)
			<-release
			return api.Result[string]{Data: "old"}
		}
		return api.Result[string]{Data: "new"}
	}}
	s := NewSessionStore(context.Background(), fa, &fakeSession{}, logging.Discard())

	done := make(chan *api.Failure)
	go func() { done <- s.SignIn(context.Background(), models.Credentials{Email: "old"}) }()
	<-entered

	require.Nil(t, s.SignIn(context.Background(), models.Credentials{Email: "new"}))
	close(release)
	require.Nil(t, <-done)

	require.Equal(t, "new", s.State().AuthToken)
}

func TestLogout_ResetsState(t *testing.T) {
	fs := &fakeSession{}
	s := NewSessionStore(context.Background(), &fakeAPI{signIn: api.Result[string]{Data: "tok"}}, fs, logging.Discard())
	require.Nil(t, s.SignIn(context.Background(), models.Credentials{}))

	require.NoError(t, s.Logout(context.Background()))
	require.Equal(t, SessionState{}, s.State())
	require.Equal(t, 1, fs.ended)
	require.Empty(t, fs.token)
}

func TestLogout_StorageErrorStillResets(t *testing.T) {
	fs := &fakeSession{token: "tok", endErr: errBoom}
	s := NewSessionStore(context.Background(), &fakeAPI{}, fs, logging.Discard())

	require.ErrorIs(t, s.Logout(context.Background()), errBoom)
	require.Equal(t, SessionState{}, s.State())
}

func TestSubscribe_Unsubscribe(t *testing.T) {
	s := NewSessionStore(context.Background(), &fakeAPI{signIn: api.Result[string]{Data: "tok"}}, &fakeSession{}, logging.Discard())

	calls := 0
	unsub := s.Subscribe(func(SessionState) { calls++ })
	s.SignIn(context.Background(), models.Credentials{})
	require.Equal(t, 2, calls)

	unsub()
	unsub()
	s.SignIn(context.Background(), models.Credentials{})
	require.Equal(t, 2, calls)
}
