package store

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/userconsole/internal/client/api"
	"github.com/dmitrijs2005/userconsole/internal/client/models"
)

/*************
 * Fake API
 *************/

type fakeAPI struct {
	mu sync.Mutex

	lastCreds models.Credentials
	lastPage  int
	lastID    int
	lastInput models.UserInput
	fetches   int

	signIn api.Result[string]
	list   api.Result[models.UsersPage]
	create api.Result[models.User]
	update api.Result[models.User]
	del    api.Result[int]

	// listFn, when set, overrides list (used to hold a fetch in flight)
	listFn func(ctx context.Context, page int) api.Result[models.UsersPage]
	// signInFn, when set, overrides signIn
	signInFn func(ctx context.Context, creds models.Credentials) api.Result[string]
	// createFn, when set, overrides create
	createFn func(ctx context.Context, in models.UserInput) api.Result[models.User]
}

func (f *fakeAPI) SignIn(ctx context.Context, creds models.Credentials) api.Result[string] {
	f.mu.Lock()
	f.lastCreds = creds
	fn := f.signInFn
	f.mu.Unlock()
	if fn != nil {
		return fn(ctx, creds)
	}
	return f.signIn
}

func (f *fakeAPI) ListUsers(ctx context.Context, page int) api.Result[models.UsersPage] {
	f.mu.Lock()
	f.lastPage = page
	f.fetches++
	fn := f.listFn
	f.mu.Unlock()
	if fn != nil {
		return fn(ctx, page)
	}
	return f.list
}

func (f *fakeAPI) CreateUser(ctx context.Context, in models.UserInput) api.Result[models.User] {
	f.mu.Lock()
	f.lastInput = in
	fn := f.createFn
	f.mu.Unlock()
	if fn != nil {
		return fn(ctx, in)
	}
	return f.create
}

func (f *fakeAPI) UpdateUser(ctx context.Context, id int, patch models.UserInput) api.Result[models.User] {
	f.lastID = id
	f.lastInput = patch
	return f.update
}

func (f *fakeAPI) DeleteUser(ctx context.Context, id int) api.Result[int] {
	f.lastID = id
	if f.del.Err != nil {
		return f.del
	}
	return api.Result[int]{Data: id}
}

func (f *fakeAPI) fetchCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fetches
}

/*************
 * Fake session
 *************/

type fakeSession struct {
	token    string
	started  []string
	ended    int
	startErr error
	endErr   error
}

func (s *fakeSession) Token(ctx context.Context) string { return s.token }

func (s *fakeSession) Start(ctx context.Context, token string) error {
	s.started = append(s.started, token)
	if s.startErr != nil {
		return s.startErr
	}
	s.token = token
	return nil
}

func (s *fakeSession) End(ctx context.Context) error {
	s.ended++
	if s.endErr != nil {
		return s.endErr
	}
	s.token = ""
	return nil
}

var errBoom = errors.New("boom")

func page(users []models.User, p models.Pagination) api.Result[models.UsersPage] {
	return api.Result[models.UsersPage]{Data: models.UsersPage{
		Data:       users,
		Pagination: p,
		Support:    models.Support{URL: "https://reqres.in/#support-heading", Text: "support"},
	}}
}

func fail[T any](msg string, code int) api.Result[T] {
	return api.Result[T]{Err: &api.Failure{Message: msg, StatusCode: code}}
}
