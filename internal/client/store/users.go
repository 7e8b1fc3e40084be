package store

import (
	"context"
	"slices"
	"sync"

	"github.com/dmitrijs2005/userconsole/internal/client/api"
	"github.com/dmitrijs2005/userconsole/internal/client/models"
	"github.com/dmitrijs2005/userconsole/internal/logging"
)

// MsgGenericFailure is shown when a user-list request fails without a message.
const MsgGenericFailure = "An error occurred"

// UsersState is the user-list slice. Pagination and Support are nil until
// the first successful fetch.
type UsersState struct {
	Flows      [numOperations]FlowState
	Users      []models.User
	Pagination *models.Pagination
	Support    *models.Support

	// Banner is the message of the most recent failure of any family. It is
	// cleared by Dismiss.
	Banner string
}

// Flow returns the FlowState of one family.
func (s UsersState) Flow(op Operation) FlowState {
	return s.Flows[op]
}

// Busy reports whether any family has a request in flight.
func (s UsersState) Busy() bool {
	for _, f := range s.Flows {
		if f.IsLoading {
			return true
		}
	}
	return false
}

func (s UsersState) clone() UsersState {
	s.Users = slices.Clone(s.Users)
	if s.Pagination != nil {
		p := *s.Pagination
		s.Pagination = &p
	}
	if s.Support != nil {
		sp := *s.Support
		s.Support = &sp
	}
	return s
}

// UsersAPI is the set of remote calls used by UsersStore.
type UsersAPI interface {
	ListUsers(ctx context.Context, page int) api.Result[models.UsersPage]
	CreateUser(ctx context.Context, in models.UserInput) api.Result[models.User]
	UpdateUser(ctx context.Context, id int, patch models.UserInput) api.Result[models.User]
	DeleteUser(ctx context.Context, id int) api.Result[int]
}

type UsersStore struct {
	mu    sync.Mutex
	state UsersState
	gens  [numOperations]uint64
	epoch uint64

	api    UsersAPI
	logger logging.Logger
	subs   listeners[UsersState]
}

func NewUsersStore(a UsersAPI, logger logging.Logger) *UsersStore {
	return &UsersStore{api: a, logger: logger.With("store", "users")}
}

// State returns a copy of the current slice.
func (s *UsersStore) State() UsersState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// Subscribe registers fn for every transition.
func (s *UsersStore) Subscribe(fn func(UsersState)) (unsubscribe func()) {
	return s.subs.add(fn)
}

// Fetch loads one page and replaces the list wholesale. A fetch that settles
// after a newer fetch was issued changes nothing.
func (s *UsersStore) Fetch(ctx context.Context, page int) *api.Failure {
	t := s.begin(ctx, OpFetch)
	res := s.api.ListUsers(ctx, page)

	return s.settle(ctx, OpFetch, t, true, res.Err, func(st *UsersState) {
		p := res.Data.Pagination
		sp := res.Data.Support
		st.Users = slices.Clone(res.Data.Data)
		st.Pagination = &p
		st.Support = &sp
	})
}

// Create appends the stored record to the list.
func (s *UsersStore) Create(ctx context.Context, in models.UserInput) *api.Failure {
	t := s.begin(ctx, OpCreate)
	res := s.api.CreateUser(ctx, in)

	return s.settle(ctx, OpCreate, t, false, res.Err, func(st *UsersState) {
		st.Users = append(st.Users, res.Data)
	})
}

// Update merges the returned fields over the entry with the same id, in
// place. An id that is not on the page is ignored.
func (s *UsersStore) Update(ctx context.Context, id int, patch models.UserInput) *api.Failure {
	t := s.begin(ctx, OpUpdate)
	res := s.api.UpdateUser(ctx, id, patch)

	return s.settle(ctx, OpUpdate, t, false, res.Err, func(st *UsersState) {
		i := slices.IndexFunc(st.Users, func(u models.User) bool { return u.ID == res.Data.ID })
		if i < 0 {
			return
		}
		st.Users = slices.Clone(st.Users)
		st.Users[i] = st.Users[i].Merge(res.Data)
	})
}

// Delete removes the entry with the deleted id, if present.
func (s *UsersStore) Delete(ctx context.Context, id int) *api.Failure {
	t := s.begin(ctx, OpDelete)
	res := s.api.DeleteUser(ctx, id)

	return s.settle(ctx, OpDelete, t, false, res.Err, func(st *UsersState) {
		st.Users = slices.DeleteFunc(slices.Clone(st.Users), func(u models.User) bool { return u.ID == res.Data })
	})
}

// Dismiss clears the banner and the error of every settled family.
func (s *UsersStore) Dismiss() {
	s.mu.Lock()
	s.state.Banner = ""
	for op := range s.state.Flows {
		if !s.state.Flows[op].IsLoading {
			s.state.Flows[op] = fulfilledFlow()
		}
	}
	snap := s.state.clone()
	s.mu.Unlock()

	s.subs.publish(snap)
}

// Reset drops the list, for example after a logout. Requests issued before
// it change nothing when they settle.
func (s *UsersStore) Reset() {
	s.mu.Lock()
	for op := range s.gens {
		s.gens[op]++
	}
	s.epoch++
	s.state = UsersState{}
	s.mu.Unlock()

	s.subs.publish(UsersState{})
}

// ticket identifies one request: its generation within the family and the
// reset epoch it was issued in.
type ticket struct {
	gen   uint64
	epoch uint64
}

func (s *UsersStore) begin(ctx context.Context, op Operation) ticket {
	s.mu.Lock()
	s.gens[op]++
	t := ticket{gen: s.gens[op], epoch: s.epoch}
	s.state.Flows[op] = pendingFlow()
	snap := s.state.clone()
	s.mu.Unlock()

	s.logger.Debug(ctx, "request started", "op", op.String(), "generation", t.gen)
	s.subs.publish(snap)
	return t
}

// settle reduces one result. A request issued before the last Reset is
// ignored entirely. When dropStale is set so is a superseded request;
// otherwise only its FlowState write is skipped.
func (s *UsersStore) settle(ctx context.Context, op Operation, t ticket, dropStale bool, f *api.Failure, apply func(*UsersState)) *api.Failure {
	s.mu.Lock()
	if t.epoch != s.epoch {
		s.mu.Unlock()
		s.logger.Debug(ctx, "result from before reset dropped", "op", op.String(), "generation", t.gen)
		return nil
	}
	latest := t.gen == s.gens[op]
	if !latest && dropStale {
		s.mu.Unlock()
		s.logger.Debug(ctx, "stale result dropped", "op", op.String(), "generation", t.gen)
		return nil
	}

	var out *api.Failure
	if f != nil {
		flow := rejectedFlow(f.Message, MsgGenericFailure)
		if latest {
			s.state.Flows[op] = flow
		}
		s.state.Banner = flow.ErrorMessage
		out = &api.Failure{Message: flow.ErrorMessage, StatusCode: f.StatusCode}
	} else {
		apply(&s.state)
		if latest {
			s.state.Flows[op] = fulfilledFlow()
		}
	}
	snap := s.state.clone()
	s.mu.Unlock()

	if out != nil {
		s.logger.Warn(ctx, "request failed", "op", op.String(), "status", out.StatusCode, "error", out.Message)
	} else {
		s.logger.Debug(ctx, "request completed", "op", op.String())
	}
	s.subs.publish(snap)
	return out
}
