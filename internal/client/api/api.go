// Package api has one function per remote operation of the user-management
// service. Every function returns a Result and never an error: callers branch
// on Result.Err.
package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/userconsole/internal/client/client"
	"github.com/dmitrijs2005/userconsole/internal/client/models"
)

// API binds the operations to a transport.
type API struct {
	c client.Client
}

func New(c client.Client) *API {
	return &API{c: c}
}

type signInResponse struct {
	Token string `json:"token"`
}

// SignIn posts the credentials and returns the session token.
func (a *API) SignIn(ctx context.Context, creds models.Credentials) Result[string] {
	var resp signInResponse
	if err := a.c.Do(ctx, client.Request{Method: http.MethodPost, Path: "/signin", Body: creds}, &resp); err != nil {
		return failed[string](failureFrom(err))
	}
	if resp.Token == "" {
		return failed[string](&Failure{Message: MsgNoData})
	}
	return success(resp.Token)
}

type listResponse struct {
	Data       []models.User  `json:"data"`
	Support    models.Support `json:"support"`
	Page       int            `json:"page"`
	PerPage    int            `json:"per_page"`
	Total      int            `json:"total"`
	TotalPages int            `json:"total_pages"`
}

// ListUsers fetches one page. page is passed through untouched.
func (a *API) ListUsers(ctx context.Context, page int) Result[models.UsersPage] {
	var resp listResponse
	req := client.Request{
		Method: http.MethodGet,
		Path:   "/users",
		Query:  url.Values{"page": {strconv.Itoa(page)}},
	}
	if err := a.c.Do(ctx, req, &resp); err != nil {
		return failed[models.UsersPage](failureFrom(err))
	}
	if resp.Data == nil {
		return failed[models.UsersPage](&Failure{Message: MsgNoData})
	}

	return success(models.UsersPage{
		Data: resp.Data,
		Pagination: models.Pagination{
			Page:       resp.Page,
			PerPage:    resp.PerPage,
			Total:      resp.Total,
			TotalPages: resp.TotalPages,
		},
		Support: resp.Support,
	})
}

// CreateUser posts a new record and returns what the server stored.
func (a *API) CreateUser(ctx context.Context, in models.UserInput) Result[models.User] {
	var u models.User
	if err := a.c.Do(ctx, client.Request{Method: http.MethodPost, Path: "/users", Body: in}, &u); err != nil {
		return failed[models.User](failureFrom(err))
	}
	return success(u)
}

// UpdateUser sends the non-empty fields of patch. The returned User always
// carries id, even when the server leaves it out of the response.
func (a *API) UpdateUser(ctx context.Context, id int, patch models.UserInput) Result[models.User] {
	var u models.User
	if err := a.c.Do(ctx, client.Request{Method: http.MethodPut, Path: userPath(id), Body: patch}, &u); err != nil {
		return failed[models.User](failureFrom(err))
	}
	u.ID = id
	return success(u)
}

// DeleteUser removes a record and echoes its id.
func (a *API) DeleteUser(ctx context.Context, id int) Result[int] {
	if err := a.c.Do(ctx, client.Request{Method: http.MethodDelete, Path: userPath(id)}, nil); err != nil {
		return failed[int](failureFrom(err))
	}
	return success(id)
}

func userPath(id int) string {
	return "/users/" + strconv.Itoa(id)
}
