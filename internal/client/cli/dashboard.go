package cli

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/userconsole/internal/client/store"
)

// dashboardView is the gated user list. It fetches when its page changes
// and renders every settled state of the users store.
type dashboardView struct {
	app    *App
	pager  *store.Pager
	search *store.Search
	unsub  func()
}

func newDashboardView(a *App) *dashboardView {
	v := &dashboardView{app: a}
	v.pager = store.NewPager(func(ctx context.Context, page int) {
		_ = a.users.Fetch(ctx, page)
	}, a.sessions.Valid)
	v.search = store.NewSearch(a.config.SearchDebounce, func(string) {
		v.render(a.users.State())
	})
	return v
}

func (v *dashboardView) Enter(ctx context.Context) error {
	v.unsub = v.app.users.Subscribe(v.onState)
	v.pager.SetPage(ctx, 1)
	return nil
}

func (v *dashboardView) Leave(ctx context.Context) {
	if v.unsub != nil {
		v.unsub()
		v.unsub = nil
	}
	v.pager.Reset()
	v.search.Clear()
}

func (v *dashboardView) onState(st store.UsersState) {
	if st.Flow(store.OpFetch).IsLoading {
		v.app.println("Loading users...")
		return
	}
	if !st.Busy() {
		v.render(st)
	}
}

func (v *dashboardView) render(st store.UsersState) {
	renderUsers(v.app.out, st, v.search.Term())
}

// dashboard returns the current view when it is the dashboard and prints a
// hint otherwise.
func (a *App) dashboard() (*dashboardView, bool) {
	v, ok := a.currentView().(*dashboardView)
	if !ok {
		a.println("Sign in and open /dashboard first.")
	}
	return v, ok
}

// SetPage moves the dashboard to page n.
func (a *App) SetPage(ctx context.Context, n int) error {
	v, ok := a.dashboard()
	if !ok {
		return errWrongView
	}
	if !v.pager.SetPage(ctx, n) {
		v.render(a.users.State())
	}
	return nil
}

func (a *App) NextPage(ctx context.Context) error {
	v, ok := a.dashboard()
	if !ok {
		return errWrongView
	}
	if p := a.users.State().Pagination; p != nil && v.pager.Page() >= p.TotalPages {
		a.println("Already on the last page.")
		return nil
	}
	return a.SetPage(ctx, v.pager.Page()+1)
}

func (a *App) PrevPage(ctx context.Context) error {
	v, ok := a.dashboard()
	if !ok {
		return errWrongView
	}
	if v.pager.Page() <= 1 {
		a.println("Already on the first page.")
		return nil
	}
	return a.SetPage(ctx, v.pager.Page()-1)
}

// Refresh fetches the current page again.
func (a *App) Refresh(ctx context.Context) error {
	v, ok := a.dashboard()
	if !ok {
		return errWrongView
	}
	_ = a.users.Fetch(ctx, max(v.pager.Page(), 1))
	return nil
}

// Search types a term into the debounced filter. An empty term clears it
// at once.
func (a *App) Search(ctx context.Context, term string) error {
	v, ok := a.dashboard()
	if !ok {
		return errWrongView
	}
	term = strings.TrimSpace(term)
	if term == "" {
		v.search.Clear()
		v.render(a.users.State())
		return nil
	}
	v.search.Type(term)
	return nil
}

// Dismiss hides the error banner.
func (a *App) Dismiss(ctx context.Context) error {
	if _, ok := a.dashboard(); !ok {
		return errWrongView
	}
	a.users.Dismiss()
	return nil
}
