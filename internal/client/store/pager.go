package store

import "context"

// Pager re-issues a fetch whenever the current page changes and a session
// exists. Setting the page it already holds issues nothing.
type Pager struct {
	current int
	fetch   func(ctx context.Context, page int)
	valid   func(ctx context.Context) bool
}

func NewPager(fetch func(ctx context.Context, page int), valid func(ctx context.Context) bool) *Pager {
	return &Pager{fetch: fetch, valid: valid}
}

// Page returns the current page, zero before the first SetPage.
func (p *Pager) Page() int { return p.current }

// SetPage moves to page (clamped to 1) and fetches it when it differs from
// the current one. It reports whether a fetch was issued.
func (p *Pager) SetPage(ctx context.Context, page int) bool {
	if page < 1 {
		page = 1
	}
	if page == p.current {
		return false
	}
	p.current = page
	if !p.valid(ctx) {
		return false
	}
	p.fetch(ctx, page)
	return true
}

// Reset forgets the current page so the next SetPage always fetches.
func (p *Pager) Reset() { p.current = 0 }
