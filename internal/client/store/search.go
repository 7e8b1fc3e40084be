package store

import (
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/userconsole/internal/client/models"
)

// DefaultSearchDelay is the quiet period after the last keystroke before the
// filter is recomputed.
const DefaultSearchDelay = 300 * time.Millisecond

// Filter returns the users whose first name, last name or email contains
// term, ignoring case. An empty term returns users unchanged.
func Filter(users []models.User, term string) []models.User {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return users
	}

	out := make([]models.User, 0, len(users))
	for _, u := range users {
		if strings.Contains(strings.ToLower(u.FirstName), term) ||
			strings.Contains(strings.ToLower(u.LastName), term) ||
			strings.Contains(strings.ToLower(u.Email), term) {
			out = append(out, u)
		}
	}
	return out
}

// Search debounces a search term. Each Type call restarts the timer; once
// delay passes without input the term is applied and onApply runs on the
// timer goroutine. Search never fetches.
type Search struct {
	mu      sync.Mutex
	delay   time.Duration
	timer   *time.Timer
	seq     uint64
	applied string
	onApply func(term string)
}

func NewSearch(delay time.Duration, onApply func(term string)) *Search {
	if delay <= 0 {
		delay = DefaultSearchDelay
	}
	return &Search{delay: delay, onApply: onApply}
}

// Type records a keystroke.
func (s *Search) Type(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
	}
	s.seq++
	seq := s.seq
	s.timer = time.AfterFunc(s.delay, func() { s.apply(seq, term) })
}

func (s *Search) apply(seq uint64, term string) {
	s.mu.Lock()
	if seq != s.seq {
		// superseded by a later keystroke
		s.mu.Unlock()
		return
	}
	s.timer = nil
	s.applied = term
	fn := s.onApply
	s.mu.Unlock()

	if fn != nil {
		fn(term)
	}
}

// Term returns the term currently applied.
func (s *Search) Term() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.applied
}

// Pending reports whether a keystroke is waiting for its delay.
func (s *Search) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timer != nil
}

// Clear drops any pending keystroke and the applied term immediately.
func (s *Search) Clear() {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.seq++
	s.applied = ""
	s.mu.Unlock()
}
