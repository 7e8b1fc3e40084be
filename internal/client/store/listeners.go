package store

import "sync"

// listeners is a synchronous fan-out of state snapshots.
type listeners[S any] struct {
	mu   sync.RWMutex
	next int
	fns  map[int]func(S)
}

// add registers fn and returns a func that removes it.
func (l *listeners[S]) add(fn func(S)) (unsubscribe func()) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.fns == nil {
		l.fns = make(map[int]func(S))
	}
	id := l.next
	l.next++
	l.fns[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			delete(l.fns, id)
			l.mu.Unlock()
		})
	}
}

func (l *listeners[S]) publish(s S) {
	l.mu.RLock()
	fns := make([]func(S), 0, len(l.fns))
	for _, fn := range l.fns {
		fns = append(fns, fn)
	}
	l.mu.RUnlock()

	for _, fn := range fns {
		fn(s)
	}
}
