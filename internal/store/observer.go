// Package store holds the storefront's stateful stores: session, cart, and
// wishlist. Each store keeps a working copy of backend state, mutates through
// the backend and re-fetches the canonical result, and notifies subscribers
// after every change.
package store

import "sync"

// notifier implements subscribe/notify for store observers. Callbacks run
// synchronously on the mutating goroutine and should be quick.
type notifier struct {
	mu   sync.Mutex
	subs map[int]func()
	next int
}

// Subscribe registers a callback invoked after every store change. The
// returned function removes the subscription.
func (n *notifier) Subscribe(fn func()) func() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.subs == nil {
		n.subs = make(map[int]func())
	}
	id := n.next
	n.next++
	n.subs[id] = fn

	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		delete(n.subs, id)
	}
}

func (n *notifier) notify() {
	n.mu.Lock()
	fns := make([]func(), 0, len(n.subs))
	for _, fn := range n.subs {
		fns = append(fns, fn)
	}
	n.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
