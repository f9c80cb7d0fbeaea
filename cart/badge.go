package cart

import "sync"

// Badge tracks the cart item count the way a navigation badge does: seeded
// from the current cart, then recomputed on every change event, whether the
// mutation happened through this store instance or another one.
type Badge struct {
	mu     sync.Mutex
	count  int
	cancel func()
	done   chan struct{}
}

// NewBadge subscribes to the store and keeps a live item count.
func NewBadge(store Store) *Badge {
	ch, cancel := store.Subscribe()
	b := &Badge{
		count:  len(store.Load()),
		cancel: cancel,
		done:   make(chan struct{}),
	}
	go func() {
		defer close(b.done)
		for change := range ch {
			b.mu.Lock()
			b.count = len(change.Items)
			b.mu.Unlock()
		}
	}()
	return b
}

// Count returns the current item count.
func (b *Badge) Count() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.count
}

// Close unsubscribes from the store.
func (b *Badge) Close() {
	b.cancel()
	<-b.done
}
