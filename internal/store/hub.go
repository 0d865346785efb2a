package store

import "sync"

// feed fans snapshots of one collection out to its subscribers. Each
// subscriber channel is buffered with capacity one and coalesced: a slow
// consumer sees only the latest snapshot, never a backlog of stale ones.
type feed[T any] struct {
	mu   sync.Mutex
	subs map[int]chan T
	next int
}

func newFeed[T any]() *feed[T] {
	return &feed[T]{subs: make(map[int]chan T)}
}

// subscribe registers a new subscriber and seeds it with the initial
// snapshot. The returned cancel func is idempotent and safe to call while a
// publish is in flight: publish and close are serialized on the feed mutex,
// so a pending delivery never races a channel close.
func (f *feed[T]) subscribe(initial T) (<-chan T, func()) {
	f.mu.Lock()
	defer f.mu.Unlock()

	id := f.next
	f.next++

	ch := make(chan T, 1)
	ch <- initial
	f.subs[id] = ch

	cancel := func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		if sub, ok := f.subs[id]; ok {
			delete(f.subs, id)
			close(sub)
		}
	}

	return ch, cancel
}

// publish delivers a snapshot to every subscriber, replacing any undelivered
// previous snapshot.
func (f *feed[T]) publish(snapshot T) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, ch := range f.subs {
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- snapshot:
		default:
		}
	}
}
