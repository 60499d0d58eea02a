package iterator

import "sync"

// CoIterator hands out the items of an Iterator over a channel.
// The Iterator is driven by a goroutine of its own, started by CoIterate.
type CoIterator[T any] struct {
	items <-chan T
	quit  *quitter
}

type quitter struct {
	once sync.Once
	ch   chan struct{}
}

func (q *quitter) signal() {
	q.once.Do(func() { close(q.ch) })
}

// Items is closed after the last item, or soon after Stop.
func (c CoIterator[T]) Items() <-chan T {
	return c.items
}

// Stop asks the goroutine to exit without sending anything further.
// It may be called any number of times, from any goroutine,
// including after Items has been closed.
func (c CoIterator[T]) Stop() {
	c.quit.signal()
}

// CoIterate drives it from a new goroutine, so that its items
// can be read with a for-range loop:
//
//	co := iterator.CoIterate(t.Iterator(iterator.In))
//	for k := range co.Items() {
//		if done(k) {
//			co.Stop()
//		}
//	}
//
// The goroutine exits once it is exhausted or stopped.
// The tree underneath must not change until then.
func CoIterate[T any](it Iterator[T]) CoIterator[T] {
	items := make(chan T)
	q := &quitter{ch: make(chan struct{})}

	if it == nil {
		close(items)
	} else {
		go feed(it, items, q.ch)
	}
	return CoIterator[T]{items: items, quit: q}
}

func feed[T any](it Iterator[T], items chan<- T, quit <-chan struct{}) {
	defer close(items)
	for it.Next() {
		select {
		case <-quit:
			return
		case items <- it.Item():
		}
	}
}
