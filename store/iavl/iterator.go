package iavl

import (
	"sync"

	"github.com/iov-one/remit/store"
)

// lazyIterator feeds models from a producing goroutine (walking the
// iavl tree) to the consumer calling Next. The producer must call
// finish when the walk returned, no matter if it was aborted.
type lazyIterator struct {
	data    store.Model
	hasMore bool
	read    chan store.Model
	stop    chan struct{}
	done    chan struct{}
	once    sync.Once
}

var _ store.Iterator = (*lazyIterator)(nil)

func newLazyIterator() *lazyIterator {
	return &lazyIterator{
		read: make(chan store.Model),
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
}

// add is given to iavl.IterateRange as a callback.
// Returning true aborts the iteration.
func (i *lazyIterator) add(key []byte, value []byte) bool {
	// never send on read once released, the consumer is gone
	select {
	case <-i.stop:
		return true
	default:
	}

	m := store.Model{Key: key, Value: value}
	select {
	case i.read <- m:
		return false
	case <-i.stop:
		return true
	}
}

// finish marks the end of the production. Only the producing
// goroutine may call it, exactly once.
func (i *lazyIterator) finish() {
	close(i.read)
	close(i.done)
}

// Release aborts the production without waiting for it to end.
func (i *lazyIterator) Release() {
	i.once.Do(func() {
		close(i.stop)
	})
}

// Valid implements Iterator and returns true iff it can be read
func (i *lazyIterator) Valid() bool {
	return i.hasMore
}

// Next moves the iterator to the next sequential key in the database, as
// defined by order of iteration.
//
// If Valid returns false, this method will panic.
func (i *lazyIterator) Next() {
	if !i.hasMore {
		panic("Advanced past the end!")
	}
	i.data, i.hasMore = <-i.read
}

// prime reads the first value so Valid works right after setup
func (i *lazyIterator) prime() {
	i.data, i.hasMore = <-i.read
}

// Key returns the key of the cursor.
func (i *lazyIterator) Key() []byte {
	if !i.hasMore {
		panic("read after end of iterator")
	}
	return i.data.Key
}

// Value returns the value of the cursor.
func (i *lazyIterator) Value() []byte {
	if !i.hasMore {
		panic("read after end of iterator")
	}
	return i.data.Value
}

// Close releases the Iterator and waits until the producing
// goroutine exited, so nothing reads the tree once Close returns.
func (i *lazyIterator) Close() {
	i.Release()
	<-i.done
}
