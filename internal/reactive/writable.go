package reactive

import "sync"

// Unsubscriber removes an observer. Calling it more than once is a no-op.
type Unsubscriber func()

type subscription[T any] struct {
	id     uint64
	notify func(T)
}

type notification[T any] struct {
	subscription[T]
	value T
}

// Writable is an owned mutable cell plus its registered observers.
//
// Notifications go through a FIFO queue owned by the cell. A Set issued while
// a notification pass is running (typically from inside an observer) appends
// its notifications to the queue and returns; the running pass delivers them
// after the ones already queued, so every observer sees the final value last.
type Writable[T any] struct {
	mu       sync.Mutex
	value    T
	nextID   uint64
	subs     []subscription[T]
	queue    []notification[T]
	draining bool
}

// NewWritable creates a cell holding initial.
func NewWritable[T any](initial T) *Writable[T] {
	return &Writable[T]{value: initial}
}

// Get returns the current value.
func (w *Writable[T]) Get() T {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.value
}

// Subscribe registers observer and calls it immediately with the current
// value. A nil observer is ignored.
func (w *Writable[T]) Subscribe(observer func(T)) Unsubscriber {
	if observer == nil {
		return func() {}
	}

	w.mu.Lock()
	w.nextID++
	id := w.nextID
	w.subs = append(w.subs, subscription[T]{id: id, notify: observer})
	current := w.value
	w.mu.Unlock()

	observer(current)

	var once sync.Once
	return func() {
		once.Do(func() { w.remove(id) })
	}
}

// Set replaces the value and notifies every active observer.
func (w *Writable[T]) Set(v T) {
	w.mu.Lock()
	w.value = v
	for _, s := range w.subs {
		w.queue = append(w.queue, notification[T]{subscription: s, value: v})
	}
	if w.draining {
		w.mu.Unlock()
		return
	}
	w.draining = true
	w.mu.Unlock()

	w.drain()
}

// Update replaces the value with fn(current). fn runs without the cell
// locked, so it may read the cell. A panic in fn leaves the value untouched.
func (w *Writable[T]) Update(fn func(T) T) {
	w.Set(fn(w.Get()))
}

// TryUpdate is Update for transforms that can fail. On error the value is
// left untouched, nobody is notified and the error is returned.
func (w *Writable[T]) TryUpdate(fn func(T) (T, error)) error {
	next, err := fn(w.Get())
	if err != nil {
		return err
	}
	w.Set(next)
	return nil
}

// Len reports the number of active observers.
func (w *Writable[T]) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.subs)
}

// drain delivers queued notifications until the queue is empty. Observers
// removed after their notification was queued are skipped. A panicking
// observer drops whatever is still queued.
func (w *Writable[T]) drain() {
	done := false
	defer func() {
		if done {
			return
		}
		w.mu.Lock()
		w.queue = nil
		w.draining = false
		w.mu.Unlock()
	}()

	for {
		w.mu.Lock()
		if len(w.queue) == 0 {
			w.queue = nil
			w.draining = false
			w.mu.Unlock()
			done = true
			return
		}
		n := w.queue[0]
		w.queue = w.queue[1:]
		live := w.active(n.id)
		w.mu.Unlock()

		if live {
			n.notify(n.value)
		}
	}
}

// active must be called with w.mu held.
func (w *Writable[T]) active(id uint64) bool {
	for _, s := range w.subs {
		if s.id == id {
			return true
		}
	}
	return false
}

func (w *Writable[T]) remove(id uint64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for i, s := range w.subs {
		if s.id == id {
			w.subs = append(w.subs[:i:i], w.subs[i+1:]...)
			return
		}
	}
}
