package collect

// window is a fixed-capacity FIFO buffer. Pushing onto a full window evicts
// the oldest entry. Not safe for concurrent use; the Collector serializes
// access.
type window[T any] struct {
	buf  []T
	head int // index of the oldest entry
	n    int // number of live entries
}

func newWindow[T any](capacity int) *window[T] {
	return &window[T]{buf: make([]T, capacity)}
}

func (w *window[T]) push(v T) {
	if w.n < len(w.buf) {
		w.buf[(w.head+w.n)%len(w.buf)] = v
		w.n++
		return
	}
	// Full: overwrite the oldest slot and advance.
	w.buf[w.head] = v
	w.head = (w.head + 1) % len(w.buf)
}

func (w *window[T]) len() int { return w.n }

// each visits live entries oldest first.
func (w *window[T]) each(fn func(T)) {
	for i := 0; i < w.n; i++ {
		fn(w.buf[(w.head+i)%len(w.buf)])
	}
}

// last returns the most recently pushed entry, if any.
func (w *window[T]) last() (T, bool) {
	if w.n == 0 {
		var zero T
		return zero, false
	}
	return w.buf[(w.head+w.n-1)%len(w.buf)], true
}
