// Package evalpool provides a pool of reusable scratch buffers for per-tick
// transition evaluation. The state machine borrows a buffer at the start of
// an evaluation pass and returns it before the pass ends, so steady-state
// ticking performs no allocation.
//
// A buffer is exclusively owned between Get and Release. The pool assumes a
// single-threaded caller (the frame loop); Release is designed to run in a
// defer so the buffer is returned even if a hook panics mid-evaluation.
package evalpool

const defaultBufferCap = 16

type poolOptions struct {
	name      string
	bufferCap int
}

// Option configures a Pool.
type Option func(*poolOptions)

// WithName sets the pool name used as the metric label.
func WithName(name string) Option {
	return func(o *poolOptions) {
		o.name = name
	}
}

// WithBufferCap sets the initial capacity of newly allocated buffers.
func WithBufferCap(capacity int) Option {
	return func(o *poolOptions) {
		if capacity > 0 {
			o.bufferCap = capacity
		}
	}
}

// Pool keeps released buffers for reuse. The zero value is not usable;
// create pools with New.
type Pool[T any] struct {
	name      string
	bufferCap int
	free      []*Buffer[T]
}

// New creates a Pool. Buffers are allocated on demand and kept indefinitely
// once released.
func New[T any](opts ...Option) *Pool[T] {
	options := &poolOptions{
		name:      "evalpool",
		bufferCap: defaultBufferCap,
	}

	for _, opt := range opts {
		opt(options)
	}

	poolInst := &Pool[T]{
		name:      options.name,
		bufferCap: options.bufferCap,
	}

	poolBuffersIdle.WithLabelValues(poolInst.name).Set(0)
	poolBuffersInUse.WithLabelValues(poolInst.name).Set(0)
	buffersAllocated.WithLabelValues(poolInst.name).Add(0)
	poolGets.WithLabelValues(poolInst.name).Add(0)

	return poolInst
}

// Get borrows a buffer from the pool, allocating a fresh one if none are
// idle. The caller must Release it when done.
func (p *Pool[T]) Get() *Buffer[T] {
	poolGets.WithLabelValues(p.name).Inc()

	if n := len(p.free); n > 0 {
		buf := p.free[n-1]
		p.free = p.free[:n-1]
		buf.released = false

		poolBuffersIdle.WithLabelValues(p.name).Dec()
		poolBuffersInUse.WithLabelValues(p.name).Inc()

		return buf
	}

	buffersAllocated.WithLabelValues(p.name).Inc()
	poolBuffersInUse.WithLabelValues(p.name).Inc()

	return &Buffer[T]{
		pool:  p,
		items: make([]T, 0, p.bufferCap),
	}
}

// Idle returns the number of buffers currently held by the pool.
func (p *Pool[T]) Idle() int {
	return len(p.free)
}

// Buffer is a borrowed scratch slice. It must not be used after Release.
type Buffer[T any] struct {
	pool     *Pool[T]
	items    []T
	released bool
}

// Append adds items to the buffer.
func (b *Buffer[T]) Append(items ...T) {
	b.items = append(b.items, items...)
}

// Items returns the buffered items. The returned slice is only valid until
// Release.
func (b *Buffer[T]) Items() []T {
	return b.items
}

// Len returns the number of buffered items.
func (b *Buffer[T]) Len() int {
	return len(b.items)
}

// Release resets the buffer and returns it to the pool. It is safe to call
// more than once; repeated calls are no-ops, which makes it suitable for
// a defer alongside an explicit early release.
func (b *Buffer[T]) Release() {
	if b.released {
		return
	}

	var zero T
	for i := range b.items {
		b.items[i] = zero
	}

	b.items = b.items[:0]
	b.released = true
	b.pool.free = append(b.pool.free, b)

	poolBuffersIdle.WithLabelValues(b.pool.name).Inc()
	poolBuffersInUse.WithLabelValues(b.pool.name).Dec()
}
