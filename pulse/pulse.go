// Package pulse builds one-shot transition conditions from externally-owned
// event sources. A Pulse owns a flag that an event source sets via Fire; the
// condition derived from it reports true for exactly one evaluation after a
// fire, then resets. This lets a transition react to an event without the
// state machine depending on any particular event-dispatch mechanism.
package pulse

import "go.uber.org/atomic"

// Unsubscribe detaches a Pulse from the event source it was subscribed to.
type Unsubscribe func()

// Subscribe attaches a fire callback to an external event source and returns
// the matching detach function. The returned Unsubscribe may be nil when the
// source needs no teardown.
type Subscribe func(fire func()) Unsubscribe

type pulseOptions struct {
	subscribe Subscribe
}

// Option configures a Pulse.
type Option func(*pulseOptions)

// WithSubscribe wires the Pulse to an event source at construction time.
// The subscription is torn down by Close.
func WithSubscribe(sub Subscribe) Option {
	return func(o *pulseOptions) {
		o.subscribe = sub
	}
}

// Pulse is a one-shot boolean flag with subscribe/unsubscribe lifetime.
// Fire may be called from any goroutine; the flag is atomic.
type Pulse struct {
	flag        *atomic.Bool
	unsubscribe Unsubscribe
}

// New creates a Pulse. When WithSubscribe is given, the Pulse subscribes
// immediately and stays subscribed until Close.
func New(opts ...Option) *Pulse {
	options := &pulseOptions{}

	for _, opt := range opts {
		opt(options)
	}

	pulseInst := &Pulse{
		flag: atomic.NewBool(false),
	}

	if options.subscribe != nil {
		pulseInst.unsubscribe = options.subscribe(pulseInst.Fire)
	}

	return pulseInst
}

// Fire marks the pulse as pending. Repeated fires before the next
// evaluation collapse into a single pulse.
func (p *Pulse) Fire() {
	p.flag.Store(true)
}

// Pending reports whether a fire is waiting, without consuming it.
func (p *Pulse) Pending() bool {
	return p.flag.Load()
}

// Condition returns a predicate suitable for a transition condition: it
// reports true exactly once per fire, consuming the pending flag.
func (p *Pulse) Condition() func() bool {
	return func() bool {
		return p.flag.CompareAndSwap(true, false)
	}
}

// Close detaches the Pulse from its event source and clears any pending
// fire. Close is safe to call more than once.
func (p *Pulse) Close() {
	if p.unsubscribe != nil {
		p.unsubscribe()
		p.unsubscribe = nil
	}

	p.flag.Store(false)
}
