// Package animation defines the playback capability the state machine calls
// when it enters a state that carries an animation descriptor. The machine
// only ever talks to the Player interface; hosts provide one adapter per
// concrete playback backend.
package animation

// Descriptor describes a named animation and how it should be played.
type Descriptor struct {
	Name      string
	Speed     float64
	BlendTime float64
	Loop      bool
}

// Request is a single playback request handed to a Player.
type Request struct {
	Descriptor

	// OnFinished, when non-nil, is invoked by the backend once playback
	// completes. Looping animations never complete.
	OnFinished func()
}

// Player is the single-operation playback capability.
type Player interface {
	Play(req Request) error
}

// PlayerFunc adapts a plain function to the Player interface.
type PlayerFunc func(req Request) error

func (f PlayerFunc) Play(req Request) error {
	return f(req)
}

// Nop returns a Player that accepts every request and does nothing.
// Useful as a default when a host has no playback backend wired yet.
func Nop() Player {
	return PlayerFunc(func(Request) error {
		return nil
	})
}

// Recorder is a Player that records every request it receives.
// It is intended for tests.
type Recorder struct {
	Requests []Request
}

func (r *Recorder) Play(req Request) error {
	r.Requests = append(r.Requests, req)

	return nil
}

// Names returns the animation names of all recorded requests, in order.
func (r *Recorder) Names() []string {
	names := make([]string, 0, len(r.Requests))
	for _, req := range r.Requests {
		names = append(names, req.Name)
	}

	return names
}
