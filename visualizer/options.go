package visualizer

// Options configures the visualization output.
type Options struct {
	// ShowPriorities includes transition priorities as edge labels.
	ShowPriorities bool

	// ShowTimeouts adds timeout edges from a state to its restart target.
	ShowTimeouts bool

	// ShowGlobals renders global transitions (as edges from every state).
	ShowGlobals bool

	// HighlightActive styles the currently active state.
	HighlightActive bool

	// Direction controls diagram flow: "TD" (top-down) or "LR" (left-right).
	Direction string
}

// DefaultOptions returns sensible defaults for visualization.
func DefaultOptions() Options {
	return Options{
		ShowPriorities:  true,
		ShowTimeouts:    true,
		ShowGlobals:     true,
		HighlightActive: true,
		Direction:       "TD",
	}
}

// WithShowPriorities enables/disables priority labels.
func (o Options) WithShowPriorities(show bool) Options {
	o.ShowPriorities = show

	return o
}

// WithShowTimeouts enables/disables timeout edges.
func (o Options) WithShowTimeouts(show bool) Options {
	o.ShowTimeouts = show

	return o
}

// WithShowGlobals enables/disables global transition edges.
func (o Options) WithShowGlobals(show bool) Options {
	o.ShowGlobals = show

	return o
}

// WithHighlightActive enables/disables active-state styling.
func (o Options) WithHighlightActive(highlight bool) Options {
	o.HighlightActive = highlight

	return o
}

// WithDirection sets the diagram direction.
func (o Options) WithDirection(direction string) Options {
	o.Direction = direction

	return o
}
