package view

// Auto is a view whose display refreshes after every mutation. State is
// mutated through Apply, which publishes synchronously before returning, so
// each state change is visible the moment the mutating call completes.
//
// Only mutations routed through Apply publish. Writing to the state from
// outside, or mutating data the state merely points at, shows up on the next
// Apply or Update — the usual blind spot of the eager-publish model.
type Auto[T Renderer] struct {
	*View
	state T
}

// NewAuto creates an auto-updating view around state. The state is its own
// renderer: its Render result is what every refresh publishes.
func NewAuto[T Renderer](state T, opts ...Option) *Auto[T] {
	return &Auto[T]{
		View:  New(state, opts...),
		state: state,
	}
}

// State returns the wrapped state for read access.
func (a *Auto[T]) State() T {
	return a.state
}

// Apply runs mutate against the state, then refreshes the display. Exactly
// one refresh happens per call, however many fields mutate inside.
func (a *Auto[T]) Apply(mutate func(T)) error {
	mutate(a.state)
	return a.Update()
}
