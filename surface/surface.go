// Package surface defines the host display surface a view publishes to.
//
// A surface owns live display entries addressed by an opaque token. The
// token only correlates a view with its entry; it never appears inside the
// displayed content. Implementations for terminals and Jupyter-style hosts
// live in the subpackages.
package surface

import "github.com/drake/liveview/render"

// Surface is a host environment able to show live display entries.
type Surface interface {
	// Publish creates a new live display entry under token.
	Publish(token string, p render.Payload) error

	// Refresh rewrites the entry previously published under token.
	// Refreshing a token that was never published is host-defined; the
	// bundled surfaces treat it as creating a fresh entry.
	Refresh(token string, p render.Payload) error
}
