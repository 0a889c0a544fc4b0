// Package view implements live-updating view objects for interactive
// environments. A view pairs application data with a render operation and a
// stable identity token, and publishes its rendered content to a display
// surface it does not own. Redisplaying the same view refreshes its entry in
// place, which makes views useful for streaming output such as incremental
// text from a generative model.
package view

import (
	"os"
	"sync"

	"github.com/oklog/ulid/v2"

	"github.com/drake/liveview/render"
	"github.com/drake/liveview/surface"
	"github.com/drake/liveview/surface/term"
)

// Renderer produces the content for a live display. Render must return a
// plain string, a render.Markdowner, or a render.HTMLer; any other value is
// a content error at display time.
type Renderer interface {
	Render() any
}

// View pairs a Renderer with a stable identity token and the surface its
// content is published to. The token is generated once at construction and
// never changes; it correlates the view with one display entry and is
// excluded from every payload.
type View struct {
	token    string
	renderer Renderer
	surface  surface.Surface
	def      render.ContentType
	fallback render.Formatter
}

// Option configures a View at construction.
type Option func(*View)

// OnSurface sets the surface the view publishes to. Without it, views share
// a terminal surface on stdout.
func OnSurface(s surface.Surface) Option {
	return func(v *View) { v.surface = s }
}

// AsMarkdown treats plain-string render results as Markdown.
func AsMarkdown() Option {
	return func(v *View) { v.def = render.Markdown }
}

// AsHTML treats plain-string render results as HTML. This is the default.
func AsHTML() Option {
	return func(v *View) { v.def = render.HTML }
}

// WithFallback installs a last-resort formatter for render results that are
// neither strings nor renderable values.
func WithFallback(f render.Formatter) Option {
	return func(v *View) { v.fallback = f }
}

var stdoutSurface = sync.OnceValue(func() surface.Surface {
	return term.New(os.Stdout)
})

// New creates a view for r.
func New(r Renderer, opts ...Option) *View {
	v := &View{
		token:    ulid.Make().String(),
		renderer: r,
		def:      render.HTML,
	}
	for _, opt := range opts {
		opt(v)
	}
	if v.surface == nil {
		v.surface = stdoutSurface()
	}
	return v
}

// Token returns the view's identity token.
func (v *View) Token() string {
	return v.token
}

// Payload renders the view and negotiates the result into display content.
func (v *View) Payload() (render.Payload, error) {
	return render.Negotiate(v.renderer.Render(), v.def, v.fallback)
}

// Display publishes the current content as a new display entry.
func (v *View) Display() error {
	p, err := v.Payload()
	if err != nil {
		return err
	}
	return v.surface.Publish(v.token, p)
}

// Update refreshes the view's existing display entry with the current
// content. Calling Update before any Display is surface-defined; the bundled
// surfaces create a fresh entry.
func (v *View) Update() error {
	p, err := v.Payload()
	if err != nil {
		return err
	}
	return v.surface.Refresh(v.token, p)
}
