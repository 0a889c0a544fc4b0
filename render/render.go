// Package render defines the content model for live displays: the payload a
// surface can show, the capability interfaces a rendered value may implement,
// and the negotiation from an arbitrary render result to a displayable
// payload.
package render

import (
	"errors"
	"fmt"
)

// ContentType selects the MIME type a payload is tagged with. It also acts
// as the default for plain-string render results, which carry no capability
// of their own.
type ContentType int

const (
	HTML ContentType = iota
	Markdown
)

// MIME returns the MIME type string for the content type.
func (c ContentType) MIME() string {
	if c == Markdown {
		return "text/markdown"
	}
	return "text/html"
}

func (c ContentType) String() string {
	if c == Markdown {
		return "markdown"
	}
	return "html"
}

// Payload is negotiated display content, ready to hand to a surface.
type Payload struct {
	Type    ContentType
	Content string
}

// HTMLer is implemented by render results that produce an HTML fragment.
type HTMLer interface {
	HTML() string
}

// Markdowner is implemented by render results that produce Markdown text.
type Markdowner interface {
	Markdown() string
}

// Formatter converts values that are neither strings nor renderable into a
// payload. Hosts with a generic display formatter can install one as a last
// resort for negotiation.
type Formatter func(v any) (Payload, error)

// ErrContent is the content error: the rendered value could not be converted
// into a displayable payload. All negotiation failures wrap it.
var ErrContent = errors.New("render result is not displayable")

// IsHTMLer reports whether v can produce an HTML fragment.
func IsHTMLer(v any) bool {
	_, ok := v.(HTMLer)
	return ok
}

// IsMarkdowner reports whether v can produce Markdown text.
func IsMarkdowner(v any) bool {
	_, ok := v.(Markdowner)
	return ok
}

// Negotiate converts a render result into a payload. Plain strings are
// tagged with def. A value implementing both capabilities negotiates as
// Markdown. Anything else goes to the fallback formatter when one is
// installed, otherwise the result is a content error.
func Negotiate(v any, def ContentType, fallback Formatter) (Payload, error) {
	switch r := v.(type) {
	case string:
		return Payload{Type: def, Content: r}, nil
	case Markdowner:
		return Payload{Type: Markdown, Content: r.Markdown()}, nil
	case HTMLer:
		return Payload{Type: HTML, Content: r.HTML()}, nil
	}
	if fallback != nil {
		p, err := fallback(v)
		if err != nil {
			return Payload{}, fmt.Errorf("%w: fallback formatter failed for %T: %v", ErrContent, v, err)
		}
		return p, nil
	}
	return Payload{}, fmt.Errorf("%w: got %T, want string, Markdowner or HTMLer", ErrContent, v)
}
