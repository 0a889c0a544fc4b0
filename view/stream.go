package view

// Stream is a text accumulator view for incremental output, such as tokens
// arriving one fragment at a time from a language model. Each Append
// refreshes the display exactly once with the full accumulated text.
type Stream struct {
	*View
	content string
}

// NewStream creates an empty Markdown stream.
func NewStream(opts ...Option) *Stream {
	s := &Stream{}
	s.View = New(s, append([]Option{AsMarkdown()}, opts...)...)
	return s
}

// NewHTMLStream creates an empty stream whose content is treated as HTML.
func NewHTMLStream(opts ...Option) *Stream {
	s := &Stream{}
	s.View = New(s, opts...)
	return s
}

// Render returns the accumulated text.
func (s *Stream) Render() any {
	return s.content
}

// Content returns the accumulated text without touching the display.
func (s *Stream) Content() string {
	return s.content
}

// Append adds a fragment and refreshes the display.
func (s *Stream) Append(fragment string) error {
	s.content += fragment
	return s.Update()
}

// SetContent replaces the accumulated text and refreshes the display.
func (s *Stream) SetContent(content string) error {
	s.content = content
	return s.Update()
}
