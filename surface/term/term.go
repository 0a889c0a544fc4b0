// Package term implements a display surface for plain terminals.
//
// A notebook can rewrite any display entry by id; a terminal can only edit
// what has not scrolled away. This surface therefore rewrites the most
// recently published entry in place (cursor rewind + redraw) and appends a
// fresh frame for anything older. Markdown payloads render through glamour,
// HTML payloads degrade to tag-stripped text.
package term

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/mattn/go-isatty"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"

	"github.com/drake/liveview/internal/debug"
	"github.com/drake/liveview/render"
)

// maxTracked bounds the frame registry. Entries past the bound lose their
// recorded height and refresh by appending, which is always safe.
const maxTracked = 256

const defaultWidth = 80

// Surface renders payloads as ANSI text on a terminal.
type Surface struct {
	out     *termenv.Output
	tty     bool
	width   int
	style   lipgloss.Style
	md      *glamour.TermRenderer
	mdErr   error
	mdReady bool

	// heights maps token -> row count of the last written frame.
	heights   *lru.Cache[string, int]
	lastToken string
}

// Option configures a Surface at construction.
type Option func(*Surface)

// WithWidth sets the wrap width for rendered frames.
func WithWidth(w int) Option {
	return func(s *Surface) { s.width = w }
}

// WithFrameStyle sets the lipgloss style applied to every frame.
func WithFrameStyle(st lipgloss.Style) Option {
	return func(s *Surface) { s.style = st }
}

// ForceInPlace enables in-place rewriting even when the writer is not a
// terminal, for pipes that interpret ANSI cursor movement.
func ForceInPlace() Option {
	return func(s *Surface) { s.tty = true }
}

// New creates a terminal surface writing to w.
func New(w io.Writer, opts ...Option) *Surface {
	s := &Surface{
		out:   termenv.NewOutput(w),
		width: defaultWidth,
		style: lipgloss.NewStyle(),
	}
	if f, ok := w.(*os.File); ok {
		s.tty = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	s.heights, _ = lru.New[string, int](maxTracked)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Publish writes a new frame for token at the bottom of the output.
func (s *Surface) Publish(token string, p render.Payload) error {
	return s.write(token, p)
}

// Refresh rewrites token's frame. Only the most recent frame can be edited
// in place; older tokens, unknown tokens, and non-terminal writers get a
// fresh frame appended instead.
func (s *Surface) Refresh(token string, p render.Payload) error {
	if s.tty && token == s.lastToken {
		if rows, ok := s.heights.Get(token); ok {
			s.out.WriteString(ansi.CursorUp(rows))
			s.out.WriteString("\r")
			s.out.WriteString(ansi.EraseDisplay(0))
			debug.Logf("term: in-place refresh id=%s rows=%d", token, rows)
			return s.write(token, p)
		}
	}
	debug.Logf("term: append refresh id=%s", token)
	return s.write(token, p)
}

func (s *Surface) write(token string, p render.Payload) error {
	frame, err := s.renderFrame(p)
	if err != nil {
		return err
	}
	if _, err := s.out.WriteString(frame + "\n"); err != nil {
		return err
	}
	s.heights.Add(token, frameRows(frame, s.width))
	s.lastToken = token
	return nil
}

func (s *Surface) renderFrame(p render.Payload) (string, error) {
	var body string
	switch p.Type {
	case render.Markdown:
		out, err := s.renderMarkdown(p.Content)
		if err != nil {
			return "", err
		}
		body = out
	default:
		body = htmlToText(p.Content)
	}
	body = strings.TrimRight(body, "\n")
	return s.style.Render(body), nil
}

func (s *Surface) renderMarkdown(content string) (string, error) {
	if !s.mdReady {
		s.md, s.mdErr = glamour.NewTermRenderer(
			glamour.WithStandardStyle(s.styleName()),
			glamour.WithWordWrap(s.width),
		)
		s.mdReady = true
	}
	if s.mdErr != nil {
		// Renderer init failed; show the raw markdown rather than nothing.
		debug.Logf("term: glamour unavailable: %v", s.mdErr)
		return content, nil
	}
	out, err := s.md.Render(content)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return out, nil
}

func (s *Surface) styleName() string {
	if s.out.ColorProfile() == termenv.Ascii {
		return "notty"
	}
	return "auto"
}

// frameRows counts terminal rows the frame occupies, accounting for lines
// wider than the wrap width.
func frameRows(frame string, width int) int {
	rows := 0
	for _, line := range strings.Split(frame, "\n") {
		w := runewidth.StringWidth(ansi.Strip(line))
		if w <= width {
			rows++
			continue
		}
		rows += (w + width - 1) / width
	}
	return rows
}
