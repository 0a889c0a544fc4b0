// Package notebook implements the display surface of a Jupyter-style host.
//
// Each Publish and Refresh becomes one protocol-shaped JSON message on a
// writer: display_data to create an entry, update_display_data to rewrite
// it. A kernel-side bridge forwards these to the frontend. The content
// travels as a MIME bundle keyed by the payload's MIME type; the entry
// token travels only in the transient display_id field, never inside the
// bundle itself.
package notebook

import (
	"encoding/json"
	"io"

	"github.com/drake/liveview/internal/debug"
	"github.com/drake/liveview/render"
)

type transient struct {
	DisplayID string `json:"display_id"`
}

type message struct {
	Type      string            `json:"msg_type"`
	Data      map[string]string `json:"data"`
	Transient transient         `json:"transient"`
}

// Surface writes display messages to a writer as JSON lines.
type Surface struct {
	enc *json.Encoder
}

// New creates a notebook surface writing to w.
func New(w io.Writer) *Surface {
	return &Surface{enc: json.NewEncoder(w)}
}

// Publish emits a display_data message creating a new entry under token.
func (s *Surface) Publish(token string, p render.Payload) error {
	return s.emit("display_data", token, p)
}

// Refresh emits an update_display_data message for the entry under token.
// Jupyter frontends ignore updates for unknown display ids, so a refresh
// before any publish shows nothing until the first display_data arrives.
func (s *Surface) Refresh(token string, p render.Payload) error {
	return s.emit("update_display_data", token, p)
}

func (s *Surface) emit(msgType, token string, p render.Payload) error {
	debug.Logf("notebook: %s id=%s mime=%s", msgType, token, p.Type.MIME())
	return s.enc.Encode(message{
		Type:      msgType,
		Data:      map[string]string{p.Type.MIME(): p.Content},
		Transient: transient{DisplayID: token},
	})
}
