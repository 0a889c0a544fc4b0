package notebook

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/drake/liveview/render"
)

type wireMessage struct {
	Type      string            `json:"msg_type"`
	Data      map[string]string `json:"data"`
	Transient struct {
		DisplayID string `json:"display_id"`
	} `json:"transient"`
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []wireMessage {
	t.Helper()
	var msgs []wireMessage
	dec := json.NewDecoder(buf)
	for dec.More() {
		var m wireMessage
		if err := dec.Decode(&m); err != nil {
			t.Fatalf("decoding emitted message: %v", err)
		}
		msgs = append(msgs, m)
	}
	return msgs
}

func TestPublishThenRefresh(t *testing.T) {
	var buf bytes.Buffer
	s := New(&buf)

	if err := s.Publish("01ABC", render.Payload{Type: render.HTML, Content: "<b>Hello, world!</b>"}); err != nil {
		t.Fatalf("Publish() error: %v", err)
	}
	if err := s.Refresh("01ABC", render.Payload{Type: render.HTML, Content: "<b>Goodbye</b>"}); err != nil {
		t.Fatalf("Refresh() error: %v", err)
	}

	msgs := decodeLines(t, &buf)
	if len(msgs) != 2 {
		t.Fatalf("emitted %d messages, want 2", len(msgs))
	}

	if msgs[0].Type != "display_data" {
		t.Errorf("first msg_type = %q, want display_data", msgs[0].Type)
	}
	if msgs[1].Type != "update_display_data" {
		t.Errorf("second msg_type = %q, want update_display_data", msgs[1].Type)
	}

	for i, m := range msgs {
		if m.Transient.DisplayID != "01ABC" {
			t.Errorf("msg %d display_id = %q, want 01ABC", i, m.Transient.DisplayID)
		}
	}

	if got := msgs[0].Data["text/html"]; got != "<b>Hello, world!</b>" {
		t.Errorf("publish bundle = %q, want the literal rendered string", got)
	}
	if got := msgs[1].Data["text/html"]; got != "<b>Goodbye</b>" {
		t.Errorf("refresh bundle = %q, want <b>Goodbye</b>", got)
	}
}

func TestTokenStaysOutOfBundle(t *testing.T) {
	var buf bytes.Buffer
	s := New(&buf)

	token := "01HQZX8JK9"
	if err := s.Publish(token, render.Payload{Type: render.Markdown, Content: "# heading"}); err != nil {
		t.Fatalf("Publish() error: %v", err)
	}

	msgs := decodeLines(t, &buf)
	for mime, content := range msgs[0].Data {
		if strings.Contains(content, token) {
			t.Errorf("bundle %q contains the display token", mime)
		}
	}
	if got := msgs[0].Data["text/markdown"]; got != "# heading" {
		t.Errorf("markdown bundle = %q, want # heading", got)
	}
}
