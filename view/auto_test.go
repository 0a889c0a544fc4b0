package view

import (
	"fmt"
	"testing"

	"github.com/drake/liveview/surface"
)

type counter struct {
	Label string
	Count int
}

func (c *counter) Render() any {
	return fmt.Sprintf("%s: %d", c.Label, c.Count)
}

func newTestAuto(t *testing.T, state *counter) (*Auto[*counter], *surface.Recorder) {
	t.Helper()
	rec := surface.NewRecorder()
	return NewAuto(state, OnSurface(rec)), rec
}

func TestApplyRefreshesOnce(t *testing.T) {
	a, rec := newTestAuto(t, &counter{Label: "count", Count: 0})

	err := a.Apply(func(c *counter) { c.Count = 1 })
	if err != nil {
		t.Fatalf("Apply() error: %v", err)
	}

	refs := rec.Refreshes()
	if len(refs) != 1 {
		t.Fatalf("got %d refreshes, want exactly 1", len(refs))
	}
	if got := refs[0].Payload.Content; got != "count: 1" {
		t.Errorf("refreshed content = %q, want the newly rendered state", got)
	}
}

func TestApplyManyFieldsOneRefresh(t *testing.T) {
	a, rec := newTestAuto(t, &counter{Label: "count", Count: 0})

	a.Apply(func(c *counter) {
		c.Label = "total"
		c.Count = 9
	})

	if got := len(rec.Refreshes()); got != 1 {
		t.Fatalf("got %d refreshes for one Apply, want 1", got)
	}
	if got, _ := rec.Last(); got.Payload.Content != "total: 9" {
		t.Errorf("refreshed content = %q, want both mutations visible", got.Payload.Content)
	}
}

func TestTokenSurvivesMutation(t *testing.T) {
	a, _ := newTestAuto(t, &counter{Label: "count"})
	before := a.Token()

	for i := 0; i < 5; i++ {
		a.Apply(func(c *counter) { c.Count++ })
	}
	if a.Token() != before {
		t.Errorf("token changed under mutation: %q -> %q", before, a.Token())
	}
}

func TestOutOfBandMutationDoesNotPublish(t *testing.T) {
	state := &counter{Label: "count"}
	a, rec := newTestAuto(t, state)

	state.Count = 7 // bypasses Apply

	if got := len(rec.Calls()); got != 0 {
		t.Errorf("out-of-band write published %d calls, want 0", got)
	}

	// The change still shows on the next explicit refresh.
	if err := a.Update(); err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if last, _ := rec.Last(); last.Payload.Content != "count: 7" {
		t.Errorf("refreshed content = %q, want count: 7", last.Payload.Content)
	}
}
