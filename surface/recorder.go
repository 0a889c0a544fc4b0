package surface

import (
	"sync"

	"github.com/drake/liveview/render"
)

// Op identifies the surface operation a Recorder captured.
type Op string

const (
	OpPublish Op = "publish"
	OpRefresh Op = "refresh"
)

// Call is one captured surface operation.
type Call struct {
	Op      Op
	Token   string
	Payload render.Payload
}

// Recorder implements Surface by capturing every call. It backs the library's
// own tests and is exported so consumers can assert on their views' display
// traffic the same way.
type Recorder struct {
	mu    sync.Mutex
	calls []Call
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Publish records a publish call.
func (r *Recorder) Publish(token string, p render.Payload) error {
	r.record(OpPublish, token, p)
	return nil
}

// Refresh records a refresh call.
func (r *Recorder) Refresh(token string, p render.Payload) error {
	r.record(OpRefresh, token, p)
	return nil
}

func (r *Recorder) record(op Op, token string, p render.Payload) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, Call{Op: op, Token: token, Payload: p})
}

// Calls returns a copy of every captured call, in order.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Call, len(r.calls))
	copy(out, r.calls)
	return out
}

// Publishes returns the captured publish calls, in order.
func (r *Recorder) Publishes() []Call {
	return r.filter(OpPublish)
}

// Refreshes returns the captured refresh calls, in order.
func (r *Recorder) Refreshes() []Call {
	return r.filter(OpRefresh)
}

func (r *Recorder) filter(op Op) []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Call
	for _, c := range r.calls {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

// Last returns the most recent call, if any.
func (r *Recorder) Last() (Call, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.calls) == 0 {
		return Call{}, false
	}
	return r.calls[len(r.calls)-1], true
}

// Reset discards all captured calls.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = nil
}
