// package testing contains shared testing utilities
package testing

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"sync"
	"time"
)

// Response scripts one HTTP exchange for a [ScriptedTransport].
type Response struct {
	Status int
	Body   string
	Header http.Header
	Err    error // when set, the exchange fails at the transport level
}

// ScriptedTransport plays back a fixed sequence of responses and records
// every request it saw. Once the script runs out it keeps repeating the last
// entry. Safe for concurrent use.
type ScriptedTransport struct {
	mu       sync.Mutex
	script   []Response
	requests []*http.Request
	bodies   []string
}

func NewScriptedTransport(script ...Response) *ScriptedTransport {
	return &ScriptedTransport{script: script}
}

func (s *ScriptedTransport) Do(req *http.Request) (*http.Response, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var body string
	if req.Body != nil {
		raw, _ := io.ReadAll(req.Body)
		req.Body.Close()
		body = string(raw)
	}
	s.requests = append(s.requests, req)
	s.bodies = append(s.bodies, body)

	idx := len(s.requests) - 1
	if idx >= len(s.script) {
		idx = len(s.script) - 1
	}
	step := s.script[idx]
	if step.Err != nil {
		return nil, step.Err
	}

	header := step.Header
	if header == nil {
		header = http.Header{}
	}
	return &http.Response{
		StatusCode: step.Status,
		Header:     header,
		Body:       io.NopCloser(bytes.NewReader([]byte(step.Body))),
		Request:    req,
	}, nil
}

// Requests returns a snapshot of the recorded requests.
func (s *ScriptedTransport) Requests() []*http.Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*http.Request(nil), s.requests...)
}

// Bodies returns the recorded request bodies, in order.
func (s *ScriptedTransport) Bodies() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.bodies...)
}

// Count returns how many requests the transport has seen.
func (s *ScriptedTransport) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

// RecordingSleeper captures backoff durations instead of sleeping, so 429
// retry timing is testable without real delays.
type RecordingSleeper struct {
	mu     sync.Mutex
	Slept  []time.Duration
	FailAt int // 1-based call index that returns an error; 0 disables
}

func (r *RecordingSleeper) Sleep(ctx context.Context, d time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Slept = append(r.Slept, d)
	if r.FailAt > 0 && len(r.Slept) >= r.FailAt {
		return context.Canceled
	}
	return nil
}

// Durations returns a snapshot of the recorded backoffs.
func (r *RecordingSleeper) Durations() []time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]time.Duration(nil), r.Slept...)
}

// Clock is a manually advanced time source.
type Clock struct {
	mu  sync.Mutex
	now time.Time
}

func NewClock(start time.Time) *Clock {
	return &Clock{now: start}
}

func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
