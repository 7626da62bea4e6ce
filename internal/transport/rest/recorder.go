package rest

import (
	"sync"
	"time"
)

// Received is one request accepted by the stand-in endpoint.
type Received struct {
	Path        string
	RequestID   string
	ContentType string
	Body        []byte
	At          time.Time
}

type Recorder struct {
	mu       sync.Mutex
	received []Received
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Add(rec Received) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.received = append(r.received, rec)
}

// All returns a copy of everything recorded so far, oldest first.
func (r *Recorder) All() []Received {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Received, len(r.received))
	copy(out, r.received)
	return out
}

func (r *Recorder) Count(path string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for _, rec := range r.received {
		if rec.Path == path {
			n++
		}
	}
	return n
}

func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.received)
}
