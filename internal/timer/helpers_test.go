package timer

import (
	"bytes"
	"log"
	"sync"
	"testing"
	"time"
)

const waitTimeout = 2 * time.Second

// stepClock suspends the ticking goroutine until the test wakes it.
type stepClock struct {
	slept   chan time.Duration
	release chan struct{}
	closed  chan struct{}
}

func newStepClock(t *testing.T) *stepClock {
	c := &stepClock{
		slept:   make(chan time.Duration),
		release: make(chan struct{}),
		closed:  make(chan struct{}),
	}
	t.Cleanup(func() { close(c.closed) })
	return c
}

func (c *stepClock) Sleep(d time.Duration) {
	select {
	case c.slept <- d:
	case <-c.closed:
		return
	}
	select {
	case <-c.release:
	case <-c.closed:
	}
}

// waitSleep blocks until the ticking goroutine is suspended.
func (c *stepClock) waitSleep(t *testing.T) {
	t.Helper()
	select {
	case <-c.slept:
	case <-time.After(waitTimeout):
		t.Fatalf("ticking goroutine never went to sleep")
	}
}

func (c *stepClock) wake(t *testing.T) {
	t.Helper()
	select {
	case c.release <- struct{}{}:
	case <-time.After(waitTimeout):
		t.Fatalf("no ticking goroutine to wake")
	}
}

// step lets exactly one more tick happen.
func (c *stepClock) step(t *testing.T) {
	t.Helper()
	c.wake(t)
	c.waitSleep(t)
}

type recorder struct {
	mu     sync.Mutex
	values []int
}

func (r *recorder) tick(v int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values = append(r.values, v)
}

func (r *recorder) snapshot() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]int(nil), r.values...)
}

// syncBuffer is a bytes.Buffer safe for the engine's two goroutines.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func newTestLogger() (*log.Logger, *syncBuffer) {
	buf := &syncBuffer{}
	return log.New(buf, "", 0), buf
}

func waitDone(t *testing.T, e *Engine) {
	t.Helper()
	select {
	case <-e.Done():
	case <-time.After(waitTimeout):
		t.Fatalf("ticking goroutine did not exit")
	}
}
