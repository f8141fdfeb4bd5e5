package timer

import "sync"

// Feed carries remaining-time notifications from the ticking goroutine to a
// reader that drains it on its own schedule. It holds only the latest value:
// Publish never blocks, and an unread value is replaced by a newer one.
type Feed struct {
	mu sync.Mutex
	ch chan int
}

func NewFeed() *Feed {
	return &Feed{ch: make(chan int, 1)}
}

// Publish stores v, discarding any value the reader has not taken yet.
func (f *Feed) Publish(v int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	select {
	case <-f.ch:
	default:
	}
	f.ch <- v
}

// C returns the receive side of the feed.
func (f *Feed) C() <-chan int {
	return f.ch
}
