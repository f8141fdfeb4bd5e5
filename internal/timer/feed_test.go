package timer

import "testing"

func TestFeedKeepsLatestValue(t *testing.T) {
	f := NewFeed()
	f.Publish(3)
	f.Publish(2)
	f.Publish(1)

	select {
	case v := <-f.C():
		if v != 1 {
			t.Fatalf("expected latest value 1, got %d", v)
		}
	default:
		t.Fatalf("expected a pending value")
	}
	select {
	case v := <-f.C():
		t.Fatalf("expected feed to be drained, got %d", v)
	default:
	}
}

func TestEnginePublishesIntoFeed(t *testing.T) {
	f := NewFeed()
	logger, _ := newTestLogger()
	e := New(4, f.Publish, WithClock(newStepClock(t)), WithLogger(logger))
	e.Start()
	e.Stop()

	// Stop publishes the reset value after at most one decrement.
	if v := <-f.C(); v != 4 {
		t.Fatalf("expected reset value 4, got %d", v)
	}
}
