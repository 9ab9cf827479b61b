package ratelimit

import (
	"testing"
	"time"
)

// fakeClock lets tests step time without sleeping.
type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestLimiter(limit int, d time.Duration) (*Limiter, *fakeClock) {
	clk := &fakeClock{t: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
	l := New(limit, d)
	l.now = clk.now
	return l, clk
}

func TestAllow_WindowResets(t *testing.T) {
	l, clk := newTestLimiter(2, time.Minute)

	for i := 0; i < 2; i++ {
		if ok, _ := l.Allow("a"); !ok {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	ok, retry := l.Allow("a")
	if ok {
		t.Fatal("third request should be limited")
	}
	if retry != time.Minute {
		t.Errorf("retryAfter: got %v, want 1m", retry)
	}

	// Other keys are independent.
	if ok, _ := l.Allow("b"); !ok {
		t.Error("key b should be allowed")
	}

	clk.advance(time.Minute)
	if ok, _ := l.Allow("a"); !ok {
		t.Error("window should have reset")
	}
}

func TestSweep_DropsExpired(t *testing.T) {
	l, clk := newTestLimiter(5, time.Minute)

	l.Allow("a")
	l.Allow("b")
	if l.Len() != 2 {
		t.Fatalf("Len: got %d, want 2", l.Len())
	}

	clk.advance(2 * time.Minute)
	l.Allow("c")
	if l.Len() != 1 {
		t.Errorf("Len after sweep: got %d, want 1", l.Len())
	}
}
