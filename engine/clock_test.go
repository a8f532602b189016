package engine

import (
	"context"
	"testing"
	"time"
)

func TestClockNodes(t *testing.T) {
	t.Parallel()
	c := NewClock()
	if !c.Done() {
		t.Error("unexpected running clock before start")
	}
	c.Start(context.Background(), ClockConfig{Nodes: 3})
	defer c.Stop()
	for i := 0; i < 3; i++ {
		if c.Tick() {
			t.Fatalf("unexpected done after %d nodes", i+1)
		}
	}
	if !c.Tick() {
		t.Error("unexpected running clock past the node limit")
	}
	if got := c.Nodes(); got != 4 {
		t.Errorf("unexpected nodes: got=%d want=4", got)
	}
}

func TestClockContext(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	c := NewClock()
	c.Start(ctx, ClockConfig{})
	if c.Tick() {
		t.Fatal("unexpected done before cancel")
	}
	cancel()
	waitDone(t, c)
	c.Stop()
	c.Stop()

	c.Start(context.Background(), ClockConfig{})
	if c.Done() || c.Nodes() != 0 {
		t.Errorf("unexpected state after restart: done=%t nodes=%d", c.Done(), c.Nodes())
	}
	c.Stop()
}

func TestClockMovetime(t *testing.T) {
	t.Parallel()
	c := NewClock()
	c.Start(context.Background(), ClockConfig{Movetime: 10 * time.Millisecond})
	defer c.Stop()
	waitDone(t, c)
}

func waitDone(t *testing.T, c *Clock) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for !c.Done() {
		if time.Now().After(deadline) {
			t.Fatal("clock did not stop")
		}
		time.Sleep(time.Millisecond)
	}
}
