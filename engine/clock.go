package engine

import (
	"context"
	"math"
	"sync"
	"sync/atomic"
	"time"
)

const (
	MaxNodes uint64 = math.MaxUint64

	// the deadline goroutine may lag behind ctx; poll it directly this often
	clockPollInterval = 1 << 10
)

type ClockConfig struct {
	// Movetime caps the search on top of the context deadline.
	Movetime time.Duration
	Nodes    uint64
}

// Clock is the search budget: a wall-clock deadline taken from the context
// and an optional node count.
type Clock struct {
	ctx         context.Context
	targetNodes uint64
	nodes       uint64

	done   atomic.Bool
	stopCh chan struct{}
	wg     sync.WaitGroup
}

func NewClock() *Clock {
	c := &Clock{ctx: context.Background()}
	c.done.Store(true)
	return c
}

func (c *Clock) Start(ctx context.Context, cfg ClockConfig) {
	c.Stop()
	c.targetNodes = MaxNodes
	if cfg.Nodes != 0 {
		c.targetNodes = cfg.Nodes
	}
	c.nodes = 0

	var cancel context.CancelFunc
	if cfg.Movetime != 0 {
		ctx, cancel = context.WithTimeout(ctx, cfg.Movetime)
	}
	c.ctx = ctx
	c.done.Store(ctx.Err() != nil)

	stopCh := make(chan struct{})
	c.stopCh = stopCh
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		if cancel != nil {
			defer cancel()
		}
		select {
		case <-ctx.Done():
			c.done.Store(true)
		case <-stopCh:
		}
	}()
}

func (c *Clock) Stop() {
	if c.stopCh == nil {
		return
	}
	close(c.stopCh)
	c.stopCh = nil
	c.wg.Wait()
}

// Tick counts one visited node and reports whether the budget is spent.
func (c *Clock) Tick() bool {
	c.nodes++
	if c.nodes > c.targetNodes {
		c.done.Store(true)
	} else if c.nodes%clockPollInterval == 0 && c.ctx.Err() != nil {
		c.done.Store(true)
	}
	return c.done.Load()
}

func (c *Clock) Done() bool {
	return c.done.Load()
}

func (c *Clock) Nodes() uint64 {
	return c.nodes
}
