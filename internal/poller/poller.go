// Package poller refreshes the displayed frame-rate reading by polling the
// bridge on a fixed interval.
package poller

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"orbiter/internal/bridge"
	"orbiter/internal/logger"
)

// DefaultInterval is the polling period for the frame-rate reading.
const DefaultInterval = time.Second

// Config wires a FrameRatePoller.
type Config struct {
	Bridge bridge.Caller
	// OnReading receives each successfully polled value. Called from the
	// poller goroutine; the GUI side wraps updates in fyne.Do itself.
	OnReading func(float64)
	// Interval overrides DefaultInterval. Tests use short periods.
	Interval time.Duration
	Log      logger.Logger
}

// FrameRatePoller issues one get_average_frame_rate bridge call per tick and
// republishes the value. A failed or slow call is not retried within its
// tick; the previous reading simply stands until the next tick succeeds.
type FrameRatePoller struct {
	cfg Config

	mu      sync.Mutex
	running bool
	stopped bool
	cancel  context.CancelFunc
	done    chan struct{}
}

func New(cfg Config) (*FrameRatePoller, error) {
	if cfg.Bridge == nil {
		return nil, fmt.Errorf("poller: nil bridge")
	}
	if cfg.OnReading == nil {
		return nil, fmt.Errorf("poller: nil reading callback")
	}
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultInterval
	}
	return &FrameRatePoller{cfg: cfg}, nil
}

// Start launches the polling loop. A poller runs at most once.
func (p *FrameRatePoller) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.running || p.stopped {
		return fmt.Errorf("poller: already started")
	}

	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	p.done = make(chan struct{})
	p.running = true

	go p.run(ctx, p.done)
	return nil
}

// Stop cancels the loop and waits for it to exit. After Stop returns no
// further bridge calls are issued and no further readings are published.
// Safe to call more than once, including before the first tick.
func (p *FrameRatePoller) Stop() {
	p.mu.Lock()
	if !p.running {
		p.stopped = true
		p.mu.Unlock()
		return
	}
	p.running = false
	p.stopped = true
	cancel, done := p.cancel, p.done
	p.mu.Unlock()

	cancel()
	<-done
}

func (p *FrameRatePoller) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(p.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.poll(ctx)
		}
	}
}

func (p *FrameRatePoller) poll(ctx context.Context) {
	raw, err := p.cfg.Bridge.Call(ctx, "get_average_frame_rate")
	if err != nil {
		p.cfg.Log.Debug("poller", "frame rate poll failed", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || value < 0 {
		p.cfg.Log.Debug("poller", "frame rate reading unusable", map[string]interface{}{
			"raw": raw,
		})
		return
	}

	// A call that resolved during teardown is dropped, not published.
	if ctx.Err() != nil {
		return
	}
	p.cfg.OnReading(value)
}
