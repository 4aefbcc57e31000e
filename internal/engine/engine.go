// Package engine hosts the embedded real-time renderer. It owns the frame
// loop, the animated scene, and the running average frame rate that the UI
// polls over the bridge.
package engine

import (
	"fmt"
	"image"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gogpu/gg"

	"orbiter/internal/logger"
)

const (
	DefaultWidth     = 640
	DefaultHeight    = 480
	DefaultTargetFPS = 60
)

// Options configure the render loop.
type Options struct {
	Width     int
	Height    int
	TargetFPS int

	// Software forces the analytic CPU rasterizer instead of the
	// GPU-accelerated path (the --software flag).
	Software bool
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
	if o.TargetFPS <= 0 {
		o.TargetFPS = DefaultTargetFPS
	}
	return o
}

// Engine renders the scene on its own goroutine at a fixed target rate and
// publishes every frame through the OnFrame callback.
type Engine struct {
	opts    Options
	log     logger.Logger
	scene   *Scene
	onFrame func(image.Image)

	avgFrameRate atomic.Int64

	mu      sync.Mutex
	running bool
	stop    chan struct{}
	done    chan struct{}
}

func New(opts Options, log logger.Logger) *Engine {
	return &Engine{
		opts:  opts.withDefaults(),
		log:   log,
		scene: NewScene(),
	}
}

// SetOnFrame installs the frame sink. Must be called before Start.
func (e *Engine) SetOnFrame(fn func(image.Image)) {
	e.onFrame = fn
}

// Start launches the frame loop. Starting a running engine is an error.
func (e *Engine) Start() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.running {
		return fmt.Errorf("engine: already running")
	}

	e.stop = make(chan struct{})
	e.done = make(chan struct{})
	e.running = true

	rasterizer := "gpu"
	if e.opts.Software {
		rasterizer = "software"
	}
	e.log.Info("engine", "render loop starting", map[string]interface{}{
		"width":      e.opts.Width,
		"height":     e.opts.Height,
		"target_fps": e.opts.TargetFPS,
		"rasterizer": rasterizer,
	})

	go e.run(e.stop, e.done)
	return nil
}

// Stop halts the frame loop and blocks until it has exited. No frames are
// published after Stop returns. Safe to call more than once.
func (e *Engine) Stop() {
	e.mu.Lock()
	if !e.running {
		e.mu.Unlock()
		return
	}
	e.running = false
	close(e.stop)
	done := e.done
	e.mu.Unlock()

	<-done
	e.log.Info("engine", "render loop stopped", nil)
}

// AverageFrameRate reports frames rendered during the last completed
// wall-clock second. Zero until the first second completes.
func (e *Engine) AverageFrameRate() int {
	return int(e.avgFrameRate.Load())
}

func (e *Engine) run(stop, done chan struct{}) {
	defer close(done)

	dc := gg.NewContext(e.opts.Width, e.opts.Height)
	defer dc.Close()
	if e.opts.Software {
		dc.SetRasterizerMode(gg.RasterizerAnalytic)
	}

	target := time.Second / time.Duration(e.opts.TargetFPS)
	counter := newFrameCounter(time.Now())
	epoch := time.Now()
	timer := time.NewTimer(target)
	defer timer.Stop()

	for {
		frameStart := time.Now()

		e.scene.Draw(dc, frameStart.Sub(epoch).Seconds())
		dc.FlushGPU()
		if e.onFrame != nil {
			e.onFrame(dc.Image())
		}

		if n, completed := counter.frame(time.Now()); completed {
			e.avgFrameRate.Store(int64(n))
		}

		wait := target - time.Since(frameStart)
		if wait < 0 {
			wait = 0
		}
		if !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
		timer.Reset(wait)
		select {
		case <-stop:
			return
		case <-timer.C:
		}
	}
}

// frameCounter tracks frames per wall-clock second: the count accumulated
// over each elapsed second becomes the published average, then resets.
type frameCounter struct {
	frames      int
	windowStart time.Time
}

func newFrameCounter(now time.Time) *frameCounter {
	return &frameCounter{windowStart: now}
}

// frame records one rendered frame. When a full second has elapsed it
// returns the frame count for that window and true.
func (fc *frameCounter) frame(now time.Time) (int, bool) {
	fc.frames++
	if now.Sub(fc.windowStart) < time.Second {
		return 0, false
	}
	n := fc.frames
	fc.frames = 0
	fc.windowStart = now
	return n, true
}
