// Package shutdown runs registered teardown steps exactly once, in reverse
// registration order, on window close or process signal.
package shutdown

import (
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"orbiter/internal/logger"
)

const stepTimeout = 5 * time.Second

type step struct {
	name string
	stop func()
}

type Manager struct {
	log logger.Logger

	mu    sync.Mutex
	steps []step
	done  chan struct{}
}

func NewManager(log logger.Logger) *Manager {
	return &Manager{
		log:  log,
		done: make(chan struct{}),
	}
}

// Register adds a teardown step. Steps run in reverse registration order, so
// components register in the order they start.
func (m *Manager) Register(name string, stop func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.steps = append(m.steps, step{name: name, stop: stop})
}

// Listen triggers Shutdown on SIGINT/SIGTERM.
func (m *Manager) Listen() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		select {
		case sig := <-sigChan:
			m.log.Info("shutdown", "signal received", map[string]interface{}{
				"signal": sig.String(),
			})
			m.Shutdown()
		case <-m.done:
		}
	}()
}

// Shutdown runs the teardown sequence. Later calls return immediately once
// the first has begun.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	select {
	case <-m.done:
		m.mu.Unlock()
		return
	default:
		close(m.done)
	}
	steps := append([]step(nil), m.steps...)
	m.mu.Unlock()

	m.log.Info("shutdown", "shutdown sequence initiated", map[string]interface{}{
		"steps": len(steps),
	})

	for i := len(steps) - 1; i >= 0; i-- {
		s := steps[i]

		finished := make(chan struct{})
		go func() {
			defer close(finished)
			s.stop()
		}()

		select {
		case <-finished:
			m.log.Debug("shutdown", "step completed", map[string]interface{}{
				"step": s.name,
			})
		case <-time.After(stepTimeout):
			m.log.Warning("shutdown", "step timed out", map[string]interface{}{
				"step": s.name,
			})
		}
	}

	m.log.Info("shutdown", "shutdown sequence completed", nil)
}

// Done is closed once shutdown has begun.
func (m *Manager) Done() <-chan struct{} {
	return m.done
}
