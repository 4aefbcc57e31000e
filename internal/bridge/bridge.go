// Package bridge carries request/response command calls between the UI layer
// and the engine host, keyed by command name.
package bridge

import (
	"context"
	"fmt"
	"sync"

	"orbiter/internal/logger"
)

// Handler executes one named command. Arguments arrive as strings, the way
// they are captured from the UI; results travel back the same way.
type Handler func(ctx context.Context, args ...string) (string, error)

// Caller is the calling side of the bridge. Components that only issue
// commands depend on this instead of the concrete Bridge.
type Caller interface {
	Call(ctx context.Context, name string, args ...string) (string, error)
}

// Bridge dispatches named commands to registered handlers. Registration
// happens during wiring; calls may come from any goroutine afterwards.
type Bridge struct {
	mu       sync.RWMutex
	handlers map[string]Handler
	log      logger.Logger
}

func New(log logger.Logger) *Bridge {
	return &Bridge{
		handlers: make(map[string]Handler),
		log:      log,
	}
}

// Register binds a handler to a command name. Registering the same name
// twice is a wiring bug and fails loudly.
func (b *Bridge) Register(name string, h Handler) error {
	if name == "" {
		return fmt.Errorf("bridge: empty command name")
	}
	if h == nil {
		return fmt.Errorf("bridge: nil handler for %q", name)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.handlers[name]; exists {
		return fmt.Errorf("bridge: command %q already registered", name)
	}
	b.handlers[name] = h

	b.log.Debug("bridge", "command registered", map[string]interface{}{
		"command": name,
	})
	return nil
}

// Call dispatches one command on the calling goroutine. Callers that must
// not block the UI thread invoke it from their own goroutine.
func (b *Bridge) Call(ctx context.Context, name string, args ...string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	b.mu.RLock()
	h, ok := b.handlers[name]
	b.mu.RUnlock()

	if !ok {
		return "", fmt.Errorf("bridge: unknown command %q", name)
	}

	result, err := h(ctx, args...)
	if err != nil {
		return "", fmt.Errorf("bridge: command %q: %w", name, err)
	}
	return result, nil
}
