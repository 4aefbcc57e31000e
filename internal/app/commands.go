package app

import (
	"context"
	"fmt"
	"strconv"

	"orbiter/internal/bridge"
	"orbiter/internal/engine"
)

// RegisterCommands binds the backend commands the UI layer calls over the
// bridge.
func RegisterCommands(b *bridge.Bridge, eng *engine.Engine) error {
	err := b.Register("greet", func(_ context.Context, args ...string) (string, error) {
		if len(args) != 1 {
			return "", fmt.Errorf("greet: want 1 argument, got %d", len(args))
		}
		return fmt.Sprintf("Hello, %s! You've been greeted from Orbiter!", args[0]), nil
	})
	if err != nil {
		return err
	}

	// Never fails from the caller's side: before the engine finishes its
	// first second it simply reports zero.
	return b.Register("get_average_frame_rate", func(_ context.Context, _ ...string) (string, error) {
		return strconv.Itoa(eng.AverageFrameRate()), nil
	})
}
