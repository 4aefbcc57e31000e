package invoker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orbiter/internal/logger"
)

// gatedBridge blocks each greet call until the test releases it by name,
// so tests control resolution order explicitly.
type gatedBridge struct {
	mu    sync.Mutex
	calls []string
	gates map[string]chan struct{}
	fail  map[string]bool
}

func newGatedBridge() *gatedBridge {
	return &gatedBridge{
		gates: make(map[string]chan struct{}),
		fail:  make(map[string]bool),
	}
}

func (g *gatedBridge) gate(name string) chan struct{} {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.gates[name]; !ok {
		g.gates[name] = make(chan struct{})
	}
	return g.gates[name]
}

func (g *gatedBridge) release(name string) {
	close(g.gate(name))
}

func (g *gatedBridge) Call(ctx context.Context, cmd string, args ...string) (string, error) {
	if cmd != "greet" || len(args) != 1 {
		return "", errors.New("unexpected call")
	}
	name := args[0]

	g.mu.Lock()
	g.calls = append(g.calls, name)
	g.mu.Unlock()

	select {
	case <-g.gate(name):
	case <-ctx.Done():
		return "", ctx.Err()
	}

	g.mu.Lock()
	shouldFail := g.fail[name]
	g.mu.Unlock()
	if shouldFail {
		return "", errors.New("greet failed")
	}
	return fmt.Sprintf("Hello, %s!", name), nil
}

func (g *gatedBridge) callLog() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]string(nil), g.calls...)
}

type replies struct {
	mu     sync.Mutex
	texts  []string
	signal chan struct{}
}

func newReplies() *replies {
	return &replies{signal: make(chan struct{}, 16)}
}

func (r *replies) record(text string) {
	r.mu.Lock()
	r.texts = append(r.texts, text)
	r.mu.Unlock()
	r.signal <- struct{}{}
}

func (r *replies) wait(t *testing.T) {
	t.Helper()
	select {
	case <-r.signal:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for reply")
	}
}

func (r *replies) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.texts...)
}

func TestSubmitIssuesExactlyOneCall(t *testing.T) {
	bridge := newGatedBridge()
	rec := newReplies()
	inv := New(bridge, rec.record, logger.NewNop())

	bridge.release("Ada")
	inv.Submit("Ada")
	rec.wait(t)
	inv.Close()

	assert.Equal(t, []string{"Ada"}, bridge.callLog())
	assert.Equal(t, []string{"Hello, Ada!"}, rec.snapshot())
}

func TestRacingSubmissionsLastResolvedWins(t *testing.T) {
	// Both resolution orders must be reachable.
	orders := []struct {
		name    string
		release []string
		want    string
	}{
		{"A then B", []string{"A", "B"}, "Hello, B!"},
		{"B then A", []string{"B", "A"}, "Hello, A!"},
	}

	for _, order := range orders {
		t.Run(order.name, func(t *testing.T) {
			bridge := newGatedBridge()
			rec := newReplies()
			inv := New(bridge, rec.record, logger.NewNop())

			inv.Submit("A")
			inv.Submit("B")

			for _, name := range order.release {
				bridge.release(name)
				rec.wait(t)
			}
			inv.Close()

			got := rec.snapshot()
			require.Len(t, got, 2)
			assert.Equal(t, order.want, got[1], "displayed text is whichever reply resolved last")
		})
	}
}

func TestFailedCallPublishesNothing(t *testing.T) {
	bridge := newGatedBridge()
	bridge.fail["Eve"] = true
	rec := newReplies()
	inv := New(bridge, rec.record, logger.NewNop())

	bridge.release("Eve")
	inv.Submit("Eve")
	inv.Close()

	assert.Equal(t, []string{"Eve"}, bridge.callLog())
	assert.Empty(t, rec.snapshot())
}

func TestCloseDropsInFlightReplies(t *testing.T) {
	bridge := newGatedBridge()
	rec := newReplies()
	inv := New(bridge, rec.record, logger.NewNop())

	inv.Submit("Slow") // never released; Close cancels it
	inv.Close()

	assert.Empty(t, rec.snapshot())
}
