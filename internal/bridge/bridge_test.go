package bridge

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orbiter/internal/logger"
)

func TestCallDispatchesToHandler(t *testing.T) {
	b := New(logger.NewNop())
	err := b.Register("echo", func(_ context.Context, args ...string) (string, error) {
		require.Len(t, args, 1)
		return args[0], nil
	})
	require.NoError(t, err)

	got, err := b.Call(context.Background(), "echo", "ping")
	require.NoError(t, err)
	assert.Equal(t, "ping", got)
}

func TestCallUnknownCommand(t *testing.T) {
	b := New(logger.NewNop())

	_, err := b.Call(context.Background(), "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown command "missing"`)
}

func TestRegisterDuplicate(t *testing.T) {
	b := New(logger.NewNop())
	h := func(_ context.Context, _ ...string) (string, error) { return "", nil }

	require.NoError(t, b.Register("greet", h))
	err := b.Register("greet", h)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestRegisterRejectsBadInput(t *testing.T) {
	b := New(logger.NewNop())

	assert.Error(t, b.Register("", func(_ context.Context, _ ...string) (string, error) { return "", nil }))
	assert.Error(t, b.Register("x", nil))
}

func TestCallWrapsHandlerError(t *testing.T) {
	b := New(logger.NewNop())
	boom := errors.New("boom")
	require.NoError(t, b.Register("fail", func(_ context.Context, _ ...string) (string, error) {
		return "", boom
	}))

	_, err := b.Call(context.Background(), "fail")
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), `command "fail"`)
}

func TestCallHonorsCancelledContext(t *testing.T) {
	b := New(logger.NewNop())
	called := false
	require.NoError(t, b.Register("noop", func(_ context.Context, _ ...string) (string, error) {
		called = true
		return "", nil
	}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := b.Call(ctx, "noop")
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}
