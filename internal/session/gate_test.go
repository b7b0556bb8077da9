package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGate_Toggle(t *testing.T) {
	g := NewGate()
	assert.False(t, g.Paused())

	assert.True(t, g.Toggle())
	assert.True(t, g.Paused())

	assert.False(t, g.Toggle())
	assert.False(t, g.Paused())
}

func TestGate_WaitOpen(t *testing.T) {
	g := NewGate()
	require.NoError(t, g.Wait(context.Background()))
}

func TestGate_WaitBlocksUntilCleared(t *testing.T) {
	g := NewGate()
	g.Toggle()

	done := make(chan error, 1)
	go func() {
		done <- g.Wait(context.Background())
	}()

	select {
	case <-done:
		t.Fatal("Wait returned while gate was set")
	case <-time.After(50 * time.Millisecond):
	}

	g.Toggle()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Wait did not return after gate cleared")
	}
}

func TestGate_ResetReleasesWaiters(t *testing.T) {
	g := NewGate()
	g.Toggle()

	done := make(chan error, 1)
	go func() {
		done <- g.Wait(context.Background())
	}()

	g.Reset()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Wait did not return after Reset")
	}
	assert.False(t, g.Paused())

	// Reset on an open gate is a no-op
	g.Reset()
	assert.False(t, g.Paused())
}

func TestGate_WaitHonoursContext(t *testing.T) {
	g := NewGate()
	g.Toggle()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := g.Wait(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.True(t, g.Paused())
}
