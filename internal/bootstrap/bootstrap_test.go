package bootstrap

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApp_RunReturnsRunError(t *testing.T) {
	app := New()

	err := app.Run(context.Background(), func(ctx context.Context) error {
		return fmt.Errorf("listen tcp: address in use")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "address in use")
}

func TestApp_RunFinishesCleanly(t *testing.T) {
	app := New()

	ran := false
	err := app.Run(context.Background(), func(ctx context.Context) error {
		ran = true
		return nil
	})
	require.NoError(t, err)
	assert.True(t, ran)
}

func TestApp_ShutdownHooksRunInReverseOrder(t *testing.T) {
	app := New()

	var order []string
	app.AddShutdownHook(func(ctx context.Context) error {
		order = append(order, "first")
		return nil
	})
	app.AddShutdownHook(func(ctx context.Context) error {
		order = append(order, "second")
		return nil
	})

	// Cancel the parent context so Run takes the shutdown path without
	// waiting for an OS signal.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	block := make(chan struct{})
	defer close(block)
	err := app.Run(ctx, func(ctx context.Context) error {
		<-block
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"second", "first"}, order)
}

func TestApp_ShutdownJoinsHookErrors(t *testing.T) {
	app := New()

	app.AddShutdownHook(func(ctx context.Context) error {
		return fmt.Errorf("close db")
	})
	app.AddShutdownHook(func(ctx context.Context) error {
		return fmt.Errorf("close server")
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	block := make(chan struct{})
	defer close(block)
	err := app.Run(ctx, func(ctx context.Context) error {
		<-block
		return nil
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "close server")
	assert.Contains(t, err.Error(), "close db")
}
