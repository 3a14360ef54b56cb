package main

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRunCleanShutdownReturnsNil(t *testing.T) {
	app := &application{
		config: config{addr: "127.0.0.1:0", env: "test"},
		logger: zap.NewNop().Sugar(),
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := runAsync(ctx, app)

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not stop after cancellation")
	}
}

func TestRunReturnsListenError(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	app := &application{
		config: config{addr: ln.Addr().String(), env: "test"},
		logger: zap.NewNop().Sugar(),
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	select {
	case err := <-runAsync(ctx, app):
		assert.Error(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("run did not fail on a busy address")
	}
}

func runAsync(ctx context.Context, app *application) <-chan error {
	done := make(chan error, 1)
	go func() {
		done <- app.run(ctx, http.NotFoundHandler())
	}()
	return done
}
