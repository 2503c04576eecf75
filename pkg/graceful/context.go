// ABOUTME: Signal-aware context for the demo processes
// ABOUTME: Cancels on SIGINT/SIGTERM so MCP subprocesses shut down cleanly

package graceful

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

// Context returns a context that is canceled when the process receives an
// interrupt or termination signal. The demos use it so Ctrl-C tears down
// the MCP server subprocess and the chat server instead of leaving them
// orphaned.
func Context(ctx context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(ctx)
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-sigChan:
			slog.Info("received termination signal, shutting down", "signal", sig.String())
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigChan)
	}()

	return ctx, cancel
}
