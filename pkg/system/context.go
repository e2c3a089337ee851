package system

import (
	"context"
)

// RunWithContext executes a teardown operation with context awareness.
// The operation runs on its own goroutine so that a cancelled parent context
// can signal it to stop without abandoning it mid-cleanup.
//
// Returns:
//   - nil if the operation completes successfully.
//   - the operation's error if it fails.
//   - the operation's eventual result if the parent context is cancelled;
//     cancellation is forwarded, then completion is awaited.
func RunWithContext(ctx context.Context, operation func(context.Context) error) error {
	// Fast feedback if the caller was already cancelled.
	if err := ctx.Err(); err != nil {
		return err
	}

	// Independent context: the operation's lifecycle is managed separately so
	// it can finish critical work even when the parent goes away.
	opCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Buffered so the goroutine can exit even if nobody reads immediately.
	done := make(chan error, 1)

	go func() {
		done <- operation(opCtx)
		close(done)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		// Signal the operation to stop, then wait for it so resources are
		// never left half-released.
		cancel()
		return <-done
	}
}
