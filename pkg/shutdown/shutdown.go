package shutdown

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// WithSignals returns a context cancelled on SIGINT, SIGTERM or any of the extra signals.
func WithSignals(parent context.Context, extra ...os.Signal) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, append([]os.Signal{syscall.SIGINT, syscall.SIGTERM}, extra...)...)

	go func() {
		defer signal.Stop(ch)
		select {
		case <-ctx.Done():
			return
		case <-ch:
			cancel()
		}
	}()

	return ctx, cancel
}

// Graceful runs stop with a deadline of timeout. If stop does not return in time
// force is called and context.DeadlineExceeded is returned.
func Graceful(timeout time.Duration, stop func(ctx context.Context) error, force func()) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- stop(ctx)
	}()

	select {
	case <-ctx.Done():
		if force != nil {
			force()
		}
		return ctx.Err()
	case err := <-done:
		return err
	}
}
