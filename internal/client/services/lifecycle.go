package services

import (
	"context"
	"sync"

	"gamelog/internal/logging"
)

// syncRunner is the slice of SyncService the controller needs.
type syncRunner interface {
	Sync(ctx context.Context, force bool) error
}

// ReconnectSource delivers offline-to-online transition events.
// netx.Monitor satisfies it.
type ReconnectSource interface {
	Subscribe() (<-chan struct{}, func())
}

// LifecycleController gates opportunistic synchronization on authentication
// state. While enabled it runs one best-effort pass immediately and another
// on every reconnect event; disabled, nothing is triggered. It is the only
// component that calls the sync engine opportunistically.
type LifecycleController struct {
	sync syncRunner
	net  ReconnectSource
	log  logging.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewLifecycleController(sync syncRunner, net ReconnectSource, log logging.Logger) *LifecycleController {
	return &LifecycleController{sync: sync, net: net, log: log}
}

// Enable starts opportunistic syncing. Enabling an enabled controller is a
// no-op.
func (c *LifecycleController) Enable(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	c.cancel = cancel
	c.done = done

	events, unsubscribe := c.net.Subscribe()

	// The goroutine closes the captured channel, never the field: Disable
	// nils c.done before this defer may have registered.
	go func() {
		defer close(done)
		defer unsubscribe()

		c.trigger(ctx)

		for {
			select {
			case <-events:
				c.trigger(ctx)
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Disable stops opportunistic syncing and waits for the trigger goroutine to
// exit. Disabling a disabled controller is a no-op.
func (c *LifecycleController) Disable() {
	c.mu.Lock()
	cancel, done := c.cancel, c.done
	c.cancel, c.done = nil, nil
	c.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}
}

// Enabled reports whether opportunistic syncing is active.
func (c *LifecycleController) Enabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cancel != nil
}

func (c *LifecycleController) trigger(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	// Best-effort: remote failures are already demoted inside the pass;
	// anything surfacing here is a storage problem worth logging.
	if err := c.sync.Sync(ctx, false); err != nil {
		c.log.Error(ctx, "background sync failed", "error", err)
	}
}
