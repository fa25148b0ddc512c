// Package netx tracks backend reachability. A Monitor periodically probes the
// server and exposes the current state plus a subscription for
// offline-to-online transitions, so sync can wake up exactly when
// connectivity returns.
package netx

import (
	"context"
	"sync"
	"time"

	"gamelog/internal/logging"
)

// Prober is the minimal liveness check the monitor needs. The API gateway
// satisfies it.
type Prober interface {
	Ping(ctx context.Context) error
}

// Monitor polls a Prober on a fixed interval and records whether the backend
// is reachable. It starts optimistic (online) so a cold start does not block
// local-first writes behind the first probe.
type Monitor struct {
	prober   Prober
	interval time.Duration
	timeout  time.Duration
	log      logging.Logger

	mu     sync.Mutex
	online bool
	subs   map[int]chan struct{}
	nextID int

	cancel context.CancelFunc
	done   chan struct{}
}

func NewMonitor(prober Prober, interval, timeout time.Duration, log logging.Logger) *Monitor {
	return &Monitor{
		prober:   prober,
		interval: interval,
		timeout:  timeout,
		log:      log,
		online:   true,
		subs:     make(map[int]chan struct{}),
	}
}

// Start launches the probe loop. Calling Start on a running monitor is a
// no-op.
func (m *Monitor) Start(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	m.cancel = cancel
	m.done = done

	go m.loop(ctx, done)
}

// Stop terminates the probe loop and waits for it to exit.
func (m *Monitor) Stop() {
	m.mu.Lock()
	cancel, done := m.cancel, m.done
	m.cancel, m.done = nil, nil
	m.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}
}

// loop owns its done channel; Stop nils the field, so the goroutine must not
// read it back through the struct.
func (m *Monitor) loop(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.probe(ctx)

	for {
		select {
		case <-ticker.C:
			m.probe(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (m *Monitor) probe(ctx context.Context) {
	probeCtx, cancel := context.WithTimeout(ctx, m.timeout)
	err := m.prober.Ping(probeCtx)
	cancel()

	if ctx.Err() != nil {
		return
	}
	m.setOnline(ctx, err == nil)
}

// Online reports the last observed reachability.
func (m *Monitor) Online() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.online
}

// SetOnline records reachability directly. Exposed so callers that learn the
// state out of band (a failed request, a test) can update the monitor without
// waiting for the next probe.
func (m *Monitor) SetOnline(online bool) {
	m.setOnline(context.Background(), online)
}

func (m *Monitor) setOnline(ctx context.Context, online bool) {
	m.mu.Lock()
	transitioned := online && !m.online
	changed := online != m.online
	m.online = online

	var subs []chan struct{}
	if transitioned {
		for _, ch := range m.subs {
			subs = append(subs, ch)
		}
	}
	m.mu.Unlock()

	if changed {
		m.log.Info(ctx, "connectivity changed", "online", online)
	}

	// Non-blocking notify: a subscriber that has not drained its previous
	// event does not need another one.
	for _, ch := range subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// Subscribe registers for offline-to-online transitions. The returned channel
// receives one value per transition (coalesced); the second return value
// unsubscribes and must be called when done.
func (m *Monitor) Subscribe() (<-chan struct{}, func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextID
	m.nextID++
	ch := make(chan struct{}, 1)
	m.subs[id] = ch

	return ch, func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.subs, id)
	}
}
