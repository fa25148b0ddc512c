package netx

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"gamelog/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProber struct {
	mu  sync.Mutex
	err error
}

func (p *fakeProber) Ping(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.err
}

func (p *fakeProber) setErr(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.err = err
}

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestMonitor_StartsOptimistic(t *testing.T) {
	m := NewMonitor(&fakeProber{}, time.Minute, time.Second, testLogger())
	assert.True(t, m.Online())
}

func TestMonitor_ProbeFlipsState(t *testing.T) {
	p := &fakeProber{err: errors.New("unreachable")}
	m := NewMonitor(p, 10*time.Millisecond, time.Second, testLogger())

	m.Start(context.Background())
	defer m.Stop()

	require.Eventually(t, func() bool { return !m.Online() }, 2*time.Second, 5*time.Millisecond)

	p.setErr(nil)
	require.Eventually(t, m.Online, 2*time.Second, 5*time.Millisecond)
}

func TestMonitor_SubscribeReceivesReconnect(t *testing.T) {
	m := NewMonitor(&fakeProber{}, time.Minute, time.Second, testLogger())
	events, unsubscribe := m.Subscribe()
	defer unsubscribe()

	m.SetOnline(false)
	select {
	case <-events:
		t.Fatal("going offline must not emit an event")
	default:
	}

	m.SetOnline(true)
	select {
	case <-events:
	case <-time.After(time.Second):
		t.Fatal("offline-to-online transition not delivered")
	}
}

func TestMonitor_OnlineToOnlineDoesNotEmit(t *testing.T) {
	m := NewMonitor(&fakeProber{}, time.Minute, time.Second, testLogger())
	events, unsubscribe := m.Subscribe()
	defer unsubscribe()

	m.SetOnline(true)
	m.SetOnline(true)

	select {
	case <-events:
		t.Fatal("no transition happened")
	default:
	}
}

func TestMonitor_TransitionsCoalesce(t *testing.T) {
	m := NewMonitor(&fakeProber{}, time.Minute, time.Second, testLogger())
	events, unsubscribe := m.Subscribe()
	defer unsubscribe()

	for i := 0; i < 3; i++ {
		m.SetOnline(false)
		m.SetOnline(true)
	}

	<-events
	select {
	case <-events:
		t.Fatal("undrained events must coalesce to one")
	default:
	}
}

func TestMonitor_UnsubscribeStopsDelivery(t *testing.T) {
	m := NewMonitor(&fakeProber{}, time.Minute, time.Second, testLogger())
	events, unsubscribe := m.Subscribe()
	unsubscribe()

	m.SetOnline(false)
	m.SetOnline(true)

	select {
	case <-events:
		t.Fatal("unsubscribed channel must not receive events")
	default:
	}
}

func TestMonitor_StopTerminatesLoop(t *testing.T) {
	p := &fakeProber{}
	m := NewMonitor(p, 10*time.Millisecond, time.Second, testLogger())

	m.Start(context.Background())
	m.Start(context.Background()) // second start is a no-op
	m.Stop()
	m.Stop() // second stop too

	p.setErr(errors.New("unreachable"))
	time.Sleep(30 * time.Millisecond)
	assert.True(t, m.Online(), "stopped monitor must not keep probing")
}

func TestMonitor_ImmediateStopAfterStart(t *testing.T) {
	p := &fakeProber{}
	m := NewMonitor(p, 10*time.Millisecond, time.Second, testLogger())

	// Stop may win the race with the loop goroutine's startup; it must
	// still wait on the right channel instead of closing a nil one.
	for i := 0; i < 100; i++ {
		m.Start(context.Background())
		m.Stop()
	}
}
