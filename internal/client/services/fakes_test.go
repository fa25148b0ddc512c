package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"

	"gamelog/internal/client/client"
	"gamelog/internal/client/models"
	"gamelog/internal/logging"

	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func setupRepos(t *testing.T) *client.Repositories {
	t.Helper()
	repos, err := client.InitDatabase(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = repos.DB.Close() })
	return repos
}

// fakeNet is a settable Connectivity/ReconnectSource stand-in.
type fakeNet struct {
	mu     sync.Mutex
	online bool
}

func (n *fakeNet) Online() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.online
}

func (n *fakeNet) setOnline(v bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.online = v
}

// fakeClient implements client.Client with overridable behaviors and call
// counters. The default behavior echoes payloads back the way the real
// backend does, assigning sequential server ids.
type fakeClient struct {
	mu sync.Mutex

	createFn func(ctx context.Context, p models.EntryPayload) (*client.RemoteEntry, error)
	updateFn func(ctx context.Context, remoteID string, p models.EntryPayload) (*client.RemoteEntry, error)
	deleteFn func(ctx context.Context, remoteID string) error
	listFn   func(ctx context.Context, q client.ListQuery) (*client.ListResult, error)
	pingErr  error

	createCalls int
	updateCalls int
	deleteCalls int
	listCalls   int
	pingCalls   int

	nextID int
	token  string
}

func echoRemote(id string, p models.EntryPayload) *client.RemoteEntry {
	return &client.RemoteEntry{
		ID:        id,
		Title:     p.Title,
		Platform:  p.Platform,
		Status:    p.Status,
		Rating:    p.Rating,
		EntryDate: p.EntryDate,
		Notes:     p.Notes,
		CreatedAt: "2024-03-01T10:00:00Z",
		UpdatedAt: "2024-03-01T10:00:00Z",
	}
}

func (f *fakeClient) Close() error          { return nil }
func (f *fakeClient) SetToken(token string) { f.token = token }

func (f *fakeClient) Login(ctx context.Context, username, password string) (string, error) {
	return "tok-" + username, nil
}

func (f *fakeClient) Ping(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pingCalls++
	return f.pingErr
}

func (f *fakeClient) CreateEntry(ctx context.Context, p models.EntryPayload) (*client.RemoteEntry, error) {
	f.mu.Lock()
	f.createCalls++
	f.nextID++
	id := fmt.Sprintf("srv-%d", f.nextID)
	fn := f.createFn
	f.mu.Unlock()

	if fn != nil {
		return fn(ctx, p)
	}
	return echoRemote(id, p), nil
}

func (f *fakeClient) UpdateEntry(ctx context.Context, remoteID string, p models.EntryPayload) (*client.RemoteEntry, error) {
	f.mu.Lock()
	f.updateCalls++
	fn := f.updateFn
	f.mu.Unlock()

	if fn != nil {
		return fn(ctx, remoteID, p)
	}
	return echoRemote(remoteID, p), nil
}

func (f *fakeClient) DeleteEntry(ctx context.Context, remoteID string) error {
	f.mu.Lock()
	f.deleteCalls++
	fn := f.deleteFn
	f.mu.Unlock()

	if fn != nil {
		return fn(ctx, remoteID)
	}
	return nil
}

func (f *fakeClient) ListEntries(ctx context.Context, q client.ListQuery) (*client.ListResult, error) {
	f.mu.Lock()
	f.listCalls++
	fn := f.listFn
	f.mu.Unlock()

	if fn != nil {
		return fn(ctx, q)
	}
	return &client.ListResult{}, nil
}

func (f *fakeClient) calls() (create, update, del, list int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.createCalls, f.updateCalls, f.deleteCalls, f.listCalls
}
