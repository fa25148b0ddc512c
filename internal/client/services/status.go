package services

import (
	"context"
	"time"

	"gamelog/internal/client/client"
	"gamelog/internal/client/repositories/entries"
	"gamelog/internal/logging"
)

// SyncStatus is the derived state shown next to the journal.
type SyncStatus string

const (
	// StatusAllSynced: no local changes are waiting.
	StatusAllSynced SyncStatus = "all-synced"
	// StatusPending: local changes exist and the backend is responsive,
	// but no pass is running right now.
	StatusPending SyncStatus = "pending"
	// StatusSyncing: a pass is currently running.
	StatusSyncing SyncStatus = "syncing"
	// StatusOffline: the network itself is unreachable.
	StatusOffline SyncStatus = "offline"
	// StatusUnreachable: the network is up but the backend is not
	// answering (asleep, overloaded, down).
	StatusUnreachable SyncStatus = "unreachable"
)

// StatusService derives the current SyncStatus from the monitor, the sync
// engine and a bounded liveness probe.
type StatusService struct {
	client       client.Client
	entries      entries.Repository
	net          Connectivity
	sync         *SyncService
	probeTimeout time.Duration
	log          logging.Logger
}

func NewStatusService(c client.Client, repo entries.Repository, net Connectivity, sync *SyncService, probeTimeout time.Duration, log logging.Logger) *StatusService {
	return &StatusService{client: c, entries: repo, net: net, sync: sync, probeTimeout: probeTimeout, log: log}
}

// Evaluate computes the status. The liveness probe is bounded by the
// configured probe timeout; our own deadline expiring counts as
// "unreachable", while cancellation of the caller's context is propagated as
// an error, not reported as a status.
func (s *StatusService) Evaluate(ctx context.Context) (SyncStatus, error) {
	if !s.net.Online() {
		return StatusOffline, nil
	}
	if s.sync.Busy() {
		return StatusSyncing, nil
	}

	all, err := s.entries.GetAll(ctx)
	if err != nil {
		return "", err
	}
	hasPending := false
	for _, e := range all {
		if !e.Synced || e.Deleted {
			hasPending = true
			break
		}
	}
	if !hasPending {
		return StatusAllSynced, nil
	}

	probeCtx, cancel := context.WithTimeout(ctx, s.probeTimeout)
	defer cancel()

	if err := s.client.Ping(probeCtx); err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return StatusUnreachable, nil
	}
	return StatusPending, nil
}
