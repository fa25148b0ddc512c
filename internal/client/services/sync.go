package services

import (
	"context"
	"errors"
	"sync/atomic"

	"gamelog/internal/client/client"
	"gamelog/internal/client/models"
	"gamelog/internal/client/repositories/entries"
	"gamelog/internal/common"
	"gamelog/internal/logging"
)

// Connectivity reports whether the backend is currently reachable.
// netx.Monitor satisfies it.
type Connectivity interface {
	Online() bool
}

// SyncService replays every unsynced local record against the backend in a
// single sequential pass: purge never-synced tombstones, delete synced
// tombstones, create new records, patch dirty ones. The first remote failure
// stops the pass; records already replayed stay committed, the rest wait for
// the next pass.
type SyncService struct {
	client  client.Client
	entries entries.Repository
	net     Connectivity
	log     logging.Logger

	// busy enforces at-most-one concurrent pass. A trigger arriving while
	// a pass runs is dropped, not queued; the next enable/reconnect event
	// will start another pass.
	busy atomic.Bool
}

func NewSyncService(c client.Client, repo entries.Repository, net Connectivity, log logging.Logger) *SyncService {
	return &SyncService{client: c, entries: repo, net: net, log: log}
}

// Busy reports whether a pass is currently running.
func (s *SyncService) Busy() bool {
	return s.busy.Load()
}

// Sync runs one pass.
//
// force distinguishes best-effort background sync from must-succeed sync
// (logout). Best-effort: offline is a silent no-op and a remote failure is
// logged, not returned. Forced: offline yields common.ErrOffline before any
// record is touched, and any failure is returned so the caller can abort.
// Storage failures are returned in both modes.
func (s *SyncService) Sync(ctx context.Context, force bool) error {
	if !s.busy.CompareAndSwap(false, true) {
		return nil
	}
	defer s.busy.Store(false)

	if !s.net.Online() {
		if force {
			return common.ErrOffline
		}
		return nil
	}

	unsynced, err := s.entries.GetAllUnsynced(ctx)
	if err != nil {
		return err
	}

	for i := range unsynced {
		remoteErr, storageErr := s.replay(ctx, &unsynced[i])
		if storageErr != nil {
			return storageErr
		}
		if remoteErr != nil {
			s.log.Warn(ctx, "sync pass stopped, will retry later",
				"local_id", unsynced[i].LocalID, "error", remoteErr)
			if force {
				return remoteErr
			}
			return nil
		}
	}
	return nil
}

// replay reconciles one record. Remote failures come back in the first
// return value (they end the pass but are tolerated in best-effort mode);
// local storage failures in the second (always fatal to the call).
func (s *SyncService) replay(ctx context.Context, e *models.JournalEntry) (remoteErr, storageErr error) {
	switch e.SyncAction() {
	case models.ActionPurgeLocal:
		// A tombstone that never reached the server needs no network.
		return nil, s.entries.Purge(ctx, e.LocalID)

	case models.ActionDeleteRemote:
		if err := s.client.DeleteEntry(ctx, e.RemoteID); err != nil && !isNotFound(err) {
			return err, nil
		}
		// 404 means another client or a prior partial attempt already
		// deleted it; either way the intent is fulfilled.
		return nil, s.entries.Purge(ctx, e.LocalID)

	case models.ActionCreate:
		remote, err := s.client.CreateEntry(ctx, e.Payload())
		if err != nil {
			return err, nil
		}
		return nil, s.applyEcho(ctx, e, remote)

	case models.ActionUpdate:
		remote, err := s.client.UpdateEntry(ctx, e.RemoteID, e.Payload())
		if err != nil {
			return err, nil
		}
		return nil, s.applyEcho(ctx, e, remote)
	}
	return nil, nil
}

// applyEcho overwrites the local record with the server-confirmed copy and
// marks it synced. LocalID never changes. If the echo does not parse the
// record is still marked synced with the remote id recorded — the server has
// the data, and leaving the record unsynced would replay the create as a
// duplicate.
func (s *SyncService) applyEcho(ctx context.Context, local *models.JournalEntry, remote *client.RemoteEntry) error {
	merged := *local
	if echoed, err := remote.Model(); err == nil {
		merged = echoed
		merged.LocalID = local.LocalID
	} else {
		s.log.Warn(ctx, "unparseable server echo", "remote_id", remote.ID, "error", err)
	}
	merged.RemoteID = remote.ID
	merged.Synced = true
	merged.Deleted = false

	return s.entries.Upsert(ctx, merged)
}

func isNotFound(err error) bool {
	var re *client.RemoteError
	return errors.As(err, &re) && re.IsNotFound()
}
