package services

import (
	"context"

	"gamelog/internal/client/client"
	"gamelog/internal/client/models"
	"gamelog/internal/client/repositories/entries"
	"gamelog/internal/logging"
)

// FetchService backfills remote pages into the local store using the
// server's cursor pagination.
type FetchService struct {
	client client.Client
	store  *client.Repositories
	limit  int
	log    logging.Logger
}

func NewFetchService(c client.Client, store *client.Repositories, limit int, log logging.Logger) *FetchService {
	return &FetchService{client: c, store: store, limit: limit, log: log}
}

// FetchPage pulls one page (cursor empty for the first) and merges it into
// the local store. Returns the merged records and the cursor for the next
// page; an empty cursor signals end of stream. The cursor is an opaque server
// token and is never interpreted locally.
//
// Merge rules: a remote entry already known locally (matched by remote id)
// keeps its local id and its deleted flag — a delete-in-flight must not be
// resurrected by a page fetch — and is skipped entirely while it has local
// unsynced state. Unknown entries are materialized with a fresh local id.
// The whole page merges in one transaction.
func (s *FetchService) FetchPage(ctx context.Context, cursor string) ([]models.JournalEntry, string, error) {
	res, err := s.client.ListEntries(ctx, client.ListQuery{Limit: s.limit, Cursor: cursor})
	if err != nil {
		return nil, "", err
	}

	var merged []models.JournalEntry
	err = s.store.EntriesTx(ctx, func(repo entries.Repository) error {
		existing, err := repo.GetAll(ctx)
		if err != nil {
			return err
		}
		byRemoteID := make(map[string]models.JournalEntry, len(existing))
		for _, e := range existing {
			if e.RemoteID != "" {
				byRemoteID[e.RemoteID] = e
			}
		}

		merged = make([]models.JournalEntry, 0, len(res.Entries))
		for i := range res.Entries {
			remote := &res.Entries[i]

			m, err := remote.Model()
			if err != nil {
				s.log.Warn(ctx, "skipping unparseable remote entry", "remote_id", remote.ID, "error", err)
				continue
			}
			m.Synced = true

			if local, ok := byRemoteID[remote.ID]; ok {
				if !local.Synced {
					// Local edits or a tombstone are pending; the sync
					// pass owns this record until they are replayed.
					merged = append(merged, local)
					continue
				}
				m.LocalID = local.LocalID
				m.Deleted = local.Deleted
			}

			m = models.Normalize(m)
			if err := repo.Upsert(ctx, m); err != nil {
				return err
			}
			merged = append(merged, m)
		}
		return nil
	})
	if err != nil {
		return nil, "", err
	}

	return merged, res.NextCursor, nil
}
