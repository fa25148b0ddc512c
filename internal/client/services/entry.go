package services

import (
	"context"
	"fmt"
	"time"

	"gamelog/internal/client/models"
	"gamelog/internal/client/repositories/entries"
	"gamelog/internal/common"
	"gamelog/internal/logging"

	"github.com/google/uuid"
)

// EntryService implements the local-first mutation and read paths. Every
// write lands in the local store first — it never fails for lack of
// connectivity — and is then pushed by a best-effort sync pass.
type EntryService struct {
	entries entries.Repository
	sync    *SyncService
	log     logging.Logger
}

func NewEntryService(repo entries.Repository, sync *SyncService, log logging.Logger) *EntryService {
	return &EntryService{entries: repo, sync: sync, log: log}
}

// Add validates the draft, stores it unsynced and kicks off a best-effort
// pass. The returned record reflects the local state; the remote id appears
// once a pass succeeds.
func (s *EntryService) Add(ctx context.Context, d models.EntryDraft) (*models.JournalEntry, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	e := models.JournalEntry{
		LocalID:   uuid.NewString(),
		Title:     d.Title,
		Platform:  d.Platform,
		Status:    d.Status,
		Rating:    d.Rating,
		EntryDate: d.EntryDate.UTC(),
		Notes:     d.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.entries.Upsert(ctx, e); err != nil {
		return nil, err
	}

	s.trySync(ctx)
	return &e, nil
}

// Update applies the draft to an existing record, marks it dirty and kicks
// off a best-effort pass.
func (s *EntryService) Update(ctx context.Context, localID string, d models.EntryDraft) (*models.JournalEntry, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	e, err := s.entries.GetByID(ctx, localID)
	if err != nil {
		return nil, err
	}
	if e.Deleted {
		return nil, common.ErrNotFound
	}

	e.Title = d.Title
	e.Platform = d.Platform
	e.Status = d.Status
	e.Rating = d.Rating
	e.EntryDate = d.EntryDate.UTC()
	e.Notes = d.Notes
	e.Synced = false
	e.UpdatedAt = time.Now().UTC()

	if err := s.entries.Upsert(ctx, *e); err != nil {
		return nil, err
	}

	s.trySync(ctx)
	return e, nil
}

// Delete tombstones the record and kicks off a best-effort pass. The sync
// pass purges it once the delete is confirmed remotely, or immediately when
// the record never reached the server.
func (s *EntryService) Delete(ctx context.Context, localID string) error {
	e, err := s.entries.GetByID(ctx, localID)
	if err != nil {
		return err
	}

	e.Deleted = true
	e.Synced = false
	e.UpdatedAt = time.Now().UTC()

	if err := s.entries.Upsert(ctx, *e); err != nil {
		return fmt.Errorf("tombstoning entry: %w", err)
	}

	s.trySync(ctx)
	return nil
}

// List returns the visible (non-tombstoned) records, newest first.
func (s *EntryService) List(ctx context.Context) ([]models.JournalEntry, error) {
	all, err := s.entries.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	visible := make([]models.JournalEntry, 0, len(all))
	for _, e := range all {
		if !e.Deleted {
			visible = append(visible, e)
		}
	}
	return visible, nil
}

// Get returns one visible record by local id; a tombstoned record reads as
// absent.
func (s *EntryService) Get(ctx context.Context, localID string) (*models.JournalEntry, error) {
	e, err := s.entries.GetByID(ctx, localID)
	if err != nil {
		return nil, err
	}
	if e.Deleted {
		return nil, common.ErrNotFound
	}
	return e, nil
}

// trySync runs a best-effort pass right after a local write. Offline and
// remote failures are already no-ops inside the pass; storage failures only
// get logged here because the local write itself has already succeeded.
func (s *EntryService) trySync(ctx context.Context) {
	if err := s.sync.Sync(ctx, false); err != nil {
		s.log.Warn(ctx, "post-write sync failed, changes will sync later", "error", err)
	}
}
