package entries

import (
	"context"

	"gamelog/internal/client/models"
)

// Repository describes the read/write contract for locally stored journal
// entries. Implementations are typically backed by a local SQLite database.
type Repository interface {
	// GetAll returns every stored record, tombstones included, in stable
	// insertion order.
	GetAll(ctx context.Context) ([]models.JournalEntry, error)

	// GetByID returns the record with the given local id, or
	// common.ErrNotFound.
	GetByID(ctx context.Context, localID string) (*models.JournalEntry, error)

	// GetByRemoteID returns the record carrying the given server id, or
	// common.ErrNotFound.
	GetByRemoteID(ctx context.Context, remoteID string) (*models.JournalEntry, error)

	// GetAllUnsynced returns records with synced=0 in stable insertion
	// order.
	GetAllUnsynced(ctx context.Context) ([]models.JournalEntry, error)

	// Upsert inserts or replaces a record keyed by its local id, applying
	// models.Normalize first.
	Upsert(ctx context.Context, entry models.JournalEntry) error

	// Purge removes a record physically. Purging an unknown id is not an
	// error.
	Purge(ctx context.Context, localID string) error
}
