package entries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"gamelog/internal/client/models"
	"gamelog/internal/common"
	"gamelog/internal/dbx"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

const entryColumns = `local_id, remote_id, title, platform, status, rating,
	entry_date, notes, created_at, updated_at, synced, deleted`

// Upsert inserts or replaces an entry by local_id. The record is normalized
// first, so a missing local id or zero timestamps never reach the table.
func (r *SQLiteRepository) Upsert(ctx context.Context, e models.JournalEntry) error {
	e = models.Normalize(e)

	query := `INSERT INTO entries (` + entryColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(local_id) DO UPDATE SET
			remote_id = excluded.remote_id,
			title = excluded.title,
			platform = excluded.platform,
			status = excluded.status,
			rating = excluded.rating,
			entry_date = excluded.entry_date,
			notes = excluded.notes,
			created_at = excluded.created_at,
			updated_at = excluded.updated_at,
			synced = excluded.synced,
			deleted = excluded.deleted
	`
	var rating any
	if e.Rating != nil {
		rating = *e.Rating
	}

	_, err := r.db.ExecContext(ctx, query,
		e.LocalID, e.RemoteID, e.Title, e.Platform, string(e.Status), rating,
		formatTime(e.EntryDate), e.Notes, formatTime(e.CreatedAt), formatTime(e.UpdatedAt),
		e.Synced, e.Deleted)

	return common.NewStorageError("upsert entry", err)
}

// GetAll lists every entry, tombstones included, in insertion order.
func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.JournalEntry, error) {
	return r.selectEntries(ctx, `SELECT `+entryColumns+` FROM entries ORDER BY rowid`)
}

// GetAllUnsynced lists entries awaiting synchronization, in insertion order.
// The order gives the sync pass its total "stop on first failure" sequence.
func (r *SQLiteRepository) GetAllUnsynced(ctx context.Context) ([]models.JournalEntry, error) {
	return r.selectEntries(ctx, `SELECT `+entryColumns+` FROM entries WHERE synced = 0 ORDER BY rowid`)
}

// GetByID returns a single entry by local id.
func (r *SQLiteRepository) GetByID(ctx context.Context, localID string) (*models.JournalEntry, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+entryColumns+` FROM entries WHERE local_id = ?`, localID)
	return r.scanOne(row)
}

// GetByRemoteID returns a single entry by its server-assigned id.
func (r *SQLiteRepository) GetByRemoteID(ctx context.Context, remoteID string) (*models.JournalEntry, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+entryColumns+` FROM entries WHERE remote_id = ?`, remoteID)
	return r.scanOne(row)
}

// Purge removes an entry physically. Used once a delete is confirmed remotely
// or for tombstones that never reached the server.
func (r *SQLiteRepository) Purge(ctx context.Context, localID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM entries WHERE local_id = ?`, localID)
	return common.NewStorageError("purge entry", err)
}

func (r *SQLiteRepository) selectEntries(ctx context.Context, query string) ([]models.JournalEntry, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, common.NewStorageError("select entries", err)
	}
	defer rows.Close()

	var result []models.JournalEntry
	for rows.Next() {
		e, err := scanEntry(rows.Scan)
		if err != nil {
			return nil, common.NewStorageError("scan entry", err)
		}
		result = append(result, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, common.NewStorageError("iterate entries", err)
	}
	return result, nil
}

func (r *SQLiteRepository) scanOne(row *sql.Row) (*models.JournalEntry, error) {
	e, err := scanEntry(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, common.NewStorageError("scan entry", err)
	}
	return e, nil
}

func scanEntry(scan func(...any) error) (*models.JournalEntry, error) {
	var (
		e         models.JournalEntry
		status    string
		rating    sql.NullInt64
		entryDate string
		createdAt string
		updatedAt string
	)

	err := scan(&e.LocalID, &e.RemoteID, &e.Title, &e.Platform, &status, &rating,
		&entryDate, &e.Notes, &createdAt, &updatedAt, &e.Synced, &e.Deleted)
	if err != nil {
		return nil, err
	}

	e.Status = models.Status(status)
	if rating.Valid {
		v := int(rating.Int64)
		e.Rating = &v
	}
	if e.EntryDate, err = parseTime(entryDate); err != nil {
		return nil, err
	}
	if e.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if e.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return &e, nil
}

// Timestamps are stored as RFC3339 text so rows stay readable with any sqlite
// tooling.
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339Nano, s)
}
