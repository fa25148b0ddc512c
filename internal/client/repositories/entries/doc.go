// Package entries provides the client-side persistence layer for journal
// entries.
//
// # Overview
//
// The package defines a Repository interface for the narrow read/write
// contract every other component goes through, and a SQLite-backed
// implementation (SQLiteRepository) persisting data via a dbx.DBTX (either
// *sql.DB or *sql.Tx).
//
// # Data Model
//
// Each row stores a models.JournalEntry keyed by local_id: the editable
// payload fields plus the two bookkeeping flags (synced, deleted) that drive
// synchronization. Upsert normalizes records before writing, so no row can
// exist without a local id or timestamps. Deletion here is physical; the
// tombstone lifecycle (deleted=1 until the remote delete is confirmed) is
// driven by the services layer.
//
// All storage failures are wrapped in common.StorageError and propagated,
// never retried.
package entries
