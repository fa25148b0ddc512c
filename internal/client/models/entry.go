// Package models defines the journal entry record persisted locally and
// synchronized with the backend.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Status classifies how far along a game is in the journal.
type Status string

const (
	StatusStarted   Status = "started"
	StatusCompleted Status = "completed"
	StatusRevisited Status = "revisited"
	StatusPaused    Status = "paused"
	StatusDropped   Status = "dropped"
)

// Statuses lists every accepted status value, in display order.
var Statuses = []Status{
	StatusStarted,
	StatusCompleted,
	StatusRevisited,
	StatusPaused,
	StatusDropped,
}

// Valid reports whether s is one of the accepted status values.
func (s Status) Valid() bool {
	switch s {
	case StatusStarted, StatusCompleted, StatusRevisited, StatusPaused, StatusDropped:
		return true
	}
	return false
}

// JournalEntry is the canonical record kept in the local store.
//
// LocalID is client-generated, immutable and always present; it is the
// primary key locally. RemoteID is assigned by the server on the first
// successful create — an empty RemoteID means the record has never existed
// server-side. Synced=false marks local divergence that the sync engine must
// replay; Deleted=true is a tombstone retained until the delete is confirmed
// against the server (or confirmed unnecessary).
type JournalEntry struct {
	LocalID  string
	RemoteID string

	Title     string
	Platform  string
	Status    Status
	Rating    *int
	EntryDate time.Time
	Notes     string

	CreatedAt time.Time
	UpdatedAt time.Time

	Synced  bool
	Deleted bool
}

// SyncAction is the explicit classification of what a sync pass must do with
// one unsynced record. Keeping this a single tagged decision avoids scattered
// RemoteID presence checks across components.
type SyncAction int

const (
	// ActionNone: the record is already in sync, nothing to do.
	ActionNone SyncAction = iota
	// ActionPurgeLocal: tombstone that never reached the server; remove
	// locally without any network call.
	ActionPurgeLocal
	// ActionDeleteRemote: tombstone for a record the server knows; issue a
	// remote delete, then purge locally.
	ActionDeleteRemote
	// ActionCreate: new record; issue a remote create.
	ActionCreate
	// ActionUpdate: previously synced record with local edits; issue a
	// remote partial update.
	ActionUpdate
)

// SyncAction classifies e for the sync pass. The tombstone checks precede
// create/update so a record created and then deleted between pass start and
// execution is still handled as a delete.
func (e *JournalEntry) SyncAction() SyncAction {
	switch {
	case e.Synced && !e.Deleted:
		return ActionNone
	case e.Deleted && e.RemoteID == "":
		return ActionPurgeLocal
	case e.Deleted:
		return ActionDeleteRemote
	case e.RemoteID == "":
		return ActionCreate
	default:
		return ActionUpdate
	}
}

// Normalize returns a copy of e with the bookkeeping fields guaranteed:
// a missing LocalID gets a fresh UUID and zero timestamps get the current
// time. Explicitly provided values are never overwritten. The entries
// repository applies this on every upsert, so no record can exist locally
// without these fields.
func Normalize(e JournalEntry) JournalEntry {
	if e.LocalID == "" {
		e.LocalID = uuid.NewString()
	}
	now := time.Now().UTC()
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now
	}
	if e.UpdatedAt.IsZero() {
		e.UpdatedAt = now
	}
	return e
}
