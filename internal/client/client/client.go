package client

import (
	"context"
	"time"

	"gamelog/internal/client/models"
)

// Client is the wire contract the sync engine and read paths depend on.
type Client interface {
	Close() error

	// Login exchanges credentials for a bearer token. The token is also
	// installed on the client for subsequent calls.
	Login(ctx context.Context, username, password string) (string, error)

	// SetToken installs a previously obtained bearer token (session restore).
	SetToken(token string)

	// Ping is a lightweight liveness probe. Callers bound it with a short
	// context timeout.
	Ping(ctx context.Context) error

	// CreateEntry posts a new entry and returns the server's copy,
	// including the assigned id and timestamps.
	CreateEntry(ctx context.Context, p models.EntryPayload) (*RemoteEntry, error)

	// UpdateEntry patches an existing entry by its server id.
	UpdateEntry(ctx context.Context, remoteID string, p models.EntryPayload) (*RemoteEntry, error)

	// DeleteEntry removes an entry by its server id. A 404 surfaces as a
	// RemoteError with IsNotFound() == true; the caller decides whether
	// that counts as success.
	DeleteEntry(ctx context.Context, remoteID string) error

	// ListEntries fetches one page of entries, optionally filtered.
	ListEntries(ctx context.Context, q ListQuery) (*ListResult, error)
}

// ListQuery carries the query parameters of GET /entries. Zero values are
// omitted from the request.
type ListQuery struct {
	Limit     int
	Cursor    string
	Title     string
	Platform  string
	Status    models.Status
	Rating    *int
	StartDate string
	EndDate   string
}

// RemoteEntry is the server's representation of an entry.
type RemoteEntry struct {
	ID        string        `json:"_id"`
	Title     string        `json:"title"`
	Platform  string        `json:"platform"`
	Status    models.Status `json:"status"`
	Rating    *int          `json:"rating,omitempty"`
	EntryDate string        `json:"entryDate"`
	Notes     string        `json:"notes,omitempty"`
	CreatedAt string        `json:"createdAt"`
	UpdatedAt string        `json:"updatedAt"`
}

// ListResult is one page of entries plus the opaque cursor for the next one.
// An empty NextCursor means end of stream.
type ListResult struct {
	Entries    []RemoteEntry `json:"entries"`
	NextCursor string        `json:"nextCursor"`
}

// Model converts the wire entry into a journal record. The local bookkeeping
// fields (LocalID, Synced, Deleted) are left zero for the caller to decide.
func (r *RemoteEntry) Model() (models.JournalEntry, error) {
	entryDate, err := time.Parse(time.RFC3339, r.EntryDate)
	if err != nil {
		return models.JournalEntry{}, err
	}
	createdAt, err := time.Parse(time.RFC3339, r.CreatedAt)
	if err != nil {
		return models.JournalEntry{}, err
	}
	updatedAt, err := time.Parse(time.RFC3339, r.UpdatedAt)
	if err != nil {
		return models.JournalEntry{}, err
	}

	return models.JournalEntry{
		RemoteID:  r.ID,
		Title:     r.Title,
		Platform:  r.Platform,
		Status:    r.Status,
		Rating:    r.Rating,
		EntryDate: entryDate,
		Notes:     r.Notes,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}
