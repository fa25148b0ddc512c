package models

import "time"

// EntryPayload is the editable subset of a record sent to the backend on
// create and update. Rating uses a pointer with omitempty so an absent rating
// is omitted from the JSON entirely — the server rejects an explicit null
// rating on a non-completed entry.
type EntryPayload struct {
	Title     string `json:"title"`
	Platform  string `json:"platform"`
	Status    Status `json:"status"`
	EntryDate string `json:"entryDate"`
	Rating    *int   `json:"rating,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

// Payload builds the wire payload from the record's editable fields.
func (e *JournalEntry) Payload() EntryPayload {
	return EntryPayload{
		Title:     e.Title,
		Platform:  e.Platform,
		Status:    e.Status,
		EntryDate: e.EntryDate.UTC().Format(time.RFC3339),
		Rating:    e.Rating,
		Notes:     e.Notes,
	}
}
