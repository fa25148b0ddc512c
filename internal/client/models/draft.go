package models

import (
	"errors"
	"time"

	"github.com/gookit/validate"
)

var (
	ErrRatingRequired  = errors.New("rating is required for a completed entry")
	ErrRatingForbidden = errors.New("rating is only allowed on a completed entry")
	ErrDateInFuture    = errors.New("entry date cannot be in the future")
)

// EntryDraft carries user input for a new or edited entry, before it becomes
// a JournalEntry. The same rules the backend applies are checked here so a
// record queued offline does not sit unsyncable until connectivity returns.
type EntryDraft struct {
	Title     string    `validate:"required|maxLen:100"`
	Platform  string    `validate:"required|maxLen:100"`
	Status    Status    `validate:"required|in:started,completed,revisited,paused,dropped"`
	Rating    *int      `validate:"int|min:0|max:10"`
	EntryDate time.Time `validate:"required"`
	Notes     string    `validate:"maxLen:1000"`
}

// Validate checks the tag rules plus the conditional rating rule: a rating is
// required iff the status is "completed".
func (d *EntryDraft) Validate() error {
	v := validate.Struct(d)
	if !v.Validate() {
		return v.Errors.OneError()
	}

	if d.Status == StatusCompleted && d.Rating == nil {
		return ErrRatingRequired
	}
	if d.Status != StatusCompleted && d.Rating != nil {
		return ErrRatingForbidden
	}
	if d.EntryDate.After(time.Now().Add(time.Minute)) {
		return ErrDateInFuture
	}
	return nil
}
