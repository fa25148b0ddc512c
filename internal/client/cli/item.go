package cli

import (
	"context"
	"os"

	"gamelog/internal/client/models"
)

// inputDraft collects all entry fields interactively. Prefilled values (from
// an existing entry on edit) are shown in the prompts and kept when the user
// enters nothing.
func (a *App) inputDraft(base *models.EntryDraft) (models.EntryDraft, error) {
	var zero models.EntryDraft
	d := models.EntryDraft{}
	if base != nil {
		d = *base
	}

	title, err := getSimpleText(a.reader, promptWithDefault("Enter title", d.Title), os.Stdout)
	if err != nil {
		return zero, err
	}
	if title != "" {
		d.Title = title
	}

	platform, err := getSimpleText(a.reader, promptWithDefault("Enter platform", d.Platform), os.Stdout)
	if err != nil {
		return zero, err
	}
	if platform != "" {
		d.Platform = platform
	}

	statusText, err := getSimpleText(a.reader, promptWithDefault("Enter status ("+statusList()+")", string(d.Status)), os.Stdout)
	if err != nil {
		return zero, err
	}
	if statusText != "" {
		status, err := parseStatus(statusText)
		if err != nil {
			return zero, err
		}
		d.Status = status
	}

	dateText, err := getSimpleText(a.reader, promptWithDefault("Enter date (YYYY-MM-DD)", formatDefaultDate(&d)), os.Stdout)
	if err != nil {
		return zero, err
	}
	if dateText != "" {
		date, err := parseDate(dateText)
		if err != nil {
			return zero, err
		}
		d.EntryDate = date
	}

	if d.Status == models.StatusCompleted {
		ratingText, err := getSimpleText(a.reader, "Enter rating (0-10)", os.Stdout)
		if err != nil {
			return zero, err
		}
		rating, err := parseRating(ratingText)
		if err != nil {
			return zero, err
		}
		if rating != nil {
			d.Rating = rating
		}
	} else {
		d.Rating = nil
	}

	notes, err := GetMultiline(a.reader, "Enter notes (double Enter to finish):", os.Stdout)
	if err != nil {
		return zero, err
	}
	if notes != "" {
		d.Notes = notes
	}

	return d, nil
}

func promptWithDefault(prompt, current string) string {
	if current == "" {
		return prompt
	}
	return prompt + " [" + current + "]"
}

func formatDefaultDate(d *models.EntryDraft) string {
	if d.EntryDate.IsZero() {
		return ""
	}
	return d.EntryDate.Format(dateLayout)
}

// Add collects entry fields and stores a new journal entry. The write always
// succeeds locally; the push to the server happens in the background.
func (a *App) Add(ctx context.Context) error {
	draft, err := a.inputDraft(nil)
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}

	e, err := a.entries.Add(ctx, draft)
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}
	printlnFn("Added", e.LocalID)
	return nil
}

// Edit prompts for an entry id, pre-fills the prompts with its current
// fields and applies the changes.
func (a *App) Edit(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter entry id to edit", os.Stdout)
	if err != nil {
		return err
	}

	current, err := a.entries.Get(ctx, id)
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}

	base := models.EntryDraft{
		Title:     current.Title,
		Platform:  current.Platform,
		Status:    current.Status,
		Rating:    current.Rating,
		EntryDate: current.EntryDate,
		Notes:     current.Notes,
	}
	draft, err := a.inputDraft(&base)
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}

	if _, err := a.entries.Update(ctx, id, draft); err != nil {
		printlnFn("error:", err.Error())
		return err
	}
	printlnFn("Updated", id)
	return nil
}

// Delete removes an entry by its identifier, prompting the user for the ID.
// The entry disappears from the journal immediately; the remote delete is
// replayed by the sync engine.
func (a *App) Delete(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter entry id to delete", os.Stdout)
	if err != nil {
		return err
	}
	if err := a.entries.Delete(ctx, id); err != nil {
		printlnFn("error:", err.Error())
		return err
	}
	printlnFn("Deleted", id)
	return nil
}

// Show fetches and displays a single entry by ID.
func (a *App) Show(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter entry id to show", os.Stdout)
	if err != nil {
		return err
	}

	e, err := a.entries.Get(ctx, id)
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}

	printlnFn("Title:   ", e.Title)
	printlnFn("Platform:", e.Platform)
	printlnFn("Status:  ", string(e.Status))
	if e.Rating != nil {
		printlnFn("Rating:  ", *e.Rating)
	}
	printlnFn("Date:    ", e.EntryDate.Format(dateLayout))
	if e.Notes != "" {
		printlnFn("Notes:   ", e.Notes)
	}
	if !e.Synced {
		printlnFn("(not yet synced)")
	}
	return nil
}

// List prints one line per visible journal entry. Entries with pending local
// changes are marked with an asterisk.
func (a *App) List(ctx context.Context) error {
	entries, err := a.entries.List(ctx)
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}

	if len(entries) == 0 {
		printlnFn("The journal is empty.")
		return nil
	}
	for i := range entries {
		printlnFn(formatEntry(&entries[i]))
	}
	return nil
}
