package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"gamelog/internal/client/models"
)

const dateLayout = "2006-01-02"

// parseDate accepts a calendar date in YYYY-MM-DD form.
func parseDate(s string) (time.Time, error) {
	d, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("expected a date like 2024-03-01: %w", err)
	}
	return d, nil
}

// parseRating accepts an empty string (no rating) or an integer 0..10.
func parseRating(s string) (*int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, fmt.Errorf("expected a number 0-10: %w", err)
	}
	if n < 0 || n > 10 {
		return nil, fmt.Errorf("rating %d is out of range 0-10", n)
	}
	return &n, nil
}

func parseStatus(s string) (models.Status, error) {
	st := models.Status(strings.ToLower(strings.TrimSpace(s)))
	if !st.Valid() {
		return "", fmt.Errorf("unknown status %q (one of: %s)", s, statusList())
	}
	return st, nil
}

func statusList() string {
	parts := make([]string, 0, len(models.Statuses))
	for _, s := range models.Statuses {
		parts = append(parts, string(s))
	}
	return strings.Join(parts, ", ")
}

// formatEntry renders one journal entry as a single list line.
func formatEntry(e *models.JournalEntry) string {
	rating := "-"
	if e.Rating != nil {
		rating = strconv.Itoa(*e.Rating)
	}
	mark := ""
	if !e.Synced {
		mark = " *"
	}
	return fmt.Sprintf("%s  %-30s  %-10s  %-10s  %s  %s%s",
		e.LocalID, truncate(e.Title, 30), e.Platform, e.Status,
		e.EntryDate.Format(dateLayout), rating, mark)
}

// truncate shortens s to at most n runes, never splitting a multi-byte
// character.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
