package services

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"time"

	"gamelog/internal/client/client"
	"gamelog/internal/client/models"
	"gamelog/internal/client/repositories/entries"
	"gamelog/internal/logging"
)

// Source tells the caller which side served a search result. Switching
// sources invalidates any outstanding cursor: the remote cursor is an opaque
// server token, the local one a prefixed decimal offset, and the two must
// never be mixed.
type Source string

const (
	SourceRemote Source = "remote"
	SourceLocal  Source = "local"
)

// localCursorPrefix marks cursors minted by the local scan. The remote path
// never forwards a prefixed cursor and the local path ignores anything else,
// so the two namespaces cannot leak into each other in either direction.
const localCursorPrefix = "local:"

// SearchParams mirrors the filters of the backend search endpoint. Zero
// values mean "no filter".
type SearchParams struct {
	Title     string
	Platform  string
	Status    models.Status
	Rating    *int
	StartDate time.Time
	EndDate   time.Time
	Cursor    string
	Limit     int
}

// SearchResult is one page of matches plus pagination state.
type SearchResult struct {
	Entries    []models.JournalEntry
	NextCursor string
	Source     Source
}

// SearchService queries the backend and degrades to a local scan when the
// remote call fails, so the user always sees something.
type SearchService struct {
	client  client.Client
	entries entries.Repository
	log     logging.Logger
}

func NewSearchService(c client.Client, repo entries.Repository, log logging.Logger) *SearchService {
	return &SearchService{client: c, entries: repo, log: log}
}

// Search attempts the remote search; on any remote failure it scans the
// local store instead. Local results exclude tombstones, match the title
// case-insensitively as a substring, match platform/status/rating exactly,
// match the entry date inclusively against the bounds, and are sorted by
// creation time descending.
func (s *SearchService) Search(ctx context.Context, p SearchParams) (*SearchResult, error) {
	res, err := s.remote(ctx, p)
	if err == nil {
		return res, nil
	}
	s.log.Warn(ctx, "remote search failed, falling back to local scan", "error", err)

	return s.local(ctx, p)
}

func (s *SearchService) remote(ctx context.Context, p SearchParams) (*SearchResult, error) {
	cursor := p.Cursor
	if strings.HasPrefix(cursor, localCursorPrefix) {
		// A local offset means nothing to the server; restart remote
		// pagination from the first page instead.
		cursor = ""
	}

	q := client.ListQuery{
		Limit:    p.Limit,
		Cursor:   cursor,
		Title:    p.Title,
		Platform: p.Platform,
		Status:   p.Status,
		Rating:   p.Rating,
	}
	if !p.StartDate.IsZero() {
		q.StartDate = p.StartDate.UTC().Format(time.RFC3339)
	}
	if !p.EndDate.IsZero() {
		q.EndDate = p.EndDate.UTC().Format(time.RFC3339)
	}

	page, err := s.client.ListEntries(ctx, q)
	if err != nil {
		return nil, err
	}

	result := &SearchResult{Source: SourceRemote, NextCursor: page.NextCursor}
	for i := range page.Entries {
		m, err := page.Entries[i].Model()
		if err != nil {
			s.log.Warn(ctx, "skipping unparseable search hit", "remote_id", page.Entries[i].ID, "error", err)
			continue
		}
		m.Synced = true
		result.Entries = append(result.Entries, m)
	}
	return result, nil
}

func (s *SearchService) local(ctx context.Context, p SearchParams) (*SearchResult, error) {
	all, err := s.entries.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	var matches []models.JournalEntry
	for _, e := range all {
		if e.Deleted || !matchesLocal(&e, &p) {
			continue
		}
		matches = append(matches, e)
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].CreatedAt.After(matches[j].CreatedAt)
	})

	// Only cursors minted below carry the local prefix. A cursor issued by
	// the server lacks it and restarts the scan from the top.
	offset := 0
	if raw, ok := strings.CutPrefix(p.Cursor, localCursorPrefix); ok {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			offset = n
		}
	}
	if offset > len(matches) {
		offset = len(matches)
	}

	limit := p.Limit
	if limit <= 0 {
		limit = len(matches) - offset
	}

	end := offset + limit
	next := ""
	if end < len(matches) {
		next = localCursorPrefix + strconv.Itoa(end)
	} else {
		end = len(matches)
	}

	return &SearchResult{
		Entries:    matches[offset:end],
		NextCursor: next,
		Source:     SourceLocal,
	}, nil
}

func matchesLocal(e *models.JournalEntry, p *SearchParams) bool {
	if p.Title != "" && !strings.Contains(strings.ToLower(e.Title), strings.ToLower(p.Title)) {
		return false
	}
	if p.Platform != "" && e.Platform != p.Platform {
		return false
	}
	if p.Status != "" && e.Status != p.Status {
		return false
	}
	if p.Rating != nil && (e.Rating == nil || *e.Rating != *p.Rating) {
		return false
	}
	if !p.StartDate.IsZero() && e.EntryDate.Before(p.StartDate) {
		return false
	}
	if !p.EndDate.IsZero() && e.EntryDate.After(p.EndDate) {
		return false
	}
	return true
}
