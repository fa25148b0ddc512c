package cli

import (
	"context"
	"os"

	"gamelog/internal/client/services"
)

// Search collects filter values and runs a remote-first search. An empty
// answer skips a filter. The result page is printed along with its origin;
// any following "more" command continues from the returned cursor.
func (a *App) Search(ctx context.Context) error {
	p := services.SearchParams{Limit: a.config.PageLimit}

	title, err := getSimpleText(a.reader, "Title contains (empty to skip)", os.Stdout)
	if err != nil {
		return err
	}
	p.Title = title

	platform, err := getSimpleText(a.reader, "Platform (empty to skip)", os.Stdout)
	if err != nil {
		return err
	}
	p.Platform = platform

	statusText, err := getSimpleText(a.reader, "Status (empty to skip)", os.Stdout)
	if err != nil {
		return err
	}
	if statusText != "" {
		status, err := parseStatus(statusText)
		if err != nil {
			printlnFn("error:", err.Error())
			return err
		}
		p.Status = status
	}

	ratingText, err := getSimpleText(a.reader, "Rating (empty to skip)", os.Stdout)
	if err != nil {
		return err
	}
	rating, err := parseRating(ratingText)
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}
	p.Rating = rating

	fromText, err := getSimpleText(a.reader, "From date YYYY-MM-DD (empty to skip)", os.Stdout)
	if err != nil {
		return err
	}
	if fromText != "" {
		from, err := parseDate(fromText)
		if err != nil {
			printlnFn("error:", err.Error())
			return err
		}
		p.StartDate = from
	}

	toText, err := getSimpleText(a.reader, "To date YYYY-MM-DD (empty to skip)", os.Stdout)
	if err != nil {
		return err
	}
	if toText != "" {
		to, err := parseDate(toText)
		if err != nil {
			printlnFn("error:", err.Error())
			return err
		}
		p.EndDate = to
	}

	return a.runSearch(ctx, p)
}

// More continues the last search from its cursor.
func (a *App) More(ctx context.Context) error {
	if !a.hasSearched {
		printlnFn("No search to continue; run 'search' first.")
		return nil
	}
	if a.nextCursor == "" {
		printlnFn("No more results.")
		return nil
	}

	p := a.lastSearch
	p.Cursor = a.nextCursor
	return a.runSearch(ctx, p)
}

func (a *App) runSearch(ctx context.Context, p services.SearchParams) error {
	res, err := a.search.Search(ctx, p)
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}

	// A search served from the other side restarts pagination: its cursor
	// belongs to a different namespace than the one we may still hold.
	a.lastSearch = p
	a.lastSearch.Cursor = ""
	a.nextCursor = res.NextCursor
	a.hasSearched = true

	if res.Source == services.SourceLocal {
		printlnFn("(server unreachable, showing local results)")
	}
	if len(res.Entries) == 0 {
		printlnFn("No matches.")
		return nil
	}
	for i := range res.Entries {
		printlnFn(formatEntry(&res.Entries[i]))
	}
	if res.NextCursor != "" {
		printlnFn("Type 'more' for the next page.")
	}
	return nil
}

// Pull fetches the next page of entries from the server into the local store.
// Repeating the command walks the whole remote collection.
func (a *App) Pull(ctx context.Context) error {
	entries, next, err := a.fetch.FetchPage(ctx, a.pullCursor)
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}

	a.pullCursor = next
	printlnFn("Fetched", len(entries), "entries.")
	if next == "" {
		printlnFn("Reached the end of the remote journal.")
	} else {
		printlnFn("Type 'pull' again for the next page.")
	}
	return nil
}
