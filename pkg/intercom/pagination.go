package intercom

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

// DefaultPageSize is the page size requested from listing endpoints.
const DefaultPageSize = 50

// Pages is the pagination descriptor carried by listing and search
// responses.
type Pages struct {
	Type       string      `json:"type,omitempty"`
	Page       int         `json:"page,omitempty"`
	PerPage    int         `json:"per_page,omitempty"`
	TotalPages int         `json:"total_pages,omitempty"`
	Next       *PageCursor `json:"next,omitempty"`
}

// PageCursor holds the opaque token marking the resume point of a listing.
// An absent cursor means the listing is exhausted.
type PageCursor struct {
	Page          int    `json:"page,omitempty"`
	StartingAfter string `json:"starting_after"`
}

// PageFetcher issues the underlying page requests for Paginate and
// PaginateSearch. The transport implements it; tests substitute their own.
type PageFetcher interface {
	FetchPage(ctx context.Context, path string, query url.Values) ([]byte, error)
	FetchSearchPage(ctx context.Context, path string, body map[string]interface{}) ([]byte, error)
}

// Paginate flattens a cursor-based GET listing into a single ordered slice.
// Pages are fetched sequentially with per_page=50, following
// pages.next.starting_after until the server stops returning a cursor. A
// positive limit truncates the result to exactly limit items, even when the
// final page overshoots it; limit <= 0 means unbounded. Server-side
// ordering is trusted as-is.
func Paginate[T any](ctx context.Context, fetcher PageFetcher, path string, query url.Values, itemsKey string, limit int) ([]T, error) {
	results := make([]T, 0)
	cursor := ""

	for {
		pageQuery := url.Values{}
		for key, values := range query {
			pageQuery[key] = values
		}

		pageQuery.Set("per_page", strconv.Itoa(DefaultPageSize))

		if cursor != "" {
			pageQuery.Set("starting_after", cursor)
		}

		raw, err := fetcher.FetchPage(ctx, path, pageQuery)
		if err != nil {
			return nil, err
		}

		items, pages, err := decodePage[T](raw, itemsKey)
		if err != nil {
			return nil, err
		}

		results = append(results, items...)

		if limit > 0 && len(results) >= limit {
			return results[:limit], nil
		}

		if pages == nil || pages.Next == nil || pages.Next.StartingAfter == "" {
			return results, nil
		}

		cursor = pages.Next.StartingAfter
	}
}

// PaginateSearch flattens a cursor-based POST search into a single ordered
// slice. The loop mirrors Paginate, except the cursor travels inside the
// request body's pagination object and the per-page cap defaults to the
// caller's requested page size.
func PaginateSearch[T any](ctx context.Context, fetcher PageFetcher, path string, body map[string]interface{}, itemsKey string, limit int) ([]T, error) {
	perPage := searchPerPage(body)
	results := make([]T, 0)
	cursor := ""

	for {
		pagination := map[string]interface{}{"per_page": perPage}
		if cursor != "" {
			pagination["starting_after"] = cursor
		}

		pageBody := make(map[string]interface{}, len(body)+1)
		for key, value := range body {
			pageBody[key] = value
		}

		pageBody["pagination"] = pagination

		raw, err := fetcher.FetchSearchPage(ctx, path, pageBody)
		if err != nil {
			return nil, err
		}

		items, pages, err := decodePage[T](raw, itemsKey)
		if err != nil {
			return nil, err
		}

		results = append(results, items...)

		if limit > 0 && len(results) >= limit {
			return results[:limit], nil
		}

		if pages == nil || pages.Next == nil || pages.Next.StartingAfter == "" {
			return results, nil
		}

		cursor = pages.Next.StartingAfter
	}
}

// searchPerPage reads the caller's requested page size from the search
// body, falling back to DefaultPageSize.
func searchPerPage(body map[string]interface{}) int {
	pagination, ok := body["pagination"].(map[string]interface{})
	if !ok {
		return DefaultPageSize
	}

	switch value := pagination["per_page"].(type) {
	case int:
		if value > 0 {
			return value
		}
	case float64:
		if value > 0 {
			return int(value)
		}
	}

	return DefaultPageSize
}

// decodePage extracts the items array at itemsKey and the pagination
// descriptor from one response envelope. A missing items key yields an
// empty page, not an error.
func decodePage[T any](raw []byte, itemsKey string) ([]T, *Pages, error) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, nil, fmt.Errorf("parsing list response: %w", err)
	}

	var items []T

	if rawItems, ok := envelope[itemsKey]; ok {
		if err := json.Unmarshal(rawItems, &items); err != nil {
			return nil, nil, fmt.Errorf("parsing %q items: %w", itemsKey, err)
		}
	}

	var pages *Pages

	if rawPages, ok := envelope["pages"]; ok {
		pages = &Pages{}
		if err := json.Unmarshal(rawPages, pages); err != nil {
			return nil, nil, fmt.Errorf("parsing pagination descriptor: %w", err)
		}
	}

	return items, pages, nil
}
