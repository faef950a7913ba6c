package intercom_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"testing"

	"github.com/SamP9999/intercom-cli/pkg/intercom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID string `json:"id"`
}

// mockFetcher replays a fixed sequence of page payloads and records the
// query or body of every request it serves.
type mockFetcher struct {
	pages   [][]byte
	calls   int
	queries []url.Values
	bodies  []map[string]interface{}
	err     error
}

func (f *mockFetcher) FetchPage(ctx context.Context, path string, query url.Values) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}

	f.queries = append(f.queries, query)
	page := f.pages[f.calls]
	f.calls++

	return page, nil
}

func (f *mockFetcher) FetchSearchPage(ctx context.Context, path string, body map[string]interface{}) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}

	f.bodies = append(f.bodies, body)
	page := f.pages[f.calls]
	f.calls++

	return page, nil
}

// page builds a listing payload with n items and an optional next cursor.
func page(itemsKey string, start, n int, next string) []byte {
	items := make([]item, 0, n)
	for i := range n {
		items = append(items, item{ID: fmt.Sprintf("id-%d", start+i)})
	}

	envelope := map[string]interface{}{itemsKey: items}
	if next != "" {
		envelope["pages"] = map[string]interface{}{
			"type": "pages",
			"next": map[string]interface{}{"starting_after": next},
		}
	} else {
		envelope["pages"] = map[string]interface{}{"type": "pages"}
	}

	data, _ := json.Marshal(envelope)

	return data
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestPaginate(t *testing.T) {
	t.Parallel()
	t.Run("follows cursors until exhausted", func(t *testing.T) {
		t.Parallel()

		fetcher := &mockFetcher{pages: [][]byte{
			page("data", 0, 50, "cursor-1"),
			page("data", 50, 30, ""),
		}}

		results, err := intercom.Paginate[item](context.Background(), fetcher, "/contacts", nil, "data", 0)
		require.NoError(t, err)
		assert.Len(t, results, 80)
		assert.Equal(t, "id-0", results[0].ID)
		assert.Equal(t, "id-79", results[79].ID)
		assert.Equal(t, 2, fetcher.calls)

		// First request has no cursor, second resumes after the first page.
		assert.Equal(t, "50", fetcher.queries[0].Get("per_page"))
		assert.Empty(t, fetcher.queries[0].Get("starting_after"))
		assert.Equal(t, "cursor-1", fetcher.queries[1].Get("starting_after"))
	})

	t.Run("limit truncates exactly", func(t *testing.T) {
		t.Parallel()

		fetcher := &mockFetcher{pages: [][]byte{
			page("data", 0, 50, "cursor-1"),
			page("data", 50, 50, "cursor-2"),
		}}

		results, err := intercom.Paginate[item](context.Background(), fetcher, "/contacts", nil, "data", 75)
		require.NoError(t, err)
		assert.Len(t, results, 75)
		assert.Equal(t, "id-74", results[74].ID)

		// The cursor after the second page is never followed.
		assert.Equal(t, 2, fetcher.calls)
	})

	t.Run("limit on page boundary stops fetching", func(t *testing.T) {
		t.Parallel()

		fetcher := &mockFetcher{pages: [][]byte{
			page("data", 0, 50, "cursor-1"),
		}}

		results, err := intercom.Paginate[item](context.Background(), fetcher, "/contacts", nil, "data", 50)
		require.NoError(t, err)
		assert.Len(t, results, 50)
		assert.Equal(t, 1, fetcher.calls)
	})

	t.Run("empty first page", func(t *testing.T) {
		t.Parallel()

		fetcher := &mockFetcher{pages: [][]byte{
			page("data", 0, 0, ""),
		}}

		results, err := intercom.Paginate[item](context.Background(), fetcher, "/contacts", nil, "data", 0)
		require.NoError(t, err)
		assert.Empty(t, results)
		assert.Equal(t, 1, fetcher.calls)
	})

	t.Run("missing pages object terminates", func(t *testing.T) {
		t.Parallel()

		fetcher := &mockFetcher{pages: [][]byte{
			[]byte(`{"data":[{"id":"id-0"}]}`),
		}}

		results, err := intercom.Paginate[item](context.Background(), fetcher, "/contacts", nil, "data", 0)
		require.NoError(t, err)
		assert.Len(t, results, 1)
		assert.Equal(t, 1, fetcher.calls)
	})

	t.Run("caller query is preserved", func(t *testing.T) {
		t.Parallel()

		fetcher := &mockFetcher{pages: [][]byte{
			page("data", 0, 1, ""),
		}}

		query := url.Values{"tag_id": []string{"42"}}

		_, err := intercom.Paginate[item](context.Background(), fetcher, "/contacts", query, "data", 0)
		require.NoError(t, err)
		assert.Equal(t, "42", fetcher.queries[0].Get("tag_id"))
		assert.Equal(t, "50", fetcher.queries[0].Get("per_page"))
	})

	t.Run("repeated runs over an unchanging server agree", func(t *testing.T) {
		t.Parallel()

		pages := [][]byte{
			page("data", 0, 50, "cursor-1"),
			page("data", 50, 30, ""),
		}

		first, err := intercom.Paginate[item](context.Background(), &mockFetcher{pages: pages}, "/contacts", nil, "data", 0)
		require.NoError(t, err)

		second, err := intercom.Paginate[item](context.Background(), &mockFetcher{pages: pages}, "/contacts", nil, "data", 0)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("fetch errors propagate", func(t *testing.T) {
		t.Parallel()

		fetchErr := &intercom.APIError{Kind: intercom.ErrorKindServerError, StatusCode: 500}
		fetcher := &mockFetcher{err: fetchErr}

		_, err := intercom.Paginate[item](context.Background(), fetcher, "/contacts", nil, "data", 0)
		require.Error(t, err)
		assert.ErrorIs(t, err, fetchErr)
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestPaginateSearch(t *testing.T) {
	t.Parallel()
	t.Run("cursor travels in the request body", func(t *testing.T) {
		t.Parallel()

		fetcher := &mockFetcher{pages: [][]byte{
			page("conversations", 0, 50, "cursor-1"),
			page("conversations", 50, 10, ""),
		}}

		query := intercom.NewSearchQuery().WithFilter("state", "=", "open")

		results, err := intercom.PaginateSearch[item](context.Background(), fetcher, "/conversations/search", query.Body(), "conversations", 0)
		require.NoError(t, err)
		assert.Len(t, results, 60)
		require.Equal(t, 2, fetcher.calls)

		firstPagination, ok := fetcher.bodies[0]["pagination"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, 50, firstPagination["per_page"])
		assert.NotContains(t, firstPagination, "starting_after")

		secondPagination, ok := fetcher.bodies[1]["pagination"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "cursor-1", secondPagination["starting_after"])

		// The filter rides along on every page.
		assert.Contains(t, fetcher.bodies[1], "query")
	})

	t.Run("limit truncates mid page", func(t *testing.T) {
		t.Parallel()

		fetcher := &mockFetcher{pages: [][]byte{
			page("tickets", 0, 3, "cursor-1"),
			page("tickets", 3, 10, ""),
		}}

		results, err := intercom.PaginateSearch[item](context.Background(), fetcher, "/tickets/search", map[string]interface{}{}, "tickets", 5)
		require.NoError(t, err)
		assert.Len(t, results, 5)
		assert.Equal(t, "id-4", results[4].ID)
	})

	t.Run("caller per_page is honored", func(t *testing.T) {
		t.Parallel()

		fetcher := &mockFetcher{pages: [][]byte{
			page("data", 0, 1, ""),
		}}

		body := intercom.NewSearchQuery().WithFilter("role", "=", "lead").WithPerPage(25).Body()

		_, err := intercom.PaginateSearch[item](context.Background(), fetcher, "/contacts/search", body, "data", 0)
		require.NoError(t, err)

		pagination, ok := fetcher.bodies[0]["pagination"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, 25, pagination["per_page"])
	})

	t.Run("empty first page", func(t *testing.T) {
		t.Parallel()

		fetcher := &mockFetcher{pages: [][]byte{
			page("tickets", 0, 0, ""),
		}}

		results, err := intercom.PaginateSearch[item](context.Background(), fetcher, "/tickets/search", map[string]interface{}{}, "tickets", 0)
		require.NoError(t, err)
		assert.Empty(t, results)
	})
}
