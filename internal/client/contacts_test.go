package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SamP9999/intercom-cli/internal/client"
	"github.com/SamP9999/intercom-cli/pkg/intercom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient points a full client at a local test server.
func newTestClient(t *testing.T, handler http.Handler) intercom.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	apiClient, err := client.New(&intercom.Config{
		AccessToken: "test-token",
		BaseURL:     server.URL,
	})
	require.NoError(t, err)

	return apiClient
}

func TestNew_RequiresAccessToken(t *testing.T) {
	t.Parallel()

	_, err := client.New(&intercom.Config{})
	require.ErrorIs(t, err, intercom.ErrAccessTokenRequired)
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestContactsClient(t *testing.T) {
	t.Parallel()
	t.Run("list follows pagination", func(t *testing.T) {
		t.Parallel()

		apiClient := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/contacts", request.URL.Path)
			assert.Equal(t, "50", request.URL.Query().Get("per_page"))

			if request.URL.Query().Get("starting_after") == "" {
				_, _ = writer.Write([]byte(`{
					"type": "list",
					"data": [{"type":"contact","id":"c1","role":"user","email":"one@example.com"}],
					"pages": {"type":"pages","next":{"starting_after":"cursor-1"}}
				}`))

				return
			}

			assert.Equal(t, "cursor-1", request.URL.Query().Get("starting_after"))
			_, _ = writer.Write([]byte(`{
				"type": "list",
				"data": [{"type":"contact","id":"c2","role":"lead"}],
				"pages": {"type":"pages"}
			}`))
		}))

		contacts, err := apiClient.Contacts().List(context.Background(), 0)
		require.NoError(t, err)
		require.Len(t, contacts, 2)
		assert.Equal(t, "c1", contacts[0].ID)
		assert.Equal(t, "one@example.com", contacts[0].Email)
		assert.Equal(t, "c2", contacts[1].ID)
	})

	t.Run("get", func(t *testing.T) {
		t.Parallel()

		apiClient := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/contacts/c1", request.URL.Path)
			assert.Equal(t, "GET", request.Method)
			_, _ = writer.Write([]byte(`{"type":"contact","id":"c1","name":"Jamie","role":"user","created_at":1717200000}`))
		}))

		contact, err := apiClient.Contacts().Get(context.Background(), "c1")
		require.NoError(t, err)
		assert.Equal(t, "c1", contact.ID)
		assert.Equal(t, "Jamie", contact.Name)
		assert.Equal(t, int64(1717200000), contact.CreatedAt)
	})

	t.Run("get missing contact", func(t *testing.T) {
		t.Parallel()

		apiClient := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusNotFound)
			_, _ = writer.Write([]byte(`{"type":"error.list","errors":[{"code":"not_found","message":"Contact Not Found"}]}`))
		}))

		_, err := apiClient.Contacts().Get(context.Background(), "missing")
		require.Error(t, err)
		assert.True(t, intercom.IsNotFound(err))
	})

	t.Run("create", func(t *testing.T) {
		t.Parallel()

		apiClient := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/contacts", request.URL.Path)
			assert.Equal(t, "POST", request.Method)

			var body map[string]interface{}

			_ = json.NewDecoder(request.Body).Decode(&body)
			assert.Equal(t, "new@example.com", body["email"])
			assert.Equal(t, "lead", body["role"])

			_, _ = writer.Write([]byte(`{"type":"contact","id":"c9","email":"new@example.com","role":"lead"}`))
		}))

		contact, err := apiClient.Contacts().Create(context.Background(), &intercom.ContactCreateRequest{
			Email: "new@example.com",
			Role:  "lead",
		})
		require.NoError(t, err)
		assert.Equal(t, "c9", contact.ID)
	})

	t.Run("update uses PUT", func(t *testing.T) {
		t.Parallel()

		apiClient := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/contacts/c1", request.URL.Path)
			assert.Equal(t, "PUT", request.Method)
			_, _ = writer.Write([]byte(`{"type":"contact","id":"c1","name":"Renamed","role":"user"}`))
		}))

		contact, err := apiClient.Contacts().Update(context.Background(), "c1", &intercom.ContactUpdateRequest{Name: "Renamed"})
		require.NoError(t, err)
		assert.Equal(t, "Renamed", contact.Name)
	})

	t.Run("delete", func(t *testing.T) {
		t.Parallel()

		apiClient := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/contacts/c1", request.URL.Path)
			assert.Equal(t, "DELETE", request.Method)
			_, _ = writer.Write([]byte(`{"id":"c1","deleted":true}`))
		}))

		err := apiClient.Contacts().Delete(context.Background(), "c1")
		require.NoError(t, err)
	})

	t.Run("search posts the query body", func(t *testing.T) {
		t.Parallel()

		apiClient := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/contacts/search", request.URL.Path)
			assert.Equal(t, "POST", request.Method)

			var body map[string]interface{}

			_ = json.NewDecoder(request.Body).Decode(&body)
			require.Contains(t, body, "query")
			require.Contains(t, body, "pagination")

			_, _ = writer.Write([]byte(`{
				"type": "list",
				"data": [{"type":"contact","id":"c3","role":"lead"}],
				"pages": {"type":"pages"}
			}`))
		}))

		query := intercom.NewSearchQuery().WithFilter("role", "=", "lead")

		contacts, err := apiClient.Contacts().Search(context.Background(), query, 0)
		require.NoError(t, err)
		require.Len(t, contacts, 1)
		assert.Equal(t, "c3", contacts[0].ID)
	})

	t.Run("search requires a query", func(t *testing.T) {
		t.Parallel()

		apiClient := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {}))

		_, err := apiClient.Contacts().Search(context.Background(), nil, 0)
		require.ErrorIs(t, err, intercom.ErrQueryRequired)
	})
}
