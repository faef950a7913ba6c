package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	intercomhttp "github.com/SamP9999/intercom-cli/internal/http"
	"github.com/SamP9999/intercom-cli/pkg/intercom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockLogger for testing.
type MockLogger struct {
	logs []map[string]interface{}
}

func (l *MockLogger) Debug(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "debug", "msg": msg, "fields": fields})
}

func (l *MockLogger) Info(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "info", "msg": msg, "fields": fields})
}

func (l *MockLogger) Warn(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "warn", "msg": msg, "fields": fields})
}

func (l *MockLogger) Error(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "error", "msg": msg, "fields": fields})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Do(t *testing.T) {
	t.Parallel()
	t.Run("successful request", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/contacts/abc", request.URL.Path)
			assert.Equal(t, "GET", request.Method)
			assert.Equal(t, "Bearer test-token", request.Header.Get("Authorization"))
			assert.Equal(t, "application/json", request.Header.Get("Accept"))
			assert.Equal(t, "2.11", request.Header.Get("Intercom-Version"))

			response := map[string]string{"id": "abc", "name": "Test Contact"}
			_ = json.NewEncoder(writer).Encode(response)
		}))
		defer server.Close()

		client := intercomhttp.NewClient(server.URL, "test-token")

		req := &intercomhttp.Request{
			Method: "GET",
			Path:   "/contacts/abc",
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var result map[string]string

		err = json.Unmarshal(resp.Body, &result)
		require.NoError(t, err)
		assert.Equal(t, "abc", result["id"])
		assert.Equal(t, "Test Contact", result["name"])
	})

	t.Run("request with query parameters", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/contacts", request.URL.Path)
			assert.Equal(t, "per_page=50", request.URL.RawQuery)
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := intercomhttp.NewClient(server.URL, "test-token")

		req := &intercomhttp.Request{
			Method: "GET",
			Path:   "/contacts",
			Query:  url.Values{"per_page": []string{"50"}},
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("request with body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "POST", request.Method)
			assert.Equal(t, "application/json", request.Header.Get("Content-Type"))

			var body map[string]string

			_ = json.NewDecoder(request.Body).Decode(&body)
			assert.Equal(t, "new@example.com", body["email"])

			writer.WriteHeader(http.StatusCreated)
		}))
		defer server.Close()

		client := intercomhttp.NewClient(server.URL, "test-token")

		req := &intercomhttp.Request{
			Method: "POST",
			Path:   "/contacts",
			Body:   map[string]string{"email": "new@example.com"},
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 201, resp.StatusCode)
	})

	t.Run("custom api version and user agent", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "2.9", request.Header.Get("Intercom-Version"))
			assert.Equal(t, "custom-agent", request.Header.Get("User-Agent"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := intercomhttp.NewClient(server.URL, "test-token",
			intercomhttp.WithAPIVersion("2.9"),
			intercomhttp.WithUserAgent("custom-agent"))

		_, err := client.Get(context.Background(), "/me", nil)
		require.NoError(t, err)
	})

	t.Run("not found carries message from error list", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusNotFound)
			_, _ = writer.Write([]byte(`{"type":"error.list","errors":[{"code":"not_found","message":"Contact Not Found"}]}`))
		}))
		defer server.Close()

		client := intercomhttp.NewClient(server.URL, "test-token")

		resp, err := client.Get(context.Background(), "/contacts/missing", nil)
		require.Error(t, err)
		assert.Equal(t, 404, resp.StatusCode)

		assert.True(t, intercom.IsNotFound(err))
		assert.Contains(t, err.Error(), "Contact Not Found")
	})

	t.Run("unauthorized and forbidden", func(t *testing.T) {
		t.Parallel()

		status := int32(http.StatusUnauthorized)
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(int(atomic.LoadInt32(&status)))
		}))
		defer server.Close()

		client := intercomhttp.NewClient(server.URL, "bad-token")

		_, err := client.Get(context.Background(), "/me", nil)
		require.Error(t, err)
		assert.True(t, intercom.IsAuthFailed(err))

		atomic.StoreInt32(&status, http.StatusForbidden)

		_, err = client.Get(context.Background(), "/me", nil)
		require.Error(t, err)
		assert.True(t, intercom.IsPermissionDenied(err))
	})

	t.Run("server error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusBadGateway)
			_, _ = writer.Write([]byte(`{"message":"upstream exploded"}`))
		}))
		defer server.Close()

		client := intercomhttp.NewClient(server.URL, "test-token")

		_, err := client.Get(context.Background(), "/contacts", nil)
		require.Error(t, err)

		apiErr := &intercom.APIError{}
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, intercom.ErrorKindServerError, apiErr.Kind)
		assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
		assert.Contains(t, err.Error(), "upstream exploded")
	})

	t.Run("unreachable endpoint", func(t *testing.T) {
		t.Parallel()

		client := intercomhttp.NewClient("http://127.0.0.1:1", "test-token")

		_, err := client.Get(context.Background(), "/me", nil)
		require.Error(t, err)
		assert.True(t, intercom.IsUnreachable(err))
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_RateLimitRetry(t *testing.T) {
	t.Parallel()
	t.Run("waits out 429 and resends", func(t *testing.T) {
		t.Parallel()

		var calls int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if atomic.AddInt32(&calls, 1) == 1 {
				writer.Header().Set("Retry-After", "0")
				writer.WriteHeader(http.StatusTooManyRequests)

				return
			}

			_, _ = writer.Write([]byte(`{"id":"abc"}`))
		}))
		defer server.Close()

		var waits []time.Duration

		client := intercomhttp.NewClient(server.URL, "test-token",
			intercomhttp.WithRetryWait(func(delay time.Duration) {
				waits = append(waits, delay)
			}))

		resp, err := client.Get(context.Background(), "/contacts/abc", nil)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, int32(2), atomic.LoadInt32(&calls))

		// Each attempt counts against the rolling budget.
		assert.Equal(t, 2, client.RateLimiter().Count())

		require.Len(t, waits, 1)
		assert.Equal(t, time.Duration(0), waits[0])
	})

	t.Run("repeated throttling retries each occurrence", func(t *testing.T) {
		t.Parallel()

		var calls int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if atomic.AddInt32(&calls, 1) <= 2 {
				writer.Header().Set("Retry-After", "0")
				writer.WriteHeader(http.StatusTooManyRequests)

				return
			}

			_, _ = writer.Write([]byte(`{"id":"abc"}`))
		}))
		defer server.Close()

		client := intercomhttp.NewClient(server.URL, "test-token")

		resp, err := client.Get(context.Background(), "/contacts/abc", nil)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
	})

	t.Run("cancelled context aborts the wait", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.Header().Set("Retry-After", "5")
			writer.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		client := intercomhttp.NewClient(server.URL, "test-token")

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		_, err := client.Get(ctx, "/contacts", nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

func TestClient_RateLimitWarning(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	var warnings [][2]int

	client := intercomhttp.NewClient(server.URL, "test-token",
		intercomhttp.WithRateLimitWarning(func(count, budget int) {
			warnings = append(warnings, [2]int{count, budget})
		}))

	// Drive the rolling count past the warning threshold directly. The
	// callback fires on the first request made over the line.
	for range 900 {
		client.RateLimiter().Record()
	}

	_, err := client.Get(context.Background(), "/me", nil)
	require.NoError(t, err)

	require.Len(t, warnings, 1)
	assert.Equal(t, 901, warnings[0][0])
	assert.Equal(t, 1000, warnings[0][1])
}

func TestClient_Verbs(t *testing.T) {
	t.Parallel()

	var lastMethod atomic.Value

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		lastMethod.Store(request.Method)
		writer.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := intercomhttp.NewClient(server.URL, "test-token")
	ctx := context.Background()

	_, err := client.Get(ctx, "/contacts", nil)
	require.NoError(t, err)
	assert.Equal(t, "GET", lastMethod.Load())

	_, err = client.Post(ctx, "/contacts", map[string]string{"email": "a@b.c"})
	require.NoError(t, err)
	assert.Equal(t, "POST", lastMethod.Load())

	_, err = client.Put(ctx, "/contacts/abc", map[string]string{"name": "A"})
	require.NoError(t, err)
	assert.Equal(t, "PUT", lastMethod.Load())

	_, err = client.Delete(ctx, "/contacts/abc")
	require.NoError(t, err)
	assert.Equal(t, "DELETE", lastMethod.Load())
}

func TestClient_DebugLogging(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	logger := &MockLogger{}
	client := intercomhttp.NewClient(server.URL, "test-token",
		intercomhttp.WithLogger(logger),
		intercomhttp.WithDebug(true))

	_, err := client.Get(context.Background(), "/me", nil)
	require.NoError(t, err)

	require.Len(t, logger.logs, 2)
	assert.Equal(t, "HTTP Request", logger.logs[0]["msg"])
	assert.Equal(t, "HTTP Response", logger.logs[1]["msg"])
}
