package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFilters(t *testing.T) {
	t.Parallel()

	t.Run("valid filters", func(t *testing.T) {
		t.Parallel()

		filters, err := ParseFilters([]string{"email:~:@example.com", "role:=:lead"})
		require.NoError(t, err)
		require.Len(t, filters, 2)
		assert.Equal(t, "email", filters[0].Field)
		assert.Equal(t, "~", filters[0].Operator)
		assert.Equal(t, "@example.com", filters[0].Value)
	})

	t.Run("value may contain colons", func(t *testing.T) {
		t.Parallel()

		filters, err := ParseFilters([]string{"url:=:https://example.com"})
		require.NoError(t, err)
		assert.Equal(t, "https://example.com", filters[0].Value)
	})

	t.Run("missing parts rejected", func(t *testing.T) {
		t.Parallel()

		_, err := ParseFilters([]string{"email:~"})
		require.ErrorIs(t, err, ErrInvalidFilterFormat)
	})
}

func TestParseSort(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		spec      string
		wantField string
		wantOrder string
		wantErr   bool
	}{
		{"empty spec", "", "", "", false},
		{"field only defaults descending", "created_at", "created_at", "descending", false},
		{"short ascending", "name:asc", "name", "ascending", false},
		{"long descending", "updated_at:descending", "updated_at", "descending", false},
		{"bad order", "name:sideways", "", "", true},
		{"empty field", ":asc", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sort, err := ParseSort(tt.spec)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidSortFormat)

				return
			}

			require.NoError(t, err)

			if tt.spec == "" {
				assert.Nil(t, sort)

				return
			}

			require.NotNil(t, sort)
			assert.Equal(t, tt.wantField, sort.Field)
			assert.Equal(t, tt.wantOrder, sort.Order)
		})
	}
}

func TestBuildSearchQuery(t *testing.T) {
	t.Parallel()

	t.Run("requires a filter", func(t *testing.T) {
		t.Parallel()

		_, err := BuildSearchQuery(nil, "")
		require.ErrorIs(t, err, ErrAtLeastOneFilter)
	})

	t.Run("filters and sort combine", func(t *testing.T) {
		t.Parallel()

		query, err := BuildSearchQuery([]string{"state:=:open"}, "updated_at:desc")
		require.NoError(t, err)

		body := query.Body()
		assert.Contains(t, body, "query")
		assert.Contains(t, body, "sort")
	})
}

func TestParseAttributes(t *testing.T) {
	t.Parallel()

	attributes, err := parseAttributes([]string{"priority=high", "note=a=b"})
	require.NoError(t, err)
	assert.Equal(t, "high", attributes["priority"])
	assert.Equal(t, "a=b", attributes["note"])

	_, err = parseAttributes([]string{"no-separator"})
	require.ErrorIs(t, err, ErrAttributeFormat)

	empty, err := parseAttributes(nil)
	require.NoError(t, err)
	assert.Nil(t, empty)
}

func TestMaskToken(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "N/A", maskToken(""))
	assert.Equal(t, "****", maskToken("ab"))
	assert.Equal(t, "****6789", maskToken("dG9rZW4123456789"))
}

func TestFormatTimestamp(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "N/A", formatTimestamp(0))
	assert.Equal(t, "2024-06-01 00:00", formatTimestamp(1717200000))
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "multi line", truncate("multi\nline", 20))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
}
