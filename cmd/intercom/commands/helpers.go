package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/SamP9999/intercom-cli/pkg/intercom"
	"gopkg.in/yaml.v3"
)

// Common string constants used throughout the commands package.
const (
	NotAvailable = "N/A"

	// Output formats.
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"

	// YAML formatting.
	defaultYAMLIndent = 2

	// Field layout for filter and sort flags.
	filterFieldCount = 3
	sortFieldCount   = 2

	// Table cell truncation.
	previewLength = 60
)

// Common static errors used throughout the commands package.
var (
	ErrNotLoggedIn           = errors.New("not logged in: run 'intercom login' or set --token")
	ErrInvalidFilterFormat   = errors.New("invalid filter format. Expected field:operator:value")
	ErrInvalidSortFormat     = errors.New("invalid sort format. Expected field:order")
	ErrAtLeastOneFilter      = errors.New("at least one --filter is required")
	ErrEmailRequired         = errors.New("an email or external ID is required (use --email or --external-id)")
	ErrTagNameRequired       = errors.New("tag name is required")
	ErrNoteBodyRequired      = errors.New("note body is required (use --body)")
	ErrReplyBodyRequired     = errors.New("reply body is required (use --body)")
	ErrAdminIDRequired       = errors.New("admin ID is required (use --admin)")
	ErrTicketTypeRequired    = errors.New("ticket type ID is required (use --type)")
	ErrSearchPhraseRequired  = errors.New("search phrase is required")
	ErrNoContactFieldsToSet  = errors.New("no fields to update. Use --email, --name, or --phone")
	ErrAttributeFormat       = errors.New("invalid attribute format. Expected key=value")
	ErrRegionRequired        = errors.New("region must be one of: us, eu, au")
	ErrUnknownConfigKey      = errors.New("unknown config key (supported: access_token, region)")
)

// StandardJSONRenderer encodes data as indented JSON to stdout.
func StandardJSONRenderer[T any](data T) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to JSON: %w", err)
	}

	return nil
}

// StandardYAMLRenderer encodes data as YAML to stdout.
func StandardYAMLRenderer[T any](data T) error {
	encoder := yaml.NewEncoder(os.Stdout)
	encoder.SetIndent(defaultYAMLIndent)

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to YAML: %w", err)
	}

	return nil
}

// ParseFilters converts repeated --filter values of the form
// field:operator:value into search filters.
func ParseFilters(specs []string) ([]intercom.SearchFilter, error) {
	filters := make([]intercom.SearchFilter, 0, len(specs))

	for _, spec := range specs {
		parts := strings.SplitN(spec, ":", filterFieldCount)
		if len(parts) != filterFieldCount {
			return nil, fmt.Errorf("%q: %w", spec, ErrInvalidFilterFormat)
		}

		filters = append(filters, intercom.SearchFilter{
			Field:    parts[0],
			Operator: parts[1],
			Value:    parts[2],
		})
	}

	return filters, nil
}

// ParseSort converts a --sort value of the form field:order into a
// search sort. The order defaults to descending when omitted.
func ParseSort(spec string) (*intercom.SearchSort, error) {
	if spec == "" {
		return nil, nil
	}

	parts := strings.SplitN(spec, ":", sortFieldCount)

	sort := &intercom.SearchSort{
		Field: parts[0],
		Order: "descending",
	}

	if len(parts) == sortFieldCount {
		switch parts[1] {
		case "asc", "ascending":
			sort.Order = "ascending"
		case "desc", "descending":
			sort.Order = "descending"
		default:
			return nil, fmt.Errorf("%q: %w", spec, ErrInvalidSortFormat)
		}
	}

	if sort.Field == "" {
		return nil, fmt.Errorf("%q: %w", spec, ErrInvalidSortFormat)
	}

	return sort, nil
}

// BuildSearchQuery assembles a search query from --filter and --sort flags.
func BuildSearchQuery(filterSpecs []string, sortSpec string) (*intercom.SearchQuery, error) {
	if len(filterSpecs) == 0 {
		return nil, ErrAtLeastOneFilter
	}

	filters, err := ParseFilters(filterSpecs)
	if err != nil {
		return nil, err
	}

	query := intercom.NewSearchQuery()
	for _, filter := range filters {
		query.WithFilter(filter.Field, filter.Operator, filter.Value)
	}

	sort, err := ParseSort(sortSpec)
	if err != nil {
		return nil, err
	}

	if sort != nil {
		query.WithSort(sort.Field, sort.Order)
	}

	return query, nil
}

// formatTimestamp renders a unix-seconds timestamp for table output.
func formatTimestamp(ts intercom.Timestamp) string {
	if ts == 0 {
		return NotAvailable
	}

	return time.Unix(ts, 0).UTC().Format("2006-01-02 15:04")
}

// orNA substitutes a placeholder for empty table cells.
func orNA(value string) string {
	if value == "" {
		return NotAvailable
	}

	return value
}

// truncate shortens long text for table cells.
func truncate(value string, max int) string {
	value = strings.ReplaceAll(value, "\n", " ")
	if len(value) <= max {
		return value
	}

	return value[:max-3] + "..."
}
