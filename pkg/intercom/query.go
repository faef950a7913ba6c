package intercom

// SearchFilter is a single field/operator/value condition in a search
// query. Operators follow the Intercom search contract ("=", "!=", "IN",
// "NIN", "<", ">", "~", "!~", "^", "$").
type SearchFilter struct {
	Field    string      `json:"field"`
	Operator string      `json:"operator"`
	Value    interface{} `json:"value"`
}

// SearchSort orders search results by a field.
type SearchSort struct {
	Field string `json:"field"`
	Order string `json:"order"`
}

// SearchQuery assembles the request body for search endpoints. Multiple
// filters are combined with AND.
type SearchQuery struct {
	filters []SearchFilter
	sort    *SearchSort
	perPage int
}

// NewSearchQuery creates an empty search query.
func NewSearchQuery() *SearchQuery {
	return &SearchQuery{}
}

// WithFilter adds a field/operator/value condition.
func (q *SearchQuery) WithFilter(field, operator string, value interface{}) *SearchQuery {
	q.filters = append(q.filters, SearchFilter{Field: field, Operator: operator, Value: value})

	return q
}

// WithSort sets the sort field and order ("ascending" or "descending").
func (q *SearchQuery) WithSort(field, order string) *SearchQuery {
	q.sort = &SearchSort{Field: field, Order: order}

	return q
}

// WithPerPage sets the requested page size.
func (q *SearchQuery) WithPerPage(perPage int) *SearchQuery {
	q.perPage = perPage

	return q
}

// Body renders the query as the search request body. PaginateSearch owns
// the pagination object from the second page onward; Body only seeds the
// initial per-page cap.
func (q *SearchQuery) Body() map[string]interface{} {
	body := make(map[string]interface{})

	switch len(q.filters) {
	case 0:
	case 1:
		body["query"] = q.filters[0]
	default:
		body["query"] = map[string]interface{}{
			"operator": "AND",
			"value":    q.filters,
		}
	}

	if q.sort != nil {
		body["sort"] = q.sort
	}

	if q.perPage > 0 {
		body["pagination"] = map[string]interface{}{"per_page": q.perPage}
	}

	return body
}
