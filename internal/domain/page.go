package domain

// MaxListLimit caps the page size a caller may request.
const MaxListLimit = 100

// ListQuery carries list filters from the HTTP layer to the repo layer.
// Every field is optional; the zero value lists every visible record in the
// entity's default order.
type ListQuery struct {
	// Status restricts results to one exact status.
	Status string

	// IncludeHidden disables the narrowing to the entity's visible statuses
	// (the includeDraft / includeInactive switch). Admin reads set it.
	IncludeHidden bool

	// Filters holds entity-specific filter values keyed by filter key
	// (e.g. "category", "tripId", "location"). Unknown keys are ignored.
	Filters map[string]string

	// Search is matched as a case-insensitive substring against the
	// entity's search columns.
	Search string

	// Limit and Offset paginate the result. Zero omits the clause.
	Limit  int
	Offset int
}

// NewListQuery builds a ListQuery from optional HTTP query params.
// Nil or non-positive pointers leave the clause out; the limit is capped at
// MaxListLimit to prevent runaway queries.
func NewListQuery(search *string, limit, offset *int) ListQuery {
	var q ListQuery
	if search != nil {
		q.Search = *search
	}
	if limit != nil && *limit >= 1 {
		q.Limit = min(*limit, MaxListLimit)
	}
	if offset != nil && *offset >= 1 {
		q.Offset = *offset
	}
	return q
}

// Filter returns the value of an entity filter, or "" when unset.
func (q ListQuery) Filter(key string) string {
	return q.Filters[key]
}

// WithFilter returns a copy of q with the entity filter key set to value.
func (q ListQuery) WithFilter(key, value string) ListQuery {
	filters := make(map[string]string, len(q.Filters)+1)
	for k, v := range q.Filters {
		filters[k] = v
	}
	filters[key] = value
	q.Filters = filters
	return q
}
