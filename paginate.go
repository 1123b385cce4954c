package crud

import "fmt"

// ListQuery carries the already-parsed collection query parameters. Page
// and Limit are nil when the client did not send them. Apply overwrites
// Skip and Limit with the offset/limit pair the store consumes.
type ListQuery struct {
	Page  *int64
	Limit *int64
	Skip  int64
}

// InvalidPageError reports a requested page number that is not positive.
type InvalidPageError struct {
	Page int64
}

func (e *InvalidPageError) Error() string {
	return fmt.Sprintf("crud: page must be positive, got %d", e.Page)
}

// Pagination is the resolved page request for one collection read.
type Pagination struct {
	Page    int64
	PerPage int64
}

// ResolvePagination derives pagination from a parsed query. A nil Page
// means the client did not ask for pagination and the result is nil; what
// an unpaginated read looks like is the store's call. perPage is the
// configured default, used when the query carries no limit.
func ResolvePagination(q *ListQuery, perPage int64) (*Pagination, error) {

	if q == nil || q.Page == nil {
		return nil, nil
	}

	if *q.Page <= 0 {
		return nil, &InvalidPageError{Page: *q.Page}
	}

	pp := perPage
	if q.Limit != nil {
		pp = *q.Limit
	}

	return &Pagination{Page: *q.Page, PerPage: pp}, nil
}

// Apply rewrites q in place as the pair stores consume:
// skip = (page-1)*perPage, limit = perPage.
func (p *Pagination) Apply(q *ListQuery) {
	q.Skip = (p.Page - 1) * p.PerPage
	lim := p.PerPage
	q.Limit = &lim
}
