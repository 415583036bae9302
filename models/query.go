package models

// FilterOp is a comparison operator accepted in list filters
// (e.g. price[gte]=500).
type FilterOp string

const (
	OpEq  FilterOp = "eq"
	OpGt  FilterOp = "gt"
	OpGte FilterOp = "gte"
	OpLt  FilterOp = "lt"
	OpLte FilterOp = "lte"
)

// Filter is a single field condition. Several Values with OpEq mean
// "any of".
type Filter struct {
	Field  string
	Op     FilterOp
	Values []string
}

// SortField orders results by Field, descending when Desc is set.
type SortField struct {
	Field string
	Desc  bool
}

// ListQuery describes filtering, sorting, projection and pagination of a
// list request. Field names are the public JSON names; the store layer
// maps them onto columns and rejects unknown ones.
type ListQuery struct {
	Filters []Filter
	Sort    []SortField
	Fields  []string
	Page    int
	Limit   int
}

// Default pagination values.
const (
	DefaultPage  = 1
	DefaultLimit = 100
)

// Offset returns the number of rows to skip for the requested page.
func (q ListQuery) Offset() int {
	page, limit := q.Page, q.Limit
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	return (page - 1) * limit
}

// PageSize returns the effective limit.
func (q ListQuery) PageSize() int {
	if q.Limit < 1 {
		return DefaultLimit
	}
	return q.Limit
}
