package tasks

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned when a list query parameter is rejected.
var ErrInvalidArgument = errors.New("invalid argument")

// Sortable fields for an explicit sort. Anything else is rejected.
const (
	SortByTitle        = "title"
	SortByStatus       = "status"
	SortByCreationTime = "creation_time"
)

// ListQuery describes a declarative task listing: an optional case-insensitive
// substring filter, an optional explicit sort, and an optional top-N ranking.
// TopN and SortBy are mutually structured: when TopN is present the ranking is
// fixed (priority ascending, most recent first on ties) and SortBy/Order are
// ignored.
type ListQuery struct {
	Search string
	SortBy string
	Order  string
	TopN   *int
}

// Descending reports whether an explicit sort runs in descending order.
// Order is deliberately lenient: anything other than "asc" sorts descending.
func (q ListQuery) Descending() bool {
	return q.Order != "" && q.Order != "asc"
}

// Validate rejects a non-positive TopN and an unknown SortBy. When TopN is
// present SortBy is ignored entirely, so it is not validated in that case.
func (q ListQuery) Validate() error {
	if q.TopN != nil {
		if *q.TopN <= 0 {
			return fmt.Errorf("%w: top_n must be positive", ErrInvalidArgument)
		}
		return nil
	}

	switch q.SortBy {
	case "", SortByTitle, SortByStatus, SortByCreationTime:
		return nil
	default:
		return fmt.Errorf("%w: sort_by must be one of title, status, creation_time", ErrInvalidArgument)
	}
}
