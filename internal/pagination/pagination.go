// Package pagination slices ordered result sets into fixed-size pages.
package pagination

import (
	"errors"
	"strconv"
	"strings"
)

// PageSize is the number of items on a page
const PageSize = 10

// ErrInvalidPage is returned by ParsePage for values that are not integers
var ErrInvalidPage = errors.New("invalid page number")

// Paginate returns the items belonging to the 1-based page. Pages past the
// end, and pages below 1, yield an empty slice.
func Paginate[T any](items []T, page int) []T {
	pages := (len(items) + PageSize - 1) / PageSize
	if page < 1 || page > pages {
		return []T{}
	}
	start := (page - 1) * PageSize
	end := min(start+PageSize, len(items))
	return items[start:end]
}

// OutOfRange reports whether a page came back empty although the full set
// had items, i.e. the caller asked for a page that does not exist.
func OutOfRange(total, pageLen int) bool {
	return pageLen == 0 && total > 0
}

// ParsePage parses the page query parameter. An empty value means page 1.
func ParsePage(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 1, nil
	}
	page, err := strconv.Atoi(raw)
	if err != nil {
		return 0, ErrInvalidPage
	}
	return page, nil
}
