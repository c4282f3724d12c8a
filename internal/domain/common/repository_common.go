// internal/domain/common/repository_common.go
package common

import (
	"errors"
	"strings"
	"time"
)

// SortOrder is the direction applied to a sortable column.
type SortOrder string

const (
	SortNone SortOrder = ""
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ParseSortOrder accepts "asc"/"desc" and the "price_asc"/"price_desc"
// spellings used by the catalog screen.
func ParseSortOrder(s string) SortOrder {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case s == "":
		return SortNone
	case strings.HasSuffix(s, "asc"):
		return SortAsc
	case strings.HasSuffix(s, "desc"):
		return SortDesc
	default:
		return SortNone
	}
}

var ErrInvalidRange = errors.New("common: invalid time range")

// TimeRange is inclusive on both ends. A zero bound means unbounded.
type TimeRange struct {
	From time.Time
	To   time.Time
}

func (r TimeRange) Validate() error {
	if !r.From.IsZero() && !r.To.IsZero() && r.To.Before(r.From) {
		return ErrInvalidRange
	}
	return nil
}

func (r TimeRange) Contains(t time.Time) bool {
	if !r.From.IsZero() && t.Before(r.From) {
		return false
	}
	if !r.To.IsZero() && t.After(r.To) {
		return false
	}
	return true
}
