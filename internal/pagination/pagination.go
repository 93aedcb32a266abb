// Package pagination parses page/limit query parameters and slices result sets.
package pagination

import (
	"errors"
	"math"
	"net/url"
	"strconv"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

var ErrInvalidParams = errors.New("page and limit must be positive integers")

type Params struct {
	Page  int
	Limit int
}

// Offset is the index of the first item on the page, saturating at
// math.MaxInt instead of overflowing.
func (p Params) Offset() int {
	if p.Limit > 0 && p.Page-1 > math.MaxInt/p.Limit {
		return math.MaxInt
	}
	return (p.Page - 1) * p.Limit
}

// FromQuery reads "page" and "limit", falling back to the defaults when absent.
func FromQuery(q url.Values) (Params, error) {
	page, err := positiveInt(q.Get("page"), DefaultPage)
	if err != nil {
		return Params{}, err
	}
	limit, err := positiveInt(q.Get("limit"), DefaultLimit)
	if err != nil {
		return Params{}, err
	}
	return Params{Page: page, Limit: limit}, nil
}

// Paginate returns items[(page-1)*limit : page*limit], clamped to the slice.
// The result is never nil.
func Paginate[T any](items []T, p Params) []T {
	if len(items) == 0 || p.Limit < 1 || p.Page < 1 {
		return []T{}
	}
	// pages before this one already cover every item
	if p.Page-1 > (len(items)-1)/p.Limit {
		return []T{}
	}
	start := (p.Page - 1) * p.Limit
	end := len(items)
	if p.Limit < end-start {
		end = start + p.Limit
	}
	return items[start:end]
}

func positiveInt(raw string, def int) (int, error) {
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, ErrInvalidParams
	}
	return n, nil
}
