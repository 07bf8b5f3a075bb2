// Package pagination slices ordered collections into numbered pages and
// describes the slice it returned.
package pagination

import (
	"context"
	"net/url"
	"strconv"
	"strings"
)

const (
	DefaultPage    = 1
	DefaultPerPage = 10
	MaxPerPage     = 100
)

// Params is a normalized page request. Page is 1-indexed and PerPage is
// always within [1, MaxPerPage].
type Params struct {
	Page    int
	PerPage int
}

// NewParams clamps page to >= 1 and perPage to [1, MaxPerPage].
func NewParams(page, perPage int) Params {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 1
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	return Params{Page: page, PerPage: perPage}
}

// ParseParams converts raw query values into Params. Blank or non-numeric
// values fall back to the defaults; numeric values are clamped.
func ParseParams(page, perPage string) Params {
	return NewParams(parseInt(page, DefaultPage), parseInt(perPage, DefaultPerPage))
}

// FromQuery reads the page and per_page query parameters.
func FromQuery(q url.Values) Params {
	return ParseParams(q.Get("page"), q.Get("per_page"))
}

// Offset returns the number of items preceding the requested page.
func (p Params) Offset() int {
	return (p.Page - 1) * p.PerPage
}

func parseInt(raw string, fallback int) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}

// Meta describes a page relative to the whole collection.
type Meta struct {
	Page       int  `json:"page"`
	PerPage    int  `json:"per_page"`
	TotalCount int  `json:"total_count"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

// NewMeta computes page metadata for a collection of total items.
func NewMeta(p Params, total int) Meta {
	if total < 0 {
		total = 0
	}
	totalPages := 0
	if total > 0 {
		totalPages = (total + p.PerPage - 1) / p.PerPage
	}
	return Meta{
		Page:       p.Page,
		PerPage:    p.PerPage,
		TotalCount: total,
		TotalPages: totalPages,
		HasNext:    p.Page < totalPages,
		HasPrev:    p.Page > 1,
	}
}

// Result is one page of items plus its metadata.
type Result[T any] struct {
	Items []T
	Meta  Meta
}

// Collection is an ordered collection that can be counted and sliced.
// Count and List are two reads of the same logical collection; keeping
// them consistent is up to the implementation.
type Collection[T any] interface {
	Count(ctx context.Context) (int, error)
	List(ctx context.Context, offset, limit int) ([]T, error)
}

// Paginate returns the page of c described by p. Pages past the end yield
// no items and no error.
func Paginate[T any](ctx context.Context, c Collection[T], p Params) (Result[T], error) {
	p = NewParams(p.Page, p.PerPage)

	total, err := c.Count(ctx)
	if err != nil {
		return Result[T]{}, err
	}

	items := []T{}
	if p.Offset() < total {
		items, err = c.List(ctx, p.Offset(), p.PerPage)
		if err != nil {
			return Result[T]{}, err
		}
		if items == nil {
			items = []T{}
		}
		if len(items) > p.PerPage {
			items = items[:p.PerPage]
		}
	}

	return Result[T]{Items: items, Meta: NewMeta(p, total)}, nil
}

// Slice adapts an in-memory slice to Collection.
type Slice[T any] []T

// Count returns the length of the slice.
func (s Slice[T]) Count(context.Context) (int, error) {
	return len(s), nil
}

// List returns up to limit items starting at offset.
func (s Slice[T]) List(_ context.Context, offset, limit int) ([]T, error) {
	if offset >= len(s) {
		return []T{}, nil
	}
	end := min(offset+limit, len(s))
	return s[offset:end], nil
}
