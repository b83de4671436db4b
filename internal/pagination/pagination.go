// Package pagination slices an ordered sequence into fixed-size pages and picks
// the page-number buttons to render for the current page.
//
// Pages are 1-based. A current page outside [1, TotalPages] is clamped into
// that range, so a caller holding a stale page number after the sequence
// shrank lands on the last page instead of an empty one.
package pagination

import (
	"errors"
	"fmt"
)

const (
	DefaultPageSize           = 25
	DefaultMaxNavigationCount = 5
)

var ErrInvalidPageSize = errors.New("page size must be positive")

type Params struct {
	ElementCount       int
	CurrentPage        int
	MaxNavigationCount int
}

type State struct {
	StartIndex  int   `json:"startIndex"`
	EndIndex    int   `json:"endIndex"`
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	PageNumbers []int `json:"pageNumbers"`
}

type Paginator struct {
	pageSize int
}

func New(pageSize int) (*Paginator, error) {
	if pageSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPageSize, pageSize)
	}
	return &Paginator{pageSize: pageSize}, nil
}

func (p *Paginator) PageSize() int {
	return p.pageSize
}

// Paginate computes the page window. It keeps no state between calls.
func (p *Paginator) Paginate(params Params) State {
	count := params.ElementCount
	if count < 0 {
		count = 0
	}

	totalPages := (count + p.pageSize - 1) / p.pageSize

	current := params.CurrentPage
	if current > totalPages {
		current = totalPages
	}
	if current < 1 {
		current = 1
	}

	start := (current - 1) * p.pageSize
	if start > count {
		start = count
	}
	end := min(start+p.pageSize, count)

	return State{
		StartIndex:  start,
		EndIndex:    end,
		CurrentPage: current,
		TotalPages:  totalPages,
		PageNumbers: pageWindow(current, totalPages, params.MaxNavigationCount),
	}
}

// pageWindow centres up to maxNav page numbers on current. Near either end the
// window shifts instead of shrinking.
func pageWindow(current, totalPages, maxNav int) []int {
	if totalPages == 0 {
		return []int{}
	}
	if maxNav < 1 {
		maxNav = 1
	}

	width := min(maxNav, totalPages)
	first := current - width/2
	first = max(first, 1)
	first = min(first, totalPages-width+1)

	pages := make([]int, width)
	for i := range pages {
		pages[i] = first + i
	}
	return pages
}

// Slice returns the rows covered by state.
func Slice[T any](rows []T, state State) []T {
	start := min(state.StartIndex, len(rows))
	end := min(state.EndIndex, len(rows))
	if start > end {
		return nil
	}
	return rows[start:end]
}
