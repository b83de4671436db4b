package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPaginator(t *testing.T) *Paginator {
	t.Helper()
	p, err := New(DefaultPageSize)
	require.NoError(t, err)
	return p
}

func TestNew_InvalidPageSize(t *testing.T) {
	_, err := New(0)
	require.ErrorIs(t, err, ErrInvalidPageSize)

	_, err = New(-25)
	require.ErrorIs(t, err, ErrInvalidPageSize)
}

func TestPaginate_FirstPage(t *testing.T) {
	state := newPaginator(t).Paginate(Params{
		ElementCount:       120,
		CurrentPage:        1,
		MaxNavigationCount: 5,
	})

	require.Equal(t, State{
		StartIndex:  0,
		EndIndex:    25,
		CurrentPage: 1,
		TotalPages:  5,
		PageNumbers: []int{1, 2, 3, 4, 5},
	}, state)
}

func TestPaginate_Empty(t *testing.T) {
	state := newPaginator(t).Paginate(Params{
		ElementCount:       0,
		CurrentPage:        3,
		MaxNavigationCount: 5,
	})

	assert.Equal(t, 0, state.StartIndex)
	assert.Equal(t, 0, state.EndIndex)
	assert.Equal(t, 0, state.TotalPages)
	assert.Equal(t, 1, state.CurrentPage)
	assert.Empty(t, state.PageNumbers)
}

func TestPaginate_LastPartialPage(t *testing.T) {
	state := newPaginator(t).Paginate(Params{
		ElementCount:       120,
		CurrentPage:        5,
		MaxNavigationCount: 5,
	})

	assert.Equal(t, 100, state.StartIndex)
	assert.Equal(t, 120, state.EndIndex)
	assert.Equal(t, 5, state.TotalPages)
}

func TestPaginate_ClampsCurrentPage(t *testing.T) {
	p := newPaginator(t)

	beyond := p.Paginate(Params{ElementCount: 60, CurrentPage: 9, MaxNavigationCount: 5})
	assert.Equal(t, 3, beyond.CurrentPage)
	assert.Equal(t, 50, beyond.StartIndex)
	assert.Equal(t, 60, beyond.EndIndex)

	below := p.Paginate(Params{ElementCount: 60, CurrentPage: -2, MaxNavigationCount: 5})
	assert.Equal(t, 1, below.CurrentPage)
	assert.Equal(t, 0, below.StartIndex)
	assert.Equal(t, 25, below.EndIndex)
}

func TestPaginate_NavigationWindow(t *testing.T) {
	p, err := New(10)
	require.NoError(t, err)

	tests := []struct {
		name     string
		count    int
		current  int
		maxNav   int
		expected []int
	}{
		{"centred", 200, 10, 5, []int{8, 9, 10, 11, 12}},
		{"shifts at start", 200, 2, 5, []int{1, 2, 3, 4, 5}},
		{"shifts at end", 200, 19, 5, []int{16, 17, 18, 19, 20}},
		{"last page", 200, 20, 5, []int{16, 17, 18, 19, 20}},
		{"even width", 200, 10, 4, []int{8, 9, 10, 11}},
		{"fewer pages than buttons", 30, 2, 5, []int{1, 2, 3}},
		{"single button", 200, 7, 1, []int{7}},
		{"non-positive max treated as one", 200, 7, 0, []int{7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := p.Paginate(Params{
				ElementCount:       tt.count,
				CurrentPage:        tt.current,
				MaxNavigationCount: tt.maxNav,
			})
			require.Equal(t, tt.expected, state.PageNumbers)
			require.Contains(t, state.PageNumbers, state.CurrentPage)
		})
	}
}

func TestPaginate_PagesCoverAllElements(t *testing.T) {
	for _, pageSize := range []int{1, 7, 25} {
		p, err := New(pageSize)
		require.NoError(t, err)

		for count := 0; count <= 103; count++ {
			first := p.Paginate(Params{ElementCount: count, CurrentPage: 1, MaxNavigationCount: 5})

			covered := 0
			next := 0
			for page := 1; page <= first.TotalPages; page++ {
				state := p.Paginate(Params{ElementCount: count, CurrentPage: page, MaxNavigationCount: 5})
				require.Equal(t, next, state.StartIndex, "pages must be contiguous")
				require.LessOrEqual(t, state.StartIndex, state.EndIndex)
				require.LessOrEqual(t, state.EndIndex, count)
				require.LessOrEqual(t, len(state.PageNumbers), 5)
				covered += state.EndIndex - state.StartIndex
				next = state.EndIndex
			}
			require.Equal(t, count, covered, "count=%d pageSize=%d", count, pageSize)
		}
	}
}

func TestSlice(t *testing.T) {
	rows := make([]int, 30)
	for i := range rows {
		rows[i] = i
	}

	p := newPaginator(t)
	page2 := Slice(rows, p.Paginate(Params{ElementCount: len(rows), CurrentPage: 2, MaxNavigationCount: 5}))
	require.Equal(t, []int{25, 26, 27, 28, 29}, page2)

	// stale state against a shorter slice does not panic
	require.Len(t, Slice(rows[:10], State{StartIndex: 25, EndIndex: 30}), 0)
}
