package pagination

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func items(n int) Slice[int] {
	s := make(Slice[int], n)
	for i := range s {
		s[i] = i + 1
	}
	return s
}

func TestParseParams(t *testing.T) {
	tests := []struct {
		name        string
		page        string
		perPage     string
		wantPage    int
		wantPerPage int
	}{
		{name: "defaults when absent", wantPage: 1, wantPerPage: 10},
		{name: "explicit values", page: "2", perPage: "5", wantPage: 2, wantPerPage: 5},
		{name: "per_page above max", perPage: "150", wantPage: 1, wantPerPage: 100},
		{name: "per_page at max", perPage: "100", wantPage: 1, wantPerPage: 100},
		{name: "page zero", page: "0", wantPage: 1, wantPerPage: 10},
		{name: "negative page", page: "-4", wantPage: 1, wantPerPage: 10},
		{name: "non-numeric page", page: "abc", wantPage: 1, wantPerPage: 10},
		{name: "per_page zero", perPage: "0", wantPage: 1, wantPerPage: 1},
		{name: "negative per_page", perPage: "-20", wantPage: 1, wantPerPage: 1},
		{name: "non-numeric per_page", perPage: "lots", wantPage: 1, wantPerPage: 10},
		{name: "surrounding whitespace", page: " 3 ", perPage: " 7", wantPage: 3, wantPerPage: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ParseParams(tt.page, tt.perPage)
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantPerPage, p.PerPage)
		})
	}
}

func TestFromQuery(t *testing.T) {
	q := url.Values{"page": {"4"}, "per_page": {"25"}}
	assert.Equal(t, Params{Page: 4, PerPage: 25}, FromQuery(q))
	assert.Equal(t, Params{Page: 1, PerPage: 10}, FromQuery(url.Values{}))
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, NewParams(1, 10).Offset())
	assert.Equal(t, 20, NewParams(3, 10).Offset())
	assert.Equal(t, 5, NewParams(2, 5).Offset())
}

func TestPaginate_Scenarios(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		params    Params
		wantItems []int
		want      Meta
	}{
		{
			name:      "default request over 25 items",
			total:     25,
			params:    ParseParams("", ""),
			wantItems: []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
			want:      Meta{Page: 1, PerPage: 10, TotalCount: 25, TotalPages: 3, HasNext: true, HasPrev: false},
		},
		{
			name:      "second page of five",
			total:     25,
			params:    ParseParams("2", "5"),
			wantItems: []int{6, 7, 8, 9, 10},
			want:      Meta{Page: 2, PerPage: 5, TotalCount: 25, TotalPages: 5, HasNext: true, HasPrev: true},
		},
		{
			name:      "last partial page",
			total:     25,
			params:    ParseParams("3", "10"),
			wantItems: []int{21, 22, 23, 24, 25},
			want:      Meta{Page: 3, PerPage: 10, TotalCount: 25, TotalPages: 3, HasNext: false, HasPrev: true},
		},
		{
			name:      "empty collection",
			total:     0,
			params:    ParseParams("", ""),
			wantItems: []int{},
			want:      Meta{Page: 1, PerPage: 10, TotalCount: 0, TotalPages: 0, HasNext: false, HasPrev: false},
		},
		{
			name:      "page past the end",
			total:     25,
			params:    ParseParams("9", "10"),
			wantItems: []int{},
			want:      Meta{Page: 9, PerPage: 10, TotalCount: 25, TotalPages: 3, HasNext: false, HasPrev: true},
		},
		{
			name:      "per_page clamped to max",
			total:     250,
			params:    ParseParams("1", "150"),
			wantItems: []int(items(100)),
			want:      Meta{Page: 1, PerPage: 100, TotalCount: 250, TotalPages: 3, HasNext: true, HasPrev: false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Paginate[int](context.Background(), items(tt.total), tt.params)
			require.NoError(t, err)
			require.NotNil(t, res.Items)
			assert.Equal(t, tt.wantItems, []int(res.Items))
			assert.Equal(t, tt.want, res.Meta)
		})
	}
}

func TestPaginate_Properties(t *testing.T) {
	for total := 0; total <= 57; total++ {
		for perPage := 1; perPage <= 12; perPage++ {
			wantPages := 0
			if total > 0 {
				wantPages = (total + perPage - 1) / perPage
			}
			for page := 1; page <= wantPages+1; page++ {
				res, err := Paginate[int](context.Background(), items(total), NewParams(page, perPage))
				require.NoError(t, err)

				m := res.Meta
				assert.Equal(t, wantPages, m.TotalPages)
				assert.Equal(t, total == 0, m.TotalPages == 0)
				assert.Equal(t, page < m.TotalPages, m.HasNext)
				assert.Equal(t, page > 1, m.HasPrev)

				wantLen := 0
				if page <= wantPages {
					wantLen = min(perPage, total-(page-1)*perPage)
				}
				assert.Len(t, res.Items, wantLen, "total=%d per_page=%d page=%d", total, perPage, page)
			}
		}
	}
}

type failingCollection struct {
	countErr error
	listErr  error
}

func (f failingCollection) Count(context.Context) (int, error) {
	return 3, f.countErr
}

func (f failingCollection) List(context.Context, int, int) ([]string, error) {
	return nil, f.listErr
}

func TestPaginate_PropagatesErrors(t *testing.T) {
	errCount := errors.New("count failed")
	_, err := Paginate[string](context.Background(), failingCollection{countErr: errCount}, NewParams(1, 10))
	assert.ErrorIs(t, err, errCount)

	errList := errors.New("list failed")
	_, err = Paginate[string](context.Background(), failingCollection{listErr: errList}, NewParams(1, 10))
	assert.ErrorIs(t, err, errList)
}

func TestPaginate_NilListIsEmpty(t *testing.T) {
	res, err := Paginate[string](context.Background(), failingCollection{}, NewParams(1, 10))
	require.NoError(t, err)
	assert.NotNil(t, res.Items)
	assert.Empty(t, res.Items)
}
