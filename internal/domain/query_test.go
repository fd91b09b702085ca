package domain

import (
	"reflect"
	"testing"
)

func TestOffset(t *testing.T) {
	tests := []struct {
		page int
		want int
	}{
		{page: 1, want: 0},
		{page: 2, want: 18},
		{page: 3, want: 36},
		{page: 100, want: 1782},
		{page: 0, want: 0},
		{page: -4, want: 0},
	}

	for _, tt := range tests {
		if got := Offset(tt.page); got != tt.want {
			t.Errorf("Offset(%d) = %d, want %d", tt.page, got, tt.want)
		}
	}

	for page := 1; page <= 500; page++ {
		got := Offset(page)
		if got != (page-1)*PageSize || got < 0 {
			t.Fatalf("Offset(%d) = %d, want %d", page, got, (page-1)*PageSize)
		}
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total int
		want  int
	}{
		{total: 0, want: 0},
		{total: -1, want: 0},
		{total: 1, want: 1},
		{total: 18, want: 1},
		{total: 19, want: 2},
		{total: 36, want: 2},
		{total: 37, want: 3},
	}

	for _, tt := range tests {
		if got := TotalPages(tt.total); got != tt.want {
			t.Errorf("TotalPages(%d) = %d, want %d", tt.total, got, tt.want)
		}
	}
}

func TestDeriveParams(t *testing.T) {
	tests := []struct {
		name  string
		query QueryState
		want  ListParams
	}{
		{
			name:  "popular first page",
			query: QueryState{Page: 1, Filter: FilterPopular},
			want: ListParams{
				Limit:          18,
				Offset:         0,
				Includes:       []string{"cover_art"},
				OrderField:     "followedCount",
				OrderDirection: "desc",
			},
		},
		{
			name:  "latest third page",
			query: QueryState{Page: 3, Filter: FilterLatest},
			want: ListParams{
				Limit:          18,
				Offset:         36,
				Includes:       []string{"cover_art"},
				OrderField:     "createdAt",
				OrderDirection: "desc",
			},
		},
		{
			name:  "browse with search",
			query: QueryState{Page: 2, SearchText: "naruto"},
			want: ListParams{
				Limit:    18,
				Offset:   18,
				Includes: []string{"cover_art"},
				Title:    "naruto",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveParams(tt.query)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DeriveParams(%+v) = %+v, want %+v", tt.query, got, tt.want)
			}
		})
	}
}

func TestPrevPage(t *testing.T) {
	for page := -2; page <= 50; page++ {
		got := PrevPage(page)
		if got < 1 {
			t.Fatalf("PrevPage(%d) = %d, went below 1", page, got)
		}
		if want := max(page-1, 1); got != want {
			t.Fatalf("PrevPage(%d) = %d, want %d", page, got, want)
		}
	}
}

func TestNextPage(t *testing.T) {
	for total := 1; total <= 10; total++ {
		for page := 1; page <= total; page++ {
			got := NextPage(page, total)
			if got > total {
				t.Fatalf("NextPage(%d, %d) = %d, exceeds total", page, total, got)
			}
			if want := min(page+1, total); got != want {
				t.Fatalf("NextPage(%d, %d) = %d, want %d", page, total, got, want)
			}
		}
	}

	if got := NextPage(1, 0); got != 1 {
		t.Errorf("NextPage(1, 0) = %d, want 1", got)
	}

	// A page beyond the last one, e.g. after a narrower search, stays put
	if got := NextPage(5, 2); got != 5 {
		t.Errorf("NextPage(5, 2) = %d, want 5", got)
	}
}

func TestPaginationBounds(t *testing.T) {
	totalPages := TotalPages(37)

	if CanNext(3, totalPages) {
		t.Error("Next should be disabled on the last page")
	}
	if !CanNext(2, totalPages) {
		t.Error("Next should be enabled before the last page")
	}
	if CanPrev(1) {
		t.Error("Previous should be disabled on page 1")
	}
	if !CanPrev(2) {
		t.Error("Previous should be enabled on page 2")
	}
	if CanNext(1, 0) {
		t.Error("Next should be disabled when there are no pages")
	}
}

func TestFilterModeHeading(t *testing.T) {
	tests := map[FilterMode]string{
		FilterNone:    "Browse Manga",
		FilterPopular: "Popular Manga",
		FilterLatest:  "Latest Updates",
	}
	for mode, want := range tests {
		if got := mode.Heading(); got != want {
			t.Errorf("%s.Heading() = %q, want %q", mode, got, want)
		}
	}
}
