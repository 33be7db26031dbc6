package paginator_test

import (
	"testing"

	"task-management/pkg/paginator"
)

func TestSlice(t *testing.T) {
	items := []int{0, 1, 2, 3, 4, 5, 6}

	tests := []struct {
		name      string
		query     paginator.PaginateQuery
		wantFirst int
		wantLen   int
	}{
		{name: "first page", query: paginator.PaginateQuery{Page: 0, Size: 3}, wantFirst: 0, wantLen: 3},
		{name: "middle page", query: paginator.PaginateQuery{Page: 1, Size: 3}, wantFirst: 3, wantLen: 3},
		{name: "partial last page", query: paginator.PaginateQuery{Page: 2, Size: 3}, wantFirst: 6, wantLen: 1},
		{name: "past the end", query: paginator.PaginateQuery{Page: 3, Size: 3}, wantLen: 0},
		{name: "size larger than collection", query: paginator.PaginateQuery{Page: 0, Size: 50}, wantFirst: 0, wantLen: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, total := paginator.Slice(items, tt.query)
			if total != len(items) {
				t.Errorf("total = %d, want %d", total, len(items))
			}
			if len(got) != tt.wantLen {
				t.Fatalf("len = %d, want %d", len(got), tt.wantLen)
			}
			if tt.wantLen > 0 && got[0] != tt.wantFirst {
				t.Errorf("first = %d, want %d", got[0], tt.wantFirst)
			}
		})
	}
}

func TestSliceLengthProperty(t *testing.T) {
	for n := 0; n <= 12; n++ {
		items := make([]int, n)
		for size := 1; size <= 5; size++ {
			for page := 0; page <= 6; page++ {
				got, total := paginator.Slice(items, paginator.PaginateQuery{Page: page, Size: size})
				want := max(0, min(size, n-page*size))
				if len(got) != want {
					t.Errorf("n=%d page=%d size=%d: len = %d, want %d", n, page, size, len(got), want)
				}
				if total != n {
					t.Errorf("n=%d page=%d size=%d: total = %d, want %d", n, page, size, total, n)
				}
			}
		}
	}
}

func TestSliceEmpty(t *testing.T) {
	got, total := paginator.Slice([]string(nil), paginator.PaginateQuery{Page: 0, Size: 10})
	if got == nil || len(got) != 0 || total != 0 {
		t.Errorf("expected empty non-nil page, got %v total %d", got, total)
	}
}

func TestAdjust(t *testing.T) {
	q := paginator.PaginateQuery{Page: -2, Size: 0}
	q.Adjust()
	if q.Page != 0 || q.Size != paginator.DefaultSize {
		t.Errorf("unexpected defaults: %+v", q)
	}

	q = paginator.PaginateQuery{Page: 1, Size: 1000}
	q.Adjust()
	if q.Size != paginator.MaxSize {
		t.Errorf("expected size capped to %d, got %d", paginator.MaxSize, q.Size)
	}
}

func TestNewPaginator(t *testing.T) {
	p := paginator.NewPaginator(21, 10, paginator.PaginateQuery{Page: 1, Size: 10})
	if p.TotalPages != 3 {
		t.Errorf("TotalPages = %d, want 3", p.TotalPages)
	}
	if p.Total != 21 || p.Count != 10 || p.Page != 1 || p.Size != 10 {
		t.Errorf("unexpected paginator: %+v", p)
	}

	p = paginator.NewPaginator(0, 0, paginator.PaginateQuery{Page: 0, Size: 10})
	if p.TotalPages != 0 {
		t.Errorf("TotalPages = %d, want 0", p.TotalPages)
	}
}
