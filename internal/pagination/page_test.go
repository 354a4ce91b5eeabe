package pagination_test

import (
	"errors"
	"strconv"
	"testing"

	"articles/internal/pagination"
)

func TestOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		page    int
		size    int
		wantErr bool
	}{
		{name: "first page", page: 0, size: 20},
		{name: "later page", page: 5, size: 1},
		{name: "negative page", page: -1, size: 20, wantErr: true},
		{name: "zero size", page: 0, size: 0, wantErr: true},
		{name: "negative size", page: 0, size: -3, wantErr: true},
		{name: "max size", page: 0, size: pagination.MaxSize},
		{name: "size above max", page: 0, size: pagination.MaxSize + 1, wantErr: true},
		{name: "huge size", page: 0, size: 2147483647, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := pagination.Of(tt.page, tt.size)
			if tt.wantErr {
				if !errors.Is(err, pagination.ErrInvalidRequest) {
					t.Fatalf("Of(%d, %d) err = %v, want ErrInvalidRequest", tt.page, tt.size, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Of(%d, %d) unexpected err = %v", tt.page, tt.size, err)
			}
		})
	}
}

func TestRequest_Offset(t *testing.T) {
	t.Parallel()

	tests := []struct {
		page, size, want int
	}{
		{0, 20, 0},
		{1, 20, 20},
		{3, 25, 75},
	}

	for _, tt := range tests {
		r, _ := pagination.Of(tt.page, tt.size)
		if got := r.Offset(); got != tt.want {
			t.Errorf("Offset() page=%d size=%d = %d, want %d", tt.page, tt.size, got, tt.want)
		}
	}
}

func TestTotalPages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		total int64
		size  int
		want  int
	}{
		{0, 20, 0},
		{10, 20, 1},
		{20, 20, 1},
		{21, 20, 2},
		{60, 25, 3},
		{5, 1, 5},
		{5, 0, 0},
	}

	for _, tt := range tests {
		if got := pagination.TotalPages(tt.total, tt.size); got != tt.want {
			t.Errorf("TotalPages(%d, %d) = %d, want %d", tt.total, tt.size, got, tt.want)
		}
	}
}

func TestNew_Flags(t *testing.T) {
	t.Parallel()

	r, _ := pagination.Of(1, 25)
	p := pagination.New([]int{1, 2, 3}, r, 60)

	if p.TotalPages != 3 || p.Number != 1 || p.Size != 25 || p.NumberOfElements != 3 {
		t.Fatalf("unexpected metadata: %+v", p)
	}
	if p.First || p.Last || p.Empty {
		t.Fatalf("middle page flags wrong: %+v", p)
	}

	r, _ = pagination.Of(2, 25)
	if p := pagination.New([]int{1}, r, 60); !p.Last {
		t.Fatalf("page 2 of 3 should be last: %+v", p)
	}

	r, _ = pagination.Of(0, 20)
	empty := pagination.New[int](nil, r, 0)
	if !empty.First || !empty.Last || !empty.Empty || empty.Content == nil {
		t.Fatalf("empty page flags wrong: %+v", empty)
	}
}

func TestMap_KeepsMetadata(t *testing.T) {
	t.Parallel()

	r, _ := pagination.Of(0, 2, pagination.Desc("id"))
	in := pagination.New([]int{4, 3}, r, 4)

	out := pagination.Map(in, strconv.Itoa)

	if len(out.Content) != 2 || out.Content[0] != "4" || out.Content[1] != "3" {
		t.Fatalf("content = %v", out.Content)
	}
	if out.TotalElements != 4 || out.TotalPages != 2 || !out.First || out.Last {
		t.Fatalf("metadata lost: %+v", out)
	}
}
