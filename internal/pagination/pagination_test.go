package pagination

import (
	"math"
	"testing"
)

func TestPageRequest_Defaults(t *testing.T) {
	tests := []struct {
		name     string
		in       PageRequest
		fallback int
		want     PageRequest
	}{
		{"zero values", PageRequest{}, 0, PageRequest{Page: 1, PageSize: DefaultPageSize}},
		{"configured size", PageRequest{}, 25, PageRequest{Page: 1, PageSize: 25}},
		{"negative page", PageRequest{Page: -3, PageSize: 5}, 12, PageRequest{Page: 1, PageSize: 5}},
		{"explicit values kept", PageRequest{Page: 4, PageSize: 10}, 12, PageRequest{Page: 4, PageSize: 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in
			got.Defaults(tt.fallback)
			if got != tt.want {
				t.Errorf("Defaults() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total int64
		size  int
		want  int
	}{
		{0, 12, 0},
		{1, 12, 1},
		{12, 12, 1},
		{13, 12, 2},
		{200, 12, 17},
		{5, 0, 0},
	}
	for _, tt := range tests {
		if got := TotalPages(tt.total, tt.size); got != tt.want {
			t.Errorf("TotalPages(%d, %d) = %d, want %d", tt.total, tt.size, got, tt.want)
		}
	}
}

func TestSlice(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	if got := Slice(items, PageRequest{Page: 1, PageSize: 2}); len(got) != 2 || got[0] != 1 {
		t.Errorf("page 1 = %v", got)
	}
	if got := Slice(items, PageRequest{Page: 3, PageSize: 2}); len(got) != 1 || got[0] != 5 {
		t.Errorf("page 3 = %v", got)
	}
	got := Slice(items, PageRequest{Page: 4, PageSize: 2})
	if got == nil || len(got) != 0 {
		t.Errorf("page past the end = %#v, want empty non-nil slice", got)
	}
}

func TestNewPageResponse_NilData(t *testing.T) {
	resp := NewPageResponse[string](nil, 1, 12, 0)
	if resp.Data == nil {
		t.Fatal("expected non-nil data")
	}
	if resp.TotalPages != 0 {
		t.Errorf("TotalPages = %d, want 0", resp.TotalPages)
	}
}

func TestOffset_Saturates(t *testing.T) {
	tests := []struct {
		name string
		req  PageRequest
		want int
	}{
		{"first page", PageRequest{Page: 1, PageSize: 12}, 0},
		{"third page", PageRequest{Page: 3, PageSize: 12}, 24},
		{"unset size", PageRequest{Page: 3}, 0},
		{"overflowing page", PageRequest{Page: 1<<62 + 1, PageSize: 4}, math.MaxInt},
		{"largest page", PageRequest{Page: math.MaxInt, PageSize: 100}, math.MaxInt},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.req.Offset(); got != tt.want {
				t.Errorf("Offset() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSlice_HugePageIsEmpty(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	got := Slice(items, PageRequest{Page: 1<<62 + 1, PageSize: 4})
	if got == nil || len(got) != 0 {
		t.Errorf("page 2^62+1 = %v, want empty slice", got)
	}
	if got := Slice(items, PageRequest{Page: math.MaxInt, PageSize: 100}); len(got) != 0 {
		t.Errorf("page MaxInt = %v, want empty slice", got)
	}
}
