package pagination

import "testing"

func TestNormalizeLimit(t *testing.T) {
	cases := []struct {
		in   int
		want int
	}{
		{0, DefaultLimit},
		{-5, DefaultLimit},
		{10, 10},
		{MaxLimit, MaxLimit},
		{MaxLimit + 1, MaxLimit},
	}
	for _, tc := range cases {
		if got := NormalizeLimit(tc.in); got != tc.want {
			t.Errorf("NormalizeLimit(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestOffset(t *testing.T) {
	p := Params{Page: 3, Limit: 20}
	if got := p.Offset(); got != 40 {
		t.Fatalf("expected offset 40, got %d", got)
	}

	p = Params{Page: 0, Limit: 0}
	if got := p.Offset(); got != 0 {
		t.Fatalf("expected offset 0 for defaults, got %d", got)
	}
}

func TestBuildMeta(t *testing.T) {
	meta := BuildMeta(Params{Page: 2, Limit: 10}, 35)
	if meta.TotalPages != 4 {
		t.Fatalf("expected 4 total pages, got %d", meta.TotalPages)
	}
	if meta.Total != 35 || meta.Page != 2 || meta.Limit != 10 {
		t.Fatalf("unexpected meta: %+v", meta)
	}

	empty := BuildMeta(Params{}, 0)
	if empty.TotalPages != 1 {
		t.Fatalf("expected empty result to report 1 page, got %d", empty.TotalPages)
	}
}
