package pagination

import "testing"

func TestPageRequestDefaults(t *testing.T) {
	cases := []struct {
		name             string
		in               PageRequest
		wantPage, wantSz int
	}{
		{"empty", PageRequest{}, 1, DefaultPageSize},
		{"kept", PageRequest{Page: 3, PageSize: 10}, 3, 10},
		{"clamped", PageRequest{Page: 2, PageSize: 500}, 2, MaxPageSize},
		{"negative", PageRequest{Page: -1, PageSize: -5}, 1, DefaultPageSize},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := tc.in
			p.Defaults()
			if p.Page != tc.wantPage || p.PageSize != tc.wantSz {
				t.Errorf("got page=%d size=%d, want page=%d size=%d", p.Page, p.PageSize, tc.wantPage, tc.wantSz)
			}
		})
	}
}

func TestOffset(t *testing.T) {
	p := PageRequest{Page: 3, PageSize: 20}
	if got := p.Offset(); got != 40 {
		t.Errorf("expected offset 40, got %d", got)
	}
}

func TestNewPageResponse(t *testing.T) {
	resp := NewPageResponse[int](nil, 1, 20, 41)
	if resp.Data == nil || len(resp.Data) != 0 {
		t.Errorf("expected empty non-nil data, got %v", resp.Data)
	}
	if resp.TotalPages != 3 {
		t.Errorf("expected 3 pages, got %d", resp.TotalPages)
	}
	if !resp.HasMore {
		t.Error("expected more pages after page 1")
	}

	last := NewPageResponse([]int{1}, 3, 20, 41)
	if last.HasMore {
		t.Error("expected no more pages after the last page")
	}

	empty := NewPageResponse([]int{}, 1, 20, 0)
	if empty.TotalPages != 0 || empty.HasMore {
		t.Errorf("unexpected empty response %+v", empty)
	}
}
