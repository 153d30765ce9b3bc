package pagination

import "testing"

func TestValidateClampsAndDefaults(t *testing.T) {
	tests := []struct {
		name                  string
		page, perPage         int
		defaultPerPage        int
		wantPage, wantPerPage int
	}{
		{"zero values fall back", 0, 0, 50, 1, 50},
		{"negative page clamps", -3, 10, 50, 1, 10},
		{"landing default applies", 1, 0, 8, 1, 8},
		{"oversized page size clamps", 1, 5000, 50, 1, MaxPerPage},
		{"explicit values pass through", 2, 10, 50, 2, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewParams(tt.page, tt.perPage, tt.defaultPerPage)
			if p.Page != tt.wantPage || p.PerPage != tt.wantPerPage {
				t.Fatalf("got (page=%d, perPage=%d), want (page=%d, perPage=%d)",
					p.Page, p.PerPage, tt.wantPage, tt.wantPerPage)
			}
		})
	}
}

func TestOffset(t *testing.T) {
	// page=2 limit=10 over a 25-row set must address rows 10-19.
	p := NewParams(2, 10, 50)
	if got := p.Offset(); got != 10 {
		t.Fatalf("Offset() = %d, want 10", got)
	}
}

func TestNewPageResult(t *testing.T) {
	p := NewParams(2, 10, 50)
	rows := make([]int, 10)
	res := NewPageResult(rows, 25, p)

	if res.Total != 25 || res.Page != 2 || res.PerPage != 10 {
		t.Fatalf("unexpected envelope: %+v", res)
	}
	if res.TotalPages != 3 {
		t.Fatalf("TotalPages = %d, want 3", res.TotalPages)
	}
	if len(res.Items) != 10 {
		t.Fatalf("len(Items) = %d, want 10", len(res.Items))
	}
}

func TestNewPageResultNilItems(t *testing.T) {
	res := NewPageResult[int](nil, 0, NewParams(1, 0, 50))
	if res.Items == nil {
		t.Fatalf("Items must serialize as [] rather than null")
	}
}
