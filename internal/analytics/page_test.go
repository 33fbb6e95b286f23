package analytics

import "testing"

func TestValidatePage(t *testing.T) {
	cases := []struct {
		name     string
		limit    int
		offset   int
		wantCode ErrorCode
	}{
		{name: "valid", limit: 10, offset: 0, wantCode: ""},
		{name: "zero_zero_valid", limit: 0, offset: 0, wantCode: ""},
		{name: "negative_limit", limit: -1, offset: 0, wantCode: CodeInvalidPage},
		{name: "negative_offset", limit: 10, offset: -5, wantCode: CodeInvalidPage},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidatePage("test", tc.limit, tc.offset)
			if tc.wantCode == "" {
				if err != nil {
					t.Fatalf("ValidatePage(%d, %d) unexpected error: %v", tc.limit, tc.offset, err)
				}
				return
			}
			if !IsCode(err, tc.wantCode) {
				t.Fatalf("ValidatePage(%d, %d) code=%q, want %q", tc.limit, tc.offset, CodeOf(err), tc.wantCode)
			}
		})
	}
}

func TestWindow(t *testing.T) {
	rows := []int{1, 2, 3, 4, 5}

	cases := []struct {
		name   string
		limit  int
		offset int
		want   []int
	}{
		{name: "full", limit: 10, offset: 0, want: []int{1, 2, 3, 4, 5}},
		{name: "first_page", limit: 2, offset: 0, want: []int{1, 2}},
		{name: "second_page", limit: 2, offset: 2, want: []int{3, 4}},
		{name: "partial_last_page", limit: 2, offset: 4, want: []int{5}},
		{name: "offset_past_end_is_empty_not_error", limit: 2, offset: 99, want: []int{}},
		{name: "limit_zero_is_empty", limit: 0, offset: 0, want: []int{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := window(rows, tc.limit, tc.offset)
			if len(got) != len(tc.want) {
				t.Fatalf("window len=%d, want %d (%v)", len(got), len(tc.want), got)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("window[%d]=%d, want %d", i, got[i], tc.want[i])
				}
			}
		})
	}
}
