package analytics

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	cases := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "op_and_message",
			err:  &Error{Code: CodeInvalidPage, Op: "views.Orders", Message: "limit must be >= 0"},
			want: "views.Orders: limit must be >= 0 (invalid_page)",
		},
		{
			name: "op_only",
			err:  &Error{Code: CodeCanceled, Op: "views.Orders"},
			want: "views.Orders (canceled)",
		},
		{
			name: "code_only",
			err:  &Error{Code: CodeStorageUnavailable},
			want: "storage_unavailable",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.err.Error(); got != tc.want {
				t.Fatalf("Error()=%q, want %q", got, tc.want)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	t.Run("nil_passthrough", func(t *testing.T) {
		if err := Wrap(CodeStorageUnavailable, "op", nil); err != nil {
			t.Fatalf("Wrap(nil)=%v, want nil", err)
		}
	})

	t.Run("cause_survives_unwrap", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := Wrap(CodeStorageUnavailable, "op", cause)
		if !errors.Is(err, cause) {
			t.Fatalf("wrapped error lost its cause")
		}
		if !IsCode(err, CodeStorageUnavailable) {
			t.Fatalf("code=%q, want storage_unavailable", CodeOf(err))
		}
	})

	t.Run("code_found_through_further_wrapping", func(t *testing.T) {
		err := fmt.Errorf("outer: %w", Wrap(CodeInvalidPage, "op", errors.New("bad")))
		if !IsCode(err, CodeInvalidPage) {
			t.Fatalf("code lost through fmt.Errorf wrapping")
		}
	})
}
