package analytics

import "fmt"

// ValidatePage rejects negative paging parameters before any join or rollup
// work starts.
func ValidatePage(op string, limit, offset int) error {
	if limit < 0 {
		return NewError(CodeInvalidPage, op, fmt.Sprintf("limit must be >= 0, got %d", limit), nil)
	}
	if offset < 0 {
		return NewError(CodeInvalidPage, op, fmt.Sprintf("offset must be >= 0, got %d", offset), nil)
	}
	return nil
}

// window applies the offset/limit slice to an already-ordered row set.
// An offset past the end and a limit of 0 both yield an empty result.
func window[T any](rows []T, limit, offset int) []T {
	if offset >= len(rows) {
		return []T{}
	}
	rows = rows[offset:]
	if limit < len(rows) {
		rows = rows[:limit]
	}
	return rows
}
