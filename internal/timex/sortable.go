package timex

import "time"

// sortableLayout is a fixed-width UTC layout so TEXT columns holding
// timestamps order correctly under lexicographic comparison. RFC3339Nano is
// unsuitable: it trims trailing zeros, so mixed precision breaks ordering.
const sortableLayout = "2006-01-02T15:04:05.000Z"

// FormatSortable renders t for storage in a TEXT timestamp column.
func FormatSortable(t time.Time) string {
	return t.UTC().Format(sortableLayout)
}

// ParseSortable parses a value written by FormatSortable.
func ParseSortable(s string) (time.Time, error) {
	return time.Parse(sortableLayout, s)
}
