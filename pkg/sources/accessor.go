package sources

import "fmt"

// Title produces the display text for a row's accessor: an empty string for
// a nil value, the value's textual form otherwise.
//
// Title is called on every redraw, so it is cheap and never mutates the row.
func Title(row *Row, accessor string) string {
	value := row.Get(accessor)
	if value == nil {
		return ""
	}
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprint(value)
}

// Titles produces the display text for every row of source in display order.
func Titles(source *ListSource, accessor string) []string {
	titles := make([]string, 0, source.Len())
	for _, row := range source.Rows() {
		titles = append(titles, Title(row, accessor))
	}
	return titles
}
