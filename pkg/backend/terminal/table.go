package terminal

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/samtupy/toga/pkg/backend"
)

// table renders rows of cells under fixed headings, columns padded to the
// widest cell.
type table struct {
	sheet    *styles
	headings []string
	rows     [][]string
	selected int
	enabled  bool
	client   backend.TableClient
}

func (t *table) SetEnabled(enabled bool) { t.enabled = enabled }

func (t *table) SetHeadings(headings []string) {
	t.headings = append([]string(nil), headings...)
}

func (t *table) Rebuild(rows [][]string) {
	t.rows = t.rows[:0]
	for _, cells := range rows {
		t.rows = append(t.rows, append([]string(nil), cells...))
	}
}

func (t *table) InsertRowAt(index int, cells []string) {
	t.rows = append(t.rows, nil)
	copy(t.rows[index+1:], t.rows[index:])
	t.rows[index] = append([]string(nil), cells...)
	if t.selected >= index {
		t.selected++
	}
}

func (t *table) RemoveRowAt(index int) {
	t.rows = append(t.rows[:index], t.rows[index+1:]...)
	if t.selected == index {
		t.selected = -1
	} else if t.selected > index {
		t.selected--
	}
}

func (t *table) UpdateRowAt(index int, cells []string) {
	t.rows[index] = append([]string(nil), cells...)
}

func (t *table) SelectedIndex() int { return t.selected }

func (t *table) SelectIndex(index int) { t.selected = index }

func (t *table) SetClient(client backend.TableClient) { t.client = client }

func (t *table) acceptsFocus() bool { return t.enabled && len(t.rows) > 0 }

func (t *table) handleKey(msg tea.KeyMsg) {
	next := t.selected
	switch msg.String() {
	case "up", "k":
		if next > 0 {
			next--
		}
	case "down", "j":
		if next < len(t.rows)-1 {
			next++
		}
	}
	if next != t.selected && t.client != nil {
		t.selected = next
		t.client.UserSelected(next)
	}
}

func (t *table) render(focused bool) string {
	widths := t.columnWidths()
	var b strings.Builder
	if len(t.headings) > 0 {
		b.WriteString(t.sheet.heading.Render("  " + joinPadded(t.headings, widths)))
		if len(t.rows) > 0 {
			b.WriteByte('\n')
		}
	}
	for i, cells := range t.rows {
		line := joinPadded(cells, widths)
		if i == t.selected {
			line = t.sheet.highlight.Render(cursorFor(focused) + line)
		} else {
			line = t.sheet.row.Render("  " + line)
		}
		b.WriteString(line)
		if i < len(t.rows)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (t *table) columnWidths() []int {
	widths := make([]int, len(t.headings))
	for i, h := range t.headings {
		widths[i] = len(h)
	}
	for _, cells := range t.rows {
		for i, c := range cells {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			if len(c) > widths[i] {
				widths[i] = len(c)
			}
		}
	}
	return widths
}

func joinPadded(cells []string, widths []int) string {
	parts := make([]string, len(cells))
	for i, c := range cells {
		w := 0
		if i < len(widths) {
			w = widths[i]
		}
		parts[i] = c + strings.Repeat(" ", max(0, w-len(c)))
	}
	return strings.Join(parts, "  ")
}
