package dummy

import "github.com/samtupy/toga/pkg/backend"

// Table is the recording TableImpl.
type Table struct {
	widgetImpl
	headings []string
	rows     [][]string
	selected int
	client   backend.TableClient
}

func newTable() *Table {
	return &Table{selected: -1, widgetImpl: widgetImpl{enabled: true}}
}

func (t *Table) SetHeadings(headings []string) {
	t.headings = append([]string(nil), headings...)
	t.record("SetHeadings", "%v", headings)
}

// Headings returns the current column headings.
func (t *Table) Headings() []string {
	return append([]string(nil), t.headings...)
}

func (t *Table) Rebuild(rows [][]string) {
	t.rows = copyRows(rows)
	t.selected = -1
	t.record("Rebuild", "%v", rows)
}

func (t *Table) InsertRowAt(index int, cells []string) {
	t.rows = append(t.rows, nil)
	copy(t.rows[index+1:], t.rows[index:])
	t.rows[index] = append([]string(nil), cells...)
	if t.selected >= index {
		t.selected++
	}
	t.record("InsertRowAt", "%d %v", index, cells)
}

func (t *Table) RemoveRowAt(index int) {
	t.rows = append(t.rows[:index], t.rows[index+1:]...)
	if t.selected == index {
		t.selected = -1
	} else if t.selected > index {
		t.selected--
	}
	t.record("RemoveRowAt", "%d", index)
}

func (t *Table) UpdateRowAt(index int, cells []string) {
	t.rows[index] = append([]string(nil), cells...)
	t.record("UpdateRowAt", "%d %v", index, cells)
}

func (t *Table) SelectedIndex() int {
	return t.selected
}

func (t *Table) SelectIndex(index int) {
	t.selected = index
	t.record("SelectIndex", "%d", index)
}

func (t *Table) SetClient(client backend.TableClient) {
	t.client = client
}

// Rows returns the currently displayed cell rows.
func (t *Table) Rows() [][]string {
	return copyRows(t.rows)
}

// SimulateSelect drives the inbound path as if the user picked the row at
// index.
func (t *Table) SimulateSelect(index int) {
	t.selected = index
	if t.client != nil {
		t.client.UserSelected(index)
	}
}

func copyRows(rows [][]string) [][]string {
	out := make([][]string, len(rows))
	for i, row := range rows {
		out[i] = append([]string(nil), row...)
	}
	return out
}
