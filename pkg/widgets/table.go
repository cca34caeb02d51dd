package widgets

import (
	"strings"

	"github.com/samtupy/toga/pkg/backend"
	"github.com/samtupy/toga/pkg/sources"
)

// TableConfig configures a new Table.
type TableConfig struct {
	// Headings are the column titles.
	Headings []string
	// Accessors name the row attribute shown in each column. When empty,
	// they are derived from the headings by lowercasing and replacing
	// spaces with underscores ("First Name" -> "first_name").
	Accessors []string
	// Items is the initial content: a *sources.ListSource adopted by
	// reference, or raw data wrapped into an owned source.
	Items any
	// OnSelect is invoked whenever the identity of the selected row
	// changes.
	OnSelect func(*Table)
}

// Table is a widget displaying rows of data under fixed column headings.
//
// Table binds to a sources.ListSource exactly the way Selection does and
// follows the same selection rules: selection is held by row identity,
// survives unrelated mutations, falls back to the first row on removal of
// the selected row, and collapses to one OnSelect firing per visible change.
type Table struct {
	Widget

	impl      backend.TableImpl
	headings  []string
	accessors []string
	source    *sources.ListSource
	selected  *sources.Row
	onSelect  func(*Table)
	listener  *tableListener
}

// NewTable creates a table widget on the current backend.
func NewTable(cfg TableConfig) (*Table, error) {
	factory, err := backend.Current()
	if err != nil {
		return nil, err
	}
	accessors := cfg.Accessors
	if len(accessors) == 0 {
		accessors = deriveAccessors(cfg.Headings)
	}
	if len(accessors) == 0 {
		accessors = []string{"value"}
	}
	impl := factory.CreateTable()
	t := &Table{
		Widget:    newWidget(impl),
		impl:      impl,
		headings:  append([]string(nil), cfg.Headings...),
		accessors: accessors,
		onSelect:  cfg.OnSelect,
	}
	t.listener = &tableListener{owner: t}
	impl.SetClient(t)
	impl.SetHeadings(t.headings)
	if err := t.SetItems(cfg.Items); err != nil {
		return nil, err
	}
	return t, nil
}

// deriveAccessors produces accessor names from column headings.
func deriveAccessors(headings []string) []string {
	accessors := make([]string, len(headings))
	for i, heading := range headings {
		accessors[i] = strings.ReplaceAll(strings.ToLower(heading), " ", "_")
	}
	return accessors
}

// Headings returns the column titles.
func (t *Table) Headings() []string {
	return append([]string(nil), t.headings...)
}

// Items returns the bound list source.
func (t *Table) Items() *sources.ListSource {
	return t.source
}

// SetItems replaces the bound source wholesale, rebuilding the display and
// selecting the first row. OnSelect fires unconditionally.
func (t *Table) SetItems(items any) error {
	var next *sources.ListSource
	switch v := items.(type) {
	case *sources.ListSource:
		next = v
	default:
		wrapped, err := sources.WrapSource(items, t.accessors...)
		if err != nil {
			return err
		}
		next = wrapped
	}

	if t.source != nil {
		t.source.RemoveListener(t.listener)
	}
	t.source = next
	next.AddListener(t.listener)

	t.impl.Rebuild(t.allCells())
	if next.Len() > 0 {
		t.selected = next.At(0)
		t.impl.SelectIndex(0)
	} else {
		t.selected = nil
		t.impl.SelectIndex(-1)
	}
	t.fireSelect()
	return nil
}

// Selection returns the selected row, or nil when the table is empty.
func (t *Table) Selection() *sources.Row {
	return t.selected
}

// SelectRow selects row by identity. A nil row clears the selection; a
// non-member row is a membership error.
func (t *Table) SelectRow(row *sources.Row) error {
	if row == nil {
		if t.selected != nil {
			t.selected = nil
			t.impl.SelectIndex(-1)
			t.fireSelect()
		}
		return nil
	}
	index, err := t.source.Index(row)
	if err != nil {
		return err
	}
	t.impl.SelectIndex(index)
	if row != t.selected {
		t.selected = row
		t.fireSelect()
	}
	return nil
}

// SetOnSelect replaces the selection handler.
func (t *Table) SetOnSelect(fn func(*Table)) {
	t.onSelect = fn
}

// UserSelected implements backend.TableClient. An index that resolves to no
// row is ignored: backends only report real picks.
func (t *Table) UserSelected(index int) {
	row := t.source.At(index)
	if row == nil || row == t.selected {
		return
	}
	t.selected = row
	t.fireSelect()
}

func (t *Table) fireSelect() {
	if t.onSelect != nil {
		t.onSelect(t)
	}
}

// cells renders one row into display text, one cell per accessor.
func (t *Table) cells(row *sources.Row) []string {
	cells := make([]string, len(t.accessors))
	for i, accessor := range t.accessors {
		cells[i] = sources.Title(row, accessor)
	}
	return cells
}

func (t *Table) allCells() [][]string {
	rows := t.source.Rows()
	cells := make([][]string, len(rows))
	for i, row := range rows {
		cells[i] = t.cells(row)
	}
	return cells
}

// tableListener adapts the sources.Listener contract onto a Table.
type tableListener struct {
	owner *Table
}

func (l *tableListener) RowInserted(index int, row *sources.Row) {
	t := l.owner
	t.impl.InsertRowAt(index, t.cells(row))
	if t.selected == nil && t.source.Len() == 1 {
		t.selected = row
		t.impl.SelectIndex(0)
		t.fireSelect()
	}
}

func (l *tableListener) RowRemoved(index int, row *sources.Row) {
	t := l.owner
	t.impl.RemoveRowAt(index)
	if row != t.selected {
		return
	}
	// Removing the selected row falls back to the first remaining row, or
	// clears the selection when none remain.
	if t.source.Len() == 0 {
		t.selected = nil
		t.impl.SelectIndex(-1)
	} else {
		t.selected = t.source.At(0)
		t.impl.SelectIndex(0)
	}
	t.fireSelect()
}

func (l *tableListener) RowChanged(row *sources.Row) {
	t := l.owner
	index, err := t.source.Index(row)
	if err != nil {
		return
	}
	t.impl.UpdateRowAt(index, t.cells(row))
}

func (l *tableListener) Cleared() {
	t := l.owner
	t.impl.Rebuild(nil)
	if t.selected == nil {
		return
	}
	t.selected = nil
	t.impl.SelectIndex(-1)
	t.fireSelect()
}
