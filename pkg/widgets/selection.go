package widgets

import (
	"github.com/samtupy/toga/pkg/backend"
	"github.com/samtupy/toga/pkg/sources"
)

// SelectionConfig configures a new Selection.
type SelectionConfig struct {
	// Items is the initial content: a *sources.ListSource adopted by
	// reference, or raw data wrapped into an owned source. Nil starts
	// empty.
	Items any
	// Accessor is the accessor used to build display titles. When empty,
	// the first accessor of an adopted source is used, and raw data is
	// wrapped under the accessor "value".
	Accessor string
	// OnChange is invoked whenever the identity of the selected row
	// changes, including a wholesale items reassignment.
	OnChange func(*Selection)
}

// Selection is a widget for choosing one row from an ordered list.
//
// The selection is held by row identity: mutating, inserting, or removing
// other rows never disturbs it. Removing the selected row moves the
// selection to the first remaining row, or clears it when the source
// empties. OnChange fires exactly
// once per externally visible selection change and never for a mere retitle
// of the selected row.
type Selection struct {
	Widget

	impl     backend.SelectionImpl
	accessor string
	source   *sources.ListSource
	selected *sources.Row
	onChange func(*Selection)
	listener *selectionListener
}

// NewSelection creates a selection widget on the current backend.
func NewSelection(cfg SelectionConfig) (*Selection, error) {
	factory, err := backend.Current()
	if err != nil {
		return nil, err
	}
	impl := factory.CreateSelection()
	s := &Selection{
		Widget:   newWidget(impl),
		impl:     impl,
		accessor: cfg.Accessor,
		onChange: cfg.OnChange,
	}
	s.listener = &selectionListener{owner: s}
	impl.SetClient(s)
	if err := s.SetItems(cfg.Items); err != nil {
		return nil, err
	}
	return s, nil
}

// Items returns the bound list source.
func (s *Selection) Items() *sources.ListSource {
	return s.source
}

// SetItems replaces the bound source wholesale.
//
// A *sources.ListSource is adopted by reference; raw data (or nil, for an
// empty list) is wrapped into an owned source. The backend display list is
// rebuilt from scratch, the first row (if any) becomes selected, and
// OnChange fires unconditionally: the identity of "the source" changed even
// if the resulting selected row compares equal to the prior value.
func (s *Selection) SetItems(items any) error {
	var next *sources.ListSource
	switch v := items.(type) {
	case *sources.ListSource:
		next = v
	default:
		wrapped, err := sources.WrapSource(items, s.wrapAccessors()...)
		if err != nil {
			return err
		}
		next = wrapped
	}

	if s.source != nil {
		s.source.RemoveListener(s.listener)
	}
	s.source = next
	next.AddListener(s.listener)

	s.impl.Rebuild(sources.Titles(next, s.displayAccessor()))
	if next.Len() > 0 {
		s.selected = next.At(0)
		s.impl.SelectIndex(0)
	} else {
		s.selected = nil
		s.impl.SelectIndex(-1)
	}
	s.fireChange()
	return nil
}

// Value returns the selected row, or nil when the source is empty.
func (s *Selection) Value() *sources.Row {
	return s.selected
}

// SetValue selects row by identity. A nil row clears the selection. A row
// that is not a member of the bound source is a membership error and changes
// nothing.
func (s *Selection) SetValue(row *sources.Row) error {
	if row == nil {
		if s.selected != nil {
			s.selected = nil
			s.impl.SelectIndex(-1)
			s.fireChange()
		}
		return nil
	}
	index, err := s.source.Index(row)
	if err != nil {
		return err
	}
	s.impl.SelectIndex(index)
	if row != s.selected {
		s.selected = row
		s.fireChange()
	}
	return nil
}

// Select is the natural-key convenience: it selects the first row whose
// display-accessor value equals value, failing with a membership error when
// no row matches.
func (s *Selection) Select(value any) error {
	row, err := s.source.Find(s.displayAccessor(), value)
	if err != nil {
		return err
	}
	return s.SetValue(row)
}

// SetOnChange replaces the change handler.
func (s *Selection) SetOnChange(fn func(*Selection)) {
	s.onChange = fn
}

// UserSelected implements backend.SelectionClient. Re-selecting the row that
// is already selected is idempotent and does not fire OnChange. An index
// that resolves to no row is ignored: backends only report real picks.
func (s *Selection) UserSelected(index int) {
	row := s.source.At(index)
	if row == nil || row == s.selected {
		return
	}
	s.selected = row
	s.fireChange()
}

func (s *Selection) fireChange() {
	if s.onChange != nil {
		s.onChange(s)
	}
}

// displayAccessor resolves the accessor used to build titles.
func (s *Selection) displayAccessor() string {
	if s.accessor != "" {
		return s.accessor
	}
	if s.source != nil {
		return s.source.Accessors()[0]
	}
	return "value"
}

// wrapAccessors resolves the accessor list used to wrap raw data.
func (s *Selection) wrapAccessors() []string {
	if s.accessor != "" {
		return []string{s.accessor}
	}
	return nil
}

// selectionListener adapts the sources.Listener contract onto a Selection
// without exporting the event methods on the widget itself.
type selectionListener struct {
	owner *Selection
}

func (l *selectionListener) RowInserted(index int, row *sources.Row) {
	s := l.owner
	s.impl.InsertAt(index, sources.Title(row, s.displayAccessor()))
	// Inserting into an empty list selects the new row; any other insert
	// leaves the selection identity untouched.
	if s.selected == nil && s.source.Len() == 1 {
		s.selected = row
		s.impl.SelectIndex(0)
		s.fireChange()
	}
}

func (l *selectionListener) RowRemoved(index int, row *sources.Row) {
	s := l.owner
	s.impl.RemoveAt(index)
	if row != s.selected {
		return
	}
	// Removing the selected row falls back to the first remaining row, or
	// clears the selection when none remain.
	if s.source.Len() == 0 {
		s.selected = nil
		s.impl.SelectIndex(-1)
	} else {
		s.selected = s.source.At(0)
		s.impl.SelectIndex(0)
	}
	s.fireChange()
}

func (l *selectionListener) RowChanged(row *sources.Row) {
	s := l.owner
	index, err := s.source.Index(row)
	if err != nil {
		return
	}
	// A retitle only: selection identity is untouched and OnChange must
	// not fire, even when the changed row is the selected one.
	s.impl.UpdateTitleAt(index, sources.Title(row, s.displayAccessor()))
}

func (l *selectionListener) Cleared() {
	s := l.owner
	s.impl.Rebuild(nil)
	if s.selected == nil {
		return
	}
	s.selected = nil
	s.impl.SelectIndex(-1)
	s.fireChange()
}
