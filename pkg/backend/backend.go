// Package backend defines the seam between platform-independent widgets and
// the native implementations that render them.
//
// Widgets never touch rendering primitives directly. Each widget kind has a
// narrow impl interface of imperative display operations, and a client
// interface through which the backend reports user interaction back to the
// widget. Backends register a Factory; widgets obtain their impls from the
// currently registered factory.
package backend

// WidgetImpl is the surface common to every backend widget.
type WidgetImpl interface {
	// SetEnabled enables or disables user interaction with the widget.
	SetEnabled(enabled bool)
}

// SelectionClient is implemented by the selection widget to receive
// backend-originated events.
type SelectionClient interface {
	// UserSelected reports that the user picked the row at the given
	// display index. It is invoked at most once per discrete interaction.
	UserSelected(index int)
}

// SelectionImpl is the display surface of a selection widget: an ordered
// list of titles with at most one highlighted entry.
type SelectionImpl interface {
	WidgetImpl

	// Rebuild replaces the entire displayed list.
	Rebuild(titles []string)
	// InsertAt inserts a displayed title at index.
	InsertAt(index int, title string)
	// RemoveAt removes the displayed title at index.
	RemoveAt(index int)
	// UpdateTitleAt rewrites the displayed title at index in place.
	UpdateTitleAt(index int, title string)
	// SelectedIndex returns the highlighted index, or -1 when none is.
	SelectedIndex() int
	// SelectIndex highlights the entry at index; -1 clears the highlight.
	SelectIndex(index int)
	// SetClient registers the widget that receives user selections.
	SetClient(client SelectionClient)
}

// TableClient is implemented by the table widget to receive
// backend-originated events.
type TableClient interface {
	// UserSelected reports that the user picked the row at the given
	// display index.
	UserSelected(index int)
}

// TableImpl is the display surface of a table widget: ordered rows of
// cells under fixed headings.
type TableImpl interface {
	WidgetImpl

	// SetHeadings sets the column headings.
	SetHeadings(headings []string)
	// Rebuild replaces all displayed rows.
	Rebuild(rows [][]string)
	// InsertRowAt inserts a displayed row at index.
	InsertRowAt(index int, cells []string)
	// RemoveRowAt removes the displayed row at index.
	RemoveRowAt(index int)
	// UpdateRowAt rewrites the displayed row at index in place.
	UpdateRowAt(index int, cells []string)
	// SelectedIndex returns the highlighted row index, or -1 when none is.
	SelectedIndex() int
	// SelectIndex highlights the row at index; -1 clears the highlight.
	SelectIndex(index int)
	// SetClient registers the widget that receives user selections.
	SetClient(client TableClient)
}

// SwitchClient is implemented by the switch widget to receive
// backend-originated toggles.
type SwitchClient interface {
	// UserToggled reports that the user changed the switch state.
	UserToggled(value bool)
}

// SwitchImpl is the display surface of a boolean switch.
type SwitchImpl interface {
	WidgetImpl

	// SetLabel sets the text shown beside the switch.
	SetLabel(label string)
	// SetValue sets the on/off state.
	SetValue(value bool)
	// Value returns the current on/off state.
	Value() bool
	// SetClient registers the widget that receives user toggles.
	SetClient(client SwitchClient)
}

// LabelImpl is the display surface of a static text widget.
type LabelImpl interface {
	WidgetImpl

	// SetText sets the displayed text.
	SetText(text string)
}

// Factory creates backend impls for each widget kind.
type Factory interface {
	// Name identifies the backend (e.g., "terminal", "dummy").
	Name() string
	// Requires returns the minimum toolkit version the backend needs,
	// as a "v"-prefixed semantic version.
	Requires() string

	CreateSelection() SelectionImpl
	CreateTable() TableImpl
	CreateSwitch() SwitchImpl
	CreateLabel() LabelImpl
}
