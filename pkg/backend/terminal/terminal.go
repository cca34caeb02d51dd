// Package terminal is a text-mode backend built on Bubble Tea.
//
// Each widget impl keeps a plain mirror of its display state (titles, rows,
// highlight) and renders it with Lipgloss on demand. The App composes every
// widget the factory has created into a single Bubble Tea model, cycling
// keyboard focus between the interactive ones.
package terminal

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/samtupy/toga/pkg/backend"
	"github.com/samtupy/toga/pkg/style"
)

// Factory creates terminal widget impls. Widgets are rendered in creation
// order by the App.
type Factory struct {
	sheet   styles
	widgets []view
}

// NewFactory returns a terminal factory rendering with the given sheet.
func NewFactory(sheet style.Sheet) *Factory {
	return &Factory{sheet: compile(sheet)}
}

func (f *Factory) Name() string     { return "terminal" }
func (f *Factory) Requires() string { return "v0.1.0" }

func (f *Factory) CreateSelection() backend.SelectionImpl {
	s := &selection{sheet: &f.sheet, selected: -1, enabled: true}
	f.widgets = append(f.widgets, s)
	return s
}

func (f *Factory) CreateTable() backend.TableImpl {
	t := &table{sheet: &f.sheet, selected: -1, enabled: true}
	f.widgets = append(f.widgets, t)
	return t
}

func (f *Factory) CreateSwitch() backend.SwitchImpl {
	s := &toggle{sheet: &f.sheet, enabled: true}
	f.widgets = append(f.widgets, s)
	return s
}

func (f *Factory) CreateLabel() backend.LabelImpl {
	l := &label{sheet: &f.sheet}
	f.widgets = append(f.widgets, l)
	return l
}

// view is the render surface every terminal widget provides.
type view interface {
	render(focused bool) string
}

// interactive widgets additionally take keyboard input while focused.
type interactive interface {
	view
	acceptsFocus() bool
	handleKey(msg tea.KeyMsg)
}

// styles is a Sheet compiled to Lipgloss styles.
type styles struct {
	row       lipgloss.Style
	highlight lipgloss.Style
	heading   lipgloss.Style
	label     lipgloss.Style
	toggle    lipgloss.Style
}

func compile(sheet style.Sheet) styles {
	return styles{
		row:       lipStyle(sheet.Selection),
		highlight: lipStyle(sheet.Highlight),
		heading:   lipStyle(sheet.Heading),
		label:     lipStyle(sheet.Label),
		toggle:    lipStyle(sheet.Switch),
	}
}

func lipStyle(s style.Style) lipgloss.Style {
	out := lipgloss.NewStyle().Bold(s.Bold).PaddingLeft(s.Padding).PaddingRight(s.Padding)
	if c, err := style.ParseColor(s.Foreground); err == nil && s.Foreground != "" {
		out = out.Foreground(lipgloss.Color(style.Hex(c)))
	}
	if c, err := style.ParseColor(s.Background); err == nil && s.Background != "" {
		out = out.Background(lipgloss.Color(style.Hex(c)))
	}
	return out
}
