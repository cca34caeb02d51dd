package terminal_test

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/samtupy/toga/pkg/backend"
	"github.com/samtupy/toga/pkg/backend/terminal"
	"github.com/samtupy/toga/pkg/sources"
	"github.com/samtupy/toga/pkg/style"
	"github.com/samtupy/toga/pkg/widgets"
)

func install(t *testing.T) *terminal.Factory {
	t.Helper()
	factory := terminal.NewFactory(style.DefaultSheet())
	previous, err := backend.Register(factory)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	t.Cleanup(func() { backend.Restore(previous) })
	return factory
}

func key(kt tea.KeyType) tea.Msg {
	return tea.KeyMsg(tea.Key{Type: kt})
}

func TestApp_SelectionNavigation(t *testing.T) {
	factory := install(t)

	var changes []string
	sel, err := widgets.NewSelection(widgets.SelectionConfig{
		Items: []string{"first", "second", "third"},
		OnChange: func(w *widgets.Selection) {
			changes = append(changes, sources.Title(w.Value(), "value"))
		},
	})
	if err != nil {
		t.Fatalf("NewSelection: %v", err)
	}
	changes = nil

	app := terminal.NewApp("demo", factory)
	app.Update(key(tea.KeyDown))
	app.Update(key(tea.KeyDown))

	if got := sources.Title(sel.Value(), "value"); got != "third" {
		t.Fatalf("selected %q, want %q", got, "third")
	}
	if len(changes) != 2 || changes[0] != "second" || changes[1] != "third" {
		t.Fatalf("changes = %v", changes)
	}
	if view := app.View(); !strings.Contains(view, "> third") {
		t.Fatalf("view missing highlighted row:\n%s", view)
	}
}

func TestApp_SelectionStopsAtEdges(t *testing.T) {
	factory := install(t)

	sel, err := widgets.NewSelection(widgets.SelectionConfig{Items: []string{"only"}})
	if err != nil {
		t.Fatalf("NewSelection: %v", err)
	}

	app := terminal.NewApp("", factory)
	app.Update(key(tea.KeyUp))
	app.Update(key(tea.KeyDown))

	if got := sources.Title(sel.Value(), "value"); got != "only" {
		t.Fatalf("selected %q, want %q", got, "only")
	}
}

func TestApp_SwitchToggle(t *testing.T) {
	factory := install(t)

	var toggles []bool
	sw, err := widgets.NewSwitch(widgets.SwitchConfig{
		Label:    "Notifications",
		OnChange: func(w *widgets.Switch) { toggles = append(toggles, w.Value()) },
	})
	if err != nil {
		t.Fatalf("NewSwitch: %v", err)
	}

	app := terminal.NewApp("", factory)
	app.Update(key(tea.KeySpace))

	if !sw.Value() {
		t.Fatal("switch should be on after space")
	}
	if len(toggles) != 1 || !toggles[0] {
		t.Fatalf("toggles = %v", toggles)
	}
	if view := app.View(); !strings.Contains(view, "[x] Notifications") {
		t.Fatalf("view missing toggled switch:\n%s", view)
	}
}

func TestApp_TabSkipsLabels(t *testing.T) {
	factory := install(t)

	if _, err := widgets.NewLabel(widgets.LabelConfig{Text: "Pick a fruit:"}); err != nil {
		t.Fatalf("NewLabel: %v", err)
	}
	sel, err := widgets.NewSelection(widgets.SelectionConfig{Items: []string{"apple", "banana"}})
	if err != nil {
		t.Fatalf("NewSelection: %v", err)
	}
	sw, err := widgets.NewSwitch(widgets.SwitchConfig{Label: "Organic"})
	if err != nil {
		t.Fatalf("NewSwitch: %v", err)
	}

	app := terminal.NewApp("", factory)
	// Initial focus lands on the selection; tab moves to the switch and
	// keys route there.
	app.Update(key(tea.KeyTab))
	app.Update(key(tea.KeySpace))
	if !sw.Value() {
		t.Fatal("space should toggle the focused switch")
	}

	// Tab wraps back to the selection.
	app.Update(key(tea.KeyTab))
	app.Update(key(tea.KeyDown))
	if got := sources.Title(sel.Value(), "value"); got != "banana" {
		t.Fatalf("selected %q, want %q", got, "banana")
	}
}

func TestApp_QuitKeys(t *testing.T) {
	factory := install(t)
	app := terminal.NewApp("", factory)

	_, cmd := app.Update(tea.KeyMsg(tea.Key{Type: tea.KeyRunes, Runes: []rune{'q'}}))
	if cmd == nil {
		t.Fatal("q should quit")
	}
}

func TestApp_TableRendering(t *testing.T) {
	factory := install(t)

	tbl, err := widgets.NewTable(widgets.TableConfig{
		Headings: []string{"Name", "Value"},
		Items: []map[string]any{
			{"name": "alpha", "value": 1},
			{"name": "beta", "value": 2},
		},
	})
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}

	app := terminal.NewApp("", factory)
	app.Update(key(tea.KeyDown))

	if got := sources.Title(tbl.Selection(), "name"); got != "beta" {
		t.Fatalf("selected row %q, want %q", got, "beta")
	}

	view := app.View()
	for _, want := range []string{"Name", "alpha", "> beta"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}
