package widgets_test

import (
	"reflect"
	"testing"

	"github.com/samtupy/toga/pkg/errors"
	"github.com/samtupy/toga/pkg/sources"
	togatest "github.com/samtupy/toga/pkg/testing"
	"github.com/samtupy/toga/pkg/widgets"
)

// changeCounter counts OnChange firings for a Selection.
type changeCounter struct {
	count int
}

func (c *changeCounter) fn() func(*widgets.Selection) {
	return func(*widgets.Selection) { c.count++ }
}

func (c *changeCounter) take(t *testing.T, want int, context string) {
	t.Helper()
	if c.count != want {
		t.Errorf("%s: OnChange fired %d times, want %d", context, c.count, want)
	}
	c.count = 0
}

func newSelection(t *testing.T, cfg widgets.SelectionConfig) *widgets.Selection {
	t.Helper()
	sel, err := widgets.NewSelection(cfg)
	if err != nil {
		t.Fatalf("NewSelection failed: %v", err)
	}
	return sel
}

func assertTitles(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) == 0 && len(want) == 0 {
		return
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("titles = %v, want %v", got, want)
	}
}

func TestSelection_NoBackendRegistered(t *testing.T) {
	_, err := widgets.NewSelection(widgets.SelectionConfig{})
	if err == nil {
		t.Fatal("expected error with no backend registered")
	}
}

// The selection builds display titles from a range of raw data shapes.
func TestSelection_ItemTitles(t *testing.T) {
	factory := togatest.Install(t)
	counter := &changeCounter{}
	sel := newSelection(t, widgets.SelectionConfig{OnChange: counter.fn()})
	probe := factory.Selections[0]
	counter.take(t, 1, "initial empty binding")

	cases := []struct {
		name          string
		items         any
		display       []string
		selectedTitle string
	}{
		{"empty list", []string{}, []string{}, ""},
		{"strings", []string{"first", "second", "third"}, []string{"first", "second", "third"}, "first"},
		{"ints", []int{111, 222, 333}, []string{"111", "222", "333"}, "111"},
		{"tuples", [][]any{{"first", 111}, {"second", 222}, {"third", 333}}, []string{"first", "second", "third"}, "first"},
		{"maps", []map[string]any{{"value": 111}, {"value": 222}, {"value": 333}}, []string{"111", "222", "333"}, "111"},
	}

	for _, tc := range cases {
		if err := sel.SetItems(tc.items); err != nil {
			t.Fatalf("%s: SetItems failed: %v", tc.name, err)
		}
		assertTitles(t, probe.Titles(), tc.display)
		if got := probe.SelectedTitle(); got != tc.selectedTitle {
			t.Errorf("%s: selected title = %q, want %q", tc.name, got, tc.selectedTitle)
		}
		counter.take(t, 1, tc.name)
	}
}

func TestSelection_AdoptExplicitSource(t *testing.T) {
	factory := togatest.Install(t)
	counter := &changeCounter{}
	sel := newSelection(t, widgets.SelectionConfig{Accessor: "name", OnChange: counter.fn()})
	probe := factory.Selections[0]
	counter.take(t, 1, "initial binding")

	src, err := sources.NewListSource([]string{"name", "value"}, []map[string]any{
		{"name": "first", "value": 111},
		{"name": "second", "value": 222},
		{"name": "third", "value": 333},
	})
	if err != nil {
		t.Fatalf("NewListSource failed: %v", err)
	}
	if err := sel.SetItems(src); err != nil {
		t.Fatalf("SetItems failed: %v", err)
	}

	assertTitles(t, probe.Titles(), []string{"first", "second", "third"})
	if sel.Items() != src {
		t.Error("adopted source should be held by reference")
	}
	if got := sel.Value().Get("name"); got != "first" {
		t.Errorf("selected name = %v, want first", got)
	}
	if got := sel.Value().Get("value"); got != 111 {
		t.Errorf("selected value = %v, want 111", got)
	}
	counter.take(t, 1, "source adoption")
}

func TestSelection_NonIterableItems(t *testing.T) {
	togatest.Install(t)
	sel := newSelection(t, widgets.SelectionConfig{})

	err := sel.SetItems(42)
	if err == nil {
		t.Fatal("expected type error for non-iterable items")
	}
	if !errors.IsType(err) {
		t.Errorf("expected a type error, got %v", err)
	}
}

func TestSelection_ProgrammaticSelect(t *testing.T) {
	togatest.Install(t)
	counter := &changeCounter{}
	sel := newSelection(t, widgets.SelectionConfig{Items: []string{"first", "second", "third"}})
	sel.SetOnChange(counter.fn())

	// Selecting the already-selected value does not fire.
	if err := sel.Select("first"); err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	counter.take(t, 0, "re-select current value")

	if err := sel.Select("second"); err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if got := sources.Title(sel.Value(), "value"); got != "second" {
		t.Errorf("value = %q, want second", got)
	}
	counter.take(t, 1, "select new value")
}

func TestSelection_SelectNonMember(t *testing.T) {
	togatest.Install(t)
	counter := &changeCounter{}
	sel := newSelection(t, widgets.SelectionConfig{Items: []string{"first"}})
	sel.SetOnChange(counter.fn())

	err := sel.Select("stranger")
	if !errors.IsMembership(err) {
		t.Fatalf("expected membership error, got %v", err)
	}
	if got := sources.Title(sel.Value(), "value"); got != "first" {
		t.Errorf("failed Select changed the value to %q", got)
	}
	counter.take(t, 0, "failed select")
}

func TestSelection_SetValueForeignRow(t *testing.T) {
	togatest.Install(t)
	sel := newSelection(t, widgets.SelectionConfig{Items: []string{"first"}})
	foreign, _ := sources.WrapSource([]string{"stranger"})

	if err := sel.SetValue(foreign.At(0)); !errors.IsMembership(err) {
		t.Fatalf("expected membership error, got %v", err)
	}
}

func TestSelection_UserSelection(t *testing.T) {
	factory := togatest.Install(t)
	counter := &changeCounter{}
	sel := newSelection(t, widgets.SelectionConfig{Items: []string{"first", "second", "third"}})
	sel.SetOnChange(counter.fn())
	probe := factory.Selections[0]

	probe.SimulateSelect(1)
	if got := sources.Title(sel.Value(), "value"); got != "second" {
		t.Errorf("value after user selection = %q, want second", got)
	}
	counter.take(t, 1, "user selection")

	// Reporting the same index again is idempotent.
	probe.SimulateSelect(1)
	counter.take(t, 0, "repeated user selection")
}

// An index that resolves to no row is not a pick: the selection and the
// change handler are untouched.
func TestSelection_UserSelectionOutOfRangeIgnored(t *testing.T) {
	factory := togatest.Install(t)
	counter := &changeCounter{}
	sel := newSelection(t, widgets.SelectionConfig{Items: []string{"first", "second"}})
	sel.SetOnChange(counter.fn())
	probe := factory.Selections[0]

	probe.SimulateSelect(5)
	if got := sources.Title(sel.Value(), "value"); got != "first" {
		t.Errorf("value after out-of-range report = %q, want first", got)
	}
	counter.take(t, 0, "out-of-range report")

	probe.SimulateSelect(-1)
	if sel.Value() == nil {
		t.Error("negative report cleared the selection")
	}
	counter.take(t, 0, "negative report")
}

// Full source-mutation scenario from the original test suite: the widget
// tracks structural changes and keeps the selection by identity.
func TestSelection_SourceChanges(t *testing.T) {
	factory := togatest.Install(t)
	counter := &changeCounter{}
	sel := newSelection(t, widgets.SelectionConfig{Accessor: "name", OnChange: counter.fn()})
	probe := factory.Selections[0]
	counter.take(t, 1, "initial binding")

	src, err := sources.NewListSource([]string{"name", "value"}, []map[string]any{
		{"name": "first", "value": 111},
		{"name": "second", "value": 222},
		{"name": "third", "value": 333},
	})
	if err != nil {
		t.Fatalf("NewListSource failed: %v", err)
	}
	if err := sel.SetItems(src); err != nil {
		t.Fatalf("SetItems failed: %v", err)
	}
	counter.take(t, 1, "source adoption")

	selected := sel.Value()

	// Append: selection untouched.
	src.Append(map[string]any{"name": "new 1", "value": 999})
	assertTitles(t, probe.Titles(), []string{"first", "second", "third", "new 1"})
	if sel.Value() != selected {
		t.Error("append disturbed the selection identity")
	}
	counter.take(t, 0, "append")

	// Insert before the selection: selection untouched.
	if _, err := src.Insert(0, map[string]any{"name": "new 2", "value": 888}); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	assertTitles(t, probe.Titles(), []string{"new 2", "first", "second", "third", "new 1"})
	if sel.Value() != selected {
		t.Error("insert disturbed the selection identity")
	}
	counter.take(t, 0, "insert")

	// Retitle the selected row: display updates, no change event.
	if err := src.At(1).Set("name", "updated"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	assertTitles(t, probe.Titles(), []string{"new 2", "updated", "second", "third", "new 1"})
	if sel.Value() != selected {
		t.Error("retitling the selected row disturbed its identity")
	}
	counter.take(t, 0, "retitle selected")

	// Retitle a non-selected row.
	if err := src.At(0).Set("name", "revised"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	assertTitles(t, probe.Titles(), []string{"revised", "updated", "second", "third", "new 1"})
	counter.take(t, 0, "retitle non-selected")

	// Remove the selected row: the first remaining row becomes selected and
	// the change fires once.
	if err := src.Remove(selected); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	assertTitles(t, probe.Titles(), []string{"revised", "second", "third", "new 1"})
	selected = src.At(0)
	if sel.Value() != selected {
		t.Errorf("selection after removal = %v, want first row", sel.Value())
	}
	counter.take(t, 1, "remove selected")

	// Remove a non-selected row.
	if err := src.Remove(src.At(2)); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if sel.Value() != selected {
		t.Error("removing a non-selected row disturbed the selection")
	}
	counter.take(t, 0, "remove non-selected")

	// Clear: selection becomes nil, one firing.
	src.Clear()
	assertTitles(t, probe.Titles(), nil)
	if sel.Value() != nil {
		t.Errorf("selection after clear = %v, want nil", sel.Value())
	}
	counter.take(t, 1, "clear")

	// Clearing again: still empty, no firing.
	src.Clear()
	counter.take(t, 0, "clear empty")

	// Inserting into the empty source selects the new row.
	if _, err := src.Insert(0, map[string]any{"name": "new 3", "value": 777}); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	assertTitles(t, probe.Titles(), []string{"new 3"})
	if sel.Value() != src.At(0) {
		t.Error("insert into empty source should select the new row")
	}
	counter.take(t, 1, "insert into empty")
}

func TestSelection_RemoveSelectedFallsBackToFirst(t *testing.T) {
	togatest.Install(t)
	counter := &changeCounter{}
	sel := newSelection(t, widgets.SelectionConfig{Items: []string{"first", "second", "third"}})
	sel.SetOnChange(counter.fn())
	src := sel.Items()

	if err := sel.Select("third"); err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	counter.take(t, 1, "select last")

	if err := src.Remove(src.At(2)); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if got := sources.Title(sel.Value(), "value"); got != "first" {
		t.Errorf("selection after removing last = %q, want first", got)
	}
	counter.take(t, 1, "remove selected last row")
}

func TestSelection_RemoveOnlyRow(t *testing.T) {
	togatest.Install(t)
	counter := &changeCounter{}
	sel := newSelection(t, widgets.SelectionConfig{Items: []string{"only"}})
	sel.SetOnChange(counter.fn())
	src := sel.Items()

	if err := src.Remove(src.At(0)); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if sel.Value() != nil {
		t.Errorf("selection = %v after removing the only row, want nil", sel.Value())
	}
	counter.take(t, 1, "remove only row")
}

func TestSelection_EndToEnd(t *testing.T) {
	factory := togatest.Install(t)
	counter := &changeCounter{}
	sel := newSelection(t, widgets.SelectionConfig{Accessor: "title"})
	probe := factory.Selections[0]

	src, err := sources.NewListSource([]string{"title", "value"}, [][]any{
		{"first", 111},
		{"second", 222},
		{"third", 333},
	})
	if err != nil {
		t.Fatalf("NewListSource failed: %v", err)
	}
	sel.SetOnChange(counter.fn())
	if err := sel.SetItems(src); err != nil {
		t.Fatalf("SetItems failed: %v", err)
	}

	assertTitles(t, probe.Titles(), []string{"first", "second", "third"})
	if got := sources.Title(sel.Value(), "title"); got != "first" {
		t.Errorf("initial selection = %q, want first", got)
	}
	counter.take(t, 1, "initial binding")

	if _, err := src.Insert(0, map[string]any{"title": "new", "value": 999}); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	assertTitles(t, probe.Titles(), []string{"new", "first", "second", "third"})
	if got := sources.Title(sel.Value(), "title"); got != "first" {
		t.Errorf("selection after insert = %q, want first", got)
	}
	counter.take(t, 0, "insert before selection")

	if err := src.Remove(sel.Value()); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if got := sources.Title(sel.Value(), "title"); got != "new" {
		t.Errorf("selection after removal = %q, want new", got)
	}
	counter.take(t, 1, "remove selected")
}

func TestSelection_SharedSourceIndependentBindings(t *testing.T) {
	factory := togatest.Install(t)
	src, err := sources.NewListSource([]string{"value"}, []string{"first", "second", "third"})
	if err != nil {
		t.Fatalf("NewListSource failed: %v", err)
	}

	a := newSelection(t, widgets.SelectionConfig{Items: src})
	b := newSelection(t, widgets.SelectionConfig{Items: src})

	if err := a.Select("third"); err != nil {
		t.Fatalf("Select failed: %v", err)
	}

	// Both bindings share row identities but not selection state.
	if a.Value() != src.At(2) {
		t.Error("binding a should select the third row")
	}
	if b.Value() != src.At(0) {
		t.Error("binding b's selection should be undisturbed")
	}

	// A structural mutation reaches both displays.
	src.Append("fourth")
	for i, probe := range factory.Selections {
		titles := probe.Titles()
		if len(titles) != 4 {
			t.Errorf("probe %d shows %d titles, want 4", i, len(titles))
		}
	}
}

func TestSelection_DetachesFromReplacedSource(t *testing.T) {
	factory := togatest.Install(t)
	sel := newSelection(t, widgets.SelectionConfig{Items: []string{"first"}})
	probe := factory.Selections[0]
	old := sel.Items()

	if err := sel.SetItems([]string{"alpha", "beta"}); err != nil {
		t.Fatalf("SetItems failed: %v", err)
	}
	probe.Reset()

	// Mutating the replaced source must not reach the widget.
	old.Append("ghost")
	if got := probe.ActionCount("InsertAt"); got != 0 {
		t.Errorf("replaced source still drives the backend (%d InsertAt calls)", got)
	}
	assertTitles(t, probe.Titles(), []string{"alpha", "beta"})
}

func TestSelection_EnabledRoutedToBackend(t *testing.T) {
	factory := togatest.Install(t)
	sel := newSelection(t, widgets.SelectionConfig{})
	probe := factory.Selections[0]

	sel.SetEnabled(false)
	if probe.Enabled() {
		t.Error("backend should be disabled")
	}
	if sel.Enabled() {
		t.Error("widget should report disabled")
	}
	sel.SetEnabled(true)
	if !probe.Enabled() {
		t.Error("backend should be re-enabled")
	}
}

func TestSelection_HasStableID(t *testing.T) {
	togatest.Install(t)
	a := newSelection(t, widgets.SelectionConfig{})
	b := newSelection(t, widgets.SelectionConfig{})

	if a.ID() == "" {
		t.Error("widget ID should not be empty")
	}
	if a.ID() == b.ID() {
		t.Error("widget IDs should be unique")
	}
}
