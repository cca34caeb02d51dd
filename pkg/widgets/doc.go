// Package widgets provides the platform-independent widget set.
//
// Widgets present a uniform API and delegate rendering and native event
// handling to the backend registered with the backend package. List-backed
// widgets (Selection, Table) bind to a sources.ListSource and stay
// synchronized with it through the sources.Listener contract: structural
// mutations flow into imperative display edits on the backend impl, and
// backend-reported user interaction flows back into selection state.
//
// Selection state is held by row identity, never by index, so the selected
// row survives insertions, removals, and updates of unrelated rows. Each
// widget collapses its externally visible changes into a single on-change
// notification that fires at most once per logical change.
//
// # Creation Pattern
//
// Widgets are long-lived mutable objects created with NewX constructors
// taking a config struct:
//
//	sel, err := widgets.NewSelection(widgets.SelectionConfig{
//	    Items: []string{"first", "second", "third"},
//	    OnChange: func(s *widgets.Selection) {
//	        fmt.Println("selected:", sources.Title(s.Value(), "value"))
//	    },
//	})
//
// A backend must be registered before any widget is created.
package widgets
