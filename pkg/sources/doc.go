// Package sources provides the observable data-binding core of the toolkit.
//
// This package defines the types that list-backed widgets bind to:
// Source, ListSource, and Row.
//
// # Core Types
//
// Source is an embeddable observer base: a registry of listeners plus typed
// notification dispatch. It has no notion of its own payload; any stateful,
// externally observed model can embed it.
//
// ListSource is an ordered, mutable Source of Rows. Raw heterogeneous input
// (scalars, slices, maps, structs) is normalized eagerly into Rows addressed
// by a declared list of named accessors. Every structural mutation (append,
// insert, remove, clear) emits exactly one event; an in-place attribute
// update on a contained Row emits exactly one change event.
//
// Row wraps one element of raw input behind the declared accessor set.
// A Row keeps stable identity for the lifetime of its logical entry, which
// is what lets a widget's selection survive unrelated mutations.
//
// # Binding
//
// Widgets implement Listener (usually by embedding BaseListener and
// overriding only the events they care about) and attach with AddListener.
// Dispatch is synchronous and re-entrant: the listener set is snapshotted
// before iteration, so a callback may attach or detach listeners, or mutate
// the same source, without corrupting dispatch for the outer event.
//
// # Constructor Conventions
//
// Sources are long-lived mutable objects and use NewX() constructors:
//
//	src, err := sources.NewListSource([]string{"name", "value"}, data)
//	row := src.Append(map[string]any{"name": "first", "value": 111})
package sources
