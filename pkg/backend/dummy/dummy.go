// Package dummy provides a recording backend for tests.
//
// Every bridge call is recorded as an Action, and each impl exposes its
// current display state so tests can assert on what a native control would
// be showing. Simulate methods drive the inbound user-interaction path the
// way a real backend would.
package dummy

import "fmt"

// Action is one recorded bridge call.
type Action struct {
	// Name is the bridge method name (e.g., "Rebuild", "InsertAt").
	Name string
	// Detail is a formatted description of the arguments.
	Detail string
}

// Recorder accumulates bridge calls for later assertions.
type Recorder struct {
	actions []Action
}

func (r *Recorder) record(name string, format string, args ...any) {
	r.actions = append(r.actions, Action{Name: name, Detail: fmt.Sprintf(format, args...)})
}

// Actions returns every recorded action in call order.
func (r *Recorder) Actions() []Action {
	return append([]Action(nil), r.actions...)
}

// ActionCount returns how many times the named bridge method was called.
func (r *Recorder) ActionCount(name string) int {
	count := 0
	for _, a := range r.actions {
		if a.Name == name {
			count++
		}
	}
	return count
}

// Reset discards all recorded actions.
func (r *Recorder) Reset() {
	r.actions = nil
}

type widgetImpl struct {
	Recorder
	enabled bool
}

func (w *widgetImpl) SetEnabled(enabled bool) {
	w.enabled = enabled
	w.record("SetEnabled", "%t", enabled)
}

// Enabled returns the last enabled state pushed by the widget.
func (w *widgetImpl) Enabled() bool {
	return w.enabled
}
