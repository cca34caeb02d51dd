// Package testing provides the widget test harness.
//
// Install registers the recording dummy backend for the duration of a test,
// so widget tests can assert on the exact bridge calls a native control
// would have received:
//
//	factory := togatest.Install(t)
//	sel, _ := widgets.NewSelection(widgets.SelectionConfig{Items: []string{"a", "b"}})
//	probe := factory.Selections[0]
//	// assert on probe.Titles(), probe.Actions(), ...
package testing

import (
	"testing"

	"github.com/samtupy/toga/pkg/backend"
	"github.com/samtupy/toga/pkg/backend/dummy"
)

// Install registers a fresh dummy backend and restores the previously
// registered backend when the test finishes.
func Install(t *testing.T) *dummy.Factory {
	t.Helper()
	factory := dummy.NewFactory()
	previous, err := backend.Register(factory)
	if err != nil {
		t.Fatalf("failed to register dummy backend: %v", err)
	}
	t.Cleanup(func() {
		backend.Restore(previous)
	})
	return factory
}
