package widgets

import (
	"github.com/google/uuid"

	"github.com/samtupy/toga/pkg/backend"
)

// Widget is the base embedded by every widget: a stable identifier and the
// enabled flag, routed to the backend impl.
type Widget struct {
	id      string
	impl    backend.WidgetImpl
	enabled bool
}

func newWidget(impl backend.WidgetImpl) Widget {
	return Widget{id: uuid.NewString(), impl: impl, enabled: true}
}

// ID returns the widget's unique identifier.
func (w *Widget) ID() string {
	return w.id
}

// Enabled reports whether the widget accepts user interaction.
func (w *Widget) Enabled() bool {
	return w.enabled
}

// SetEnabled enables or disables user interaction.
func (w *Widget) SetEnabled(enabled bool) {
	w.enabled = enabled
	w.impl.SetEnabled(enabled)
}
