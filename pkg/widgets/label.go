package widgets

import "github.com/samtupy/toga/pkg/backend"

// LabelConfig configures a new Label.
type LabelConfig struct {
	// Text is the initial displayed text.
	Text string
}

// Label is a static text widget.
type Label struct {
	Widget

	impl backend.LabelImpl
	text string
}

// NewLabel creates a label widget on the current backend.
func NewLabel(cfg LabelConfig) (*Label, error) {
	factory, err := backend.Current()
	if err != nil {
		return nil, err
	}
	impl := factory.CreateLabel()
	l := &Label{Widget: newWidget(impl), impl: impl, text: cfg.Text}
	impl.SetText(cfg.Text)
	return l, nil
}

// Text returns the displayed text.
func (l *Label) Text() string {
	return l.text
}

// SetText sets the displayed text.
func (l *Label) SetText(text string) {
	l.text = text
	l.impl.SetText(text)
}
