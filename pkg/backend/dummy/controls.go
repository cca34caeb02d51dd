package dummy

import "github.com/samtupy/toga/pkg/backend"

// Switch is the recording SwitchImpl.
type Switch struct {
	widgetImpl
	label  string
	value  bool
	client backend.SwitchClient
}

func newSwitch() *Switch {
	return &Switch{widgetImpl: widgetImpl{enabled: true}}
}

func (s *Switch) SetLabel(label string) {
	s.label = label
	s.record("SetLabel", "%q", label)
}

func (s *Switch) SetValue(value bool) {
	s.value = value
	s.record("SetValue", "%t", value)
}

func (s *Switch) Value() bool {
	return s.value
}

func (s *Switch) SetClient(client backend.SwitchClient) {
	s.client = client
}

// Label returns the current label text.
func (s *Switch) Label() string {
	return s.label
}

// SimulateToggle drives the inbound path as if the user flipped the switch.
func (s *Switch) SimulateToggle() {
	s.value = !s.value
	if s.client != nil {
		s.client.UserToggled(s.value)
	}
}

// Label is the recording LabelImpl.
type Label struct {
	widgetImpl
	text string
}

func newLabel() *Label {
	return &Label{widgetImpl: widgetImpl{enabled: true}}
}

func (l *Label) SetText(text string) {
	l.text = text
	l.record("SetText", "%q", text)
}

// Text returns the currently displayed text.
func (l *Label) Text() string {
	return l.text
}
