package widgets

import "github.com/samtupy/toga/pkg/backend"

// SwitchConfig configures a new Switch.
type SwitchConfig struct {
	// Label is the text shown beside the switch.
	Label string
	// Value is the initial on/off state.
	Value bool
	// OnChange is invoked whenever the value changes, programmatically or
	// by user interaction.
	OnChange func(*Switch)
}

// Switch is a labelled boolean toggle.
type Switch struct {
	Widget

	impl     backend.SwitchImpl
	label    string
	value    bool
	onChange func(*Switch)
}

// NewSwitch creates a switch widget on the current backend.
func NewSwitch(cfg SwitchConfig) (*Switch, error) {
	factory, err := backend.Current()
	if err != nil {
		return nil, err
	}
	impl := factory.CreateSwitch()
	s := &Switch{
		Widget:   newWidget(impl),
		impl:     impl,
		label:    cfg.Label,
		value:    cfg.Value,
		onChange: cfg.OnChange,
	}
	impl.SetClient(s)
	impl.SetLabel(cfg.Label)
	impl.SetValue(cfg.Value)
	return s, nil
}

// Label returns the switch label.
func (s *Switch) Label() string {
	return s.label
}

// SetLabel sets the switch label.
func (s *Switch) SetLabel(label string) {
	s.label = label
	s.impl.SetLabel(label)
}

// Value returns the current on/off state.
func (s *Switch) Value() bool {
	return s.value
}

// SetValue sets the on/off state. Setting the current value again is a
// no-op and does not fire OnChange.
func (s *Switch) SetValue(value bool) {
	if s.value == value {
		return
	}
	s.value = value
	s.impl.SetValue(value)
	s.fireChange()
}

// Toggle flips the current state.
func (s *Switch) Toggle() {
	s.SetValue(!s.value)
}

// SetOnChange replaces the change handler.
func (s *Switch) SetOnChange(fn func(*Switch)) {
	s.onChange = fn
}

// UserToggled implements backend.SwitchClient.
func (s *Switch) UserToggled(value bool) {
	if s.value == value {
		return
	}
	s.value = value
	s.fireChange()
}

func (s *Switch) fireChange() {
	if s.onChange != nil {
		s.onChange(s)
	}
}
