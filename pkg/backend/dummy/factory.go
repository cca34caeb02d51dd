package dummy

import "github.com/samtupy/toga/pkg/backend"

// Factory creates recording impls. Tests usually install it through
// the testing package rather than registering it directly.
type Factory struct {
	// Selections holds every SelectionImpl created, in creation order.
	Selections []*Selection
	// Tables holds every TableImpl created, in creation order.
	Tables []*Table
	// Switches holds every SwitchImpl created, in creation order.
	Switches []*Switch
	// Labels holds every LabelImpl created, in creation order.
	Labels []*Label
}

// NewFactory creates an empty dummy factory.
func NewFactory() *Factory {
	return &Factory{}
}

func (f *Factory) Name() string {
	return "dummy"
}

func (f *Factory) Requires() string {
	return "v0.1.0"
}

func (f *Factory) CreateSelection() backend.SelectionImpl {
	impl := newSelection()
	f.Selections = append(f.Selections, impl)
	return impl
}

func (f *Factory) CreateTable() backend.TableImpl {
	impl := newTable()
	f.Tables = append(f.Tables, impl)
	return impl
}

func (f *Factory) CreateSwitch() backend.SwitchImpl {
	impl := newSwitch()
	f.Switches = append(f.Switches, impl)
	return impl
}

func (f *Factory) CreateLabel() backend.LabelImpl {
	impl := newLabel()
	f.Labels = append(f.Labels, impl)
	return impl
}
