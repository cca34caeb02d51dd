package sources

// Source is an embeddable observable base: a registry of listeners and the
// dispatch primitives that invoke them.
//
// Dispatch is synchronous and runs on the goroutine that performed the
// mutation. Listeners are invoked in registration order, each exactly once
// per event. The listener set is snapshotted before iteration, so listeners
// may attach or detach (themselves included) during dispatch.
//
// Listeners do not return errors; a panic in a listener propagates to the
// mutating caller immediately and stops dispatch for that event. Listeners
// that can fail should recover internally.
type Source struct {
	listeners []Listener
}

// AddListener registers a listener. Adding the same listener twice makes it
// receive each event twice.
func (s *Source) AddListener(l Listener) {
	if l == nil {
		return
	}
	s.listeners = append(s.listeners, l)
}

// RemoveListener removes the first registration of l. Removing a listener
// that is not registered is a no-op.
func (s *Source) RemoveListener(l Listener) {
	for i, registered := range s.listeners {
		if registered == l {
			s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
			return
		}
	}
}

// Listeners returns a snapshot of the registered listeners.
func (s *Source) Listeners() []Listener {
	snapshot := make([]Listener, len(s.listeners))
	copy(snapshot, s.listeners)
	return snapshot
}

// NotifyRowInserted dispatches a row-inserted event to all listeners.
func (s *Source) NotifyRowInserted(index int, row *Row) {
	for _, l := range s.Listeners() {
		l.RowInserted(index, row)
	}
}

// NotifyRowRemoved dispatches a row-removed event to all listeners.
func (s *Source) NotifyRowRemoved(index int, row *Row) {
	for _, l := range s.Listeners() {
		l.RowRemoved(index, row)
	}
}

// NotifyRowChanged dispatches a row-changed event to all listeners.
func (s *Source) NotifyRowChanged(row *Row) {
	for _, l := range s.Listeners() {
		l.RowChanged(row)
	}
}

// NotifyCleared dispatches a cleared event to all listeners.
func (s *Source) NotifyCleared() {
	for _, l := range s.Listeners() {
		l.Cleared()
	}
}
