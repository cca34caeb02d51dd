package sources

// Listener receives structural events from a Source.
//
// Implementations rarely care about every event. Embed BaseListener to get
// no-op defaults and override only the methods you need:
//
//	type titleWatcher struct {
//	    sources.BaseListener
//	}
//
//	func (w *titleWatcher) RowChanged(row *sources.Row) { ... }
type Listener interface {
	// RowInserted is called after a row has been inserted at index.
	RowInserted(index int, row *Row)
	// RowRemoved is called after a row has been removed. index is the
	// position the row occupied before removal.
	RowRemoved(index int, row *Row)
	// RowChanged is called after an attribute of a contained row changed
	// in place. The row's position is unchanged.
	RowChanged(row *Row)
	// Cleared is called after all rows have been removed. It fires even
	// when the source was already empty so observers can reset derived
	// state unconditionally.
	Cleared()
}

// BaseListener provides no-op implementations of every Listener method.
type BaseListener struct{}

func (BaseListener) RowInserted(index int, row *Row) {}
func (BaseListener) RowRemoved(index int, row *Row)  {}
func (BaseListener) RowChanged(row *Row)             {}
func (BaseListener) Cleared()                        {}
