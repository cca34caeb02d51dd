package sources

import (
	"fmt"
	"reflect"

	togaerrors "github.com/samtupy/toga/pkg/errors"
)

// ListSource is an ordered, mutable Source of Rows.
//
// The sequence order is the canonical display order. Every structural
// mutation is transactional: it is either fully applied and emits exactly
// one event, or it fails and performs no mutation and emits no event.
//
// A ListSource may be observed by any number of independent bindings at
// once; each sees the same row identities and the same event stream.
type ListSource struct {
	Source

	accessors []string
	rows      []*Row
}

// NewListSource creates a list source with the declared accessors and
// converts each element of data into a Row eagerly.
//
// data may be nil (an empty source), a slice, or an array; each element is
// converted per the rules on newRow. Any other data value is a type error.
// At least one accessor must be declared.
func NewListSource(accessors []string, data any) (*ListSource, error) {
	if len(accessors) == 0 {
		return nil, togaerrors.New("sources.NewListSource", togaerrors.KindType,
			&togaerrors.TypeError{Expected: "at least one accessor", Got: accessors})
	}
	s := &ListSource{accessors: append([]string(nil), accessors...)}
	if data == nil {
		return s, nil
	}
	v := reflect.ValueOf(data)
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			s.rows = append(s.rows, newRow(s, v.Index(i).Interface()))
		}
	default:
		return nil, togaerrors.New("sources.NewListSource", togaerrors.KindType,
			&togaerrors.TypeError{Expected: "slice, array or nil", Got: data})
	}
	return s, nil
}

// WrapSource is the explicit factory used at binding boundaries to turn raw
// application data into a ListSource. When no accessors are given the single
// accessor "value" is declared, which is what lets a bare list of scalars
// populate a selection widget directly.
func WrapSource(data any, accessors ...string) (*ListSource, error) {
	if len(accessors) == 0 {
		accessors = []string{"value"}
	}
	return NewListSource(accessors, data)
}

// Accessors returns the declared accessor names in order.
func (s *ListSource) Accessors() []string {
	return append([]string(nil), s.accessors...)
}

// Len returns the current number of rows.
func (s *ListSource) Len() int {
	return len(s.rows)
}

// At returns the row at index, or nil when index is out of range.
func (s *ListSource) At(index int) *Row {
	if index < 0 || index >= len(s.rows) {
		return nil
	}
	return s.rows[index]
}

// Rows returns a snapshot of the rows in display order.
func (s *ListSource) Rows() []*Row {
	snapshot := make([]*Row, len(s.rows))
	copy(snapshot, s.rows)
	return snapshot
}

// Index returns the position of row, or a membership error when row is not
// a member of this source.
func (s *ListSource) Index(row *Row) (int, error) {
	for i, candidate := range s.rows {
		if candidate == row {
			return i, nil
		}
	}
	return -1, togaerrors.New("sources.ListSource.Index", togaerrors.KindMembership,
		&togaerrors.MembershipError{Source: "ListSource", Value: row})
}

// Find returns the first row whose accessor value equals value, comparing
// with reflect.DeepEqual, or a membership error when no row matches.
func (s *ListSource) Find(accessor string, value any) (*Row, error) {
	for _, row := range s.rows {
		if reflect.DeepEqual(row.Get(accessor), value) {
			return row, nil
		}
	}
	return nil, togaerrors.New("sources.ListSource.Find", togaerrors.KindMembership,
		&togaerrors.MembershipError{Source: "ListSource", Value: value})
}

// Append converts value into a Row, appends it, and fires one insert event.
func (s *ListSource) Append(value any) *Row {
	row := newRow(s, value)
	s.rows = append(s.rows, row)
	s.NotifyRowInserted(len(s.rows)-1, row)
	return row
}

// Insert converts value into a Row and inserts it at index, shifting
// subsequent rows, then fires one insert event. index must satisfy
// 0 <= index <= Len; otherwise an index error is returned and nothing
// happens.
func (s *ListSource) Insert(index int, value any) (*Row, error) {
	if index < 0 || index > len(s.rows) {
		return nil, togaerrors.New("sources.ListSource.Insert", togaerrors.KindIndex,
			fmt.Errorf("%w: %d with %d rows", togaerrors.ErrIndexOutOfRange, index, len(s.rows)))
	}
	row := newRow(s, value)
	s.rows = append(s.rows, nil)
	copy(s.rows[index+1:], s.rows[index:])
	s.rows[index] = row
	s.NotifyRowInserted(index, row)
	return row, nil
}

// Remove removes row and fires one remove event naming the position the row
// occupied. Removing a row that is not a member is a membership error and
// fires nothing.
func (s *ListSource) Remove(row *Row) error {
	index, err := s.Index(row)
	if err != nil {
		return togaerrors.New("sources.ListSource.Remove", togaerrors.KindMembership,
			&togaerrors.MembershipError{Source: "ListSource", Value: row})
	}
	s.rows = append(s.rows[:index], s.rows[index+1:]...)
	s.NotifyRowRemoved(index, row)
	return nil
}

// Clear removes all rows and fires one cleared event. The event fires even
// when the source was already empty.
func (s *ListSource) Clear() {
	s.rows = nil
	s.NotifyCleared()
}

// ordinal returns the position of accessor in the declared accessor list,
// or -1 when it is not declared.
func (s *ListSource) ordinal(accessor string) int {
	for i, declared := range s.accessors {
		if declared == accessor {
			return i
		}
	}
	return -1
}
