package sources

import (
	"fmt"
	"reflect"
	"strings"

	togaerrors "github.com/samtupy/toga/pkg/errors"
)

// Row is a uniform accessor-addressed wrapper over one element of raw input.
//
// Every row in a ListSource exposes the same attribute set (the source's
// declared accessors). Missing data reads as nil, never as an error. A Row
// keeps stable identity for the lifetime of its entry: in-place attribute
// updates never replace the Row object, so selections held by identity
// survive them.
//
// The row holds a non-owning back-reference to its source, established at
// construction and never re-pointed; Set uses it to emit the change event.
type Row struct {
	source  *ListSource
	backing rowBacking
}

// rowBacking is the tagged variant behind a Row: one resolution strategy per
// raw input shape.
type rowBacking interface {
	get(accessor string, ordinal int) any
	set(accessor string, ordinal int, value any)
}

// Get returns the value of the named accessor, or nil when the accessor is
// not declared by the owning source or the underlying data has no value
// for it.
func (r *Row) Get(accessor string) any {
	ordinal := r.source.ordinal(accessor)
	if ordinal < 0 {
		return nil
	}
	return r.backing.get(accessor, ordinal)
}

// Set updates the named accessor in the row's backing representation and
// fires exactly one change event on the owning source. It returns an error
// if the accessor is not declared by the source; in that case no mutation
// occurs and no event fires.
func (r *Row) Set(accessor string, value any) error {
	ordinal := r.source.ordinal(accessor)
	if ordinal < 0 {
		return togaerrors.New("sources.Row.Set", togaerrors.KindMembership,
			fmt.Errorf("unknown accessor %q", accessor))
	}
	r.backing.set(accessor, ordinal, value)
	r.source.NotifyRowChanged(r)
	return nil
}

// Source returns the ListSource that owns this row.
func (r *Row) Source() *ListSource {
	return r.source
}

// newRow converts one raw element into a Row owned by source.
//
// Conversion is pure and total: absence of data degrades to nil values,
// never to an error.
//
//  1. A slice or array (but not a string or a map) maps positionally onto
//     the accessors; missing trailing positions are nil.
//  2. A string-keyed map maps by key; missing keys are nil.
//  3. Anything else resolves each accessor as a field of the value; a field
//     that is absent yields the value itself for the first accessor and nil
//     for the rest. This lets a bare scalar populate a single-accessor
//     source directly.
func newRow(source *ListSource, value any) *Row {
	return &Row{source: source, backing: newBacking(len(source.accessors), value)}
}

func newBacking(accessorCount int, value any) rowBacking {
	if value == nil {
		return &objectBacking{}
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Map:
		if v.Type().Key().Kind() == reflect.String {
			values := make(map[string]any, v.Len())
			iter := v.MapRange()
			for iter.Next() {
				values[iter.Key().String()] = iter.Value().Interface()
			}
			return &mappingBacking{values: values}
		}
	case reflect.Slice, reflect.Array:
		values := make([]any, accessorCount)
		for i := 0; i < accessorCount && i < v.Len(); i++ {
			values[i] = v.Index(i).Interface()
		}
		return &sequenceBacking{values: values}
	}
	return &objectBacking{value: value}
}

// sequenceBacking holds positionally mapped values, one slot per accessor.
type sequenceBacking struct {
	values []any
}

func (b *sequenceBacking) get(accessor string, ordinal int) any {
	return b.values[ordinal]
}

func (b *sequenceBacking) set(accessor string, ordinal int, value any) {
	b.values[ordinal] = value
}

// mappingBacking holds values keyed by accessor name.
type mappingBacking struct {
	values map[string]any
}

func (b *mappingBacking) get(accessor string, ordinal int) any {
	return b.values[accessor]
}

func (b *mappingBacking) set(accessor string, ordinal int, value any) {
	b.values[accessor] = value
}

// objectBacking retains an arbitrary value and resolves accessors as struct
// fields via reflection. Writes go to the field when it is addressable and
// to an override map otherwise, so Set works uniformly for values, pointers,
// and plain scalars.
type objectBacking struct {
	value     any
	overrides map[string]any
}

func (b *objectBacking) get(accessor string, ordinal int) any {
	if override, ok := b.overrides[accessor]; ok {
		return override
	}
	if field, ok := fieldByAccessor(reflect.ValueOf(b.value), accessor); ok {
		return field.Interface()
	}
	if ordinal == 0 {
		return b.value
	}
	return nil
}

func (b *objectBacking) set(accessor string, ordinal int, value any) {
	if field, ok := fieldByAccessor(reflect.ValueOf(b.value), accessor); ok && field.CanSet() {
		next := reflect.ValueOf(value)
		if value != nil && next.Type().AssignableTo(field.Type()) {
			field.Set(next)
			return
		}
	}
	if b.overrides == nil {
		b.overrides = make(map[string]any)
	}
	b.overrides[accessor] = value
}

// fieldByAccessor resolves an accessor name against the exported fields of a
// struct (or pointer to struct), matching the exact name first and then
// case-insensitively, so accessor "name" resolves field "Name".
func fieldByAccessor(v reflect.Value, accessor string) (reflect.Value, bool) {
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return reflect.Value{}, false
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return reflect.Value{}, false
	}
	t := v.Type()
	if field, ok := t.FieldByName(accessor); ok && field.IsExported() {
		return v.FieldByIndex(field.Index), true
	}
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.IsExported() && strings.EqualFold(field.Name, accessor) {
			return v.Field(i), true
		}
	}
	return reflect.Value{}, false
}
