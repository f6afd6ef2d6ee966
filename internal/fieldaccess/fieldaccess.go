// Package fieldaccess builds per-type field tables and reads struct
// fields through them, including unexported fields.
//
// A Table is constructed once when a type is attached and consulted on
// every render. Fields are recorded in declaration order, which is the
// order the zero value lays them out and the order callers expect to
// see them printed in.
//
// Unexported fields cannot be read through reflect.Value.Interface
// directly, so Read rebuilds an addressable view of the field through
// its address. The caller must pass an addressable struct value.
package fieldaccess

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unsafe"
)

// ErrNotStruct indicates the registered type is not a struct.
var ErrNotStruct = errors.New("fieldaccess: not a struct type")

// Field describes a single struct field in its declaring type.
type Field struct {
	// Name is the field's declared name.
	Name string

	// Index locates the field for reflect.Value.FieldByIndex.
	Index []int

	// Private reports whether the name starts with an underscore.
	// Underscore-led names are hidden by convention.
	Private bool

	// Exported reports whether the field is exported. Unexported
	// fields are read through their address.
	Exported bool
}

// Table is an ordered field index for one struct type, built once at
// attachment time. It is read-only after construction and safe for
// concurrent use.
type Table struct {
	typ    reflect.Type
	fields []Field
	byName map[string]int
}

// NewTable builds the field table for t.
//
// Fields appear in declaration order. Anonymous (embedded) fields are
// recorded under their type name like any other field; promoted fields
// of the embedded type are not flattened into the table.
func NewTable(t reflect.Type) (*Table, error) {
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %s", ErrNotStruct, t)
	}

	tbl := &Table{
		typ:    t,
		fields: make([]Field, 0, t.NumField()),
		byName: make(map[string]int, t.NumField()),
	}
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		f := Field{
			Name:     sf.Name,
			Index:    sf.Index,
			Private:  strings.HasPrefix(sf.Name, "_"),
			Exported: sf.IsExported(),
		}
		tbl.byName[f.Name] = len(tbl.fields)
		tbl.fields = append(tbl.fields, f)
	}
	return tbl, nil
}

// Type returns the struct type the table was built for.
func (t *Table) Type() reflect.Type {
	return t.typ
}

// Fields returns all fields in declaration order. The returned slice
// must not be modified.
func (t *Table) Fields() []Field {
	return t.fields
}

// Lookup returns the field with the given name.
func (t *Table) Lookup(name string) (Field, bool) {
	i, ok := t.byName[name]
	if !ok {
		return Field{}, false
	}
	return t.fields[i], true
}

// Read returns the value of f in v as an interface value.
//
// v must be an addressable value of the table's type. Exported fields
// are read directly; unexported fields are rebuilt through their
// address so the result is a plain interface value either way.
func (t *Table) Read(v reflect.Value, f Field) any {
	fv := v.FieldByIndex(f.Index)
	if !fv.CanInterface() {
		fv = reflect.NewAt(fv.Type(), unsafe.Pointer(fv.UnsafeAddr())).Elem()
	}
	return fv.Interface()
}
