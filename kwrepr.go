package kwrepr

import "reflect"

// Repr is a representation builder attached to one struct type. Build
// one with New at type-definition time and delegate the type's String
// method to it:
//
//	type User struct {
//		ID   int
//		Name string
//	}
//
//	var userRepr = kwrepr.MustNew[User](kwrepr.DefaultOptions())
//
//	func (u User) String() string { return userRepr.String(u) }
//
// A Repr is read-only after construction and safe for concurrent use
// across instances, provided any compute functions are.
type Repr[T any] struct {
	eng *engine
}

// New builds a representation builder for T under opts.
//
// T must be a struct type or a pointer to one. Invalid option
// combinations report ErrConfig here, never later.
func New[T any](opts Options) (*Repr[T], error) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	eng, err := newEngine(t, opts)
	if err != nil {
		return nil, err
	}
	return &Repr[T]{eng: eng}, nil
}

// MustNew is New, panicking on configuration errors. Intended for
// package-level variables where the options are literals.
func MustNew[T any](opts Options) *Repr[T] {
	r, err := New[T](opts)
	if err != nil {
		panic(err)
	}
	return r
}

// Repr renders v. It fails with ErrMissingAttribute when a field
// cannot be resolved and SkipMissing is off, and with ErrFormat when a
// specifier does not fit a value.
func (r *Repr[T]) Repr(v T) (string, error) {
	return r.eng.render(v)
}

// String renders v, folding any error into the output in the fmt
// style ("%!TypeName(error)"). Use Repr when the error matters.
func (r *Repr[T]) String(v T) string {
	return r.eng.renderString(v)
}

// Fields returns the resolved field names in render order: the
// include list or the filtered declared fields, then computed fields.
func (r *Repr[T]) Fields() []string {
	names := make([]string, len(r.eng.plan))
	for i, p := range r.eng.plan {
		names[i] = p.name
	}
	return names
}
