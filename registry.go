package kwrepr

import (
	"fmt"
	"io"
	"reflect"
	"sync"
)

// registry holds the engines attached after the fact, keyed by struct
// type. Registration normally happens in init functions but is safe at
// any point.
var registry = struct {
	sync.RWMutex
	m map[reflect.Type]*engine
}{m: make(map[reflect.Type]*engine)}

// Register attaches a representation to T imperatively, for types not
// under the caller's definition control. It is the same wiring New
// performs, made visible to Sprint and Wrap. Registering a type again
// replaces its options.
func Register[T any](opts Options) error {
	return RegisterType(reflect.TypeOf((*T)(nil)).Elem(), opts)
}

// RegisterType is Register for a reflect.Type held at runtime.
func RegisterType(t reflect.Type, opts Options) error {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	eng, err := newEngine(t, opts)
	if err != nil {
		return err
	}

	registry.Lock()
	registry.m[t] = eng
	registry.Unlock()
	return nil
}

// lookupEngine returns the registered engine for v's type, following
// pointers.
func lookupEngine(v any) *engine {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return nil
	}

	registry.RLock()
	defer registry.RUnlock()
	return registry.m[t]
}

// Sprint renders v using its registered representation. It fails with
// ErrNotRegistered when v's type was never registered.
func Sprint(v any) (string, error) {
	eng := lookupEngine(v)
	if eng == nil {
		return "", fmt.Errorf("%w: %T", ErrNotRegistered, v)
	}
	return eng.render(v)
}

// Fprint renders v to w using its registered representation.
func Fprint(w io.Writer, v any) error {
	s, err := Sprint(v)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s)
	return err
}

// Value adapts an arbitrary value to fmt.Stringer and fmt.Formatter,
// so call sites can route any value through its keyword representation
// without touching the type:
//
//	fmt.Println(kwrepr.Wrap(user))
//
// The registered options are used when the type is registered; default
// options otherwise. Non-struct values fall back to the bounded value
// renderer.
type Value struct {
	v any
}

// Wrap wraps v for rendering through fmt.
func Wrap(v any) Value {
	return Value{v: v}
}

// String implements fmt.Stringer.
func (w Value) String() string {
	if eng := lookupEngine(w.v); eng != nil {
		return eng.renderString(w.v)
	}

	t := reflect.TypeOf(w.v)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t != nil && t.Kind() == reflect.Struct {
		eng, err := newEngine(t, DefaultOptions())
		if err == nil {
			return eng.renderString(w.v)
		}
	}
	return newValueRenderer(ReprOptions{}).Render(w.v)
}

// Format implements fmt.Formatter. Every verb renders the keyword
// representation; width and precision are ignored.
func (w Value) Format(f fmt.State, _ rune) {
	io.WriteString(f, w.String())
}
