package kwrepr

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// valueRenderer is the bounded default renderer for field values. It
// caps string lengths, element counts, and nesting depth so a huge
// nested structure can never make a representation unreadable. Output
// is deterministic: map entries are ordered by their rendered key.
type valueRenderer struct {
	opts ReprOptions
}

func newValueRenderer(opts ReprOptions) valueRenderer {
	return valueRenderer{opts: opts.withDefaults()}
}

var stringerType = reflect.TypeOf((*fmt.Stringer)(nil)).Elem()

// Render renders v under the configured limits.
func (r valueRenderer) Render(v any) string {
	if v == nil {
		return "nil"
	}
	return r.value(reflect.ValueOf(v), r.opts.MaxDepth)
}

func (r valueRenderer) value(v reflect.Value, depth int) string {
	if !v.IsValid() {
		return "nil"
	}

	// A type that says how to print itself wins, except for nil-able
	// kinds holding nil.
	if v.Type().Implements(stringerType) && v.CanInterface() && !isNil(v) {
		return r.clip(v.Interface().(fmt.Stringer).String())
	}

	switch v.Kind() {
	case reflect.String:
		return r.str(v.String())
	case reflect.Bool:
		return strconv.FormatBool(v.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(v.Uint(), 10)
	case reflect.Float32:
		return strconv.FormatFloat(v.Float(), 'g', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'g', -1, 64)
	case reflect.Complex64, reflect.Complex128:
		return strconv.FormatComplex(v.Complex(), 'g', -1, 128)
	case reflect.Pointer:
		if v.IsNil() {
			return "nil"
		}
		if depth <= 0 {
			return "..."
		}
		// Following a pointer consumes a level so cyclic structures
		// still terminate.
		return r.value(v.Elem(), depth-1)
	case reflect.Interface:
		if v.IsNil() {
			return "nil"
		}
		return r.value(v.Elem(), depth)
	case reflect.Slice, reflect.Array:
		return r.list(v, depth)
	case reflect.Map:
		return r.mapping(v, depth)
	default:
		return r.other(v)
	}
}

func isNil(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return v.IsNil()
	default:
		return false
	}
}

// str quotes s in single quotes, truncating around a "..." marker when
// it exceeds MaxString runes. Head and tail are both kept so the start
// and end of a long value stay visible.
func (r valueRenderer) str(s string) string {
	max := r.opts.MaxString
	if rs := []rune(s); len(rs) > max {
		head := (max - 3) / 2
		if head < 0 {
			head = 0
		}
		tail := max - 3 - head
		if tail < 0 {
			tail = 0
		}
		s = string(rs[:head]) + "..." + string(rs[len(rs)-tail:])
	}
	return quoteSingle(s)
}

// quoteSingle renders s as a single-quoted literal with the usual
// escapes. strconv.Quote does the heavy lifting; only the quote
// characters are swapped afterwards.
func quoteSingle(s string) string {
	q := strconv.Quote(s)
	inner := q[1 : len(q)-1]
	inner = strings.ReplaceAll(inner, `\"`, `"`)
	inner = strings.ReplaceAll(inner, `'`, `\'`)
	return "'" + inner + "'"
}

func (r valueRenderer) list(v reflect.Value, depth int) string {
	if depth <= 0 {
		return "[...]"
	}

	n := v.Len()
	shown := n
	if shown > r.opts.MaxSlice {
		shown = r.opts.MaxSlice
	}

	parts := make([]string, 0, shown+1)
	for i := 0; i < shown; i++ {
		parts = append(parts, r.value(v.Index(i), depth-1))
	}
	if n > shown {
		parts = append(parts, "...")
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (r valueRenderer) mapping(v reflect.Value, depth int) string {
	if depth <= 0 {
		return "{...}"
	}

	type entry struct{ key, val string }
	entries := make([]entry, 0, v.Len())
	iter := v.MapRange()
	for iter.Next() {
		entries = append(entries, entry{
			key: r.value(iter.Key(), depth-1),
			val: r.value(iter.Value(), depth-1),
		})
	}
	// Go map order is random; sort by rendered key for stable output.
	sort.Slice(entries, func(i, j int) bool { return entries[i].key < entries[j].key })

	shown := len(entries)
	if shown > r.opts.MaxMap {
		shown = r.opts.MaxMap
	}
	parts := make([]string, 0, shown+1)
	for _, e := range entries[:shown] {
		parts = append(parts, e.key+": "+e.val)
	}
	if len(entries) > shown {
		parts = append(parts, "...")
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// other covers structs, channels, and funcs through their default fmt
// form, clipped to MaxOther runes.
func (r valueRenderer) other(v reflect.Value) string {
	if !v.CanInterface() {
		return r.clip(v.Type().String())
	}
	return r.clip(fmt.Sprintf("%v", v.Interface()))
}

func (r valueRenderer) clip(s string) string {
	if rs := []rune(s); len(rs) > r.opts.MaxOther {
		return string(rs[:r.opts.MaxOther]) + "..."
	}
	return s
}
