package kwrepr

const (
	DefaultMaxString = 30
	DefaultMaxSlice  = 6
	DefaultMaxMap    = 4
	DefaultMaxDepth  = 6
	DefaultMaxOther  = 30
)

// ComputeFunc derives a field's value from an instance at render time.
// The instance is passed exactly as it was handed to the renderer.
//
// A returned error that wraps ErrMissingAttribute is treated like an
// absent attribute and participates in Options.SkipMissing. Any other
// error is fatal for the render call.
type ComputeFunc func(v any) (any, error)

// ComputedField pairs an output field name with its compute function.
// Computed fields render after attribute-derived fields, in the order
// they were declared.
type ComputedField struct {
	Name string
	Func ComputeFunc
}

// Delims is the delimiter pair wrapped around the rendered field list.
type Delims struct {
	Open  string
	Close string
}

// ReprOptions bounds the default value renderer. A zero limit selects
// the package default; a negative limit disables the cap.
type ReprOptions struct {
	// MaxString caps the rendered length of strings, in runes.
	// Longer strings keep their head and tail around a "..." marker.
	// Default: 30
	MaxString int

	// MaxSlice caps the number of slice or array elements shown.
	// Default: 6
	MaxSlice int

	// MaxMap caps the number of map entries shown.
	// Default: 4
	MaxMap int

	// MaxDepth caps nesting; deeper containers render as "[...]" or
	// "{...}".
	// Default: 6
	MaxDepth int

	// MaxOther caps the rendered length of everything else (structs,
	// Stringer output, channels), in runes, truncating with "...".
	// Default: 30
	MaxOther int
}

// withDefaults resolves zero and negative limits.
func (o ReprOptions) withDefaults() ReprOptions {
	resolve := func(v, def int) int {
		switch {
		case v == 0:
			return def
		case v < 0:
			return int(^uint(0) >> 1)
		default:
			return v
		}
	}
	o.MaxString = resolve(o.MaxString, DefaultMaxString)
	o.MaxSlice = resolve(o.MaxSlice, DefaultMaxSlice)
	o.MaxMap = resolve(o.MaxMap, DefaultMaxMap)
	o.MaxDepth = resolve(o.MaxDepth, DefaultMaxDepth)
	o.MaxOther = resolve(o.MaxOther, DefaultMaxOther)
	return o
}

// Options controls which fields of a type are rendered and how. One
// Options value is attached per type and serves every instance of it;
// it is consulted fresh on each render but never mutated after
// attachment.
type Options struct {
	// Include names the exact fields to render, in order. Private
	// names are allowed and no filtering applies. Mutually exclusive
	// with Exclude.
	Include []string

	// Exclude names attribute fields to drop. Only consulted when
	// Include is empty.
	Exclude []string

	// ExcludePrivate drops fields whose name starts with an
	// underscore from the discovered set. It never applies to an
	// explicit Include list or to computed fields.
	// Default: true
	ExcludePrivate bool

	// Compute appends derived fields after the attribute fields. Each
	// function runs at most once per render, never memoized across
	// renders. A computed name that collides with an attribute name
	// overrides the attribute's value in place.
	Compute []ComputedField

	// FormatSpec maps field names to format specifiers (precision,
	// width, alignment, base conversion). Fields without an entry
	// render through the bounded value renderer.
	FormatSpec map[string]string

	// SkipMissing silently omits fields that cannot be resolved
	// instead of failing the render. Format errors are never skipped.
	// Default: false
	SkipMissing bool

	// Delimiters wraps the field list.
	// Default: "(" and ")"
	Delimiters Delims

	// Repr bounds the default value renderer for nested values.
	Repr ReprOptions
}

// DefaultOptions returns the defaults for attachment: discovered
// fields, private fields hidden, parenthesis delimiters, and the
// renderer limits above.
func DefaultOptions() Options {
	return Options{
		ExcludePrivate: true,
		Delimiters:     Delims{Open: "(", Close: ")"},
	}
}
