package kwrepr

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/joshuapare/kwrepr/internal/fieldaccess"
	"github.com/joshuapare/kwrepr/internal/formatspec"
)

type entryKind int

const (
	// attrEntry reads a struct field.
	attrEntry entryKind = iota
	// computeEntry invokes a compute function.
	computeEntry
	// missingEntry is an Include name that matched neither a field nor
	// a computed field. It resolves at render time so SkipMissing can
	// drop it.
	missingEntry
)

type planEntry struct {
	name  string
	kind  entryKind
	field fieldaccess.Field
	fn    ComputeFunc
}

// engine is the attached representation builder for one struct type.
// Everything in it is resolved once at attachment time: the field
// plan, the parsed format specifiers, and the bounded renderer. An
// engine is read-only after construction and safe for concurrent use,
// provided the compute functions are.
type engine struct {
	typ      reflect.Type
	name     string
	opts     Options
	table    *fieldaccess.Table
	plan     []planEntry
	specs    map[string]formatspec.Spec
	renderer valueRenderer
}

// newEngine validates opts against t and builds the render plan.
//
// Configuration problems (Include and Exclude both set, duplicate
// computed names, malformed format specifiers) surface here as
// ErrConfig, never at render time.
func newEngine(t reflect.Type, opts Options) (*engine, error) {
	if len(opts.Include) > 0 && len(opts.Exclude) > 0 {
		return nil, fmt.Errorf("%w: cannot set both Include and Exclude", ErrConfig)
	}

	table, err := fieldaccess.NewTable(t)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfig, err)
	}

	computeByName := make(map[string]ComputeFunc, len(opts.Compute))
	for _, c := range opts.Compute {
		if c.Name == "" || c.Func == nil {
			return nil, fmt.Errorf("%w: computed field needs a name and a function", ErrConfig)
		}
		if _, dup := computeByName[c.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate computed field %q", ErrConfig, c.Name)
		}
		computeByName[c.Name] = c.Func
	}

	specs := make(map[string]formatspec.Spec, len(opts.FormatSpec))
	for field, raw := range opts.FormatSpec {
		sp, err := formatspec.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: field %q: %v", ErrConfig, field, err)
		}
		specs[field] = sp
	}

	name := t.Name()
	if name == "" {
		name = t.String()
	}

	e := &engine{
		typ:      t,
		name:     name,
		opts:     opts,
		table:    table,
		specs:    specs,
		renderer: newValueRenderer(opts.Repr),
	}
	e.plan = buildPlan(table, opts, computeByName)
	return e, nil
}

// buildPlan resolves the field set once. An explicit Include list
// fully determines it; otherwise the declared fields are filtered and
// the computed fields appended.
func buildPlan(table *fieldaccess.Table, opts Options, compute map[string]ComputeFunc) []planEntry {
	if len(opts.Include) > 0 {
		plan := make([]planEntry, 0, len(opts.Include))
		for _, name := range opts.Include {
			switch {
			case compute[name] != nil:
				plan = append(plan, planEntry{name: name, kind: computeEntry, fn: compute[name]})
			default:
				f, ok := table.Lookup(name)
				if !ok {
					plan = append(plan, planEntry{name: name, kind: missingEntry})
					continue
				}
				plan = append(plan, planEntry{name: name, kind: attrEntry, field: f})
			}
		}
		return plan
	}

	excluded := make(map[string]bool, len(opts.Exclude))
	for _, name := range opts.Exclude {
		excluded[name] = true
	}

	plan := make([]planEntry, 0, len(table.Fields())+len(opts.Compute))
	seen := make(map[string]bool, len(table.Fields()))
	for _, f := range table.Fields() {
		if excluded[f.Name] {
			continue
		}
		if opts.ExcludePrivate && f.Private {
			continue
		}
		if fn := compute[f.Name]; fn != nil {
			// Same name, computed value: the function overrides the
			// field in place.
			plan = append(plan, planEntry{name: f.Name, kind: computeEntry, fn: fn})
		} else {
			plan = append(plan, planEntry{name: f.Name, kind: attrEntry, field: f})
		}
		seen[f.Name] = true
	}
	for _, c := range opts.Compute {
		if !seen[c.Name] {
			plan = append(plan, planEntry{name: c.Name, kind: computeEntry, fn: c.Func})
		}
	}
	return plan
}

// render produces the representation of v.
func (e *engine) render(v any) (string, error) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return e.name + e.opts.Delimiters.Open + "<nil>" + e.opts.Delimiters.Close, nil
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() || rv.Type() != e.typ {
		return "", fmt.Errorf("kwrepr: cannot render %T as %s", v, e.name)
	}
	// Unexported fields are read through their address, so work on an
	// addressable copy.
	if !rv.CanAddr() {
		p := reflect.New(e.typ)
		p.Elem().Set(rv)
		rv = p.Elem()
	}

	parts := make([]string, 0, len(e.plan))
	for _, p := range e.plan {
		var val any
		switch p.kind {
		case missingEntry:
			if e.opts.SkipMissing {
				continue
			}
			return "", &MissingAttributeError{Field: p.name, Type: e.name}
		case computeEntry:
			var err error
			val, err = p.fn(v)
			if err != nil {
				if errors.Is(err, ErrMissingAttribute) {
					if e.opts.SkipMissing {
						continue
					}
					return "", &MissingAttributeError{Field: p.name, Type: e.name, Cause: err}
				}
				return "", fmt.Errorf("kwrepr: compute %s.%s: %w", e.name, p.name, err)
			}
		case attrEntry:
			val = e.table.Read(rv, p.field)
		}

		rendered, err := e.renderField(p.name, val)
		if err != nil {
			return "", err
		}
		parts = append(parts, p.name+"="+rendered)
	}

	var b strings.Builder
	b.WriteString(e.name)
	b.WriteString(e.opts.Delimiters.Open)
	b.WriteString(strings.Join(parts, ", "))
	b.WriteString(e.opts.Delimiters.Close)
	return b.String(), nil
}

// renderField formats one resolved value: through its specifier when
// one is configured, through the bounded renderer otherwise.
func (e *engine) renderField(name string, val any) (string, error) {
	if sp, ok := e.specs[name]; ok {
		s, err := sp.Apply(val)
		if err != nil {
			return "", &FormatError{Field: name, Spec: e.opts.FormatSpec[name], Cause: err}
		}
		return s, nil
	}
	return e.renderer.Render(val), nil
}

// renderString is render with the error folded into the output, for
// String methods that cannot fail.
func (e *engine) renderString(v any) string {
	s, err := e.render(v)
	if err != nil {
		return fmt.Sprintf("%%!%s(%v)", e.name, err)
	}
	return s
}
