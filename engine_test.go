package kwrepr

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	id    int
	label string
	score float64
	_raw  string
}

func TestNew_IncludeAndExcludeConflict(t *testing.T) {
	opts := DefaultOptions()
	opts.Include = []string{"id"}
	opts.Exclude = []string{"label"}

	_, err := New[record](opts)
	require.ErrorIs(t, err, ErrConfig)
}

func TestNew_NonStructType(t *testing.T) {
	_, err := New[int](DefaultOptions())
	require.ErrorIs(t, err, ErrConfig)
}

func TestNew_BadFormatSpecFailsEagerly(t *testing.T) {
	opts := DefaultOptions()
	opts.FormatSpec = map[string]string{"score": ".oops"}

	_, err := New[record](opts)
	require.ErrorIs(t, err, ErrConfig)
}

func TestNew_DuplicateComputedName(t *testing.T) {
	opts := DefaultOptions()
	opts.Compute = []ComputedField{
		{Name: "x", Func: func(any) (any, error) { return 1, nil }},
		{Name: "x", Func: func(any) (any, error) { return 2, nil }},
	}

	_, err := New[record](opts)
	require.ErrorIs(t, err, ErrConfig)
}

func TestRepr_ExcludeDropsFields(t *testing.T) {
	opts := DefaultOptions()
	opts.Exclude = []string{"score"}
	r := MustNew[record](opts)

	s, err := r.Repr(record{id: 1, label: "a", score: 0.5})
	require.NoError(t, err)
	assert.Equal(t, "record(id=1, label='a')", s)
}

func TestRepr_MissingIncludeNameFails(t *testing.T) {
	opts := DefaultOptions()
	opts.Include = []string{"id", "ghost"}
	r := MustNew[record](opts)

	_, err := r.Repr(record{id: 1})
	require.ErrorIs(t, err, ErrMissingAttribute)

	var miss *MissingAttributeError
	require.ErrorAs(t, err, &miss)
	assert.Equal(t, "ghost", miss.Field)
	assert.Equal(t, "record", miss.Type)
}

func TestRepr_SkipMissingDropsField(t *testing.T) {
	opts := DefaultOptions()
	opts.Include = []string{"id", "ghost", "label"}
	opts.SkipMissing = true
	r := MustNew[record](opts)

	s, err := r.Repr(record{id: 1, label: "a"})
	require.NoError(t, err)
	assert.Equal(t, "record(id=1, label='a')", s)
}

func TestRepr_ComputeMissingHonorsSkipMissing(t *testing.T) {
	opts := DefaultOptions()
	opts.Compute = []ComputedField{{
		Name: "derived",
		Func: func(any) (any, error) {
			return nil, fmt.Errorf("state not ready: %w", ErrMissingAttribute)
		},
	}}

	r := MustNew[record](opts)
	_, err := r.Repr(record{})
	require.ErrorIs(t, err, ErrMissingAttribute)

	opts.SkipMissing = true
	r = MustNew[record](opts)
	s, err := r.Repr(record{id: 4})
	require.NoError(t, err)
	assert.Equal(t, "record(id=4, label='', score=0)", s)
}

func TestRepr_ComputeFailureIsFatal(t *testing.T) {
	boom := errors.New("boom")
	opts := DefaultOptions()
	opts.SkipMissing = true
	opts.Compute = []ComputedField{{
		Name: "derived",
		Func: func(any) (any, error) { return nil, boom },
	}}
	r := MustNew[record](opts)

	_, err := r.Repr(record{})
	require.ErrorIs(t, err, boom)
}

func TestRepr_FormatErrorIsFatalEvenWithSkipMissing(t *testing.T) {
	opts := DefaultOptions()
	opts.SkipMissing = true
	opts.FormatSpec = map[string]string{"label": ".2f"}
	r := MustNew[record](opts)

	_, err := r.Repr(record{label: "abc"})
	require.ErrorIs(t, err, ErrFormat)

	var ferr *FormatError
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, "label", ferr.Field)
	assert.Equal(t, ".2f", ferr.Spec)
}

func TestRepr_ComputeOverridesAttributeInPlace(t *testing.T) {
	opts := DefaultOptions()
	opts.Compute = []ComputedField{{
		Name: "label",
		Func: func(v any) (any, error) { return "masked", nil },
	}}
	r := MustNew[record](opts)

	s, err := r.Repr(record{id: 1, label: "real"})
	require.NoError(t, err)
	assert.Equal(t, "record(id=1, label='masked', score=0)", s)
}

func TestRepr_IncludeMayNameComputedFields(t *testing.T) {
	opts := DefaultOptions()
	opts.Include = []string{"checksum", "id"}
	opts.Compute = []ComputedField{{
		Name: "checksum",
		Func: func(v any) (any, error) { return v.(record).id * 31, nil },
	}}
	r := MustNew[record](opts)

	s, err := r.Repr(record{id: 2})
	require.NoError(t, err)
	assert.Equal(t, "record(checksum=62, id=2)", s)
}

func TestRepr_PrivateComputedNameIsNotFiltered(t *testing.T) {
	opts := DefaultOptions()
	opts.Compute = []ComputedField{{
		Name: "_digest",
		Func: func(any) (any, error) { return "abc", nil },
	}}
	r := MustNew[record](opts)

	s, err := r.Repr(record{id: 1, label: "x", score: 1})
	require.NoError(t, err)
	assert.Equal(t, "record(id=1, label='x', score=1, _digest='abc')", s)
}

func TestRepr_TypeMismatch(t *testing.T) {
	eng, err := newEngine(reflect.TypeOf(record{}), DefaultOptions())
	require.NoError(t, err)

	_, err = eng.render("not a record")
	require.Error(t, err)
}
