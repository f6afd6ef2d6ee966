package formatspec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func format(t *testing.T, v any, spec string) string {
	t.Helper()

	s, err := Format(v, spec)
	require.NoError(t, err)
	return s
}

func TestFormat_FixedPoint(t *testing.T) {
	assert.Equal(t, "92.76", format(t, 92.756, ".2f"))
	assert.Equal(t, "1.000000", format(t, 1.0, "f"))
	assert.Equal(t, "-3.14", format(t, -3.14159, ".2f"))
}

func TestFormat_Percent(t *testing.T) {
	assert.Equal(t, "92.5%", format(t, 0.925, ".1%"))
	assert.Equal(t, "50.000000%", format(t, 0.5, "%"))
}

func TestFormat_Exponent(t *testing.T) {
	assert.Equal(t, "1.50e+03", format(t, 1500.0, ".2e"))
	assert.Equal(t, "1.50E+03", format(t, 1500.0, ".2E"))
}

func TestFormat_FloatDefaultIsShortest(t *testing.T) {
	assert.Equal(t, "92.756", format(t, 92.756, ""))
	assert.Equal(t, "0.1", format(t, 0.1, ""))
}

func TestFormat_IntegerBases(t *testing.T) {
	assert.Equal(t, "255", format(t, 255, "d"))
	assert.Equal(t, "ff", format(t, 255, "x"))
	assert.Equal(t, "FF", format(t, 255, "X"))
	assert.Equal(t, "377", format(t, 255, "o"))
	assert.Equal(t, "11111111", format(t, 255, "b"))
}

func TestFormat_AlternateForm(t *testing.T) {
	assert.Equal(t, "0xff", format(t, 255, "#x"))
	assert.Equal(t, "0b101", format(t, 5, "#b"))
	assert.Equal(t, "0o777", format(t, 511, "#o"))
}

func TestFormat_ZeroPadInsidePrefix(t *testing.T) {
	assert.Equal(t, "0x00ff", format(t, 255, "#06x"))
	assert.Equal(t, "-0042", format(t, -42, "05d"))
	assert.Equal(t, "+0042", format(t, 42, "+05d"))
}

func TestFormat_Sign(t *testing.T) {
	assert.Equal(t, "+5", format(t, 5, "+d"))
	assert.Equal(t, " 5", format(t, 5, " d"))
	assert.Equal(t, "5", format(t, 5, "-d"))
	assert.Equal(t, "-5", format(t, -5, "d"))
}

func TestFormat_Grouping(t *testing.T) {
	assert.Equal(t, "1,234,567", format(t, 1234567, ",d"))
	assert.Equal(t, "123", format(t, 123, ",d"))
	assert.Equal(t, "1,234.57", format(t, 1234.567, ",.2f"))
}

func TestFormat_Rune(t *testing.T) {
	assert.Equal(t, "a", format(t, 97, "c"))
}

func TestFormat_UnsignedAndSizedInts(t *testing.T) {
	assert.Equal(t, "255", format(t, uint8(255), "d"))
	assert.Equal(t, "-128", format(t, int8(-128), "d"))
}

func TestFormat_IntWithFloatVerb(t *testing.T) {
	assert.Equal(t, "5.00", format(t, 5, ".2f"))
	assert.Equal(t, "-5.00", format(t, -5, ".2f"))
}

func TestFormat_StringWidthAndAlign(t *testing.T) {
	assert.Equal(t, "left    ", format(t, "left", "<8"))
	assert.Equal(t, "   right", format(t, "right", ">8"))
	assert.Equal(t, "  mid   ", format(t, "mid", "^8"))
	assert.Equal(t, "**mid***", format(t, "mid", "*^8"))
	assert.Equal(t, "hi", format(t, "hi", "1"))
}

func TestFormat_StringDefaultAlignIsLeft(t *testing.T) {
	assert.Equal(t, "ab  ", format(t, "ab", "4"))
}

func TestFormat_NumberDefaultAlignIsRight(t *testing.T) {
	assert.Equal(t, "  42", format(t, 42, "4"))
}

func TestFormat_StringPrecisionTruncates(t *testing.T) {
	assert.Equal(t, "hello", format(t, "hello world", ".5s"))
	assert.Equal(t, "hél", format(t, "héllo", ".3"))
}

func TestFormat_WideRunesPadByDisplayWidth(t *testing.T) {
	// Each CJK rune occupies two columns.
	assert.Equal(t, "値  ", format(t, "値", "<4"))
}

func TestFormat_StringerFallback(t *testing.T) {
	type point struct{ X, Y int }
	s, err := Format(point{1, 2}, ">10")
	require.NoError(t, err)
	assert.Equal(t, "     {1 2}", s)
}

func TestFormat_Incompatible(t *testing.T) {
	_, err := Format("abc", ".2f")
	require.ErrorIs(t, err, ErrIncompatible)

	_, err = Format(3.5, "d")
	require.ErrorIs(t, err, ErrIncompatible)

	_, err = Format(42, ".2d")
	require.ErrorIs(t, err, ErrIncompatible)

	_, err = Format(42, "s")
	require.ErrorIs(t, err, ErrIncompatible)

	_, err = Format("abc", "+10")
	require.ErrorIs(t, err, ErrIncompatible)

	_, err = Format(255, ",x")
	require.ErrorIs(t, err, ErrIncompatible)
}
