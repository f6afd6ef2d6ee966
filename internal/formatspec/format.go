package formatspec

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// Format parses spec and applies it to v.
func Format(v any, spec string) (string, error) {
	sp, err := Parse(spec)
	if err != nil {
		return "", err
	}
	return sp.Apply(v)
}

// Apply renders v under the parsed specifier.
//
// Integer values accept the integer verbs plus the float verbs (the
// value is converted), strings accept 's' or no verb, and any other
// value is rendered through its default string form when the specifier
// is string-shaped. Everything else reports ErrIncompatible.
func (sp Spec) Apply(v any) (string, error) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return "", fmt.Errorf("%w: nil value", ErrIncompatible)
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return sp.applyInt(rv.Int() < 0, absString(rv.Int()), float64(rv.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return sp.applyInt(false, strconv.FormatUint(rv.Uint(), 10), float64(rv.Uint()))
	case reflect.Float32, reflect.Float64:
		return sp.applyFloat(rv.Float())
	case reflect.String:
		return sp.applyString(rv.String())
	default:
		// Anything else only works with a string-shaped specifier.
		if sp.Verb == 0 || sp.Verb == 's' {
			return sp.applyString(fmt.Sprint(v))
		}
		return "", fmt.Errorf("%w: %q on %s", ErrIncompatible, string(sp.Verb), rv.Kind())
	}
}

// absString renders |i| in decimal without overflowing on MinInt64.
func absString(i int64) string {
	u := uint64(i)
	if i < 0 {
		u = -u
	}
	return strconv.FormatUint(u, 10)
}

func (sp Spec) applyInt(neg bool, decimal string, asFloat float64) (string, error) {
	switch sp.Verb {
	case 'e', 'E', 'f', 'F', 'g', 'G', '%':
		f := asFloat
		if neg {
			// decimal already carries the magnitude; restore the sign.
			f = -math.Abs(asFloat)
		}
		return sp.applyFloat(f)
	case 's':
		return "", fmt.Errorf("%w: %q on integer", ErrIncompatible, "s")
	}

	if sp.Precision >= 0 {
		return "", fmt.Errorf("%w: precision with integer verb", ErrIncompatible)
	}

	if sp.Verb == 'c' {
		if sp.Sign != 0 || sp.Alt || sp.Grouping {
			return "", fmt.Errorf("%w: flags with %q", ErrIncompatible, "c")
		}
		n, err := strconv.ParseUint(decimal, 10, 32)
		if err != nil || neg {
			return "", fmt.Errorf("%w: %q out of rune range", ErrIncompatible, "c")
		}
		return sp.pad("", "", string(rune(n)), '>'), nil
	}

	u, err := strconv.ParseUint(decimal, 10, 64)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrIncompatible, err)
	}

	var digits, prefix string
	switch sp.Verb {
	case 'b':
		digits = strconv.FormatUint(u, 2)
		prefix = "0b"
	case 'o':
		digits = strconv.FormatUint(u, 8)
		prefix = "0o"
	case 'x':
		digits = strconv.FormatUint(u, 16)
		prefix = "0x"
	case 'X':
		digits = strings.ToUpper(strconv.FormatUint(u, 16))
		prefix = "0X"
	case 'd', 0:
		digits = decimal
		prefix = ""
	}
	if !sp.Alt {
		prefix = ""
	}

	if sp.Grouping {
		if sp.Verb != 'd' && sp.Verb != 0 {
			return "", fmt.Errorf("%w: grouping with %q", ErrIncompatible, string(sp.Verb))
		}
		digits = group(digits)
	}

	return sp.pad(sp.signFor(neg), prefix, digits, '>'), nil
}

func (sp Spec) applyFloat(f float64) (string, error) {
	if sp.Alt {
		return "", fmt.Errorf("%w: alternate form with float", ErrIncompatible)
	}

	neg := math.Signbit(f) && !math.IsNaN(f)
	abs := math.Abs(f)
	prec := sp.Precision

	var digits string
	switch sp.Verb {
	case 'f', 'F':
		if prec < 0 {
			prec = 6
		}
		digits = strconv.FormatFloat(abs, 'f', prec, 64)
	case 'e', 'E':
		if prec < 0 {
			prec = 6
		}
		digits = strconv.FormatFloat(abs, byte(sp.Verb), prec, 64)
	case 'g', 'G':
		if prec < 0 {
			prec = 6
		}
		digits = strconv.FormatFloat(abs, byte(sp.Verb), prec, 64)
	case '%':
		if prec < 0 {
			prec = 6
		}
		digits = strconv.FormatFloat(abs*100, 'f', prec, 64) + "%"
	case 0:
		// Shortest form unless a precision was given.
		digits = strconv.FormatFloat(abs, 'g', prec, 64)
	default:
		return "", fmt.Errorf("%w: %q on float", ErrIncompatible, string(sp.Verb))
	}

	if sp.Grouping {
		digits = groupFloat(digits)
	}

	return sp.pad(sp.signFor(neg), "", digits, '>'), nil
}

func (sp Spec) applyString(s string) (string, error) {
	if sp.Verb != 0 && sp.Verb != 's' {
		return "", fmt.Errorf("%w: %q on string", ErrIncompatible, string(sp.Verb))
	}
	if sp.Sign != 0 || sp.Alt || sp.Grouping || sp.Align == '=' {
		return "", fmt.Errorf("%w: numeric flags on string", ErrIncompatible)
	}

	if sp.Precision >= 0 {
		rs := []rune(s)
		if len(rs) > sp.Precision {
			s = string(rs[:sp.Precision])
		}
	}

	return sp.pad("", "", s, '<'), nil
}

// signFor returns the sign string for a number under the sign option.
func (sp Spec) signFor(neg bool) string {
	switch {
	case neg:
		return "-"
	case sp.Sign == '+':
		return "+"
	case sp.Sign == ' ':
		return " "
	default:
		return ""
	}
}

// group inserts a comma between every three digits, right to left.
func group(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// groupFloat applies digit grouping to the integer part of a rendered
// float, leaving the fraction and any exponent untouched.
func groupFloat(s string) string {
	end := len(s)
	for i, r := range s {
		if r < '0' || r > '9' {
			end = i
			break
		}
	}
	return group(s[:end]) + s[end:]
}
