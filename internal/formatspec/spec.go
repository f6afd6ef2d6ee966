// Package formatspec parses and applies per-field format specifiers.
//
// The specifier grammar follows the common printf-style mini-language
// used for keyword representations:
//
//	[[fill]align][sign][#][0][width][,][.precision][verb]
//
// with align one of "<", ">", "^", "=", sign one of "+", "-", " ", and
// verb one of "b c d o x X e E f F g G % s". Examples:
//
//	Format(92.756, ".2f")  = "92.76"
//	Format(255, "#06x")    = "0x00ff"
//	Format(0.925, ".1%")   = "92.5%"
//	Format("left", "<8")   = "left    "
//
// Parse reports ErrSyntax for malformed specifiers. Applying a valid
// specifier to a value of the wrong type reports ErrIncompatible; the
// two conditions are surfaced at different times by callers (parse
// errors at attachment, apply errors at render).
package formatspec

import (
	"fmt"
	"strings"
)

// Spec is a parsed format specifier.
type Spec struct {
	// Fill is the padding rune, default ' '.
	Fill rune

	// Align is one of '<', '>', '^', '=', or 0 when unset. '=' pads
	// between the sign and the digits and is valid for numbers only.
	Align byte

	// Sign is '+', '-', ' ', or 0 when unset. Default behavior ('-')
	// shows a sign for negative numbers only.
	Sign byte

	// Alt enables the alternate form: a 0b/0o/0x prefix for the
	// binary, octal, and hex verbs.
	Alt bool

	// Width is the minimum display width, 0 when unset.
	Width int

	// Grouping inserts a comma between digit triples of the integer
	// part. Valid for the decimal and float verbs only.
	Grouping bool

	// Precision is the digit count after the point for float verbs and
	// the maximum length for strings, -1 when unset.
	Precision int

	// Verb selects the conversion, 0 when unset. Unset behaves as 'd'
	// for integers, a shortest-form float conversion for floats, and
	// 's' for strings.
	Verb byte
}

const verbs = "bcdoxXeEfFgG%s"

func isAlign(r rune) bool {
	return r == '<' || r == '>' || r == '^' || r == '='
}

// Parse parses a specifier string.
func Parse(s string) (Spec, error) {
	sp := Spec{Fill: ' ', Precision: -1}
	rs := []rune(s)
	i := 0

	// [[fill]align]
	if len(rs) >= 2 && isAlign(rs[1]) {
		sp.Fill = rs[0]
		sp.Align = byte(rs[1])
		i = 2
	} else if len(rs) >= 1 && isAlign(rs[0]) {
		sp.Align = byte(rs[0])
		i = 1
	}

	// [sign]
	if i < len(rs) && (rs[i] == '+' || rs[i] == '-' || rs[i] == ' ') {
		sp.Sign = byte(rs[i])
		i++
	}

	// [#]
	if i < len(rs) && rs[i] == '#' {
		sp.Alt = true
		i++
	}

	// [0] is shorthand for fill '0' with sign-aware alignment.
	if i < len(rs) && rs[i] == '0' {
		if sp.Align == 0 {
			sp.Align = '='
			sp.Fill = '0'
		}
		i++
	}

	// [width]
	for i < len(rs) && rs[i] >= '0' && rs[i] <= '9' {
		sp.Width = sp.Width*10 + int(rs[i]-'0')
		i++
	}

	// [,]
	if i < len(rs) && rs[i] == ',' {
		sp.Grouping = true
		i++
	}

	// [.precision]
	if i < len(rs) && rs[i] == '.' {
		i++
		if i >= len(rs) || rs[i] < '0' || rs[i] > '9' {
			return Spec{}, fmt.Errorf("%w: %q: missing precision digits", ErrSyntax, s)
		}
		sp.Precision = 0
		for i < len(rs) && rs[i] >= '0' && rs[i] <= '9' {
			sp.Precision = sp.Precision*10 + int(rs[i]-'0')
			i++
		}
	}

	// [verb]
	if i < len(rs) {
		if len(rs)-i > 1 || !strings.ContainsRune(verbs, rs[i]) {
			return Spec{}, fmt.Errorf("%w: %q", ErrSyntax, s)
		}
		sp.Verb = byte(rs[i])
		i++
	}

	return sp, nil
}
