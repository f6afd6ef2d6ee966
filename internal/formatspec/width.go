package formatspec

import (
	"strings"

	"golang.org/x/text/width"
)

// displayWidth returns the number of terminal columns s occupies.
// East Asian wide and fullwidth runes count as two columns, everything
// else as one, so aligned output stays aligned for CJK field values.
func displayWidth(s string) int {
	w := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			w += 2
		default:
			w++
		}
	}
	return w
}

// pad assembles sign, prefix, and body and pads the result to the
// specifier's width. defaultAlign is used when no alignment was given:
// '>' for numbers, '<' for strings. The '=' alignment inserts the fill
// between the prefix and the digits so zero padding lands inside the
// sign and base prefix.
func (sp Spec) pad(sign, prefix, body string, defaultAlign byte) string {
	out := sign + prefix + body
	if sp.Width <= 0 {
		return out
	}
	n := sp.Width - displayWidth(out)
	if n <= 0 {
		return out
	}

	fill := strings.Repeat(string(sp.Fill), n)
	align := sp.Align
	if align == 0 {
		align = defaultAlign
	}
	switch align {
	case '<':
		return out + fill
	case '^':
		left := strings.Repeat(string(sp.Fill), n/2)
		right := strings.Repeat(string(sp.Fill), n-n/2)
		return left + out + right
	case '=':
		return sign + prefix + fill + body
	default: // '>'
		return fill + out
	}
}
