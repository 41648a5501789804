package decimal

import (
	"fmt"
	"io"

	"github.com/trippwill/decimal/internal/charconv"
)

// Format implements fmt.Formatter: %v and %s render the general (shortest
// scientific-or-fixed) form, %e forces scientific, %x renders the hex-float
// round trip through float64 (charconv.FormatHex), matching the original's
// fmt_format.hpp adapter for the verbs Go's fmt package actually defines.
func (d Decimal64Fast) Format(f fmt.State, verb rune) { formatTriple(f, verb, charconv.ToChars64(d.t, formatFor(verb), -1)) }
func (d Decimal32Fast) Format(f fmt.State, verb rune) { formatTriple(f, verb, charconv.ToChars32(d.t, formatFor(verb), -1)) }
func (d Decimal128Fast) Format(f fmt.State, verb rune) {
	formatTriple(f, verb, charconv.ToChars128(d.t, formatFor(verb), -1))
}

func (d Decimal32) Format(f fmt.State, verb rune)  { d.ToFast().Format(f, verb) }
func (d Decimal64) Format(f fmt.State, verb rune)  { d.ToFast().Format(f, verb) }
func (d Decimal128) Format(f fmt.State, verb rune) { d.ToFast().Format(f, verb) }

func formatFor(verb rune) charconv.Format {
	switch verb {
	case 'e', 'E':
		return charconv.FormatScientific
	case 'f', 'F':
		return charconv.FormatFixed
	case 'x', 'X':
		return charconv.FormatHex
	default:
		return charconv.FormatGeneral
	}
}

func formatTriple(f fmt.State, verb rune, rendered string) {
	switch verb {
	case 'v', 's', 'e', 'E', 'f', 'F', 'x', 'X':
		io.WriteString(f, rendered)
	default:
		fmt.Fprintf(f, "%%!%c(decimal=%s)", verb, rendered)
	}
}
