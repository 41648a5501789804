package currency

import "fmt"

// ParseOpts describes the locale separators a monetary string uses.
type ParseOpts struct {
	thousands rune
	decimal   rune
}

// DefaultParseOpts uses a comma thousands separator and a dot decimal
// point, e.g. "1,234.56".
var DefaultParseOpts *ParseOpts = new(ParseOpts).Init(',', '.')

func (po *ParseOpts) Init(thousands, decimal rune) *ParseOpts {
	po.thousands = thousands
	po.decimal = decimal
	return po
}

// ParseError wraps a parse failure with the original input.
type ParseError struct {
	Input string
	Inner error
}

func (pe ParseError) Error() string {
	return fmt.Sprintf("failed to parse %q: %s", pe.Input, pe.Inner.Error())
}

func (pe ParseError) Unwrap() error { return pe.Inner }
