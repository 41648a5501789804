package currency

import (
	"strings"

	"github.com/trippwill/decimal"
)

// ParseAmountValue parses a locale-formatted monetary string, such as
// "1,234.56", into a decimal.Decimal64. po supplies the thousands and
// decimal separators (DefaultParseOpts if nil); ctx supplies the parse
// precision and rounding (decimal.DefaultContext(decimal's own default)
// if nil). Separator normalization is done here; the digit grammar
// itself is parsed by decimal.Parse64.
func ParseAmountValue(value string, po *ParseOpts, ctx *decimal.Context) (decimal.Decimal64, error) {
	if po == nil {
		po = DefaultParseOpts
	}

	if po.thousands != 0 {
		value = strings.ReplaceAll(value, string(po.thousands), "")
	}
	if po.decimal != 0 && po.decimal != '.' {
		value = strings.ReplaceAll(value, string(po.decimal), ".")
	}

	d, err := decimal.Parse64(value, ctx)
	if err != nil {
		return decimal.Decimal64{}, ParseError{Input: value, Inner: err}
	}
	return d, nil
}
