package currency

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/trippwill/decimal"
)

// Amount is a monetary value in currency C, backed by a decimal.Decimal64
// so that arithmetic goes through the IEEE 754-2008 decimal kernel instead
// of a hand-rolled base/scale pair.
type Amount[C Currency] struct {
	Value    decimal.Decimal64
	Currency C
}

// NewAmount wraps an already-parsed decimal value.
func NewAmount[C Currency](value decimal.Decimal64) Amount[C] {
	var c C
	return Amount[C]{Value: value, Currency: c}
}

// NewAmountFromString parses value with po's separators and ctx's
// precision/rounding into an Amount.
func NewAmountFromString[C Currency](value string, po *ParseOpts, ctx *decimal.Context) (Amount[C], error) {
	var c C
	v, err := ParseAmountValue(value, po, ctx)
	if err != nil {
		return Amount[C]{}, err
	}
	return Amount[C]{Value: v, Currency: c}, nil
}

func AmountAdd[C Currency](a, b string, po *ParseOpts, ctx *decimal.Context) (Amount[C], error) {
	amountA, err := NewAmountFromString[C](a, po, ctx)
	if err != nil {
		return Amount[C]{}, err
	}
	amountB, err := NewAmountFromString[C](b, po, ctx)
	if err != nil {
		return Amount[C]{}, err
	}
	return amountA.Add(amountB, ctx), nil
}

func AmountSub[C Currency](a, b string, po *ParseOpts, ctx *decimal.Context) (Amount[C], error) {
	amountA, err := NewAmountFromString[C](a, po, ctx)
	if err != nil {
		return Amount[C]{}, err
	}
	amountB, err := NewAmountFromString[C](b, po, ctx)
	if err != nil {
		return Amount[C]{}, err
	}
	return amountA.Sub(amountB, ctx), nil
}

func AmountMul[C Currency](a, factor string, po *ParseOpts, ctx *decimal.Context) (Amount[C], error) {
	amountA, err := NewAmountFromString[C](a, po, ctx)
	if err != nil {
		return Amount[C]{}, err
	}
	f, err := ParseAmountValue(factor, po, ctx)
	if err != nil {
		return Amount[C]{}, err
	}
	return amountA.Mul(f, ctx), nil
}

func AmountDiv[C Currency](a, divisor string, po *ParseOpts, ctx *decimal.Context) (Amount[C], error) {
	amountA, err := NewAmountFromString[C](a, po, ctx)
	if err != nil {
		return Amount[C]{}, err
	}
	f, err := ParseAmountValue(divisor, po, ctx)
	if err != nil {
		return Amount[C]{}, err
	}
	return amountA.Div(f, ctx), nil
}

// Format renders the amount as "<symbol> <locale-formatted value>", always
// showing the currency's minor-unit digit count (2 for USD, 0 for JPY, via
// number.Scale) regardless of how many digits Value.String() trimmed.
// Passing the value's exact digit string to number.Decimal, rather than a
// float64 conversion, keeps the cohort's digits exact through formatting.
func (a Amount[C]) Format(tag language.Tag) string {
	p := message.NewPrinter(tag)
	places := decimalPlaces(a.Currency.GetMinorUnitFactor())
	return p.Sprintf("%s %v", a.Currency.GetSymbol(), number.Decimal(a.Value.String(), number.Scale(places)))
}

func (a Amount[C]) String() string {
	return a.Format(language.Tag{})
}

func (a Amount[C]) Add(b Amount[C], ctx *decimal.Context) Amount[C] {
	return Amount[C]{Value: a.Value.Add(b.Value, ctx), Currency: a.Currency}
}

func (a Amount[C]) Sub(b Amount[C], ctx *decimal.Context) Amount[C] {
	return Amount[C]{Value: a.Value.Sub(b.Value, ctx), Currency: a.Currency}
}

func (a Amount[C]) Mul(factor decimal.Decimal64, ctx *decimal.Context) Amount[C] {
	return Amount[C]{Value: a.Value.Mul(factor, ctx), Currency: a.Currency}
}

func (a Amount[C]) Div(divisor decimal.Decimal64, ctx *decimal.Context) Amount[C] {
	return Amount[C]{Value: a.Value.Quo(divisor, ctx), Currency: a.Currency}
}

// Neg returns the negation of the amount.
func (a Amount[C]) Neg() Amount[C] {
	return Amount[C]{Value: a.Value.Neg(), Currency: a.Currency}
}

// Abs returns the absolute value of the amount.
func (a Amount[C]) Abs() Amount[C] {
	return Amount[C]{Value: a.Value.Abs(), Currency: a.Currency}
}

// IsZero returns true if the amount is zero.
func (a Amount[C]) IsZero() bool {
	return a.Value.IsZero()
}

// Equal compares two amounts for numeric equality. It does not consult the
// currency type parameter; callers comparing across Amount[C]/Amount[D]
// instantiations are responsible for that check themselves.
func (a Amount[C]) Equal(b Amount[C]) bool {
	cmp, ok := a.Value.Cmp(b.Value)
	return ok && cmp == 0
}

// ConvIert converts an amount from currency C to currency D by multiplying
// by a conversion factor.
func ConvIert[C, D Currency](a Amount[C], factor decimal.Decimal64, ctx *decimal.Context) Amount[D] {
	converted := a.Value.Mul(factor, ctx)

	var d D
	return Amount[D]{
		Value:    converted,
		Currency: d,
	}
}
