package decimal

import "github.com/trippwill/decimal/internal/components"

// Numbers32/64/128 are pi, e, ln2, ln10 and sqrt2 pre-rounded to each
// width's native precision, mirroring the original's numbers.hpp constant
// table. Each is parsed once at package init from the same digit strings
// internal/mathfn bakes in for its own series evaluation, rounded down to
// the width's own precision rather than carried at mathfn's working
// precision.
var (
	Numbers32  = loadNumbers32()
	Numbers64  = loadNumbers64()
	Numbers128 = loadNumbers128()
)

// NumberSet32 holds the constant table at decimal32 precision.
type NumberSet32 struct {
	Pi, E, Ln2, Ln10, Sqrt2 Decimal32Fast
}

// NumberSet64 holds the constant table at decimal64 precision.
type NumberSet64 struct {
	Pi, E, Ln2, Ln10, Sqrt2 Decimal64Fast
}

// NumberSet128 holds the constant table at decimal128 precision.
type NumberSet128 struct {
	Pi, E, Ln2, Ln10, Sqrt2 Decimal128Fast
}

const (
	piDigits    = "3.14159265358979323846264338327950288419716939937510582097494"
	eDigits     = "2.71828182845904523536028747135266249775724709369995957496697"
	ln2Digits   = "0.693147180559945309417232121458176568075500134360255254120680"
	ln10Digits  = "2.302585092994045684017991454684364207601101488628772976033327"
	sqrt2Digits = "1.41421356237309504880168872420969807856967187537694807317668"
)

func loadNumbers32() NumberSet32 {
	ctx := DefaultContext(components.P32)
	return NumberSet32{
		Pi:    mustParseFast32(piDigits, ctx),
		E:     mustParseFast32(eDigits, ctx),
		Ln2:   mustParseFast32(ln2Digits, ctx),
		Ln10:  mustParseFast32(ln10Digits, ctx),
		Sqrt2: mustParseFast32(sqrt2Digits, ctx),
	}
}

func loadNumbers64() NumberSet64 {
	ctx := DefaultContext(components.P64)
	return NumberSet64{
		Pi:    mustParseFast64(piDigits, ctx),
		E:     mustParseFast64(eDigits, ctx),
		Ln2:   mustParseFast64(ln2Digits, ctx),
		Ln10:  mustParseFast64(ln10Digits, ctx),
		Sqrt2: mustParseFast64(sqrt2Digits, ctx),
	}
}

func loadNumbers128() NumberSet128 {
	ctx := DefaultContext(components.P128)
	return NumberSet128{
		Pi:    mustParseFast128(piDigits, ctx),
		E:     mustParseFast128(eDigits, ctx),
		Ln2:   mustParseFast128(ln2Digits, ctx),
		Ln10:  mustParseFast128(ln10Digits, ctx),
		Sqrt2: mustParseFast128(sqrt2Digits, ctx),
	}
}

func mustParseFast32(s string, ctx *Context) Decimal32Fast {
	d, err := ParseFast32(s, ctx)
	if err != nil {
		panic(err) // malformed literal constant; a programmer error.
	}
	return d
}

func mustParseFast64(s string, ctx *Context) Decimal64Fast {
	d, err := ParseFast64(s, ctx)
	if err != nil {
		panic(err)
	}
	return d
}

func mustParseFast128(s string, ctx *Context) Decimal128Fast {
	d, err := ParseFast128(s, ctx)
	if err != nil {
		panic(err)
	}
	return d
}
