package currency

// Code is an ISO 4217 three-letter currency code, e.g. "USD".
type Code string

// Symbol is a currency's conventional display symbol, e.g. "$".
type Symbol string

// Factor is the number of minor units per major unit: 100 for most
// currencies, 1 for currencies with no minor unit (e.g. JPY).
type Factor int

// Currency identifies a monetary unit. Amount is generic over it so that
// amounts in different currencies are different types and can't be added
// together by accident.
type Currency interface {
	GetCode() Code
	GetSymbol() Symbol
	GetMinorUnitFactor() Factor
}

// USD is the United States dollar.
type USD struct{}

func (USD) GetCode() Code              { return "USD" }
func (USD) GetSymbol() Symbol          { return "$" }
func (USD) GetMinorUnitFactor() Factor { return 100 }

// EUR is the euro.
type EUR struct{}

func (EUR) GetCode() Code              { return "EUR" }
func (EUR) GetSymbol() Symbol          { return "€" }
func (EUR) GetMinorUnitFactor() Factor { return 100 }

// GBP is the British pound sterling.
type GBP struct{}

func (GBP) GetCode() Code              { return "GBP" }
func (GBP) GetSymbol() Symbol          { return "£" }
func (GBP) GetMinorUnitFactor() Factor { return 100 }

// JPY is the Japanese yen, which has no minor unit.
type JPY struct{}

func (JPY) GetCode() Code              { return "JPY" }
func (JPY) GetSymbol() Symbol          { return "¥" }
func (JPY) GetMinorUnitFactor() Factor { return 1 }

// decimalPlaces returns the number of digits after the decimal point that
// f's minor unit implies (2 for a factor of 100, 0 for a factor of 1).
func decimalPlaces(f Factor) int {
	n := 0
	for f > 1 {
		f /= 10
		n++
	}
	return n
}
