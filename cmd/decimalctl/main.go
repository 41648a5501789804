// Command decimalctl parses and computes with IEEE 754-2008 decimal values
// from the command line, exercising charconv and Context the way a human
// would rather than a test harness.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/trippwill/decimal"
)

func main() {
	width := flag.Int("width", 64, "decimal width: 32, 64 or 128")
	precision := flag.Int("precision", 0, "significant digits (0 uses the width's native precision)")
	rounding := flag.String("rounding", "ties-to-even", "ties-to-even, ties-to-away, toward-zero, toward-positive, toward-negative")
	verb := flag.String("verb", "v", "fmt verb to render the result with: v, e, f or x")
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		usage()
		os.Exit(2)
	}

	mode, err := parseRounding(*rounding)
	if err != nil {
		log.Fatal(err)
	}
	ctx := &decimal.Context{Precision: *precision, Rounding: mode}

	op := args[0]
	operands := args[1:]

	result, err := run(*width, op, operands, ctx)
	if err != nil {
		log.Fatal(err)
	}

	format := "%" + *verb
	fmt.Printf(format+"\n", result)
	if sig := ctx.Signals(); sig != 0 {
		fmt.Fprintf(os.Stderr, "signals: %s\n", sig)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `usage: decimalctl [flags] <op> <operand>...

ops:
  parse x            render x after a round trip through the chosen width
  add a b            a + b
  sub a b            a - b
  mul a b            a * b
  quo a b            a / b
  neg x              -x
  sqrt x             square root of x
  exp x              e^x
  log x              natural log of x

flags:
`)
	flag.PrintDefaults()
}

func parseRounding(s string) (decimal.Rounding, error) {
	switch strings.ToLower(s) {
	case "ties-to-even":
		return decimal.RoundTiesToEven, nil
	case "ties-to-away":
		return decimal.RoundTiesToAway, nil
	case "toward-zero":
		return decimal.RoundTowardZero, nil
	case "toward-positive":
		return decimal.RoundTowardPositive, nil
	case "toward-negative":
		return decimal.RoundTowardNegative, nil
	default:
		return 0, fmt.Errorf("unknown rounding mode %q", s)
	}
}

// run dispatches op against operands at the requested width, returning a
// fmt.Formatter so the caller can render it with an arbitrary verb.
func run(width int, op string, operands []string, ctx *decimal.Context) (fmt.Formatter, error) {
	switch width {
	case 32:
		return run32(op, operands, ctx)
	case 64:
		return run64(op, operands, ctx)
	case 128:
		return run128(op, operands, ctx)
	default:
		return nil, fmt.Errorf("unsupported width %d (want 32, 64 or 128)", width)
	}
}

func run64(op string, operands []string, ctx *decimal.Context) (fmt.Formatter, error) {
	ops, err := parseAll64(operands, ctx)
	if err != nil {
		return nil, err
	}
	switch op {
	case "parse":
		return need(ops, 1, func() fmt.Formatter { return ops[0] })
	case "add":
		return need(ops, 2, func() fmt.Formatter { return ops[0].Add(ops[1], ctx) })
	case "sub":
		return need(ops, 2, func() fmt.Formatter { return ops[0].Sub(ops[1], ctx) })
	case "mul":
		return need(ops, 2, func() fmt.Formatter { return ops[0].Mul(ops[1], ctx) })
	case "quo":
		return need(ops, 2, func() fmt.Formatter { return ops[0].Quo(ops[1], ctx) })
	case "neg":
		return need(ops, 1, func() fmt.Formatter { return ops[0].Neg() })
	case "sqrt":
		return need(ops, 1, func() fmt.Formatter { return ops[0].Sqrt(ctx) })
	case "exp":
		return need(ops, 1, func() fmt.Formatter { return ops[0].Exp(ctx) })
	case "log":
		return need(ops, 1, func() fmt.Formatter { return ops[0].Log(ctx) })
	default:
		return nil, fmt.Errorf("unknown op %q", op)
	}
}

func run32(op string, operands []string, ctx *decimal.Context) (fmt.Formatter, error) {
	ops, err := parseAll32(operands, ctx)
	if err != nil {
		return nil, err
	}
	switch op {
	case "parse":
		return need(ops, 1, func() fmt.Formatter { return ops[0] })
	case "add":
		return need(ops, 2, func() fmt.Formatter { return ops[0].Add(ops[1], ctx) })
	case "sub":
		return need(ops, 2, func() fmt.Formatter { return ops[0].Sub(ops[1], ctx) })
	case "mul":
		return need(ops, 2, func() fmt.Formatter { return ops[0].Mul(ops[1], ctx) })
	case "quo":
		return need(ops, 2, func() fmt.Formatter { return ops[0].Quo(ops[1], ctx) })
	case "neg":
		return need(ops, 1, func() fmt.Formatter { return ops[0].Neg() })
	case "sqrt":
		return need(ops, 1, func() fmt.Formatter { return ops[0].Sqrt(ctx) })
	case "exp":
		return need(ops, 1, func() fmt.Formatter { return ops[0].Exp(ctx) })
	case "log":
		return need(ops, 1, func() fmt.Formatter { return ops[0].Log(ctx) })
	default:
		return nil, fmt.Errorf("unknown op %q", op)
	}
}

func run128(op string, operands []string, ctx *decimal.Context) (fmt.Formatter, error) {
	ops, err := parseAll128(operands, ctx)
	if err != nil {
		return nil, err
	}
	switch op {
	case "parse":
		return need(ops, 1, func() fmt.Formatter { return ops[0] })
	case "add":
		return need(ops, 2, func() fmt.Formatter { return ops[0].Add(ops[1], ctx) })
	case "sub":
		return need(ops, 2, func() fmt.Formatter { return ops[0].Sub(ops[1], ctx) })
	case "mul":
		return need(ops, 2, func() fmt.Formatter { return ops[0].Mul(ops[1], ctx) })
	case "quo":
		return need(ops, 2, func() fmt.Formatter { return ops[0].Quo(ops[1], ctx) })
	case "neg":
		return need(ops, 1, func() fmt.Formatter { return ops[0].Neg() })
	case "sqrt":
		return need(ops, 1, func() fmt.Formatter { return ops[0].Sqrt(ctx) })
	case "exp":
		return need(ops, 1, func() fmt.Formatter { return ops[0].Exp(ctx) })
	case "log":
		return need(ops, 1, func() fmt.Formatter { return ops[0].Log(ctx) })
	default:
		return nil, fmt.Errorf("unknown op %q", op)
	}
}

func need[T any](ops []T, n int, f func() fmt.Formatter) (fmt.Formatter, error) {
	if len(ops) < n {
		return nil, fmt.Errorf("need %d operand(s), got %d", n, len(ops))
	}
	return f(), nil
}

func parseAll64(operands []string, ctx *decimal.Context) ([]decimal.Decimal64, error) {
	out := make([]decimal.Decimal64, len(operands))
	for i, s := range operands {
		d, err := decimal.Parse64(s, ctx)
		if err != nil {
			return nil, err
		}
		out[i] = d
	}
	return out, nil
}

func parseAll32(operands []string, ctx *decimal.Context) ([]decimal.Decimal32, error) {
	out := make([]decimal.Decimal32, len(operands))
	for i, s := range operands {
		d, err := decimal.Parse32(s, ctx)
		if err != nil {
			return nil, err
		}
		out[i] = d
	}
	return out, nil
}

func parseAll128(operands []string, ctx *decimal.Context) ([]decimal.Decimal128, error) {
	out := make([]decimal.Decimal128, len(operands))
	for i, s := range operands {
		d, err := decimal.Parse128(s, ctx)
		if err != nil {
			return nil, err
		}
		out[i] = d
	}
	return out, nil
}
