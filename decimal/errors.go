package decimal

import (
	"github.com/pkg/errors"

	"github.com/trippwill/decimal/internal/charconv"
)

// ErrInvalidSyntax is the cause wrapped into every parse failure's error
// chain, so callers can match on it with errors.Is regardless of which
// width or format produced it.
var ErrInvalidSyntax = errors.New("decimal: invalid syntax")

// ErrResultOutOfRange is the cause wrapped when a parsed value's exponent
// or coefficient cannot be represented at the target width even after
// rounding.
var ErrResultOutOfRange = errors.New("decimal: result out of range")

func parseError(status charconv.Status, input string) error {
	switch status {
	case charconv.StatusInvalidArgument:
		return errors.Wrapf(ErrInvalidSyntax, "parsing %q", input)
	case charconv.StatusResultOutOfRange:
		return errors.Wrapf(ErrResultOutOfRange, "parsing %q", input)
	default:
		return nil
	}
}
