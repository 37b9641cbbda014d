package generator

import (
	"fmt"
	"strconv"
	"strings"

	"blockc/internal/block"
)

// AdjustIndex resolves the index expression in slot and normalizes it for
// zero-based emission: delta is added (decremented by one first when the
// workspace is one-based) and the result is optionally negated. A literal
// number is folded in place; a dynamic expression gets the arithmetic
// emitted around it, with parentheses only when order demands them. The
// produced order is computed from what was actually emitted, not assumed.
func (g *Generator) AdjustIndex(b *block.Block, slot string, delta int, negate bool, order Order) (string, error) {
	if g.cfg.OneBasedIndex {
		delta--
	}

	var innerOrder Order
	switch {
	case delta != 0:
		innerOrder = OrderAdditive
	case negate:
		innerOrder = OrderPrefix
	default:
		innerOrder = order
	}

	at, err := g.EmitValue(b, slot, innerOrder, "1")
	if err != nil {
		return "", err
	}

	if n, err := strconv.Atoi(at); err == nil {
		// literal index: fold the adjustment
		n += delta
		if negate {
			n = -n
		}
		return strconv.Itoa(n), nil
	}

	resultOrder := order
	switch {
	case delta > 0:
		at = fmt.Sprintf("%s + %d", at, delta)
		resultOrder = OrderAdditive
	case delta < 0:
		at = fmt.Sprintf("%s - %d", at, -delta)
		resultOrder = OrderAdditive
	}
	if negate {
		if resultOrder == OrderAdditive {
			at = "(" + at + ")"
		}
		// "- -x", never "--x": adjacent minus signs would lex as decrement
		if strings.HasPrefix(at, "-") {
			at = "- " + at
		} else {
			at = "-" + at
		}
		resultOrder = OrderPrefix
	}
	if needsParens(resultOrder, order) {
		at = "(" + at + ")"
	}
	return at, nil
}
