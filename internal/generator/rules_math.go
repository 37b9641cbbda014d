package generator

import (
	"fmt"
	"strconv"

	"blockc/internal/block"
)

func (g *Generator) mathNumber(b *block.Block) (string, Order, error) {
	raw := b.Field("NUM")
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return "", 0, fmt.Errorf("%w: block %q has non-numeric NUM %q", ErrBadLiteral, b.ID, raw)
	}
	order := OrderAtomic
	if f < 0 {
		order = OrderPrefix
	}
	return formatNumber(f), order, nil
}

var arithmeticOps = map[string]struct {
	op    string
	order Order
}{
	"ADD":      {"+", OrderAdditive},
	"MINUS":    {"-", OrderAdditive},
	"MULTIPLY": {"*", OrderMultiplicative},
	"DIVIDE":   {"/", OrderMultiplicative},
}

// mathArithmetic emits infix arithmetic. POWER has no C++ operator and is
// emitted as a std::pow call, which also sidesteps its right associativity.
func (g *Generator) mathArithmetic(b *block.Block) (string, Order, error) {
	op := b.Field("OP")
	if op == "POWER" {
		base, err := g.EmitValue(b, "A", OrderComma, "0")
		if err != nil {
			return "", 0, err
		}
		exp, err := g.EmitValue(b, "B", OrderComma, "0")
		if err != nil {
			return "", 0, err
		}
		g.AddInclude("cmath", "#include <cmath>")
		return fmt.Sprintf("std::pow(%s, %s)", base, exp), OrderPostfix, nil
	}
	spec, ok := arithmeticOps[op]
	if !ok {
		return "", 0, unknownOption(b, "OP", op)
	}
	rhsOrder := spec.order
	// - and / do not associate: their right operand must bind one level
	// tighter, so an equal-order child still gets wrapped
	switch op {
	case "MINUS":
		rhsOrder = OrderMultiplicative
	case "DIVIDE":
		rhsOrder = OrderPrefix
	}
	lhs, err := g.EmitValue(b, "A", spec.order, "0")
	if err != nil {
		return "", 0, err
	}
	rhs, err := g.EmitValue(b, "B", rhsOrder, "0")
	if err != nil {
		return "", 0, err
	}
	return fmt.Sprintf("%s %s %s", lhs, spec.op, rhs), spec.order, nil
}

func (g *Generator) mathConstant(b *block.Block) (string, Order, error) {
	switch b.Field("CONSTANT") {
	case "PI":
		g.AddInclude("cmath", "#include <cmath>")
		return "M_PI", OrderAtomic, nil
	case "E":
		g.AddInclude("cmath", "#include <cmath>")
		return "M_E", OrderAtomic, nil
	case "GOLDEN_RATIO":
		g.AddInclude("cmath", "#include <cmath>")
		return "(1 + std::sqrt(5)) / 2", OrderMultiplicative, nil
	case "SQRT2":
		g.AddInclude("cmath", "#include <cmath>")
		return "M_SQRT2", OrderAtomic, nil
	case "SQRT1_2":
		g.AddInclude("cmath", "#include <cmath>")
		return "M_SQRT1_2", OrderAtomic, nil
	case "INFINITY":
		g.AddInclude("limits", "#include <limits>")
		return "std::numeric_limits<double>::infinity()", OrderPostfix, nil
	}
	return "", 0, unknownOption(b, "CONSTANT", b.Field("CONSTANT"))
}

const isPrimeHelper = `bool %HELPER_NAME%(double n) {
  if (n == 2 || n == 3) {
    return true;
  }
  if (std::isnan(n) || n <= 1 || std::fmod(n, 1) != 0 ||
      std::fmod(n, 2) == 0 || std::fmod(n, 3) == 0) {
    return false;
  }
  for (double x = 6; x <= std::sqrt(n) + 1; x += 6) {
    if (std::fmod(n, x - 1) == 0 || std::fmod(n, x + 1) == 0) {
      return false;
    }
  }
  return true;
}
`

func (g *Generator) mathNumberProperty(b *block.Block) (string, Order, error) {
	prop := b.Field("PROPERTY")
	argOrder := OrderComma
	if prop == "POSITIVE" || prop == "NEGATIVE" {
		argOrder = OrderRelational
	}
	num, err := g.EmitValue(b, "NUMBER_TO_CHECK", argOrder, "0")
	if err != nil {
		return "", 0, err
	}
	switch prop {
	case "EVEN":
		g.AddInclude("cmath", "#include <cmath>")
		return fmt.Sprintf("std::fmod(%s, 2) == 0", num), OrderEquality, nil
	case "ODD":
		g.AddInclude("cmath", "#include <cmath>")
		return fmt.Sprintf("std::fmod(%s, 2) == 1", num), OrderEquality, nil
	case "WHOLE":
		g.AddInclude("cmath", "#include <cmath>")
		return fmt.Sprintf("std::fmod(%s, 1) == 0", num), OrderEquality, nil
	case "POSITIVE":
		return num + " > 0", OrderRelational, nil
	case "NEGATIVE":
		return num + " < 0", OrderRelational, nil
	case "DIVISIBLE_BY":
		divisor, err := g.EmitValue(b, "DIVISOR", OrderComma, "1")
		if err != nil {
			return "", 0, err
		}
		g.AddInclude("cmath", "#include <cmath>")
		return fmt.Sprintf("std::fmod(%s, %s) == 0", num, divisor), OrderEquality, nil
	case "PRIME":
		g.AddInclude("cmath", "#include <cmath>")
		name := g.DefineHelper("mathIsPrime", isPrimeHelper)
		return fmt.Sprintf("%s(%s)", name, num), OrderPostfix, nil
	}
	return "", 0, unknownOption(b, "PROPERTY", prop)
}

func (g *Generator) mathConstrain(b *block.Block) (string, Order, error) {
	value, err := g.EmitValue(b, "VALUE", OrderComma, "0")
	if err != nil {
		return "", 0, err
	}
	low, err := g.EmitValue(b, "LOW", OrderComma, "0")
	if err != nil {
		return "", 0, err
	}
	high, err := g.EmitValue(b, "HIGH", OrderComma, "0")
	if err != nil {
		return "", 0, err
	}
	g.AddInclude("algorithm", "#include <algorithm>")
	code := fmt.Sprintf("std::min(std::max(%s, %s), %s)", value, low, high)
	return code, OrderPostfix, nil
}

func (g *Generator) mathRound(b *block.Block) (string, Order, error) {
	var fn string
	switch b.Field("OP") {
	case "ROUND":
		fn = "std::round"
	case "ROUNDUP":
		fn = "std::ceil"
	case "ROUNDDOWN":
		fn = "std::floor"
	default:
		return "", 0, unknownOption(b, "OP", b.Field("OP"))
	}
	num, err := g.EmitValue(b, "NUM", OrderComma, "0")
	if err != nil {
		return "", 0, err
	}
	g.AddInclude("cmath", "#include <cmath>")
	return fmt.Sprintf("%s(%s)", fn, num), OrderPostfix, nil
}

func (g *Generator) mathModulo(b *block.Block) (string, Order, error) {
	dividend, err := g.EmitValue(b, "DIVIDEND", OrderComma, "0")
	if err != nil {
		return "", 0, err
	}
	divisor, err := g.EmitValue(b, "DIVISOR", OrderComma, "1")
	if err != nil {
		return "", 0, err
	}
	g.AddInclude("cmath", "#include <cmath>")
	return fmt.Sprintf("std::fmod(%s, %s)", dividend, divisor), OrderPostfix, nil
}
