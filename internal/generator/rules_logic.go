package generator

import (
	"fmt"
	"strings"

	"blockc/internal/block"
)

func (g *Generator) logicBoolean(b *block.Block) (string, Order, error) {
	switch b.Field("BOOL") {
	case "TRUE":
		return "true", OrderAtomic, nil
	case "FALSE":
		return "false", OrderAtomic, nil
	}
	return "", 0, unknownOption(b, "BOOL", b.Field("BOOL"))
}

var compareOps = map[string]struct {
	op    string
	order Order
}{
	"EQ":  {"==", OrderEquality},
	"NEQ": {"!=", OrderEquality},
	"LT":  {"<", OrderRelational},
	"LTE": {"<=", OrderRelational},
	"GT":  {">", OrderRelational},
	"GTE": {">=", OrderRelational},
}

func (g *Generator) logicCompare(b *block.Block) (string, Order, error) {
	spec, ok := compareOps[b.Field("OP")]
	if !ok {
		return "", 0, unknownOption(b, "OP", b.Field("OP"))
	}
	lhs, err := g.EmitValue(b, "A", spec.order, "0")
	if err != nil {
		return "", 0, err
	}
	rhs, err := g.EmitValue(b, "B", spec.order, "0")
	if err != nil {
		return "", 0, err
	}
	return fmt.Sprintf("%s %s %s", lhs, spec.op, rhs), spec.order, nil
}

func (g *Generator) logicOperation(b *block.Block) (string, Order, error) {
	var op string
	var order Order
	switch b.Field("OP") {
	case "AND":
		op, order = "&&", OrderLogicalAnd
	case "OR":
		op, order = "||", OrderLogicalOr
	default:
		return "", 0, unknownOption(b, "OP", b.Field("OP"))
	}
	lhs, err := g.EmitValue(b, "A", order, "false")
	if err != nil {
		return "", 0, err
	}
	rhs, err := g.EmitValue(b, "B", order, "false")
	if err != nil {
		return "", 0, err
	}
	return fmt.Sprintf("%s %s %s", lhs, op, rhs), order, nil
}

func (g *Generator) logicNegate(b *block.Block) (string, Order, error) {
	operand, err := g.EmitValue(b, "BOOL", OrderPrefix, "true")
	if err != nil {
		return "", 0, err
	}
	return "!" + operand, OrderPrefix, nil
}

func (g *Generator) logicTernary(b *block.Block) (string, Order, error) {
	// ?: is right associative: its condition operand is a logical-or
	// expression, so a nested ternary there must be parenthesized or it
	// reads as the else branch
	cond, err := g.EmitValue(b, "IF", OrderLogicalOr, "false")
	if err != nil {
		return "", 0, err
	}
	then, err := g.EmitValue(b, "THEN", OrderConditional, "0")
	if err != nil {
		return "", 0, err
	}
	alt, err := g.EmitValue(b, "ELSE", OrderConditional, "0")
	if err != nil {
		return "", 0, err
	}
	return fmt.Sprintf("%s ? %s : %s", cond, then, alt), OrderConditional, nil
}

// controlsIf emits an if / else-if / else chain. The branch count comes
// from the block's serialized extra state; hand-built trees without it are
// still honored by probing the slot names.
func (g *Generator) controlsIf(b *block.Block) (string, error) {
	branches := b.Mutation.ElseIfCount + 1
	for b.Input(fmt.Sprintf("IF%d", branches)) != nil {
		branches++
	}
	var sb strings.Builder
	for i := 0; i < branches; i++ {
		cond, err := g.EmitValue(b, fmt.Sprintf("IF%d", i), OrderNone, "false")
		if err != nil {
			return "", err
		}
		body, err := g.EmitStatements(b, fmt.Sprintf("DO%d", i))
		if err != nil {
			return "", err
		}
		if i == 0 {
			sb.WriteString("if (" + cond + ") {\n")
		} else {
			sb.WriteString("else if (" + cond + ") {\n")
		}
		sb.WriteString(g.indent(body))
		sb.WriteString("}\n")
	}
	if b.Mutation.HasElse || b.Input("ELSE") != nil {
		body, err := g.EmitStatements(b, "ELSE")
		if err != nil {
			return "", err
		}
		sb.WriteString("else {\n")
		sb.WriteString(g.indent(body))
		sb.WriteString("}\n")
	}
	return sb.String(), nil
}
