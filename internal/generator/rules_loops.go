package generator

import (
	"fmt"
	"strconv"

	"blockc/internal/block"
)

// emitLoopBody emits the DO chain of a loop block with the loop depth
// raised, so break/continue inside it validate.
func (g *Generator) emitLoopBody(b *block.Block) (string, error) {
	g.loopDepth++
	body, err := g.EmitStatements(b, "DO")
	g.loopDepth--
	return body, err
}

// controlsRepeat emits a counting loop running TIMES iterations. A dynamic
// count is bound to a local first so it is evaluated once, before the loop.
func (g *Generator) controlsRepeat(b *block.Block) (string, error) {
	times, err := g.EmitValue(b, "TIMES", OrderAssignment, "0")
	if err != nil {
		return "", err
	}
	var prefix string
	end := times
	if _, aerr := strconv.Atoi(times); aerr != nil {
		endVar := g.names.Distinct("repeat_end", NameVariable)
		prefix = "int " + endVar + " = " + times + ";\n"
		end = endVar
	}
	body, err := g.emitLoopBody(b)
	if err != nil {
		return "", err
	}
	loopVar := g.names.Distinct("count", NameVariable)
	head := fmt.Sprintf("for (int %s = 0; %s < %s; %s++) {\n", loopVar, loopVar, end, loopVar)
	return prefix + head + g.indent(body) + "}\n", nil
}

func (g *Generator) controlsWhileUntil(b *block.Block) (string, error) {
	until := false
	switch b.Field("MODE") {
	case "WHILE":
	case "UNTIL":
		until = true
	default:
		return "", unknownOption(b, "MODE", b.Field("MODE"))
	}
	condOrder := OrderNone
	if until {
		condOrder = OrderPrefix
	}
	cond, err := g.EmitValue(b, "BOOL", condOrder, "false")
	if err != nil {
		return "", err
	}
	if until {
		cond = "!" + cond
	}
	body, err := g.emitLoopBody(b)
	if err != nil {
		return "", err
	}
	return "while (" + cond + ") {\n" + g.indent(body) + "}\n", nil
}

// controlsFor emits a from/to/by loop over a workspace variable. Literal
// bounds inline directly; computed bounds and steps are bound to locals so
// each is evaluated once, and a computed step decides the loop direction at
// run time.
func (g *Generator) controlsFor(b *block.Block) (string, error) {
	v := g.names.Get(b.Field("VAR"), NameVariable)
	from, err := g.EmitValue(b, "FROM", OrderAssignment, "0")
	if err != nil {
		return "", err
	}
	to, err := g.EmitValue(b, "TO", OrderAssignment, "0")
	if err != nil {
		return "", err
	}
	by, err := g.EmitValue(b, "BY", OrderAssignment, "1")
	if err != nil {
		return "", err
	}
	body, err := g.emitLoopBody(b)
	if err != nil {
		return "", err
	}

	var prefix string
	bind := func(code, hint string) string {
		if isNumberLiteral(code) || isSimpleExpr(code) {
			return code
		}
		name := g.names.Distinct(v+"_"+hint, NameVariable)
		prefix += "double " + name + " = " + code + ";\n"
		return name
	}
	from = bind(from, "start")
	to = bind(to, "end")
	by = bind(by, "inc")

	var head string
	if inc, perr := strconv.ParseFloat(by, 64); perr == nil {
		cmp := "<="
		if inc < 0 {
			cmp = ">="
		}
		head = fmt.Sprintf("for (%s = %s; %s %s %s; %s += %s) {\n", v, from, v, cmp, to, v, by)
	} else {
		cond := fmt.Sprintf("%s >= 0 ? %s <= %s : %s >= %s", by, v, to, v, to)
		head = fmt.Sprintf("for (%s = %s; %s; %s += %s) {\n", v, from, cond, v, by)
	}
	return prefix + head + g.indent(body) + "}\n", nil
}

func (g *Generator) controlsFlow(b *block.Block) (string, error) {
	var stmt string
	switch b.Field("FLOW") {
	case "BREAK":
		stmt = "break;\n"
	case "CONTINUE":
		stmt = "continue;\n"
	default:
		return "", unknownOption(b, "FLOW", b.Field("FLOW"))
	}
	if g.loopDepth == 0 {
		return "", fmt.Errorf("%w: block %q uses %s outside of a loop", ErrMalformedTree, b.ID, b.Field("FLOW"))
	}
	return stmt, nil
}
