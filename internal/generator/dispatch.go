package generator

import (
	"fmt"

	"blockc/internal/block"
)

// emitValueBlock dispatches a value-producing block to its emission rule,
// returning the text and the order it binds at. The kind set is closed at
// decode time; the default arm fires only when a statement-only block is
// connected into a value slot.
func (g *Generator) emitValueBlock(b *block.Block) (string, Order, error) {
	switch b.Kind {
	case block.KindLogicBoolean:
		return g.logicBoolean(b)
	case block.KindLogicCompare:
		return g.logicCompare(b)
	case block.KindLogicOperation:
		return g.logicOperation(b)
	case block.KindLogicNegate:
		return g.logicNegate(b)
	case block.KindLogicTernary:
		return g.logicTernary(b)
	case block.KindMathNumber:
		return g.mathNumber(b)
	case block.KindMathArithmetic:
		return g.mathArithmetic(b)
	case block.KindMathConstant:
		return g.mathConstant(b)
	case block.KindMathNumberProperty:
		return g.mathNumberProperty(b)
	case block.KindMathConstrain:
		return g.mathConstrain(b)
	case block.KindMathModulo:
		return g.mathModulo(b)
	case block.KindMathRound:
		return g.mathRound(b)
	case block.KindText:
		return g.textLiteral(b)
	case block.KindTextJoin:
		return g.textJoin(b)
	case block.KindTextLength:
		return g.textLength(b)
	case block.KindTextIsEmpty:
		return g.textIsEmpty(b)
	case block.KindTextCharAt:
		return g.textCharAt(b)
	case block.KindTextChangeCase:
		return g.textChangeCase(b)
	case block.KindListsCreateWith:
		return g.listsCreateWith(b)
	case block.KindListsLength:
		return g.listsLength(b)
	case block.KindListsGetIndex:
		return g.listsGetIndexValue(b)
	case block.KindVariablesGet:
		return g.variablesGet(b)
	case block.KindProceduresCallReturn:
		return g.proceduresCall(b)
	}
	return "", 0, fmt.Errorf("%w: %q (%s) cannot produce a value", ErrUnknownBlock, b.ID, b.Type)
}

// emitStatementBlock dispatches one statement block to its rule. The
// returned text is zero or more newline-terminated statements; procedure
// definitions emit into the run's function list and return "".
func (g *Generator) emitStatementBlock(b *block.Block) (string, error) {
	switch b.Kind {
	case block.KindControlsIf:
		return g.controlsIf(b)
	case block.KindControlsRepeatExt:
		return g.controlsRepeat(b)
	case block.KindControlsWhileUntil:
		return g.controlsWhileUntil(b)
	case block.KindControlsFor:
		return g.controlsFor(b)
	case block.KindControlsFlow:
		return g.controlsFlow(b)
	case block.KindTextPrint:
		return g.textPrint(b)
	case block.KindListsGetIndex:
		return g.listsGetIndexStatement(b)
	case block.KindListsSetIndex:
		return g.listsSetIndex(b)
	case block.KindVariablesSet:
		return g.variablesSet(b)
	case block.KindProceduresDefNoReturn, block.KindProceduresDefReturn:
		return g.proceduresDef(b)
	case block.KindProceduresCallNoReturn:
		return g.proceduresCallStatement(b)
	}
	return "", fmt.Errorf("%w: %q (%s) cannot be used as a statement", ErrUnknownBlock, b.ID, b.Type)
}
