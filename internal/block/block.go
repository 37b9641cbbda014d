// Package block models a workspace of visual-program blocks: typed nodes
// carrying field values, named input connections, and next-statement links.
// The package only describes the tree; emission lives in internal/generator.
package block

// Kind identifies a block type from the closed set this toolchain emits.
// Decoding rejects type tags outside this set, so downstream dispatch never
// sees an unclassified block.
type Kind int

const (
	KindInvalid Kind = iota

	KindControlsIf
	KindControlsRepeatExt
	KindControlsWhileUntil
	KindControlsFor
	KindControlsFlow

	KindLogicBoolean
	KindLogicCompare
	KindLogicOperation
	KindLogicNegate
	KindLogicTernary

	KindMathNumber
	KindMathArithmetic
	KindMathConstant
	KindMathNumberProperty
	KindMathConstrain
	KindMathModulo
	KindMathRound

	KindText
	KindTextJoin
	KindTextLength
	KindTextIsEmpty
	KindTextCharAt
	KindTextChangeCase
	KindTextPrint

	KindListsCreateWith
	KindListsLength
	KindListsGetIndex
	KindListsSetIndex

	KindVariablesGet
	KindVariablesSet

	KindProceduresDefNoReturn
	KindProceduresDefReturn
	KindProceduresCallNoReturn
	KindProceduresCallReturn
)

var kindByType = map[string]Kind{
	"controls_if":              KindControlsIf,
	"controls_repeat_ext":      KindControlsRepeatExt,
	"controls_whileUntil":      KindControlsWhileUntil,
	"controls_for":             KindControlsFor,
	"controls_flow_statements": KindControlsFlow,

	"logic_boolean":   KindLogicBoolean,
	"logic_compare":   KindLogicCompare,
	"logic_operation": KindLogicOperation,
	"logic_negate":    KindLogicNegate,
	"logic_ternary":   KindLogicTernary,

	"math_number":          KindMathNumber,
	"math_arithmetic":      KindMathArithmetic,
	"math_constant":        KindMathConstant,
	"math_number_property": KindMathNumberProperty,
	"math_constrain":       KindMathConstrain,
	"math_modulo":          KindMathModulo,
	"math_round":           KindMathRound,

	"text":            KindText,
	"text_join":       KindTextJoin,
	"text_length":     KindTextLength,
	"text_isEmpty":    KindTextIsEmpty,
	"text_charAt":     KindTextCharAt,
	"text_changeCase": KindTextChangeCase,
	"text_print":      KindTextPrint,

	"lists_create_with": KindListsCreateWith,
	"lists_length":      KindListsLength,
	"lists_getIndex":    KindListsGetIndex,
	"lists_setIndex":    KindListsSetIndex,

	"variables_get": KindVariablesGet,
	"variables_set": KindVariablesSet,

	"procedures_defnoreturn":  KindProceduresDefNoReturn,
	"procedures_defreturn":    KindProceduresDefReturn,
	"procedures_callnoreturn": KindProceduresCallNoReturn,
	"procedures_callreturn":   KindProceduresCallReturn,
}

// KindOf maps a serialized type tag to its Kind. The second result is false
// for tags outside the supported set.
func KindOf(typeTag string) (Kind, bool) {
	k, ok := kindByType[typeTag]
	return k, ok
}

// Block is one node of the program tree. Inputs holds both value and
// statement connections; which a given slot is follows from the block type,
// so the reader decides, not the model.
type Block struct {
	ID       string
	Type     string
	Kind     Kind
	Fields   map[string]string
	Inputs   map[string]*Block
	Next     *Block
	Mutation Mutation
}

// Mutation carries the per-type extra state some blocks serialize: branch
// counts for conditionals, procedure names and parameter lists for
// definitions and calls.
type Mutation struct {
	Name        string
	Params      []string
	ElseIfCount int
	HasElse     bool
	ItemCount   int
}

// Field returns the named field value, or "" when absent.
func (b *Block) Field(name string) string {
	return b.Fields[name]
}

// Input returns the block connected to the named slot, or nil.
func (b *Block) Input(name string) *Block {
	return b.Inputs[name]
}

// Variable is one entry of the workspace variable map.
type Variable struct {
	ID   string
	Name string
}

// Workspace is a decoded program: its variable declarations and the
// top-level block stacks.
type Workspace struct {
	Variables []Variable
	Blocks    []*Block
}
