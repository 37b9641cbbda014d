package generator

import "blockc/internal/block"

func (g *Generator) variablesGet(b *block.Block) (string, Order, error) {
	return g.names.Get(b.Field("VAR"), NameVariable), OrderAtomic, nil
}

// valueType classifies what a value block produces, for variable
// declarations. Blocks not in the string or list families all produce
// numeric (or numeric-convertible) values.
func valueType(b *block.Block) string {
	switch b.Kind {
	case block.KindText, block.KindTextJoin, block.KindTextChangeCase:
		return "std::string"
	case block.KindListsCreateWith:
		return "std::vector<double>"
	}
	return "double"
}

func (g *Generator) variablesSet(b *block.Block) (string, error) {
	value, err := g.EmitValue(b, "VALUE", OrderAssignment, "0")
	if err != nil {
		return "", err
	}
	name := g.names.Get(b.Field("VAR"), NameVariable)
	if child := b.Input("VALUE"); child != nil {
		if err := g.recordVarType(b, name, valueType(child)); err != nil {
			return "", err
		}
	}
	return name + " = " + value + ";\n", nil
}
