package generator

import (
	"fmt"
	"strings"

	"blockc/internal/block"
)

// proceduresDef emits a function definition into the run's function list
// and contributes nothing to the statement stream. Parameters live in the
// variable namespace, like workspace variables.
func (g *Generator) proceduresDef(b *block.Block) (string, error) {
	name := g.names.Get(b.Field("NAME"), NameProcedure)
	params := make([]string, 0, len(b.Mutation.Params))
	for _, p := range b.Mutation.Params {
		params = append(params, "double "+g.names.Get(p, NameVariable))
	}

	// break/continue inside the body must resolve against the body's own
	// loops, not whatever loop the call site sits in
	savedDepth := g.loopDepth
	g.loopDepth = 0
	body, err := g.EmitStatements(b, "STACK")
	g.loopDepth = savedDepth
	if err != nil {
		return "", err
	}

	retType := "void"
	if b.Kind == block.KindProceduresDefReturn {
		retType = "double"
		ret, err := g.EmitValue(b, "RETURN", OrderNone, "0")
		if err != nil {
			return "", err
		}
		body += "return " + ret + ";\n"
	}
	def := fmt.Sprintf("%s %s(%s) {\n%s}\n", retType, name, strings.Join(params, ", "), g.indent(body))
	g.funcDefs = append(g.funcDefs, def)
	return "", nil
}

func (g *Generator) proceduresCall(b *block.Block) (string, Order, error) {
	logical := b.Mutation.Name
	if logical == "" {
		logical = b.Field("NAME")
	}
	name := g.names.Get(logical, NameProcedure)
	argc := len(b.Mutation.Params)
	for b.Input(fmt.Sprintf("ARG%d", argc)) != nil {
		argc++
	}
	args := make([]string, 0, argc)
	for i := 0; i < argc; i++ {
		arg, err := g.EmitValue(b, fmt.Sprintf("ARG%d", i), OrderComma, "0")
		if err != nil {
			return "", 0, err
		}
		args = append(args, arg)
	}
	return fmt.Sprintf("%s(%s)", name, strings.Join(args, ", ")), OrderPostfix, nil
}

func (g *Generator) proceduresCallStatement(b *block.Block) (string, error) {
	code, _, err := g.proceduresCall(b)
	if err != nil {
		return "", err
	}
	return code + ";\n", nil
}
