// Package generator emits C++ source text from a decoded block workspace.
// Expressions compose through an operator-precedence protocol: every value
// rule reports the binding strength of the text it produced, and callers
// parenthesize exactly when that strength is too weak for the surrounding
// context.
package generator

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"blockc/internal/block"
)

// Failure classes. All are authoring errors in the workspace content; none
// are retried, and a run stops at the first one.
var (
	ErrUnknownBlock  = errors.New("no emission rule for block")
	ErrUnknownOption = errors.New("unknown option value")
	ErrMalformedTree = errors.New("malformed block tree")
	ErrBadLiteral    = errors.New("invalid literal")
)

// Generator holds transient state while emitting one workspace: the name
// table, the helper and include registries, and the loop nesting depth.
// A Generator is single-run; concurrent runs each construct their own.
type Generator struct {
	cfg        Config
	names      *nameTable
	helperKeys map[string]string
	helperDefs []string
	includes   map[string]string
	funcDefs   []string
	varOrder   []string
	varTypes   map[string]string
	loopDepth  int
}

func New(cfg Config) *Generator {
	g := &Generator{cfg: cfg}
	g.reset()
	return g
}

// reset clears all per-run state. Run calls it on entry so a reused
// Generator carries no helper names or bindings from a previous run.
func (g *Generator) reset() {
	g.names = newNameTable(g.cfg.ReservedWords)
	g.helperKeys = make(map[string]string)
	g.helperDefs = nil
	g.includes = make(map[string]string)
	g.funcDefs = nil
	g.varOrder = nil
	g.varTypes = make(map[string]string)
	g.loopDepth = 0
}

// Run emits the whole workspace as one C++ translation unit: includes,
// shared helpers, procedure definitions, then a main function wrapping the
// top-level statement stacks and the workspace variable declarations.
func (g *Generator) Run(ws *block.Workspace) (string, error) {
	g.reset()
	for _, v := range ws.Variables {
		g.varOrder = append(g.varOrder, g.names.Get(v.Name, NameVariable))
	}
	var body strings.Builder
	for _, top := range ws.Blocks {
		code, err := g.emitChain(top)
		if err != nil {
			return "", err
		}
		body.WriteString(code)
	}
	return g.finish(body.String()), nil
}

// EmitValue resolves the child connected to the named value slot and
// returns its text, parenthesized iff the child's produced order binds more
// weakly than order requires. An unconnected slot yields def.
func (g *Generator) EmitValue(b *block.Block, slot string, order Order, def string) (string, error) {
	child := b.Input(slot)
	if child == nil {
		return def, nil
	}
	code, inner, err := g.emitValueBlock(child)
	if err != nil {
		return "", err
	}
	if needsParens(inner, order) {
		code = "(" + code + ")"
	}
	return code, nil
}

// EmitStatements emits the statement chain connected to the named slot, or
// "" when nothing is connected. Each block in the chain supplies its own
// trailing newline.
func (g *Generator) EmitStatements(b *block.Block, slot string) (string, error) {
	child := b.Input(slot)
	if child == nil {
		return "", nil
	}
	return g.emitChain(child)
}

// emitChain walks next links from start. A revisited block means the
// serialized structure is cyclic; that is reported, not re-walked.
func (g *Generator) emitChain(start *block.Block) (string, error) {
	var sb strings.Builder
	seen := make(map[*block.Block]bool)
	for b := start; b != nil; b = b.Next {
		if seen[b] {
			return "", fmt.Errorf("%w: statement chain revisits block %q", ErrMalformedTree, b.ID)
		}
		seen[b] = true
		code, err := g.emitStatementBlock(b)
		if err != nil {
			return "", err
		}
		sb.WriteString(code)
	}
	return sb.String(), nil
}

// indent prefixes every non-empty line of text with one indent unit,
// preserving the trailing newline.
func (g *Generator) indent(text string) string {
	if text == "" {
		return ""
	}
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	for i, ln := range lines {
		if ln != "" {
			lines[i] = g.cfg.Indent + ln
		}
	}
	return strings.Join(lines, "\n") + "\n"
}

// finish assembles the translation unit around the emitted main body.
func (g *Generator) finish(body string) string {
	var sb strings.Builder
	if len(g.includes) > 0 {
		directives := make([]string, 0, len(g.includes))
		for _, d := range g.includes {
			directives = append(directives, d)
		}
		sort.Strings(directives)
		for _, d := range directives {
			sb.WriteString(d)
			sb.WriteByte('\n')
		}
		sb.WriteByte('\n')
	}
	for _, def := range g.helperDefs {
		sb.WriteString(def)
		sb.WriteByte('\n')
	}
	for _, def := range g.funcDefs {
		sb.WriteString(def)
		sb.WriteByte('\n')
	}
	sb.WriteString("int main() {\n")
	for _, name := range g.varOrder {
		sb.WriteString(g.cfg.Indent + declareVar(name, g.varTypes[name]) + "\n")
	}
	sb.WriteString(g.indent(body))
	sb.WriteString(g.cfg.Indent + "return 0;\n}\n")
	return sb.String()
}

// recordVarType pins a variable's declared type the first time something is
// assigned to it. A later assignment of a different type could not compile,
// so it is reported as an authoring error instead of emitted.
func (g *Generator) recordVarType(b *block.Block, name, cppType string) error {
	prev, ok := g.varTypes[name]
	if !ok {
		g.varTypes[name] = cppType
		return nil
	}
	if prev != cppType {
		return fmt.Errorf("%w: block %q assigns %s to variable %q already holding %s",
			ErrMalformedTree, b.ID, cppType, name, prev)
	}
	return nil
}

// declareVar renders one main-scope variable declaration. Variables never
// assigned anywhere default to double.
func declareVar(name, cppType string) string {
	switch cppType {
	case "std::string", "std::vector<double>":
		return cppType + " " + name + ";"
	}
	return "double " + name + " = 0;"
}

func unknownOption(b *block.Block, field, value string) error {
	return fmt.Errorf("%w: block %q field %s has value %q", ErrUnknownOption, b.ID, field, value)
}
