package generator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"blockc/internal/block"
)

func TestControlsIf(t *testing.T) {
	t.Run("if else-if else shape", func(t *testing.T) {
		g := newTestGenerator()
		b := tb("controls_if", nil, map[string]*block.Block{
			"IF0":  varGet("a"),
			"DO0":  varSet("x", num("1")),
			"IF1":  varGet("b"),
			"DO1":  varSet("x", num("2")),
			"ELSE": varSet("x", num("3")),
		})
		b.Mutation = block.Mutation{ElseIfCount: 1, HasElse: true}
		code, err := g.emitStatementBlock(b)
		require.NoError(t, err)
		require.Equal(t,
			"if (a) {\n"+
				"  x = 1;\n"+
				"}\n"+
				"else if (b) {\n"+
				"  x = 2;\n"+
				"}\n"+
				"else {\n"+
				"  x = 3;\n"+
				"}\n",
			code)
		require.Equal(t, 1, countOccurrences(code, "x = 1;"))
		require.Equal(t, 1, countOccurrences(code, "x = 2;"))
		require.Equal(t, 1, countOccurrences(code, "x = 3;"))
	})

	t.Run("branch count recovers without extra state", func(t *testing.T) {
		g := newTestGenerator()
		b := tb("controls_if", nil, map[string]*block.Block{
			"IF0": varGet("a"),
			"IF1": varGet("b"),
			"IF2": varGet("c"),
		})
		code, err := g.emitStatementBlock(b)
		require.NoError(t, err)
		require.Contains(t, code, "if (a) {")
		require.Contains(t, code, "else if (b) {")
		require.Contains(t, code, "else if (c) {")
		require.NotContains(t, code, "else {")
	})
}

func TestControlsRepeat(t *testing.T) {
	t.Run("literal count inlines and the counter is fresh", func(t *testing.T) {
		ws := &block.Workspace{
			Variables: []block.Variable{{ID: "v1", Name: "count"}},
			Blocks: []*block.Block{
				tb("controls_repeat_ext", nil, map[string]*block.Block{
					"TIMES": num("5"),
					"DO":    varSet("count", num("0")),
				}),
			},
		}
		out, err := newTestGenerator().Run(ws)
		require.NoError(t, err)
		// the workspace variable owns "count"; the loop counter moves over
		require.Contains(t, out, "for (int count2 = 0; count2 < 5; count2++) {")
		require.Contains(t, out, "count = 0;")
	})

	t.Run("dynamic count is bound once before the loop", func(t *testing.T) {
		g := newTestGenerator()
		b := tb("controls_repeat_ext", nil, map[string]*block.Block{
			"TIMES": tb("math_arithmetic", map[string]string{"OP": "MULTIPLY"},
				map[string]*block.Block{"A": varGet("n"), "B": num("2")}),
		})
		code, err := g.emitStatementBlock(b)
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(code, "int repeat_end = n * 2;\n"))
		require.Contains(t, code, "count < repeat_end;")
		require.Equal(t, 1, countOccurrences(code, "n * 2"))
	})
}

func TestControlsWhileUntil(t *testing.T) {
	g := newTestGenerator()
	until := tb("controls_whileUntil", map[string]string{"MODE": "UNTIL"},
		map[string]*block.Block{
			"BOOL": tb("logic_compare", map[string]string{"OP": "GT"},
				map[string]*block.Block{"A": varGet("x"), "B": num("10")}),
		})
	code, err := g.emitStatementBlock(until)
	require.NoError(t, err)
	require.Contains(t, code, "while (!(x > 10)) {")
}

func TestControlsFor(t *testing.T) {
	t.Run("literal bounds inline", func(t *testing.T) {
		g := newTestGenerator()
		b := tb("controls_for", map[string]string{"VAR": "i"}, map[string]*block.Block{
			"FROM": num("1"), "TO": num("10"), "BY": num("2"),
		})
		code, err := g.emitStatementBlock(b)
		require.NoError(t, err)
		require.Contains(t, code, "for (i = 1; i <= 10; i += 2) {")
	})

	t.Run("negative literal step counts down", func(t *testing.T) {
		g := newTestGenerator()
		b := tb("controls_for", map[string]string{"VAR": "i"}, map[string]*block.Block{
			"FROM": num("10"), "TO": num("1"), "BY": num("-1"),
		})
		code, err := g.emitStatementBlock(b)
		require.NoError(t, err)
		require.Contains(t, code, "for (i = 10; i >= 1; i += -1) {")
	})

	t.Run("computed bounds bind once", func(t *testing.T) {
		g := newTestGenerator()
		limit := tb("math_arithmetic", map[string]string{"OP": "ADD"},
			map[string]*block.Block{"A": varGet("n"), "B": num("1")})
		b := tb("controls_for", map[string]string{"VAR": "i"}, map[string]*block.Block{
			"FROM": num("0"), "TO": limit, "BY": num("1"),
		})
		code, err := g.emitStatementBlock(b)
		require.NoError(t, err)
		require.Contains(t, code, "double i_end = n + 1;\n")
		require.Equal(t, 1, countOccurrences(code, "n + 1"))
		require.Contains(t, code, "i <= i_end;")
	})
}

func TestControlsFlow(t *testing.T) {
	t.Run("break inside a loop", func(t *testing.T) {
		g := newTestGenerator()
		loop := tb("controls_whileUntil", map[string]string{"MODE": "WHILE"},
			map[string]*block.Block{
				"BOOL": tb("logic_boolean", map[string]string{"BOOL": "TRUE"}, nil),
				"DO":   tb("controls_flow_statements", map[string]string{"FLOW": "BREAK"}, nil),
			})
		code, err := g.emitStatementBlock(loop)
		require.NoError(t, err)
		require.Contains(t, code, "  break;\n")
	})

	t.Run("break outside a loop is an authoring error", func(t *testing.T) {
		g := newTestGenerator()
		b := tb("controls_flow_statements", map[string]string{"FLOW": "BREAK"}, nil)
		_, err := g.emitStatementBlock(b)
		require.ErrorIs(t, err, ErrMalformedTree)
	})
}

func TestLogicTernary(t *testing.T) {
	g := newTestGenerator()
	inner := tb("logic_ternary", nil, map[string]*block.Block{
		"IF": varGet("c"), "THEN": varGet("x"), "ELSE": varGet("y"),
	})

	t.Run("nested condition is parenthesized", func(t *testing.T) {
		outer := tb("logic_ternary", nil, map[string]*block.Block{
			"IF": inner, "THEN": varGet("a"), "ELSE": varGet("b"),
		})
		code, _, err := g.emitValueBlock(outer)
		require.NoError(t, err)
		require.Equal(t, "(c ? x : y) ? a : b", code)
	})

	t.Run("nested else branch stays flat", func(t *testing.T) {
		outer := tb("logic_ternary", nil, map[string]*block.Block{
			"IF": varGet("a"), "THEN": varGet("b"), "ELSE": inner,
		})
		code, _, err := g.emitValueBlock(outer)
		require.NoError(t, err)
		require.Equal(t, "a ? b : c ? x : y", code)
	})
}

func TestMathArithmetic(t *testing.T) {
	g := newTestGenerator()

	t.Run("equal order on the left stays flat", func(t *testing.T) {
		inner := tb("math_arithmetic", map[string]string{"OP": "MINUS"},
			map[string]*block.Block{"A": varGet("a"), "B": varGet("b")})
		outer := tb("math_arithmetic", map[string]string{"OP": "MINUS"},
			map[string]*block.Block{"A": inner, "B": varGet("c")})
		code, _, err := g.emitValueBlock(outer)
		require.NoError(t, err)
		require.Equal(t, "a - b - c", code)
	})

	t.Run("subtraction wraps an additive right operand", func(t *testing.T) {
		inner := tb("math_arithmetic", map[string]string{"OP": "MINUS"},
			map[string]*block.Block{"A": varGet("b"), "B": varGet("c")})
		outer := tb("math_arithmetic", map[string]string{"OP": "MINUS"},
			map[string]*block.Block{"A": varGet("a"), "B": inner})
		code, _, err := g.emitValueBlock(outer)
		require.NoError(t, err)
		require.Equal(t, "a - (b - c)", code)
	})

	t.Run("division wraps a multiplicative right operand", func(t *testing.T) {
		inner := tb("math_arithmetic", map[string]string{"OP": "MULTIPLY"},
			map[string]*block.Block{"A": varGet("b"), "B": varGet("c")})
		outer := tb("math_arithmetic", map[string]string{"OP": "DIVIDE"},
			map[string]*block.Block{"A": varGet("a"), "B": inner})
		code, _, err := g.emitValueBlock(outer)
		require.NoError(t, err)
		require.Equal(t, "a / (b * c)", code)
	})

	t.Run("power is a function call", func(t *testing.T) {
		b := tb("math_arithmetic", map[string]string{"OP": "POWER"},
			map[string]*block.Block{"A": varGet("x"), "B": num("3")})
		code, order, err := g.emitValueBlock(b)
		require.NoError(t, err)
		require.Equal(t, "std::pow(x, 3)", code)
		require.Equal(t, OrderPostfix, order)
	})

	t.Run("precedence mix end to end", func(t *testing.T) {
		sum := tb("math_arithmetic", map[string]string{"OP": "ADD"},
			map[string]*block.Block{"A": varGet("a"), "B": varGet("b")})
		product := tb("math_arithmetic", map[string]string{"OP": "MULTIPLY"},
			map[string]*block.Block{"A": sum, "B": varGet("c")})
		code, _, err := g.emitValueBlock(product)
		require.NoError(t, err)
		require.Equal(t, "(a + b) * c", code)
	})
}

func TestMathConstant(t *testing.T) {
	g := newTestGenerator()
	b := tb("math_constant", map[string]string{"CONSTANT": "PI"}, nil)
	code, order, err := g.emitValueBlock(b)
	require.NoError(t, err)
	require.Equal(t, "M_PI", code)
	require.Equal(t, OrderAtomic, order)

	b = tb("math_constant", map[string]string{"CONSTANT": "TAU"}, nil)
	_, _, err = g.emitValueBlock(b)
	require.ErrorIs(t, err, ErrUnknownOption)
}

func TestMathRound(t *testing.T) {
	g := newTestGenerator()
	for _, tc := range []struct {
		op   string
		want string
	}{
		{"ROUND", "std::round(x)"},
		{"ROUNDUP", "std::ceil(x)"},
		{"ROUNDDOWN", "std::floor(x)"},
	} {
		b := tb("math_round", map[string]string{"OP": tc.op},
			map[string]*block.Block{"NUM": varGet("x")})
		code, order, err := g.emitValueBlock(b)
		require.NoError(t, err)
		require.Equal(t, tc.want, code)
		require.Equal(t, OrderPostfix, order)
	}
}

func TestTextRules(t *testing.T) {
	g := newTestGenerator()

	t.Run("join coerces the first item", func(t *testing.T) {
		b := tb("text_join", nil, map[string]*block.Block{
			"ADD0": tb("text", map[string]string{"TEXT": "a"}, nil),
			"ADD1": varGet("s"),
		})
		b.Mutation = block.Mutation{ItemCount: 2}
		code, order, err := g.emitValueBlock(b)
		require.NoError(t, err)
		require.Equal(t, `std::string("a") + s`, code)
		require.Equal(t, OrderAdditive, order)
	})

	t.Run("charAt from start adjusts the index", func(t *testing.T) {
		b := tb("text_charAt", map[string]string{"WHERE": "FROM_START"},
			map[string]*block.Block{"VALUE": varGet("s"), "AT": num("1")})
		code, _, err := g.emitValueBlock(b)
		require.NoError(t, err)
		require.Equal(t, "s.at(0)", code)
	})

	t.Run("case conversion goes through one helper per case", func(t *testing.T) {
		upper := tb("text_changeCase", map[string]string{"CASE": "UPPERCASE"},
			map[string]*block.Block{"TEXT": varGet("s")})
		code, _, err := g.emitValueBlock(upper)
		require.NoError(t, err)
		require.Equal(t, "blockc_textUpperCase(s)", code)

		// same case again reuses the helper
		before := len(g.helperDefs)
		_, _, err = g.emitValueBlock(upper)
		require.NoError(t, err)
		require.Len(t, g.helperDefs, before)
	})

	t.Run("charAt from end goes through a helper", func(t *testing.T) {
		b := tb("text_charAt", map[string]string{"WHERE": "FROM_END"},
			map[string]*block.Block{"VALUE": varGet("s"), "AT": varGet("n")})
		code, _, err := g.emitValueBlock(b)
		require.NoError(t, err)
		require.Equal(t, "blockc_textCharFromEnd(s, n - 1)", code)
	})
}

func TestListsSingleEvaluation(t *testing.T) {
	t.Run("computed list binds once for set-from-end", func(t *testing.T) {
		g := newTestGenerator()
		made := tb("lists_create_with", nil, map[string]*block.Block{
			"ADD0": num("1"), "ADD1": num("2"), "ADD2": num("3"),
		})
		made.Mutation = block.Mutation{ItemCount: 3}
		b := tb("lists_setIndex", map[string]string{"MODE": "SET", "WHERE": "FROM_END"},
			map[string]*block.Block{"LIST": made, "AT": num("1"), "TO": num("9")})
		code, err := g.emitStatementBlock(b)
		require.NoError(t, err)
		require.Equal(t, 1, countOccurrences(code, "std::vector<double>{1, 2, 3}"))
		require.Contains(t, code, "auto &&tmp_list = std::vector<double>{1, 2, 3};\n")
		require.Contains(t, code, "tmp_list.at(tmp_list.size() - 1 - 0) = 9;\n")
	})

	t.Run("bare identifier needs no binding", func(t *testing.T) {
		g := newTestGenerator()
		b := tb("lists_setIndex", map[string]string{"MODE": "SET", "WHERE": "FROM_END"},
			map[string]*block.Block{"LIST": varGet("xs"), "AT": num("1"), "TO": num("9")})
		code, err := g.emitStatementBlock(b)
		require.NoError(t, err)
		require.Equal(t, "xs.at(xs.size() - 1 - 0) = 9;\n", code)
	})

	t.Run("remove-last helper evaluates its operand once", func(t *testing.T) {
		g := newTestGenerator()
		b := tb("lists_getIndex", map[string]string{"MODE": "GET_REMOVE", "WHERE": "LAST"},
			map[string]*block.Block{"VALUE": varGet("xs")})
		code, order, err := g.emitValueBlock(b)
		require.NoError(t, err)
		require.Equal(t, "blockc_listRemoveLast(xs)", code)
		require.Equal(t, OrderPostfix, order)
		require.Len(t, g.helperDefs, 1)
		require.Contains(t, g.helperDefs[0], "std::vector<double> &list")

		// second use reuses the helper
		_, _, err = g.emitValueBlock(b)
		require.NoError(t, err)
		require.Len(t, g.helperDefs, 1)
	})
}

func TestProcedures(t *testing.T) {
	g := newTestGenerator()
	def := tb("procedures_defreturn", map[string]string{"NAME": "double it"},
		map[string]*block.Block{
			"RETURN": tb("math_arithmetic", map[string]string{"OP": "MULTIPLY"},
				map[string]*block.Block{"A": varGet("x"), "B": num("2")}),
		})
	def.Mutation = block.Mutation{Params: []string{"x"}}
	code, err := g.emitStatementBlock(def)
	require.NoError(t, err)
	require.Empty(t, code, "definitions contribute no statement text")
	require.Len(t, g.funcDefs, 1)
	require.Equal(t, "double double_it(double x) {\n  return x * 2;\n}\n", g.funcDefs[0])

	call := tb("procedures_callreturn", nil, map[string]*block.Block{"ARG0": num("21")})
	call.Mutation = block.Mutation{Name: "double it", Params: []string{"x"}}
	expr, order, err := g.emitValueBlock(call)
	require.NoError(t, err)
	require.Equal(t, "double_it(21)", expr)
	require.Equal(t, OrderPostfix, order)
}
