package generator

import (
	"fmt"
	"strings"

	"blockc/internal/block"
)

const emptyList = "std::vector<double>()"

func (g *Generator) listsCreateWith(b *block.Block) (string, Order, error) {
	g.AddInclude("vector", "#include <vector>")
	n := b.Mutation.ItemCount
	for b.Input(fmt.Sprintf("ADD%d", n)) != nil {
		n++
	}
	items := make([]string, 0, n)
	for i := 0; i < n; i++ {
		item, err := g.EmitValue(b, fmt.Sprintf("ADD%d", i), OrderAssignment, "0")
		if err != nil {
			return "", 0, err
		}
		items = append(items, item)
	}
	return "std::vector<double>{" + strings.Join(items, ", ") + "}", OrderPostfix, nil
}

func (g *Generator) listsLength(b *block.Block) (string, Order, error) {
	g.AddInclude("vector", "#include <vector>")
	list, err := g.EmitValue(b, "VALUE", OrderPostfix, emptyList)
	if err != nil {
		return "", 0, err
	}
	return list + ".size()", OrderPostfix, nil
}

// Shared list helpers. Each takes the list by reference, so a computed list
// operand is evaluated exactly once at the call site no matter how often
// the helper body touches it.
const (
	listGetFromEndHelper = `double %HELPER_NAME%(const std::vector<double> &list, int n) {
  return list.at(list.size() - 1 - n);
}
`
	listRemoveLastHelper = `double %HELPER_NAME%(std::vector<double> &list) {
  double value = list.back();
  list.pop_back();
  return value;
}
`
	listRemoveFirstHelper = `double %HELPER_NAME%(std::vector<double> &list) {
  double value = list.front();
  list.erase(list.begin());
  return value;
}
`
	listRemoveAtHelper = `double %HELPER_NAME%(std::vector<double> &list, int n) {
  double value = list.at(n);
  list.erase(list.begin() + n);
  return value;
}
`
	listRemoveFromEndHelper = `double %HELPER_NAME%(std::vector<double> &list, int n) {
  int index = static_cast<int>(list.size()) - 1 - n;
  double value = list.at(index);
  list.erase(list.begin() + index);
  return value;
}
`
)

// listsGetIndexValue handles the expression forms: GET reads an element,
// GET_REMOVE reads it and removes it through a by-reference helper.
func (g *Generator) listsGetIndexValue(b *block.Block) (string, Order, error) {
	g.AddInclude("vector", "#include <vector>")
	mode := b.Field("MODE")
	if mode == "" {
		mode = "GET"
	}
	where := b.Field("WHERE")
	if where == "" {
		where = "FROM_START"
	}

	switch mode {
	case "GET":
		list, err := g.EmitValue(b, "VALUE", OrderPostfix, emptyList)
		if err != nil {
			return "", 0, err
		}
		switch where {
		case "FIRST":
			return list + ".front()", OrderPostfix, nil
		case "LAST":
			return list + ".back()", OrderPostfix, nil
		case "FROM_START":
			at, err := g.AdjustIndex(b, "AT", 0, false, OrderNone)
			if err != nil {
				return "", 0, err
			}
			return fmt.Sprintf("%s.at(%s)", list, at), OrderPostfix, nil
		case "FROM_END":
			at, err := g.AdjustIndex(b, "AT", 0, false, OrderComma)
			if err != nil {
				return "", 0, err
			}
			name := g.DefineHelper("listGetFromEnd", listGetFromEndHelper)
			return fmt.Sprintf("%s(%s, %s)", name, list, at), OrderPostfix, nil
		}
		return "", 0, unknownOption(b, "WHERE", where)

	case "GET_REMOVE":
		list, err := g.EmitValue(b, "VALUE", OrderComma, emptyList)
		if err != nil {
			return "", 0, err
		}
		switch where {
		case "FIRST":
			name := g.DefineHelper("listRemoveFirst", listRemoveFirstHelper)
			return fmt.Sprintf("%s(%s)", name, list), OrderPostfix, nil
		case "LAST":
			name := g.DefineHelper("listRemoveLast", listRemoveLastHelper)
			return fmt.Sprintf("%s(%s)", name, list), OrderPostfix, nil
		case "FROM_START":
			at, err := g.AdjustIndex(b, "AT", 0, false, OrderComma)
			if err != nil {
				return "", 0, err
			}
			name := g.DefineHelper("listRemoveAt", listRemoveAtHelper)
			return fmt.Sprintf("%s(%s, %s)", name, list, at), OrderPostfix, nil
		case "FROM_END":
			at, err := g.AdjustIndex(b, "AT", 0, false, OrderComma)
			if err != nil {
				return "", 0, err
			}
			name := g.DefineHelper("listRemoveFromEnd", listRemoveFromEndHelper)
			return fmt.Sprintf("%s(%s, %s)", name, list, at), OrderPostfix, nil
		}
		return "", 0, unknownOption(b, "WHERE", where)
	}
	return "", 0, unknownOption(b, "MODE", mode)
}

// bindList returns an expression safe to mention repeatedly. Bare
// identifiers pass through; anything else binds to a fresh reference first
// and the binding statement comes back as prefix.
func (g *Generator) bindList(list string) (expr, prefix string) {
	if isSimpleExpr(list) {
		return list, ""
	}
	tmp := g.names.Distinct("tmp_list", NameVariable)
	return tmp, "auto &&" + tmp + " = " + list + ";\n"
}

// listsGetIndexStatement handles MODE=REMOVE as a statement.
func (g *Generator) listsGetIndexStatement(b *block.Block) (string, error) {
	g.AddInclude("vector", "#include <vector>")
	if mode := b.Field("MODE"); mode != "REMOVE" {
		return "", unknownOption(b, "MODE", mode)
	}
	where := b.Field("WHERE")
	if where == "" {
		where = "FROM_START"
	}
	list, err := g.EmitValue(b, "VALUE", OrderPostfix, emptyList)
	if err != nil {
		return "", err
	}
	if where == "LAST" {
		return list + ".pop_back();\n", nil
	}
	expr, prefix := g.bindList(list)
	switch where {
	case "FIRST":
		return prefix + fmt.Sprintf("%s.erase(%s.begin());\n", expr, expr), nil
	case "FROM_START":
		at, err := g.AdjustIndex(b, "AT", 0, false, OrderAdditive)
		if err != nil {
			return "", err
		}
		return prefix + fmt.Sprintf("%s.erase(%s.begin() + %s)", expr, expr, at) + ";\n", nil
	case "FROM_END":
		at, err := g.AdjustIndex(b, "AT", 0, false, OrderComma)
		if err != nil {
			return "", err
		}
		name := g.DefineHelper("listRemoveFromEnd", listRemoveFromEndHelper)
		return prefix + fmt.Sprintf("%s(%s, %s);\n", name, expr, at), nil
	}
	return "", unknownOption(b, "WHERE", where)
}

// listsSetIndex writes or inserts an element. Forms that mention the list
// twice bind computed list operands first so they evaluate once.
func (g *Generator) listsSetIndex(b *block.Block) (string, error) {
	g.AddInclude("vector", "#include <vector>")
	mode := b.Field("MODE")
	if mode == "" {
		mode = "SET"
	}
	where := b.Field("WHERE")
	if where == "" {
		where = "FROM_START"
	}
	list, err := g.EmitValue(b, "LIST", OrderPostfix, emptyList)
	if err != nil {
		return "", err
	}
	value, err := g.EmitValue(b, "TO", OrderAssignment, "0")
	if err != nil {
		return "", err
	}

	switch mode {
	case "SET":
		switch where {
		case "FIRST":
			return fmt.Sprintf("%s.front() = %s;\n", list, value), nil
		case "LAST":
			return fmt.Sprintf("%s.back() = %s;\n", list, value), nil
		case "FROM_START":
			at, err := g.AdjustIndex(b, "AT", 0, false, OrderNone)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("%s.at(%s) = %s;\n", list, at, value), nil
		case "FROM_END":
			at, err := g.AdjustIndex(b, "AT", 0, false, OrderMultiplicative)
			if err != nil {
				return "", err
			}
			expr, prefix := g.bindList(list)
			stmt := fmt.Sprintf("%s.at(%s.size() - 1 - %s) = %s;\n", expr, expr, at, value)
			return prefix + stmt, nil
		}
		return "", unknownOption(b, "WHERE", where)

	case "INSERT":
		if where == "LAST" {
			return fmt.Sprintf("%s.push_back(%s);\n", list, value), nil
		}
		expr, prefix := g.bindList(list)
		switch where {
		case "FIRST":
			return prefix + fmt.Sprintf("%s.insert(%s.begin(), %s);\n", expr, expr, value), nil
		case "FROM_START":
			at, err := g.AdjustIndex(b, "AT", 0, false, OrderAdditive)
			if err != nil {
				return "", err
			}
			return prefix + fmt.Sprintf("%s.insert(%s.begin() + %s, %s);\n", expr, expr, at, value), nil
		case "FROM_END":
			at, err := g.AdjustIndex(b, "AT", 0, false, OrderMultiplicative)
			if err != nil {
				return "", err
			}
			stmt := fmt.Sprintf("%s.insert(%s.begin() + %s.size() - 1 - %s, %s);\n", expr, expr, expr, at, value)
			return prefix + stmt, nil
		}
		return "", unknownOption(b, "WHERE", where)
	}
	return "", unknownOption(b, "MODE", mode)
}
