package generator

import (
	"fmt"
	"strings"

	"blockc/internal/block"
)

const emptyString = `std::string("")`

func (g *Generator) textLiteral(b *block.Block) (string, Order, error) {
	return g.Quote(b.Field("TEXT")), OrderAtomic, nil
}

// textJoin concatenates its items. The first operand is forced to
// std::string so the + chain is string concatenation even when the first
// item is a bare literal.
func (g *Generator) textJoin(b *block.Block) (string, Order, error) {
	g.AddInclude("string", "#include <string>")
	n := b.Mutation.ItemCount
	for b.Input(fmt.Sprintf("ADD%d", n)) != nil {
		n++
	}
	if n == 0 {
		return emptyString, OrderPostfix, nil
	}
	first, err := g.EmitValue(b, "ADD0", OrderComma, `""`)
	if err != nil {
		return "", 0, err
	}
	parts := []string{"std::string(" + first + ")"}
	for i := 1; i < n; i++ {
		item, err := g.EmitValue(b, fmt.Sprintf("ADD%d", i), OrderAdditive, `""`)
		if err != nil {
			return "", 0, err
		}
		parts = append(parts, item)
	}
	if len(parts) == 1 {
		return parts[0], OrderPostfix, nil
	}
	return strings.Join(parts, " + "), OrderAdditive, nil
}

func (g *Generator) textLength(b *block.Block) (string, Order, error) {
	g.AddInclude("string", "#include <string>")
	value, err := g.EmitValue(b, "VALUE", OrderPostfix, emptyString)
	if err != nil {
		return "", 0, err
	}
	return value + ".length()", OrderPostfix, nil
}

func (g *Generator) textIsEmpty(b *block.Block) (string, Order, error) {
	g.AddInclude("string", "#include <string>")
	value, err := g.EmitValue(b, "VALUE", OrderPostfix, emptyString)
	if err != nil {
		return "", 0, err
	}
	return value + ".empty()", OrderPostfix, nil
}

const charFromEndHelper = `char %HELPER_NAME%(const std::string &text, int n) {
  return text.at(text.size() - 1 - n);
}
`

func (g *Generator) textCharAt(b *block.Block) (string, Order, error) {
	g.AddInclude("string", "#include <string>")
	where := b.Field("WHERE")
	if where == "" {
		where = "FROM_START"
	}
	switch where {
	case "FIRST":
		text, err := g.EmitValue(b, "VALUE", OrderPostfix, emptyString)
		if err != nil {
			return "", 0, err
		}
		return text + ".front()", OrderPostfix, nil
	case "LAST":
		text, err := g.EmitValue(b, "VALUE", OrderPostfix, emptyString)
		if err != nil {
			return "", 0, err
		}
		return text + ".back()", OrderPostfix, nil
	case "FROM_START":
		text, err := g.EmitValue(b, "VALUE", OrderPostfix, emptyString)
		if err != nil {
			return "", 0, err
		}
		at, err := g.AdjustIndex(b, "AT", 0, false, OrderNone)
		if err != nil {
			return "", 0, err
		}
		return fmt.Sprintf("%s.at(%s)", text, at), OrderPostfix, nil
	case "FROM_END":
		text, err := g.EmitValue(b, "VALUE", OrderComma, emptyString)
		if err != nil {
			return "", 0, err
		}
		at, err := g.AdjustIndex(b, "AT", 0, false, OrderComma)
		if err != nil {
			return "", 0, err
		}
		name := g.DefineHelper("textCharFromEnd", charFromEndHelper)
		return fmt.Sprintf("%s(%s, %s)", name, text, at), OrderPostfix, nil
	}
	return "", 0, unknownOption(b, "WHERE", where)
}

const (
	textUpperCaseHelper = `std::string %HELPER_NAME%(std::string text) {
  std::transform(text.begin(), text.end(), text.begin(), ::toupper);
  return text;
}
`
	textLowerCaseHelper = `std::string %HELPER_NAME%(std::string text) {
  std::transform(text.begin(), text.end(), text.begin(), ::tolower);
  return text;
}
`
	textTitleCaseHelper = `std::string %HELPER_NAME%(std::string text) {
  bool boundary = true;
  for (char &c : text) {
    if (std::isspace(static_cast<unsigned char>(c))) {
      boundary = true;
    } else if (boundary) {
      c = std::toupper(static_cast<unsigned char>(c));
      boundary = false;
    } else {
      c = std::tolower(static_cast<unsigned char>(c));
    }
  }
  return text;
}
`
)

func (g *Generator) textChangeCase(b *block.Block) (string, Order, error) {
	var key, tmpl string
	switch b.Field("CASE") {
	case "UPPERCASE":
		key, tmpl = "textUpperCase", textUpperCaseHelper
		g.AddInclude("algorithm", "#include <algorithm>")
	case "LOWERCASE":
		key, tmpl = "textLowerCase", textLowerCaseHelper
		g.AddInclude("algorithm", "#include <algorithm>")
	case "TITLECASE":
		key, tmpl = "textTitleCase", textTitleCaseHelper
	default:
		return "", 0, unknownOption(b, "CASE", b.Field("CASE"))
	}
	text, err := g.EmitValue(b, "TEXT", OrderComma, emptyString)
	if err != nil {
		return "", 0, err
	}
	g.AddInclude("string", "#include <string>")
	g.AddInclude("cctype", "#include <cctype>")
	name := g.DefineHelper(key, tmpl)
	return fmt.Sprintf("%s(%s)", name, text), OrderPostfix, nil
}

func (g *Generator) textPrint(b *block.Block) (string, error) {
	value, err := g.EmitValue(b, "TEXT", OrderShift, `""`)
	if err != nil {
		return "", err
	}
	g.AddInclude("iostream", "#include <iostream>")
	return "std::cout << " + value + " << std::endl;\n", nil
}
