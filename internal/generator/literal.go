package generator

import (
	"regexp"
	"strconv"
)

var identPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// isSimpleExpr reports whether code is a bare identifier, i.e. re-emitting
// it cannot repeat a side effect. Rules that need an operand more than once
// bind anything else to a fresh name first.
func isSimpleExpr(code string) bool {
	return identPattern.MatchString(code)
}

// isNumberLiteral reports whether code is a plain numeric literal.
func isNumberLiteral(code string) bool {
	_, err := strconv.ParseFloat(code, 64)
	return err == nil
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
