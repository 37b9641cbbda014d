package generator

// Order ranks how tightly an expression binds in the C++ grammar. Lower
// binds tighter. Fractional levels slot between the integer anchors where
// the grammar distinguishes more finely (scope resolution sits between
// atomic and postfix). Only the relative order is contractual; the numeric
// values are free to change as long as the ranking holds.
type Order float64

const (
	OrderAtomic         Order = 0    // literals, identifiers
	OrderScope          Order = 0.5  // ::
	OrderPostfix        Order = 1    // () [] . -> expr++ expr--
	OrderPrefix         Order = 2    // ! ~ -expr +expr ++expr --expr
	OrderMultiplicative Order = 3    // * / %
	OrderAdditive       Order = 4    // + -
	OrderShift          Order = 5    // << >>
	OrderRelational     Order = 6    // < <= > >=
	OrderEquality       Order = 7    // == !=
	OrderBitwiseAnd     Order = 8    // &
	OrderBitwiseXor     Order = 9    // ^
	OrderBitwiseOr      Order = 10   // |
	OrderLogicalAnd     Order = 11   // &&
	OrderLogicalOr      Order = 12   // ||
	OrderConditional    Order = 13   // ?:
	OrderAssignment     Order = 13.5 // = += -= ...
	OrderComma          Order = 14   // ,
	OrderNone           Order = 99   // no surrounding constraint
)

// needsParens reports whether text produced at inner order must be wrapped
// before insertion into a context requiring outer order. Equal order never
// wraps; right-associative forms are emitted as function calls, not infix
// operators, so equal-order composition is always left-associative.
func needsParens(inner, outer Order) bool {
	return inner > outer
}
