package operator

import "math"

// Mode selects which of an operator's two precedence values to read:
// its value when it is the next token of input, or its value when it is
// the token at the top of the operator stack. Splitting precedence this
// way (rather than carrying a separate associativity flag) lets one
// scheduling loop handle prefix, postfix, infix, and grouping operators
// uniformly.
type Mode int

const (
	InputPrecedence Mode = iota
	StackPrecedence
)

// termPrecedence is assigned to every Term so it is always shifted
// immediately, regardless of mode.
const termPrecedence = math.MaxInt32

// tablePrecedence returns operator op's raw two-precedence table value,
// before the uniform +1 offset that makes an empty input/stack
// (precedence 0) strictly dominated by every real operator.
//
// BitNot shares the Not/Negative tier: all three are right-associative
// prefix operators and nothing in the grammar distinguishes their
// binding strength.
func tablePrecedence(op Operator, mode Mode) int {
	isInput := mode == InputPrecedence

	switch op.Kind {
	case Substitute:
		if isInput {
			return 4
		}
		return 3
	case Add, Subtract:
		if isInput {
			return 5
		}
		return 6
	case Multiply:
		if isInput {
			return 7
		}
		return 8
	case Negative, Not, BitNot:
		if isInput {
			return 10
		}
		return 9
	case Nonnize, Propagate, FunctionCall:
		if isInput {
			return 11
		}
		return 12
	case MemberAccess:
		if isInput {
			return 13
		}
		return 14
	case Path:
		if isInput {
			return 15
		}
		return 16
	case GroupBegin:
		if isInput {
			return 17
		}
		return 1
	case GroupEnd:
		if isInput {
			return 1
		}
		panic("operator: stack precedence of ')' is undefined; it must never stay on the operator stack")
	default:
		panic("operator: unknown operator kind")
	}
}

// precedenceOf returns the comparison value for tok under mode: a Term
// is always termPrecedence, and an Operator is its table value offset by
// +1 so that the "nothing here" value (0) is always dominated.
func precedenceOf(tok Token, mode Mode) int {
	switch t := tok.(type) {
	case TermToken:
		return termPrecedence
	case OperatorToken:
		return tablePrecedence(t.Operator, mode) + 1
	default:
		panic("operator: unknown token kind")
	}
}
