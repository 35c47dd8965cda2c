// Package operator implements the operator-precedence expression parser:
// a two-precedence shunting-yard variant that turns a linear sequence of
// operator and term tokens into a single IR expression tree.
package operator

import "github.com/karin-lang/karinc/ir"

// Kind is the closed set of operator tokens the upstream grammar can
// hand to the precedence parser. Prefix/postfix disambiguation has
// already happened upstream: Not, BitNot, and Negative always denote the
// prefix form; Nonnize and Propagate always denote the postfix form.
type Kind int

const (
	Substitute Kind = iota
	Add
	Subtract
	Multiply
	Not
	BitNot
	Negative
	Nonnize
	Propagate
	FunctionCall
	MemberAccess
	Path
	GroupBegin
	GroupEnd
)

// Operator is one operator token. CallArguments is populated only when
// Kind is FunctionCall: the call's argument vector rides on the operator
// token itself rather than arriving as separate precedence-parser tokens,
// since the grammar has already parsed the parenthesized, comma-separated
// argument list as a unit.
type Operator struct {
	Kind          Kind
	CallArguments []ir.Expression
}

// Token is either an Operator or a Term (an already-built IR
// expression). The precedence parser treats a Term as a single,
// maximal-precedence atom.
type Token interface {
	isToken()
}

// OperatorToken wraps an Operator as a Token.
type OperatorToken struct {
	Operator Operator
}

func (OperatorToken) isToken() {}

// TermToken wraps an already-built expression as a Token.
type TermToken struct {
	Term ir.Expression
}

func (TermToken) isToken() {}

// Sequence is the linear input to Parse: a mix of OperatorToken and
// TermToken values in source order.
type Sequence []Token
