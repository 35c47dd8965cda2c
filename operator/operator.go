package operator

import (
	"github.com/karin-lang/karinc/ir"
	"github.com/karin-lang/karinc/path"
	goerrors "gopkg.in/src-d/go-errors.v1"
)

// ErrInvalidKindOfTerm is reported when a Path operator receives operands
// that are not an Identifier and/or an existing unresolved Path.
var ErrInvalidKindOfTerm = goerrors.NewKind("invalid kind of term")

// ErrInvalidLengthOfTerm is reported when the operand stack underflows,
// or when more than one expression remains once the input is consumed.
var ErrInvalidLengthOfTerm = goerrors.NewKind("invalid length of term")

// Parse turns a linear operator/term sequence into a single IR
// expression tree: a shunting-yard pass into postfix order, followed by
// a tree-building pass.
func Parse(input Sequence) (ir.Expression, error) {
	postfix, err := toPostfixNotation(input)
	if err != nil {
		return nil, err
	}
	return buildExpression(postfix)
}

// toPostfixNotation is the scheduling pass: reverse the input once so
// its back is the next token, then repeatedly compare the input
// precedence of the next input token against the stack precedence of
// the token on top of the operator stack.
//
// A ')' is only ever removed from the stack by the tie rule pairing it
// with a matching '(' (both reach the same offset precedence). The one
// way a ')' can end up sitting on the stack instead is if it was shifted
// onto an empty stack, i.e. it has no unmatched '(' to its left. That is
// a structurally malformed group, reported as ErrInvalidLengthOfTerm
// rather than left to query an undefined stack precedence.
func toPostfixNotation(input Sequence) (Sequence, error) {
	remaining := make(Sequence, len(input))
	copy(remaining, input)
	reverse(remaining)

	var stack Sequence
	var output Sequence

	for {
		haveInput := len(remaining) > 0
		haveStack := len(stack) > 0

		if !haveInput && !haveStack {
			return output, nil
		}

		inputPrecedence := 0
		if haveInput {
			inputPrecedence = precedenceOf(remaining[len(remaining)-1], InputPrecedence)
		}

		stackPrecedence := 0
		if haveStack {
			top := stack[len(stack)-1]
			if opTok, ok := top.(OperatorToken); ok && opTok.Operator.Kind == GroupEnd {
				return nil, ErrInvalidLengthOfTerm.New()
			}
			stackPrecedence = precedenceOf(top, StackPrecedence)
		}

		switch {
		case inputPrecedence < stackPrecedence:
			output = append(output, stack[len(stack)-1])
			stack = stack[:len(stack)-1]
		case stackPrecedence < inputPrecedence:
			stack = append(stack, remaining[len(remaining)-1])
			remaining = remaining[:len(remaining)-1]
		default:
			output = append(output, stack[len(stack)-1])
			stack = stack[:len(stack)-1]
			output = append(output, remaining[len(remaining)-1])
			remaining = remaining[:len(remaining)-1]
		}
	}
}

func reverse(tokens Sequence) {
	for i, j := 0, len(tokens)-1; i < j; i, j = i+1, j-1 {
		tokens[i], tokens[j] = tokens[j], tokens[i]
	}
}

// indexedExpr pairs an expression with the position, within the postfix
// sequence, of the token that produced it.
type indexedExpr struct {
	index int
	expr  ir.Expression
}

// buildExpression is the tree-construction pass over the postfix
// sequence.
func buildExpression(postfix Sequence) (ir.Expression, error) {
	var stack []indexedExpr

	popOne := func() (indexedExpr, error) {
		if len(stack) == 0 {
			return indexedExpr{}, ErrInvalidLengthOfTerm.New()
		}
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return top, nil
	}

	// popTwo pops the two most recent operands and orders them by
	// position: whichever was produced earlier (the smaller index)
	// becomes left, the other becomes right.
	popTwo := func() (left, right indexedExpr, err error) {
		a, err := popOne()
		if err != nil {
			return indexedExpr{}, indexedExpr{}, err
		}
		b, err := popOne()
		if err != nil {
			return indexedExpr{}, indexedExpr{}, err
		}
		if a.index < b.index {
			return a, b, nil
		}
		return b, a, nil
	}

	minIndex := func(a, b indexedExpr) int {
		if a.index < b.index {
			return a.index
		}
		return b.index
	}

	for tokenIndex, tok := range postfix {
		switch t := tok.(type) {
		case TermToken:
			stack = append(stack, indexedExpr{index: tokenIndex, expr: t.Term})

		case OperatorToken:
			op := t.Operator

			switch op.Kind {
			case Not, BitNot, Negative, Nonnize, Propagate, GroupBegin:
				operand, err := popOne()
				if err != nil {
					return nil, err
				}
				stack = append(stack, indexedExpr{index: tokenIndex, expr: unaryExpr(op.Kind, operand.expr)})

			case GroupEnd:
				continue

			case FunctionCall:
				callee, err := popOne()
				if err != nil {
					return nil, err
				}
				expr := ir.OperationExpr{Operation: ir.FunctionCallOperation{
					Callee:    callee.expr,
					Arguments: op.CallArguments,
				}}
				stack = append(stack, indexedExpr{index: tokenIndex, expr: expr})

			case Substitute, Add, Subtract, Multiply, MemberAccess:
				left, right, err := popTwo()
				if err != nil {
					return nil, err
				}
				expr := ir.OperationExpr{Operation: binaryOperation(op.Kind, left.expr, right.expr)}
				stack = append(stack, indexedExpr{index: minIndex(left, right), expr: expr})

			case Path:
				left, right, err := popTwo()
				if err != nil {
					return nil, err
				}
				segments, err := pathSegments(left.expr)
				if err != nil {
					return nil, err
				}
				rightID, ok := right.expr.(ir.IdentifierExpr)
				if !ok {
					return nil, ErrInvalidKindOfTerm.New()
				}
				segments = append(segments, rightID.Name)
				expr := ir.OperationExpr{Operation: ir.PathOperation{Path: path.Unresolved(segments)}}
				stack = append(stack, indexedExpr{index: minIndex(left, right), expr: expr})

			default:
				panic("operator: unknown operator kind in tree construction")
			}
		}
	}

	result, err := popOne()
	if err != nil {
		return nil, err
	}
	if len(stack) != 0 {
		return nil, ErrInvalidLengthOfTerm.New()
	}
	return result.expr, nil
}

func unaryExpr(kind Kind, operand ir.Expression) ir.Expression {
	switch kind {
	case Not:
		return ir.OperationExpr{Operation: ir.NotOperation{Operand: operand}}
	case BitNot:
		return ir.OperationExpr{Operation: ir.BitNotOperation{Operand: operand}}
	case Negative:
		return ir.OperationExpr{Operation: ir.NegativeOperation{Operand: operand}}
	case Nonnize:
		return ir.OperationExpr{Operation: ir.NonnizeOperation{Operand: operand}}
	case Propagate:
		return ir.OperationExpr{Operation: ir.PropagateOperation{Operand: operand}}
	case GroupBegin:
		return ir.OperationExpr{Operation: ir.GroupOperation{Inner: operand}}
	default:
		panic("operator: not a unary operator kind")
	}
}

func binaryOperation(kind Kind, left, right ir.Expression) ir.Operation {
	switch kind {
	case Substitute:
		return ir.SubstituteOperation{Left: left, Right: right}
	case Add:
		return ir.AddOperation{Left: left, Right: right}
	case Subtract:
		return ir.SubtractOperation{Left: left, Right: right}
	case Multiply:
		return ir.MultiplyOperation{Left: left, Right: right}
	case MemberAccess:
		return ir.MemberAccessOperation{Left: left, Right: right}
	default:
		panic("operator: not a binary operator kind")
	}
}

// pathSegments extracts the unresolved segment list from an operand that
// must be either a bare Identifier or an already-folded, still-unresolved
// Path operation.
func pathSegments(expr ir.Expression) ([]string, error) {
	switch e := expr.(type) {
	case ir.IdentifierExpr:
		return []string{e.Name}, nil
	case ir.OperationExpr:
		if pathOp, ok := e.Operation.(ir.PathOperation); ok {
			if segments, ok := pathOp.Path.Segments(); ok {
				cloned := make([]string, len(segments))
				copy(cloned, segments)
				return cloned, nil
			}
		}
	}
	return nil, ErrInvalidKindOfTerm.New()
}
