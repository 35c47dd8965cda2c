// Package resolve implements the name resolver: a single pass over an
// already-hirified IR that rewrites unresolved path operations into
// resolved path-index references.
package resolve

import (
	"fmt"

	"github.com/karin-lang/karinc/ir"
	"github.com/karin-lang/karinc/path"
	goerrors "gopkg.in/src-d/go-errors.v1"
)

// ErrUnknownIdentifier is reported when a path's segments do not resolve
// against the path tree.
var ErrUnknownIdentifier = goerrors.NewKind("unknown identifier")

// Resolve walks the IR's items, rewriting every Path(Unresolved(segments))
// operation reachable from a Function's expression list in place. Every
// other item and expression shape is currently unimplemented and panics;
// a path that is already resolved when this pass reaches it panics too.
//
// Resolve takes exclusive mutable access to the item list and shared
// read-only access to the path tree: it never adds or removes path-tree
// nodes, only rewrites Path values already present in the expression
// tree.
func Resolve(tree *ir.IR) []error {
	r := &resolver{tree: tree.PathTree}

	for _, binding := range tree.Items {
		r.item(binding.Item)
	}

	return r.errs
}

type resolver struct {
	tree *path.Tree
	errs []error
}

func (r *resolver) item(item ir.Item) {
	switch it := item.(type) {
	case *ir.FunctionItem:
		for i := range it.Expressions {
			r.expression(&it.Expressions[i])
		}
	default:
		panic(fmt.Sprintf("resolve: unimplemented item shape %T", item))
	}
}

func (r *resolver) expression(expr *ir.Expression) {
	operationExpr, ok := (*expr).(ir.OperationExpr)
	if !ok {
		panic(fmt.Sprintf("resolve: unimplemented expression shape %T", *expr))
	}

	pathOp, ok := operationExpr.Operation.(ir.PathOperation)
	if !ok {
		panic(fmt.Sprintf("resolve: unimplemented operation shape %T", operationExpr.Operation))
	}

	segments, unresolved := pathOp.Path.Segments()
	if !unresolved {
		panic("resolve: path is already resolved")
	}

	index, _, found := r.tree.Find(segments)
	if !found {
		r.errs = append(r.errs, ErrUnknownIdentifier.New())
		return
	}

	pathOp.Path.Resolve(index)
	*expr = ir.OperationExpr{Operation: pathOp}
}
