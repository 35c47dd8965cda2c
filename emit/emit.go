// Package emit fixes the contract a target-code renderer lowers the IR
// through. It declares interfaces only; no renderer lives in this
// module. A JavaScript emitter would be built against these interfaces.
package emit

import "github.com/karin-lang/karinc/ir"

// ItemSource iterates an IR's items in declaration order, the only
// ordering the IR guarantees.
type ItemSource interface {
	Items() []ir.ItemBinding
}

// IRSource adapts a hirified, resolved *ir.IR into an ItemSource.
type IRSource struct {
	IR *ir.IR
}

func (s IRSource) Items() []ir.ItemBinding {
	return s.IR.Items
}

// FunctionView exposes what an emitter needs from a Function item: its
// path identifier (for identifier and qualified-name emission), its
// argument identifiers, and its statement list. Everything else about a
// function is withheld.
type FunctionView interface {
	PathID() string
	ArgumentIdentifiers() []string
	Statements() []ir.Expression
}

// functionView is the only FunctionView implementation this module
// carries: a direct adapter over a *ir.FunctionItem paired with the
// identifier its caller supplies.
type functionView struct {
	id       string
	function *ir.FunctionItem
}

// NewFunctionView adapts item, under the path identifier id, into a
// FunctionView. It reports false if item is not a function; the emitter
// contract covers Function items only.
func NewFunctionView(id string, item ir.Item) (FunctionView, bool) {
	function, ok := item.(*ir.FunctionItem)
	if !ok {
		return nil, false
	}
	return &functionView{id: id, function: function}, true
}

func (v *functionView) PathID() string {
	return v.id
}

func (v *functionView) ArgumentIdentifiers() []string {
	ids := make([]string, len(v.function.Arguments))
	for i, arg := range v.function.Arguments {
		ids[i] = arg.ID
	}
	return ids
}

func (v *functionView) Statements() []ir.Expression {
	return v.function.Expressions
}
