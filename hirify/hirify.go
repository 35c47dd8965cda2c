// Package hirify lowers a concrete syntax tree (package cst) into the IR
// (package ir), populating a path tree (package path) as it goes. The
// lowering is a stateful visitor holding an index generator, the growing
// path tree, an items list, and a non-fatal log list.
package hirify

import (
	"fmt"

	"github.com/karin-lang/karinc/cst"
	"github.com/karin-lang/karinc/ir"
	"github.com/karin-lang/karinc/operator"
	"github.com/karin-lang/karinc/path"
)

// Hako is one input compilation unit: an identifier and its top-level
// modules, in declaration order.
type Hako struct {
	ID      string
	Modules []Module
}

// Module pairs a module's identifier and concrete syntax subtree with
// its nested submodules. Node is the module's own CST node; its
// top-level children (via FilterNodes) are the module's items.
type Module struct {
	ID         string
	Node       *cst.Node
	Submodules []Module
}

// Hirify lowers hakos into an IR plus a list of non-fatal logs. Lowering
// continues best-effort past a logged problem. A malformed operation
// sequence panics: the upstream grammar only produces well-formed
// operation nodes, so reaching the precedence parser's error paths from
// here means the input tree broke that contract.
func Hirify(hakos []Hako) (*ir.IR, []error) {
	h := &hirifier{
		gen:  path.NewGenerator(),
		tree: path.NewTree(),
	}

	for _, hako := range hakos {
		h.hako(hako)
	}

	return &ir.IR{PathTree: h.tree, Items: h.items}, h.logs
}

type hirifier struct {
	gen   *path.Generator
	tree  *path.Tree
	items []ir.ItemBinding
	logs  []error
}

func (h *hirifier) hako(hako Hako) {
	index := h.gen.Generate()

	children := make([]path.Index, 0, len(hako.Modules))
	for _, module := range hako.Modules {
		children = append(children, h.module(module, index))
	}

	node := &path.Node{
		ID:       hako.ID,
		Kind:     path.KindHako,
		Children: children,
	}
	h.tree.AddNode(h.gen, &index, node)
}

func (h *hirifier) module(module Module, parent path.Index) path.Index {
	index := h.gen.Generate()

	var children []path.Index
	var useDeclarations []path.Path

	for _, submodule := range module.Submodules {
		children = append(children, h.module(submodule, index))
	}

	for _, itemNode := range module.Node.Children.FilterNodes() {
		itemIndex, use, isUse := h.item(itemNode, index)
		if isUse {
			useDeclarations = append(useDeclarations, use)
		} else {
			children = append(children, itemIndex)
		}
	}

	node := &path.Node{
		ID:              module.ID,
		Kind:            path.KindModule,
		Parent:          &parent,
		Children:        children,
		UseDeclarations: useDeclarations,
	}
	h.tree.AddNode(h.gen, &index, node)
	return index
}

// item lowers one "Item::item" node, dispatching on the name of its
// first child. A use-declaration has no path-tree node of its own and is
// reported back to the caller via isUse; a function is registered in the
// path tree and returned by index.
func (h *hirifier) item(node *cst.Node, parent path.Index) (index path.Index, use path.Path, isUse bool) {
	content := node.Children.GetNode(0)

	switch content.Name {
	case "UseDeclaration::use_declaration":
		return 0, h.useDeclaration(content), true

	case "Function::function":
		itemIndex := h.gen.Generate()
		id, function := h.function(content)

		pathNode := &path.Node{
			ID:     id,
			Kind:   path.KindFunction,
			Parent: &parent,
		}
		h.tree.AddNode(h.gen, &itemIndex, pathNode)
		h.items = append(h.items, ir.ItemBinding{Index: itemIndex, Item: function})
		return itemIndex, path.Path{}, false

	default:
		panic("hirify: unknown item content name " + content.Name)
	}
}

func (h *hirifier) useDeclaration(node *cst.Node) path.Path {
	leaves := node.Children.FilterLeaves()
	segments := make([]string, 0, len(leaves))

	for i, leaf := range leaves {
		segment := leaf.Value

		if i != 0 && (segment == "hako" || segment == "self") {
			h.logs = append(h.logs, ErrPathSegmentMustLocateFirstPosition.New(segment))
		}

		segments = append(segments, segment)
	}

	return path.Unresolved(segments)
}

func (h *hirifier) identifier(node *cst.Node) string {
	return node.Children.GetLeaf(0).Value
}

func (h *hirifier) accessibility(node *cst.Node) ir.Accessibility {
	leaf := node.Children.GetLeafOrNone(0)
	if leaf == nil {
		return ir.Private
	}

	switch leaf.Value {
	case "pub":
		return ir.Public
	case "pub@hako":
		return ir.PublicInHako
	default:
		panic("hirify: unknown accessibility " + leaf.Value)
	}
}

func (h *hirifier) function(node *cst.Node) (string, *ir.FunctionItem) {
	id := h.identifier(node.Children.FindNode("Identifier::identifier"))
	accessibility := h.accessibility(node.Children.FindNode("Main::accessibility"))

	var returnType ir.DataType
	if dataTypeNode := node.Children.FindNodeOrNone("DataType::data_type"); dataTypeNode != nil {
		returnType = h.dataType(dataTypeNode)
	} else {
		returnType = ir.PrimitiveDataTypeExpr{Primitive: ir.NonePrimitive}
	}

	argNodes := node.Children.FindNode("args").Children.FilterNodes()
	arguments := make([]ir.FormalArgument, len(argNodes))
	for i, argNode := range argNodes {
		arguments[i] = h.formalArgument(i, argNode)
	}

	exprNodes := node.Children.FindNode("exprs").Children.FilterNodes()
	expressions := make([]ir.Expression, len(exprNodes))
	for i, exprNode := range exprNodes {
		expressions[i] = h.expression(exprNode)
	}

	return id, &ir.FunctionItem{
		Accessibility: accessibility,
		ReturnType:    returnType,
		Arguments:     arguments,
		Expressions:   expressions,
	}
}

func (h *hirifier) formalArgument(index int, node *cst.Node) ir.FormalArgument {
	var id string
	var dataType ir.DataType

	if idNode := node.Children.FindNodeOrNone("Identifier::identifier"); idNode != nil {
		id = h.identifier(idNode)
		dataType = h.dataType(node.Children.FindNode("DataType::data_type"))
	} else if node.Children.HasLeaf("self") {
		if index != 0 {
			h.logs = append(h.logs, ErrSelfArgumentMustLocateFirstPosition.New())
		}
		id = "self"
		dataType = ir.PrimitiveDataTypeExpr{Primitive: ir.SelfType}
	} else {
		panic("hirify: formal argument must have an identifier or the self keyword")
	}

	mutability := ir.Immutable
	if node.Children.HasLeaf("mut") {
		mutability = ir.Mutable
	}

	return ir.FormalArgument{ID: id, Mutability: mutability, DataType: dataType}
}

func (h *hirifier) expression(node *cst.Node) ir.Expression {
	content := node.Children.GetNode(0)

	switch content.Name {
	case "Operation::operation":
		return h.operation(content)
	case "Literal::literal":
		return ir.LiteralExpr{Literal: h.literal(content)}
	case "Identifier::identifier":
		return ir.IdentifierExpr{Name: h.identifier(content)}
	case "DataType::data_type":
		return ir.DataTypeExpr{DataType: h.dataType(content)}
	default:
		panic("hirify: unknown expression content name " + content.Name)
	}
}

func (h *hirifier) operation(node *cst.Node) ir.Expression {
	tokens := make(operator.Sequence, 0, len(node.Children))
	for _, child := range node.Children {
		childNode, ok := child.(*cst.Node)
		if !ok {
			panic("hirify: an operation's children must all be nodes")
		}
		tokens = append(tokens, h.operationToken(childNode))
	}

	expr, err := operator.Parse(tokens)
	if err != nil {
		panic(fmt.Sprintf("hirify: malformed operation sequence: %v", err))
	}
	return expr
}

func (h *hirifier) operationToken(node *cst.Node) operator.Token {
	if node.Name == "operator" {
		return operator.OperatorToken{Operator: h.operator(node)}
	}
	return operator.TermToken{Term: h.expression(node)}
}

func (h *hirifier) operator(node *cst.Node) operator.Operator {
	if leaf := node.Children.GetLeafOrNone(0); leaf != nil {
		switch leaf.Value {
		case "=":
			return operator.Operator{Kind: operator.Substitute}
		case "+":
			return operator.Operator{Kind: operator.Add}
		case "-":
			return operator.Operator{Kind: operator.Subtract}
		case "*":
			return operator.Operator{Kind: operator.Multiply}
		case "!e":
			return operator.Operator{Kind: operator.Not}
		case "~e":
			return operator.Operator{Kind: operator.BitNot}
		case "-e":
			return operator.Operator{Kind: operator.Negative}
		case "e!":
			return operator.Operator{Kind: operator.Nonnize}
		case "e?":
			return operator.Operator{Kind: operator.Propagate}
		case ".":
			return operator.Operator{Kind: operator.MemberAccess}
		case "::":
			return operator.Operator{Kind: operator.Path}
		case "(":
			return operator.Operator{Kind: operator.GroupBegin}
		case ")":
			return operator.Operator{Kind: operator.GroupEnd}
		default:
			panic("hirify: unknown operator leaf " + leaf.Value)
		}
	}

	opNode := node.Children.GetNode(0)
	switch opNode.Name {
	case "Operation::function_call_operator":
		argNodes := opNode.Children.FilterNodes()
		args := make([]ir.Expression, len(argNodes))
		for i, argNode := range argNodes {
			args[i] = h.expression(argNode)
		}
		return operator.Operator{Kind: operator.FunctionCall, CallArguments: args}
	default:
		panic("hirify: unknown operator node shape " + opNode.Name)
	}
}

func (h *hirifier) literal(node *cst.Node) ir.Literal {
	content := node.Children.GetNode(0)

	switch content.Name {
	case "Literal::boolean":
		switch content.Children.GetLeaf(0).Value {
		case "true":
			return ir.BooleanLiteral{Value: true}
		case "false":
			return ir.BooleanLiteral{Value: false}
		default:
			panic("hirify: unknown boolean value")
		}

	case "Literal::number":
		return h.number(content)

	case "self":
		return ir.SelfValueLiteral{}

	case "none":
		return ir.NoneLiteral{}

	default:
		panic("hirify: unknown literal content name " + content.Name)
	}
}

func (h *hirifier) number(content *cst.Node) ir.Literal {
	numberContent := content.Children.GetNode(0)

	if numberContent.Name == "Literal::float_number" {
		suffix := h.optionalSuffix(numberContent.Children)
		integer := numberContent.Children.FindNode("integer").Children.GetLeaf(0).Value
		fraction := numberContent.Children.FindNode("float").Children.GetLeaf(0).Value
		return ir.FloatLiteral{Suffix: suffix, Integer: integer, Fraction: fraction}
	}

	suffix := h.optionalSuffix(content.Children)
	valueContent := content.Children.FindNode("value").Children.GetNode(0)

	var base ir.IntegerBase
	switch valueContent.Name {
	case "Literal::binary_number":
		base = ir.Bin
	case "Literal::octal_number":
		base = ir.Oct
	case "Literal::decimal_number":
		base = ir.Dec
	case "Literal::hexadecimal_number":
		base = ir.Hex
	default:
		panic("hirify: unknown integer base " + valueContent.Name)
	}

	digits := valueContent.Children.GetLeaf(0).Value

	var exponent *ir.IntegerExponent
	if exponentNode := content.Children.FindNodeOrNone("Literal::number_exponent"); exponentNode != nil {
		var positive bool
		switch exponentNode.Children.GetLeaf(0).Value {
		case "+":
			positive = true
		case "-":
			positive = false
		default:
			panic("hirify: unknown exponent sign")
		}
		exponentDigits := exponentNode.Children.FindNode("value").Children.GetLeaf(0).Value
		exponent = &ir.IntegerExponent{Positive: positive, Digits: exponentDigits}
	}

	return ir.IntegerLiteral{Suffix: suffix, Base: base, Digits: digits, Exponent: exponent}
}

func (h *hirifier) optionalSuffix(children cst.ChildList) *ir.PrimitiveDataType {
	suffixNode := children.FindNodeOrNone("data_type_suffix")
	if suffixNode == nil {
		return nil
	}
	primitive := h.primitiveDataType(suffixNode)
	return &primitive
}

func (h *hirifier) dataType(node *cst.Node) ir.DataType {
	content := node.Children.GetNode(0)

	switch content.Name {
	case "DataType::primitive":
		return ir.PrimitiveDataTypeExpr{Primitive: h.primitiveDataType(content)}
	case "DataType::generic":
		id := content.Children.FindNode("Identifier::identifier").Children.GetLeaf(0).Value
		arguments := h.genericArguments(content.Children.FindNode("DataType::generic_arguments"))
		return ir.GenericDataType{ID: id, Arguments: arguments}
	default:
		panic("hirify: unknown data type content name " + content.Name)
	}
}

func (h *hirifier) primitiveDataType(node *cst.Node) ir.PrimitiveDataType {
	name := node.Children.GetLeaf(0).Value
	primitive, ok := ir.LookupPrimitiveDataType(name)
	if !ok {
		panic("hirify: unknown primitive data type " + name)
	}
	return primitive
}

func (h *hirifier) genericArguments(node *cst.Node) []ir.DataType {
	argNodes := node.Children.FilterNodes()
	arguments := make([]ir.DataType, len(argNodes))

	for i, argNode := range argNodes {
		switch argNode.Name {
		case "Identifier::identifier":
			name := argNode.Children.GetLeaf(0).Value
			arguments[i] = ir.IdentifierDataType{Path: path.Unresolved([]string{name})}
		case "DataType::data_type":
			arguments[i] = h.dataType(argNode)
		default:
			panic("hirify: unknown generic argument shape " + argNode.Name)
		}
	}

	return arguments
}
