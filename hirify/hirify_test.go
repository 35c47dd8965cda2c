package hirify

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/karin-lang/karinc/cst"
	"github.com/karin-lang/karinc/ir"
	"github.com/karin-lang/karinc/path"
)

func leaf(value string) *cst.Leaf {
	return cst.NewLeaf(value, cst.Position{})
}

func nodeOf(name string, children ...cst.Element) *cst.Node {
	return cst.NewNode(name, cst.Position{}, children...)
}

func toElements(nodes []*cst.Node) []cst.Element {
	els := make([]cst.Element, len(nodes))
	for i, n := range nodes {
		els[i] = n
	}
	return els
}

func identifierNode(name string) *cst.Node {
	return nodeOf("Identifier::identifier", leaf(name))
}

func accessibilityNode(value string) *cst.Node {
	if value == "" {
		return nodeOf("Main::accessibility")
	}
	return nodeOf("Main::accessibility", leaf(value))
}

func primitiveDataTypeNode(name string) *cst.Node {
	return nodeOf("DataType::primitive", leaf(name))
}

func dataTypeNode(inner *cst.Node) *cst.Node {
	return nodeOf("DataType::data_type", inner)
}

func formalArgNode(id string, dt *cst.Node, mut bool) *cst.Node {
	kids := []cst.Element{identifierNode(id), dt}
	if mut {
		kids = append(kids, leaf("mut"))
	}
	return nodeOf("Function::formal_argument", kids...)
}

func selfArgNode() *cst.Node {
	return nodeOf("Function::formal_argument", leaf("self"))
}

func booleanLiteralExpr(value bool) *cst.Node {
	text := "false"
	if value {
		text = "true"
	}
	literal := nodeOf("Literal::boolean", leaf(text))
	return nodeOf("Expression::expression", nodeOf("Literal::literal", literal))
}

func functionNode(id, accessibility string, returnType *cst.Node, args, exprs []*cst.Node) *cst.Node {
	kids := []cst.Element{identifierNode(id), accessibilityNode(accessibility)}
	if returnType != nil {
		kids = append(kids, returnType)
	}
	kids = append(kids, nodeOf("args", toElements(args)...), nodeOf("exprs", toElements(exprs)...))
	return nodeOf("Function::function", kids...)
}

func itemNode(content *cst.Node) *cst.Node {
	return nodeOf("Item::item", content)
}

func useDeclarationNode(segments ...string) *cst.Node {
	leaves := make([]cst.Element, len(segments))
	for i, s := range segments {
		leaves[i] = leaf(s)
	}
	return nodeOf("UseDeclaration::use_declaration", leaves...)
}

func singleModuleHako(item *cst.Node) Hako {
	module := Module{ID: "m", Node: nodeOf("Main::main", itemNode(item))}
	return Hako{ID: "h", Modules: []Module{module}}
}

func TestHirifyFunctionDefaults(t *testing.T) {
	fn := functionNode("f", "", nil, nil, nil)
	result, logs := Hirify([]Hako{singleModuleHako(fn)})

	if len(logs) != 0 {
		t.Fatalf("expected no logs, got %v", logs)
	}
	if len(result.Items) != 1 {
		t.Fatalf("expected exactly one item, got %d", len(result.Items))
	}

	item, ok := result.Items[0].Item.(*ir.FunctionItem)
	if !ok {
		t.Fatalf("expected a *ir.FunctionItem, got %T", result.Items[0].Item)
	}

	want := &ir.FunctionItem{
		Accessibility: ir.Private,
		ReturnType:    ir.PrimitiveDataTypeExpr{Primitive: ir.NonePrimitive},
		Arguments:     []ir.FormalArgument{},
		Expressions:   []ir.Expression{},
	}
	if diff := cmp.Diff(want, item); diff != "" {
		t.Fatalf("function item mismatch (-want +got):\n%s", diff)
	}
}

func TestHirifyFunctionAccessibility(t *testing.T) {
	fn := functionNode("f", "pub@hako", nil, nil, nil)
	result, logs := Hirify([]Hako{singleModuleHako(fn)})

	if len(logs) != 0 {
		t.Fatalf("expected no logs, got %v", logs)
	}

	item := result.Items[0].Item.(*ir.FunctionItem)
	if item.Accessibility != ir.PublicInHako {
		t.Fatalf("expected PublicInHako, got %v", item.Accessibility)
	}
}

func TestHirifyFunctionArgumentsAndBody(t *testing.T) {
	arg := formalArgNode("a", dataTypeNode(primitiveDataTypeNode("usize")), false)
	fn := functionNode("f", "", nil, []*cst.Node{arg}, []*cst.Node{booleanLiteralExpr(true)})
	result, logs := Hirify([]Hako{singleModuleHako(fn)})

	if len(logs) != 0 {
		t.Fatalf("expected no logs, got %v", logs)
	}

	item := result.Items[0].Item.(*ir.FunctionItem)

	wantArgs := []ir.FormalArgument{
		{ID: "a", Mutability: ir.Immutable, DataType: ir.PrimitiveDataTypeExpr{Primitive: ir.Usize}},
	}
	if diff := cmp.Diff(wantArgs, item.Arguments); diff != "" {
		t.Fatalf("arguments mismatch (-want +got):\n%s", diff)
	}

	wantExprs := []ir.Expression{
		ir.LiteralExpr{Literal: ir.BooleanLiteral{Value: true}},
	}
	if diff := cmp.Diff(wantExprs, item.Expressions); diff != "" {
		t.Fatalf("expressions mismatch (-want +got):\n%s", diff)
	}
}

func TestHirifySelfArgumentFirstPositionIsClean(t *testing.T) {
	fn := functionNode("f", "", nil, []*cst.Node{selfArgNode()}, nil)
	result, logs := Hirify([]Hako{singleModuleHako(fn)})

	if len(logs) != 0 {
		t.Fatalf("expected no logs, got %v", logs)
	}

	item := result.Items[0].Item.(*ir.FunctionItem)
	want := []ir.FormalArgument{
		{ID: "self", Mutability: ir.Immutable, DataType: ir.PrimitiveDataTypeExpr{Primitive: ir.SelfType}},
	}
	if diff := cmp.Diff(want, item.Arguments); diff != "" {
		t.Fatalf("arguments mismatch (-want +got):\n%s", diff)
	}
}

func TestHirifySelfArgumentMisplacedLogs(t *testing.T) {
	args := []*cst.Node{
		formalArgNode("a", dataTypeNode(primitiveDataTypeNode("usize")), false),
		selfArgNode(),
	}
	fn := functionNode("f", "", nil, args, nil)
	_, logs := Hirify([]Hako{singleModuleHako(fn)})

	if len(logs) != 1 {
		t.Fatalf("expected exactly one log, got %v", logs)
	}
	if !ErrSelfArgumentMustLocateFirstPosition.Is(logs[0]) {
		t.Fatalf("expected ErrSelfArgumentMustLocateFirstPosition, got %v", logs[0])
	}
}

func TestHirifyUseDeclarationClean(t *testing.T) {
	use := useDeclarationNode("hako", "m")
	result, logs := Hirify([]Hako{singleModuleHako(use)})

	if len(logs) != 0 {
		t.Fatalf("expected no logs, got %v", logs)
	}

	// Hako gets index 0, its sole module gets index 1.
	module := result.PathTree.Get(path.Index(1))
	if module == nil {
		t.Fatal("expected the module node to be registered")
	}
	if len(module.UseDeclarations) != 1 {
		t.Fatalf("expected one use-declaration, got %d", len(module.UseDeclarations))
	}

	want := path.Unresolved([]string{"hako", "m"})
	if !module.UseDeclarations[0].Equal(want) {
		t.Fatalf("expected %v, got %v", want, module.UseDeclarations[0])
	}
}

func TestHirifyUseDeclarationMisplacedSegmentLogs(t *testing.T) {
	use := useDeclarationNode("m", "hako")
	result, logs := Hirify([]Hako{singleModuleHako(use)})

	if len(logs) != 1 {
		t.Fatalf("expected exactly one log, got %v", logs)
	}
	if !ErrPathSegmentMustLocateFirstPosition.Is(logs[0]) {
		t.Fatalf("expected ErrPathSegmentMustLocateFirstPosition, got %v", logs[0])
	}

	module := result.PathTree.Get(path.Index(1))
	want := path.Unresolved([]string{"m", "hako"})
	if !module.UseDeclarations[0].Equal(want) {
		t.Fatalf("expected segments preserved as %v, got %v", want, module.UseDeclarations[0])
	}
}
