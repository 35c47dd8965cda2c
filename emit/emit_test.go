package emit

import (
	"testing"

	"github.com/karin-lang/karinc/ir"
	"github.com/karin-lang/karinc/path"
)

func TestIRSourceItemsPreservesDeclarationOrder(t *testing.T) {
	tree := &ir.IR{
		Items: []ir.ItemBinding{
			{Index: 0, Item: &ir.FunctionItem{}},
			{Index: 1, Item: &ir.FunctionItem{}},
		},
	}
	source := IRSource{IR: tree}

	items := source.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Index != path.Index(0) || items[1].Index != path.Index(1) {
		t.Fatalf("expected declaration order preserved, got %v", items)
	}
}

func TestNewFunctionView(t *testing.T) {
	function := &ir.FunctionItem{
		Arguments: []ir.FormalArgument{
			{ID: "a", DataType: ir.PrimitiveDataTypeExpr{Primitive: ir.Usize}},
			{ID: "b", DataType: ir.PrimitiveDataTypeExpr{Primitive: ir.Bool}},
		},
		Expressions: []ir.Expression{
			ir.LiteralExpr{Literal: ir.BooleanLiteral{Value: true}},
		},
	}

	view, ok := NewFunctionView("f", function)
	if !ok {
		t.Fatal("expected NewFunctionView to accept a *ir.FunctionItem")
	}
	if view.PathID() != "f" {
		t.Fatalf("expected PathID %q, got %q", "f", view.PathID())
	}

	wantArgs := []string{"a", "b"}
	gotArgs := view.ArgumentIdentifiers()
	if len(gotArgs) != len(wantArgs) {
		t.Fatalf("expected %v, got %v", wantArgs, gotArgs)
	}
	for i := range wantArgs {
		if gotArgs[i] != wantArgs[i] {
			t.Fatalf("expected %v, got %v", wantArgs, gotArgs)
		}
	}

	if len(view.Statements()) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(view.Statements()))
	}
}

func TestNewFunctionViewRejectsNonFunctionItems(t *testing.T) {
	if _, ok := NewFunctionView("s", &ir.StructItem{}); ok {
		t.Fatal("expected NewFunctionView to reject a *ir.StructItem")
	}
}
