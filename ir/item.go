package ir

import "github.com/karin-lang/karinc/path"

// Accessibility is the closed set of visibility levels an item may
// declare.
type Accessibility int

const (
	Private Accessibility = iota
	Public
	PublicInHako
)

// Mutability controls whether a formal argument's binding may be
// reassigned inside the function body.
type Mutability int

const (
	Immutable Mutability = iota
	Mutable
)

// FormalArgument is a function parameter: an identifier bound to a
// mutability and a data type. The distinguished argument named "self"
// always has DataType = PrimitiveDataTypeExpr{SelfType}.
type FormalArgument struct {
	ID         string
	Mutability Mutability
	DataType   DataType
}

// Item is the closed set of top-level declarations. Struct, Enum, and
// Trait are placeholders carrying no fields yet.
type Item interface {
	isItem()
}

// FunctionItem is a function declaration: its accessibility, declared
// return type (defaulting to Primitive(None) when omitted), formal
// arguments, and body expressions.
type FunctionItem struct {
	Accessibility Accessibility
	ReturnType    DataType
	Arguments     []FormalArgument
	Expressions   []Expression
}

func (*FunctionItem) isItem() {}

type StructItem struct{}

func (*StructItem) isItem() {}

type EnumItem struct{}

func (*EnumItem) isItem() {}

type TraitItem struct{}

func (*TraitItem) isItem() {}

// ItemBinding pairs a path index with the item it names.
type ItemBinding struct {
	Index path.Index
	Item  Item
}

// IR is the root value the hirifier produces: the path tree shared by
// every hako/module/item, plus the item list in declaration order.
type IR struct {
	PathTree *path.Tree
	Items    []ItemBinding
}
