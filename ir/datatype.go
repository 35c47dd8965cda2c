package ir

import "github.com/karin-lang/karinc/path"

// PrimitiveDataType enumerates the built-in primitive types.
type PrimitiveDataType int

const (
	Bool PrimitiveDataType = iota
	S8
	S16
	S32
	S64
	Ssize
	U8
	U16
	U32
	U64
	Usize
	F32
	F64
	Character
	Str
	SelfType
	NonePrimitive
)

// primitiveNames maps a DataType::primitive leaf's text to the
// PrimitiveDataType it denotes.
var primitiveNames = map[string]PrimitiveDataType{
	"bool":  Bool,
	"s8":    S8,
	"s16":   S16,
	"s32":   S32,
	"s64":   S64,
	"ssize": Ssize,
	"u8":    U8,
	"u16":   U16,
	"u32":   U32,
	"u64":   U64,
	"usize": Usize,
	"f32":   F32,
	"f64":   F64,
	"char":  Character,
	"str":   Str,
	"Self":  SelfType,
	"none":  NonePrimitive,
}

// LookupPrimitiveDataType resolves a primitive leaf's text to its
// PrimitiveDataType, reporting false if the text names no primitive.
func LookupPrimitiveDataType(name string) (PrimitiveDataType, bool) {
	primitive, ok := primitiveNames[name]
	return primitive, ok
}

// DataType is the closed set of type-expression shapes: Primitive,
// Generic, or a path Identifier.
type DataType interface {
	isDataType()
}

// PrimitiveDataTypeExpr wraps a PrimitiveDataType as a DataType.
type PrimitiveDataTypeExpr struct {
	Primitive PrimitiveDataType
}

func (PrimitiveDataTypeExpr) isDataType() {}

// GenericDataType is a parameterized type, e.g. `Vec<usize>`.
type GenericDataType struct {
	ID        string
	Arguments []DataType
}

func (GenericDataType) isDataType() {}

// IdentifierDataType names a user-defined type by path.
type IdentifierDataType struct {
	Path path.Path
}

func (IdentifierDataType) isDataType() {}
