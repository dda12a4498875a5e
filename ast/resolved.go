package ast

// ResolvedType is the resolver's view of a type. The tree only stores and
// compares these; two references denote the same type exactly when the
// interface values are identical.
type ResolvedType interface {
	// String returns the type's name in source form, e.g. "int" or
	// "java.lang.String[]".
	String() string
}

// ResolvedMethod is the resolver's view of a method or constructor.
type ResolvedMethod interface {
	String() string
}

// ResolvedField is the resolver's view of a field. SyntheticField
// implements it, so compiler-generated accesses to "this$0" and "val$x"
// fields can be built directly from the declaring class's synthetic
// field list.
type ResolvedField interface {
	FieldName() string
	FieldType() ResolvedType
}

// Primitive is the ResolvedType of the primitive types and void.
type Primitive string

const (
	PrimitiveVoid    Primitive = "void"
	PrimitiveByte    Primitive = "byte"
	PrimitiveShort   Primitive = "short"
	PrimitiveChar    Primitive = "char"
	PrimitiveInt     Primitive = "int"
	PrimitiveLong    Primitive = "long"
	PrimitiveFloat   Primitive = "float"
	PrimitiveDouble  Primitive = "double"
	PrimitiveBoolean Primitive = "boolean"
)

func (p Primitive) String() string {
	return string(p)
}
