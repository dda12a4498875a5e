package ast

import "strings"

// BasicType names a primitive type or void.
type BasicType struct {
	typeBase
	Primitive Primitive
}

func NewBasicType(l Located, primitive Primitive) *BasicType {
	return &BasicType{typeBase: typeBase{Located: l}, Primitive: primitive}
}

func (t *BasicType) String() string                 { return t.Primitive.String() }
func (t *BasicType) AcceptType(v TypeVisitor) error { return v.VisitBasicType(t) }
func (t *BasicType) AcceptAtom(v AtomVisitor) error { return v.VisitBasicType(t) }

// ReferenceType names a class, interface, enum, annotation or type variable
// by a dot-separated identifier chain, optionally with type arguments.
type ReferenceType struct {
	typeBase
	Identifiers   []string
	TypeArguments []TypeArgument
}

func NewReferenceType(l Located, identifiers []string, typeArguments []TypeArgument) *ReferenceType {
	return &ReferenceType{typeBase: typeBase{Located: l}, Identifiers: identifiers, TypeArguments: typeArguments}
}

func (t *ReferenceType) SetEnclosingScope(s Scope) {
	t.typeBase.SetEnclosingScope(s)
	for _, ta := range t.TypeArguments {
		ta.setEnclosingScope(s)
	}
}

func (t *ReferenceType) String() string {
	name := joinIdentifiers(t.Identifiers)
	if len(t.TypeArguments) == 0 {
		return name
	}
	args := make([]string, len(t.TypeArguments))
	for i, ta := range t.TypeArguments {
		args[i] = ta.String()
	}
	return name + "<" + strings.Join(args, ", ") + ">"
}

func (t *ReferenceType) AcceptType(v TypeVisitor) error { return v.VisitReferenceType(t) }
func (t *ReferenceType) AcceptAtom(v AtomVisitor) error { return v.VisitReferenceType(t) }
func (t *ReferenceType) AcceptTypeArgument(v TypeArgumentVisitor) error {
	return v.VisitReferenceTypeArgument(t)
}
func (t *ReferenceType) setEnclosingScope(s Scope) { t.SetEnclosingScope(s) }

// ArrayType is a type with one array dimension; nested ArrayTypes express
// higher dimensions.
type ArrayType struct {
	typeBase
	ComponentType Type
}

func NewArrayType(componentType Type) *ArrayType {
	return &ArrayType{typeBase: typeBase{Located: At(componentType.Location())}, ComponentType: componentType}
}

func (t *ArrayType) SetEnclosingScope(s Scope) {
	t.typeBase.SetEnclosingScope(s)
	t.ComponentType.SetEnclosingScope(s)
}

func (t *ArrayType) String() string                 { return t.ComponentType.String() + "[]" }
func (t *ArrayType) AcceptType(v TypeVisitor) error { return v.VisitArrayType(t) }
func (t *ArrayType) AcceptAtom(v AtomVisitor) error { return v.VisitArrayType(t) }
func (t *ArrayType) AcceptTypeArgument(v TypeArgumentVisitor) error {
	return v.VisitArrayTypeArgument(t)
}
func (t *ArrayType) setEnclosingScope(s Scope) { t.SetEnclosingScope(s) }

// SimpleType wraps an already-resolved type so that synthesized code can
// refer to it without spelling a name that resolves in the current scope.
type SimpleType struct {
	typeBase
	ResolvedType ResolvedType
}

func NewSimpleType(l Located, resolvedType ResolvedType) *SimpleType {
	return &SimpleType{typeBase: typeBase{Located: l}, ResolvedType: resolvedType}
}

func (t *SimpleType) String() string                 { return t.ResolvedType.String() }
func (t *SimpleType) AcceptType(v TypeVisitor) error { return v.VisitSimpleType(t) }
func (t *SimpleType) AcceptAtom(v AtomVisitor) error { return v.VisitSimpleType(t) }

// RvalueMemberType is the type `rv.Identifier` where rv is an expression:
// the member type Identifier of the type of rv.
type RvalueMemberType struct {
	typeBase
	Rvalue     Rvalue
	Identifier string
}

func NewRvalueMemberType(l Located, rvalue Rvalue, identifier string) *RvalueMemberType {
	return &RvalueMemberType{typeBase: typeBase{Located: l}, Rvalue: rvalue, Identifier: identifier}
}

func (t *RvalueMemberType) SetEnclosingScope(s Scope) {
	t.typeBase.SetEnclosingScope(s)
	SetEnclosingScope(t.Rvalue, s)
}

func (t *RvalueMemberType) String() string                 { return t.Rvalue.String() + "." + t.Identifier }
func (t *RvalueMemberType) AcceptType(v TypeVisitor) error { return v.VisitRvalueMemberType(t) }
func (t *RvalueMemberType) AcceptAtom(v AtomVisitor) error { return v.VisitRvalueMemberType(t) }

// TypeArgument is what may appear between the angle brackets of a
// parameterized type: a reference type, an array type or a wildcard.
type TypeArgument interface {
	Locatable
	String() string
	AcceptTypeArgument(v TypeArgumentVisitor) error
	setEnclosingScope(s Scope)
}

// WildcardBounds distinguishes the three forms of a wildcard type argument.
type WildcardBounds int

const (
	WildcardUnbounded WildcardBounds = iota
	WildcardExtends
	WildcardSuper
)

// Wildcard is the type argument `?`, `? extends T` or `? super T`.
type Wildcard struct {
	Located
	Bounds        WildcardBounds
	ReferenceType *ReferenceType
}

func NewWildcard(l Located, bounds WildcardBounds, referenceType *ReferenceType) *Wildcard {
	return &Wildcard{Located: l, Bounds: bounds, ReferenceType: referenceType}
}

func (w *Wildcard) String() string {
	switch w.Bounds {
	case WildcardExtends:
		return "? extends " + w.ReferenceType.String()
	case WildcardSuper:
		return "? super " + w.ReferenceType.String()
	}
	return "?"
}

func (w *Wildcard) AcceptTypeArgument(v TypeArgumentVisitor) error { return v.VisitWildcard(w) }

func (w *Wildcard) setEnclosingScope(s Scope) {
	if w.ReferenceType != nil {
		w.ReferenceType.SetEnclosingScope(s)
	}
}

// TypeParameter is one parameter of a generic declaration, with optional
// upper bounds.
type TypeParameter struct {
	Located
	Name   string
	Bounds []*ReferenceType
}

func NewTypeParameter(l Located, name string, bounds []*ReferenceType) *TypeParameter {
	return &TypeParameter{Located: l, Name: name, Bounds: bounds}
}

func (p *TypeParameter) String() string {
	if len(p.Bounds) == 0 {
		return p.Name
	}
	bounds := make([]string, len(p.Bounds))
	for i, b := range p.Bounds {
		bounds[i] = b.String()
	}
	return p.Name + " extends " + strings.Join(bounds, " & ")
}

func (p *TypeParameter) setEnclosingScope(s Scope) {
	for _, b := range p.Bounds {
		b.SetEnclosingScope(s)
	}
}
