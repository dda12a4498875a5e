package ast

import (
	"fmt"
	"strings"
)

// AmbiguousName is a dot-separated identifier chain whose meaning — package
// prefix, type or variable reference — cannot be determined until scopes
// are known. The resolver reclassifies it and caches the result.
type AmbiguousName struct {
	rvalueBase

	Identifiers []string

	// N is how many leading identifiers belong to this name; the chain
	// may be shared with a longer name.
	N int

	// Reclassified is the package, type or expression this name turned
	// out to denote; assigned during compilation.
	Reclassified Atom

	asType Type
}

func NewAmbiguousName(l Located, identifiers []string) *AmbiguousName {
	return NewAmbiguousNamePrefix(l, identifiers, len(identifiers))
}

func NewAmbiguousNamePrefix(l Located, identifiers []string, n int) *AmbiguousName {
	return &AmbiguousName{rvalueBase: rvalueBase{Located: l}, Identifiers: identifiers, N: n}
}

// ToType reinterprets the name as a reference type, caching the result.
// The type inherits the name's enclosing scope when it has one.
func (e *AmbiguousName) ToType() Type {
	if e.asType != nil {
		return e.asType
	}
	t := NewReferenceType(e.Located, e.Identifiers[:e.N], nil)
	if e.enclosing != nil {
		t.SetEnclosingScope(e.enclosing)
	}
	e.asType = t
	return t
}

func (e *AmbiguousName) String() string { return joinIdentifiers(e.Identifiers[:e.N]) }

func (e *AmbiguousName) AcceptLvalue(v LvalueVisitor) error { return v.VisitAmbiguousName(e) }
func (e *AmbiguousName) AcceptRvalue(v RvalueVisitor) error { return v.VisitAmbiguousName(e) }
func (e *AmbiguousName) AcceptAtom(v AtomVisitor) error     { return v.VisitAmbiguousName(e) }
func (e *AmbiguousName) AcceptElementValue(v ElementValueVisitor) error {
	return v.VisitRvalueElement(e)
}

// LocalVariableAccess reads or writes a local variable; synthesized by the
// resolver once an ambiguous name turns out to be a local.
type LocalVariableAccess struct {
	rvalueBase

	LocalVariable *LocalVariable
}

func NewLocalVariableAccess(l Located, localVariable *LocalVariable) *LocalVariableAccess {
	return &LocalVariableAccess{rvalueBase: rvalueBase{Located: l}, LocalVariable: localVariable}
}

func (e *LocalVariableAccess) String() string { return e.LocalVariable.String() }

func (e *LocalVariableAccess) AcceptLvalue(v LvalueVisitor) error { return v.VisitLocalVariableAccess(e) }
func (e *LocalVariableAccess) AcceptRvalue(v RvalueVisitor) error { return v.VisitLocalVariableAccess(e) }
func (e *LocalVariableAccess) AcceptAtom(v AtomVisitor) error     { return v.VisitLocalVariableAccess(e) }
func (e *LocalVariableAccess) AcceptElementValue(v ElementValueVisitor) error {
	return v.VisitRvalueElement(e)
}

// FieldAccess accesses a resolved field of a type or instance; synthesized
// by the resolver, e.g. for synthetic "this$0" fields.
type FieldAccess struct {
	rvalueBase

	Lhs   Atom
	Field ResolvedField
}

func NewFieldAccess(l Located, lhs Atom, field ResolvedField) *FieldAccess {
	return &FieldAccess{rvalueBase: rvalueBase{Located: l}, Lhs: lhs, Field: field}
}

func (e *FieldAccess) String() string { return e.Lhs.String() + "." + e.Field.FieldName() }

func (e *FieldAccess) AcceptLvalue(v LvalueVisitor) error { return v.VisitFieldAccess(e) }
func (e *FieldAccess) AcceptRvalue(v RvalueVisitor) error { return v.VisitFieldAccess(e) }
func (e *FieldAccess) AcceptAtom(v AtomVisitor) error     { return v.VisitFieldAccess(e) }
func (e *FieldAccess) AcceptElementValue(v ElementValueVisitor) error {
	return v.VisitRvalueElement(e)
}

// FieldAccessExpression is `lhs.fieldName` as written in the source, before
// the field is resolved.
type FieldAccessExpression struct {
	rvalueBase

	Lhs       Atom
	FieldName string

	// Value is the FieldAccess or ArrayLength this expression resolves
	// to; assigned during compilation.
	Value Rvalue
}

func NewFieldAccessExpression(l Located, lhs Atom, fieldName string) *FieldAccessExpression {
	return &FieldAccessExpression{rvalueBase: rvalueBase{Located: l}, Lhs: lhs, FieldName: fieldName}
}

func (e *FieldAccessExpression) String() string { return e.Lhs.String() + "." + e.FieldName }

func (e *FieldAccessExpression) AcceptLvalue(v LvalueVisitor) error {
	return v.VisitFieldAccessExpression(e)
}
func (e *FieldAccessExpression) AcceptRvalue(v RvalueVisitor) error {
	return v.VisitFieldAccessExpression(e)
}
func (e *FieldAccessExpression) AcceptAtom(v AtomVisitor) error {
	return v.VisitFieldAccessExpression(e)
}
func (e *FieldAccessExpression) AcceptElementValue(v ElementValueVisitor) error {
	return v.VisitRvalueElement(e)
}

// SuperclassFieldAccessExpression is `super.fld` or `Type.super.fld`.
type SuperclassFieldAccessExpression struct {
	rvalueBase

	Qualification Type
	FieldName     string
}

func NewSuperclassFieldAccessExpression(l Located, qualification Type, fieldName string) *SuperclassFieldAccessExpression {
	return &SuperclassFieldAccessExpression{
		rvalueBase:    rvalueBase{Located: l},
		Qualification: qualification,
		FieldName:     fieldName,
	}
}

func (e *SuperclassFieldAccessExpression) String() string {
	if e.Qualification != nil {
		return e.Qualification.String() + ".super." + e.FieldName
	}
	return "super." + e.FieldName
}

func (e *SuperclassFieldAccessExpression) AcceptLvalue(v LvalueVisitor) error {
	return v.VisitSuperclassFieldAccessExpression(e)
}
func (e *SuperclassFieldAccessExpression) AcceptRvalue(v RvalueVisitor) error {
	return v.VisitSuperclassFieldAccessExpression(e)
}
func (e *SuperclassFieldAccessExpression) AcceptAtom(v AtomVisitor) error {
	return v.VisitSuperclassFieldAccessExpression(e)
}
func (e *SuperclassFieldAccessExpression) AcceptElementValue(v ElementValueVisitor) error {
	return v.VisitRvalueElement(e)
}

// ArrayAccessExpression is `lhs[index]`.
type ArrayAccessExpression struct {
	rvalueBase

	Lhs   Rvalue
	Index Rvalue
}

func NewArrayAccessExpression(l Located, lhs, index Rvalue) *ArrayAccessExpression {
	return &ArrayAccessExpression{rvalueBase: rvalueBase{Located: l}, Lhs: lhs, Index: index}
}

func (e *ArrayAccessExpression) String() string {
	return e.Lhs.String() + "[" + e.Index.String() + "]"
}

func (e *ArrayAccessExpression) AcceptLvalue(v LvalueVisitor) error {
	return v.VisitArrayAccessExpression(e)
}
func (e *ArrayAccessExpression) AcceptRvalue(v RvalueVisitor) error {
	return v.VisitArrayAccessExpression(e)
}
func (e *ArrayAccessExpression) AcceptAtom(v AtomVisitor) error {
	return v.VisitArrayAccessExpression(e)
}
func (e *ArrayAccessExpression) AcceptElementValue(v ElementValueVisitor) error {
	return v.VisitRvalueElement(e)
}

// ParenthesizedExpression is `(value)`. It is an lvalue when its content
// is.
type ParenthesizedExpression struct {
	rvalueBase

	Value Rvalue
}

func NewParenthesizedExpression(l Located, value Rvalue) *ParenthesizedExpression {
	return &ParenthesizedExpression{rvalueBase: rvalueBase{Located: l}, Value: value}
}

func (e *ParenthesizedExpression) String() string { return "(" + e.Value.String() + ")" }

func (e *ParenthesizedExpression) AcceptLvalue(v LvalueVisitor) error {
	return v.VisitParenthesizedExpression(e)
}
func (e *ParenthesizedExpression) AcceptRvalue(v RvalueVisitor) error {
	return v.VisitParenthesizedExpression(e)
}
func (e *ParenthesizedExpression) AcceptAtom(v AtomVisitor) error {
	return v.VisitParenthesizedExpression(e)
}
func (e *ParenthesizedExpression) AcceptElementValue(v ElementValueVisitor) error {
	return v.VisitRvalueElement(e)
}

// ArrayLength is the `length` pseudo-member of arrays.
type ArrayLength struct {
	rvalueBase

	Lhs Rvalue
}

func NewArrayLength(l Located, lhs Rvalue) *ArrayLength {
	return &ArrayLength{rvalueBase: rvalueBase{Located: l}, Lhs: lhs}
}

func (e *ArrayLength) String() string { return e.Lhs.String() + ".length" }

func (e *ArrayLength) AcceptRvalue(v RvalueVisitor) error { return v.VisitArrayLength(e) }
func (e *ArrayLength) AcceptAtom(v AtomVisitor) error     { return v.VisitArrayLength(e) }
func (e *ArrayLength) AcceptElementValue(v ElementValueVisitor) error {
	return v.VisitRvalueElement(e)
}

// ThisReference is the `this` keyword.
type ThisReference struct {
	rvalueBase

	// ResolvedType caches the type `this` refers to; assigned during
	// compilation.
	ResolvedType ResolvedType
}

func NewThisReference(l Located) *ThisReference {
	return &ThisReference{rvalueBase: rvalueBase{Located: l}}
}

func (e *ThisReference) String() string { return "this" }

func (e *ThisReference) AcceptRvalue(v RvalueVisitor) error { return v.VisitThisReference(e) }
func (e *ThisReference) AcceptAtom(v AtomVisitor) error     { return v.VisitThisReference(e) }
func (e *ThisReference) AcceptElementValue(v ElementValueVisitor) error {
	return v.VisitRvalueElement(e)
}

// QualifiedThisReference is `Qualification.this`, accessing an enclosing
// instance.
type QualifiedThisReference struct {
	rvalueBase

	Qualification Type

	// TargetType is the resolved qualification; assigned during
	// compilation.
	TargetType ResolvedType
}

func NewQualifiedThisReference(l Located, qualification Type) *QualifiedThisReference {
	return &QualifiedThisReference{rvalueBase: rvalueBase{Located: l}, Qualification: qualification}
}

func (e *QualifiedThisReference) String() string { return e.Qualification.String() + ".this" }

func (e *QualifiedThisReference) AcceptRvalue(v RvalueVisitor) error {
	return v.VisitQualifiedThisReference(e)
}
func (e *QualifiedThisReference) AcceptAtom(v AtomVisitor) error {
	return v.VisitQualifiedThisReference(e)
}
func (e *QualifiedThisReference) AcceptElementValue(v ElementValueVisitor) error {
	return v.VisitRvalueElement(e)
}

// ClassLiteral is `Type.class`.
type ClassLiteral struct {
	rvalueBase

	Type Type
}

func NewClassLiteral(l Located, classType Type) *ClassLiteral {
	return &ClassLiteral{rvalueBase: rvalueBase{Located: l}, Type: classType}
}

func (e *ClassLiteral) String() string { return e.Type.String() + ".class" }

func (e *ClassLiteral) AcceptRvalue(v RvalueVisitor) error { return v.VisitClassLiteral(e) }
func (e *ClassLiteral) AcceptAtom(v AtomVisitor) error     { return v.VisitClassLiteral(e) }
func (e *ClassLiteral) AcceptElementValue(v ElementValueVisitor) error {
	return v.VisitRvalueElement(e)
}

// Assignment is a simple or compound assignment.
type Assignment struct {
	rvalueBase

	Lhs      Lvalue
	Operator string
	Rhs      Rvalue
}

func NewAssignment(l Located, lhs Lvalue, operator string, rhs Rvalue) *Assignment {
	return &Assignment{rvalueBase: rvalueBase{Located: l}, Lhs: lhs, Operator: operator, Rhs: rhs}
}

func (e *Assignment) String() string {
	return e.Lhs.String() + " " + e.Operator + " " + e.Rhs.String()
}

func (e *Assignment) AcceptRvalue(v RvalueVisitor) error { return v.VisitAssignment(e) }
func (e *Assignment) AcceptAtom(v AtomVisitor) error     { return v.VisitAssignment(e) }
func (e *Assignment) AcceptElementValue(v ElementValueVisitor) error {
	return v.VisitRvalueElement(e)
}

// ConditionalExpression is `lhs ? mhs : rhs`.
type ConditionalExpression struct {
	rvalueBase

	Lhs Rvalue
	Mhs Rvalue
	Rhs Rvalue
}

func NewConditionalExpression(l Located, lhs, mhs, rhs Rvalue) *ConditionalExpression {
	return &ConditionalExpression{rvalueBase: rvalueBase{Located: l}, Lhs: lhs, Mhs: mhs, Rhs: rhs}
}

func (e *ConditionalExpression) String() string {
	return e.Lhs.String() + " ? " + e.Mhs.String() + " : " + e.Rhs.String()
}

func (e *ConditionalExpression) AcceptRvalue(v RvalueVisitor) error {
	return v.VisitConditionalExpression(e)
}
func (e *ConditionalExpression) AcceptAtom(v AtomVisitor) error {
	return v.VisitConditionalExpression(e)
}
func (e *ConditionalExpression) AcceptElementValue(v ElementValueVisitor) error {
	return v.VisitRvalueElement(e)
}

// Crement is a prefix or postfix "++" or "--" operation.
type Crement struct {
	rvalueBase

	Pre      bool
	Operator string
	Operand  Lvalue
}

func NewPreCrement(l Located, operator string, operand Lvalue) *Crement {
	return &Crement{rvalueBase: rvalueBase{Located: l}, Pre: true, Operator: operator, Operand: operand}
}

func NewPostCrement(l Located, operand Lvalue, operator string) *Crement {
	return &Crement{rvalueBase: rvalueBase{Located: l}, Pre: false, Operator: operator, Operand: operand}
}

func (e *Crement) String() string {
	if e.Pre {
		return e.Operator + e.Operand.String()
	}
	return e.Operand.String() + e.Operator
}

func (e *Crement) AcceptRvalue(v RvalueVisitor) error { return v.VisitCrement(e) }
func (e *Crement) AcceptAtom(v AtomVisitor) error     { return v.VisitCrement(e) }
func (e *Crement) AcceptElementValue(v ElementValueVisitor) error {
	return v.VisitRvalueElement(e)
}

// UnaryOperation is "+", "-", "~" or "!" applied to an operand.
type UnaryOperation struct {
	rvalueBase

	Operator string
	Operand  Rvalue
}

func NewUnaryOperation(l Located, operator string, operand Rvalue) *UnaryOperation {
	return &UnaryOperation{rvalueBase: rvalueBase{Located: l}, Operator: operator, Operand: operand}
}

func (e *UnaryOperation) String() string { return e.Operator + e.Operand.String() }

func (e *UnaryOperation) AcceptRvalue(v RvalueVisitor) error { return v.VisitUnaryOperation(e) }
func (e *UnaryOperation) AcceptAtom(v AtomVisitor) error     { return v.VisitUnaryOperation(e) }
func (e *UnaryOperation) AcceptElementValue(v ElementValueVisitor) error {
	return v.VisitRvalueElement(e)
}

// Instanceof is `lhs instanceof rhs`.
type Instanceof struct {
	rvalueBase

	Lhs Rvalue
	Rhs Type
}

func NewInstanceof(l Located, lhs Rvalue, rhs Type) *Instanceof {
	return &Instanceof{rvalueBase: rvalueBase{Located: l}, Lhs: lhs, Rhs: rhs}
}

func (e *Instanceof) String() string { return e.Lhs.String() + " instanceof " + e.Rhs.String() }

func (e *Instanceof) AcceptRvalue(v RvalueVisitor) error { return v.VisitInstanceof(e) }
func (e *Instanceof) AcceptAtom(v AtomVisitor) error     { return v.VisitInstanceof(e) }
func (e *Instanceof) AcceptElementValue(v ElementValueVisitor) error {
	return v.VisitRvalueElement(e)
}

// BinaryOperation is any non-operand-modifying binary operation.
type BinaryOperation struct {
	rvalueBase

	Lhs Rvalue
	Op  string
	Rhs Rvalue
}

func NewBinaryOperation(l Located, lhs Rvalue, op string, rhs Rvalue) *BinaryOperation {
	return &BinaryOperation{rvalueBase: rvalueBase{Located: l}, Lhs: lhs, Op: op, Rhs: rhs}
}

func (e *BinaryOperation) String() string {
	return e.Lhs.String() + " " + e.Op + " " + e.Rhs.String()
}

// UnrollLeftAssociation flattens a left-associated chain of operations
// with the same operator into its operands, left to right. Useful for
// compiling string concatenation in one pass.
func (e *BinaryOperation) UnrollLeftAssociation() []Rvalue {
	var reversed []Rvalue
	bo := e
	for {
		reversed = append(reversed, bo.Rhs)
		lhs, ok := bo.Lhs.(*BinaryOperation)
		if ok && lhs.Op == e.Op {
			bo = lhs
			continue
		}
		reversed = append(reversed, bo.Lhs)
		break
	}
	operands := make([]Rvalue, len(reversed))
	for i, rv := range reversed {
		operands[len(reversed)-1-i] = rv
	}
	return operands
}

func (e *BinaryOperation) AcceptRvalue(v RvalueVisitor) error { return v.VisitBinaryOperation(e) }
func (e *BinaryOperation) AcceptAtom(v AtomVisitor) error     { return v.VisitBinaryOperation(e) }
func (e *BinaryOperation) AcceptElementValue(v ElementValueVisitor) error {
	return v.VisitRvalueElement(e)
}

// Cast is `(TargetType) value`.
type Cast struct {
	rvalueBase

	TargetType Type
	Value      Rvalue
}

func NewCast(l Located, targetType Type, value Rvalue) *Cast {
	return &Cast{rvalueBase: rvalueBase{Located: l}, TargetType: targetType, Value: value}
}

func (e *Cast) String() string { return "(" + e.TargetType.String() + ") " + e.Value.String() }

func (e *Cast) AcceptRvalue(v RvalueVisitor) error { return v.VisitCast(e) }
func (e *Cast) AcceptAtom(v AtomVisitor) error     { return v.VisitCast(e) }
func (e *Cast) AcceptElementValue(v ElementValueVisitor) error {
	return v.VisitRvalueElement(e)
}

// MethodInvocation is a method call, optionally qualified by a type or an
// expression.
type MethodInvocation struct {
	rvalueBase

	Target     Atom
	MethodName string
	Arguments  []Rvalue

	// ResolvedMethod is assigned during compilation.
	ResolvedMethod ResolvedMethod
}

func NewMethodInvocation(l Located, target Atom, methodName string, arguments []Rvalue) *MethodInvocation {
	return &MethodInvocation{
		rvalueBase: rvalueBase{Located: l},
		Target:     target,
		MethodName: methodName,
		Arguments:  arguments,
	}
}

func (e *MethodInvocation) String() string {
	var sb strings.Builder
	if e.Target != nil {
		sb.WriteString(e.Target.String())
		sb.WriteByte('.')
	}
	sb.WriteString(e.MethodName)
	sb.WriteByte('(')
	for i, a := range e.Arguments {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(a.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

func (e *MethodInvocation) AcceptRvalue(v RvalueVisitor) error { return v.VisitMethodInvocation(e) }
func (e *MethodInvocation) AcceptAtom(v AtomVisitor) error     { return v.VisitMethodInvocation(e) }
func (e *MethodInvocation) AcceptElementValue(v ElementValueVisitor) error {
	return v.VisitRvalueElement(e)
}

// SuperclassMethodInvocation is `super.name(...)`.
type SuperclassMethodInvocation struct {
	rvalueBase

	MethodName string
	Arguments  []Rvalue
}

func NewSuperclassMethodInvocation(l Located, methodName string, arguments []Rvalue) *SuperclassMethodInvocation {
	return &SuperclassMethodInvocation{
		rvalueBase: rvalueBase{Located: l},
		MethodName: methodName,
		Arguments:  arguments,
	}
}

func (e *SuperclassMethodInvocation) String() string { return "super." + e.MethodName + "()" }

func (e *SuperclassMethodInvocation) AcceptRvalue(v RvalueVisitor) error {
	return v.VisitSuperclassMethodInvocation(e)
}
func (e *SuperclassMethodInvocation) AcceptAtom(v AtomVisitor) error {
	return v.VisitSuperclassMethodInvocation(e)
}
func (e *SuperclassMethodInvocation) AcceptElementValue(v ElementValueVisitor) error {
	return v.VisitRvalueElement(e)
}

// NewClassInstance is `new Type(...)`, optionally qualified with an
// enclosing instance expression.
type NewClassInstance struct {
	rvalueBase

	Qualification Rvalue
	Type          Type
	Arguments     []Rvalue

	// ResolvedType is the resolved instantiated type; assigned during
	// compilation.
	ResolvedType ResolvedType
}

func NewNewClassInstance(l Located, qualification Rvalue, instanceType Type, arguments []Rvalue) *NewClassInstance {
	return &NewClassInstance{
		rvalueBase:    rvalueBase{Located: l},
		Qualification: qualification,
		Type:          instanceType,
		Arguments:     arguments,
	}
}

func (e *NewClassInstance) String() string {
	var sb strings.Builder
	if e.Qualification != nil {
		sb.WriteString(e.Qualification.String())
		sb.WriteByte('.')
	}
	sb.WriteString("new ")
	if e.Type != nil {
		sb.WriteString(e.Type.String())
	} else if e.ResolvedType != nil {
		sb.WriteString(e.ResolvedType.String())
	}
	sb.WriteString("()")
	return sb.String()
}

func (e *NewClassInstance) AcceptRvalue(v RvalueVisitor) error { return v.VisitNewClassInstance(e) }
func (e *NewClassInstance) AcceptAtom(v AtomVisitor) error     { return v.VisitNewClassInstance(e) }
func (e *NewClassInstance) AcceptElementValue(v ElementValueVisitor) error {
	return v.VisitRvalueElement(e)
}

// NewAnonymousClassInstance is `new BaseType(...) { ... }`.
type NewAnonymousClassInstance struct {
	rvalueBase

	Qualification             Rvalue
	AnonymousClassDeclaration *AnonymousClassDeclaration
	Arguments                 []Rvalue
}

func NewNewAnonymousClassInstance(
	l Located,
	qualification Rvalue,
	anonymousClassDeclaration *AnonymousClassDeclaration,
	arguments []Rvalue,
) *NewAnonymousClassInstance {
	return &NewAnonymousClassInstance{
		rvalueBase:                rvalueBase{Located: l},
		Qualification:             qualification,
		AnonymousClassDeclaration: anonymousClassDeclaration,
		Arguments:                 arguments,
	}
}

func (e *NewAnonymousClassInstance) String() string {
	prefix := ""
	if e.Qualification != nil {
		prefix = e.Qualification.String() + "."
	}
	return prefix + "new " + e.AnonymousClassDeclaration.BaseType.String() + "() { ... }"
}

func (e *NewAnonymousClassInstance) AcceptRvalue(v RvalueVisitor) error {
	return v.VisitNewAnonymousClassInstance(e)
}
func (e *NewAnonymousClassInstance) AcceptAtom(v AtomVisitor) error {
	return v.VisitNewAnonymousClassInstance(e)
}
func (e *NewAnonymousClassInstance) AcceptElementValue(v ElementValueVisitor) error {
	return v.VisitRvalueElement(e)
}

// ParameterAccess reads a function parameter; synthesized by the compiler.
type ParameterAccess struct {
	rvalueBase

	FormalParameter *FormalParameter
}

func NewParameterAccess(l Located, formalParameter *FormalParameter) *ParameterAccess {
	return &ParameterAccess{rvalueBase: rvalueBase{Located: l}, FormalParameter: formalParameter}
}

func (e *ParameterAccess) String() string { return e.FormalParameter.Name }

func (e *ParameterAccess) AcceptRvalue(v RvalueVisitor) error { return v.VisitParameterAccess(e) }
func (e *ParameterAccess) AcceptAtom(v AtomVisitor) error     { return v.VisitParameterAccess(e) }
func (e *ParameterAccess) AcceptElementValue(v ElementValueVisitor) error {
	return v.VisitRvalueElement(e)
}

// NewArray is `new T[dimExpr]...[]...`, allocating an array of dimension
// len(DimExprs)+Dims where the first len(DimExprs) dimensions have explicit
// sizes.
type NewArray struct {
	rvalueBase

	Type     Type
	DimExprs []Rvalue
	Dims     int
}

func NewNewArray(l Located, componentType Type, dimExprs []Rvalue, dims int) *NewArray {
	return &NewArray{rvalueBase: rvalueBase{Located: l}, Type: componentType, DimExprs: dimExprs, Dims: dims}
}

func (e *NewArray) String() string { return "new " + e.Type.String() + "[]..." }

func (e *NewArray) AcceptRvalue(v RvalueVisitor) error { return v.VisitNewArray(e) }
func (e *NewArray) AcceptAtom(v AtomVisitor) error     { return v.VisitNewArray(e) }
func (e *NewArray) AcceptElementValue(v ElementValueVisitor) error {
	return v.VisitRvalueElement(e)
}

// ArrayInitializer is `{ v1, v2, ... }` in array initializer position; its
// elements may be nested initializers.
type ArrayInitializer struct {
	Located

	Values []ArrayInitializerOrRvalue
}

func NewArrayInitializer(l Located, values []ArrayInitializerOrRvalue) *ArrayInitializer {
	return &ArrayInitializer{Located: l, Values: values}
}

func (e *ArrayInitializer) arrayInitializerOrRvalue() {}

func (e *ArrayInitializer) String() string {
	return fmt.Sprintf("{ (%d values) }", len(e.Values))
}

// NewInitializedArray is `new T[][] { ... }`.
type NewInitializedArray struct {
	rvalueBase

	ArrayType        *ArrayType
	ArrayInitializer *ArrayInitializer
}

func NewNewInitializedArray(l Located, arrayType *ArrayType, arrayInitializer *ArrayInitializer) *NewInitializedArray {
	return &NewInitializedArray{
		rvalueBase:       rvalueBase{Located: l},
		ArrayType:        arrayType,
		ArrayInitializer: arrayInitializer,
	}
}

func (e *NewInitializedArray) String() string {
	return "new " + e.ArrayType.String() + " { ... }"
}

func (e *NewInitializedArray) AcceptRvalue(v RvalueVisitor) error {
	return v.VisitNewInitializedArray(e)
}
func (e *NewInitializedArray) AcceptAtom(v AtomVisitor) error {
	return v.VisitNewInitializedArray(e)
}
func (e *NewInitializedArray) AcceptElementValue(v ElementValueVisitor) error {
	return v.VisitRvalueElement(e)
}

// literal is embedded in the literal nodes; Value is the token text as
// written in the source.
type literal struct {
	rvalueBase

	Value string
}

func (e *literal) String() string { return e.Value }

// IntegerLiteral is an int or long literal token.
type IntegerLiteral struct{ literal }

func NewIntegerLiteral(l Located, value string) *IntegerLiteral {
	return &IntegerLiteral{literal: literal{rvalueBase: rvalueBase{Located: l}, Value: value}}
}

func (e *IntegerLiteral) AcceptRvalue(v RvalueVisitor) error { return v.VisitIntegerLiteral(e) }
func (e *IntegerLiteral) AcceptAtom(v AtomVisitor) error     { return v.VisitIntegerLiteral(e) }
func (e *IntegerLiteral) AcceptElementValue(v ElementValueVisitor) error {
	return v.VisitRvalueElement(e)
}

// FloatingPointLiteral is a float or double literal token.
type FloatingPointLiteral struct{ literal }

func NewFloatingPointLiteral(l Located, value string) *FloatingPointLiteral {
	return &FloatingPointLiteral{literal: literal{rvalueBase: rvalueBase{Located: l}, Value: value}}
}

func (e *FloatingPointLiteral) AcceptRvalue(v RvalueVisitor) error {
	return v.VisitFloatingPointLiteral(e)
}
func (e *FloatingPointLiteral) AcceptAtom(v AtomVisitor) error {
	return v.VisitFloatingPointLiteral(e)
}
func (e *FloatingPointLiteral) AcceptElementValue(v ElementValueVisitor) error {
	return v.VisitRvalueElement(e)
}

// BooleanLiteral is `true` or `false`.
type BooleanLiteral struct{ literal }

func NewBooleanLiteral(l Located, value string) *BooleanLiteral {
	return &BooleanLiteral{literal: literal{rvalueBase: rvalueBase{Located: l}, Value: value}}
}

func (e *BooleanLiteral) AcceptRvalue(v RvalueVisitor) error { return v.VisitBooleanLiteral(e) }
func (e *BooleanLiteral) AcceptAtom(v AtomVisitor) error     { return v.VisitBooleanLiteral(e) }
func (e *BooleanLiteral) AcceptElementValue(v ElementValueVisitor) error {
	return v.VisitRvalueElement(e)
}

// CharacterLiteral is a char literal token.
type CharacterLiteral struct{ literal }

func NewCharacterLiteral(l Located, value string) *CharacterLiteral {
	return &CharacterLiteral{literal: literal{rvalueBase: rvalueBase{Located: l}, Value: value}}
}

func (e *CharacterLiteral) AcceptRvalue(v RvalueVisitor) error { return v.VisitCharacterLiteral(e) }
func (e *CharacterLiteral) AcceptAtom(v AtomVisitor) error     { return v.VisitCharacterLiteral(e) }
func (e *CharacterLiteral) AcceptElementValue(v ElementValueVisitor) error {
	return v.VisitRvalueElement(e)
}

// StringLiteral is a string literal token.
type StringLiteral struct{ literal }

func NewStringLiteral(l Located, value string) *StringLiteral {
	return &StringLiteral{literal: literal{rvalueBase: rvalueBase{Located: l}, Value: value}}
}

func (e *StringLiteral) AcceptRvalue(v RvalueVisitor) error { return v.VisitStringLiteral(e) }
func (e *StringLiteral) AcceptAtom(v AtomVisitor) error     { return v.VisitStringLiteral(e) }
func (e *StringLiteral) AcceptElementValue(v ElementValueVisitor) error {
	return v.VisitRvalueElement(e)
}

// NullLiteral is the `null` keyword.
type NullLiteral struct{ literal }

func NewNullLiteral(l Located) *NullLiteral {
	return &NullLiteral{literal: literal{rvalueBase: rvalueBase{Located: l}, Value: "null"}}
}

func (e *NullLiteral) AcceptRvalue(v RvalueVisitor) error { return v.VisitNullLiteral(e) }
func (e *NullLiteral) AcceptAtom(v AtomVisitor) error     { return v.VisitNullLiteral(e) }
func (e *NullLiteral) AcceptElementValue(v ElementValueVisitor) error {
	return v.VisitRvalueElement(e)
}

// SimpleConstant is a synthesized constant expression. Value is nil for
// the null constant or one of the boxed primitive kinds or string.
type SimpleConstant struct {
	rvalueBase

	Value any
}

func NewSimpleConstant(l Located, value any) *SimpleConstant {
	c := &SimpleConstant{rvalueBase: rvalueBase{Located: l}, Value: value}
	c.SetConstant(value)
	return c
}

func (e *SimpleConstant) String() string { return fmt.Sprintf("%v", e.Value) }

func (e *SimpleConstant) AcceptRvalue(v RvalueVisitor) error { return v.VisitSimpleConstant(e) }
func (e *SimpleConstant) AcceptAtom(v AtomVisitor) error     { return v.VisitSimpleConstant(e) }
func (e *SimpleConstant) AcceptElementValue(v ElementValueVisitor) error {
	return v.VisitRvalueElement(e)
}
