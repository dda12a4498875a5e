package ast

import (
	"strings"

	"github.com/dhamidi/ono/compiler"
)

// TypeBodyDeclaration is anything that may appear in the body of a type
// declaration: fields, initializers, functions and member types.
type TypeBodyDeclaration interface {
	Locatable
	Scope
	SetDeclaringType(t TypeDeclaration)
	DeclaringType() TypeDeclaration
	IsStatic() bool
	AcceptTypeBodyDeclaration(v TypeBodyDeclarationVisitor) error
}

type bodyDeclarationBase struct {
	Located

	// Static reports whether the declaration carries the STATIC modifier.
	Static bool

	declaring TypeDeclaration
}

func (d *bodyDeclarationBase) SetDeclaringType(t TypeDeclaration) {
	if d.declaring != nil {
		compiler.Internalf("declaring type already set for type body declaration at %s", d.Location())
	}
	d.declaring = t
}

func (d *bodyDeclarationBase) DeclaringType() TypeDeclaration {
	if d.declaring == nil {
		compiler.Internalf("declaring type not yet set for type body declaration at %s", d.Location())
	}
	return d.declaring
}

func (d *bodyDeclarationBase) IsStatic() bool { return d.Static }

// SetEnclosingScope forward-implements the block statement contract: a
// body declaration's enclosing scope is its declaring type. Statements of
// initializers are already bound when the synthesized class initializer
// adopts them, so binding to it is ignored.
func (d *bodyDeclarationBase) SetEnclosingScope(s Scope) {
	if isClassInitializerScope(s) {
		return
	}
	if d.declaring != nil {
		compiler.Internalf("declaring type already set for type body declaration at %s", d.Location())
	}
	d.declaring = s.(TypeDeclaration)
}

func (d *bodyDeclarationBase) EnclosingScope() Scope { return d.DeclaringType() }

func (d *bodyDeclarationBase) enclosingScopeOrNil() Scope {
	if d.declaring == nil {
		return nil
	}
	return d.declaring
}

// Initializer is an instance or static initializer block of a class body.
type Initializer struct {
	bodyDeclarationBase
	Block *Block
}

func NewInitializer(l Located, static bool, block *Block) *Initializer {
	i := &Initializer{
		bodyDeclarationBase: bodyDeclarationBase{Located: l, Static: static},
		Block:               block,
	}
	block.SetEnclosingScope(i)
	return i
}

func (i *Initializer) String() string {
	if i.Static {
		return "static { ... }"
	}
	return "{ ... }"
}

func (i *Initializer) FindLocalVariable(name string) *LocalVariable {
	return i.Block.FindLocalVariable(name)
}

func (i *Initializer) AcceptTypeBodyDeclaration(v TypeBodyDeclarationVisitor) error {
	return v.VisitInitializer(i)
}

func (i *Initializer) AcceptBlockStatement(v BlockStatementVisitor) error {
	return v.VisitInitializer(i)
}

// FormalParameters is a function's parameter list.
type FormalParameters struct {
	Located
	Parameters []*FormalParameter

	// VariableArity is whether the last parameter is declared with an
	// ellipsis.
	VariableArity bool
}

func NewFormalParameters(l Located, parameters []*FormalParameter, variableArity bool) *FormalParameters {
	return &FormalParameters{Located: l, Parameters: parameters, VariableArity: variableArity}
}

func (p *FormalParameters) String() string {
	if len(p.Parameters) == 0 {
		return "()"
	}
	parts := make([]string, len(p.Parameters))
	for i, fp := range p.Parameters {
		parts[i] = fp.describe(i == len(p.Parameters)-1 && p.VariableArity)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// FormalParameter is one function parameter.
type FormalParameter struct {
	Located
	Final bool
	Type  Type
	Name  string

	// LocalVariable is assigned during compilation.
	LocalVariable *LocalVariable
}

func NewFormalParameter(l Located, final bool, paramType Type, name string) *FormalParameter {
	return &FormalParameter{Located: l, Final: final, Type: paramType, Name: name}
}

func (p *FormalParameter) describe(ellipsis bool) string {
	sep := " "
	if ellipsis {
		sep = "... "
	}
	return p.Type.String() + sep + p.Name
}

func (p *FormalParameter) String() string { return p.describe(false) }

// FunctionDeclarator carries what methods and constructors share. It is a
// scope: parameter types, thrown exceptions and body statements resolve
// through it.
type FunctionDeclarator struct {
	bodyDeclarationBase

	DocComment string
	Modifiers  Modifiers

	// Type is the return type; void for constructors.
	Type Type

	// Name is the function name; "<init>" for constructors.
	Name string

	Parameters       *FormalParameters
	ThrownExceptions []Type

	// Statements is the function body; nil for abstract and native
	// declarations.
	Statements []BlockStatement

	// LocalVariables maps the names visible in the body to their compile
	// time descriptions; assigned during compilation.
	LocalVariables map[string]*LocalVariable
}

// bindFunction binds the function's children to self, which must be the
// concrete method or constructor declarator embedding f.
func (f *FunctionDeclarator) bindFunction(self Scope) {
	f.Type.SetEnclosingScope(self)
	for _, fp := range f.Parameters.Parameters {
		fp.Type.SetEnclosingScope(self)
	}
	for _, te := range f.ThrownExceptions {
		te.SetEnclosingScope(self)
	}
	for _, bs := range f.Statements {
		bs.SetEnclosingScope(self)
	}
}

func (f *FunctionDeclarator) Annotations() []Annotation { return f.Modifiers.Annotations }

func (f *FunctionDeclarator) describe() string {
	return f.Name + f.Parameters.String()
}

// MethodDeclarator is a method declaration, including the synthesized
// "<clinit>" and "<init>"-adjacent helpers the compiler fabricates.
type MethodDeclarator struct {
	FunctionDeclarator

	TypeParameters []*TypeParameter

	// ResolvedMethod is assigned during compilation.
	ResolvedMethod ResolvedMethod
}

func NewMethodDeclarator(
	l Located,
	docComment string,
	modifiers Modifiers,
	typeParameters []*TypeParameter,
	returnType Type,
	name string,
	parameters *FormalParameters,
	thrownExceptions []Type,
	statements []BlockStatement,
) *MethodDeclarator {
	if parameters.VariableArity {
		modifiers = modifiers.Add(ModVarargs)
	}
	m := &MethodDeclarator{
		FunctionDeclarator: FunctionDeclarator{
			bodyDeclarationBase: bodyDeclarationBase{Located: l, Static: modifiers.Flags.IsStatic()},
			DocComment:          docComment,
			Modifiers:           modifiers,
			Type:                returnType,
			Name:                name,
			Parameters:          parameters,
			ThrownExceptions:    thrownExceptions,
			Statements:          statements,
		},
		TypeParameters: typeParameters,
	}
	m.bindFunction(m)
	return m
}

func (m *MethodDeclarator) SetDeclaringType(t TypeDeclaration) {
	m.bodyDeclarationBase.SetDeclaringType(t)
	m.bindTypeParameterBounds(t)
}

func (m *MethodDeclarator) SetEnclosingScope(s Scope) {
	m.bodyDeclarationBase.SetEnclosingScope(s)
	m.bindTypeParameterBounds(s)
}

func (m *MethodDeclarator) bindTypeParameterBounds(s Scope) {
	for _, tp := range m.TypeParameters {
		tp.setEnclosingScope(s)
	}
}

func (m *MethodDeclarator) String() string { return m.describe() }

func (m *MethodDeclarator) AcceptTypeBodyDeclaration(v TypeBodyDeclarationVisitor) error {
	return v.VisitMethodDeclarator(m)
}

func (m *MethodDeclarator) AcceptFunctionDeclarator(v FunctionDeclaratorVisitor) error {
	return v.VisitMethodDeclarator(m)
}

// ConstructorDeclarator is a constructor declaration.
type ConstructorDeclarator struct {
	FunctionDeclarator

	// ConstructorInvocation is the explicit this(...) or super(...) call
	// opening the body, if any.
	ConstructorInvocation ConstructorInvocation

	// SyntheticParameters maps the names of compiler-added parameters
	// (enclosing instance, captured variables) to their local variables;
	// assigned during compilation.
	SyntheticParameters map[string]*LocalVariable

	// ResolvedConstructor is assigned during compilation.
	ResolvedConstructor ResolvedMethod
}

func NewConstructorDeclarator(
	l Located,
	docComment string,
	modifiers Modifiers,
	parameters *FormalParameters,
	thrownExceptions []Type,
	constructorInvocation ConstructorInvocation,
	statements []BlockStatement,
) *ConstructorDeclarator {
	c := &ConstructorDeclarator{
		FunctionDeclarator: FunctionDeclarator{
			bodyDeclarationBase: bodyDeclarationBase{Located: l},
			DocComment:          docComment,
			Modifiers:           modifiers,
			Type:                NewBasicType(l, PrimitiveVoid),
			Name:                ConstructorName,
			Parameters:          parameters,
			ThrownExceptions:    thrownExceptions,
			Statements:          statements,
		},
		ConstructorInvocation: constructorInvocation,
		SyntheticParameters:   make(map[string]*LocalVariable),
	}
	c.bindFunction(c)
	if constructorInvocation != nil {
		constructorInvocation.SetEnclosingScope(c)
	}
	return c
}

func (c *ConstructorDeclarator) String() string {
	name := ConstructorName
	if c.declaring != nil {
		name = c.declaring.ClassName()
	}
	return name + c.Parameters.String()
}

func (c *ConstructorDeclarator) AcceptTypeBodyDeclaration(v TypeBodyDeclarationVisitor) error {
	return v.VisitConstructorDeclarator(c)
}

func (c *ConstructorDeclarator) AcceptFunctionDeclarator(v FunctionDeclaratorVisitor) error {
	return v.VisitConstructorDeclarator(c)
}

// VariableDeclarator is one "name = initializer" of a field declaration or
// local variable declaration statement.
type VariableDeclarator struct {
	Located
	Name string

	// Brackets is the number of "[]" pairs written after the name.
	Brackets int

	// Initializer is nil when the declarator has none.
	Initializer ArrayInitializerOrRvalue

	// LocalVariable is assigned during compilation of local variable
	// declaration statements.
	LocalVariable *LocalVariable
}

func NewVariableDeclarator(l Located, name string, brackets int, initializer ArrayInitializerOrRvalue) *VariableDeclarator {
	return &VariableDeclarator{Located: l, Name: name, Brackets: brackets, Initializer: initializer}
}

func (d *VariableDeclarator) String() string {
	s := d.Name + strings.Repeat("[]", d.Brackets)
	if d.Initializer != nil {
		s += " = ..."
	}
	return s
}

// FieldDeclaration declares one or more fields. It doubles as a block
// statement: field initializers are compiled as statements of the
// synthesized initializer functions.
type FieldDeclaration struct {
	statementBase

	DocComment          string
	Modifiers           Modifiers
	Type                Type
	VariableDeclarators []*VariableDeclarator
}

func NewFieldDeclaration(
	l Located,
	docComment string,
	modifiers Modifiers,
	fieldType Type,
	variableDeclarators []*VariableDeclarator,
) *FieldDeclaration {
	f := &FieldDeclaration{
		statementBase:       statementBase{Located: l},
		DocComment:          docComment,
		Modifiers:           modifiers,
		Type:                fieldType,
		VariableDeclarators: variableDeclarators,
	}
	fieldType.SetEnclosingScope(f)
	for _, vd := range variableDeclarators {
		if vd.Initializer != nil {
			SetEnclosingScope(vd.Initializer, f)
		}
	}
	return f
}

func (f *FieldDeclaration) SetDeclaringType(t TypeDeclaration) { f.SetEnclosingScope(t) }

func (f *FieldDeclaration) DeclaringType() TypeDeclaration {
	return f.EnclosingScope().(TypeDeclaration)
}

func (f *FieldDeclaration) SetEnclosingScope(s Scope) {
	f.statementBase.SetEnclosingScope(s)
	f.Modifiers.setEnclosingScope(s)
}

func (f *FieldDeclaration) Annotations() []Annotation { return f.Modifiers.Annotations }

func (f *FieldDeclaration) IsStatic() bool { return f.Modifiers.Flags.IsStatic() }

func (f *FieldDeclaration) String() string {
	parts := make([]string, len(f.VariableDeclarators))
	for i, vd := range f.VariableDeclarators {
		parts[i] = vd.String()
	}
	prefix := ""
	if mods := f.Modifiers.Flags.String(); mods != "" {
		prefix = mods + " "
	}
	return prefix + f.Type.String() + " " + strings.Join(parts, ", ")
}

func (f *FieldDeclaration) AcceptTypeBodyDeclaration(v TypeBodyDeclarationVisitor) error {
	return v.VisitFieldDeclaration(f)
}

func (f *FieldDeclaration) AcceptBlockStatement(v BlockStatementVisitor) error {
	return v.VisitFieldDeclaration(f)
}
